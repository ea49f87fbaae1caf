// Package cli implements the neo command: inspect NEOs, query close
// approaches and explore the data set interactively.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/blobstore"
	miniostore "github.com/hupe1980/neodb/blobstore/minio"
	s3store "github.com/hupe1980/neodb/blobstore/s3"
	"github.com/hupe1980/neodb/codec"
	"github.com/hupe1980/neodb/extract"
	"github.com/hupe1980/neodb/internal/config"
	"github.com/hupe1980/neodb/resource"
	"github.com/hupe1980/neodb/write"
)

// app holds the state shared by all commands of one process.
type app struct {
	configPath string
	neoFile    string
	cadFile    string
	logLevel   string
	logFormat  string

	cfg      *config.Config
	logger   *neodb.Logger
	metrics  *neodb.BasicMetricsCollector
	resolver *blobstore.Resolver
	rc       *resource.Controller
	codec    codec.Codec

	db       *neodb.Database
	loadedAt map[string]time.Time

	newLineReader func() lineReader
}

// NewRootCommand returns the neo command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{newLineReader: newLiner})
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neo",
		Short: "Explore near-Earth objects and their close approaches to Earth",
		Long: `neo loads a CSV file of near-Earth objects and a JSON file of close approaches,
links them and answers questions about them.

Data locations may be local paths, file://, s3:// or minio:// URIs; files
ending in .gz, .zst or .lz4 are decompressed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	flags.StringVar(&a.neoFile, "neofile", "", "location of the NEO CSV file")
	flags.StringVar(&a.cadFile, "cadfile", "", "location of the close-approach JSON file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	cmd.AddCommand(
		newInspectCommand(a),
		newQueryCommand(a),
		newInteractiveCommand(a),
		newEnvCommand(),
	)

	return cmd
}

// Execute runs the neo command with the given arguments.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.cfg != nil {
		return nil
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("neofile") {
		cfg.NEOFile = a.neoFile
	}
	if flags.Changed("cadfile") {
		cfg.CADFile = a.cadFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c, ok := codec.ByName(cfg.Codec)
	if !ok {
		return fmt.Errorf("unknown codec %q", cfg.Codec)
	}

	a.cfg = cfg
	a.codec = c
	a.logger = newLogger(cmd.ErrOrStderr(), cfg)
	a.metrics = &neodb.BasicMetricsCollector{}
	a.rc = resource.NewController(cfg.ResourceConfig())
	a.resolver = newResolver(cfg)
	return nil
}

func newLogger(w io.Writer, cfg *config.Config) *neodb.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return neodb.NewLogger(slog.NewJSONHandler(w, opts))
	}
	return neodb.NewLogger(slog.NewTextHandler(w, opts))
}

func newResolver(cfg *config.Config) *blobstore.Resolver {
	r := blobstore.NewResolver()

	var s3Opts []s3store.FactoryOption
	if cfg.S3.Region != "" {
		s3Opts = append(s3Opts, s3store.WithRegion(cfg.S3.Region))
	}
	if cfg.S3.Endpoint != "" {
		s3Opts = append(s3Opts, s3store.WithEndpoint(cfg.S3.Endpoint))
	}
	if cfg.S3.Prefix != "" {
		s3Opts = append(s3Opts, s3store.WithPrefix(cfg.S3.Prefix))
	}
	r.Register("s3", s3store.Factory(s3Opts...))

	if cfg.MinIO.Endpoint != "" {
		r.Register("minio", miniostore.Factory(cfg.MinIOConfig()))
	}
	return r
}

// database loads and links the data set on first use.
func (a *app) database(ctx context.Context) (*neodb.Database, error) {
	if a.db != nil {
		return a.db, nil
	}

	loader := extract.NewLoader(
		extract.WithResolver(a.resolver),
		extract.WithCodec(a.codec),
		extract.WithResourceController(a.rc),
		extract.WithLogger(a.logger),
		extract.WithMetricsCollector(a.metrics),
	)

	ds, err := loader.Load(ctx, a.cfg.NEOFile, a.cfg.CADFile)
	if err != nil {
		return nil, err
	}

	db, err := ds.Database(neodb.WithLogger(a.logger), neodb.WithMetricsCollector(a.metrics))
	if err != nil {
		return nil, err
	}

	a.loadedAt = make(map[string]time.Time, 2)
	for _, uri := range []string{a.cfg.NEOFile, a.cfg.CADFile} {
		t, err := a.modTime(ctx, uri)
		if err != nil {
			return nil, err
		}
		a.loadedAt[uri] = t
	}

	a.db = db
	return db, nil
}

func (a *app) modTime(ctx context.Context, uri string) (time.Time, error) {
	store, name, err := a.resolver.Resolve(ctx, uri)
	if err != nil {
		return time.Time{}, err
	}
	info, err := store.Stat(ctx, name)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat %s: %w", uri, err)
	}
	return info.ModTime, nil
}

// changed reports whether a data file was modified after it was loaded.
func (a *app) changed(ctx context.Context) (bool, error) {
	for uri, loaded := range a.loadedAt {
		t, err := a.modTime(ctx, uri)
		if err != nil {
			return false, err
		}
		if !t.Equal(loaded) {
			return true, nil
		}
	}
	return false, nil
}

func (a *app) writer() *write.Writer {
	return write.NewWriter(
		write.WithResolver(a.resolver),
		write.WithCodec(a.codec),
		write.WithResourceController(a.rc),
		write.WithLogger(a.logger),
		write.WithMetricsCollector(a.metrics),
	)
}

func newEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Describe the environment variables read by neo",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.Usage())
			return err
		},
	}
}
