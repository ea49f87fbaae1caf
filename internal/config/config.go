// Package config loads the settings of the neo command.
//
// Settings come from an optional YAML file with environment variable
// overrides (NEO_*). Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/hupe1980/neodb/blobstore/minio"
	"github.com/hupe1980/neodb/codec"
	"github.com/hupe1980/neodb/resource"
)

// Config holds all settings of the neo command.
type Config struct {
	// NEOFile is the location of the NEO CSV file. Local paths, file://,
	// s3:// and minio:// locations are accepted.
	NEOFile string `yaml:"neo_file" env:"NEO_NEO_FILE" env-default:"data/neos.csv" validate:"required"`
	// CADFile is the location of the close-approach JSON file.
	CADFile string `yaml:"cad_file" env:"NEO_CAD_FILE" env-default:"data/cad.json" validate:"required"`
	// Codec names the JSON implementation used for reading and writing.
	Codec string `yaml:"codec" env:"NEO_CODEC" env-default:"go-json" validate:"codec"`

	Log       LogConfig      `yaml:"log"`
	Resources ResourceConfig `yaml:"resources"`
	S3        S3Config       `yaml:"s3"`
	MinIO     MinIOConfig    `yaml:"minio"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	Level  string `yaml:"level" env:"NEO_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"NEO_LOG_FORMAT" env-default:"text" validate:"oneof=text json"`
}

// ResourceConfig bounds loading and writing. Zero means unlimited, except
// for MaxConcurrentLoads where it selects the default.
type ResourceConfig struct {
	LoadBudgetBytes    int64 `yaml:"load_budget_bytes" env:"NEO_LOAD_BUDGET_BYTES" env-default:"0" validate:"gte=0"`
	MaxConcurrentLoads int64 `yaml:"max_concurrent_loads" env:"NEO_MAX_CONCURRENT_LOADS" env-default:"2" validate:"gte=0"`
	IOLimitBytesPerSec int64 `yaml:"io_limit_bytes_per_sec" env:"NEO_IO_LIMIT_BYTES_PER_SEC" env-default:"0" validate:"gte=0"`
}

// S3Config configures s3:// locations. Credentials come from the default
// AWS chain.
type S3Config struct {
	Region   string `yaml:"region" env:"NEO_S3_REGION"`
	Endpoint string `yaml:"endpoint" env:"NEO_S3_ENDPOINT" validate:"omitempty,url"`
	Prefix   string `yaml:"prefix" env:"NEO_S3_PREFIX"`
}

// MinIOConfig configures minio:// locations. They are available only when
// Endpoint is set.
type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint" env:"NEO_MINIO_ENDPOINT" validate:"omitempty,hostname_port"`
	AccessKey string `yaml:"access_key" env:"NEO_MINIO_ACCESS_KEY" validate:"required_with=Endpoint"`
	SecretKey string `yaml:"-" env:"NEO_MINIO_SECRET_KEY" validate:"required_with=Endpoint"` // secret, env only
	Region    string `yaml:"region" env:"NEO_MINIO_REGION"`
	Secure    bool   `yaml:"secure" env:"NEO_MINIO_SECURE" env-default:"true"`
	Prefix    string `yaml:"prefix" env:"NEO_MINIO_PREFIX"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("codec", func(fl validator.FieldLevel) bool {
		_, ok := codec.ByName(fl.Field().String())
		return ok
	})
	return v
}

// Load reads the configuration. With an empty path only the environment is
// consulted; otherwise the YAML file at path must exist.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config: read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks all fields against their constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ResourceConfig returns the limits for a resource.Controller.
func (c *Config) ResourceConfig() resource.Config {
	return resource.Config{
		LoadBudgetBytes:    c.Resources.LoadBudgetBytes,
		MaxConcurrentLoads: c.Resources.MaxConcurrentLoads,
		IOLimitBytesPerSec: c.Resources.IOLimitBytesPerSec,
	}
}

// MinIOConfig returns the client settings for minio:// locations.
func (c *Config) MinIOConfig() minio.Config {
	return minio.Config{
		Endpoint:  c.MinIO.Endpoint,
		AccessKey: c.MinIO.AccessKey,
		SecretKey: c.MinIO.SecretKey,
		Region:    c.MinIO.Region,
		Secure:    c.MinIO.Secure,
		Prefix:    c.MinIO.Prefix,
	}
}

// Usage returns a description of the environment variables.
func Usage() string {
	header := "Environment variables:"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return ""
	}
	return text
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()

	switch e.Tag() {
	case "required", "required_with":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "codec":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(codec.Names(), " "))
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a URL", field)
	case "hostname_port":
		return fmt.Sprintf("%s must be host:port", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
