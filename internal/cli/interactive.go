package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const prompt = "(neo) $ "

var replCommands = []string{"inspect", "query", "help", "exit", "quit"}

// lineReader reads one line of input at a time.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

func newLiner() lineReader {
	l := liner.NewLiner()
	l.SetCtrlCAborts(true)
	l.SetCompleter(func(line string) []string {
		var out []string
		for _, c := range replCommands {
			if strings.HasPrefix(c, line) {
				out = append(out, c)
			}
		}
		return out
	})
	return l
}

func newInteractiveCommand(a *app) *cobra.Command {
	var aggressive bool

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"shell"},
		Short:   "Start a shell that runs inspect and query against the loaded data",
		Long: `Start a shell that runs inspect and query against the loaded data.

The data set is loaded once. With --aggressive the shell exits as soon as
either data file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.database(cmd.Context()); err != nil {
				return err
			}
			return a.repl(cmd, aggressive)
		},
	}

	cmd.Flags().BoolVar(&aggressive, "aggressive", false, "exit when a data file changes")
	return cmd
}

func (a *app) repl(cmd *cobra.Command, aggressive bool) error {
	ctx := cmd.Context()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	lr := a.newLineReader()
	defer lr.Close()

	fmt.Fprintln(out, `Explore close approaches of near-Earth objects. Type "help" for commands, "exit" to quit.`)

	for {
		line, err := lr.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lr.AppendHistory(line)

		args, err := splitArgs(line)
		if err != nil {
			fmt.Fprintln(errOut, "Error:", err)
			continue
		}

		switch args[0] {
		case "exit", "quit":
			return nil
		case "help":
			args = append([]string{"--help"}, args[1:]...)
		case "inspect", "query":
		default:
			fmt.Fprintf(errOut, "Unknown command %q. Try \"help\".\n", args[0])
			continue
		}

		if aggressive {
			changed, err := a.changed(ctx)
			if err != nil {
				return err
			}
			if changed {
				fmt.Fprintln(errOut, "The data files have changed since they were loaded. Exiting.")
				return nil
			}
		}

		sub := a.replCommand()
		sub.SetArgs(args)
		sub.SetOut(out)
		sub.SetErr(errOut)
		if err := sub.ExecuteContext(ctx); err != nil {
			fmt.Fprintln(errOut, "Error:", err)
		}
	}
}

// replCommand builds a fresh command tree per line so flag values do not
// carry over between lines.
func (a *app) replCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "neo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newInspectCommand(a), newQueryCommand(a))
	root.CompletionOptions.DisableDefaultCmd = true
	return root
}

// splitArgs splits a line into words. Single or double quotes group words
// containing spaces, like "2021 AB".
func splitArgs(line string) ([]string, error) {
	var (
		args   []string
		cur    strings.Builder
		quote  rune
		inWord bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				args = append(args, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c quote", quote)
	}
	if inWord {
		args = append(args, cur.String())
	}
	return args, nil
}
