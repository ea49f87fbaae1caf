package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/neodb/model"
)

const noMatch = "No matching NEOs exist in the database."

func newInspectCommand(a *app) *cobra.Command {
	var (
		pdes    string
		name    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect an NEO by primary designation or by name",
		Example: `  neo inspect --pdes 433
  neo inspect --name Halley --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.database(cmd.Context())
			if err != nil {
				return err
			}

			var (
				neo   *model.NEO
				found bool
			)
			if cmd.Flags().Changed("pdes") {
				neo, found = db.GetByDesignation(pdes)
			} else {
				neo, found = db.GetByName(name)
			}

			out := cmd.OutOrStdout()
			if !found {
				_, err := fmt.Fprintln(out, noMatch)
				return err
			}

			fmt.Fprintln(out, neo)
			if verbose {
				for _, ca := range neo.Approaches {
					fmt.Fprintf(out, "- %s\n", ca)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pdes, "pdes", "p", "", "primary designation of the NEO")
	cmd.Flags().StringVarP(&name, "name", "n", "", "IAU name of the NEO")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also list the close approaches of the NEO")
	cmd.MarkFlagsMutuallyExclusive("pdes", "name")
	cmd.MarkFlagsOneRequired("pdes", "name")

	return cmd
}
