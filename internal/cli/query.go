package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/neodb/filter"
)

// defaultStdoutLimit caps results printed to the terminal when no limit is
// given.
const defaultStdoutLimit = 10

type queryFlags struct {
	date, startDate, endDate string
	minDistance, maxDistance string
	minVelocity, maxVelocity string
	minDiameter, maxDiameter string
	hazardous, notHazardous  bool
	limit                    int
	outfile                  string
}

func (f *queryFlags) criteria() (filter.Criteria, error) {
	var (
		c   filter.Criteria
		err error
	)

	dates := []struct {
		flag, value string
		dst         **time.Time
	}{
		{"date", f.date, &c.Date},
		{"start-date", f.startDate, &c.StartDate},
		{"end-date", f.endDate, &c.EndDate},
	}
	for _, d := range dates {
		if *d.dst, err = filter.ParseDate(d.value); err != nil {
			return c, fmt.Errorf("--%s: %w", d.flag, err)
		}
	}

	floats := []struct {
		flag, value string
		dst         **float64
	}{
		{"min-distance", f.minDistance, &c.DistanceMin},
		{"max-distance", f.maxDistance, &c.DistanceMax},
		{"min-velocity", f.minVelocity, &c.VelocityMin},
		{"max-velocity", f.maxVelocity, &c.VelocityMax},
		{"min-diameter", f.minDiameter, &c.DiameterMin},
		{"max-diameter", f.maxDiameter, &c.DiameterMax},
	}
	for _, fl := range floats {
		if *fl.dst, err = filter.ParseFloat(fl.value); err != nil {
			return c, fmt.Errorf("--%s: %w", fl.flag, err)
		}
	}

	switch {
	case f.hazardous:
		c.Hazardous = filter.Bool(true)
	case f.notHazardous:
		c.Hazardous = filter.Bool(false)
	}
	return c, nil
}

func newQueryCommand(a *app) *cobra.Command {
	var f queryFlags

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query close approaches that match all given criteria",
		Long: `Query close approaches that match all given criteria.

Without --outfile, results are printed (at most 10 unless --limit is given).
With --outfile, results are written as CSV or JSON depending on the extension.`,
		Example: `  neo query --date 2020-01-01
  neo query --start-date 2020-01-01 --end-date 2020-12-31 --hazardous --limit 5
  neo query --max-distance 0.025 --min-velocity 20 --outfile results.json.gz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			c, err := f.criteria()
			if err != nil {
				return err
			}

			db, err := a.database(ctx)
			if err != nil {
				return err
			}

			filters := filter.Create(c)
			out := cmd.OutOrStdout()

			if f.outfile != "" {
				n, err := a.writer().Write(ctx, f.outfile, filter.Limit(db.Query(ctx, filters...), f.limit))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %d close approaches to %s.\n", n, f.outfile)
				return nil
			}

			limit := f.limit
			if limit <= 0 {
				limit = defaultStdoutLimit
			}

			for ca, err := range filter.Limit(db.Query(ctx, filters...), limit) {
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ca)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.date, "date", "d", "", "only approaches on this date (YYYY-MM-DD)")
	flags.StringVarP(&f.startDate, "start-date", "s", "", "only approaches on or after this date (YYYY-MM-DD)")
	flags.StringVarP(&f.endDate, "end-date", "e", "", "only approaches on or before this date (YYYY-MM-DD)")
	flags.StringVar(&f.minDistance, "min-distance", "", "minimum approach distance in au")
	flags.StringVar(&f.maxDistance, "max-distance", "", "maximum approach distance in au")
	flags.StringVar(&f.minVelocity, "min-velocity", "", "minimum relative velocity in km/s")
	flags.StringVar(&f.maxVelocity, "max-velocity", "", "maximum relative velocity in km/s")
	flags.StringVar(&f.minDiameter, "min-diameter", "", "minimum NEO diameter in km")
	flags.StringVar(&f.maxDiameter, "max-diameter", "", "maximum NEO diameter in km")
	flags.BoolVar(&f.hazardous, "hazardous", false, "only potentially hazardous NEOs")
	flags.BoolVar(&f.notHazardous, "not-hazardous", false, "only NEOs that are not potentially hazardous")
	flags.IntVarP(&f.limit, "limit", "l", 0, "maximum number of results")
	flags.StringVarP(&f.outfile, "outfile", "o", "", "write results to this CSV or JSON location")
	cmd.MarkFlagsMutuallyExclusive("hazardous", "not-hazardous")

	return cmd
}
