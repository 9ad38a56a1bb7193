package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary YEAR...",
	Short: "Count accidents per month for each year",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		years, err := parseInts(args)
		if err != nil {
			return err
		}

		p, _ := build()
		table, err := p.Summarize(cmd.Context(), years)
		if err != nil {
			return err
		}

		if summaryJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(table)
		}
		return table.WriteText(os.Stdout)
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "print the table as JSON rows")
}

// parseInts converts arguments to integers. Fractional values are truncated,
// so "2013.7" reads as 2013.
func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		if n, err := strconv.Atoi(a); err == nil {
			out = append(out, n)
			continue
		}
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out = append(out, int(f))
	}
	return out, nil
}
