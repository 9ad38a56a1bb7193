package main

import (
	"github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map STATE YEAR",
	Short: "Plot one state's accidents for a year",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseInts(args)
		if err != nil {
			return err
		}

		p, _ := build()
		return p.MapState(cmd.Context(), nums[0], nums[1])
	},
}
