// Package cmd - vessel class reference command
package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"shipda-tariff/core/tariff"
)

// classesCmd prints the static vessel class and ship type tables
var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Show vessel class and ship type dimension ranges",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-14s %-17s %-10s %-11s %s\n", "CLASS", "DWT", "LOA (m)", "BEAM (m)", "DRAFT (m)")
		for _, c := range tariff.VesselClasses {
			fmt.Printf("%-14s %-17s %-10s %-11s %s\n",
				c.Name, rangeLabel(c.DWT, 0), rangeLabel(c.LOA, 0), rangeLabel(c.Beam, 1), rangeLabel(c.Draft, 1))
		}

		fmt.Printf("\n%-14s %-17s %-10s %-11s %s\n", "SHIP TYPE", "DWT", "LOA (m)", "BEAM (m)", "DRAFT (m)")
		for _, s := range tariff.ShipTypeRanges {
			fmt.Printf("%-14s %-17s %-10s %-11s %s\n",
				s.Type, rangeLabel(s.DWT, 0), rangeLabel(s.LOA, 0), rangeLabel(s.Beam, 1), rangeLabel(s.Draft, 1))
		}
	},
}

func rangeLabel(r tariff.Range, decimals int) string {
	if math.IsInf(r.Max, 1) {
		return fmt.Sprintf("%.*f+", decimals, r.Min)
	}
	return fmt.Sprintf("%.*f-%.*f", decimals, r.Min, decimals, r.Max)
}
