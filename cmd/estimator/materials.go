package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:     "materials",
	Aliases: []string{"ls"},
	Short:   "List the materials in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, color.New(color.Bold).Sprintf("%d materials from %s", cat.Len(), catalogPath))

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Material\tCoverage (sq ft)\tWaste\tUnit $\tLabor $/unit")
		for _, m := range cat.Materials() {
			fmt.Fprintf(tw, "%s\t%g\t%.0f%%\t%.2f\t%.2f\n", m.Name, m.CoveragePerUnit, m.WasteFactor*100, m.UnitCost, m.LaborCostPerUnit)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
