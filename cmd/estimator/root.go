package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Karel2025colab/BTP-room-estimator/internal/catalog"
)

// catalogPath is set from the --catalog flag.
var catalogPath string

// noColor toggles ANSI color output off when set via --no-color flag.
var noColor bool

var rootCmd = &cobra.Command{
	Use:   "estimator",
	Short: "Estimate sheetrock material and labor costs",
	Long: `Estimator computes sheetrock material quantities and costs, plus labor,
from a material catalog and either a flat area or a list of rooms.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("unable to load catalog: %w", err)
	}
	return cat, nil
}

//nolint:gochecknoinits
func init() {
	defaultCatalog := os.Getenv("CATALOG_PATH")
	if defaultCatalog == "" {
		defaultCatalog = "materials.csv"
	}
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", defaultCatalog, "path to the material catalog (.csv or .xlsx)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color output")
}
