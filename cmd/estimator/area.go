package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Karel2025colab/BTP-room-estimator/internal/estimate"
	"github.com/Karel2025colab/BTP-room-estimator/internal/quote"
)

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Quick estimate from a total area in square feet",
	Example: `  estimator area --area 200 --complexity 0.05
  estimator area --area 850 --project "Garage" --extra "Permit=40" --extra "Dumpster=120"`,
	RunE: runArea,
}

func runArea(cmd *cobra.Command, args []string) error {
	area, err := cmd.Flags().GetFloat64("area")
	if err != nil {
		return fmt.Errorf("failed to get area: %w", err)
	}
	complexity, err := cmd.Flags().GetFloat64("complexity")
	if err != nil {
		return fmt.Errorf("failed to get complexity: %w", err)
	}
	project, _ := cmd.Flags().GetString("project")
	rawExtras, _ := cmd.Flags().GetStringArray("extra")

	if err := estimate.ValidateArea(area); err != nil {
		return err
	}
	if err := estimate.ValidateComplexity(complexity); err != nil {
		return err
	}
	extras, err := parseExtras(rawExtras)
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	b, total := estimate.EstimateByArea(cat, area, complexity)
	printQuote(cmd.OutOrStdout(), quote.FromArea(project, b, total, extras, time.Now()))
	return nil
}

// parseExtras reads "label=amount" pairs; the last '=' separates the amount.
func parseExtras(raw []string) ([]quote.Extra, error) {
	extras := make([]quote.Extra, 0, len(raw))
	for _, r := range raw {
		i := strings.LastIndex(r, "=")
		if i <= 0 {
			return nil, fmt.Errorf("%w: extra %q must look like label=amount", estimate.ErrInvalidInput, r)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(r[i+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: extra %q amount must be numeric", estimate.ErrInvalidInput, r)
		}
		extras = append(extras, quote.Extra{Label: strings.TrimSpace(r[:i]), Amount: amount})
	}
	if err := quote.ValidateExtras(extras); err != nil {
		return nil, err
	}
	return extras, nil
}

func init() {
	rootCmd.AddCommand(areaCmd)
	areaCmd.Flags().Float64P("area", "a", 200, "total area to cover in square feet")
	areaCmd.Flags().Float64P("complexity", "x", 0.05, "extra allowance for corners and curves (0 to 0.30)")
	areaCmd.Flags().StringP("project", "p", "", "project name shown on the estimate")
	areaCmd.Flags().StringArrayP("extra", "e", nil, "flat-cost line added to the total, as label=amount (repeatable)")
}
