// Package quote turns an estimate into a dated, named quote and merges the
// optional flat-cost extras that are kept outside the estimation engine.
package quote

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/Karel2025colab/BTP-room-estimator/internal/estimate"
)

type Mode string

const (
	ModeArea  Mode = "area"
	ModeRooms Mode = "rooms"
)

const defaultProject = "Sheetrock Estimate"

// Extra is a flat-cost line added to the displayed total.
type Extra struct {
	Label  string  `json:"label" yaml:"label"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// ValidateExtras requires a label and a non-negative amount on each extra.
func ValidateExtras(extras []Extra) error {
	for i, e := range extras {
		if strings.TrimSpace(e.Label) == "" {
			return fmt.Errorf("%w: extra #%d label is required", estimate.ErrInvalidInput, i+1)
		}
		if !(e.Amount >= 0) || math.IsInf(e.Amount, 0) {
			return fmt.Errorf("%w: extra %q amount must be a finite number, 0 or more, got %v", estimate.ErrInvalidInput, e.Label, e.Amount)
		}
	}
	return nil
}

// Quote is what the presentation layer renders or serializes.
type Quote struct {
	ID            string         `json:"id"`
	Project       string         `json:"project"`
	CreatedAt     time.Time      `json:"created_at"`
	Mode          Mode           `json:"mode"`
	Area          float64        `json:"area,omitempty"`
	Complexity    float64        `json:"complexity,omitempty"`
	Rounding      string         `json:"rounding,omitempty"`
	Rows          []estimate.Row `json:"rows"`
	EstimateTotal float64        `json:"estimate_total"`
	Extras        []Extra        `json:"extras"`
	ExtrasTotal   float64        `json:"extras_total"`
	GrandTotal    float64        `json:"grand_total"`
}

// FromArea builds a quote from an area estimate.
func FromArea(project string, b estimate.Breakdown, total float64, extras []Extra, now time.Time) Quote {
	q := newQuote(project, ModeArea, b.Rows(""), total, extras, now)
	q.Area = b.Area
	q.Complexity = b.Complexity
	return q
}

// FromRooms builds a quote from a room-by-room estimate.
func FromRooms(project string, rb estimate.RoomsBreakdown, total float64, extras []Extra, now time.Time) Quote {
	q := newQuote(project, ModeRooms, rb.Rows(), total, extras, now)
	q.Rounding = rb.Rounding
	return q
}

func newQuote(project string, mode Mode, rows []estimate.Row, total float64, extras []Extra, now time.Time) Quote {
	project = strings.TrimSpace(project)
	if project == "" {
		project = defaultProject
	}
	if extras == nil {
		extras = []Extra{}
	}

	var extrasTotal float64
	for _, e := range extras {
		extrasTotal += e.Amount
	}
	extrasTotal = estimate.Round(extrasTotal)

	return Quote{
		ID:            uuid.NewString(),
		Project:       project,
		CreatedAt:     now.UTC(),
		Mode:          mode,
		Rows:          rows,
		EstimateTotal: total,
		Extras:        extras,
		ExtrasTotal:   extrasTotal,
		GrandTotal:    estimate.Round(total + extrasTotal),
	}
}

// Text renders the quote as an aligned plain-text table.
func (q Quote) Text() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", q.Project)
	fmt.Fprintf(&sb, "Generated: %s\n", q.CreatedAt.Format("2006-01-02 15:04 MST"))
	switch q.Mode {
	case ModeArea:
		fmt.Fprintf(&sb, "Area: %.2f sq ft, complexity %.0f%%\n", q.Area, q.Complexity*100)
	case ModeRooms:
		fmt.Fprintf(&sb, "Room-by-room estimate (rounding: %s)\n", q.Rounding)
	}
	sb.WriteString("\n")

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := "Material\tUnits\tCoverage\tUnit $\tLabor $/unit\tMaterial $\tLabor $\tTotal $\t"
	if q.Mode == ModeRooms {
		header = "Room\t" + header
	}
	fmt.Fprintln(tw, header)
	for _, r := range q.Rows {
		if q.Mode == ModeRooms {
			fmt.Fprintf(tw, "%s\t", r.Room)
		}
		if r.Total {
			fmt.Fprintf(tw, "%s\t\t\t\t\t%.2f\t%.2f\t%.2f\t\n", r.Material, r.MaterialCost, r.LaborCost, r.TotalCost)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%g\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			r.Material, r.Units, r.CoveragePerUnit, r.UnitCost, r.LaborCostPerUnit,
			r.MaterialCost, r.LaborCost, r.TotalCost)
	}
	_ = tw.Flush()

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Estimate total: $%.2f\n", q.EstimateTotal)
	for _, e := range q.Extras {
		fmt.Fprintf(&sb, "  + %s: $%.2f\n", e.Label, e.Amount)
	}
	fmt.Fprintf(&sb, "Grand total: $%.2f\n", q.GrandTotal)

	return sb.String()
}
