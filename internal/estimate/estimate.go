// Package estimate computes sheetrock material quantities, material and labor
// costs, and totals from a material catalog and either a flat area or a list
// of rooms. Every function is a pure computation over its inputs.
package estimate

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Karel2025colab/BTP-room-estimator/internal/catalog"
)

// TotalLabel is the material name carried by the synthetic total row.
const TotalLabel = "TOTAL"

// LineItem is one material's row in a breakdown. Money values are rounded to
// cents; Units is the whole number of units to purchase.
type LineItem struct {
	Material         string  `json:"material"`
	Units            int64   `json:"units"`
	CoveragePerUnit  float64 `json:"coverage_sqft"`
	UnitCost         float64 `json:"unit_cost"`
	LaborCostPerUnit float64 `json:"labor_cost_per_unit"`
	MaterialCost     float64 `json:"material_cost"`
	LaborCost        float64 `json:"labor_cost"`
	TotalCost        float64 `json:"total_cost"`
}

// Totals sums the cost columns of a breakdown. Each value is the rounded sum
// of the unrounded line values.
type Totals struct {
	MaterialCost float64 `json:"material_cost"`
	LaborCost    float64 `json:"labor_cost"`
	TotalCost    float64 `json:"total_cost"`
}

// Breakdown is the result of one area estimate: one line item per catalog
// material in catalog order plus the totals row.
type Breakdown struct {
	Area       float64    `json:"area"`
	Complexity float64    `json:"complexity"`
	Items      []LineItem `json:"items"`
	Totals     Totals     `json:"totals"`
}

// EstimateByArea computes the breakdown for covering area square feet with
// every material in cat, adding complexity on top of each material's own
// waste factor. The second return value is the rounded grand total.
//
// Callers validate area >= 0 and complexity >= 0 beforehand.
func EstimateByArea(cat *catalog.Catalog, area, complexity float64) (Breakdown, float64) {
	b, _ := estimateByArea(cat, area, complexity)
	return b, b.Totals.TotalCost
}

// estimateByArea also returns the unrounded grand total so that callers
// aggregating several breakdowns can choose where to round.
func estimateByArea(cat *catalog.Catalog, area, complexity float64) (Breakdown, decimal.Decimal) {
	a := decimal.NewFromFloat(area)
	extra := decimal.NewFromFloat(complexity)

	b := Breakdown{
		Area:       area,
		Complexity: complexity,
		Items:      make([]LineItem, 0, cat.Len()),
	}

	materialSum := decimal.Zero
	laborSum := decimal.Zero
	for i := 0; i < cat.Len(); i++ {
		m := cat.At(i)

		units := unitsNeeded(a, m, extra)
		materialCost := units.Mul(decimal.NewFromFloat(m.UnitCost))
		laborCost := units.Mul(decimal.NewFromFloat(m.LaborCostPerUnit))

		materialSum = materialSum.Add(materialCost)
		laborSum = laborSum.Add(laborCost)

		b.Items = append(b.Items, LineItem{
			Material:         m.Name,
			Units:            unitCount(units),
			CoveragePerUnit:  m.CoveragePerUnit,
			UnitCost:         m.UnitCost,
			LaborCostPerUnit: m.LaborCostPerUnit,
			MaterialCost:     roundCents(materialCost),
			LaborCost:        roundCents(laborCost),
			TotalCost:        roundCents(materialCost.Add(laborCost)),
		})
	}

	total := materialSum.Add(laborSum)
	b.Totals = Totals{
		MaterialCost: roundCents(materialSum),
		LaborCost:    roundCents(laborSum),
		TotalCost:    roundCents(total),
	}
	return b, total
}

// unitsNeeded is ceil((area / coverage) * (1 + waste + complexity)). The
// product is formed before dividing so that only the final quotient is
// rounded and whole results stay whole.
func unitsNeeded(area decimal.Decimal, m catalog.Material, complexity decimal.Decimal) decimal.Decimal {
	overage := decimal.NewFromInt(1).
		Add(decimal.NewFromFloat(m.WasteFactor)).
		Add(complexity)
	return area.Mul(overage).Div(decimal.NewFromFloat(m.CoveragePerUnit)).Ceil()
}

var maxUnits = decimal.NewFromInt(math.MaxInt64)

// unitCount saturates at math.MaxInt64.
func unitCount(units decimal.Decimal) int64 {
	if units.GreaterThan(maxUnits) {
		return math.MaxInt64
	}
	return units.IntPart()
}

func roundCents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Round rounds v to cents, half away from zero.
func Round(v float64) float64 {
	return roundCents(decimal.NewFromFloat(v))
}

// Rows returns the breakdown as table rows: the line items followed by the
// totals row. room tags every row and may be empty.
func (b Breakdown) Rows(room string) []Row {
	rows := make([]Row, 0, len(b.Items)+1)
	for _, it := range b.Items {
		rows = append(rows, Row{Room: room, LineItem: it})
	}
	rows = append(rows, Row{
		Room:  room,
		Total: true,
		LineItem: LineItem{
			Material:     TotalLabel,
			MaterialCost: b.Totals.MaterialCost,
			LaborCost:    b.Totals.LaborCost,
			TotalCost:    b.Totals.TotalCost,
		},
	})
	return rows
}

// Row is one line of a flattened breakdown table.
type Row struct {
	Room  string `json:"room,omitempty"`
	Total bool   `json:"is_total,omitempty"`
	LineItem
}
