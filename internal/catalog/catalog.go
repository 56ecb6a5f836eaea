// Package catalog holds the immutable table of material definitions used by
// the estimator.
package catalog

import (
	"fmt"
	"math"
	"strings"
)

// Material describes one purchasable material and the labor needed to install it.
type Material struct {
	Name             string  `json:"material"`
	CoveragePerUnit  float64 `json:"coverage_sqft"`
	WasteFactor      float64 `json:"waste_factor"`
	UnitCost         float64 `json:"unit_cost_usd"`
	LaborCostPerUnit float64 `json:"labor_cost_per_unit"`
}

// Catalog is an ordered, read-only list of materials. It is safe for
// concurrent use because nothing mutates it after New returns.
type Catalog struct {
	materials []Material
	byName    map[string]int
}

// New validates materials and returns a catalog preserving their order.
func New(materials []Material) (*Catalog, error) {
	return newCatalog(materials, nil)
}

// newCatalog is New with the source row of each material. A nil rows slice
// numbers materials by their position.
func newCatalog(materials []Material, rows []int) (*Catalog, error) {
	if len(materials) == 0 {
		return nil, &LoadError{Err: ErrEmptyCatalog}
	}

	c := &Catalog{
		materials: make([]Material, len(materials)),
		byName:    make(map[string]int, len(materials)),
	}
	for i, m := range materials {
		row := i + 1
		if rows != nil {
			row = rows[i]
		}
		m.Name = strings.TrimSpace(m.Name)
		if err := validate(m); err != nil {
			return nil, &LoadError{Row: row, Err: err}
		}
		if _, dup := c.byName[m.Name]; dup {
			return nil, &LoadError{Row: row, Err: fmt.Errorf("%w: %q", ErrDuplicateMaterial, m.Name)}
		}
		c.byName[m.Name] = i
		c.materials[i] = m
	}

	return c, nil
}

func validate(m Material) error {
	switch {
	case m.Name == "":
		return fmt.Errorf("%w: material name is empty", ErrInvalidValue)
	case !(m.CoveragePerUnit > 0) || math.IsInf(m.CoveragePerUnit, 0):
		return fmt.Errorf("%w: coverage_sqft must be a finite number greater than 0, got %v", ErrInvalidValue, m.CoveragePerUnit)
	case !nonNegative(m.WasteFactor):
		return fmt.Errorf("%w: waste_factor must be 0 or more, got %v", ErrInvalidValue, m.WasteFactor)
	case !nonNegative(m.UnitCost):
		return fmt.Errorf("%w: unit_cost_usd must be 0 or more, got %v", ErrInvalidValue, m.UnitCost)
	case !nonNegative(m.LaborCostPerUnit):
		return fmt.Errorf("%w: labor_cost_per_unit must be 0 or more, got %v", ErrInvalidValue, m.LaborCostPerUnit)
	}
	return nil
}

// nonNegative is false for NaN and infinities.
func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// Materials returns a copy of the catalog rows in catalog order.
func (c *Catalog) Materials() []Material {
	out := make([]Material, len(c.materials))
	copy(out, c.materials)
	return out
}

// Len reports the number of materials.
func (c *Catalog) Len() int {
	return len(c.materials)
}

// At returns the i-th material.
func (c *Catalog) At(i int) Material {
	return c.materials[i]
}

// Lookup finds a material by name.
func (c *Catalog) Lookup(name string) (Material, bool) {
	i, ok := c.byName[strings.TrimSpace(name)]
	if !ok {
		return Material{}, false
	}
	return c.materials[i], true
}
