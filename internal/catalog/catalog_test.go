package catalog

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

const sampleCSV = `material,coverage_sqft,waste_factor,unit_cost_usd,labor_cost_per_unit
Drywall Sheet 4x8,32,0.10,12.00,8.00
Joint Compound,450,0.05,15.50,2.00
`

func TestReadCSV_PreservesOrder(t *testing.T) {
	c, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}

	got := c.Materials()
	if got[0].Name != "Drywall Sheet 4x8" || got[1].Name != "Joint Compound" {
		t.Fatalf("unexpected order: %+v", got)
	}
	want := Material{Name: "Drywall Sheet 4x8", CoveragePerUnit: 32, WasteFactor: 0.10, UnitCost: 12, LaborCostPerUnit: 8}
	if got[0] != want {
		t.Fatalf("first material = %+v, want %+v", got[0], want)
	}
}

func TestReadCSV_HeaderIsCaseInsensitiveAndExtraColumnsIgnored(t *testing.T) {
	input := "Notes, Material ,COVERAGE_SQFT,waste_factor,unit_cost_usd,labor_cost_per_unit\n" +
		"cheap,Tape,500,0,4,1\n"
	c, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	m, ok := c.Lookup("Tape")
	if !ok {
		t.Fatalf("expected Tape in catalog")
	}
	if m.CoveragePerUnit != 500 || m.UnitCost != 4 {
		t.Fatalf("unexpected material: %+v", m)
	}
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		row   int
	}{
		{"empty", "", ErrEmptyCatalog, 0},
		{"header only", "material,coverage_sqft,waste_factor,unit_cost_usd,labor_cost_per_unit\n", ErrEmptyCatalog, 0},
		{"missing column", "material,coverage_sqft,waste_factor,unit_cost_usd\nA,1,0,1\n", ErrMissingColumn, 0},
		{"zero coverage", "material,coverage_sqft,waste_factor,unit_cost_usd,labor_cost_per_unit\nA,0,0,1,1\n", ErrInvalidValue, 1},
		{"negative coverage", "material,coverage_sqft,waste_factor,unit_cost_usd,labor_cost_per_unit\nA,1,0,1,1\nB,-3,0,1,1\n", ErrInvalidValue, 2},
		{"not numeric", "material,coverage_sqft,waste_factor,unit_cost_usd,labor_cost_per_unit\nA,abc,0,1,1\n", ErrInvalidValue, 1},
		{"negative waste", "material,coverage_sqft,waste_factor,unit_cost_usd,labor_cost_per_unit\nA,1,-0.1,1,1\n", ErrInvalidValue, 1},
		{"duplicate", "material,coverage_sqft,waste_factor,unit_cost_usd,labor_cost_per_unit\nA,1,0,1,1\nA,2,0,1,1\n", ErrDuplicateMaterial, 2},
		{"infinite waste", "material,coverage_sqft,waste_factor,unit_cost_usd,labor_cost_per_unit\nX,32,inf,12,8\n", ErrInvalidValue, 1},
		{"infinite coverage", "material,coverage_sqft,waste_factor,unit_cost_usd,labor_cost_per_unit\nX,+Inf,0.1,12,8\n", ErrInvalidValue, 1},
		{"infinite labor", "material,coverage_sqft,waste_factor,unit_cost_usd,labor_cost_per_unit\nX,32,0.1,12,Infinity\n", ErrInvalidValue, 1},
		{"duplicate after blank row", "material,coverage_sqft,waste_factor,unit_cost_usd,labor_cost_per_unit\nA,1,0,1,1\n,,,,\nA,2,0,1,1\n", ErrDuplicateMaterial, 3},
		{"invalid after blank row", "material,coverage_sqft,waste_factor,unit_cost_usd,labor_cost_per_unit\n,,,,\nA,0,0,1,1\n", ErrInvalidValue, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("expected *LoadError, got %T", err)
			}
			if le.Row != tt.row {
				t.Fatalf("row = %d, want %d", le.Row, tt.row)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.json")
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want %v", err, ErrUnsupportedFormat)
	}
}

func TestLoad_CSVFileSetsSourceOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.csv")
	content := "material,coverage_sqft,waste_factor,unit_cost_usd,labor_cost_per_unit\nA,0,0,1,1\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := Load(path)
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if le.Source != path {
		t.Fatalf("source = %q, want %q", le.Source, path)
	}
}

func TestLoad_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"material", "coverage_sqft", "waste_factor", "unit_cost_usd", "labor_cost_per_unit"},
		{"Drywall Sheet 4x8", 32, 0.1, 12, 8},
		{"Screws (box)", 500, 0.02, 9.5, 0},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	path := filepath.Join(t.TempDir(), "materials.xlsx")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if m := c.At(1); m.Name != "Screws (box)" || m.UnitCost != 9.5 {
		t.Fatalf("unexpected second material: %+v", m)
	}

	if _, err := ReadXLSX(bytes.NewReader([]byte("not a workbook"))); err == nil {
		t.Fatalf("expected error for invalid workbook")
	}
}

func TestNew_RejectsNonFinite(t *testing.T) {
	inf := math.Inf(1)
	tests := []Material{
		{Name: "A", CoveragePerUnit: inf},
		{Name: "A", CoveragePerUnit: 1, WasteFactor: inf},
		{Name: "A", CoveragePerUnit: 1, UnitCost: inf},
		{Name: "A", CoveragePerUnit: 1, LaborCostPerUnit: math.NaN()},
	}
	for _, m := range tests {
		if _, err := New([]Material{m}); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("New(%+v) err = %v, want %v", m, err, ErrInvalidValue)
		}
	}
}

func TestMaterialsReturnsCopy(t *testing.T) {
	c, err := New([]Material{{Name: "A", CoveragePerUnit: 1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := c.Materials()
	got[0].UnitCost = 99

	if c.At(0).UnitCost != 0 {
		t.Fatalf("catalog was mutated through Materials()")
	}
}
