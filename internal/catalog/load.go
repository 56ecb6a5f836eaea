package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column names expected in a catalog source.
const (
	ColMaterial  = "material"
	ColCoverage  = "coverage_sqft"
	ColWaste     = "waste_factor"
	ColUnitCost  = "unit_cost_usd"
	ColLaborCost = "labor_cost_per_unit"
)

var requiredColumns = []string{ColMaterial, ColCoverage, ColWaste, ColUnitCost, ColLaborCost}

// Load reads a catalog from a .csv or .xlsx file.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(f, path)
	case ".xlsx":
		return readXLSX(f, path)
	default:
		return nil, &LoadError{Source: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))}
	}
}

// ReadCSV parses a catalog from CSV data with a header row.
func ReadCSV(r io.Reader) (*Catalog, error) {
	return readCSV(r, "")
}

// ReadXLSX parses a catalog from the first sheet of an xlsx workbook.
func ReadXLSX(r io.Reader) (*Catalog, error) {
	return readXLSX(r, "")
}

func readCSV(r io.Reader, source string) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("parse csv: %w", err)}
	}
	return fromRecords(records, source)
}

func readXLSX(r io.Reader, source string) (*Catalog, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("open workbook: %w", err)}
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("read sheet: %w", err)}
	}
	return fromRecords(rows, source)
}

// fromRecords maps a header row plus data rows onto materials. Extra columns
// are ignored; blank rows are skipped.
func fromRecords(records [][]string, source string) (*Catalog, error) {
	if len(records) == 0 {
		return nil, &LoadError{Source: source, Err: ErrEmptyCatalog}
	}

	index := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: %s", ErrMissingColumn, col)}
		}
	}

	materials := make([]Material, 0, len(records)-1)
	rows := make([]int, 0, len(records)-1)
	for i, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		m, err := parseRow(rec, index)
		if err != nil {
			return nil, &LoadError{Source: source, Row: i + 1, Err: err}
		}
		materials = append(materials, m)
		rows = append(rows, i+1)
	}

	c, err := newCatalog(materials, rows)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Source = source
		}
		return nil, err
	}
	return c, nil
}

func parseRow(rec []string, index map[string]int) (Material, error) {
	cell := func(col string) string {
		i := index[col]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	m := Material{Name: cell(ColMaterial)}
	fields := []struct {
		col string
		dst *float64
	}{
		{ColCoverage, &m.CoveragePerUnit},
		{ColWaste, &m.WasteFactor},
		{ColUnitCost, &m.UnitCost},
		{ColLaborCost, &m.LaborCostPerUnit},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(cell(f.col), 64)
		if err != nil {
			return Material{}, fmt.Errorf("%w: %s must be numeric, got %q", ErrInvalidValue, f.col, cell(f.col))
		}
		*f.dst = v
	}
	return m, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
