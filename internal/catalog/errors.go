package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCatalog      = errors.New("catalog has no materials")
	ErrMissingColumn     = errors.New("missing column")
	ErrInvalidValue      = errors.New("invalid value")
	ErrDuplicateMaterial = errors.New("duplicate material")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// LoadError reports why a catalog source could not be turned into a Catalog.
// Row is 1-based over data rows and zero when the failure is not row specific.
type LoadError struct {
	Source string
	Row    int
	Err    error
}

func (e *LoadError) Error() string {
	msg := "load catalog"
	if e.Source != "" {
		msg += " " + e.Source
	}
	if e.Row > 0 {
		msg += fmt.Sprintf(" (row %d)", e.Row)
	}
	return msg + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
