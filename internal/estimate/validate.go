package estimate

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Limits accepted at the input boundary.
const (
	MaxArea       = 1_000_000.0
	MaxComplexity = 0.30
	MinRooms      = 1
	MaxRooms      = 10
)

// ErrInvalidInput marks values rejected before they reach the engine.
var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateArea requires 0 <= area <= MaxArea.
func ValidateArea(area float64) error {
	if !finite(area) || area < 0 || area > MaxArea {
		return invalid("area must be between 0 and %.0f sq ft, got %v", MaxArea, area)
	}
	return nil
}

// ValidateComplexity requires 0 <= c <= MaxComplexity.
func ValidateComplexity(c float64) error {
	if !finite(c) || c < 0 || c > MaxComplexity {
		return invalid("complexity must be between 0 and %.2f, got %v", MaxComplexity, c)
	}
	return nil
}

// Validate checks the room's dimensions and opening counts.
func (r Room) Validate() error {
	label := strings.TrimSpace(r.Name)
	if label == "" {
		label = "room"
	}
	dims := []struct {
		name string
		v    float64
	}{
		{"length", r.Length},
		{"width", r.Width},
		{"height", r.Height},
	}
	for _, d := range dims {
		if !finite(d.v) || d.v <= 0 {
			return invalid("%s: %s must be greater than 0, got %v", label, d.name, d.v)
		}
	}
	if r.Doors < 0 {
		return invalid("%s: doors must be 0 or more, got %d", label, r.Doors)
	}
	if r.Windows < 0 {
		return invalid("%s: windows must be 0 or more, got %d", label, r.Windows)
	}
	if gross := r.WallArea() + r.CeilingArea(); gross > MaxArea {
		return invalid("%s: walls and ceiling must total at most %.0f sq ft, got %v", label, MaxArea, gross)
	}
	return nil
}

// ValidateRooms checks the room count and every room.
func ValidateRooms(rooms []Room) error {
	if len(rooms) < MinRooms || len(rooms) > MaxRooms {
		return invalid("room count must be between %d and %d, got %d", MinRooms, MaxRooms, len(rooms))
	}
	for _, r := range rooms {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}
