package estimate

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Karel2025colab/BTP-room-estimator/internal/catalog"
)

const (
	// DoorArea is the nominal opening of a 3ft x 7ft door, in square feet.
	DoorArea = 21.0
	// WindowArea is the nominal opening of a 3ft x 4ft window, in square feet.
	WindowArea = 12.0
	// RoomComplexity is the fixed allowance applied to every room estimate.
	RoomComplexity = 0.10
)

// Room is one room of a detailed estimate. Dimensions are in feet.
type Room struct {
	Name    string  `json:"name" yaml:"name"`
	Length  float64 `json:"length" yaml:"length"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	Doors   int     `json:"doors" yaml:"doors"`
	Windows int     `json:"windows" yaml:"windows"`
}

// WallArea is the gross area of the four walls.
func (r Room) WallArea() float64 {
	return 2 * r.Height * (r.Length + r.Width)
}

// CeilingArea is the area of the ceiling.
func (r Room) CeilingArea() float64 {
	return r.Length * r.Width
}

// OpeningArea is the nominal area taken by doors and windows.
func (r Room) OpeningArea() float64 {
	return float64(r.Doors)*DoorArea + float64(r.Windows)*WindowArea
}

// UsableArea is walls plus ceiling minus openings, never below zero.
func (r Room) UsableArea() float64 {
	return math.Max(r.WallArea()+r.CeilingArea()-r.OpeningArea(), 0)
}

// Rounding selects how room totals are combined into the grand total.
type Rounding int

const (
	// RoundPerRoom sums the already rounded room totals and rounds the sum.
	RoundPerRoom Rounding = iota
	// RoundOnce sums the unrounded room totals and rounds once.
	RoundOnce
)

func (r Rounding) String() string {
	switch r {
	case RoundOnce:
		return "once"
	default:
		return "per-room"
	}
}

// RoomBreakdown is the estimate for a single room.
type RoomBreakdown struct {
	Room       Room      `json:"room"`
	UsableArea float64   `json:"usable_area"`
	Breakdown  Breakdown `json:"breakdown"`
}

// RoomsBreakdown is the estimate for a list of rooms, in input order.
type RoomsBreakdown struct {
	Rooms      []RoomBreakdown `json:"rooms"`
	Rounding   string          `json:"rounding"`
	GrandTotal float64         `json:"grand_total"`
}

// Rows flattens the per-room breakdowns into one table. Every row carries its
// room name and each room ends with its own totals row.
func (rb RoomsBreakdown) Rows() []Row {
	var rows []Row
	for _, r := range rb.Rooms {
		rows = append(rows, r.Breakdown.Rows(r.Room.Name)...)
	}
	return rows
}

// EstimateByRooms estimates every room with RoomComplexity and returns the
// breakdown and grand total using RoundPerRoom.
func EstimateByRooms(cat *catalog.Catalog, rooms []Room) (RoomsBreakdown, float64) {
	return EstimateByRoomsRounding(cat, rooms, RoundPerRoom)
}

// EstimateByRoomsRounding is EstimateByRooms with an explicit grand total
// rounding mode.
func EstimateByRoomsRounding(cat *catalog.Catalog, rooms []Room, mode Rounding) (RoomsBreakdown, float64) {
	out := RoomsBreakdown{
		Rooms:    make([]RoomBreakdown, 0, len(rooms)),
		Rounding: mode.String(),
	}

	sum := decimal.Zero
	for _, room := range rooms {
		area := room.UsableArea()
		b, unrounded := estimateByArea(cat, area, RoomComplexity)

		if mode == RoundOnce {
			sum = sum.Add(unrounded)
		} else {
			sum = sum.Add(decimal.NewFromFloat(b.Totals.TotalCost))
		}

		out.Rooms = append(out.Rooms, RoomBreakdown{Room: room, UsableArea: area, Breakdown: b})
	}

	out.GrandTotal = roundCents(sum)
	return out, out.GrandTotal
}
