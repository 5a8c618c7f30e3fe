package tariff

import (
	"math"
	"strings"
)

// Range is a closed numeric interval used for vessel dimension hints.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v falls inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// VesselClass maps a commercial vessel class name to its typical
// dimension envelope. Display hints only; there is no write path.
type VesselClass struct {
	Name  string
	DWT   Range
	LOA   Range
	Beam  Range
	Draft Range
}

// VesselClasses is the static vessel class reference table, ascending
// by deadweight.
var VesselClasses = []VesselClass{
	{Name: "Handysize", DWT: Range{10000, 39999}, LOA: Range{130, 180}, Beam: Range{18, 28}, Draft: Range{7, 10}},
	{Name: "Handymax", DWT: Range{40000, 49999}, LOA: Range{150, 200}, Beam: Range{28, 32}, Draft: Range{10, 12}},
	{Name: "Supramax", DWT: Range{50000, 59999}, LOA: Range{180, 200}, Beam: Range{32, 32.3}, Draft: Range{11, 13}},
	{Name: "Panamax", DWT: Range{60000, 79999}, LOA: Range{200, 230}, Beam: Range{32, 32.3}, Draft: Range{12, 14.5}},
	{Name: "Kamsarmax", DWT: Range{80000, 84999}, LOA: Range{225, 229}, Beam: Range{32, 32.3}, Draft: Range{13, 14.5}},
	{Name: "Post-Panamax", DWT: Range{85000, 119999}, LOA: Range{230, 275}, Beam: Range{32.3, 43}, Draft: Range{13.5, 15.5}},
	{Name: "Capesize", DWT: Range{120000, 219999}, LOA: Range{270, 300}, Beam: Range{43, 50}, Draft: Range{16, 18.5}},
	{Name: "VLOC", DWT: Range{220000, math.Inf(1)}, LOA: Range{300, 362}, Beam: Range{50, 65}, Draft: Range{18, 23}},
}

// ShipTypeRange maps a ship type to its usual dimension envelope.
type ShipTypeRange struct {
	Type  string
	DWT   Range
	LOA   Range
	Beam  Range
	Draft Range
}

// ShipTypeRanges is the static ship type reference table.
var ShipTypeRanges = []ShipTypeRange{
	{Type: "General Cargo", DWT: Range{1000, 30000}, LOA: Range{80, 180}, Beam: Range{12, 28}, Draft: Range{5, 10}},
	{Type: "Bulk Carrier", DWT: Range{10000, 400000}, LOA: Range{130, 362}, Beam: Range{18, 65}, Draft: Range{7, 23}},
	{Type: "Container", DWT: Range{10000, 240000}, LOA: Range{130, 400}, Beam: Range{20, 61}, Draft: Range{8, 16.5}},
	{Type: "Tanker", DWT: Range{5000, 320000}, LOA: Range{100, 333}, Beam: Range{15, 60}, Draft: Range{6, 22.5}},
	{Type: "Ro-Ro", DWT: Range{5000, 30000}, LOA: Range{100, 265}, Beam: Range{15, 32.3}, Draft: Range{6, 11}},
}

// ClassForDWT returns the vessel class whose deadweight range contains
// dwt, or nil when none does.
func ClassForDWT(dwt float64) *VesselClass {
	for i := range VesselClasses {
		if VesselClasses[i].DWT.Contains(dwt) {
			return &VesselClasses[i]
		}
	}
	return nil
}

// RangesForShipType returns the dimension envelope for a ship type, or
// nil when the type is unknown. Lookup is case-insensitive.
func RangesForShipType(shipType string) *ShipTypeRange {
	for i := range ShipTypeRanges {
		if strings.EqualFold(ShipTypeRanges[i].Type, shipType) {
			return &ShipTypeRanges[i]
		}
	}
	return nil
}
