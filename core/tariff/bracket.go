// Package tariff implements the port tariff schedules: tiered bracket
// tables keyed on deadweight tonnage and berth-scoped pilotage groups.
// Tables are fixed at load time and never mutated.
package tariff

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// Bracket is one tier of a tariff table. Max may be math.Inf(1) for an
// open-ended top tier. Rate is the flat charge for the whole tier, in BRL.
type Bracket struct {
	Min  float64
	Max  float64
	Rate decimal.Decimal
}

// Contains reports whether v falls inside the bracket.
func (b Bracket) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Unbounded reports whether the bracket has no upper limit.
func (b Bracket) Unbounded() bool {
	return math.IsInf(b.Max, 1)
}

type bracketJSON struct {
	Min  float64         `json:"min"`
	Max  *float64        `json:"max"`
	Rate decimal.Decimal `json:"rate"`
}

// MarshalJSON encodes an open-ended Max as null; +Inf is not
// representable in JSON.
func (b Bracket) MarshalJSON() ([]byte, error) {
	out := bracketJSON{Min: b.Min, Rate: b.Rate}
	if !b.Unbounded() {
		max := b.Max
		out.Max = &max
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a null Max back to an open-ended bracket.
func (b *Bracket) UnmarshalJSON(data []byte) error {
	var in bracketJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	b.Min = in.Min
	b.Rate = in.Rate
	if in.Max != nil {
		b.Max = *in.Max
	} else {
		b.Max = math.Inf(1)
	}
	return nil
}

// Table is an ordered bracket sequence: ascending, non-overlapping,
// collectively covering [0, +inf).
type Table []Bracket

// PickBracket resolves a non-negative quantity to a bracket.
// Out-of-range quantities clamp to the nearest boundary bracket rather
// than failing: off-schedule tonnage still needs a best-effort quote.
func PickBracket(v float64, table Table) (Bracket, bool) {
	if len(table) == 0 {
		return Bracket{}, false
	}

	for _, b := range table {
		if b.Contains(v) {
			return b, true
		}
	}

	if v < table[0].Min {
		return table[0], true
	}
	return table[len(table)-1], true
}
