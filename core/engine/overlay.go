package engine

import "github.com/shopspring/decimal"

// Mode tags who owns a field's current value.
type Mode int

const (
	// Auto means the field follows engine proposals.
	Auto Mode = iota

	// Manual means the user edited the field; proposals must not
	// overwrite it.
	Manual
)

// FieldValue is one cost field's current value with its ownership tag.
type FieldValue struct {
	Mode  Mode
	Value decimal.Decimal
}

// Overlay is the consumer side of the override contract: the form owns
// a per-field tagged state and merges proposals only into fields still
// tagged Auto. The engine never mutates an Overlay.
type Overlay map[CostField]FieldValue

// NewOverlay returns an empty overlay; absent fields count as Auto.
func NewOverlay() Overlay {
	return make(Overlay)
}

// SetManual records a user edit, pinning the field against proposals.
func (o Overlay) SetManual(field CostField, value decimal.Decimal) {
	o[field] = FieldValue{Mode: Manual, Value: value}
}

// Apply merges a proposal into the overlay. Fields tagged Manual are
// untouched; Auto fields take the proposed value, or are cleared when
// the proposal no longer prices them (gate reset, missing DWT).
func (o Overlay) Apply(r Result) {
	for _, field := range TrackedFields {
		if cur, ok := o[field]; ok && cur.Mode == Manual {
			continue
		}
		cost, ok := r.Costs[field]
		if !ok || !r.Meta[field].IsAuto {
			delete(o, field)
			continue
		}
		o[field] = FieldValue{Mode: Auto, Value: cost}
	}
}

// Value returns the field's current value, if any.
func (o Overlay) Value(field CostField) (decimal.Decimal, bool) {
	fv, ok := o[field]
	return fv.Value, ok
}
