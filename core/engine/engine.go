// Package engine implements the tariff auto-pricing engine.
// The engine is the primary API; the CLI is a thin wrapper around it.
// It only ever proposes values: every recompute returns a fresh
// {costs, meta, warnings} result and the consuming layer decides which
// proposals reach user-visible fields (see Overlay).
package engine

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"shipda-tariff/core/directory"
	"shipda-tariff/core/numeric"
	"shipda-tariff/core/tariff"
)

// CostField names a PDA cost line the engine can auto-fill.
type CostField string

const (
	FieldPilotage  CostField = "pilotage"
	FieldTowage    CostField = "towage"
	FieldLightDues CostField = "light_dues"
)

// TrackedFields lists every field the engine manages.
var TrackedFields = []CostField{FieldPilotage, FieldTowage, FieldLightDues}

// Warning texts accumulated in results. Warnings are hints, never
// errors: a pricing-data gap must not block PDA creation.
const (
	WarnEnterDWT       = "enter vessel DWT to auto-calculate"
	WarnMultipleGroups = "multiple pilotage groups selected; highest group applied"
	WarnNoGroup        = "pilotage tariff not defined for the selected berths"
)

// FieldMeta is the provenance of one proposed cost value.
type FieldMeta struct {
	// Group is the pilotage group name, when group resolution applied.
	Group string `json:"group,omitempty"`

	// Bracket is the tariff bracket the DWT resolved to.
	Bracket *tariff.Bracket `json:"bracket,omitempty"`

	// IsAuto is false once the field was disabled via DisableAutoPricing.
	IsAuto bool `json:"is_auto"`
}

// Result is a fresh pricing proposal. Costs holds only the fields the
// engine could price; Meta always covers every tracked field.
type Result struct {
	Costs    map[CostField]decimal.Decimal `json:"costs"`
	Meta     map[CostField]FieldMeta       `json:"meta"`
	Warnings []string                      `json:"warnings,omitempty"`
}

// Input is one recompute trigger. DWT and ExchangeRate may arrive as
// numbers or locale-formatted strings straight from form fields.
type Input struct {
	Port         string
	Terminal     string
	Berths       []string
	DWT          interface{}
	ExchangeRate interface{}
}

// Config fixes the tariff schedule and the gate pair the engine prices
// for. Auto-pricing activates only when port and terminal both match
// the reference pair (compared by normalized key).
type Config struct {
	ReferencePort     string
	ReferenceTerminal string
	PilotageGroups    []tariff.Group
	TowageTable       tariff.Table
	LightDuesTable    tariff.Table
}

// DefaultConfig returns the Itaqui schedule.
func DefaultConfig() Config {
	return Config{
		ReferencePort:     tariff.ReferencePort,
		ReferenceTerminal: tariff.ReferenceTerminal,
		PilotageGroups:    tariff.ItaquiPilotageGroups,
		TowageTable:       tariff.ItaquiTowageTable,
		LightDuesTable:    tariff.ItaquiLightDuesTable,
	}
}

// Engine computes cost proposals for the configured reference pair.
// Not safe for concurrent use; each form owns one instance.
type Engine struct {
	cfg      Config
	disabled map[CostField]bool

	last    Result
	lastDWT float64
	lastFX  float64
}

// New creates an engine for the given schedule.
func New(cfg Config) *Engine {
	return &Engine{
		cfg:      cfg,
		disabled: make(map[CostField]bool),
	}
}

// CalculatePrices recomputes the pricing proposal for the given inputs.
// It is total: malformed input degrades to warnings and safe defaults,
// never an error.
func (e *Engine) CalculatePrices(in Input) Result {
	e.lastDWT = 0
	e.lastFX = numeric.FromValue(in.ExchangeRate)

	result := Result{
		Costs: make(map[CostField]decimal.Decimal),
		Meta:  make(map[CostField]FieldMeta),
	}
	for _, f := range TrackedFields {
		result.Meta[f] = FieldMeta{IsAuto: false}
	}

	if !e.gateMatches(in.Port, in.Terminal) {
		e.last = result
		return result
	}

	dwt := numeric.FromValue(in.DWT)
	if dwt <= 0 {
		result.Warnings = append(result.Warnings, WarnEnterDWT)
		e.last = result
		return result
	}
	e.lastDWT = dwt

	res := tariff.ResolveGroup(in.Berths, e.cfg.PilotageGroups)
	switch {
	case res.Group != nil:
		if bracket, ok := tariff.PickBracket(dwt, res.Group.Table); ok {
			b := bracket
			result.Costs[FieldPilotage] = bracket.Rate
			result.Meta[FieldPilotage] = FieldMeta{
				Group:   res.Group.Name,
				Bracket: &b,
				IsAuto:  !e.disabled[FieldPilotage],
			}
		}
		if res.MultipleGroups {
			result.Warnings = append(result.Warnings, WarnMultipleGroups)
		}
	case len(in.Berths) > 0:
		result.Warnings = append(result.Warnings, WarnNoGroup)
	}

	e.applyTable(&result, FieldTowage, dwt, e.cfg.TowageTable)
	e.applyTable(&result, FieldLightDues, dwt, e.cfg.LightDuesTable)

	e.last = result
	return result
}

func (e *Engine) applyTable(result *Result, field CostField, dwt float64, table tariff.Table) {
	bracket, ok := tariff.PickBracket(dwt, table)
	if !ok {
		return
	}
	b := bracket
	result.Costs[field] = bracket.Rate
	result.Meta[field] = FieldMeta{
		Bracket: &b,
		IsAuto:  !e.disabled[field],
	}
}

// DisableAutoPricing marks a field as manually owned. Recomputes keep
// calculating the field for hint purposes, but its meta reports
// IsAuto false and consumers must stop applying its proposals.
func (e *Engine) DisableAutoPricing(field CostField) {
	e.disabled[field] = true
	if meta, ok := e.last.Meta[field]; ok {
		meta.IsAuto = false
		e.last.Meta[field] = meta
	}
}

// Disabled reports whether a field was handed over to manual editing.
func (e *Engine) Disabled(field CostField) bool {
	return e.disabled[field]
}

// Last returns the most recent proposal.
func (e *Engine) Last() Result {
	return e.last
}

// HintText renders the provenance hint for a field, empty when the
// field has no current proposal.
func (e *Engine) HintText(field CostField) string {
	cost, ok := e.last.Costs[field]
	if !ok {
		return ""
	}
	meta := e.last.Meta[field]

	hint := fmt.Sprintf("Auto-filled for %s (DWT %s", e.cfg.ReferencePort, formatDWT(e.lastDWT))
	if meta.Group != "" {
		hint += ", " + meta.Group
	}
	hint += ")"

	if e.lastFX > 0 {
		usd := cost.Div(decimal.NewFromFloat(e.lastFX)).Round(2)
		hint += fmt.Sprintf(" ~ USD %s", usd.StringFixed(2))
	}
	if !meta.IsAuto {
		hint += " [manual]"
	}
	return hint
}

func (e *Engine) gateMatches(port, terminal string) bool {
	return directory.NormalizeKey(port) == directory.NormalizeKey(e.cfg.ReferencePort) &&
		directory.NormalizeKey(terminal) == directory.NormalizeKey(e.cfg.ReferenceTerminal)
}

func formatDWT(dwt float64) string {
	return strconv.FormatFloat(dwt, 'f', -1, 64)
}
