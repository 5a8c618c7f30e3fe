// Package output renders quote results for humans and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"shipda-tariff/core/engine"
	"shipda-tariff/core/tariff"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Quote is the complete output of one pricing run.
type Quote struct {
	// ID identifies a saved quote, empty for ad hoc runs
	ID string `json:"id,omitempty"`

	// Port and Terminal are the literal inputs
	Port     string `json:"port"`
	Terminal string `json:"terminal"`

	// Berths is the literal berth selection
	Berths []string `json:"berths,omitempty"`

	// DWT is the normalized deadweight tonnage
	DWT float64 `json:"dwt"`

	// Currency the costs are expressed in
	Currency string `json:"currency"`

	// Result is the engine proposal
	Result engine.Result `json:"result"`

	// Hints is per-field provenance text
	Hints map[engine.CostField]string `json:"hints,omitempty"`

	// GeneratedAt timestamp
	GeneratedAt time.Time `json:"generated_at"`
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the quote
	Render(w io.Writer, q *Quote) error
}

// NewFormatter returns the formatter for a format name, defaulting to CLI.
func NewFormatter(format string) Formatter {
	switch Format(format) {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &CLIFormatter{}
	}
}

// JSONFormatter renders a quote as indented JSON.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the quote as JSON
func (f *JSONFormatter) Render(w io.Writer, q *Quote) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(q)
}

// CLIFormatter renders a quote as a terminal table.
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes the quote as a table
func (f *CLIFormatter) Render(w io.Writer, q *Quote) error {
	fmt.Fprintf(w, "Port:     %s\n", q.Port)
	fmt.Fprintf(w, "Terminal: %s\n", q.Terminal)
	if len(q.Berths) > 0 {
		fmt.Fprintf(w, "Berths:   %s\n", strings.Join(q.Berths, ", "))
	}
	fmt.Fprintf(w, "DWT:      %.0f\n\n", q.DWT)

	fmt.Fprintf(w, "%-12s %14s  %-8s %s\n", "COST LINE", q.Currency, "SOURCE", "DETAIL")
	for _, field := range engine.TrackedFields {
		cost, ok := q.Result.Costs[field]
		if !ok {
			fmt.Fprintf(w, "%-12s %14s  %-8s %s\n", fieldLabel(field), "-", "-", "")
			continue
		}
		meta := q.Result.Meta[field]
		source := "auto"
		if !meta.IsAuto {
			source = "manual"
		}
		detail := ""
		if meta.Group != "" {
			detail = meta.Group
		}
		if meta.Bracket != nil {
			if detail != "" {
				detail += ", "
			}
			detail += bracketLabel(*meta.Bracket)
		}
		fmt.Fprintf(w, "%-12s %14s  %-8s %s\n", fieldLabel(field), cost.StringFixed(2), source, detail)
	}

	if len(q.Result.Warnings) > 0 {
		fmt.Fprintln(w)
		for _, warning := range q.Result.Warnings {
			fmt.Fprintf(w, "warning: %s\n", warning)
		}
	}
	return nil
}

func fieldLabel(field engine.CostField) string {
	switch field {
	case engine.FieldPilotage:
		return "Pilotage"
	case engine.FieldTowage:
		return "Towage"
	case engine.FieldLightDues:
		return "Light dues"
	default:
		return string(field)
	}
}

func bracketLabel(b tariff.Bracket) string {
	if b.Unbounded() {
		return fmt.Sprintf("DWT %.0f+", b.Min)
	}
	return fmt.Sprintf("DWT %.0f-%.0f", b.Min, b.Max)
}
