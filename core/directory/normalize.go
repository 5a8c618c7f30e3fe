// Package directory implements the port/terminal/berth reference
// directory: canonical key normalization, the idempotent merge used when
// operators upload updated reference data, and the read-mostly cache
// store consumed by the pricing engine.
package directory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeKey returns the canonical comparison form of a directory key:
// trimmed, internal whitespace runs collapsed to one space, lowercased,
// diacritics removed. Idempotent.
func NormalizeKey(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ToLower(s)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	return s
}

// NormalizeBerthKey returns the canonical identity of a berth entry.
// On top of NormalizeKey, purely numeric berths drop leading zeros so
// "099", "99" and "0099" collapse to one identity. The same rule feeds
// both merge deduplication and tariff group resolution.
func NormalizeBerthKey(s string) string {
	key := NormalizeKey(s)
	trimmed := strings.TrimLeft(key, "0")
	if trimmed == "" && key != "" {
		return "0"
	}
	if isDigits(trimmed) && trimmed != key {
		return trimmed
	}
	return key
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FindExistingKey returns the existing key whose normalized form equals
// the candidate's, preserving the first-seen literal spelling.
func FindExistingKey(candidate string, existing []string) (string, bool) {
	want := NormalizeKey(candidate)
	for _, k := range existing {
		if NormalizeKey(k) == want {
			return k, true
		}
	}
	return "", false
}
