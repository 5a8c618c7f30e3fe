package tariff

import (
	"sort"
	"strconv"
	"strings"
)

// Group is a named pilotage tariff schedule bound to a fixed set of
// berths. Priority is explicit so precedence survives reordering of the
// configured group list: the highest priority wins when a selection
// touches more than one group.
type Group struct {
	Name     string
	Priority int
	Berths   map[int]bool
	Table    Table
}

// Covers reports whether the normalized berth number belongs to the group.
func (g *Group) Covers(berth int) bool {
	return g.Berths[berth]
}

// NormalizeBerth parses a raw berth identifier to its canonical number.
// Identifiers arrive zero-padded ("099") or with stray whitespace.
// Non-numeric or empty input normalizes to 0, meaning "unmatched" —
// no real berth is numbered 0.
func NormalizeBerth(raw string) int {
	s := strings.TrimSpace(raw)
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Resolution is the outcome of resolving a berth selection to a group.
type Resolution struct {
	// Group is the applicable group, nil when no berth matched any group.
	Group *Group

	// MultipleGroups is set when the selection spans more than one known
	// group; the highest-priority group was applied.
	MultipleGroups bool
}

// ResolveGroup maps a berth selection to the applicable pilotage group.
// Precedence beats list position: if any selected berth belongs to a
// higher-priority group, that group wins outright regardless of what the
// other berths match. The result is always deterministic; ambiguity is
// reported through MultipleGroups, never through failure.
func ResolveGroup(berths []string, groups []Group) Resolution {
	matched := make(map[string]*Group)
	for _, raw := range berths {
		n := NormalizeBerth(raw)
		if n == 0 {
			continue
		}
		for i := range groups {
			if groups[i].Covers(n) {
				matched[groups[i].Name] = &groups[i]
			}
		}
	}

	if len(matched) == 0 {
		return Resolution{}
	}

	candidates := make([]*Group, 0, len(matched))
	for _, g := range matched {
		candidates = append(candidates, g)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority > candidates[j].Priority
		}
		return candidates[i].Name < candidates[j].Name
	})

	return Resolution{
		Group:          candidates[0],
		MultipleGroups: len(matched) > 1,
	}
}
