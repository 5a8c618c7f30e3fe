package directory

import "sort"

// Terminal holds the berth entries of one terminal. Berth strings keep
// their first-seen literal spelling and stay lexicographically sorted.
type Terminal struct {
	Berths []string `json:"berths"`
}

// Port holds the terminals of one port, keyed by literal terminal name.
type Port struct {
	Terminals map[string]Terminal `json:"terminals"`
}

// PortDirectory is the full reference directory, keyed by literal port
// name. Key identity is defined by NormalizeKey, not raw string equality.
type PortDirectory map[string]Port

// Clone returns a deep copy of the directory.
func (d PortDirectory) Clone() PortDirectory {
	out := make(PortDirectory, len(d))
	for portName, port := range d {
		terminals := make(map[string]Terminal, len(port.Terminals))
		for termName, term := range port.Terminals {
			berths := make([]string, len(term.Berths))
			copy(berths, term.Berths)
			terminals[termName] = Terminal{Berths: berths}
		}
		out[portName] = Port{Terminals: terminals}
	}
	return out
}

// Merge folds incoming reference data into existing and returns the
// merged directory without mutating either input. Ports and terminals
// dedup by NormalizeKey, berths by NormalizeBerthKey; in every case the
// first-seen literal spelling wins. Merge(d, nil) == d and
// Merge(d, d) == d, so repeated uploads of the same batch are harmless.
func Merge(existing, incoming PortDirectory) PortDirectory {
	merged := existing.Clone()

	for _, portName := range sortedKeys(incoming) {
		inPort := incoming[portName]
		key := resolvePortKey(merged, portName)

		port := merged[key]
		if port.Terminals == nil {
			port.Terminals = make(map[string]Terminal)
		}

		for _, termName := range sortedTerminalKeys(inPort.Terminals) {
			inTerm := inPort.Terminals[termName]
			termKey := resolveTerminalKey(port.Terminals, termName)

			term := port.Terminals[termKey]
			for _, berth := range inTerm.Berths {
				if !berthExists(term.Berths, berth) {
					term.Berths = append(term.Berths, berth)
				}
			}
			sort.Strings(term.Berths)
			port.Terminals[termKey] = term
		}

		merged[key] = port
	}

	return merged
}

func resolvePortKey(d PortDirectory, candidate string) string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	if k, ok := FindExistingKey(candidate, keys); ok {
		return k
	}
	d[candidate] = Port{Terminals: make(map[string]Terminal)}
	return candidate
}

func resolveTerminalKey(terminals map[string]Terminal, candidate string) string {
	keys := make([]string, 0, len(terminals))
	for k := range terminals {
		keys = append(keys, k)
	}
	if k, ok := FindExistingKey(candidate, keys); ok {
		return k
	}
	terminals[candidate] = Terminal{}
	return candidate
}

func berthExists(berths []string, candidate string) bool {
	want := NormalizeBerthKey(candidate)
	for _, b := range berths {
		if NormalizeBerthKey(b) == want {
			return true
		}
	}
	return false
}

func sortedKeys(d PortDirectory) []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedTerminalKeys(terminals map[string]Terminal) []string {
	keys := make([]string, 0, len(terminals))
	for k := range terminals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
