package directory

import (
	"reflect"
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Itaqui  ", "itaqui"},
		{"São   Luís", "sao luis"},
		{"PONTA DA MADEIRA", "ponta da madeira"},
		{"Tegram\tBerço 3", "tegram berco 3"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeKey(tc.in); got != tc.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeKeyIdempotent(t *testing.T) {
	inputs := []string{"  Itaqui ", "São Luís", "BERÇO 106", "a  b   c", "99"}
	for _, s := range inputs {
		once := NormalizeKey(s)
		if twice := NormalizeKey(once); twice != once {
			t.Errorf("NormalizeKey not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

func TestNormalizeBerthKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"099", "99"},
		{"99", "99"},
		{"0099", "99"},
		{"0", "0"},
		{"Berço 3", "berco 3"},
		{"106", "106"},
	}

	for _, tc := range cases {
		if got := NormalizeBerthKey(tc.in); got != tc.want {
			t.Errorf("NormalizeBerthKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFindExistingKey(t *testing.T) {
	existing := []string{"Itaqui", "Ponta da Madeira"}

	if k, ok := FindExistingKey("  ITAQUI ", existing); !ok || k != "Itaqui" {
		t.Errorf("expected literal key Itaqui, got %q ok=%v", k, ok)
	}
	if _, ok := FindExistingKey("Santos", existing); ok {
		t.Error("unrelated candidate should not match")
	}
}

func sample() PortDirectory {
	return PortDirectory{
		"Itaqui": {Terminals: map[string]Terminal{
			"Itaqui": {Berths: []string{"100", "99"}},
		}},
	}
}

func TestMergeIdentity(t *testing.T) {
	d := sample()

	if got := Merge(d, nil); !reflect.DeepEqual(got, d) {
		t.Errorf("Merge(D, nil) changed the directory: %+v", got)
	}
	if got := Merge(d, PortDirectory{}); !reflect.DeepEqual(got, d) {
		t.Errorf("Merge(D, {}) changed the directory: %+v", got)
	}
	if got := Merge(d, d); !reflect.DeepEqual(got, d) {
		t.Errorf("Merge(D, D) is not idempotent: %+v", got)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	existing := sample()
	incoming := PortDirectory{
		"Itaqui": {Terminals: map[string]Terminal{
			"Itaqui": {Berths: []string{"104"}},
		}},
	}

	Merge(existing, incoming)

	if !reflect.DeepEqual(existing, sample()) {
		t.Errorf("Merge mutated the existing directory: %+v", existing)
	}
	if len(incoming["Itaqui"].Terminals["Itaqui"].Berths) != 1 {
		t.Errorf("Merge mutated the incoming directory: %+v", incoming)
	}
}

func TestMergeDedupsByNormalizedIdentity(t *testing.T) {
	existing := PortDirectory{
		"itaqui ": {Terminals: map[string]Terminal{
			" Itaqui": {Berths: []string{"99"}},
		}},
	}
	incoming := PortDirectory{
		"Itaqui": {Terminals: map[string]Terminal{
			"Itaqui": {Berths: []string{"099"}},
		}},
	}

	merged := Merge(existing, incoming)

	if len(merged) != 1 {
		t.Fatalf("port keys should collapse to one entry, got %d", len(merged))
	}
	port, ok := merged["itaqui "]
	if !ok {
		t.Fatal("first-seen literal port spelling should be retained")
	}
	if len(port.Terminals) != 1 {
		t.Fatalf("terminal keys should collapse to one entry, got %d", len(port.Terminals))
	}
	term, ok := port.Terminals[" Itaqui"]
	if !ok {
		t.Fatal("first-seen literal terminal spelling should be retained")
	}
	if !reflect.DeepEqual(term.Berths, []string{"99"}) {
		t.Errorf("leading-zero variant should dedup against existing berth, got %v", term.Berths)
	}
}

func TestMergeAccentInsensitive(t *testing.T) {
	existing := PortDirectory{
		"São Luís": {Terminals: map[string]Terminal{"Tegram": {Berths: []string{"1"}}}},
	}
	incoming := PortDirectory{
		"Sao Luis": {Terminals: map[string]Terminal{"TEGRAM": {Berths: []string{"2"}}}},
	}

	merged := Merge(existing, incoming)

	if len(merged) != 1 {
		t.Fatalf("accent variants should collapse, got %d ports", len(merged))
	}
	term := merged["São Luís"].Terminals["Tegram"]
	if !reflect.DeepEqual(term.Berths, []string{"1", "2"}) {
		t.Errorf("expected sorted merged berths [1 2], got %v", term.Berths)
	}
}

func TestMergeKeepsBerthsSorted(t *testing.T) {
	existing := PortDirectory{
		"Itaqui": {Terminals: map[string]Terminal{"Itaqui": {Berths: []string{"100"}}}},
	}
	incoming := PortDirectory{
		"Itaqui": {Terminals: map[string]Terminal{"Itaqui": {Berths: []string{"108", "104"}}}},
	}

	merged := Merge(existing, incoming)
	got := merged["Itaqui"].Terminals["Itaqui"].Berths
	want := []string{"100", "104", "108"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected sorted berths %v, got %v", want, got)
	}
}

func TestMergeOrderIndependent(t *testing.T) {
	a := PortDirectory{
		"Itaqui": {Terminals: map[string]Terminal{"Itaqui": {Berths: []string{"99"}}}},
	}
	b := PortDirectory{
		"Itaqui": {Terminals: map[string]Terminal{"Itaqui": {Berths: []string{"104"}}}},
	}

	ab := Merge(Merge(PortDirectory{}, a), b)
	ba := Merge(Merge(PortDirectory{}, b), a)

	gotAB := ab["Itaqui"].Terminals["Itaqui"].Berths
	gotBA := ba["Itaqui"].Terminals["Itaqui"].Berths
	if !reflect.DeepEqual(gotAB, gotBA) {
		t.Errorf("berth sets differ by merge order: %v vs %v", gotAB, gotBA)
	}
}

func TestMergeRepeatedBatch(t *testing.T) {
	batch := PortDirectory{
		"Itaqui": {Terminals: map[string]Terminal{"Itaqui": {Berths: []string{"099", "106"}}}},
	}

	once := Merge(PortDirectory{}, batch)
	twice := Merge(once, batch)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("re-merging the same batch changed the directory: %+v vs %+v", once, twice)
	}
}
