package tariff

import "testing"

func TestNormalizeBerth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"099", 99},
		{"106", 106},
		{" 104 ", 104},
		{"0099", 99},
		{"0", 0},
		{"", 0},
		{"dolphin", 0},
		{"-3", 0},
	}

	for _, tc := range cases {
		if got := NormalizeBerth(tc.in); got != tc.want {
			t.Errorf("NormalizeBerth(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestResolveGroupLowerTier(t *testing.T) {
	res := ResolveGroup([]string{"099", "104"}, ItaquiPilotageGroups)
	if res.Group == nil {
		t.Fatal("expected a group")
	}
	if res.Group.Name != "Berths 99-104" {
		t.Errorf("expected Berths 99-104, got %s", res.Group.Name)
	}
	if res.MultipleGroups {
		t.Error("single-group selection should not flag MultipleGroups")
	}
}

func TestResolveGroupHigherTier(t *testing.T) {
	res := ResolveGroup([]string{"106"}, ItaquiPilotageGroups)
	if res.Group == nil || res.Group.Name != "Berths 106 & 108" {
		t.Fatalf("expected Berths 106 & 108, got %+v", res.Group)
	}
}

func TestResolveGroupPrecedence(t *testing.T) {
	// A selection spanning both tiers resolves to the higher tier and
	// flags the ambiguity; it never fails.
	res := ResolveGroup([]string{"099", "106"}, ItaquiPilotageGroups)
	if res.Group == nil || res.Group.Name != "Berths 106 & 108" {
		t.Fatalf("higher-priority group should win, got %+v", res.Group)
	}
	if !res.MultipleGroups {
		t.Error("cross-group selection should flag MultipleGroups")
	}
}

func TestResolveGroupPrecedenceIgnoresOrder(t *testing.T) {
	a := ResolveGroup([]string{"106", "099"}, ItaquiPilotageGroups)
	b := ResolveGroup([]string{"099", "106"}, ItaquiPilotageGroups)
	if a.Group.Name != b.Group.Name {
		t.Errorf("resolution depends on selection order: %s vs %s", a.Group.Name, b.Group.Name)
	}
}

func TestResolveGroupNoSelection(t *testing.T) {
	res := ResolveGroup(nil, ItaquiPilotageGroups)
	if res.Group != nil {
		t.Errorf("empty selection should resolve to no group, got %s", res.Group.Name)
	}
	if res.MultipleGroups {
		t.Error("empty selection should not flag MultipleGroups")
	}
}

func TestResolveGroupUnknownBerths(t *testing.T) {
	res := ResolveGroup([]string{"201", "dolphin"}, ItaquiPilotageGroups)
	if res.Group != nil {
		t.Errorf("unknown berths should resolve to no group, got %s", res.Group.Name)
	}
}

func TestClassForDWT(t *testing.T) {
	c := ClassForDWT(75000)
	if c == nil || c.Name != "Panamax" {
		t.Fatalf("expected Panamax for 75000 DWT, got %+v", c)
	}
	if ClassForDWT(500) != nil {
		t.Error("DWT below every class should return nil")
	}
}

func TestRangesForShipType(t *testing.T) {
	if RangesForShipType("bulk carrier") == nil {
		t.Error("ship type lookup should be case-insensitive")
	}
	if RangesForShipType("submarine") != nil {
		t.Error("unknown ship type should return nil")
	}
}
