package tariff

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func testTable() Table {
	return Table{
		{Min: 0, Max: 1000, Rate: brl("6389.79")},
		{Min: 1001, Max: 10000, Rate: brl("8500.00")},
	}
}

func TestPickBracketWithinRange(t *testing.T) {
	b, ok := PickBracket(500, testTable())
	if !ok {
		t.Fatal("expected a bracket")
	}
	if b.Min != 0 || b.Max != 1000 {
		t.Errorf("expected bracket 0-1000, got %v-%v", b.Min, b.Max)
	}
	if !b.Rate.Equal(decimal.RequireFromString("6389.79")) {
		t.Errorf("expected rate 6389.79, got %s", b.Rate)
	}
}

func TestPickBracketBoundaries(t *testing.T) {
	table := testTable()

	b, _ := PickBracket(1000, table)
	if b.Max != 1000 {
		t.Errorf("value 1000 should land in first bracket, got %v-%v", b.Min, b.Max)
	}

	b, _ = PickBracket(1001, table)
	if b.Min != 1001 {
		t.Errorf("value 1001 should land in second bracket, got %v-%v", b.Min, b.Max)
	}
}

func TestPickBracketClampsUpward(t *testing.T) {
	b, ok := PickBracket(1000000, testTable())
	if !ok {
		t.Fatal("expected a bracket")
	}
	if b.Min != 1001 || b.Max != 10000 {
		t.Errorf("oversized value should clamp to last bracket, got %v-%v", b.Min, b.Max)
	}
}

func TestPickBracketClampsDownward(t *testing.T) {
	table := Table{
		{Min: 500, Max: 1000, Rate: brl("100")},
		{Min: 1001, Max: 2000, Rate: brl("200")},
	}
	b, ok := PickBracket(10, table)
	if !ok {
		t.Fatal("expected a bracket")
	}
	if b.Min != 500 {
		t.Errorf("undersized value should clamp to first bracket, got %v-%v", b.Min, b.Max)
	}
}

func TestPickBracketEmptyTable(t *testing.T) {
	if _, ok := PickBracket(100, nil); ok {
		t.Error("empty table should yield no bracket")
	}
}

func TestBracketJSONRoundTrip(t *testing.T) {
	table := Table{
		{Min: 0, Max: 1000, Rate: brl("100")},
		{Min: 1001, Max: math.Inf(1), Rate: brl("200")},
	}

	data, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Table
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 brackets, got %d", len(decoded))
	}
	if !decoded[1].Unbounded() {
		t.Errorf("open-ended Max should survive the round trip, got %v", decoded[1].Max)
	}
	if !decoded[0].Rate.Equal(brl("100")) {
		t.Errorf("rate should survive the round trip, got %s", decoded[0].Rate)
	}
}

func TestPickBracketUnboundedTop(t *testing.T) {
	table := Table{
		{Min: 0, Max: 1000, Rate: brl("100")},
		{Min: 1001, Max: math.Inf(1), Rate: brl("200")},
	}
	b, _ := PickBracket(9e9, table)
	if !b.Unbounded() {
		t.Errorf("huge value should land in the open-ended bracket, got %v-%v", b.Min, b.Max)
	}
}
