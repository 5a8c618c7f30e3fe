package storage

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"shipda-tariff/core/directory"
	"shipda-tariff/core/output"
	"shipda-tariff/internal/errors"
)

func TestLoadDirectoryFallsBackToEmpty(t *testing.T) {
	src := &MemorySource{Err: errors.Reference("boom", nil)}

	dir, warnings := LoadDirectory(context.Background(), src)
	if dir == nil || len(dir) != 0 {
		t.Errorf("expected empty directory fallback, got %v", dir)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one user-facing warning, got %v", warnings)
	}
}

func TestLoadDirectoryFromMemory(t *testing.T) {
	want := directory.PortDirectory{
		"Itaqui": {Terminals: map[string]directory.Terminal{"Itaqui": {Berths: []string{"106"}}}},
	}
	dir, warnings := LoadDirectory(context.Background(), &MemorySource{Dir: want})

	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if !reflect.DeepEqual(dir, want) {
		t.Errorf("expected %v, got %v", want, dir)
	}
}

func TestFileSourceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.json")
	want := directory.PortDirectory{
		"Itaqui": {Terminals: map[string]directory.Terminal{"Itaqui": {Berths: []string{"099", "106"}}}},
	}

	if err := SaveDirectory(path, want); err != nil {
		t.Fatalf("SaveDirectory: %v", err)
	}

	got, err := (&FileSource{Path: path}).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch: %v vs %v", got, want)
	}
}

func TestFileSourceMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := (&FileSource{Path: path}).Fetch(context.Background())
	if !errors.IsType(err, errors.TypeParsing) {
		t.Errorf("expected a parsing error, got %v", err)
	}
}

func TestMemoryQuoteStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryQuoteStore()

	q := &output.Quote{Port: "Itaqui", Terminal: "Itaqui", DWT: 15000, GeneratedAt: time.Now().UTC()}
	if err := store.Save(ctx, q); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if q.ID == "" {
		t.Fatal("Save should assign an ID")
	}

	got, err := store.Get(ctx, q.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Port != "Itaqui" || got.DWT != 15000 {
		t.Errorf("unexpected quote: %+v", got)
	}

	if _, err := store.Get(ctx, "missing"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestFileQuoteStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileQuoteStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	older := &output.Quote{Port: "Itaqui", GeneratedAt: time.Now().UTC().Add(-time.Hour)}
	newer := &output.Quote{Port: "Itaqui", GeneratedAt: time.Now().UTC()}
	for _, q := range []*output.Quote{older, newer} {
		if err := store.Save(ctx, q); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	quotes, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	if quotes[0].ID != newer.ID {
		t.Errorf("expected newest quote first, got %s", quotes[0].ID)
	}
}
