package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"

	"shipda-tariff/core/output"
	"shipda-tariff/internal/errors"
)

// QuoteStore persists computed quotes for later listing.
type QuoteStore interface {
	// Save stores a quote, assigning an ID when empty
	Save(ctx context.Context, q *output.Quote) error

	// Get retrieves a quote by ID
	Get(ctx context.Context, id string) (*output.Quote, error)

	// List returns all stored quotes, newest first
	List(ctx context.Context) ([]*output.Quote, error)
}

// MemoryQuoteStore is an in-memory store for tests and ad hoc use.
type MemoryQuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]*output.Quote
}

// NewMemoryQuoteStore creates an empty in-memory store.
func NewMemoryQuoteStore() *MemoryQuoteStore {
	return &MemoryQuoteStore{quotes: make(map[string]*output.Quote)}
}

// Save stores a quote
func (s *MemoryQuoteStore) Save(ctx context.Context, q *output.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	clone := *q
	s.quotes[q.ID] = &clone
	return nil
}

// Get retrieves a quote by ID
func (s *MemoryQuoteStore) Get(ctx context.Context, id string) (*output.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[id]
	if !ok {
		return nil, errors.NotFound("quote", id)
	}
	clone := *q
	return &clone, nil
}

// List returns all stored quotes, newest first
func (s *MemoryQuoteStore) List(ctx context.Context) ([]*output.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*output.Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		clone := *q
		out = append(out, &clone)
	}
	sortQuotes(out)
	return out, nil
}

// FileQuoteStore writes each quote as one JSON file under a directory.
type FileQuoteStore struct {
	Dir string
}

// NewFileQuoteStore creates the directory if needed.
func NewFileQuoteStore(dir string) (*FileQuoteStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Storage("creating quote directory", err)
	}
	return &FileQuoteStore{Dir: dir}, nil
}

// Save stores a quote
func (s *FileQuoteStore) Save(ctx context.Context, q *output.Quote) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	data, err := json.MarshalIndent(q, "", "  ")
	if err != nil {
		return errors.Internal("encoding quote", err)
	}
	path := filepath.Join(s.Dir, q.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Storage("writing quote", err)
	}
	return nil
}

// Get retrieves a quote by ID
func (s *FileQuoteStore) Get(ctx context.Context, id string) (*output.Quote, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, id+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("quote", id)
		}
		return nil, errors.Storage("reading quote", err)
	}
	var q output.Quote
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, errors.Parsing("decoding quote", err)
	}
	return &q, nil
}

// List returns all stored quotes, newest first
func (s *FileQuoteStore) List(ctx context.Context) ([]*output.Quote, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, errors.Storage("listing quotes", err)
	}
	var out []*output.Quote
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		id := entry.Name()[:len(entry.Name())-len(".json")]
		q, err := s.Get(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, q)
	}
	sortQuotes(out)
	return out, nil
}

func sortQuotes(quotes []*output.Quote) {
	sort.Slice(quotes, func(i, j int) bool {
		if !quotes[i].GeneratedAt.Equal(quotes[j].GeneratedAt) {
			return quotes[i].GeneratedAt.After(quotes[j].GeneratedAt)
		}
		return quotes[i].ID < quotes[j].ID
	})
}
