// Package storage provides the reference-data and quote storage
// adapters. Directory loading never fails hard: any fetch or decode
// problem degrades to an empty directory plus a user-facing warning.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"shipda-tariff/core/directory"
	"shipda-tariff/internal/errors"
	"shipda-tariff/internal/logging"

	"go.uber.org/zap"
)

// DirectorySource fetches the raw port directory document.
type DirectorySource interface {
	// Fetch retrieves the directory
	Fetch(ctx context.Context) (directory.PortDirectory, error)

	// Describe names the source for warnings and logs
	Describe() string
}

// FileSource reads the directory from a local JSON file.
type FileSource struct {
	Path string
}

// Fetch retrieves the directory
func (s *FileSource) Fetch(ctx context.Context) (directory.PortDirectory, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Reference("reading port directory file", err)
	}
	return decodeDirectory(data)
}

// Describe names the source
func (s *FileSource) Describe() string { return s.Path }

// HTTPSource fetches the directory over HTTP.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Fetch retrieves the directory
func (s *HTTPSource) Fetch(ctx context.Context) (directory.PortDirectory, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, errors.Reference("building directory request", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Reference("fetching port directory", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.TypeReference, "fetching port directory: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, errors.Reference("reading directory response", err)
	}
	return decodeDirectory(data)
}

// Describe names the source
func (s *HTTPSource) Describe() string { return s.URL }

// MemorySource serves a fixed in-memory directory, mainly for tests.
type MemorySource struct {
	Dir directory.PortDirectory
	Err error
}

// Fetch retrieves the directory
func (s *MemorySource) Fetch(ctx context.Context) (directory.PortDirectory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Dir.Clone(), nil
}

// Describe names the source
func (s *MemorySource) Describe() string { return "memory" }

// LoadDirectory fetches the directory from the source, falling back to
// an empty directory on failure. The returned warnings are user-facing;
// the error path is fully absorbed so lookups simply return no matches.
func LoadDirectory(ctx context.Context, src DirectorySource) (directory.PortDirectory, []string) {
	dir, err := src.Fetch(ctx)
	if err != nil {
		logging.Warn("port directory unavailable, using empty directory",
			zap.String("source", src.Describe()),
			zap.Error(err))
		warning := fmt.Sprintf("port directory could not be loaded from %s; selectors will be empty", src.Describe())
		return directory.PortDirectory{}, []string{warning}
	}

	logging.Info("port directory loaded",
		zap.String("source", src.Describe()),
		zap.Int("ports", len(dir)))
	return dir, nil
}

func decodeDirectory(data []byte) (directory.PortDirectory, error) {
	var dir directory.PortDirectory
	if err := json.Unmarshal(data, &dir); err != nil {
		return nil, errors.Parsing("decoding port directory JSON", err)
	}
	if dir == nil {
		dir = directory.PortDirectory{}
	}
	return dir, nil
}

// SaveDirectory writes the directory back to a JSON file, replacing the
// previous document wholesale.
func SaveDirectory(path string, dir directory.PortDirectory) error {
	data, err := json.MarshalIndent(dir, "", "  ")
	if err != nil {
		return errors.Internal("encoding port directory", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Reference("creating directory path", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Reference("writing port directory file", err)
	}
	return nil
}
