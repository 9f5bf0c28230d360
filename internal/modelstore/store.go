// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package modelstore persists fitted models as YAML files in a directory.
package modelstore

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Store reads and writes named models under a single directory.
type Store struct {
	dir string
}

// NewStore creates the model directory if needed and returns a Store on it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating model directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".yaml")
}

// Save marshals model to <dir>/<name>.yaml, replacing any previous version.
func (s *Store) Save(name string, model any) error {
	data, err := yaml.Marshal(model)
	if err != nil {
		return fmt.Errorf("marshaling model %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("writing model %s: %w", name, err)
	}
	return nil
}

// Load unmarshals <dir>/<name>.yaml into model. A missing file is not an
// error; it reports false so callers can start cold.
func (s *Store) Load(name string, model any) (bool, error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading model %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, model); err != nil {
		return false, fmt.Errorf("parsing model %s: %w", name, err)
	}
	return true, nil
}
