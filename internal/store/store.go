// Package store persists the profile snapshot as profile.json under a
// project directory. The analysis engine never touches the store; it
// only ever sees the loaded snapshot.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/freedomd-dev/freedomd/internal/model"
)

// FileName is the profile file name inside a project directory.
const FileName = "profile.json"

// Load reads the profile from a project directory.
func Load(dir string) (model.Profile, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Profile{}, fmt.Errorf("reading profile: %w", err)
	}
	var p model.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Profile{}, fmt.Errorf("parsing profile: %w", err)
	}
	return p, nil
}

// Save writes the profile to a project directory.
func Save(dir string, p model.Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	data = append(data, '\n')
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// Exists reports whether a profile file is present in dir.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FileName))
	return !errors.Is(err, fs.ErrNotExist)
}
