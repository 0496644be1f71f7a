// Package template stores the skeleton copied into new solution files.
package template

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/st3v3nmw/cfc/internal/registry"
)

// DirName is the templates directory under the cache directory.
const DirName = "templates"

// Store keeps one template per language, named by the language's tag.
type Store struct {
	dir string
}

// New returns a store for the templates directory under cacheDir.
func New(cacheDir string) *Store {
	return &Store{dir: filepath.Join(cacheDir, DirName)}
}

// Path returns where the template for a language lives.
func (s *Store) Path(language registry.Language) string {
	return filepath.Join(s.dir, language.Tag())
}

// Get returns the template for a language. ok is false if there is none.
func (s *Store) Get(language registry.Language) (content []byte, ok bool, err error) {
	content, err = os.ReadFile(s.Path(language))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s template: %w", language, err)
	}

	return content, true, nil
}

// Set replaces the template for a language.
func (s *Store) Set(language registry.Language, content []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create templates directory: %w", err)
	}

	if err := os.WriteFile(s.Path(language), content, 0644); err != nil {
		return fmt.Errorf("failed to write %s template: %w", language, err)
	}

	return nil
}

// Remove deletes the template for a language. Removing a missing template is not an error.
func (s *Store) Remove(language registry.Language) error {
	if err := os.Remove(s.Path(language)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s template: %w", language, err)
	}

	return nil
}
