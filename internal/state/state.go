// Package state persists the user's session between invocations.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/st3v3nmw/cfc/internal/problem"
	"github.com/st3v3nmw/cfc/internal/registry"
	"github.com/tidwall/gjson"
)

const (
	// AppDir is the directory under the user's cache directory.
	AppDir = "cfcf"
	// FileName is the name of the persisted record.
	FileName = "app_state.json"

	cacheDirEnv = "CFCF_CACHE_DIR"
)

// State is the whole persisted record. A nil field is absent.
type State struct {
	Editor            *registry.Editor    `json:"editor"`
	Languages         []registry.Language `json:"languages"`
	CurrentProblem    *problem.ID         `json:"current_problem"`
	CurrentLanguage   *registry.Language  `json:"current_language"`
	FavouriteLanguage *registry.Language  `json:"favourite_language"`
}

// CacheDir returns the application's cache directory:
// $CFCF_CACHE_DIR if set, ~/.cache/cfcf otherwise.
func CacheDir() (string, error) {
	if dir := os.Getenv(cacheDirEnv); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}

	return filepath.Join(home, ".cache", AppDir), nil
}

// Store reads and writes the record under a cache directory.
//
// Every setter loads the whole record, changes one field and writes the
// whole record back. Nothing is locked: two invocations running at the same
// time race and the last writer wins.
type Store struct {
	dir string
}

// New returns a store keeping its record in dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the cache directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the location of the persisted record.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Load returns the persisted record. It never fails: a missing, unreadable
// or malformed record yields an empty State.
func (s *Store) Load() *State {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Debug().Err(err).Str("path", s.Path()).Msg("ignoring unreadable state")
		}
		return &State{}
	}

	if err := validate(data); err != nil {
		log.Debug().Err(err).Str("path", s.Path()).Msg("ignoring malformed state")
		return &State{}
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		log.Debug().Err(err).Str("path", s.Path()).Msg("ignoring undecodable state")
		return &State{}
	}

	return &st
}

// validate rejects records that encoding/json would accept but that do not
// describe a State, such as a null inside the language list.
func validate(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("invalid JSON")
	}

	record := gjson.ParseBytes(data)
	if !record.IsObject() {
		return errors.New("record is not an object")
	}

	for _, key := range []string{"editor", "current_problem", "current_language", "favourite_language"} {
		if field := record.Get(key); field.Type != gjson.Null && field.Type != gjson.String {
			return fmt.Errorf("%s is not a string", key)
		}
	}

	if id := record.Get("current_problem"); id.Type == gjson.String && !problem.ID(id.Str).Valid() {
		return fmt.Errorf("invalid current_problem %q", id.Str)
	}

	languages := record.Get("languages")
	if languages.Type == gjson.Null {
		return nil
	}
	if !languages.IsArray() {
		return errors.New("languages is not a list")
	}

	var err error
	languages.ForEach(func(_, language gjson.Result) bool {
		if language.Type != gjson.String {
			err = fmt.Errorf("languages contains %s", language.Raw)
			return false
		}
		return true
	})

	return err
}

// Save replaces the persisted record with st.
func (s *Store) Save(st *State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory %s: %w", s.dir, err)
	}

	if err := writeFileAtomic(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	return nil
}

// Clear resets every field to absent.
func (s *Store) Clear() error {
	return s.Save(&State{})
}

func (s *Store) update(fn func(*State)) error {
	st := s.Load()
	fn(st)
	return s.Save(st)
}

func (s *Store) Editor() *registry.Editor {
	return s.Load().Editor
}

func (s *Store) SetEditor(editor registry.Editor) error {
	return s.update(func(st *State) { st.Editor = &editor })
}

func (s *Store) Languages() []registry.Language {
	return s.Load().Languages
}

// SetLanguages stores the configured languages and the favourite among them in a single write.
func (s *Store) SetLanguages(languages []registry.Language, favourite registry.Language) error {
	return s.update(func(st *State) {
		st.Languages = languages
		st.FavouriteLanguage = &favourite
	})
}

func (s *Store) FavouriteLanguage() *registry.Language {
	return s.Load().FavouriteLanguage
}

func (s *Store) SetFavouriteLanguage(language registry.Language) error {
	return s.update(func(st *State) { st.FavouriteLanguage = &language })
}

func (s *Store) CurrentProblem() *problem.ID {
	return s.Load().CurrentProblem
}

func (s *Store) SetCurrentProblem(id problem.ID) error {
	return s.update(func(st *State) { st.CurrentProblem = &id })
}

func (s *Store) CurrentLanguage() *registry.Language {
	return s.Load().CurrentLanguage
}

func (s *Store) SetCurrentLanguage(language registry.Language) error {
	return s.update(func(st *State) { st.CurrentLanguage = &language })
}

// SetCurrent binds the current problem and its language in a single write.
func (s *Store) SetCurrent(id problem.ID, language registry.Language) error {
	return s.update(func(st *State) {
		st.CurrentProblem = &id
		st.CurrentLanguage = &language
	})
}

// writeFileAtomic writes to a temporary file next to path, then renames it over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return nil
}
