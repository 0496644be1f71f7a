package state_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/st3v3nmw/cfc/internal/problem"
	"github.com/st3v3nmw/cfc/internal/registry"
	"github.com/st3v3nmw/cfc/internal/state"
)

func ptr[T any](v T) *T {
	return &v
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		state *state.State
	}{
		{
			name:  "All Absent",
			state: &state.State{},
		},
		{
			name: "All Present",
			state: &state.State{
				Editor:            ptr(registry.Neovim),
				Languages:         []registry.Language{registry.Cpp, registry.Rust},
				CurrentProblem:    ptr(problem.ID("1987C")),
				CurrentLanguage:   ptr(registry.Rust),
				FavouriteLanguage: ptr(registry.Rust),
			},
		},
		{
			name:  "Empty Languages",
			state: &state.State{Languages: []registry.Language{}},
		},
		{
			name: "Insertion Order",
			state: &state.State{
				Languages: []registry.Language{registry.Java, registry.Pypy, registry.C},
			},
		},
		{
			name: "Favourite Not Configured",
			state: &state.State{
				Languages:         []registry.Language{registry.Python},
				FavouriteLanguage: ptr(registry.Java),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := state.New(t.TempDir())

			if err := store.Save(tt.state); err != nil {
				t.Fatalf("Save: %v", err)
			}

			got := store.Load()
			if !reflect.DeepEqual(got, tt.state) {
				t.Errorf("Load() = %+v, want %+v", got, tt.state)
			}
		})
	}
}

func TestLoadNeverFails(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "Not JSON", contents: "not json at all"},
		{name: "Truncated", contents: `{"editor":"Vim","languages":["Cp`},
		{name: "Unknown Editor", contents: `{"editor":"Emacs"}`},
		{name: "Unknown Language", contents: `{"languages":["Go"]}`},
		{name: "Wrong Type", contents: `{"current_problem":42}`},
		{name: "Empty", contents: ""},
		{name: "Null Language", contents: `{"languages":[null],"editor":null}`},
		{name: "Number Language", contents: `{"languages":["Cpp",2]}`},
		{name: "Languages Not A List", contents: `{"languages":"Cpp"}`},
		{name: "Numeric Editor", contents: `{"editor":0}`},
		{name: "Numeric Favourite", contents: `{"languages":["Cpp"],"favourite_language":2}`},
		{name: "Path In Problem", contents: `{"current_problem":"../x","current_language":"Cpp"}`},
		{name: "Lowercase Problem", contents: `{"current_problem":"1987c","current_language":"Cpp"}`},
		{name: "Not An Object", contents: `["Cpp"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := state.New(t.TempDir())
			if err := os.WriteFile(store.Path(), []byte(tt.contents), 0644); err != nil {
				t.Fatal(err)
			}

			if got := store.Load(); !reflect.DeepEqual(got, &state.State{}) {
				t.Errorf("Load() = %+v, want empty state", got)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	store := state.New(filepath.Join(t.TempDir(), "does", "not", "exist"))

	if got := store.Load(); !reflect.DeepEqual(got, &state.State{}) {
		t.Errorf("Load() = %+v, want empty state", got)
	}
}

func TestLoadPersisted(t *testing.T) {
	dir := t.TempDir()
	contents := `{"editor":"Zed","languages":["Python","Cpp"],"current_problem":"1A","current_language":"Cpp","favourite_language":null}`
	if err := os.WriteFile(filepath.Join(dir, state.FileName), []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	want := &state.State{
		Editor:          ptr(registry.Zed),
		Languages:       []registry.Language{registry.Python, registry.Cpp},
		CurrentProblem:  ptr(problem.ID("1A")),
		CurrentLanguage: ptr(registry.Cpp),
	}

	if got := state.New(dir).Load(); !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache", "cfcf")
	store := state.New(dir)

	if err := store.SetEditor(registry.Vim); err != nil {
		t.Fatalf("SetEditor: %v", err)
	}

	if _, err := os.Stat(store.Path()); err != nil {
		t.Fatalf("state file not written: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Errorf("expected only the state file in %s, found %d entries", dir, len(entries))
	}
}

func TestSettersKeepOtherFields(t *testing.T) {
	store := state.New(t.TempDir())

	steps := []func() error{
		func() error { return store.SetEditor(registry.Neovide) },
		func() error { return store.SetLanguages([]registry.Language{registry.C, registry.Java}, registry.C) },
		func() error { return store.SetFavouriteLanguage(registry.Java) },
		func() error { return store.SetCurrentProblem("1234A") },
		func() error { return store.SetCurrentLanguage(registry.C) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			t.Fatal(err)
		}
	}

	if got := store.Editor(); got == nil || *got != registry.Neovide {
		t.Errorf("Editor() = %v", got)
	}

	if got := store.Languages(); !reflect.DeepEqual(got, []registry.Language{registry.C, registry.Java}) {
		t.Errorf("Languages() = %v", got)
	}

	if got := store.FavouriteLanguage(); got == nil || *got != registry.Java {
		t.Errorf("FavouriteLanguage() = %v", got)
	}

	if got := store.CurrentProblem(); got == nil || *got != "1234A" {
		t.Errorf("CurrentProblem() = %v", got)
	}

	if got := store.CurrentLanguage(); got == nil || *got != registry.C {
		t.Errorf("CurrentLanguage() = %v", got)
	}

	if err := store.SetCurrent("99B", registry.Java); err != nil {
		t.Fatal(err)
	}

	st := store.Load()
	if *st.CurrentProblem != "99B" || *st.CurrentLanguage != registry.Java || *st.Editor != registry.Neovide {
		t.Errorf("SetCurrent changed the wrong fields: %+v", st)
	}
}

func TestSetLanguages(t *testing.T) {
	store := state.New(t.TempDir())
	if err := store.SetEditor(registry.Zed); err != nil {
		t.Fatal(err)
	}

	languages := []registry.Language{registry.Cpp, registry.Rust}
	if err := store.SetLanguages(languages, registry.Rust); err != nil {
		t.Fatalf("SetLanguages: %v", err)
	}

	st := store.Load()
	if !reflect.DeepEqual(st.Languages, languages) {
		t.Errorf("Languages = %v, want %v", st.Languages, languages)
	}

	if st.FavouriteLanguage == nil || *st.FavouriteLanguage != registry.Rust {
		t.Errorf("FavouriteLanguage = %v, want Rust", st.FavouriteLanguage)
	}

	if st.Editor == nil || *st.Editor != registry.Zed {
		t.Errorf("SetLanguages changed the editor: %v", st.Editor)
	}
}

func TestClear(t *testing.T) {
	store := state.New(t.TempDir())

	err := store.Save(&state.State{
		Editor:         ptr(registry.Zed),
		Languages:      []registry.Language{registry.Rust},
		CurrentProblem: ptr(problem.ID("1987C")),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if got := store.Load(); !reflect.DeepEqual(got, &state.State{}) {
		t.Errorf("Load() after Clear = %+v, want empty state", got)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("CFCF_CACHE_DIR", "/tmp/elsewhere")

	dir, err := state.CacheDir()
	if err != nil || dir != "/tmp/elsewhere" {
		t.Errorf("CacheDir() = %q, %v", dir, err)
	}

	t.Setenv("CFCF_CACHE_DIR", "")
	t.Setenv("HOME", "/home/someone")

	dir, err = state.CacheDir()
	if err != nil || dir != filepath.Join("/home/someone", ".cache", "cfcf") {
		t.Errorf("CacheDir() = %q, %v", dir, err)
	}
}
