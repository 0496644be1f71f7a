package registry

import (
	"fmt"
	"strings"
)

// Language is a language a solution can be written in.
type Language int

const (
	Pypy Language = iota
	Python
	Cpp
	C
	Java
	Rust
)

var languageNames = [...]struct {
	name    string
	display string
	tag     string
}{
	Pypy:   {"Pypy", "Python (PyPy)", "pypy"},
	Python: {"Python", "Python", "python"},
	Cpp:    {"Cpp", "C++", "cpp"},
	C:      {"C", "C", "c"},
	Java:   {"Java", "Java", "java"},
	Rust:   {"Rust", "Rust", "rust"},
}

// Languages returns every supported language in menu order.
func Languages() []Language {
	languages := make([]Language, len(languageNames))
	for i := range languageNames {
		languages[i] = Language(i)
	}

	return languages
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l >= 0 && int(l) < len(languageNames)
}

// String returns the display name, e.g. "C++".
func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Language(%d)", int(l))
	}

	return languageNames[l].display
}

// Name returns the persisted variant name, e.g. "Cpp".
func (l Language) Name() string {
	if !l.Valid() {
		return ""
	}

	return languageNames[l].name
}

// Tag returns a filesystem-safe identifier, e.g. "cpp".
func (l Language) Tag() string {
	if !l.Valid() {
		return ""
	}

	return languageNames[l].tag
}

func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid language %d", int(l))
	}

	return []byte(l.Name()), nil
}

func (l *Language) UnmarshalText(text []byte) error {
	for i, names := range languageNames {
		if names.name == string(text) {
			*l = Language(i)
			return nil
		}
	}

	return fmt.Errorf("unknown language %q", text)
}

// ParseLanguage accepts a tag, variant name or display name, ignoring case.
func ParseLanguage(s string) (Language, error) {
	for i, names := range languageNames {
		if strings.EqualFold(s, names.tag) || strings.EqualFold(s, names.name) || strings.EqualFold(s, names.display) {
			return Language(i), nil
		}
	}

	return 0, fmt.Errorf("unknown language %q", s)
}
