package registry

import (
	"fmt"
	"strings"
)

// Editor is an editor problems can be opened in.
type Editor int

const (
	Neovide Editor = iota
	Neovim
	Vim
	VsCode
	Zed
)

var editorNames = [...]struct {
	name       string
	executable string
}{
	Neovide: {"Neovide", "neovide"},
	Neovim:  {"Neovim", "nvim"},
	Vim:     {"Vim", "vim"},
	VsCode:  {"VsCode", "code"},
	Zed:     {"Zed", "zed"},
}

// Editors returns every supported editor in menu order.
func Editors() []Editor {
	editors := make([]Editor, len(editorNames))
	for i := range editorNames {
		editors[i] = Editor(i)
	}

	return editors
}

func (e Editor) Valid() bool {
	return e >= 0 && int(e) < len(editorNames)
}

func (e Editor) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Editor(%d)", int(e))
	}

	return editorNames[e].name
}

func (e Editor) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("invalid editor %d", int(e))
	}

	return []byte(e.String()), nil
}

func (e *Editor) UnmarshalText(text []byte) error {
	for i, names := range editorNames {
		if names.name == string(text) {
			*e = Editor(i)
			return nil
		}
	}

	return fmt.Errorf("unknown editor %q", text)
}

// ParseEditor accepts an editor name or its default executable, ignoring case.
func ParseEditor(s string) (Editor, error) {
	for i, names := range editorNames {
		if strings.EqualFold(s, names.name) || strings.EqualFold(s, names.executable) {
			return Editor(i), nil
		}
	}

	return 0, fmt.Errorf("unknown editor %q", s)
}
