// Package prompt asks the user to pick from a list in the terminal.
package prompt

import (
	"fmt"
	"slices"

	"atomicgo.dev/keyboard/keys"
	"github.com/pterm/pterm"
)

// Prompter asks the user to choose among options and returns their indexes.
type Prompter interface {
	// Select returns the index of one option. def is pre-selected.
	Select(prompt string, options []string, def int) (int, error)
	// MultiSelect returns the indexes of the chosen options in option order.
	// Options whose index is in defaults start out checked.
	MultiSelect(prompt string, options []string, defaults []int) ([]int, error)
}

// Terminal prompts interactively using pterm.
type Terminal struct{}

var _ Prompter = Terminal{}

func (Terminal) Select(prompt string, options []string, def int) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("nothing to choose from")
	}

	if def < 0 || def >= len(options) {
		def = 0
	}

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(options[def]).
		WithFilter(false).
		WithMaxHeight(len(options)).
		Show(prompt)
	if err != nil {
		return 0, fmt.Errorf("selection aborted: %w", err)
	}

	index := slices.Index(options, choice)
	if index < 0 {
		return 0, fmt.Errorf("unexpected selection %q", choice)
	}

	return index, nil
}

func (Terminal) MultiSelect(prompt string, options []string, defaults []int) ([]int, error) {
	checked := make([]string, 0, len(defaults))
	for _, i := range defaults {
		if i >= 0 && i < len(options) {
			checked = append(checked, options[i])
		}
	}

	choices, err := pterm.DefaultInteractiveMultiselect.
		WithOptions(options).
		WithDefaultOptions(checked).
		WithFilter(false).
		WithMaxHeight(len(options)).
		WithKeySelect(keys.Space).
		WithKeyConfirm(keys.Enter).
		Show(prompt + " (space to toggle, enter to confirm)")
	if err != nil {
		return nil, fmt.Errorf("selection aborted: %w", err)
	}

	var indexes []int
	for i, option := range options {
		if slices.Contains(choices, option) {
			indexes = append(indexes, i)
		}
	}

	return indexes, nil
}
