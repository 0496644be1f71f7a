// Package lifecycle creates, opens and runs problems, and manages the
// preferences those flows depend on.
//
// A Controller handles one command per process. Creating a problem persists
// the current problem before any file is written, so a later run can find it
// even if creating the file or opening the editor fails.
package lifecycle

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/st3v3nmw/cfc/internal/launcher"
	"github.com/st3v3nmw/cfc/internal/prompt"
	"github.com/st3v3nmw/cfc/internal/registry"
	"github.com/st3v3nmw/cfc/internal/state"
	"github.com/st3v3nmw/cfc/internal/template"
	"github.com/st3v3nmw/cfc/internal/ui"
)

// ProgramName is the name of the binary, used in hints.
const ProgramName = "cfc"

var (
	ErrLanguagesNotConfigured = errors.New("languages not configured")
	ErrEditorNotConfigured    = errors.New("no editor configured")
	ErrNoCurrentProblem       = errors.New("no current problem")
	ErrNoLanguagesSelected    = errors.New("no languages selected")
	// ErrInconsistentState means a current problem is set without a language.
	// Normal use never gets there.
	ErrInconsistentState = errors.New("inconsistent state: current problem has no language")
)

// StepError reports the external step that failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Options are the collaborators of a Controller.
type Options struct {
	Store     *state.Store
	Templates *template.Store
	Registry  *registry.Registry
	Prompter  prompt.Prompter
	Launcher  launcher.Launcher
	Printer   *ui.Printer
	// WorkDir is where problem files are created. The Launcher should run in the same directory.
	WorkDir string
}

// Controller drives the problem lifecycle.
type Controller struct {
	store     *state.Store
	templates *template.Store
	registry  *registry.Registry
	prompter  prompt.Prompter
	launcher  launcher.Launcher
	printer   *ui.Printer
	workDir   string
}

// New returns a Controller using the given collaborators.
func New(opts Options) *Controller {
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	return &Controller{
		store:     opts.Store,
		templates: opts.Templates,
		registry:  opts.Registry,
		prompter:  opts.Prompter,
		launcher:  opts.Launcher,
		printer:   opts.Printer,
		workDir:   workDir,
	}
}

// path resolves a target path against the working directory.
func (c *Controller) path(rel string) string {
	return filepath.Join(c.workDir, rel)
}

// current returns the current problem's recipe and target.
func (c *Controller) current() (*registry.Recipe, registry.Target, error) {
	st := c.store.Load()
	if st.CurrentProblem == nil {
		return nil, registry.Target{}, fmt.Errorf("%w\nStart one with '%s <problem-url>'", ErrNoCurrentProblem, ProgramName)
	}

	if st.CurrentLanguage == nil {
		return nil, registry.Target{}, fmt.Errorf("%w (problem %s)\nRun '%s clear_cache' and create the problem again", ErrInconsistentState, *st.CurrentProblem, ProgramName)
	}

	recipe, err := c.registry.Recipe(*st.CurrentLanguage)
	if err != nil {
		return nil, registry.Target{}, err
	}

	return recipe, recipe.Target(*st.CurrentProblem), nil
}

func languageNames(languages []registry.Language) []string {
	names := make([]string, len(languages))
	for i, language := range languages {
		names[i] = language.String()
	}

	return names
}
