package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/st3v3nmw/cfc/internal/problem"
	"github.com/st3v3nmw/cfc/internal/registry"
	"github.com/st3v3nmw/cfc/internal/state"
)

// Create makes the problem current, creates its source file unless it already
// exists, and opens it in the configured editor.
//
// Failing to persist the current problem does not stop the file from being
// created; all failures are returned together.
func (c *Controller) Create(ctx context.Context, id problem.ID) error {
	st := c.store.Load()
	if len(st.Languages) == 0 {
		return fmt.Errorf("%w\nRun '%s lang' to choose the languages you use", ErrLanguagesNotConfigured, ProgramName)
	}

	language, err := c.pickLanguage(st)
	if err != nil {
		return err
	}

	var errs []error
	if err := c.store.SetCurrent(id, language); err != nil {
		errs = append(errs, fmt.Errorf("failed to set current problem: %w", err))
	}

	recipe, err := c.registry.Recipe(language)
	if err != nil {
		return errors.Join(append(errs, err)...)
	}

	target := recipe.Target(id)
	created, err := c.createTarget(ctx, recipe, target)
	if err != nil {
		return errors.Join(append(errs, err)...)
	}

	if created {
		c.printer.Success("Created %s (%s)", target.Source, language)
	} else {
		c.printer.Skip("%s already exists", target.Root)
	}

	err = c.openSource(ctx, target.Source)
	if errors.Is(err, ErrEditorNotConfigured) {
		c.printer.Skip("%s, run '%s editor' to choose one", ErrEditorNotConfigured, ProgramName)
	} else if err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// pickLanguage selects among the configured languages, prompting only if there
// is more than one. The favourite is pre-selected if it is still configured.
func (c *Controller) pickLanguage(st *state.State) (registry.Language, error) {
	if len(st.Languages) == 1 {
		return st.Languages[0], nil
	}

	def := 0
	if st.FavouriteLanguage != nil {
		if i := slices.Index(st.Languages, *st.FavouriteLanguage); i >= 0 {
			def = i
		}
	}

	i, err := c.prompter.Select("Choose a language", languageNames(st.Languages), def)
	if err != nil {
		return 0, err
	}

	if i < 0 || i >= len(st.Languages) {
		return 0, fmt.Errorf("invalid language selection %d", i)
	}

	return st.Languages[i], nil
}

// createTarget creates the problem's file or project. It reports false,
// without touching anything, if the target already exists.
func (c *Controller) createTarget(ctx context.Context, recipe *registry.Recipe, target registry.Target) (bool, error) {
	root := c.path(target.Root)
	if _, err := os.Lstat(root); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check %s: %w", target.Root, err)
	}

	content, hasTemplate, err := c.templates.Get(recipe.Language)
	if err != nil {
		return false, err
	}
	log.Debug().Str("language", recipe.Language.Tag()).Bool("template", hasTemplate).Str("target", root).Msg("creating problem")

	if err := os.MkdirAll(c.workDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", c.workDir, err)
	}

	if recipe.IsProject() {
		for _, step := range recipe.Scaffold {
			expanded := step.Expand(target)
			if err := c.launcher.Launch(ctx, expanded.Args...); err != nil {
				return false, &StepError{Step: step.Name, Err: err}
			}
		}

		if !hasTemplate {
			return true, nil
		}

		// The scaffold's own source file is replaced by the template.
		source := c.path(target.Source)
		if err := os.MkdirAll(filepath.Dir(source), 0755); err != nil {
			return false, fmt.Errorf("failed to create %s: %w", filepath.Dir(target.Source), err)
		}

		if err := os.WriteFile(source, content, 0644); err != nil {
			return false, fmt.Errorf("failed to write %s: %w", target.Source, err)
		}

		return true, nil
	}

	f, err := os.OpenFile(c.path(target.Source), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create %s: %w", target.Source, err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return false, fmt.Errorf("failed to write %s: %w", target.Source, err)
	}

	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", target.Source, err)
	}

	return true, nil
}

// openSource opens a source file, relative to the working directory, in the configured editor.
func (c *Controller) openSource(ctx context.Context, source string) error {
	editor := c.store.Editor()
	if editor == nil {
		return ErrEditorNotConfigured
	}

	executable, err := c.registry.Executable(*editor)
	if err != nil {
		return err
	}

	if err := c.launcher.Launch(ctx, executable, source); err != nil {
		return &StepError{Step: fmt.Sprintf("opening %s", editor), Err: err}
	}

	return nil
}

// Open opens the current problem's source file in the configured editor.
func (c *Controller) Open(ctx context.Context) error {
	_, target, err := c.current()
	if err != nil {
		return err
	}

	err = c.openSource(ctx, target.Source)
	if errors.Is(err, ErrEditorNotConfigured) {
		return fmt.Errorf("%w\nRun '%s editor' to choose one", err, ProgramName)
	}

	return err
}
