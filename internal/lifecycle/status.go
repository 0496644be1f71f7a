package lifecycle

import (
	"os"
	"strings"

	"github.com/st3v3nmw/cfc/internal/registry"
	"github.com/st3v3nmw/cfc/internal/ui"
)

const notSet = "not set"

// Status prints the persisted preferences and the current problem.
func (c *Controller) Status() error {
	st := c.store.Load()

	editor := notSet
	if st.Editor != nil {
		editor = st.Editor.String()
	}
	c.printer.Info("Editor:     %s", editor)

	languages := notSet
	if len(st.Languages) > 0 {
		names := make([]string, len(st.Languages))
		for i, language := range st.Languages {
			names[i] = language.String()
			if st.FavouriteLanguage != nil && language == *st.FavouriteLanguage {
				names[i] = ui.Bold(names[i] + "*")
			}
		}
		languages = strings.Join(names, ", ")
	}
	c.printer.Info("Languages:  %s", languages)

	switch {
	case st.CurrentProblem == nil:
		c.printer.Info("Problem:    %s", notSet)
	case st.CurrentLanguage == nil:
		c.printer.Info("Problem:    %s (no language, run '%s clear_cache')", *st.CurrentProblem, ProgramName)
	default:
		recipe, err := c.registry.Recipe(*st.CurrentLanguage)
		if err != nil {
			return err
		}

		target := recipe.Target(*st.CurrentProblem)
		created := "not created"
		if _, err := os.Stat(c.path(target.Root)); err == nil {
			created = "created"
		}
		c.printer.Info("Problem:    %s (%s) %s, %s", ui.Bold(*st.CurrentProblem), recipe.Language, target.Source, created)
	}

	c.printer.Info("State file: %s", c.store.Path())
	return nil
}

// List prints every supported language with its file layout and commands.
func (c *Controller) List() error {
	c.printer.Info("Available languages:")
	c.printer.Info("")

	for _, language := range registry.Languages() {
		recipe, err := c.registry.Recipe(language)
		if err != nil {
			return err
		}

		layout := "<id>" + recipe.Layout.Extension
		if recipe.IsProject() {
			layout = recipe.Layout.ProjectPrefix + "<id>/" + recipe.Layout.ProjectSource
		}

		template := ""
		_, ok, err := c.templates.Get(language)
		if err != nil {
			return err
		}
		if ok {
			template = " [template]"
		}

		c.printer.Info("  %-14s %-7s %s%s", language, language.Tag(), layout, template)
		for _, step := range recipe.Scaffold {
			c.printer.Info("      %-9s %s", step.Name, step)
		}
		for _, step := range recipe.Build {
			c.printer.Info("      %-9s %s", step.Name, step)
		}
		c.printer.Info("      %-9s %s", recipe.Run.Name, recipe.Run)
	}

	c.printer.Info("")
	c.printer.Info("Choose yours with: %s lang", ProgramName)
	return nil
}
