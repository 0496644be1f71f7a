package lifecycle

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/st3v3nmw/cfc/internal/registry"
	"github.com/st3v3nmw/cfc/internal/ui"
)

// ChooseEditor asks for an editor and persists it.
func (c *Controller) ChooseEditor(ctx context.Context) error {
	editors := registry.Editors()

	def := 0
	if current := c.store.Editor(); current != nil {
		def = max(slices.Index(editors, *current), 0)
	}

	names := make([]string, len(editors))
	for i, editor := range editors {
		names[i] = editor.String()
	}

	i, err := c.prompter.Select("Choose your editor", names, def)
	if err != nil {
		return err
	}

	if i < 0 || i >= len(editors) {
		return fmt.Errorf("invalid editor selection %d", i)
	}

	if err := c.store.SetEditor(editors[i]); err != nil {
		return fmt.Errorf("failed to set editor: %w", err)
	}

	c.printer.Info("Editor set to: %s", ui.Highlight(editors[i]))
	return nil
}

// ChooseLanguages asks which languages to use and, if more than one, which
// is the favourite. Both are persisted together.
func (c *Controller) ChooseLanguages(ctx context.Context) error {
	all := registry.Languages()
	st := c.store.Load()

	var checked []int
	for _, language := range st.Languages {
		if i := slices.Index(all, language); i >= 0 {
			checked = append(checked, i)
		}
	}

	picked, err := c.prompter.MultiSelect("Choose your languages", languageNames(all), checked)
	if err != nil {
		return err
	}

	var languages []registry.Language
	for _, i := range picked {
		if i < 0 || i >= len(all) {
			return fmt.Errorf("invalid language selection %d", i)
		}
		languages = append(languages, all[i])
	}

	if len(languages) == 0 {
		return fmt.Errorf("%w\nRun '%s lang' again and select at least one", ErrNoLanguagesSelected, ProgramName)
	}

	favourite := languages[0]
	if len(languages) > 1 {
		def := 0
		if st.FavouriteLanguage != nil {
			def = max(slices.Index(languages, *st.FavouriteLanguage), 0)
		}

		i, err := c.prompter.Select("Choose your favourite language", languageNames(languages), def)
		if err != nil {
			return err
		}

		if i < 0 || i >= len(languages) {
			return fmt.Errorf("invalid language selection %d", i)
		}
		favourite = languages[i]
	}

	if err := c.store.SetLanguages(languages, favourite); err != nil {
		return fmt.Errorf("failed to set languages: %w", err)
	}

	c.printer.Info("Languages set to: %s", ui.Highlight(strings.Join(languageNames(languages), ", ")))
	c.printer.Info("Favourite language: %s", ui.Highlight(favourite))
	return nil
}

// ClearCache forgets every preference and the current problem.
func (c *Controller) ClearCache() error {
	if err := c.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	c.printer.Success("Cache cleared")
	return nil
}

// SetTemplate stores the skeleton used for new problems in a language.
func (c *Controller) SetTemplate(language registry.Language, content []byte) error {
	if err := c.templates.Set(language, content); err != nil {
		return err
	}

	c.printer.Success("Template for %s saved to %s", language, c.templates.Path(language))
	return nil
}

// ShowTemplate prints the skeleton for a language.
func (c *Controller) ShowTemplate(language registry.Language) error {
	content, ok, err := c.templates.Get(language)
	if err != nil {
		return err
	}

	if !ok {
		c.printer.Skip("No template for %s, new files start empty", language)
		return nil
	}

	c.printer.Info("%s", strings.TrimSuffix(string(content), "\n"))
	return nil
}

// RemoveTemplate deletes the skeleton for a language.
func (c *Controller) RemoveTemplate(language registry.Language) error {
	if err := c.templates.Remove(language); err != nil {
		return err
	}

	c.printer.Success("Template for %s removed", language)
	return nil
}
