package lifecycle

import (
	"context"

	"github.com/st3v3nmw/cfc/internal/ui"
)

// Run builds the current problem, then runs it. It stops at the first step that fails.
func (c *Controller) Run(ctx context.Context) error {
	recipe, target, err := c.current()
	if err != nil {
		return err
	}

	c.printer.Info("Running %s (%s)", ui.Bold(target.Stem), recipe.Language)

	for _, step := range recipe.Steps(target) {
		if err := c.launcher.Launch(ctx, step.Args...); err != nil {
			return &StepError{Step: step.Name, Err: err}
		}
	}

	return nil
}
