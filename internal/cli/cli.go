package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/st3v3nmw/cfc/internal/config"
	"github.com/st3v3nmw/cfc/internal/launcher"
	"github.com/st3v3nmw/cfc/internal/lifecycle"
	"github.com/st3v3nmw/cfc/internal/problem"
	"github.com/st3v3nmw/cfc/internal/prompt"
	"github.com/st3v3nmw/cfc/internal/registry"
	"github.com/st3v3nmw/cfc/internal/state"
	"github.com/st3v3nmw/cfc/internal/template"
	"github.com/st3v3nmw/cfc/internal/ui"
	commands "github.com/urfave/cli/v3"
)

// ErrInvalidCommand is returned for input that is neither a command nor a problem URL.
var ErrInvalidCommand = errors.New("invalid command")

const usage = `Usage:
  '` + lifecycle.ProgramName + ` <problem-url>'  to create or open a problem
  '` + lifecycle.ProgramName + ` editor'         to set an editor
  '` + lifecycle.ProgramName + ` lang'           to set languages
  '` + lifecycle.ProgramName + ` run'            to run the current problem
  '` + lifecycle.ProgramName + ` clear_cache'    to forget all settings
Problem URLs look like https://codeforces.com/problemset/problem/1987/C`

// SetupFunc builds the controller the commands act on.
type SetupFunc func() (*lifecycle.Controller, error)

// App holds the controller shared by every command of one invocation.
type App struct {
	setup SetupFunc
	ctrl  *lifecycle.Controller
}

// New returns an App that builds its controller with setup before the first command runs.
func New(setup SetupFunc) *App {
	return &App{setup: setup}
}

// Setup builds a controller from the cache directory and its config file.
func Setup() (*lifecycle.Controller, error) {
	cacheDir, err := state.CacheDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cacheDir)
	if err != nil {
		return nil, err
	}

	reg := registry.Default()
	if err := cfg.Apply(reg); err != nil {
		return nil, err
	}

	workDir, err := cfg.ResolveWorkDir()
	if err != nil {
		return nil, err
	}
	log.Debug().Str("cache", cacheDir).Str("workdir", workDir).Msg("loaded configuration")

	return lifecycle.New(lifecycle.Options{
		Store:     state.New(cacheDir),
		Templates: template.New(cacheDir),
		Registry:  reg,
		Prompter:  prompt.Terminal{},
		Launcher:  launcher.New(workDir),
		Printer:   ui.Stdio(),
		WorkDir:   workDir,
	}), nil
}

func (a *App) controller() (*lifecycle.Controller, error) {
	if a.ctrl == nil {
		ctrl, err := a.setup()
		if err != nil {
			return nil, err
		}
		a.ctrl = ctrl
	}

	return a.ctrl, nil
}

// Problem handles input that did not match a command: a problem URL, or a mistake.
func (a *App) Problem(ctx context.Context, cmd *commands.Command) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("no command given\n%s", usage)
	}

	input := cmd.Args().First()
	id, ok := problem.Parse(input)
	if !ok || cmd.NArg() > 1 {
		return fmt.Errorf("%w: %s\n%s", ErrInvalidCommand, input, usage)
	}

	ctrl, err := a.controller()
	if err != nil {
		return err
	}

	return ctrl.Create(ctx, id)
}

func (a *App) Editor(ctx context.Context, cmd *commands.Command) error {
	ctrl, err := a.controller()
	if err != nil {
		return err
	}

	return ctrl.ChooseEditor(ctx)
}

func (a *App) Lang(ctx context.Context, cmd *commands.Command) error {
	ctrl, err := a.controller()
	if err != nil {
		return err
	}

	return ctrl.ChooseLanguages(ctx)
}

func (a *App) Run(ctx context.Context, cmd *commands.Command) error {
	ctrl, err := a.controller()
	if err != nil {
		return err
	}

	return ctrl.Run(ctx)
}

func (a *App) Open(ctx context.Context, cmd *commands.Command) error {
	ctrl, err := a.controller()
	if err != nil {
		return err
	}

	return ctrl.Open(ctx)
}

func (a *App) ClearCache(ctx context.Context, cmd *commands.Command) error {
	ctrl, err := a.controller()
	if err != nil {
		return err
	}

	return ctrl.ClearCache()
}

func (a *App) Status(ctx context.Context, cmd *commands.Command) error {
	ctrl, err := a.controller()
	if err != nil {
		return err
	}

	return ctrl.Status()
}

func (a *App) List(ctx context.Context, cmd *commands.Command) error {
	ctrl, err := a.controller()
	if err != nil {
		return err
	}

	return ctrl.List()
}

func (a *App) TemplateSet(ctx context.Context, cmd *commands.Command) error {
	if cmd.NArg() != 2 {
		return fmt.Errorf("language and file are required\nUsage: %s template set <language> <file>", lifecycle.ProgramName)
	}

	language, err := registry.ParseLanguage(cmd.Args().Get(0))
	if err != nil {
		return err
	}

	content, err := os.ReadFile(cmd.Args().Get(1))
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	ctrl, err := a.controller()
	if err != nil {
		return err
	}

	return ctrl.SetTemplate(language, content)
}

func (a *App) TemplateShow(ctx context.Context, cmd *commands.Command) error {
	language, err := languageArg(cmd, "show")
	if err != nil {
		return err
	}

	ctrl, err := a.controller()
	if err != nil {
		return err
	}

	return ctrl.ShowTemplate(language)
}

func (a *App) TemplateRemove(ctx context.Context, cmd *commands.Command) error {
	language, err := languageArg(cmd, "remove")
	if err != nil {
		return err
	}

	ctrl, err := a.controller()
	if err != nil {
		return err
	}

	return ctrl.RemoveTemplate(language)
}

func languageArg(cmd *commands.Command, action string) (registry.Language, error) {
	if cmd.NArg() != 1 {
		return 0, fmt.Errorf("language is required\nUsage: %s template %s <language>", lifecycle.ProgramName, action)
	}

	return registry.ParseLanguage(cmd.Args().First())
}
