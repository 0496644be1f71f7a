package main

import (
	"context"
	"os"

	"github.com/st3v3nmw/cfc/internal/cli"
	"github.com/st3v3nmw/cfc/internal/logging"
	"github.com/st3v3nmw/cfc/internal/ui"
	commands "github.com/urfave/cli/v3"
)

func main() {
	app := cli.New(cli.Setup)

	cmd := &commands.Command{
		Name:      "cfc",
		Usage:     "Scaffold, open and run Codeforces problems",
		ArgsUsage: "<problem-url>",
		Flags: []commands.Flag{
			&commands.BoolFlag{
				Name:    "verbose",
				Usage:   "Log diagnostics to stderr",
				Aliases: []string{"v"},
				Value:   false,
			},
		},
		Before: func(ctx context.Context, cmd *commands.Command) (context.Context, error) {
			logging.Setup(os.Stderr, cmd.Bool("verbose"))
			return ctx, nil
		},
		Action: app.Problem,
		Commands: []*commands.Command{
			{
				Name:   "editor",
				Usage:  "Choose the editor problems open in",
				Action: app.Editor,
			},
			{
				Name:   "lang",
				Usage:  "Choose your languages and a favourite",
				Action: app.Lang,
			},
			{
				Name:   "run",
				Usage:  "Build and run the current problem",
				Action: app.Run,
			},
			{
				Name:   "open",
				Usage:  "Open the current problem in your editor",
				Action: app.Open,
			},
			{
				Name:   "clear_cache",
				Usage:  "Forget all saved settings",
				Action: app.ClearCache,
			},
			{
				Name:   "status",
				Usage:  "Show saved settings and the current problem",
				Action: app.Status,
			},
			{
				Name:   "list",
				Usage:  "Show supported languages",
				Action: app.List,
			},
			{
				Name:  "template",
				Usage: "Manage starter code for new problems",
				Commands: []*commands.Command{
					{
						Name:      "set",
						Usage:     "Use a file as the template for a language",
						ArgsUsage: "<language> <file>",
						Action:    app.TemplateSet,
					},
					{
						Name:      "show",
						Usage:     "Print the template for a language",
						ArgsUsage: "<language>",
						Action:    app.TemplateShow,
					},
					{
						Name:      "remove",
						Usage:     "Delete the template for a language",
						ArgsUsage: "<language>",
						Action:    app.TemplateRemove,
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		ui.Stdio().Error(err)
		os.Exit(1)
	}
}
