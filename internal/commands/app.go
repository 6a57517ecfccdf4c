package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/threads/internal/tui"
)

// NewApp builds the command tree shared by the threads binary and docgen.
// Before and After hooks are left to the caller.
func NewApp(flags *Flags, build tui.BuildInfo) *cli.Command {
	app := &cli.Command{
		Name:      "threads",
		Usage:     "A nested comment thread in the terminal",
		UsageText: "threads [global options] command [command options]",
		Description: `Threads is a small discussion board that lives in your terminal. Post
comments, reply to any comment at any depth, vote, and switch between
newest, oldest, most and least score ordering.

Run 'threads' with no arguments to open the interactive thread.
Run 'threads replay' to apply a JSON script of actions and print the result.

Nothing is saved: every run starts with an empty thread.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("THREADS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("THREADS_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("THREADS_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "sort",
				Usage:       "initial sort mode (newest, oldest, most, least); overrides tui.sort",
				Sources:     cli.EnvVars("THREADS_SORT"),
				Destination: &flags.Sort,
			},
		},
		EnableShellCompletion: true,
		ShellComplete:         SortModeCompleter(),
	}

	tuiCmd := NewTuiCmd(flags, build)
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	app = NewReplayCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)
	app = NewThemesCmd(flags).Register(app)

	// TUI is the default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'threads --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return app
}
