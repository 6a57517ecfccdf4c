package commands

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/threads/internal/core/logging"
	"github.com/colonyops/threads/internal/core/thread"
	"github.com/colonyops/threads/internal/tui"
	"github.com/colonyops/threads/pkg/profiler"
)

type TuiCmd struct {
	flags *Flags
	build tui.BuildInfo
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, build tui.BuildInfo) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		build: build,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("THREADS_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	log := logging.ComponentCtx(ctx, "tui")

	// --sort is folded into the config before this runs
	cfg := cmd.flags.Config
	if err := cfg.ValidateFile(cmd.flags.ConfigPath); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort, logging.ComponentCtx(ctx, "profiler"))
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
	}

	mode := cfg.SortMode()
	th := thread.New(
		thread.WithSort(mode),
		thread.WithLogger(logging.ComponentCtx(ctx, "thread")),
	)

	m := tui.New(tui.Options{
		Thread:    th,
		Config:    cfg,
		SessionID: cmd.flags.SessionID,
		Build:     cmd.build,
	})

	log.Info().
		Str("sort", string(mode)).
		Str("theme", cfg.TUI.Theme).
		Msg("starting tui")

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if model, ok := final.(tui.Model); ok {
		log.Info().Int("comments", model.Thread().Len()).Msg("tui exited")
	}

	return nil
}
