package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/threads/internal/commands"
	"github.com/colonyops/threads/internal/core/config"
	"github.com/colonyops/threads/internal/core/logging"
	"github.com/colonyops/threads/internal/core/styles"
	"github.com/colonyops/threads/internal/tui"
	"github.com/colonyops/threads/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func buildInfo() tui.BuildInfo {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	if len(c) > 7 {
		c = c[:7]
	}

	return tui.BuildInfo{Version: v, Commit: c, Date: d}
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}
	build := buildInfo()

	app := commands.NewApp(flags, build)
	app.Version = fmt.Sprintf("%s %s", build, build.Date)

	app.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		// Always log to a file; the TUI owns the terminal
		logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
		if err != nil {
			return ctx, fmt.Errorf("setup logger: %w", err)
		}
		logCloser = closer

		flags.SessionID = uuid.NewString()
		ctx = logging.WithSessionID(ctx, flags.SessionID)
		log.Logger = logger.Hook(logging.ContextHook{})

		cfg, err := config.Read(flags.ConfigPath)
		if err != nil {
			return ctx, fmt.Errorf("load config: %w", err)
		}
		if flags.Sort != "" {
			cfg.TUI.Sort = flags.Sort
		}
		flags.Config = cfg

		// Unknown themes fall back to the default; validation reports them
		if palette, ok := styles.GetPalette(cfg.TUI.Theme); ok {
			styles.SetTheme(palette)
		}

		log.Debug().
			Ctx(ctx).
			Str("config", flags.ConfigPath).
			Str("version", build.String()).
			Msg("starting threads")

		return ctx, nil
	}

	app.After = func(ctx context.Context, c *cli.Command) error {
		if logCloser != nil {
			logCloser()
		}
		return nil
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
