package commands

import (
	"context"
	"fmt"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/threads/internal/core/styles"
)

type ThemesCmd struct {
	flags *Flags
}

// NewThemesCmd creates a new themes command.
func NewThemesCmd(flags *Flags) *ThemesCmd {
	return &ThemesCmd{flags: flags}
}

// Register adds the themes command to the application.
func (cmd *ThemesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "themes",
		Usage:     "List the built-in color themes",
		UsageText: "threads themes",
		Description: `Prints every built-in theme with a sample of its colors. Set one with
tui.theme in the config file.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ThemesCmd) run(_ context.Context, c *cli.Command) error {
	active := styles.DefaultTheme
	if cmd.flags.Config != nil {
		active = cmd.flags.Config.TUI.Theme
	}

	w := c.Root().Writer
	if _, err := lipgloss.Fprintln(w, styles.CommandHeaderStyle.Render("Themes")); err != nil {
		return err
	}

	for _, name := range styles.ThemeNames() {
		palette, _ := styles.GetPalette(name)

		marker := "  "
		label := styles.TextForegroundStyle.Render(fmt.Sprintf("%-12s", name))
		if name == active {
			marker = styles.TextPrimaryStyle.Render(styles.IconActive + " ")
			label = styles.TextPrimaryStyle.Render(fmt.Sprintf("%-12s", name))
		}

		if _, err := lipgloss.Fprintln(w, marker+label+" "+styles.Swatch(palette)); err != nil {
			return err
		}
	}

	return nil
}
