package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/threads/internal/core/styles"
	"github.com/colonyops/threads/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "threads config validate [options]",
				Description: "Validates the configuration file, checking the theme, sort mode, indent width and composer limits.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// ValidationIssue is a single failed config field.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationReport is the JSON output of config validate.
type ValidationReport struct {
	Path   string            `json:"path"`
	Valid  bool              `json:"valid"`
	Issues []ValidationIssue `json:"issues,omitempty"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	if cmd.format != "text" && cmd.format != "json" {
		return fmt.Errorf("unknown format %q (expected text or json)", cmd.format)
	}

	report := buildReport(cmd.flags.ConfigPath, cmd.flags.Config.ValidateFile(cmd.flags.ConfigPath))

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, report); err != nil {
			return err
		}
	} else if err := writeReport(c.Root().Writer, report); err != nil {
		return err
	}

	if !report.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func buildReport(path string, err error) ValidationReport {
	report := ValidationReport{Path: path, Valid: err == nil}
	if err == nil {
		return report
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		report.Issues = []ValidationIssue{{Message: err.Error()}}
		return report
	}

	for _, fe := range fieldErrs {
		report.Issues = append(report.Issues, ValidationIssue{Field: fe.Field, Message: fe.Err.Error()})
	}
	return report
}

func writeReport(w io.Writer, report ValidationReport) error {
	if report.Valid {
		_, err := lipgloss.Fprintln(w, styles.TextSuccessStyle.Render("✔ Configuration is valid")+" "+styles.TextMutedStyle.Render(report.Path))
		return err
	}

	for _, issue := range report.Issues {
		line := styles.TextErrorStyle.Render("✘ " + issue.Field + ": " + issue.Message)
		if issue.Field == "" {
			line = styles.TextErrorStyle.Render("✘ " + issue.Message)
		}
		if _, err := lipgloss.Fprintln(w, line); err != nil {
			return err
		}
	}

	_, err := lipgloss.Fprintln(w, "\n"+styles.TextErrorStyle.Render(fmt.Sprintf("%d error(s) found", len(report.Issues))))
	return err
}
