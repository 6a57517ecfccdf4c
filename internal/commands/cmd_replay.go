package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	lipgloss "charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/tree"
	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/threads/internal/core/action"
	"github.com/colonyops/threads/internal/core/comment"
	"github.com/colonyops/threads/internal/core/logging"
	"github.com/colonyops/threads/internal/core/styles"
	"github.com/colonyops/threads/internal/core/thread"
	"github.com/colonyops/threads/internal/core/validate"
	"github.com/colonyops/threads/pkg/iojson"
)

type ReplayCmd struct {
	flags  *Flags
	fr     *iojson.FileReader[Script]
	sort   string
	asJSON bool
}

// NewReplayCmd creates a new replay command.
func NewReplayCmd(flags *Flags) *ReplayCmd {
	return &ReplayCmd{
		flags: flags,
		fr:    &iojson.FileReader[Script]{},
	}
}

// Register adds the replay command to the application.
func (cmd *ReplayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "replay",
		Usage: "Apply a script of actions to an empty thread and print it",
		UsageText: `threads replay [options]

Read from stdin:
  echo '{"actions":[{"type":"post","text":"hello"}]}' | threads replay

Read from file:
  threads replay -f script.json --json`,
		Description: `Applies a JSON script of actions to a fresh in-memory thread, in order,
and prints the sorted result. Nothing is saved.

Input JSON schema:
  {
    "actions": [
      {"type": "post", "text": "hello", "ref": "a"},
      {"type": "reply", "target": "a", "text": "hi", "ref": "b"},
      {"type": "vote", "target": "a", "delta": 1},
      {"type": "sort", "sort": "most"}
    ]
  }

Fields:
  type   - Required. One of post, reply, vote, sort.
  text   - Comment text for post and reply. Blank text is ignored, not an error.
  ref    - Optional name for the comment a post or reply creates.
  target - Required for reply and vote. Must name an earlier ref.
  delta  - Required for vote. Added to the target's score.
  sort   - Required for sort. One of newest, oldest, most, least.`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
			&cli.StringFlag{
				Name:        "sort",
				Usage:       "initial sort mode (newest, oldest, most, least); defaults to the configured sort",
				Destination: &cmd.sort,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the result as JSON",
				Destination: &cmd.asJSON,
			},
		},
		ShellComplete: SortModeCompleter(),
		Action:        cmd.run,
	})

	return app
}

func (cmd *ReplayCmd) run(ctx context.Context, c *cli.Command) error {
	log := logging.ComponentCtx(ctx, "replay")

	mode, err := cmd.initialSort()
	if err != nil {
		return cmd.fail(c, "invalid sort", err)
	}

	script, err := cmd.fr.Read()
	if err != nil {
		log.Error().Err(err).Str("source", cmd.fr.Source()).Msg("failed to read script")
		return cmd.fail(c, "read input", err)
	}

	if err := script.Validate(); err != nil {
		log.Error().Err(err).Msg("script validation failed")
		return cmd.fail(c, "invalid input", err)
	}

	th := thread.New(thread.WithSort(mode), thread.WithLogger(log))
	result := Replay(script, th, log)

	log.Info().
		Int("actions", len(script.Actions)).
		Int("applied", result.Applied).
		Int("ignored", result.Ignored).
		Msg("replay complete")

	if cmd.asJSON {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, result)
	}

	return writeOutline(c.Root().Writer, result)
}

func (cmd *ReplayCmd) initialSort() (comment.SortMode, error) {
	if cmd.sort != "" {
		return comment.ParseSortMode(cmd.sort)
	}
	if cmd.flags.Config != nil {
		return cmd.flags.Config.SortMode(), nil
	}
	return comment.SortNewest, nil
}

// fail reports err as a JSON envelope in --json mode, or as a wrapped error
// otherwise.
func (cmd *ReplayCmd) fail(c *cli.Command, msg string, err error) error {
	if !cmd.asJSON {
		return fmt.Errorf("%s: %w", msg, err)
	}

	data := map[string]any{}
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			data[fe.Field] = fe.Err.Error()
		}
	} else {
		data["error"] = err.Error()
	}

	if werr := iojson.WriteErrorWith(c.Root().ErrWriter, msg, data); werr != nil {
		return werr
	}
	return cli.Exit("", 1)
}

// Script is the JSON input schema for replay.
type Script struct {
	Actions []ScriptAction `json:"actions"`
}

// ScriptAction is a single step of a replay script. Only the fields relevant
// to Type are read.
type ScriptAction struct {
	Type   action.Type `json:"type"`
	Text   string      `json:"text,omitempty"`
	Ref    string      `json:"ref,omitempty"`
	Target string      `json:"target,omitempty"`
	Delta  *int        `json:"delta,omitempty"`
	Sort   string      `json:"sort,omitempty"`
}

// Validate checks the script for errors using criterio. Refs are resolved in
// order, so a target must name a ref defined by an earlier action.
func (s Script) Validate() error {
	var errs criterio.FieldErrorsBuilder
	refs := make(map[string]bool)

	for i, a := range s.Actions {
		field := fmt.Sprintf("actions[%d]", i)

		if !a.Type.IsValid() {
			errs = errs.Append(field+".type", fmt.Errorf("unknown action type %q", a.Type))
			continue
		}

		creates := a.Type == action.TypePost || a.Type == action.TypeReply
		targets := a.Type == action.TypeReply || a.Type == action.TypeVote

		if targets {
			switch {
			case a.Target == "":
				errs = errs.Append(field+".target", fmt.Errorf("target is required for %s", a.Type))
			case !refs[a.Target]:
				errs = errs.Append(field+".target", fmt.Errorf("unknown ref %q", a.Target))
			}
		}

		if a.Type == action.TypeVote && a.Delta == nil {
			errs = errs.Append(field+".delta", errors.New("delta is required for vote"))
		}

		if a.Type == action.TypeSort {
			if err := validate.SortMode(a.Sort); err != nil {
				errs = errs.Append(field+".sort", err)
			}
		}

		if a.Ref != "" {
			switch {
			case !creates:
				errs = errs.Append(field+".ref", errors.New("ref is only allowed on post and reply"))
			case refs[a.Ref]:
				errs = errs.Append(field+".ref", fmt.Errorf("duplicate ref %q", a.Ref))
			default:
				refs[a.Ref] = true
			}
		}
	}

	return errs.ToError()
}

// ReplayResult is the JSON output schema.
type ReplayResult struct {
	Sort     comment.SortMode  `json:"sort"`
	Total    int               `json:"total"`
	Applied  int               `json:"applied"`
	Ignored  int               `json:"ignored"`
	Comments []comment.Comment `json:"comments"`
}

// Replay applies a validated script to th in order. Actions the thread
// rejects, such as blank text or a target whose post was itself rejected,
// are counted as ignored.
func Replay(s Script, th *thread.Thread, log zerolog.Logger) ReplayResult {
	refs := make(map[string]int64)
	result := ReplayResult{}

	for i, a := range s.Actions {
		if applyAction(th, refs, a) {
			result.Applied++
			continue
		}
		result.Ignored++
		log.Debug().Int("index", i).Str("type", string(a.Type)).Msg("action ignored")
	}

	result.Sort = th.Sort()
	result.Total = th.Len()
	result.Comments = th.Sorted()
	return result
}

func applyAction(th *thread.Thread, refs map[string]int64, a ScriptAction) bool {
	switch a.Type {
	case action.TypePost, action.TypeReply:
		parentID := comment.NoParent
		if a.Type == action.TypeReply {
			id, ok := refs[a.Target]
			if !ok {
				return false
			}
			parentID = id
		}

		c, ok := th.AddComment(a.Text, parentID)
		if ok && a.Ref != "" {
			refs[a.Ref] = c.ID
		}
		return ok

	case action.TypeVote:
		id, ok := refs[a.Target]
		if !ok || a.Delta == nil {
			return false
		}
		return th.Dispatch(action.Vote(id, *a.Delta))

	case action.TypeSort:
		return th.Dispatch(action.SetSort(comment.SortMode(a.Sort)))
	}

	return false
}

// writeOutline prints the result as an indented tree.
func writeOutline(w io.Writer, result ReplayResult) error {
	noun := "comments"
	if result.Total == 1 {
		noun = "comment"
	}

	header := styles.CommandHeaderStyle.Render(fmt.Sprintf("%s %d %s", styles.IconComment, result.Total, noun)) +
		styles.TextMutedStyle.Render(" · sorted by "+result.Sort.Label())
	if _, err := lipgloss.Fprintln(w, header); err != nil {
		return err
	}

	if len(result.Comments) == 0 {
		_, err := lipgloss.Fprintln(w, styles.EmptyStateStyle.Render("No comments."))
		return err
	}

	guide := styles.TreeGuideStyle.PaddingRight(1)
	t := tree.New().
		EnumeratorStyle(guide).
		IndenterStyle(guide).
		Child(outlineChildren(result.Comments)...)

	_, err := lipgloss.Fprintln(w, t.String())
	return err
}

func outlineChildren(nodes []comment.Comment) []any {
	children := make([]any, 0, len(nodes))
	for _, c := range nodes {
		label := outlineLabel(c)
		if !c.HasReplies() {
			children = append(children, label)
			continue
		}
		children = append(children, tree.Root(label).Child(outlineChildren(c.Replies)...))
	}
	return children
}

func outlineLabel(c comment.Comment) string {
	score := styles.ScoreStyle(c.Score).Render(fmt.Sprintf("%d", c.Score))
	return fmt.Sprintf("%s %s %s %s", styles.IconUpvote, score, styles.IconDownvote, styles.CommentTextStyle.Render(c.Text))
}
