package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/threads/internal/core/comment"
)

// SortModeCompleter returns a ShellCompleteFunc that suggests sort mode
// names. Set this as the ShellComplete field on any cli.Command that takes
// a --sort flag.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func SortModeCompleter() cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		w := cmd.Root().Writer
		for _, mode := range comment.SortModes() {
			_, _ = fmt.Fprintln(w, mode)
		}
	}
}
