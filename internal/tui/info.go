package tui

import (
	"fmt"
	"strconv"

	"github.com/colonyops/threads/internal/core/comment"
	"github.com/colonyops/threads/internal/tui/components"
)

// threadStats summarizes the comment tree for the info dialog.
type threadStats struct {
	total    int
	roots    int
	maxDepth int
	top      int
	bottom   int
}

func collectStats(roots []comment.Comment) threadStats {
	s := threadStats{roots: len(roots)}
	comment.Walk(roots, func(c comment.Comment, depth int) bool {
		if s.total == 0 {
			s.top, s.bottom = c.Score, c.Score
		}
		s.total++
		s.maxDepth = max(s.maxDepth, depth)
		s.top = max(s.top, c.Score)
		s.bottom = min(s.bottom, c.Score)
		return true
	})
	return s
}

func (m Model) infoSections() []components.InfoSection {
	stats := collectStats(m.thread.Comments())

	threadItems := []components.InfoItem{
		{Label: "Comments", Value: strconv.Itoa(stats.total)},
		{Label: "Top level", Value: strconv.Itoa(stats.roots)},
		{Label: "Replies", Value: strconv.Itoa(stats.total - stats.roots)},
		{Label: "Deepest reply", Value: strconv.Itoa(stats.maxDepth)},
	}
	if stats.total > 0 {
		threadItems = append(threadItems,
			components.InfoItem{Label: "Score range", Value: fmt.Sprintf("%d to %d", stats.bottom, stats.top)},
		)
	}

	return []components.InfoSection{
		{Title: "Thread", Items: threadItems},
		{
			Title: "Session",
			Items: []components.InfoItem{
				{Label: "Sort", Value: m.thread.Sort().Label()},
				{Label: "Open reply boxes", Value: strconv.Itoa(m.view.OpenReplies())},
				{Label: "Theme", Value: m.cfg.TUI.Theme},
				{Label: "Session", Value: m.sessionID},
				{Label: "Version", Value: m.build.String()},
			},
		},
	}
}
