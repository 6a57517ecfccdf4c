package comment

import (
	"cmp"
	"fmt"
	"slices"
)

// SortMode selects the display order of a tree.
type SortMode string

const (
	SortNewest SortMode = "newest"
	SortOldest SortMode = "oldest"
	SortMost   SortMode = "most"
	SortLeast  SortMode = "least"
)

var sortModes = []SortMode{SortNewest, SortOldest, SortMost, SortLeast}

var sortLabels = map[SortMode]string{
	SortNewest: "Newest First",
	SortOldest: "Oldest First",
	SortMost:   "Most Score",
	SortLeast:  "Least Score",
}

// SortModes returns every mode in selector order.
func SortModes() []SortMode {
	return slices.Clone(sortModes)
}

// ParseSortMode converts a config or flag value into a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	mode := SortMode(s)
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid sort mode %q (want one of newest, oldest, most, least)", s)
	}
	return mode, nil
}

// IsValid reports whether m is one of the four known modes.
func (m SortMode) IsValid() bool {
	_, ok := sortLabels[m]
	return ok
}

// Label is the human readable name shown in the selector.
func (m SortMode) Label() string {
	if l, ok := sortLabels[m]; ok {
		return l
	}
	return string(m)
}

// Next returns the mode after m in selector order, wrapping around.
func (m SortMode) Next() SortMode {
	return m.step(1)
}

// Prev returns the mode before m in selector order, wrapping around.
func (m SortMode) Prev() SortMode {
	return m.step(-1)
}

func (m SortMode) step(dir int) SortMode {
	idx := slices.Index(sortModes, m)
	if idx < 0 {
		return SortNewest
	}
	n := len(sortModes)
	return sortModes[((idx+dir)%n+n)%n]
}

func (m SortMode) compare() func(a, b Comment) int {
	switch m {
	case SortNewest:
		return func(a, b Comment) int {
			return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
		}
	case SortOldest:
		return func(a, b Comment) int {
			return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
		}
	case SortMost:
		return func(a, b Comment) int { return cmp.Compare(b.Score, a.Score) }
	case SortLeast:
		return func(a, b Comment) int { return cmp.Compare(a.Score, b.Score) }
	default:
		return nil
	}
}

// SortTree returns a copy of nodes ordered by mode at every depth. The input
// is never reordered. Equal timestamps fall back to id order; equal scores
// keep their input order. Empty levels come back as empty, non-nil slices.
func SortTree(nodes []Comment, mode SortMode) []Comment {
	return sortTree(nodes, mode.compare())
}

func sortTree(nodes []Comment, fn func(a, b Comment) int) []Comment {
	if len(nodes) == 0 {
		return []Comment{}
	}

	out := make([]Comment, len(nodes))
	copy(out, nodes)
	if fn != nil {
		slices.SortStableFunc(out, fn)
	}

	for i := range out {
		out[i].Replies = sortTree(out[i].Replies, fn)
	}
	return out
}
