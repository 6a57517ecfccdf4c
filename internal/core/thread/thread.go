// Package thread owns the canonical comment tree of a running discussion
// and the active sort mode. It is the only mutable state in the program and
// is driven synchronously from the UI event loop, so it takes no locks.
package thread

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/threads/internal/core/action"
	"github.com/colonyops/threads/internal/core/comment"
	"github.com/colonyops/threads/internal/core/validate"
)

// Thread holds the unsorted comment list and the display sort mode.
type Thread struct {
	comments []comment.Comment
	sort     comment.SortMode
	lastID   int64
	now      func() time.Time
	log      zerolog.Logger
}

// Option configures a Thread.
type Option func(*Thread)

// WithClock replaces time.Now. Tests use it to control ids and ordering.
func WithClock(now func() time.Time) Option {
	return func(t *Thread) { t.now = now }
}

// WithLogger sets the logger used for mutation events.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Thread) { t.log = l }
}

// WithSort sets the initial sort mode. Invalid modes are ignored.
func WithSort(mode comment.SortMode) Option {
	return func(t *Thread) {
		if mode.IsValid() {
			t.sort = mode
		}
	}
}

// New creates an empty thread sorted newest first.
func New(opts ...Option) *Thread {
	t := &Thread{
		sort: comment.SortNewest,
		now:  time.Now,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddComment creates a comment from text. A parentID of comment.NoParent
// posts at the top level, anything else replies to that comment.
//
// Blank text and unknown parents leave the thread unchanged and return false.
func (t *Thread) AddComment(text string, parentID int64) (comment.Comment, bool) {
	trimmed, err := validate.CommentText(text)
	if err != nil {
		t.log.Debug().Int64("parent_id", parentID).Msg("rejected blank comment")
		return comment.Comment{}, false
	}

	if parentID != comment.NoParent {
		if _, ok := comment.Find(t.comments, parentID); !ok {
			t.log.Debug().Int64("parent_id", parentID).Msg("reply to unknown comment ignored")
			return comment.Comment{}, false
		}
	}

	at := t.now()
	c := comment.Comment{
		ID:        t.nextID(at),
		Text:      trimmed,
		CreatedAt: at,
	}

	if parentID == comment.NoParent {
		t.comments = comment.Prepend(t.comments, c)
	} else {
		t.comments, _ = comment.InsertReply(t.comments, parentID, c)
	}

	t.log.Debug().
		Int64("id", c.ID).
		Int64("parent_id", parentID).
		Int("total", comment.Count(t.comments)).
		Msg("comment added")

	return c, true
}

// Vote adds delta to the score of the comment with id. Unknown ids are
// ignored and return false.
func (t *Thread) Vote(id int64, delta int) bool {
	updated, ok := comment.AdjustScore(t.comments, id, delta)
	if !ok {
		t.log.Debug().Int64("id", id).Msg("vote on unknown comment ignored")
		return false
	}
	t.comments = updated

	t.log.Debug().Int64("id", id).Int("delta", delta).Msg("vote applied")
	return true
}

// SetSort changes the display order. Invalid modes return false.
func (t *Thread) SetSort(mode comment.SortMode) bool {
	if !mode.IsValid() {
		return false
	}
	t.sort = mode
	t.log.Debug().Str("sort", string(mode)).Msg("sort mode changed")
	return true
}

// Dispatch applies an intent and reports whether the thread changed.
func (t *Thread) Dispatch(a action.Action) bool {
	switch a.Type {
	case action.TypePost:
		_, ok := t.AddComment(a.Text, comment.NoParent)
		return ok
	case action.TypeReply:
		_, ok := t.AddComment(a.Text, a.ParentID)
		return ok
	case action.TypeVote:
		return t.Vote(a.TargetID, a.Delta)
	case action.TypeSort:
		return t.SetSort(a.Sort)
	default:
		t.log.Warn().Str("type", string(a.Type)).Msg("unknown action type")
		return false
	}
}

// Comments returns the canonical snapshot, newest insertion first at every
// level. Callers must treat it as read-only.
func (t *Thread) Comments() []comment.Comment {
	return t.comments
}

// Sort returns the active sort mode.
func (t *Thread) Sort() comment.SortMode {
	return t.sort
}

// Sorted derives the display order from the canonical snapshot.
func (t *Thread) Sorted() []comment.Comment {
	return comment.SortTree(t.comments, t.sort)
}

// Len returns the number of comments at every depth.
func (t *Thread) Len() int {
	return comment.Count(t.comments)
}

// nextID derives an id from the creation time, bumped past the previous id
// when two comments land in the same millisecond.
func (t *Thread) nextID(at time.Time) int64 {
	id := at.UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	return id
}
