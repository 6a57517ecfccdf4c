// Package action defines the intents the view raises against a thread.
package action

import "github.com/colonyops/threads/internal/core/comment"

// Type identifies the kind of intent.
type Type string

const (
	TypePost  Type = "post"
	TypeReply Type = "reply"
	TypeVote  Type = "vote"
	TypeSort  Type = "sort"
)

var types = map[Type]bool{
	TypePost:  true,
	TypeReply: true,
	TypeVote:  true,
	TypeSort:  true,
}

// IsValid reports whether t is a known intent type.
func (t Type) IsValid() bool {
	return types[t]
}

// Action is a single user intent. Only the fields relevant to Type are read.
type Action struct {
	Type     Type
	Text     string           // post, reply
	ParentID int64            // reply
	TargetID int64            // vote
	Delta    int              // vote
	Sort     comment.SortMode // sort
}

// Post creates a top-level comment intent.
func Post(text string) Action {
	return Action{Type: TypePost, Text: text, ParentID: comment.NoParent}
}

// Reply creates an intent to answer the comment with parentID.
func Reply(text string, parentID int64) Action {
	return Action{Type: TypeReply, Text: text, ParentID: parentID}
}

// Vote creates an intent to change a comment's score by delta.
func Vote(id int64, delta int) Action {
	return Action{Type: TypeVote, TargetID: id, Delta: delta}
}

// SetSort creates an intent to change the display order.
func SetSort(mode comment.SortMode) Action {
	return Action{Type: TypeSort, Sort: mode}
}
