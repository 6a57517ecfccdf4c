// Package comment defines the comment tree and the pure functions that
// mutate and order it. Nothing in this package keeps state: every mutation
// returns a new tree value and leaves the input untouched.
package comment

import "time"

// NoParent is the parent id used for top-level comments. Comment ids start
// above it.
const NoParent int64 = 0

// Comment is a node in the discussion tree.
type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	Replies   []Comment `json:"replies"`
}

// HasReplies reports whether the comment has any children.
func (c Comment) HasReplies() bool {
	return len(c.Replies) > 0
}

// Prepend returns a new slice with c in front of nodes.
func Prepend(nodes []Comment, c Comment) []Comment {
	out := make([]Comment, 0, len(nodes)+1)
	out = append(out, c)
	return append(out, nodes...)
}

// InsertReply prepends reply to the replies of the node with parentID.
//
// Only the path from the root to the parent is rebuilt; sibling subtrees are
// shared with the input. When no node matches, nodes is returned as is and
// the boolean is false.
func InsertReply(nodes []Comment, parentID int64, reply Comment) ([]Comment, bool) {
	return rebuild(nodes, parentID, func(c Comment) Comment {
		c.Replies = Prepend(c.Replies, reply)
		return c
	})
}

// AdjustScore adds delta to the score of the node with id. Unmatched ids
// leave the tree unchanged.
func AdjustScore(nodes []Comment, id int64, delta int) ([]Comment, bool) {
	return rebuild(nodes, id, func(c Comment) Comment {
		c.Score += delta
		return c
	})
}

// rebuild runs fn on the node with id and copies every slice on the way back
// up. Ids are unique so the search stops at the first match.
func rebuild(nodes []Comment, id int64, fn func(Comment) Comment) ([]Comment, bool) {
	for i := range nodes {
		var (
			node  = nodes[i]
			found bool
		)

		if node.ID == id {
			node = fn(node)
			found = true
		} else {
			node.Replies, found = rebuild(node.Replies, id, fn)
		}

		if found {
			out := make([]Comment, len(nodes))
			copy(out, nodes)
			out[i] = node
			return out, true
		}
	}

	return nodes, false
}

// Find returns the node with id.
func Find(nodes []Comment, id int64) (Comment, bool) {
	for _, c := range nodes {
		if c.ID == id {
			return c, true
		}
		if found, ok := Find(c.Replies, id); ok {
			return found, true
		}
	}
	return Comment{}, false
}

// Walk visits every node depth-first, parents before children. Returning
// false from fn skips the node's replies.
func Walk(nodes []Comment, fn func(c Comment, depth int) bool) {
	walk(nodes, 0, fn)
}

func walk(nodes []Comment, depth int, fn func(Comment, int) bool) {
	for _, c := range nodes {
		if fn(c, depth) {
			walk(c.Replies, depth+1, fn)
		}
	}
}

// Count returns the total number of nodes in the tree.
func Count(nodes []Comment) int {
	n := 0
	Walk(nodes, func(Comment, int) bool {
		n++
		return true
	})
	return n
}
