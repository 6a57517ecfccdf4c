// Package validate provides shared validation functions.
package validate

import (
	"errors"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/threads/internal/core/comment"
)

// ErrEmptyText is returned for comment text that is blank after trimming.
var ErrEmptyText = errors.New("text is required")

// CommentText trims surrounding whitespace and rejects text that is empty
// afterwards. The trimmed text is returned on success.
func CommentText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	return trimmed, nil
}

// SortMode validates a sort mode name.
func SortMode(value string) error {
	_, err := comment.ParseSortMode(value)
	return err
}

// SortModeField returns a criterio validator for sort mode names.
func SortModeField(field, value string) error {
	return criterio.Run(field, value, SortMode)
}
