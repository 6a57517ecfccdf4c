package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(id int64, score int, replies ...Comment) Comment {
	c := node(id, "x", replies...)
	c.Score = score
	return c
}

func scores(nodes []Comment) []int {
	out := make([]int, len(nodes))
	for i, c := range nodes {
		out[i] = c.Score
	}
	return out
}

func ids(nodes []Comment) []int64 {
	out := make([]int64, len(nodes))
	for i, c := range nodes {
		out[i] = c.ID
	}
	return out
}

func TestSortTree_Score(t *testing.T) {
	inputs := [][]Comment{
		{scored(1, 3), scored(2, -1), scored(3, 0)},
		{scored(2, -1), scored(3, 0), scored(1, 3)},
		{scored(3, 0), scored(1, 3), scored(2, -1)},
	}

	for _, in := range inputs {
		assert.Equal(t, []int{3, 0, -1}, scores(SortTree(in, SortMost)))
		assert.Equal(t, []int{-1, 0, 3}, scores(SortTree(in, SortLeast)))
	}
}

func TestSortTree_Time(t *testing.T) {
	in := []Comment{node(2, "b"), node(3, "c"), node(1, "a")}

	assert.Equal(t, []int64{3, 2, 1}, ids(SortTree(in, SortNewest)))
	assert.Equal(t, []int64{1, 2, 3}, ids(SortTree(in, SortOldest)))
}

func TestSortTree_Recursive(t *testing.T) {
	in := []Comment{
		scored(1, 0,
			scored(2, -2),
			scored(3, 5, scored(5, 1), scored(6, 4)),
			scored(4, 1),
		),
	}

	out := SortTree(in, SortMost)
	require.Len(t, out, 1)
	assert.Equal(t, []int{5, 1, -2}, scores(out[0].Replies))
	assert.Equal(t, []int{4, 1}, scores(out[0].Replies[0].Replies))
}

func TestSortTree_DoesNotReorderInput(t *testing.T) {
	in := []Comment{scored(1, 1, scored(3, 0), scored(4, 9)), scored(2, 5)}
	_ = SortTree(in, SortMost)

	assert.Equal(t, []int64{1, 2}, ids(in))
	assert.Equal(t, []int64{3, 4}, ids(in[0].Replies))
}

func TestSortTree_Idempotent(t *testing.T) {
	in := []Comment{
		scored(1, 2, scored(4, 1), scored(5, 3)),
		scored(2, 7),
		scored(3, -4, scored(6, 0)),
	}

	for _, mode := range SortModes() {
		t.Run(string(mode), func(t *testing.T) {
			once := SortTree(in, mode)
			twice := SortTree(once, mode)
			assert.Equal(t, once, twice)
		})
	}
}

func TestSortTree_TiesKeepInputOrder(t *testing.T) {
	in := []Comment{scored(3, 1), scored(1, 1), scored(2, 1)}

	assert.Equal(t, []int64{3, 1, 2}, ids(SortTree(in, SortMost)))
	assert.Equal(t, []int64{3, 1, 2}, ids(SortTree(in, SortLeast)))
}

func TestSortTree_SameTimestampFollowsID(t *testing.T) {
	in := []Comment{node(2, "second"), node(1, "first"), node(3, "third")}
	for i := range in {
		in[i].CreatedAt = epoch
	}

	assert.Equal(t, []int64{1, 2, 3}, ids(SortTree(in, SortOldest)))
	assert.Equal(t, []int64{3, 2, 1}, ids(SortTree(in, SortNewest)))
}

func TestSortTree_Empty(t *testing.T) {
	out := SortTree(nil, SortNewest)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	tree := SortTree([]Comment{node(1, "leaf")}, SortOldest)
	require.Len(t, tree, 1)
	assert.NotNil(t, tree[0].Replies)
	assert.Empty(t, tree[0].Replies)
}

func TestSortTree_UnknownModeCopies(t *testing.T) {
	in := []Comment{node(2, "b"), node(1, "a")}
	out := SortTree(in, SortMode("bogus"))

	assert.Equal(t, []int64{2, 1}, ids(out))
	out[0].Text = "changed"
	assert.Equal(t, "b", in[0].Text)
}

func TestParseSortMode(t *testing.T) {
	for _, mode := range SortModes() {
		got, err := ParseSortMode(string(mode))
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	_, err := ParseSortMode("top")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sort mode")
}

func TestSortMode_Cycle(t *testing.T) {
	assert.Equal(t, SortOldest, SortNewest.Next())
	assert.Equal(t, SortNewest, SortLeast.Next())
	assert.Equal(t, SortLeast, SortNewest.Prev())
	assert.Equal(t, SortNewest, SortMode("").Next())
}

func TestSortMode_Label(t *testing.T) {
	assert.Equal(t, "Newest First", SortNewest.Label())
	assert.Equal(t, "Least Score", SortLeast.Label())
	assert.Equal(t, "custom", SortMode("custom").Label())
}
