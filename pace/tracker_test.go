package pace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manpen/pace26io/bintree"
)

func parseTree(t *Tracker, lineno int, line string) (*bintree.IndexedBinTree, error) {
	return ParseTree[*bintree.IndexedBinTree](t, bintree.IndexedBinTreeBuilder{}, lineno, line)
}

func TestTracker(t *testing.T) {
	tr := NewTracker()
	assert.False(t, tr.HasHeader())
	assert.Equal(t, -1, tr.HeaderLine())

	require.NoError(t, tr.Header(2, 3, 4))
	assert.True(t, tr.HasHeader())
	assert.Equal(t, 2, tr.HeaderLine())
	assert.Equal(t, 3, tr.NumTrees())
	assert.Equal(t, 4, tr.NumLeaves())

	tree, err := parseTree(tr, 3, "((1,2),(3,4));")
	require.NoError(t, err)
	assert.Equal(t, []bintree.NodeIdx{5, 6, 7}, innerIndices(tree))

	tree, err = parseTree(tr, 4, "(1,(2,(3,4)));")
	require.NoError(t, err)
	assert.Equal(t, []bintree.NodeIdx{8, 9, 10}, innerIndices(tree))
	assert.Equal(t, 2, tr.Trees())
}

func TestTrackerRejectsTreeBeyondIndexBlock(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Header(0, 2, 3))

	_, err := parseTree(tr, 1, "((1,2),(3,4));")
	ierr := requireInstanceError(t, err, TooManyNodes)
	assert.Equal(t, 1, ierr.Lineno)
	assert.Equal(t, 0, tr.Trees())

	// A smaller tree leaves the rest of its block unused.
	tree, err := parseTree(tr, 2, "(1,2);")
	require.NoError(t, err)
	assert.Equal(t, []bintree.NodeIdx{4}, innerIndices(tree))
	assert.Equal(t, 1, tr.Trees())
}

func TestTrackerErrors(t *testing.T) {
	tr := NewTracker()
	_, err := parseTree(tr, 0, "(1,2);")
	requireInstanceError(t, err, NoHeader)

	err = tr.Header(1, 1, 0)
	requireInstanceError(t, err, NoLeaves)
	assert.False(t, tr.HasHeader())

	require.NoError(t, tr.Header(2, 1, 2))
	_, err = parseTree(tr, 3, "(1,2)")
	requireInstanceError(t, err, Newick)

	require.NoError(t, tr.TreeDecomposition(4))
	err = tr.TreeDecomposition(6)
	ierr := requireInstanceError(t, err, DuplicateTreeDecomposition)
	assert.Equal(t, 6, ierr.Lineno)
	assert.Equal(t, 4, ierr.Lineno2)
}

func TestTrackerAllowWhitespace(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Header(0, 1, 2))
	_, err := parseTree(tr, 1, "(1, 2);")
	requireInstanceError(t, err, Newick)

	tr.AllowWhitespace = true
	_, err = parseTree(tr, 1, "(1, 2);")
	require.NoError(t, err)
}
