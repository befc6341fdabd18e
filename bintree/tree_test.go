package bintree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderLeaf(t *testing.T) {
	leaf := BinTreeBuilder{}.NewLeaf(42)
	assert.True(t, IsLeaf(leaf))
	assert.False(t, IsInner(leaf))

	_, _, ok := leaf.Children()
	assert.False(t, ok)
}

func TestBuilderInner(t *testing.T) {
	var b BinTreeBuilder
	root := b.MakeRoot(b.NewInner(0, b.NewLeaf(3141), b.NewLeaf(1234)))
	assert.True(t, IsInner(root))
	assert.False(t, IsLeaf(root))

	_, ok := root.LeafLabel()
	assert.False(t, ok)

	left, ok := LeftChild(root)
	require.True(t, ok)
	label, _ := left.LeafLabel()
	assert.Equal(t, Label(3141), label)

	right, ok := RightChild(root)
	require.True(t, ok)
	label, _ = right.LeafLabel()
	assert.Equal(t, Label(1234), label)
}

func TestIndexedBuilder(t *testing.T) {
	var b IndexedBinTreeBuilder
	root := b.MakeRoot(b.NewInner(17, b.NewLeaf(1), b.NewLeaf(2)))

	assert.Equal(t, NodeIdx(17), root.NodeIdx())
	left, _ := LeftChild(root)
	right, _ := RightChild(root)
	assert.Equal(t, NodeIdx(1), left.NodeIdx())
	assert.Equal(t, NodeIdx(2), right.NodeIdx())
}

func TestIndexedImplementsIndexed(t *testing.T) {
	var node Indexed = NewIndexedLeaf(99)
	assert.Equal(t, NodeIdx(99), node.NodeIdx())
}

func TestNewInnerRejectsMissingChild(t *testing.T) {
	assert.Panics(t, func() { NewInner(NewLeaf(1), nil) })
	assert.Panics(t, func() { NewIndexedInner(3, nil, NewIndexedLeaf(1)) })
}

func TestString(t *testing.T) {
	tree := NewInner(NewInner(NewLeaf(1), NewLeaf(2)), NewLeaf(3))
	assert.Equal(t, "N/A\n  N/A\n    1\n    2\n  3\n", tree.String())

	indexed := NewIndexedInner(4, NewIndexedLeaf(1), NewIndexedLeaf(2))
	assert.Equal(t, "#4\n  1\n  2\n", indexed.String())
}

func TestNodeIdxIncremented(t *testing.T) {
	assert.Equal(t, NodeIdx(8), NodeIdx(7).Incremented())
}
