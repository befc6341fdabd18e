package bintree

import (
	"bytes"
	"fmt"
	"strings"
)

// BinTree is a binary tree without any meta information. Each value is a
// single node which is either a leaf carrying a label, or an inner node that
// exclusively owns its two children.
//
// The zero value is a leaf with label 0. Use NewLeaf and NewInner to build
// trees.
type BinTree struct {
	// Both nil for leaves, both non-nil for inner nodes.
	left, right *BinTree
	label       Label
}

// NewLeaf returns a leaf node.
func NewLeaf(label Label) *BinTree {
	return &BinTree{label: label}
}

// NewInner returns an inner node owning left and right.
func NewInner(left, right *BinTree) *BinTree {
	if left == nil || right == nil {
		panic("bintree: inner node requires two children")
	}
	return &BinTree{left: left, right: right}
}

// Children returns both children of an inner node.
func (t *BinTree) Children() (left, right *BinTree, ok bool) {
	if t.left == nil {
		return nil, nil, false
	}
	return t.left, t.right, true
}

// LeafLabel returns the label of a leaf.
func (t *BinTree) LeafLabel() (Label, bool) {
	if t.left != nil {
		return 0, false
	}
	return t.label, true
}

// String recursively converts a tree to a string, with whitespace indenting
// to indicate depth.
func (t *BinTree) String() string {
	return indented[*BinTree](t, nil)
}

// BinTreeBuilder builds BinTree values and discards inner node indices.
type BinTreeBuilder struct {
	RootIdentity[*BinTree]
}

// NewInner ignores id.
func (BinTreeBuilder) NewInner(_ NodeIdx, left, right *BinTree) *BinTree {
	return NewInner(left, right)
}

func (BinTreeBuilder) NewLeaf(label Label) *BinTree {
	return NewLeaf(label)
}

// IndexedBinTree is shaped like BinTree, but inner nodes additionally carry
// the NodeIdx assigned to them while parsing.
type IndexedBinTree struct {
	left, right *IndexedBinTree
	idx         NodeIdx
	label       Label
}

// NewIndexedLeaf returns a leaf node.
func NewIndexedLeaf(label Label) *IndexedBinTree {
	return &IndexedBinTree{label: label}
}

// NewIndexedInner returns an inner node with index idx owning left and right.
func NewIndexedInner(idx NodeIdx, left, right *IndexedBinTree) *IndexedBinTree {
	if left == nil || right == nil {
		panic("bintree: inner node requires two children")
	}
	return &IndexedBinTree{left: left, right: right, idx: idx}
}

func (t *IndexedBinTree) Children() (left, right *IndexedBinTree, ok bool) {
	if t.left == nil {
		return nil, nil, false
	}
	return t.left, t.right, true
}

func (t *IndexedBinTree) LeafLabel() (Label, bool) {
	if t.left != nil {
		return 0, false
	}
	return t.label, true
}

// NodeIdx returns the index of an inner node, or the label of a leaf
// converted to a NodeIdx.
func (t *IndexedBinTree) NodeIdx() NodeIdx {
	if t.left == nil {
		return NodeIdx(t.label)
	}
	return t.idx
}

func (t *IndexedBinTree) String() string {
	return indented[*IndexedBinTree](t, func(n *IndexedBinTree) string {
		return n.idx.String()
	})
}

// IndexedBinTreeBuilder builds IndexedBinTree values.
type IndexedBinTreeBuilder struct {
	RootIdentity[*IndexedBinTree]
}

func (IndexedBinTreeBuilder) NewInner(
	id NodeIdx,
	left, right *IndexedBinTree,
) *IndexedBinTree {
	return NewIndexedInner(id, left, right)
}

func (IndexedBinTreeBuilder) NewLeaf(label Label) *IndexedBinTree {
	return NewIndexedLeaf(label)
}

// indented renders one node per line. Inner nodes are printed via name, or
// as "N/A" if name is nil.
func indented[T Node[T]](root T, name func(T) string) string {
	buf := new(bytes.Buffer)
	var out func(t T, depth int)
	out = func(t T, depth int) {
		pad := strings.Repeat("  ", depth)
		if label, ok := t.LeafLabel(); ok {
			fmt.Fprintf(buf, "%s%s\n", pad, label)
			return
		}
		inner := "N/A"
		if name != nil {
			inner = name(t)
		}
		fmt.Fprintf(buf, "%s%s\n", pad, inner)
		left, right, _ := t.Children()
		out(left, depth+1)
		out(right, depth+1)
	}
	out(root, 0)
	return buf.String()
}
