package bintree

import "fmt"

// Label identifies a leaf. Labels are taken verbatim from the input and are
// unique within a tree by convention only.
type Label uint32

// NodeIdx identifies an inner node. Indices are assigned by the parser, not
// read from the input.
type NodeIdx uint32

// Incremented returns the index following idx.
func (idx NodeIdx) Incremented() NodeIdx {
	return idx + 1
}

func (l Label) String() string {
	return fmt.Sprintf("%d", uint32(l))
}

func (idx NodeIdx) String() string {
	return fmt.Sprintf("#%d", uint32(idx))
}

// TreeBuilder constructs nodes of type N on behalf of a parser.
//
// NewInner receives the pre-order index assigned to the new inner node;
// builders that have no use for it may ignore it. MakeRoot is called exactly
// once, with the finished tree, and may compute whole-tree metadata. Most
// builders return the root unchanged (see RootIdentity).
type TreeBuilder[N any] interface {
	NewInner(id NodeIdx, left, right N) N
	NewLeaf(label Label) N
	MakeRoot(root N) N
}

// RootIdentity can be embedded into a builder to get a MakeRoot that returns
// its argument unchanged.
type RootIdentity[N any] struct{}

// MakeRoot returns root.
func (RootIdentity[N]) MakeRoot(root N) N {
	return root
}

// Node is the read-only traversal capability needed by writers and
// iterators. Exactly one of Children and LeafLabel reports ok.
//
// The type parameter is the node type itself, so that Children can return
// nodes of the concrete type, e.g. *BinTree implements Node[*BinTree].
type Node[T any] interface {
	Children() (left, right T, ok bool)
	LeafLabel() (Label, bool)
}

// Indexed is implemented by trees that can report a node index for every
// node. For leaves the index equals the numeric value of the label.
type Indexed interface {
	NodeIdx() NodeIdx
}

// IsLeaf reports whether node is a leaf.
func IsLeaf[T Node[T]](node T) bool {
	_, ok := node.LeafLabel()
	return ok
}

// IsInner reports whether node is an inner node.
func IsInner[T Node[T]](node T) bool {
	return !IsLeaf(node)
}

// LeftChild returns the left child of an inner node. ok is false for leaves.
func LeftChild[T Node[T]](node T) (child T, ok bool) {
	child, _, ok = node.Children()
	return
}

// RightChild returns the right child of an inner node. ok is false for
// leaves.
func RightChild[T Node[T]](node T) (child T, ok bool) {
	_, child, ok = node.Children()
	return
}
