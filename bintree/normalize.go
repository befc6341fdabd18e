package bintree

// Normalize rebuilds the tree rooted at root with builder b such that, at
// every inner node, the child whose subtree contains the smallest leaf label
// is on the left. Inner nodes are renumbered in pre-order starting at id.
// MakeRoot is called on the result.
//
// Two trees that differ only in the order of children normalize to the same
// Newick text.
func Normalize[T Node[T], N any](b TreeBuilder[N], root T, id NodeIdx) N {
	node, _ := build(sortedShape(root), b, id)
	return b.MakeRoot(node)
}

// shape is the reordered tree. Children have to be numbered in their final
// order, so the order is settled before anything is handed to a builder.
type shape struct {
	left, right *shape
	minLabel    Label
}

func sortedShape[T Node[T]](node T) *shape {
	left, right, inner := node.Children()
	if !inner {
		label, _ := node.LeafLabel()
		return &shape{minLabel: label}
	}
	l, r := sortedShape(left), sortedShape(right)
	// Ties, only possible with duplicate labels, swap the children.
	if l.minLabel >= r.minLabel {
		l, r = r, l
	}
	return &shape{left: l, right: r, minLabel: l.minLabel}
}

// build returns the new node and the next unused node index.
func build[N any](s *shape, b TreeBuilder[N], id NodeIdx) (N, NodeIdx) {
	if s.left == nil {
		return b.NewLeaf(s.minLabel), id
	}
	left, next := build(s.left, b, id.Incremented())
	right, next := build(s.right, b, next)
	return b.NewInner(id, left, right), next
}
