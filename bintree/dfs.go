package bintree

// DepthFirstSearch iterates over the nodes of a tree in pre-order, visiting
// the left subtree before the right one.
type DepthFirstSearch[T Node[T]] struct {
	stack []T
}

// DFS returns a pre-order iterator starting at root.
func DFS[T Node[T]](root T) *DepthFirstSearch[T] {
	return &DepthFirstSearch[T]{stack: []T{root}}
}

// Next returns the next node. ok is false once all nodes have been visited,
// and stays false on subsequent calls.
func (it *DepthFirstSearch[T]) Next() (node T, ok bool) {
	if len(it.stack) == 0 {
		return node, false
	}
	node = it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	if left, right, inner := node.Children(); inner {
		it.stack = append(it.stack, right, left)
	}
	return node, true
}

// Leaves returns the labels of all leaves below root in pre-order.
func Leaves[T Node[T]](root T) []Label {
	labels := make([]Label, 0)
	it := DFS(root)
	for {
		node, ok := it.Next()
		if !ok {
			break
		}
		if label, leaf := node.LeafLabel(); leaf {
			labels = append(labels, label)
		}
	}
	return labels
}

// NumInner returns the number of inner nodes below and including root.
func NumInner[T Node[T]](root T) int {
	n := 0
	it := DFS(root)
	for {
		node, ok := it.Next()
		if !ok {
			return n
		}
		if IsInner(node) {
			n++
		}
	}
}
