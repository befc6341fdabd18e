package bintree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manpen/pace26io/bintree"
	"github.com/manpen/pace26io/newick"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1;", "1;"},
		{"(2,1);", "(1,2);"},
		{"(((4,2),(7,1)),8);", "(((1,7),(2,4)),8);"},
		{"(9,((5,3),(8,6)));", "(((3,5),(6,8)),9);"},
		// Equal minimum labels swap the children.
		{"((1,2),(1,3));", "((1,3),(1,2));"},
		{"(4,4);", "(4,4);"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := bintree.Normalize[*bintree.BinTree, *bintree.BinTree](
				bintree.BinTreeBuilder{}, parse(t, tt.in), 0)
			assert.Equal(t, tt.want, newick.String(got))
		})
	}
}

func TestNormalizeRenumbersInPreOrder(t *testing.T) {
	got := bintree.Normalize[*bintree.BinTree, *bintree.IndexedBinTree](
		bintree.IndexedBinTreeBuilder{}, parse(t, "(9,((5,3),(8,6)));"), 20)

	var ids []bintree.NodeIdx
	it := bintree.DFS(got)
	for {
		node, ok := it.Next()
		if !ok {
			break
		}
		if bintree.IsInner(node) {
			ids = append(ids, node.NodeIdx())
		}
	}
	assert.Equal(t, []bintree.NodeIdx{20, 21, 22, 23}, ids)
}
