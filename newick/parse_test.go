package newick

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manpen/pace26io/bintree"
)

func sample(s string) io.Reader {
	return bytes.NewReader([]byte(s))
}

func TestParseLeaf(t *testing.T) {
	tree, err := Parse[*bintree.BinTree](bintree.BinTreeBuilder{}, "132;", 0)
	require.NoError(t, err)

	label, ok := tree.LeafLabel()
	assert.True(t, ok)
	assert.Equal(t, bintree.Label(132), label)
}

func TestParseBinaryWithWhitespace(t *testing.T) {
	lx := NewLexer(" ( ( 0 , 1 ) , 2 ) ;")
	lx.AllowWhitespace()
	tree, err := ParseLexer[*bintree.BinTree](bintree.BinTreeBuilder{}, lx, 0)
	require.NoError(t, err)

	lc, ok := bintree.LeftChild(tree)
	require.True(t, ok)
	ll, _ := bintree.LeftChild(lc)
	lr, _ := bintree.RightChild(lc)
	rc, _ := bintree.RightChild(tree)

	for _, c := range []struct {
		node  *bintree.BinTree
		label bintree.Label
	}{{ll, 0}, {lr, 1}, {rc, 2}} {
		label, ok := c.node.LeafLabel()
		assert.True(t, ok)
		assert.Equal(t, c.label, label)
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		text string
		kind ParserErrorKind
	}{
		{"123", UnexpectedEnd},
		{"123,", ExpectedEnd},
		{"(123)", ExpectedComma},
		{"(123,)", ExpectedNodeBegin},
		{"(123,123,23)", ExpectedClosing},
		{"(1,2)", UnexpectedEnd},
		{"", UnexpectedEnd},
		{";", ExpectedNodeBegin},
		{"(1,a);", LexicalError},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := Parse[*bintree.BinTree](bintree.BinTreeBuilder{}, tt.text, 0)
			var perr *ParserError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, tt.kind, perr.Kind, "got %v", err)
		})
	}
}

func TestParserErrorCarriesToken(t *testing.T) {
	_, err := Parse[*bintree.BinTree](bintree.BinTreeBuilder{}, "(123,123,23)", 0)
	var perr *ParserError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, Token{Type: TokenComma, Offset: 8}, perr.Token)
}

func TestParserLexerErrorIsWrapped(t *testing.T) {
	_, err := Parse[*bintree.BinTree](bintree.BinTreeBuilder{}, "(1,x);", 0)
	var lexErr *LexerError
	require.True(t, errors.As(err, &lexErr), "got %v", err)
	assert.Equal(t, 'x', lexErr.Char)
	assert.Equal(t, 3, lexErr.Offset)
}

// nodeIdx returns the indices of all nodes in pre-order.
func nodeIdx(root *bintree.IndexedBinTree) []bintree.NodeIdx {
	var ids []bintree.NodeIdx
	it := bintree.DFS(root)
	for {
		node, ok := it.Next()
		if !ok {
			return ids
		}
		ids = append(ids, node.NodeIdx())
	}
}

func TestParseNodeIndices(t *testing.T) {
	tree, err := Parse[*bintree.IndexedBinTree](
		bintree.IndexedBinTreeBuilder{}, "((1,2),(3,(5,4)));", 6)
	require.NoError(t, err)
	assert.Equal(t,
		[]bintree.NodeIdx{6, 7, 1, 2, 8, 3, 9, 5, 4},
		nodeIdx(tree))
}

func TestParseNextReturnsFreeIndex(t *testing.T) {
	b := bintree.IndexedBinTreeBuilder{}
	tree, next, err := ParseNext[*bintree.IndexedBinTree](
		b, NewLexer("((1,2),(3,(5,4)));"), 10)
	require.NoError(t, err)
	assert.Equal(t, bintree.NodeIdx(10), tree.NodeIdx())
	assert.Equal(t, bintree.NodeIdx(14), next)

	_, next, err = ParseNext[*bintree.IndexedBinTree](b, NewLexer("7;"), 10)
	require.NoError(t, err)
	assert.Equal(t, bintree.NodeIdx(10), next)
}

func TestParseIndexOverflow(t *testing.T) {
	b := bintree.IndexedBinTreeBuilder{}

	_, next, err := ParseNext[*bintree.IndexedBinTree](
		b, NewLexer("(1,2);"), math.MaxUint32-1)
	require.NoError(t, err)
	assert.Equal(t, bintree.NodeIdx(math.MaxUint32), next)

	for _, tt := range []struct {
		text   string
		root   bintree.NodeIdx
		offset int
	}{
		{"(1,2);", math.MaxUint32, 0},
		{"((1,2),3);", math.MaxUint32 - 1, 1},
		{"(1,((2,3),4));", math.MaxUint32 - 2, 4},
	} {
		_, err := Parse[*bintree.IndexedBinTree](b, tt.text, tt.root)
		var perr *ParserError
		require.True(t, errors.As(err, &perr), "%s: got %v", tt.text, err)
		assert.Equal(t, IndexOverflow, perr.Kind, tt.text)
		assert.Equal(t, Token{Type: TokenOpen, Offset: tt.offset}, perr.Token, tt.text)
	}
}

// countingBuilder records how often MakeRoot was called.
type countingBuilder struct {
	bintree.BinTreeBuilder
	roots int
}

func (b *countingBuilder) MakeRoot(root *bintree.BinTree) *bintree.BinTree {
	b.roots++
	return root
}

func TestParseCallsMakeRootOnce(t *testing.T) {
	b := &countingBuilder{}
	_, err := Parse[*bintree.BinTree](b, "((1,2),3);", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, b.roots)

	_, err = Parse[*bintree.BinTree](b, "((1,2),3)", 0)
	require.Error(t, err)
	assert.Equal(t, 1, b.roots)
}

func TestReader(t *testing.T) {
	v := sample("(1,(2,3));\n\n((1,2),3);\n4;\n")
	r := NewReader[*bintree.IndexedBinTree](v, bintree.IndexedBinTreeBuilder{}, 5)

	trees, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, trees, 3)

	assert.Equal(t, []bintree.NodeIdx{5, 1, 6, 2, 3}, nodeIdx(trees[0]))
	assert.Equal(t, []bintree.NodeIdx{7, 8, 1, 2, 3}, nodeIdx(trees[1]))
	assert.Equal(t, []bintree.NodeIdx{4}, nodeIdx(trees[2]))
	assert.Equal(t, bintree.NodeIdx(9), r.NextIdx())
}

func TestReaderReportsLine(t *testing.T) {
	r := NewReader[*bintree.BinTree](
		sample("(1,2);\n(1,2)\n"), bintree.BinTreeBuilder{}, 0)
	_, err := r.ReadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	var perr *ParserError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, UnexpectedEnd, perr.Kind)
}

func TestReaderAllowWhitespace(t *testing.T) {
	r := NewReader[*bintree.BinTree](
		sample("( 1 , 2 ) ;\n"), bintree.BinTreeBuilder{}, 0)
	_, err := r.ReadTree()
	require.Error(t, err)

	r = NewReader[*bintree.BinTree](
		sample("( 1 , 2 ) ;\n"), bintree.BinTreeBuilder{}, 0)
	r.AllowWhitespace = true
	tree, err := r.ReadTree()
	require.NoError(t, err)
	assert.Equal(t, "(1,2);", String(tree))

	_, err = r.ReadTree()
	assert.Equal(t, io.EOF, err)
}
