package pace

import (
	"github.com/manpen/pace26io/bintree"
	"github.com/manpen/pace26io/newick"
)

// Tracker enforces the rules of a complete instance that span several
// lines: a header with at least one leaf precedes all trees, every tree gets
// its own block of inner node indices, and there is at most one tree
// decomposition. Visitors that assemble or validate instances feed it the
// lines they receive from a Reader.
//
// The zero value is not usable; call NewTracker.
type Tracker struct {
	// Accept whitespace between the tokens of a tree.
	AllowWhitespace bool

	headerLine int
	numTrees   int
	numLeaves  int
	trees      int
	tdLine     int
}

func NewTracker() *Tracker {
	return &Tracker{headerLine: -1, tdLine: -1}
}

// Header records the header found in line lineno. Multiple headers are
// rejected by the Reader already.
func (t *Tracker) Header(lineno, numTrees, numLeaves int) error {
	if numLeaves == 0 {
		return &InstanceError{Kind: NoLeaves, Lineno: lineno}
	}
	t.headerLine = lineno
	t.numTrees = numTrees
	t.numLeaves = numLeaves
	return nil
}

func (t *Tracker) HasHeader() bool {
	return t.headerLine >= 0
}

// HeaderLine is the line of the header, or -1.
func (t *Tracker) HeaderLine() int {
	return t.headerLine
}

// NumTrees is the number of trees announced by the header.
func (t *Tracker) NumTrees() int {
	return t.numTrees
}

func (t *Tracker) NumLeaves() int {
	return t.numLeaves
}

// Trees is the number of trees parsed so far.
func (t *Tracker) Trees() int {
	return t.trees
}

// TreeDecomposition records a tree decomposition in line lineno and rejects
// any but the first.
func (t *Tracker) TreeDecomposition(lineno int) error {
	if t.tdLine >= 0 {
		return &InstanceError{
			Kind:    DuplicateTreeDecomposition,
			Lineno:  lineno,
			Lineno2: t.tdLine,
		}
	}
	t.tdLine = lineno
	return nil
}

// ParseTree parses the tree in line lineno with b. Its root gets index
// RootIdx(t.Trees(), t.NumLeaves()). A tree with more inner nodes than the
// header allows would overlap the indices of the next tree or of the leaves,
// so it is rejected with TooManyNodes.
func ParseTree[N any](
	t *Tracker,
	b bintree.TreeBuilder[N],
	lineno int,
	line string,
) (N, error) {
	var zero N
	if !t.HasHeader() {
		return zero, &InstanceError{Kind: NoHeader, Lineno: lineno}
	}
	root, ok := RootIdx(t.trees, t.numLeaves)
	if !ok {
		return zero, &InstanceError{Kind: TooManyNodes, Lineno: lineno}
	}

	lx := newick.NewLexer(line)
	if t.AllowWhitespace {
		lx.AllowWhitespace()
	}
	tree, next, err := newick.ParseNext(b, lx, root)
	if err != nil {
		return zero, &InstanceError{Kind: Newick, Lineno: lineno, Err: err}
	}
	if uint64(next-root) > uint64(t.numLeaves-1) {
		return zero, &InstanceError{Kind: TooManyNodes, Lineno: lineno}
	}
	t.trees++
	return tree, nil
}
