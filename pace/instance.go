package pace

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/manpen/pace26io/bintree"
)

// Instance holds everything a solver needs from a PACE 2026 instance. The
// node type N is chosen by the caller through the TreeBuilder passed to
// ReadInstance.
type Instance[N any] struct {
	// The number of trees announced by the header. It is not checked
	// against len(Trees).
	NumTrees  int
	NumLeaves int
	Trees     []N

	// Nil unless the instance carries a `#x treedecomp` line.
	TreeDecomposition *TreeDecomposition
}

// RootIdx returns the node index assigned to the root of the i-th tree
// (0-based) of an instance with numLeaves leaves. Every tree has exactly
// numLeaves-1 inner nodes, so each tree owns a disjoint block of indices.
// Indices below 2 are never used for inner nodes.
//
// ok is false if the block, or the index following it, does not fit into a
// NodeIdx.
func RootIdx(i, numLeaves int) (bintree.NodeIdx, bool) {
	if i < 0 || numLeaves < 1 || uint64(numLeaves-1) > math.MaxUint32 {
		return 0, false
	}
	inner := uint64(numLeaves - 1)
	root := uint64(i+1)*inner + 2

	// The tree uses indices root, ..., root+inner-1.
	if root+inner > math.MaxUint32 {
		return 0, false
	}
	return bintree.NodeIdx(root), true
}

// ReadInstance reads a complete instance from r, parsing every tree with b.
// The first violation of the format aborts reading; no partial instance is
// returned.
func ReadInstance[N any](r io.Reader, b bintree.TreeBuilder[N]) (*Instance[N], error) {
	return ReadInstanceOpts[N](r, b, Options{})
}

// Options tune ReadInstanceOpts. The zero value gives the behavior of
// ReadInstance.
type Options struct {
	// If set, the classified lines are logged at debug level.
	Log logrus.FieldLogger

	// Accept whitespace between the tokens of a tree.
	AllowWhitespace bool
}

// ReadInstanceOpts is like ReadInstance, configured by opts.
func ReadInstanceOpts[N any](
	r io.Reader,
	b bintree.TreeBuilder[N],
	opts Options,
) (*Instance[N], error) {
	tracker := NewTracker()
	tracker.AllowWhitespace = opts.AllowWhitespace
	v := &instanceVisitor[N]{
		builder:  b,
		tracker:  tracker,
		instance: &Instance[N]{Trees: make([]N, 0, 2)},
	}
	reader := NewReader(v)
	reader.Log = opts.Log
	if err := reader.Read(r); err != nil {
		return nil, err
	}
	if v.err != nil {
		return nil, v.err
	}
	return v.instance, nil
}

// instanceVisitor fills an Instance. Errors it detects are stored in err
// and reported after the Reader has been terminated.
type instanceVisitor[N any] struct {
	BaseVisitor

	builder  bintree.TreeBuilder[N]
	tracker  *Tracker
	instance *Instance[N]
	err      error
}

func (v *instanceVisitor[N]) fail(err error) Action {
	v.err = err
	return Terminate
}

func (v *instanceVisitor[N]) VisitHeader(lineno, numTrees, numLeaves int) Action {
	if err := v.tracker.Header(lineno, numTrees, numLeaves); err != nil {
		return v.fail(err)
	}
	v.instance.NumTrees = numTrees
	v.instance.NumLeaves = numLeaves
	return Continue
}

func (v *instanceVisitor[N]) VisitTree(lineno int, line string) Action {
	tree, err := ParseTree(v.tracker, v.builder, lineno, line)
	if err != nil {
		return v.fail(err)
	}
	v.instance.Trees = append(v.instance.Trees, tree)
	return Continue
}

func (v *instanceVisitor[N]) VisitParamTreeDecomposition(
	lineno int,
	td *TreeDecomposition,
) Action {
	if err := v.tracker.TreeDecomposition(lineno); err != nil {
		return v.fail(err)
	}
	v.instance.TreeDecomposition = td
	return Continue
}
