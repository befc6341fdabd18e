package pace

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/manpen/pace26io/bintree"
	"github.com/manpen/pace26io/newick"
)

// Writer writes the lines of an instance. Nothing is checked: writing a
// header twice produces output Reader rejects.
type Writer struct {
	buf *bufio.Writer
}

// NewWriter returns a writer to w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(w)}
}

func (w *Writer) Flush() error {
	return w.buf.Flush()
}

func (w *Writer) WriteHeader(numTrees, numLeaves int) error {
	_, err := fmt.Fprintf(w.buf, "#p %d %d\n", numTrees, numLeaves)
	return err
}

// WriteComment writes text as a comment line. text must not contain a
// line break.
func (w *Writer) WriteComment(text string) error {
	_, err := fmt.Fprintf(w.buf, "# %s\n", text)
	return err
}

func (w *Writer) WriteTreeDecomposition(td *TreeDecomposition) error {
	payload, err := json.Marshal(td)
	if err != nil {
		return errors.Wrap(err, "encoding tree decomposition")
	}
	_, err = fmt.Fprintf(w.buf, "#x %s %s\n", paramTreeDecomp, payload)
	return err
}

// WriteTree writes a single tree line.
func WriteTree[T bintree.Node[T]](w *Writer, tree T) error {
	if err := newick.Write(w.buf, tree); err != nil {
		return err
	}
	return w.buf.WriteByte('\n')
}

// WriteInstance writes inst as read by ReadInstance: the header, the tree
// decomposition if present, and one line per tree. The header announces
// len(inst.Trees) trees.
func WriteInstance[T bintree.Node[T]](w io.Writer, inst *Instance[T]) error {
	pw := NewWriter(w)
	if err := pw.WriteHeader(len(inst.Trees), inst.NumLeaves); err != nil {
		return err
	}
	if inst.TreeDecomposition != nil {
		if err := pw.WriteTreeDecomposition(inst.TreeDecomposition); err != nil {
			return err
		}
	}
	for _, tree := range inst.Trees {
		if err := WriteTree(pw, tree); err != nil {
			return err
		}
	}
	return pw.Flush()
}
