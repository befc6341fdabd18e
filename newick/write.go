package newick

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/manpen/pace26io/bintree"
)

// Write writes the minimal Newick representation of tree, without any
// whitespace and terminated by ';'.
func Write[T bintree.Node[T]](w io.Writer, tree T) error {
	buf := bufio.NewWriter(w)
	if err := writeTree(buf, tree); err != nil {
		return err
	}
	if err := buf.WriteByte(terminal); err != nil {
		return err
	}
	return buf.Flush()
}

// WriteInner is like Write, but omits the terminating ';'. It can be used to
// embed a subtree into other output.
func WriteInner[T bintree.Node[T]](w io.Writer, tree T) error {
	buf := bufio.NewWriter(w)
	if err := writeTree(buf, tree); err != nil {
		return err
	}
	return buf.Flush()
}

// String returns the Newick representation of tree as produced by Write.
func String[T bintree.Node[T]](tree T) string {
	sb := new(strings.Builder)
	if err := Write(sb, tree); err != nil {
		// strings.Builder never fails.
		panic(err)
	}
	return sb.String()
}

func writeTree[T bintree.Node[T]](buf *bufio.Writer, tree T) error {
	if left, right, ok := tree.Children(); ok {
		if err := buf.WriteByte(descStart); err != nil {
			return err
		}
		if err := writeTree(buf, left); err != nil {
			return err
		}
		if err := buf.WriteByte(delimiter); err != nil {
			return err
		}
		if err := writeTree(buf, right); err != nil {
			return err
		}
		return buf.WriteByte(descEnd)
	}

	label, ok := tree.LeafLabel()
	if !ok {
		panic("BUG: node is neither a leaf nor an inner node")
	}
	_, err := buf.WriteString(strconv.FormatUint(uint64(label), 10))
	return err
}

// A Writer writes trees to Newick formatted output, one tree per line.
type Writer[T bintree.Node[T]] struct {
	buf *bufio.Writer
}

// NewWriter creates a new Newick writer that writes trees to w.
func NewWriter[T bintree.Node[T]](w io.Writer) *Writer[T] {
	return &Writer[T]{buf: bufio.NewWriter(w)}
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer[T]) Flush() error {
	return w.buf.Flush()
}

// Write writes a single tree followed by a new line.
//
// You may need to call Flush in order for the changes to be written.
func (w *Writer[T]) Write(tree T) error {
	if err := writeTree(w.buf, tree); err != nil {
		return err
	}
	_, err := w.buf.WriteString(";\n")
	return err
}

// WriteAll writes a slice of trees to the underlying io.Writer, and calls
// Flush.
func (w *Writer[T]) WriteAll(trees []T) error {
	for _, tree := range trees {
		if err := w.Write(tree); err != nil {
			return err
		}
	}
	return w.Flush()
}
