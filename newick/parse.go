package newick

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/manpen/pace26io/bintree"
)

// Parse parses a single tree terminated by ';' from text, building nodes
// with b. The root, if it is an inner node, gets index root; all other inner
// nodes are numbered in pre-order from there.
func Parse[N any](
	b bintree.TreeBuilder[N],
	text string,
	root bintree.NodeIdx,
) (N, error) {
	return ParseLexer(b, NewLexer(text), root)
}

// ParseLexer is like Parse, but reads tokens from a caller supplied lexer.
// This allows, e.g., to enable whitespace skipping.
func ParseLexer[N any](
	b bintree.TreeBuilder[N],
	lx *Lexer,
	root bintree.NodeIdx,
) (N, error) {
	tree, _, err := ParseNext(b, lx, root)
	return tree, err
}

// ParseNext is like ParseLexer, but additionally returns the first node
// index not used by the tree.
func ParseNext[N any](
	b bintree.TreeBuilder[N],
	lx *Lexer,
	root bintree.NodeIdx,
) (tree N, next bintree.NodeIdx, err error) {
	p := &parser[N]{builder: b, lx: lx}
	if tree, next, err = p.subtree(root); err != nil {
		var zero N
		return zero, 0, err
	}
	if err = p.expect(TokenSemicolon, ExpectedEnd); err != nil {
		var zero N
		return zero, 0, err
	}
	return b.MakeRoot(tree), next, nil
}

type parser[N any] struct {
	builder bintree.TreeBuilder[N]
	lx      *Lexer
}

func (p *parser[N]) token() (Token, error) {
	tok, err := p.lx.Next()
	if err == io.EOF {
		return Token{}, &ParserError{Kind: UnexpectedEnd}
	} else if err != nil {
		return Token{}, &ParserError{Kind: LexicalError, Err: err}
	}
	return tok, nil
}

// expect consumes the next token and fails with kind unless it has type typ.
func (p *parser[N]) expect(typ TokenType, kind ParserErrorKind) error {
	tok, err := p.token()
	if err != nil {
		return err
	}
	if tok.Type != typ {
		return &ParserError{Kind: kind, Token: tok}
	}
	return nil
}

// subtree parses `'(' Tree ',' Tree ')' | Number`. The returned index is the
// next one not used within the subtree.
func (p *parser[N]) subtree(id bintree.NodeIdx) (N, bintree.NodeIdx, error) {
	var zero N

	tok, err := p.token()
	if err != nil {
		return zero, 0, err
	}
	switch tok.Type {
	case TokenNumber:
		return p.builder.NewLeaf(bintree.Label(tok.Value)), id, nil
	case TokenOpen:
		// The children are numbered from id+1, which must not wrap.
		if id == math.MaxUint32 {
			return zero, 0, &ParserError{Kind: IndexOverflow, Token: tok}
		}
	default:
		return zero, 0, &ParserError{Kind: ExpectedNodeBegin, Token: tok}
	}

	left, next, err := p.subtree(id.Incremented())
	if err != nil {
		return zero, 0, err
	}
	if err := p.expect(TokenComma, ExpectedComma); err != nil {
		return zero, 0, err
	}
	right, next, err := p.subtree(next)
	if err != nil {
		return zero, 0, err
	}
	if err := p.expect(TokenClose, ExpectedClosing); err != nil {
		return zero, 0, err
	}
	return p.builder.NewInner(id, left, right), next, nil
}

// Reader reads trees from Newick formatted input with one tree per line.
// Empty lines are skipped. Inner node indices continue across trees, so
// that no two trees read by the same Reader share an index.
type Reader[N any] struct {
	// When set, whitespace between tokens is skipped instead of rejected.
	// This may be set at any time.
	AllowWhitespace bool

	builder bintree.TreeBuilder[N]
	buf     *bufio.Reader
	line    int
	next    bintree.NodeIdx
}

// NewReader returns a reader ready for reading trees from r. The root of the
// first tree gets index first.
func NewReader[N any](
	r io.Reader,
	b bintree.TreeBuilder[N],
	first bintree.NodeIdx,
) *Reader[N] {
	return &Reader[N]{
		builder: b,
		buf:     bufio.NewReader(r),
		next:    first,
	}
}

// NextIdx returns the index that the root of the next tree will receive.
func (r *Reader[N]) NextIdx() bintree.NodeIdx {
	return r.next
}

// ReadAll returns all of the Newick trees in the source input. The first
// error that occurs is returned with no trees. The error is never io.EOF.
func (r *Reader[N]) ReadAll() ([]N, error) {
	trees := make([]N, 0)
	for {
		tree, err := r.ReadTree()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}
	return trees, nil
}

// ReadTree reads a single tree from the source input. If the end of the
// input is reached, io.EOF is returned.
func (r *Reader[N]) ReadTree() (N, error) {
	var zero N
	for {
		line, err := r.buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return zero, errors.Wrapf(err, "Error reading line %d", r.line+1)
		}
		if err == io.EOF && len(line) == 0 {
			return zero, io.EOF
		}
		r.line++

		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		lx := NewLexer(line)
		if r.AllowWhitespace {
			lx.AllowWhitespace()
		}
		tree, next, perr := ParseNext(r.builder, lx, r.next)
		if perr != nil {
			return zero, errors.Wrapf(perr, "Error on line %d", r.line)
		}
		r.next = next
		return tree, nil
	}
}
