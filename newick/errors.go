package newick

import "fmt"

// LexerErrorKind classifies a LexerError.
type LexerErrorKind int

const (
	// UnexpectedChar is a character that cannot start any token.
	UnexpectedChar LexerErrorKind = iota
	// NumberOverflow is a numeric literal exceeding the 32 bit range.
	NumberOverflow
)

// LexerError is returned when the input cannot be split into tokens. Offset
// is the byte offset of the offending character, or of the first digit of an
// overflowing number.
type LexerError struct {
	Kind   LexerErrorKind
	Char   rune
	Offset int
}

func (e *LexerError) Error() string {
	if e.Kind == NumberOverflow {
		return fmt.Sprintf("number at byte %d does not fit into 32 bits",
			e.Offset)
	}
	return fmt.Sprintf("unexpected character %q at byte %d", e.Char, e.Offset)
}

// ParserErrorKind classifies a ParserError.
type ParserErrorKind int

const (
	UnexpectedEnd ParserErrorKind = iota
	ExpectedNodeBegin
	ExpectedComma
	ExpectedClosing
	ExpectedEnd
	LexicalError
	// IndexOverflow is an inner node that would need an index beyond the
	// NodeIdx range.
	IndexOverflow
)

// ParserError is returned when the token stream does not match the grammar.
// Token is the offending token, unless Kind is UnexpectedEnd or LexicalError.
// For LexicalError, Err holds the *LexerError.
type ParserError struct {
	Kind  ParserErrorKind
	Token Token
	Err   error
}

func (e *ParserError) Error() string {
	switch e.Kind {
	case UnexpectedEnd:
		return "unexpected end of token stream"
	case ExpectedNodeBegin:
		return fmt.Sprintf("expected begin of node definition, i.e. label "+
			"or '(', but got %s", e.Token)
	case ExpectedComma:
		return fmt.Sprintf("expected ',' but got %s", e.Token)
	case ExpectedClosing:
		return fmt.Sprintf("expected ')' but got %s", e.Token)
	case ExpectedEnd:
		return fmt.Sprintf("expected end of tree, i.e. ';', but got %s",
			e.Token)
	case IndexOverflow:
		return fmt.Sprintf("inner node %s exceeds the node index range",
			e.Token)
	}
	return e.Err.Error()
}

func (e *ParserError) Unwrap() error {
	return e.Err
}
