package newick

import (
	"fmt"
	"io"
	"math"
	"unicode"
	"unicode/utf8"
)

// TokenType is the kind of a lexical token.
type TokenType int

const (
	TokenOpen TokenType = iota
	TokenClose
	TokenComma
	TokenSemicolon
	TokenNumber
)

// Token is a single lexical token along with its byte offset in the input.
// Value is only meaningful for TokenNumber.
type Token struct {
	Type   TokenType
	Offset int
	Value  uint32
}

type itemType int

const (
	itemError itemType = iota
	itemEOF
	itemToken
)

const (
	eof       = -1
	terminal  = ';'
	delimiter = ','
	descStart = '('
	descEnd   = ')'
)

var punctuation = map[rune]TokenType{
	descStart: TokenOpen,
	descEnd:   TokenClose,
	delimiter: TokenComma,
	terminal:  TokenSemicolon,
}

type stateFn func(lx *Lexer) stateFn

// Lexer splits Newick text into tokens. Tokens are produced lazily, one per
// call to Next.
//
// By default the lexer is strict: any whitespace is an error. Use
// AllowWhitespace to skip it instead.
type Lexer struct {
	input           string
	start           int
	pos             int
	width           int
	allowWhitespace bool
	state           stateFn
	items           chan item

	// Set once the EOF or error item has been handed out. It is returned
	// again on every subsequent call.
	final *item
}

type item struct {
	typ itemType
	tok Token
	err error
}

// NewLexer returns a strict lexer over text.
func NewLexer(text string) *Lexer {
	return &Lexer{
		input: text,
		state: lexToken,
		items: make(chan item, 2),
	}
}

// AllowWhitespace makes the lexer skip whitespace between tokens.
func (lx *Lexer) AllowWhitespace() {
	lx.allowWhitespace = true
}

// Next returns the next token. At the end of input it returns io.EOF. After
// an error, the same error is returned by every following call.
func (lx *Lexer) Next() (Token, error) {
	item := lx.nextItem()
	switch item.typ {
	case itemEOF:
		return Token{}, io.EOF
	case itemError:
		return Token{}, item.err
	}
	return item.tok, nil
}

func (lx *Lexer) nextItem() item {
	for {
		select {
		case item := <-lx.items:
			if item.typ != itemToken {
				lx.final = &item
			}
			return item
		default:
			if lx.state == nil {
				return *lx.final
			}
			lx.state = lx.state(lx)
		}
	}
}

func (lx *Lexer) emit(typ TokenType, value uint32) {
	lx.items <- item{
		typ: itemToken,
		tok: Token{Type: typ, Offset: lx.start, Value: value},
	}
	lx.start = lx.pos
}

func (lx *Lexer) next() (r rune) {
	if lx.pos >= len(lx.input) {
		lx.width = 0
		return eof
	}
	r, lx.width = utf8.DecodeRuneInString(lx.input[lx.pos:])
	lx.pos += lx.width
	return r
}

// ignore skips over the pending input before this point.
func (lx *Lexer) ignore() {
	lx.start = lx.pos
}

// backup steps back one rune. Can be called only once per call of next.
func (lx *Lexer) backup() {
	lx.pos -= lx.width
}

// errorf stops all lexing by emitting an error and returning nil.
func (lx *Lexer) errorf(err *LexerError) stateFn {
	lx.items <- item{typ: itemError, err: err}
	return nil
}

func lexToken(lx *Lexer) stateFn {
	r := lx.next()
	switch {
	case r == eof:
		lx.items <- item{typ: itemEOF}
		return nil
	case isDigit(r):
		lx.backup()
		return lexNumber
	case lx.allowWhitespace && unicode.IsSpace(r):
		lx.ignore()
		return lexToken
	}
	if typ, ok := punctuation[r]; ok {
		lx.emit(typ, 0)
		return lexToken
	}
	return lx.errorf(&LexerError{
		Kind:   UnexpectedChar,
		Char:   r,
		Offset: lx.start,
	})
}

// lexNumber consumes the longest run of digits. Literals that do not fit
// into 32 bits are rejected rather than wrapped.
func lexNumber(lx *Lexer) stateFn {
	var value uint64
	for {
		r := lx.next()
		if !isDigit(r) {
			lx.backup()
			break
		}
		value = value*10 + uint64(r-'0')
		if value > math.MaxUint32 {
			return lx.errorf(&LexerError{
				Kind:   NumberOverflow,
				Offset: lx.start,
			})
		}
	}
	lx.emit(TokenNumber, uint32(value))
	return lexToken
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (typ TokenType) String() string {
	switch typ {
	case TokenOpen:
		return "'('"
	case TokenClose:
		return "')'"
	case TokenComma:
		return "','"
	case TokenSemicolon:
		return "';'"
	case TokenNumber:
		return "number"
	}
	panic(fmt.Sprintf("BUG: Unknown token type '%d'.", int(typ)))
}

func (tok Token) String() string {
	if tok.Type == TokenNumber {
		return fmt.Sprintf("number %d at byte %d", tok.Value, tok.Offset)
	}
	return fmt.Sprintf("%s at byte %d", tok.Type, tok.Offset)
}
