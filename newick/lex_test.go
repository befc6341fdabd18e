package newick

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(offset int, typ TokenType) Token {
	return Token{Type: typ, Offset: offset}
}

func num(offset int, value uint32) Token {
	return Token{Type: TokenNumber, Offset: offset, Value: value}
}

func lexAll(t *testing.T, lx *Lexer) ([]Token, error) {
	t.Helper()
	var toks []Token
	for {
		tok, err := lx.Next()
		if err == io.EOF {
			return toks, nil
		} else if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}

func TestLexerStrict(t *testing.T) {
	toks, err := lexAll(t, NewLexer(")(10(;23,"))
	require.NoError(t, err)
	assert.Equal(t, []Token{
		tok(0, TokenClose),
		tok(1, TokenOpen),
		num(2, 10),
		tok(4, TokenOpen),
		tok(5, TokenSemicolon),
		num(6, 23),
		tok(8, TokenComma),
	}, toks)
}

func TestLexerStrictWithSpaces(t *testing.T) {
	toks, err := lexAll(t, NewLexer(")( 10(;23"))
	assert.Equal(t, []Token{tok(0, TokenClose), tok(1, TokenOpen)}, toks)

	var lexErr *LexerError
	require.True(t, errors.As(err, &lexErr), "got %v", err)
	assert.Equal(t, UnexpectedChar, lexErr.Kind)
	assert.Equal(t, ' ', lexErr.Char)
	assert.Equal(t, 2, lexErr.Offset)
}

func TestLexerAllowWhitespace(t *testing.T) {
	lx := NewLexer(")( 10(;23")
	lx.AllowWhitespace()
	toks, err := lexAll(t, lx)
	require.NoError(t, err)
	assert.Equal(t, []Token{
		tok(0, TokenClose),
		tok(1, TokenOpen),
		num(3, 10),
		tok(5, TokenOpen),
		tok(6, TokenSemicolon),
		num(7, 23),
	}, toks)
}

func TestLexerDoesNotResume(t *testing.T) {
	lx := NewLexer("1x2")
	first, err := lx.Next()
	require.NoError(t, err)
	assert.Equal(t, num(0, 1), first)

	_, err1 := lx.Next()
	_, err2 := lx.Next()
	require.Error(t, err1)
	assert.Equal(t, err1, err2)
}

func TestLexerEOFIsSticky(t *testing.T) {
	lx := NewLexer(";")
	_, err := lx.Next()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = lx.Next()
		assert.Equal(t, io.EOF, err)
	}
}

func TestLexerOverflow(t *testing.T) {
	toks, err := lexAll(t, NewLexer(fmt.Sprintf("(%d,", uint64(math.MaxUint32)+1)))
	assert.Equal(t, []Token{tok(0, TokenOpen)}, toks)

	var lexErr *LexerError
	require.True(t, errors.As(err, &lexErr), "got %v", err)
	assert.Equal(t, NumberOverflow, lexErr.Kind)
	assert.Equal(t, 1, lexErr.Offset)

	toks, err = lexAll(t, NewLexer(fmt.Sprintf("%d", uint32(math.MaxUint32))))
	require.NoError(t, err)
	assert.Equal(t, []Token{num(0, math.MaxUint32)}, toks)
}

func TestLexerRandomNumbers(t *testing.T) {
	rng := rand.New(rand.NewSource(0x1234678))
	for i := 0; i < 10000; i++ {
		var text string
		var expected []Token

		if rng.Intn(2) == 0 {
			expected = append(expected, tok(len(text), TokenOpen))
			text += "("
		}
		value := rng.Uint32()
		expected = append(expected, num(len(text), value))
		text += fmt.Sprintf("%d", value)
		if rng.Intn(2) == 0 {
			expected = append(expected, tok(len(text), TokenClose))
			text += ")"
		}

		toks, err := lexAll(t, NewLexer(text))
		require.NoError(t, err, text)
		require.Equal(t, expected, toks, text)
	}
}
