package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesperlang/vesper/lang/lexer"
	"github.com/vesperlang/vesper/lang/token"
)

func tok(text string, kind token.Kind, line, col int) token.Token {
	return token.Token{Text: text, Kind: kind, Location: token.Location{Line: line, Column: col}}
}

func TestTokenizeBasics(t *testing.T) {
	toks, err := lexer.Tokenize("1 + 2 * 3")
	require.NoError(t, err)
	assert.Equal(t, []token.Token{
		tok("1", token.Integer, 1, 1),
		tok("+", token.Operator, 1, 3),
		tok("2", token.Integer, 1, 5),
		tok("*", token.Operator, 1, 7),
		tok("3", token.Integer, 1, 9),
	}, toks)
}

func TestTokenizeTwoCharOperatorsBeforeOneChar(t *testing.T) {
	toks, err := lexer.Tokenize("a <= b >= c == d != e")
	require.NoError(t, err)
	var ops []string
	for _, tk := range toks {
		if tk.Kind == token.Operator {
			ops = append(ops, tk.Text)
		}
	}
	assert.Equal(t, []string{"<=", ">=", "==", "!="}, ops)
}

func TestTokenizeKeywordsAreIdentifiers(t *testing.T) {
	toks, err := lexer.Tokenize("var x if then else while do true false and or not Int Bool")
	require.NoError(t, err)
	for _, tk := range toks {
		assert.Equalf(t, token.Identifier, tk.Kind, "token %q should be classified as Identifier", tk.Text)
	}
}

func TestTokenizeCommentsAndWhitespaceSkipped(t *testing.T) {
	toks, err := lexer.Tokenize("1 // a comment\n+ 2 # another\n* 3")
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, "1", toks[0].Text)
	assert.Equal(t, 2, toks[1].Location.Line)
}

func TestTokenizeCommentDoesNotCrossNewline(t *testing.T) {
	toks, err := lexer.Tokenize("// comment\n1")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "1", toks[0].Text)
	assert.Equal(t, 2, toks[0].Location.Line)
}

func TestTokenizePunctuation(t *testing.T) {
	toks, err := lexer.Tokenize("f(a, b) { x; }")
	require.NoError(t, err)
	var texts []string
	for _, tk := range toks {
		texts = append(texts, tk.Text)
	}
	assert.Equal(t, []string{"f", "(", "a", ",", "b", ")", "{", "x", ";", "}"}, texts)
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	_, err := lexer.Tokenize("1 + @")
	require.Error(t, err)
	var terr *lexer.TokenizerError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, '@', terr.Char)
	assert.Equal(t, 5, terr.Location.Column)
}

func TestTokenizeDeterministic(t *testing.T) {
	const src = "var x: Int = 1; while x < 10 do x = x + 1"
	first, err := lexer.Tokenize(src)
	require.NoError(t, err)
	second, err := lexer.Tokenize(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
