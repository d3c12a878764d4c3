package grammar_test

import (
	"brick/grammar"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, source string) []lexer.Token {
	t.Helper()
	lex, err := grammar.BrickLexer.LexString("test.brick", source)
	require.NoError(t, err)
	tokens, err := lexer.ConsumeAll(lex)
	require.NoError(t, err)
	return tokens
}

func significant(t *testing.T, tokens []lexer.Token) []string {
	t.Helper()
	symbols := grammar.BrickLexer.Symbols()
	skip := map[lexer.TokenType]bool{
		symbols["Whitespace"]: true,
		symbols["Comment"]:    true,
		lexer.EOF:             true,
	}
	var out []string
	for _, tok := range tokens {
		if !skip[tok.Type] {
			out = append(out, tok.Value)
		}
	}
	return out
}

func TestLexAssignment(t *testing.T) {
	tokens := lexAll(t, `content = Dog() // set it`)
	assert.Equal(t, []string{"content", "=", "Dog", "(", ")"}, significant(t, tokens))
}

func TestLexLongestOperatorFirst(t *testing.T) {
	tokens := lexAll(t, `a += b == c -> d != e`)
	assert.Equal(t, []string{"a", "+=", "b", "==", "c", "->", "d", "!=", "e"}, significant(t, tokens))
}

func TestLexLabelsAndNewlines(t *testing.T) {
	tokens := lexAll(t, "outer@{\n return@outer 1\n}")
	assert.Equal(t, []string{"outer", "@", "{", "\n", "return", "@", "outer", "1", "\n", "}"}, significant(t, tokens))
}

func TestLexStringKeepsQuotes(t *testing.T) {
	tokens := lexAll(t, `println("a \"b\"")`)
	values := significant(t, tokens)
	require.Len(t, values, 4)
	assert.Equal(t, `"a \"b\""`, values[2])
}

func TestLexPositionsAreOneBased(t *testing.T) {
	tokens := lexAll(t, "val x\nvar y")
	var y lexer.Token
	for _, tok := range tokens {
		if tok.Value == "y" {
			y = tok
		}
	}
	assert.Equal(t, 2, y.Pos.Line)
	assert.Equal(t, 5, y.Pos.Column)
}
