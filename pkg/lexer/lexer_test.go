package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Testing Strategy:
//
// Partitions:
// - character classes: whitespace, operators, quoted literal ' or ", word
// - literal delimiter: opening and closing quote retained in Value
// - position tracking: LF resets column, CR resets column without
//   advancing line, tokens tagged with first character's position
// - empty input

func TestLex_Operators(t *testing.T) {
	tokens := Lex("<>[]")
	assert.Len(t, tokens, 5) // 4 operators + EOF
	for i, want := range []string{"<", ">", "[", "]"} {
		assert.Equal(t, TokenOperator, tokens[i].Type)
		assert.Equal(t, want, tokens[i].Value)
	}
	assert.Equal(t, TokenEOF, tokens[4].Type)
}

func TestLex_Words(t *testing.T) {
	tokens := Lex("S1F1 W H<->E")
	var words []string
	for _, tok := range tokens {
		if tok.Type == TokenWord {
			words = append(words, tok.Value)
		}
	}
	assert.Equal(t, []string{"S1F1", "W", "H", "-", "E"}, words)
}

func TestLex_QuotedLiteralRetainsDelimiters(t *testing.T) {
	tokens := Lex(`< A "hello" >`)
	var literal Token
	found := false
	for _, tok := range tokens {
		if tok.Type == TokenLiteral {
			literal = tok
			found = true
		}
	}
	assert.True(t, found)
	assert.Equal(t, `"hello"`, literal.Value)
	assert.Equal(t, "hello", LiteralInner(literal.Value))
}

func TestLex_SingleQuoteLiteral(t *testing.T) {
	tokens := Lex(`'x'`)
	assert.Equal(t, TokenLiteral, tokens[0].Type)
	assert.Equal(t, `'x'`, tokens[0].Value)
}

func TestLex_PositionTracking(t *testing.T) {
	tokens := Lex("ab\ncd")
	// 'ab' word
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Col)
	// 'cd' word, after the LF
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 1, tokens[1].Col)
}

func TestLex_CarriageReturnResetsColumnOnly(t *testing.T) {
	tokens := Lex("ab\rcd")
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 1, tokens[0].Col)
	assert.Equal(t, 1, tokens[1].Line) // no line advance on CR
	assert.Equal(t, 1, tokens[1].Col)
}

func TestLex_EmptyInput(t *testing.T) {
	tokens := Lex("")
	assert.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Type)
}

func TestLex_SourceLineForDiagnostics(t *testing.T) {
	tokens := Lex("S1F1 W\n< U1 300 >\n.")
	for _, tok := range tokens {
		if tok.Type == TokenWord && tok.Value == "300" {
			assert.Equal(t, "< U1 300 >", tok.SourceLine())
			return
		}
	}
	t.Fatal("expected to find token '300'")
}
