package lexer

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to test the lexer
func testLexer(t *testing.T, input string, expectedTokens []Token) {
	t.Helper()

	tokens := Tokens(input)
	require.Len(t, tokens, len(expectedTokens), "token count for %q: %v", input, tokens)
	for i, expectedToken := range expectedTokens {
		token := tokens[i]

		if token.Type != expectedToken.Type {
			t.Fatalf("tests[%d] - wrong type. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Type, expectedToken, token.Type, token)
		}

		if token.Value != expectedToken.Value {
			t.Fatalf("tests[%d] - wrong value. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Value, expectedToken, token.Value, token)
		}

		if token.Type == TokNumber {
			assert.Equal(t, expectedToken.Number, token.Number, "tests[%d] - wrong number", i)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if len(tokenTypeStrings) != int(FinalToken) {
		t.Fatalf("Expected %d token types in tokenTypeStrings, got %d", FinalToken, len(tokenTypeStrings))
	}
	for tt := TokInvalid; tt < FinalToken; tt++ {
		assert.NotEmpty(t, tt.String(), "missing string for token type %d", tt)
	}
}

func TestLexerSingleNumber(t *testing.T) {
	input := "42"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "42", Number: 42},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerOperators(t *testing.T) {
	input := "1+2-3*4/5"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "1", Number: 1},
		{Type: TokPlus, Value: "+"},
		{Type: TokNumber, Value: "2", Number: 2},
		{Type: TokMinus, Value: "-"},
		{Type: TokNumber, Value: "3", Number: 3},
		{Type: TokTimes, Value: "*"},
		{Type: TokNumber, Value: "4", Number: 4},
		{Type: TokDivide, Value: "/"},
		{Type: TokNumber, Value: "5", Number: 5},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerWhitespaceNotCoalesced(t *testing.T) {
	input := " \t\n1  "
	expectedTokens := []Token{
		{Type: TokWhitespace, Value: " "},
		{Type: TokWhitespace, Value: "\t"},
		{Type: TokWhitespace, Value: "\n"},
		{Type: TokNumber, Value: "1", Number: 1},
		{Type: TokWhitespace, Value: " "},
		{Type: TokWhitespace, Value: " "},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerDecimals(t *testing.T) {
	input := "3.25 .5 7. 1.2.3"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "3.25", Number: 3.25},
		{Type: TokWhitespace, Value: " "},
		{Type: TokNumber, Value: ".5", Number: 0.5},
		{Type: TokWhitespace, Value: " "},
		{Type: TokNumber, Value: "7.", Number: 7},
		{Type: TokWhitespace, Value: " "},
		{Type: TokNumber, Value: "1.2", Number: 1.2},
		{Type: TokNumber, Value: ".3", Number: 0.3},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerLoneDotIsInvalid(t *testing.T) {
	input := "1+."
	expectedTokens := []Token{
		{Type: TokNumber, Value: "1", Number: 1},
		{Type: TokPlus, Value: "+"},
		{Type: TokInvalid, Value: "."},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerInvalidCharactersDoNotAbort(t *testing.T) {
	input := "1@é\x002"
	expectedTokens := []Token{
		{Type: TokNumber, Value: "1", Number: 1},
		{Type: TokInvalid, Value: "@"},
		{Type: TokInvalid, Value: "é"},
		{Type: TokInvalid, Value: "\x00"},
		{Type: TokNumber, Value: "2", Number: 2},
		{Type: TokEOF, Value: ""},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerHugeNumberSaturates(t *testing.T) {
	input := "1" + strings.Repeat("0", 400)

	tokens := Tokens(input)
	require.Len(t, tokens, 2)
	assert.Equal(t, TokNumber, tokens[0].Type)
	assert.True(t, math.IsInf(tokens[0].Number, 1))
}

func TestLexerEOFIsIdempotent(t *testing.T) {
	l := New("7")
	tok := l.NextToken()
	require.Equal(t, TokNumber, tok.Type)
	for i := 0; i < 5; i++ {
		assert.Equal(t, TokEOF, l.NextToken().Type)
	}
}

func TestLexerEmptyInput(t *testing.T) {
	l := New("")
	assert.Equal(t, TokEOF, l.NextToken().Type)
	assert.Equal(t, TokEOF, l.NextToken().Type)
}

func TestLexerTokenPositions(t *testing.T) {
	tokens := Tokens("12 + 3.5")
	require.Len(t, tokens, 6)
	expected := []int{0, 2, 3, 4, 5, 8}
	for i, tok := range tokens {
		assert.Equal(t, expected[i], tok.Pos(), "position of %s", tok)
	}
}

func TestTokenString(t *testing.T) {
	tokens := Tokens("2*@")
	require.Len(t, tokens, 4)
	assert.Equal(t, "NUMBER[0]: 2", tokens[0].String())
	assert.Equal(t, `*[1]: "*"`, tokens[1].String())
	assert.Equal(t, `INVALID[2]: "@"`, tokens[2].String())
	assert.Equal(t, "EOF", tokens[3].String())
}

func TestIsOperator(t *testing.T) {
	for _, tt := range []TokenType{TokPlus, TokMinus, TokTimes, TokDivide} {
		assert.True(t, tt.IsOperator(), tt.String())
	}
	for _, tt := range []TokenType{TokInvalid, TokEOF, TokNumber, TokWhitespace} {
		assert.False(t, tt.IsOperator(), tt.String())
	}
}
