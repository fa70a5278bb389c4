package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokInvalid TokenType = iota
	TokEOF

	// Literals.
	TokNumber

	// Operators.
	TokPlus
	TokMinus
	TokTimes
	TokDivide

	// Delimiters.
	TokWhitespace

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokInvalid: "INVALID",
	TokEOF:     "EOF",

	TokNumber: "NUMBER",

	TokPlus:   "+",
	TokMinus:  "-",
	TokTimes:  "*",
	TokDivide: "/",

	TokWhitespace: "WHITESPACE",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsOperator reports whether tt is one of the four binary operators.
func (tt TokenType) IsOperator() bool {
	return tt.IsOneOf(TokPlus, TokMinus, TokTimes, TokDivide)
}

// Token represents a lexical token of an arithmetic expression.
type Token struct {
	Type  TokenType
	Value string // Raw text of the token.

	Number float64 // Parsed value, only set for TokNumber.

	pos int
}

// Pos returns the byte offset in the input where the token starts.
func (t Token) Pos() int { return t.pos }

func (t Token) String() string {
	switch t.Type {
	case TokEOF:
		return "EOF"
	case TokInvalid:
		return fmt.Sprintf("INVALID[%d]: %q", t.pos, t.Value)
	case TokNumber:
		return fmt.Sprintf("%s[%d]: %g", t.Type, t.pos, t.Number)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.pos, t.Value)
}
