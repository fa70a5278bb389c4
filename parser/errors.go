package parser

import (
	"errors"
	"fmt"

	"go.creack.net/calc/lexer"
)

// Parse error kinds. Compile always returns a *ParseError wrapping one of them.
var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrIncompleteOperand = errors.New("incomplete operand")
	ErrEmptyInput        = errors.New("empty input")
)

// ParseError reports which token made the compilation fail.
type ParseError struct {
	Kind  error
	Token lexer.Token
}

func newError(kind error, tok lexer.Token) *ParseError {
	return &ParseError{Kind: kind, Token: tok}
}

func (e *ParseError) Error() string {
	if e.Kind == ErrEmptyInput {
		return e.Kind.Error()
	}
	if e.Token.Type == lexer.TokEOF {
		return fmt.Sprintf("%s at end of input", e.Kind)
	}
	return fmt.Sprintf("%s at %d (%q)", e.Kind, e.Token.Pos(), e.Token.Value)
}

func (e *ParseError) Unwrap() error { return e.Kind }
