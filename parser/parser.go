// Package parser compiles arithmetic expressions into an ast.Node tree.
package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type parser struct {
	lex *lexer.Lexer

	prevToken lexer.Token
	curToken  lexer.Token

	output    []ast.Node    // Completed sub-trees, most recent last.
	operators []lexer.Token // Pending operators, most recent last.
}

func newParser(lex *lexer.Lexer) *parser {
	return &parser{lex: lex}
}

// Compile builds the expression tree for the given expression.
// Operators are left-associative, '*' and '/' bind tighter than '+' and '-'.
func Compile(expression string) (ast.Node, error) {
	return Parse(lexer.New(expression))
}

// Parse consumes lex until EOF and returns the resulting tree.
func Parse(lex *lexer.Lexer) (ast.Node, error) {
	p := newParser(lex)
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.root()
}

func (p *parser) parse() error {
	for p.nextToken().Type != lexer.TokEOF {
		switch tok := p.curToken; {
		case tok.Type == lexer.TokNumber:
			// Two operands in a row can never be reduced together.
			if p.prevToken.Type == lexer.TokNumber {
				return newError(ErrIncompleteOperand, tok)
			}
			p.output = append(p.output, ast.NumberExpr{Value: tok.Number})
		case tok.Type.IsOperator():
			for len(p.operators) > 0 && precedence(p.operators[len(p.operators)-1].Type) >= precedence(tok.Type) {
				if err := p.reduce(); err != nil {
					return err
				}
			}
			p.operators = append(p.operators, tok)
		default:
			return newError(ErrInvalidToken, tok)
		}
	}

	if len(p.output) == 0 && len(p.operators) == 0 {
		return newError(ErrEmptyInput, p.curToken)
	}
	for len(p.operators) > 0 {
		if err := p.reduce(); err != nil {
			return err
		}
	}
	return nil
}

// reduce pops the top operator and its two operands and pushes the combined node.
func (p *parser) reduce() error {
	op := p.operators[len(p.operators)-1]
	p.operators = p.operators[:len(p.operators)-1]

	n := len(p.output)
	if n < 2 {
		return newError(ErrIncompleteOperand, op)
	}
	left, right := p.output[n-2], p.output[n-1]
	p.output = append(p.output[:n-2], ast.BinaryExpr{
		Op:    operatorLookupTable[op.Type],
		Left:  left,
		Right: right,
	})
	return nil
}

func (p *parser) root() (ast.Node, error) {
	if len(p.output) != 1 {
		return nil, newError(ErrIncompleteOperand, p.curToken)
	}
	return p.output[0], nil
}

func (p *parser) nextToken() lexer.Token {
	p.prevToken = p.curToken
	p.curToken = p.lex.NextToken()
	p.ignoreWhitespaces()
	return p.curToken
}

func (p *parser) ignoreWhitespaces() {
	for p.curToken.Type == lexer.TokWhitespace {
		p.curToken = p.lex.NextToken()
	}
}
