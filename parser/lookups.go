package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

type bindingPower int

const (
	bpDefault bindingPower = iota
	bpAdditive
	bpMultiplicative
)

type lookupTable[T any] map[lexer.TokenType]T

var bindingPowerLookupTable = lookupTable[bindingPower]{
	lexer.TokPlus:   bpAdditive,
	lexer.TokMinus:  bpAdditive,
	lexer.TokTimes:  bpMultiplicative,
	lexer.TokDivide: bpMultiplicative,
}

var operatorLookupTable = lookupTable[ast.Operator]{
	lexer.TokPlus:   ast.OpAdd,
	lexer.TokMinus:  ast.OpSubtract,
	lexer.TokTimes:  ast.OpMultiply,
	lexer.TokDivide: ast.OpDivide,
}

// precedence returns bpDefault for anything that is not an operator.
func precedence(kind lexer.TokenType) bindingPower {
	return bindingPowerLookupTable[kind]
}
