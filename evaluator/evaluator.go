// Package evaluator reduces an expression tree to its value.
package evaluator

import (
	"fmt"

	"go.creack.net/calc/ast"
)

// Evaluate returns the value of the tree.
// Division follows IEEE 754: x/0 is ±Inf and 0/0 is NaN, never an error.
func Evaluate(node ast.Node) float64 {
	switch n := node.(type) {
	case ast.NumberExpr:
		return n.Value
	case ast.BinaryExpr:
		return evaluateBinary(n)
	default:
		panic(fmt.Errorf("unsupported node type %T", n))
	}
}

func evaluateBinary(expr ast.BinaryExpr) float64 {
	left, right := Evaluate(expr.Left), Evaluate(expr.Right)
	switch expr.Op {
	case ast.OpAdd:
		return left + right
	case ast.OpSubtract:
		return left - right
	case ast.OpMultiply:
		return left * right
	case ast.OpDivide:
		return left / right
	default:
		panic(fmt.Errorf("unsupported operator %s", expr.Op))
	}
}
