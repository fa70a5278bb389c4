// Package ast defines the expression tree produced by the parser.
package ast

import (
	"fmt"
	"strconv"
)

// Node is an expression tree node. The set of nodes is closed:
// NumberExpr and BinaryExpr.
type Node interface {
	Dump() string
	node()
}

// Operator is the kind of a binary operation.
type Operator int

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
)

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// NumberExpr is a literal.
type NumberExpr struct {
	Value float64
}

func (NumberExpr) node() {}

func (n NumberExpr) Dump() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// BinaryExpr owns both of its operands.
type BinaryExpr struct {
	Op    Operator
	Left  Node
	Right Node
}

func (BinaryExpr) node() {}

// Dump renders the operation fully parenthesized, e.g. "((8 - 3) - 2)".
func (b BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Op, b.Right.Dump())
}
