package aos

import (
	"strings"

	"github.com/wildfunctions/mathplot/pkg/expr"
)

// Build converts a Triple into an expression tree, parsing operand text
// recursively.
func Build(t Triple) (expr.Node, error) {
	if t.IsLeaf() {
		if strings.EqualFold(t.Head, "x") {
			return expr.Var(), nil
		}
		v, ok := parseNumber(t.Head)
		if !ok {
			return nil, parseError(t.Head, ErrUnknownToken)
		}
		return expr.Const(v), nil
	}

	if op, ok := expr.UnaryOpByName(t.Head); ok && t.Left != nil && t.Right == nil {
		arg, err := ParseExpr(*t.Left)
		if err != nil {
			return nil, err
		}
		return expr.Unary(op, arg), nil
	}

	if op, ok := expr.BinaryOpBySymbol(t.Head); ok && t.Left != nil && t.Right != nil {
		left, err := ParseExpr(*t.Left)
		if err != nil {
			return nil, err
		}
		right, err := ParseExpr(*t.Right)
		if err != nil {
			return nil, err
		}
		return expr.Binary(op, left, right), nil
	}

	return nil, parseError(t.Head, ErrUnknownOperator)
}

// ParseExpr parses AOS text into an expression tree.
func ParseExpr(text string) (expr.Node, error) {
	t, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Build(t)
}

// MustParse is like ParseExpr but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(text string) expr.Node {
	n, err := ParseExpr(text)
	if err != nil {
		panic(err)
	}
	return n
}
