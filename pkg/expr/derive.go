package expr

import (
	"errors"
	"fmt"
)

// ErrVariableExponent is reported by DeriveStrict for x^g where g depends on x.
var ErrVariableExponent = errors.New("derivative of a variable exponent")

// UnsupportedOperationError reports a feature the engine does not implement.
type UnsupportedOperationError struct {
	Op      string
	Subject string
	Err     error
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s of %s: %v", e.Op, e.Subject, e.Err)
}

func (e *UnsupportedOperationError) Unwrap() error { return e.Err }

// Derive returns the derivative of node with respect to x. The result is
// not simplified.
//
// A power whose exponent contains no x is differentiated with the power rule,
// treating the exponent as the constant n it evaluates to:
// d(f^c) = (c * f^(n-1)) * f'. When the exponent does contain x the general
// rule d(f^g) = f^g * (g' * ln(f) + (g * f') / f) is used instead.
func Derive(node Node) Node {
	switch n := node.(type) {
	case *ConstNode:
		return Const(0)

	case *VarNode:
		return Const(1)

	case *UnaryNode:
		u := n.Child
		du := Derive(u)
		switch n.Op {
		case OpSin:
			return Mul(Cos(u), du)
		case OpCos:
			return Mul(Mul(Const(-1), Sin(u)), du)
		case OpExp:
			return Mul(Exp(u), du)
		case OpLn:
			return Div(du, u)
		}

	case *BinaryNode:
		l, r := n.Left, n.Right
		switch n.Op {
		case OpAdd:
			return Add(Derive(l), Derive(r))
		case OpSub:
			return Sub(Derive(l), Derive(r))
		case OpMul:
			// f'g + fg'
			return Add(Mul(Derive(l), r), Mul(l, Derive(r)))
		case OpDiv:
			// (f'g - fg') / g^2
			return Div(Sub(Mul(Derive(l), r), Mul(l, Derive(r))), Pow(r, Const(2)))
		case OpPow:
			if !ContainsVar(r) {
				exp := r.Eval(0)
				return Mul(Mul(r, Pow(l, Const(exp-1))), Derive(l))
			}
			return Mul(Pow(l, r), Add(Mul(Derive(r), Ln(l)), Div(Mul(r, Derive(l)), l)))
		}
	}
	panic(unknownNode(node))
}

// DeriveStrict is Derive restricted to constant exponents. It fails with an
// *UnsupportedOperationError when any power in node has an exponent that
// depends on x.
func DeriveStrict(node Node) (Node, error) {
	if p := variableExponent(node); p != nil {
		return nil, &UnsupportedOperationError{Op: "derivative", Subject: p.String(), Err: ErrVariableExponent}
	}
	return Derive(node), nil
}

func variableExponent(node Node) Node {
	switch n := node.(type) {
	case *UnaryNode:
		return variableExponent(n.Child)
	case *BinaryNode:
		if n.Op == OpPow && ContainsVar(n.Right) {
			return n
		}
		if p := variableExponent(n.Left); p != nil {
			return p
		}
		return variableExponent(n.Right)
	default:
		return nil
	}
}
