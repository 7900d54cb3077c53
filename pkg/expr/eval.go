package expr

import "math"

// Eval for VarNode returns x.
func (v *VarNode) Eval(x float64) float64 {
	return x
}

// Eval for ConstNode returns the constant value.
func (c *ConstNode) Eval(x float64) float64 {
	return c.Val
}

// Eval for UnaryNode dispatches on op.
func (u *UnaryNode) Eval(x float64) float64 {
	return applyUnary(u.Op, u.Child.Eval(x))
}

// Eval for BinaryNode dispatches on op.
func (b *BinaryNode) Eval(x float64) float64 {
	return applyBinary(b.Op, b.Left.Eval(x), b.Right.Eval(x))
}

// Eval evaluates node at x. Evaluation never fails: division by zero,
// logarithms of non-positive values and the like produce ±Inf or NaN.
func Eval(node Node, x float64) float64 {
	return node.Eval(x)
}

// Func returns node as a plain function of x.
func Func(node Node) func(float64) float64 {
	return node.Eval
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func applyUnary(op UnaryOp, a float64) float64 {
	switch op {
	case OpSin:
		return math.Sin(a)
	case OpCos:
		return math.Cos(a)
	case OpExp:
		return math.Exp(a)
	case OpLn:
		return math.Log(a)
	default:
		return math.NaN()
	}
}

func applyBinary(op BinaryOp, a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpPow:
		return math.Pow(a, b)
	default:
		return math.NaN()
	}
}
