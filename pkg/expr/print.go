package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var unaryOpNames = map[UnaryOp]string{
	OpSin: "sin",
	OpCos: "cos",
	OpExp: "exp",
	OpLn:  "ln",
}

var binaryOpSymbols = map[BinaryOp]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpPow: "^",
}

// UnaryOpByName returns the function named name.
func UnaryOpByName(name string) (UnaryOp, bool) {
	for op, n := range unaryOpNames {
		if n == name {
			return op, true
		}
	}
	return 0, false
}

// BinaryOpBySymbol returns the operation written as sym.
func BinaryOpBySymbol(sym string) (BinaryOp, bool) {
	for op, s := range binaryOpSymbols {
		if s == sym {
			return op, true
		}
	}
	return 0, false
}

func (op UnaryOp) String() string  { return unaryOpNames[op] }
func (op BinaryOp) String() string { return binaryOpSymbols[op] }

// FormatConst renders a constant the way the AOS printer writes it:
// integral values keep a trailing ".0", very large or very small magnitudes
// use E notation, and non-finite values print as Infinity, -Infinity or NaN.
// The result always parses back to v.
func FormatConst(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	sign := ""
	if exp[0] == '-' {
		sign = "-"
	}
	exp = strings.TrimLeft(exp, "+-0")
	return mant + "E" + sign + exp
}

// String methods

func (v *VarNode) String() string {
	return "x"
}

func (c *ConstNode) String() string {
	return FormatConst(c.Val)
}

func (u *UnaryNode) String() string {
	return fmt.Sprintf("%s(%s)", unaryOpNames[u.Op], u.Child.String())
}

func (b *BinaryNode) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), binaryOpSymbols[b.Op], b.Right.String())
}

// LaTeX methods

func (v *VarNode) LaTeX() string {
	return "x"
}

func (c *ConstNode) LaTeX() string {
	switch {
	case math.IsNaN(c.Val):
		return `\mathrm{NaN}`
	case math.IsInf(c.Val, 1):
		return `\infty`
	case math.IsInf(c.Val, -1):
		return `-\infty`
	}
	return strconv.FormatFloat(c.Val, 'g', -1, 64)
}

func (u *UnaryNode) LaTeX() string {
	child := u.Child.LaTeX()
	switch u.Op {
	case OpSin:
		return fmt.Sprintf("\\sin{(%s)}", child)
	case OpCos:
		return fmt.Sprintf("\\cos{(%s)}", child)
	case OpExp:
		return fmt.Sprintf("e^{%s}", child)
	case OpLn:
		return fmt.Sprintf("\\ln{(%s)}", child)
	default:
		return child
	}
}

func (b *BinaryNode) LaTeX() string {
	left := b.Left.LaTeX()
	right := b.Right.LaTeX()
	switch b.Op {
	case OpAdd:
		return fmt.Sprintf("{%s} + {%s}", left, right)
	case OpSub:
		return fmt.Sprintf("{%s} - {%s}", left, right)
	case OpMul:
		return fmt.Sprintf("{%s} \\cdot {%s}", left, right)
	case OpDiv:
		return fmt.Sprintf("\\frac{%s}{%s}", left, right)
	case OpPow:
		return fmt.Sprintf("{(%s)}^{%s}", left, right)
	default:
		return ""
	}
}
