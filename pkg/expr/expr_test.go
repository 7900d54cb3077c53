package expr

import (
	"math"
	"testing"
)

func assertEval(t *testing.T, node Node, x float64, expected float64, tol float64) {
	t.Helper()
	got := node.Eval(x)
	if math.Abs(got-expected) > tol {
		t.Errorf("Eval(x=%v) of %s = %v, want %v (tol=%v)", x, node, got, expected, tol)
	}
}

func TestVarNode(t *testing.T) {
	v := Var()
	assertEval(t, v, 3.14, 3.14, 0)
	assertEval(t, v, 0, 0, 0)

	if v.String() != "x" {
		t.Errorf("VarNode.String() = %q, want \"x\"", v.String())
	}
	if v.NodeCount() != 1 {
		t.Errorf("VarNode.NodeCount() = %d, want 1", v.NodeCount())
	}
}

func TestConstNode(t *testing.T) {
	c := Const(7.5)
	assertEval(t, c, 123, 7.5, 0)

	if c.String() != "7.5" {
		t.Errorf("ConstNode.String() = %q, want \"7.5\"", c.String())
	}
}

func TestBinaryOps(t *testing.T) {
	x := Var()
	two := Const(2)

	assertEval(t, Add(x, two), 3, 5, 0)
	assertEval(t, Sub(x, two), 5, 3, 0)
	assertEval(t, Mul(x, two), 4, 8, 0)
	assertEval(t, Div(x, two), 10, 5, 0)
	assertEval(t, Pow(two, Const(3)), 0, 8, 0)
	assertEval(t, Pow(two, Const(-1)), 0, 0.5, 1e-15)
}

func TestUnaryOps(t *testing.T) {
	assertEval(t, Sin(Const(math.Pi/2)), 0, 1, 1e-9)
	assertEval(t, Cos(Const(0)), 0, 1, 0)
	assertEval(t, Exp(Var()), 1, math.E, 1e-12)
	assertEval(t, Ln(Var()), math.E, 1, 1e-12)
}

func TestEvalIEEE(t *testing.T) {
	if v := Div(Const(5), Const(0)).Eval(0); !math.IsInf(v, 1) {
		t.Errorf("5/0 = %v, want +Inf", v)
	}
	if v := Div(Const(0), Const(0)).Eval(0); !math.IsNaN(v) {
		t.Errorf("0/0 = %v, want NaN", v)
	}
	if v := Pow(Const(-8), Const(0.5)).Eval(0); !math.IsNaN(v) {
		t.Errorf("(-8)^0.5 = %v, want NaN", v)
	}
	if v := Ln(Const(0)).Eval(0); !math.IsInf(v, -1) {
		t.Errorf("ln(0) = %v, want -Inf", v)
	}
	if v := Ln(Var()).Eval(-1); !math.IsNaN(v) {
		t.Errorf("ln(-1) = %v, want NaN", v)
	}
}

func TestFormatConst(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{3, "3.0"},
		{-1, "-1.0"},
		{0, "0.0"},
		{2.5, "2.5"},
		{0.001, "0.001"},
		{1234567, "1234567.0"},
		{1e7, "1.0E7"},
		{1.5e-5, "1.5E-5"},
		{-2.5e21, "-2.5E21"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, tc := range cases {
		if got := FormatConst(tc.v); got != tc.want {
			t.Errorf("FormatConst(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	tree := Mul(Const(3), Add(Var(), Const(2)))
	if s := tree.String(); s != "(3.0 * (x + 2.0))" {
		t.Errorf("String() = %q", s)
	}

	tree = Div(Sin(Var()), Pow(Var(), Const(2)))
	if s := tree.String(); s != "(sin(x) / (x ^ 2.0))" {
		t.Errorf("String() = %q", s)
	}
}

func TestLaTeX(t *testing.T) {
	tree := Div(Const(1), Exp(Var()))
	if s := tree.LaTeX(); s != "\\frac{1}{e^{x}}" {
		t.Errorf("LaTeX() = %q", s)
	}

	tree = Mul(Const(2), Ln(Var()))
	if s := tree.LaTeX(); s != "{2} \\cdot {\\ln{(x)}}" {
		t.Errorf("LaTeX() = %q", s)
	}
}

func TestComplexity(t *testing.T) {
	tree := Add(Var(), Mul(Const(2), Var()))
	if tree.NodeCount() != 5 {
		t.Errorf("tree.NodeCount() = %d, want 5", tree.NodeCount())
	}
	if tree.Depth() != 3 {
		t.Errorf("tree.Depth() = %d, want 3", tree.Depth())
	}

	if s := Sin(Cos(Var())); s.NodeCount() != 3 || s.Depth() != 3 {
		t.Errorf("sin(cos(x)): count=%d depth=%d", s.NodeCount(), s.Depth())
	}
}

func TestContainsVar(t *testing.T) {
	if !ContainsVar(Sin(Add(Const(1), Var()))) {
		t.Error("sin(1 + x) contains x")
	}
	if ContainsVar(Pow(Const(2), Ln(Const(3)))) {
		t.Error("2 ^ ln(3) does not contain x")
	}
}

func TestEqual(t *testing.T) {
	a := Add(Var(), Sin(Const(1)))
	b := Add(Var(), Sin(Const(1)))
	if !Equal(a, b) {
		t.Error("identical trees should be equal")
	}
	if Equal(a, Add(Var(), Cos(Const(1)))) {
		t.Error("sin vs cos should differ")
	}
	if Equal(a, Sub(Var(), Sin(Const(1)))) {
		t.Error("+ vs - should differ")
	}
	if !Equal(Const(math.NaN()), Const(math.NaN())) {
		t.Error("NaN constants should compare equal")
	}
}

func TestUnknownOperatorNames(t *testing.T) {
	if _, ok := UnaryOpByName("tan"); ok {
		t.Error("tan is not supported")
	}
	if op, ok := UnaryOpByName("ln"); !ok || op != OpLn {
		t.Error("ln should map to OpLn")
	}
	if _, ok := BinaryOpBySymbol("?"); ok {
		t.Error("? is not an operator")
	}
	if op, ok := BinaryOpBySymbol("^"); !ok || op != OpPow {
		t.Error("^ should map to OpPow")
	}
}
