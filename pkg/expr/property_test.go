package expr_test

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/Knetic/govaluate"

	"github.com/wildfunctions/mathplot/pkg/aos"
	"github.com/wildfunctions/mathplot/pkg/expr"
	"github.com/wildfunctions/mathplot/pkg/pool"
)

// randomTrees draws n trees from every registered pool.
func randomTrees(t *testing.T, n, maxDepth int) []expr.Node {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	var trees []expr.Node
	for _, name := range pool.Names() {
		p, err := pool.Get(name)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < n; i++ {
			trees = append(trees, p.RandomTree(rng, maxDepth))
		}
	}
	return trees
}

func approxEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

var samplePoints = []float64{-7.5, -2, -0.5, 0.25, 1, 3.3}

func TestArithmeticLaws(t *testing.T) {
	trees := randomTrees(t, 50, 3)
	for i := 0; i+1 < len(trees); i += 2 {
		a, b := trees[i], trees[i+1]
		for _, x := range samplePoints {
			av, bv := a.Eval(x), b.Eval(x)
			if got := expr.Add(a, b).Eval(x); !approxEqual(got, av+bv) {
				t.Errorf("Add law failed for %s, %s at %v: %v != %v", a, b, x, got, av+bv)
			}
			if got := expr.Sub(a, b).Eval(x); !approxEqual(got, av-bv) {
				t.Errorf("Sub law failed for %s, %s at %v: %v != %v", a, b, x, got, av-bv)
			}
			if got := expr.Mul(a, b).Eval(x); !approxEqual(got, av*bv) {
				t.Errorf("Mul law failed for %s, %s at %v: %v != %v", a, b, x, got, av*bv)
			}
		}
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	for _, tree := range randomTrees(t, 200, 4) {
		once := expr.Simplify(tree)
		twice := expr.Simplify(once)
		if !expr.Equal(once, twice) {
			t.Errorf("Simplify not idempotent on %s: %s then %s", tree, once, twice)
		}
	}
}

func TestSimplifyPreservesFiniteValues(t *testing.T) {
	for _, tree := range randomTrees(t, 200, 4) {
		s := expr.Simplify(tree)
		for _, x := range samplePoints {
			want := tree.Eval(x)
			// 0*f and f^0 rewrite NaN/Inf away, so only finite inputs are comparable.
			if !expr.IsFinite(want) {
				continue
			}
			if got := s.Eval(x); !approxEqual(got, want) {
				t.Errorf("Simplify(%s) = %s changes value at %v: %v != %v", tree, s, x, got, want)
			}
		}
	}
}

func TestPrintParseRoundTrip(t *testing.T) {
	trees := randomTrees(t, 200, 4)
	for _, tree := range trees {
		for _, n := range []expr.Node{tree, expr.Derive(tree), expr.Simplify(expr.Derive(tree))} {
			printed := n.String()
			parsed, err := aos.ParseExpr(printed)
			if err != nil {
				t.Fatalf("ParseExpr(%q): %v", printed, err)
			}
			if !expr.Equal(parsed, n) {
				t.Errorf("round trip changed tree: %q -> %q", printed, parsed.String())
			}
			if parsed.String() != printed {
				t.Errorf("round trip changed text: %q -> %q", printed, parsed.String())
			}
		}
	}
}

func TestDerivativeMatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	p, _ := pool.Get("moderate")
	rng := rand.New(rand.NewSource(3))
	checked := 0
	for i := 0; i < 300; i++ {
		tree := p.RandomTree(rng, 3)
		d := expr.Derive(tree)
		for _, x := range samplePoints {
			lo, hi, want := tree.Eval(x-h), tree.Eval(x+h), d.Eval(x)
			// Skip poles and large magnitudes where the difference quotient
			// is dominated by rounding.
			if !expr.IsFinite(want) || math.Abs(want) > 1e3 ||
				!expr.IsFinite(lo) || !expr.IsFinite(hi) || math.Abs(lo) > 1e3 || math.Abs(hi) > 1e3 {
				continue
			}
			approx := (hi - lo) / (2 * h)
			if math.Abs(approx-want) > 1e-3*math.Max(1, math.Abs(want)) {
				t.Errorf("d/dx %s at %v: derivative %v, finite difference %v", tree, x, want, approx)
			}
			checked++
		}
	}
	if checked < 300 {
		t.Errorf("only %d points checked", checked)
	}
}

// govaluateText renders a tree in govaluate syntax, where ^ is XOR and
// exponentiation is **.
func govaluateText(n expr.Node) string {
	switch v := n.(type) {
	case *expr.VarNode:
		return "x"
	case *expr.ConstNode:
		return "(" + strconv.FormatFloat(v.Val, 'f', -1, 64) + ")"
	case *expr.UnaryNode:
		return fmt.Sprintf("%s(%s)", v.Op, govaluateText(v.Child))
	case *expr.BinaryNode:
		op := v.Op.String()
		if v.Op == expr.OpPow {
			op = "**"
		}
		return fmt.Sprintf("(%s %s %s)", govaluateText(v.Left), op, govaluateText(v.Right))
	}
	panic("unreachable")
}

func unaryFunc(f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		return f(args[0].(float64)), nil
	}
}

func TestEvalMatchesGovaluate(t *testing.T) {
	funcs := map[string]govaluate.ExpressionFunction{
		"sin": unaryFunc(math.Sin),
		"cos": unaryFunc(math.Cos),
		"exp": unaryFunc(math.Exp),
		"ln":  unaryFunc(math.Log),
	}

	for _, tree := range randomTrees(t, 100, 3) {
		text := govaluateText(tree)
		ge, err := govaluate.NewEvaluableExpressionWithFunctions(text, funcs)
		if err != nil {
			t.Fatalf("govaluate rejected %q: %v", text, err)
		}
		for _, x := range samplePoints {
			want := tree.Eval(x)
			if !expr.IsFinite(want) {
				continue
			}
			got, err := ge.Evaluate(map[string]interface{}{"x": x})
			if err != nil {
				t.Fatalf("govaluate %q at %v: %v", text, x, err)
			}
			if g, ok := got.(float64); !ok || !approxEqual(g, want) {
				t.Errorf("%s at %v: Eval = %v, govaluate = %v", tree, x, want, got)
			}
		}
	}
}
