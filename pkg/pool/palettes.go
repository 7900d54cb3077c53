package pool

import (
	"math/rand"

	"github.com/wildfunctions/mathplot/pkg/expr"
)

func init() {
	Register("conservative", func() Pool { return conservative })
	Register("moderate", func() Pool { return moderate })
	Register("kitchensink", func() Pool { return kitchenSink })
}

var polynomialOps = []expr.BinaryOp{expr.OpAdd, expr.OpSub, expr.OpMul, expr.OpPow}

var rationalOps = []expr.BinaryOp{expr.OpAdd, expr.OpSub, expr.OpMul, expr.OpDiv, expr.OpPow}

// conservative builds polynomials: integers 0-10 and no functions.
var conservative = &palette{
	name:     "conservative",
	varShare: 0.4,
	constant: smallInt,
	binary:   polynomialOps,
}

// moderate adds division, sin, cos and half-integers.
var moderate = &palette{
	name:     "moderate",
	varShare: 0.35,
	constant: func(rng *rand.Rand) float64 {
		if rng.Float64() < 0.7 {
			return smallInt(rng)
		}
		return float64(rng.Intn(10)) + 0.5
	},
	unary:  []expr.UnaryOp{expr.OpSin, expr.OpCos},
	binary: rationalOps,
}

var fractions = []float64{0.5, 0.25, 1.5, 2.75}

// kitchenSink adds exp, ln, negative integers and a few fractions.
var kitchenSink = &palette{
	name:     "kitchensink",
	varShare: 0.35,
	constant: func(rng *rand.Rand) float64 {
		r := rng.Float64()
		switch {
		case r < 0.55:
			return smallInt(rng)
		case r < 0.8:
			return -float64(rng.Intn(10) + 1)
		default:
			return fractions[rng.Intn(len(fractions))]
		}
	},
	unary:  []expr.UnaryOp{expr.OpSin, expr.OpCos, expr.OpExp, expr.OpLn},
	binary: rationalOps,
}

func smallInt(rng *rand.Rand) float64 { return float64(rng.Intn(11)) }
