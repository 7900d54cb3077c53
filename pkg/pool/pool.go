// Package pool generates random expression trees, for the random command
// and for property tests over many inputs.
package pool

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/wildfunctions/mathplot/pkg/expr"
)

// Pool provides random building blocks for constructing expression trees.
type Pool interface {
	Name() string
	RandomLeaf(rng *rand.Rand) expr.Node
	RandomUnary(rng *rand.Rand) (expr.UnaryOp, bool)
	RandomBinary(rng *rand.Rand) expr.BinaryOp
	RandomTree(rng *rand.Rand, maxDepth int) expr.Node
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pool: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered pool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// palette is a Pool described by data: how often a leaf is x, how the
// other leaves are drawn, and which operators may appear.
type palette struct {
	name     string
	varShare float64
	constant func(rng *rand.Rand) float64
	unary    []expr.UnaryOp
	binary   []expr.BinaryOp
}

func (p *palette) Name() string { return p.name }

func (p *palette) RandomLeaf(rng *rand.Rand) expr.Node {
	if rng.Float64() < p.varShare {
		return expr.Var()
	}
	return expr.Const(p.constant(rng))
}

func (p *palette) RandomUnary(rng *rand.Rand) (expr.UnaryOp, bool) {
	if len(p.unary) == 0 {
		return 0, false
	}
	return p.unary[rng.Intn(len(p.unary))], true
}

func (p *palette) RandomBinary(rng *rand.Rand) expr.BinaryOp {
	return p.binary[rng.Intn(len(p.binary))]
}

func (p *palette) RandomTree(rng *rand.Rand, maxDepth int) expr.Node {
	return randomTree(p, rng, maxDepth)
}

// randomTree builds a tree no deeper than maxDepth. Exponents are always
// small integer constants so every tree has a power-rule derivative.
func randomTree(p Pool, rng *rand.Rand, maxDepth int) expr.Node {
	if maxDepth <= 1 {
		return p.RandomLeaf(rng)
	}
	r := rng.Float64()
	switch {
	case r < 0.3:
		return p.RandomLeaf(rng)
	case r < 0.5:
		if op, ok := p.RandomUnary(rng); ok {
			return expr.Unary(op, randomTree(p, rng, maxDepth-1))
		}
		return p.RandomLeaf(rng)
	default:
		op := p.RandomBinary(rng)
		left := randomTree(p, rng, maxDepth-1)
		if op == expr.OpPow {
			return expr.Pow(left, expr.Const(float64(rng.Intn(4))))
		}
		return expr.Binary(op, left, randomTree(p, rng, maxDepth-1))
	}
}
