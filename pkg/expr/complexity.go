package expr

import "math"

func (v *VarNode) NodeCount() int   { return 1 }
func (c *ConstNode) NodeCount() int { return 1 }
func (u *UnaryNode) NodeCount() int { return 1 + u.Child.NodeCount() }
func (b *BinaryNode) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}

func (v *VarNode) Depth() int   { return 1 }
func (c *ConstNode) Depth() int { return 1 }
func (u *UnaryNode) Depth() int { return 1 + u.Child.Depth() }
func (b *BinaryNode) Depth() int {
	ld := b.Left.Depth()
	rd := b.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// ContainsVar reports whether the expression tree contains the variable x.
func ContainsVar(node Node) bool {
	switch n := node.(type) {
	case *VarNode:
		return true
	case *ConstNode:
		return false
	case *UnaryNode:
		return ContainsVar(n.Child)
	case *BinaryNode:
		return ContainsVar(n.Left) || ContainsVar(n.Right)
	default:
		panic(unknownNode(node))
	}
}

// Equal reports whether a and b are structurally identical. Constants
// compare by value, with NaN equal to NaN so that folded trees compare
// equal to themselves.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *VarNode:
		_, ok := b.(*VarNode)
		return ok
	case *ConstNode:
		y, ok := b.(*ConstNode)
		if !ok {
			return false
		}
		if math.IsNaN(x.Val) && math.IsNaN(y.Val) {
			return true
		}
		return x.Val == y.Val
	case *UnaryNode:
		y, ok := b.(*UnaryNode)
		return ok && x.Op == y.Op && Equal(x.Child, y.Child)
	case *BinaryNode:
		y, ok := b.(*BinaryNode)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		panic(unknownNode(a))
	}
}
