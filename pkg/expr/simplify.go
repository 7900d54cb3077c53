package expr

// maxSimplifyPasses caps the fixed-point loop in Simplify.
const maxSimplifyPasses = 20

// Simplify applies rewrite rules to reduce an expression tree.
// It repeatedly applies SimplifyOnce until no further changes occur.
func Simplify(node Node) Node {
	for i := 0; i < maxSimplifyPasses; i++ {
		next := SimplifyOnce(node)
		if Equal(next, node) {
			return next
		}
		node = next
	}
	return node
}

// SimplifyOnce makes a single bottom-up pass: children are simplified first,
// then constant folding and the identity rules are applied at the current
// node only. Comparisons against 0 and 1 are exact.
func SimplifyOnce(node Node) Node {
	switch n := node.(type) {
	case *VarNode, *ConstNode:
		return node

	case *UnaryNode:
		child := SimplifyOnce(n.Child)
		if c, ok := child.(*ConstNode); ok {
			return Const(applyUnary(n.Op, c.Val))
		}
		return &UnaryNode{Op: n.Op, Child: child}

	case *BinaryNode:
		left := SimplifyOnce(n.Left)
		right := SimplifyOnce(n.Right)

		lc, lok := left.(*ConstNode)
		rc, rok := right.(*ConstNode)

		// Constant folding
		if lok && rok {
			return Const(applyBinary(n.Op, lc.Val, rc.Val))
		}

		switch n.Op {
		case OpAdd:
			// 0 + x = x
			if lok && lc.Val == 0 {
				return right
			}
			// x + 0 = x
			if rok && rc.Val == 0 {
				return left
			}

		case OpSub:
			// x - 0 = x
			if rok && rc.Val == 0 {
				return left
			}

		case OpMul:
			// 0 * x = 0, x * 0 = 0
			if (lok && lc.Val == 0) || (rok && rc.Val == 0) {
				return Const(0)
			}
			// 1 * x = x
			if lok && lc.Val == 1 {
				return right
			}
			// x * 1 = x
			if rok && rc.Val == 1 {
				return left
			}

		case OpDiv:
			// x / 1 = x
			if rok && rc.Val == 1 {
				return left
			}

		case OpPow:
			// x^1 = x
			if rok && rc.Val == 1 {
				return left
			}
			// x^0 = 1
			if rok && rc.Val == 0 {
				return Const(1)
			}
		}

		return &BinaryNode{Op: n.Op, Left: left, Right: right}
	}
	panic(unknownNode(node))
}
