package expr

import "fmt"

// Node is the interface for all expression tree nodes. The set of
// implementations is closed: VarNode, ConstNode, UnaryNode and BinaryNode.
// Nodes are never modified after construction.
type Node interface {
	Eval(x float64) float64
	String() string
	LaTeX() string
	NodeCount() int
	Depth() int

	node()
}

// UnaryOp identifies a unary function.
type UnaryOp int

const (
	OpSin UnaryOp = iota
	OpCos
	OpExp
	OpLn
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// VarNode represents the variable x.
type VarNode struct{}

// ConstNode represents a numeric literal.
type ConstNode struct {
	Val float64
}

// UnaryNode applies a function to a child expression.
type UnaryNode struct {
	Op    UnaryOp
	Child Node
}

// BinaryNode applies a binary operation to two child expressions.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right Node
}

func (*VarNode) node()    {}
func (*ConstNode) node()  {}
func (*UnaryNode) node()  {}
func (*BinaryNode) node() {}

// Constructors.

func Var() Node            { return &VarNode{} }
func Const(v float64) Node { return &ConstNode{Val: v} }
func Add(l, r Node) Node   { return &BinaryNode{Op: OpAdd, Left: l, Right: r} }
func Sub(l, r Node) Node   { return &BinaryNode{Op: OpSub, Left: l, Right: r} }
func Mul(l, r Node) Node   { return &BinaryNode{Op: OpMul, Left: l, Right: r} }
func Div(l, r Node) Node   { return &BinaryNode{Op: OpDiv, Left: l, Right: r} }
func Pow(l, r Node) Node   { return &BinaryNode{Op: OpPow, Left: l, Right: r} }
func Sin(arg Node) Node    { return &UnaryNode{Op: OpSin, Child: arg} }
func Cos(arg Node) Node    { return &UnaryNode{Op: OpCos, Child: arg} }
func Exp(arg Node) Node    { return &UnaryNode{Op: OpExp, Child: arg} }
func Ln(arg Node) Node     { return &UnaryNode{Op: OpLn, Child: arg} }

// Binary returns a binary node for op.
func Binary(op BinaryOp, l, r Node) Node { return &BinaryNode{Op: op, Left: l, Right: r} }

// Unary returns a unary node for op.
func Unary(op UnaryOp, arg Node) Node { return &UnaryNode{Op: op, Child: arg} }

func unknownNode(n Node) string {
	return fmt.Sprintf("expr: unknown node type %T", n)
}
