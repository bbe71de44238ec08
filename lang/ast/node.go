// Package ast defines the AST node shape, the closed sum of node shapes and
// the static Type lattice used by the type checker, IR generator and
// interpreter.
//
// A node is a single struct carrying (location, result_type, shape) rather
// than one Go type per production: the type checker's annotation pass then
// becomes a single mutable field assignment (Node.ResultType = ...) instead
// of rebuilding the tree, per the design note that favors this shape over a
// one-interface-per-variant hierarchy.
package ast

import "github.com/vesperlang/vesper/lang/token"

// Kind identifies which shape a Node holds.
type Kind int8

const (
	EmptyLiteral Kind = iota // produced only by the parser for trailing-semicolon blocks; value is unit
	IntLiteral
	BoolLiteral
	Identifier
	UnaryOp
	BinaryOp
	VarDeclaration
	Conditional
	While
	FunCall
	Block
)

func (k Kind) String() string {
	return kindNames[k]
}

var kindNames = [...]string{
	EmptyLiteral:   "EmptyLiteral",
	IntLiteral:     "IntLiteral",
	BoolLiteral:    "BoolLiteral",
	Identifier:     "Identifier",
	UnaryOp:        "UnaryOp",
	BinaryOp:       "BinaryOp",
	VarDeclaration: "VarDeclaration",
	Conditional:    "Conditional",
	While:          "While",
	FunCall:        "FunCall",
	Block:          "Block",
}

// Node is every AST node. ResultType starts as Unit and is overwritten by
// the type checker (invariant 1 in the data model). Which fields below are
// meaningful depends on Kind; see the constructors for the exact mapping.
type Node struct {
	Location   token.Location
	ResultType Type
	Kind       Kind

	// IntLiteral
	IntValue int64
	// BoolLiteral
	BoolValue bool

	// Identifier: Name. VarDeclaration: Name. FunCall: Name is the callee.
	Name string

	// UnaryOp, BinaryOp: Operator is the symbol ("-", "not", "+", "=", "and", ...).
	Operator string

	// UnaryOp: Operand. BinaryOp: Left/Right.
	Operand *Node
	Left    *Node
	Right   *Node

	// VarDeclaration: Initializer, optional DeclaredType.
	Initializer  *Node
	DeclaredType *Type

	// Conditional: Cond, Then, optional Else. While: Cond, Body.
	Cond *Node
	Then *Node
	Else *Node
	Body *Node

	// FunCall: Args.
	Args []*Node

	// Block: Children.
	Children []*Node
}

// Ownership: every Node exclusively owns the Nodes reachable through its
// pointer/slice fields. The tree is a pure tree: no sharing, no cycles.

func NewEmptyLiteral(loc token.Location) *Node {
	return &Node{Location: loc, ResultType: UnitType, Kind: EmptyLiteral}
}

func NewIntLiteral(loc token.Location, value int64) *Node {
	return &Node{Location: loc, ResultType: UnitType, Kind: IntLiteral, IntValue: value}
}

func NewBoolLiteral(loc token.Location, value bool) *Node {
	return &Node{Location: loc, ResultType: UnitType, Kind: BoolLiteral, BoolValue: value}
}

func NewIdentifier(loc token.Location, name string) *Node {
	return &Node{Location: loc, ResultType: UnitType, Kind: Identifier, Name: name}
}

func NewUnaryOp(loc token.Location, op string, operand *Node) *Node {
	return &Node{Location: loc, ResultType: UnitType, Kind: UnaryOp, Operator: op, Operand: operand}
}

func NewBinaryOp(loc token.Location, op string, left, right *Node) *Node {
	return &Node{Location: loc, ResultType: UnitType, Kind: BinaryOp, Operator: op, Left: left, Right: right}
}

func NewVarDeclaration(loc token.Location, name string, init *Node, declared *Type) *Node {
	return &Node{Location: loc, ResultType: UnitType, Kind: VarDeclaration, Name: name, Initializer: init, DeclaredType: declared}
}

func NewConditional(loc token.Location, cond, then, els *Node) *Node {
	return &Node{Location: loc, ResultType: UnitType, Kind: Conditional, Cond: cond, Then: then, Else: els}
}

func NewWhile(loc token.Location, cond, body *Node) *Node {
	return &Node{Location: loc, ResultType: UnitType, Kind: While, Cond: cond, Body: body}
}

func NewFunCall(loc token.Location, name string, args []*Node) *Node {
	return &Node{Location: loc, ResultType: UnitType, Kind: FunCall, Name: name, Args: args}
}

func NewBlock(loc token.Location, children []*Node) *Node {
	return &Node{Location: loc, ResultType: UnitType, Kind: Block, Children: children}
}
