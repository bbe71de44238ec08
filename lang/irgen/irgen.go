// Package irgen lowers a type-annotated AST into the flat three-address IR
// defined by package ir. Lowering cannot fail on well-typed input: any
// failure here (an unbound identifier, an unknown shape) is a programming
// error, not a user error, and is reported as such.
package irgen

import (
	"fmt"

	"github.com/vesperlang/vesper/lang/ast"
	"github.com/vesperlang/vesper/lang/ir"
	"github.com/vesperlang/vesper/lang/symtab"
	"github.com/vesperlang/vesper/lang/token"
)

// BugError marks a lowering failure that should be impossible given a
// type-checked AST. Its presence means the type checker and the IR
// generator have fallen out of sync, not that the user's program is wrong.
type BugError struct {
	Message string
}

func (e *BugError) Error() string { return e.Message }

// Generate lowers n into an ordered IR program, appending the implicit
// trailing print call spec.md's root-value rule describes.
func Generate(n *ast.Node) (prog ir.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if be, ok := r.(*BugError); ok {
				err = be
				return
			}
			panic(r)
		}
	}()

	g := newGenerator()
	root := g.lower(n)

	if n.ResultType.Equal(ast.IntType) {
		dst := g.fresh()
		g.emit(ir.CallInstr(n.Location, g.symbol(n.Location, "print_int"), []ir.Var{root}, dst))
	} else if n.ResultType.Equal(ast.BoolType) {
		dst := g.fresh()
		g.emit(ir.CallInstr(n.Location, g.symbol(n.Location, "print_bool"), []ir.Var{root}, dst))
	}
	return g.instrs, nil
}

type generator struct {
	vars   *symtab.Table[ir.Var]
	labels *ir.LabelAllocator
	used   map[ir.Var]bool
	instrs ir.Program
}

func newGenerator() *generator {
	g := &generator{
		vars:   symtab.New[ir.Var](),
		labels: ir.NewLabelAllocator(),
		used:   make(map[ir.Var]bool),
	}
	g.used[ir.Unit] = true
	for _, name := range ir.Intrinsics {
		g.used[ir.Var(name)] = true
		if err := g.vars.Insert(name, ir.Var(name)); err != nil {
			panic(&BugError{Message: fmt.Sprintf("seeding intrinsic %q: %v", name, err)})
		}
	}
	return g
}

func (g *generator) emit(in ir.Instruction) { g.instrs = append(g.instrs, in) }

func (g *generator) fresh() ir.Var { return ir.FreshVar(g.used) }

// symbol resolves an operator or function name to its current IR-variable
// binding. For intrinsics this is always the identity mapping seeded at
// construction; the lookup exists so the generator treats operator names
// the same way it treats any other identifier (spec.md §4.4).
func (g *generator) symbol(loc token.Location, name string) ir.Var {
	v, err := g.vars.Lookup(name)
	if err != nil {
		panic(&BugError{Message: fmt.Sprintf("%s: unbound symbol %q: %v", loc, name, err)})
	}
	return v
}

func (g *generator) lower(n *ast.Node) ir.Var {
	switch n.Kind {
	case ast.EmptyLiteral:
		return ir.Unit
	case ast.IntLiteral:
		dst := g.fresh()
		g.emit(ir.LoadInt(n.Location, n.IntValue, dst))
		return dst
	case ast.BoolLiteral:
		dst := g.fresh()
		g.emit(ir.LoadBool(n.Location, n.BoolValue, dst))
		return dst
	case ast.Identifier:
		return g.symbol(n.Location, n.Name)
	case ast.UnaryOp:
		return g.lowerUnaryOp(n)
	case ast.BinaryOp:
		return g.lowerBinaryOp(n)
	case ast.VarDeclaration:
		return g.lowerVarDeclaration(n)
	case ast.Conditional:
		return g.lowerConditional(n)
	case ast.While:
		return g.lowerWhile(n)
	case ast.FunCall:
		return g.lowerFunCall(n)
	case ast.Block:
		return g.lowerBlock(n)
	default:
		panic(&BugError{Message: fmt.Sprintf("%s: unhandled node kind %s", n.Location, n.Kind)})
	}
}

func (g *generator) lowerUnaryOp(n *ast.Node) ir.Var {
	ve := g.lower(n.Operand)
	dst := g.fresh()
	g.emit(ir.CallInstr(n.Location, g.symbol(n.Location, "unary_"+n.Operator), []ir.Var{ve}, dst))
	return dst
}

func (g *generator) lowerBinaryOp(n *ast.Node) ir.Var {
	switch n.Operator {
	case "=":
		vr := g.lower(n.Right)
		dst := g.symbol(n.Location, n.Left.Name)
		g.emit(ir.CopyInstr(n.Location, vr, dst))
		return dst
	case "and":
		return g.lowerAnd(n)
	case "or":
		return g.lowerOr(n)
	default:
		vl := g.lower(n.Left)
		vr := g.lower(n.Right)
		dst := g.fresh()
		g.emit(ir.CallInstr(n.Location, g.symbol(n.Location, n.Operator), []ir.Var{vl, vr}, dst))
		return dst
	}
}

// lowerAnd lowers `l and r` without ever inlining a comparison-and-jump
// shortcut: the result is always materialized into a fresh temp so the
// assembly generator has a single uniform Call/Copy shape to lower.
func (g *generator) lowerAnd(n *ast.Node) ir.Var {
	right := g.labels.Fresh(ir.StemAndRight)
	skip := g.labels.Fresh(ir.StemAndSkip)
	end := g.labels.Fresh(ir.StemAndEnd)
	result := g.fresh()

	vl := g.lower(n.Left)
	g.emit(ir.CondJumpInstr(n.Location, vl, right, skip))
	g.emit(ir.LabelDef(n.Location, right))
	vr := g.lower(n.Right)
	g.emit(ir.CopyInstr(n.Location, vr, result))
	g.emit(ir.JumpInstr(n.Location, end))
	g.emit(ir.LabelDef(n.Location, skip))
	g.emit(ir.LoadBool(n.Location, false, result))
	g.emit(ir.JumpInstr(n.Location, end))
	g.emit(ir.LabelDef(n.Location, end))
	return result
}

// lowerOr mirrors lowerAnd with the short-circuit branch returning true.
func (g *generator) lowerOr(n *ast.Node) ir.Var {
	right := g.labels.Fresh(ir.StemOrRight)
	skip := g.labels.Fresh(ir.StemOrSkip)
	end := g.labels.Fresh(ir.StemOrEnd)
	result := g.fresh()

	vl := g.lower(n.Left)
	g.emit(ir.CondJumpInstr(n.Location, vl, skip, right))
	g.emit(ir.LabelDef(n.Location, right))
	vr := g.lower(n.Right)
	g.emit(ir.CopyInstr(n.Location, vr, result))
	g.emit(ir.JumpInstr(n.Location, end))
	g.emit(ir.LabelDef(n.Location, skip))
	g.emit(ir.LoadBool(n.Location, true, result))
	g.emit(ir.JumpInstr(n.Location, end))
	g.emit(ir.LabelDef(n.Location, end))
	return result
}

func (g *generator) lowerVarDeclaration(n *ast.Node) ir.Var {
	vi := g.lower(n.Initializer)
	slot := g.fresh()
	if err := g.vars.Insert(n.Name, slot); err != nil {
		panic(&BugError{Message: fmt.Sprintf("%s: %v", n.Location, err)})
	}
	g.emit(ir.CopyInstr(n.Location, vi, slot))
	return ir.Unit
}

func (g *generator) lowerConditional(n *ast.Node) ir.Var {
	then := g.labels.Fresh(ir.StemThen)
	ifEnd := g.labels.Fresh(ir.StemIfEnd)

	if n.Else == nil {
		vc := g.lower(n.Cond)
		g.emit(ir.CondJumpInstr(n.Location, vc, then, ifEnd))
		g.emit(ir.LabelDef(n.Location, then))
		g.lower(n.Then)
		g.emit(ir.LabelDef(n.Location, ifEnd))
		return ir.Unit
	}

	els := g.labels.Fresh(ir.StemElse)
	result := g.fresh()

	vc := g.lower(n.Cond)
	g.emit(ir.CondJumpInstr(n.Location, vc, then, els))
	g.emit(ir.LabelDef(n.Location, then))
	vt := g.lower(n.Then)
	g.emit(ir.CopyInstr(n.Location, vt, result))
	g.emit(ir.JumpInstr(n.Location, ifEnd))
	g.emit(ir.LabelDef(n.Location, els))
	ve := g.lower(n.Else)
	g.emit(ir.CopyInstr(n.Location, ve, result))
	g.emit(ir.LabelDef(n.Location, ifEnd))
	return result
}

func (g *generator) lowerWhile(n *ast.Node) ir.Var {
	start := g.labels.Fresh(ir.StemWhileStart)
	body := g.labels.Fresh(ir.StemWhileBody)
	end := g.labels.Fresh(ir.StemWhileEnd)

	g.emit(ir.LabelDef(n.Location, start))
	vc := g.lower(n.Cond)
	g.emit(ir.CondJumpInstr(n.Location, vc, body, end))
	g.emit(ir.LabelDef(n.Location, body))
	g.lower(n.Body)
	g.emit(ir.JumpInstr(n.Location, start))
	g.emit(ir.LabelDef(n.Location, end))
	return ir.Unit
}

func (g *generator) lowerFunCall(n *ast.Node) ir.Var {
	args := make([]ir.Var, len(n.Args))
	for i, a := range n.Args {
		args[i] = g.lower(a)
	}
	dst := g.fresh()
	g.emit(ir.CallInstr(n.Location, g.symbol(n.Location, n.Name), args, dst))
	return dst
}

func (g *generator) lowerBlock(n *ast.Node) ir.Var {
	g.vars.PushScope()
	defer g.vars.PopScope()

	last := ir.Unit
	for _, child := range n.Children {
		last = g.lower(child)
	}
	return last
}
