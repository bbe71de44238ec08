// Package typecheck implements the type checker: it walks the AST,
// annotates each node's ResultType and enforces monomorphic typing.
package typecheck

import (
	"fmt"

	"github.com/vesperlang/vesper/lang/ast"
	"github.com/vesperlang/vesper/lang/symtab"
)

type typeTable = symtab.Table[ast.Type]

// TypeCheckerError reports a type mismatch or arity error. Undefined-symbol
// errors surface instead as *symtab.SymbolTableError, since the type
// checker consults the same scoped symbol table the IR generator and
// interpreter do.
type TypeCheckerError struct {
	Message string
}

func (e *TypeCheckerError) Error() string { return e.Message }

func errf(format string, args ...any) error {
	return &TypeCheckerError{Message: fmt.Sprintf(format, args...)}
}

// Check type-checks n in place, annotating every node's ResultType, and
// returns the root's type. Check is idempotent: running it again on an
// already-annotated tree recomputes the same types.
func Check(n *ast.Node) (ast.Type, error) {
	c := &checker{types: symtab.New[ast.Type]()}
	seedIntrinsics(c.types)
	return c.check(n)
}

type checker struct {
	types *typeTable
}

func (c *checker) check(n *ast.Node) (ast.Type, error) {
	t, err := c.checkShape(n)
	if err != nil {
		return ast.UnitType, err
	}
	n.ResultType = t
	return t, nil
}

func (c *checker) checkShape(n *ast.Node) (ast.Type, error) {
	switch n.Kind {
	case ast.EmptyLiteral:
		return ast.UnitType, nil
	case ast.IntLiteral:
		return ast.IntType, nil
	case ast.BoolLiteral:
		return ast.BoolType, nil
	case ast.Identifier:
		return c.types.Lookup(n.Name)
	case ast.UnaryOp:
		return c.checkUnaryOp(n)
	case ast.BinaryOp:
		return c.checkBinaryOp(n)
	case ast.VarDeclaration:
		return c.checkVarDeclaration(n)
	case ast.Conditional:
		return c.checkConditional(n)
	case ast.While:
		return c.checkWhile(n)
	case ast.FunCall:
		return c.checkFunCall(n)
	case ast.Block:
		return c.checkBlock(n)
	default:
		return ast.UnitType, errf("unhandled node kind %s", n.Kind)
	}
}

func (c *checker) checkUnaryOp(n *ast.Node) (ast.Type, error) {
	sig, err := c.types.Lookup("unary_" + n.Operator)
	if err != nil {
		return ast.UnitType, err
	}
	operandType, err := c.check(n.Operand)
	if err != nil {
		return ast.UnitType, err
	}
	if len(sig.Params) != 1 || !operandType.Equal(sig.Params[0]) {
		return ast.UnitType, errf("%s: operator 'unary_%s' expects %v, got %v", n.Location, n.Operator, sig.Params, operandType)
	}
	return *sig.Return, nil
}

func (c *checker) checkBinaryOp(n *ast.Node) (ast.Type, error) {
	switch n.Operator {
	case "=":
		if n.Left.Kind != ast.Identifier {
			return ast.UnitType, errf("%s: left-hand side of '=' must be an identifier", n.Location)
		}
		leftType, err := c.check(n.Left)
		if err != nil {
			return ast.UnitType, err
		}
		rightType, err := c.check(n.Right)
		if err != nil {
			return ast.UnitType, err
		}
		if !leftType.Equal(rightType) {
			return ast.UnitType, errf("%s: cannot assign %v to variable of type %v", n.Location, rightType, leftType)
		}
		return leftType, nil

	case "==", "!=":
		// Special-cased: == and != never consult the symbol table (spec §4.3, §9).
		leftType, err := c.check(n.Left)
		if err != nil {
			return ast.UnitType, err
		}
		rightType, err := c.check(n.Right)
		if err != nil {
			return ast.UnitType, err
		}
		if !leftType.Equal(rightType) {
			return ast.UnitType, errf("%s: cannot compare %v with %v", n.Location, leftType, rightType)
		}
		return ast.BoolType, nil

	default:
		sig, err := c.types.Lookup(n.Operator)
		if err != nil {
			return ast.UnitType, err
		}
		leftType, err := c.check(n.Left)
		if err != nil {
			return ast.UnitType, err
		}
		rightType, err := c.check(n.Right)
		if err != nil {
			return ast.UnitType, err
		}
		if len(sig.Params) != 2 || !leftType.Equal(sig.Params[0]) || !rightType.Equal(sig.Params[1]) {
			return ast.UnitType, errf("%s: operator '%s' expects %v, got (%v, %v)", n.Location, n.Operator, sig.Params, leftType, rightType)
		}
		return *sig.Return, nil
	}
}

func (c *checker) checkVarDeclaration(n *ast.Node) (ast.Type, error) {
	initType, err := c.check(n.Initializer)
	if err != nil {
		return ast.UnitType, err
	}
	if n.DeclaredType != nil && !n.DeclaredType.Equal(initType) {
		return ast.UnitType, errf("%s: variable '%s' declared as %v but initialized with %v", n.Location, n.Name, *n.DeclaredType, initType)
	}
	if err := c.types.Insert(n.Name, initType); err != nil {
		return ast.UnitType, err
	}
	return ast.UnitType, nil
}

func (c *checker) checkConditional(n *ast.Node) (ast.Type, error) {
	condType, err := c.check(n.Cond)
	if err != nil {
		return ast.UnitType, err
	}
	if !condType.Equal(ast.BoolType) {
		return ast.UnitType, errf("%s: 'if' condition must be Bool, got %v", n.Location, condType)
	}
	thenType, err := c.check(n.Then)
	if err != nil {
		return ast.UnitType, err
	}
	if n.Else == nil {
		return ast.UnitType, nil
	}
	elseType, err := c.check(n.Else)
	if err != nil {
		return ast.UnitType, err
	}
	if !thenType.Equal(elseType) {
		return ast.UnitType, errf("%s: 'if' branches have different types: %v vs %v", n.Location, thenType, elseType)
	}
	return thenType, nil
}

func (c *checker) checkWhile(n *ast.Node) (ast.Type, error) {
	condType, err := c.check(n.Cond)
	if err != nil {
		return ast.UnitType, err
	}
	if !condType.Equal(ast.BoolType) {
		return ast.UnitType, errf("%s: 'while' condition must be Bool, got %v", n.Location, condType)
	}
	if _, err := c.check(n.Body); err != nil {
		return ast.UnitType, err
	}
	return ast.UnitType, nil
}

func (c *checker) checkFunCall(n *ast.Node) (ast.Type, error) {
	sig, err := c.types.Lookup(n.Name)
	if err != nil {
		return ast.UnitType, err
	}
	if sig.Kind != ast.Func {
		return ast.UnitType, errf("%s: '%s' is not callable", n.Location, n.Name)
	}
	if len(n.Args) != len(sig.Params) {
		return ast.UnitType, errf("%s: '%s' expects %d argument(s), got %d", n.Location, n.Name, len(sig.Params), len(n.Args))
	}
	for i, arg := range n.Args {
		argType, err := c.check(arg)
		if err != nil {
			return ast.UnitType, err
		}
		if !argType.Equal(sig.Params[i]) {
			return ast.UnitType, errf("%s: argument %d of '%s' expects %v, got %v", n.Location, i+1, n.Name, sig.Params[i], argType)
		}
	}
	return *sig.Return, nil
}

func (c *checker) checkBlock(n *ast.Node) (ast.Type, error) {
	c.types.PushScope()
	defer c.types.PopScope()

	last := ast.UnitType
	for _, child := range n.Children {
		t, err := c.check(child)
		if err != nil {
			return ast.UnitType, err
		}
		last = t
	}
	return last, nil
}
