// Package interp implements the tree-walking interpreter: it evaluates a
// parsed (not necessarily type-checked) AST directly against a scoped
// runtime value table, following the teacher's run()-over-a-frame shape
// but walking the tree instead of dispatching bytecode.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vesperlang/vesper/lang/ast"
	"github.com/vesperlang/vesper/lang/symtab"
)

// RuntimeError reports a fatal interpretation failure: an undefined or
// redefined name, a division by zero, or missing or malformed read_int
// input. None of these are recoverable. Operand types are not checked: an
// ill-typed program runs on the zero Int/Bool payloads of its values instead
// of failing.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func errf(format string, args ...any) error {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

// Interp evaluates AST nodes against a scoped value table, seeded with the
// intrinsic functions. "and", "or", "==" and "!=" have no table entry: they
// are evaluated inline by evalBinaryOp.
type Interp struct {
	values *symtab.Table[Value]
	stdout io.Writer
	stdin  *bufio.Reader
}

// New returns an Interp that prints to stdout and reads read_int lines from
// stdin. A stdin that is already a *bufio.Reader is used as is, so the caller
// and read_int share one buffer.
func New(stdout io.Writer, stdin io.Reader) *Interp {
	it := &Interp{
		values: symtab.New[Value](),
		stdout: stdout,
		stdin:  bufio.NewReader(stdin),
	}
	it.seedIntrinsics()
	return it
}

func (it *Interp) seedIntrinsics() {
	insert := func(name string, fn func(args []Value) (Value, error)) {
		if err := it.values.Insert(name, funcVal(fn)); err != nil {
			panic(err)
		}
	}

	binInt := func(f func(a, b int64) (int64, error)) func([]Value) (Value, error) {
		return func(args []Value) (Value, error) {
			r, err := f(args[0].IntValue, args[1].IntValue)
			if err != nil {
				return Unit, err
			}
			return IntVal(r), nil
		}
	}
	cmpInt := func(f func(a, b int64) bool) func([]Value) (Value, error) {
		return func(args []Value) (Value, error) {
			return BoolVal(f(args[0].IntValue, args[1].IntValue)), nil
		}
	}

	insert("+", binInt(func(a, b int64) (int64, error) { return a + b, nil }))
	insert("-", binInt(func(a, b int64) (int64, error) { return a - b, nil }))
	insert("*", binInt(func(a, b int64) (int64, error) { return a * b, nil }))
	insert("/", binInt(func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, errf("division by zero")
		}
		return a / b, nil
	}))
	insert("%", binInt(func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, errf("division by zero")
		}
		return a % b, nil
	}))

	insert("<", cmpInt(func(a, b int64) bool { return a < b }))
	insert("<=", cmpInt(func(a, b int64) bool { return a <= b }))
	insert(">", cmpInt(func(a, b int64) bool { return a > b }))
	insert(">=", cmpInt(func(a, b int64) bool { return a >= b }))

	insert("unary_not", func(args []Value) (Value, error) { return BoolVal(!args[0].BoolValue), nil })
	insert("unary_-", func(args []Value) (Value, error) { return IntVal(-args[0].IntValue), nil })

	insert("print_int", func(args []Value) (Value, error) {
		fmt.Fprintln(it.stdout, args[0].IntValue)
		return Unit, nil
	})
	insert("print_bool", func(args []Value) (Value, error) {
		fmt.Fprintln(it.stdout, args[0].BoolValue)
		return Unit, nil
	})
	insert("read_int", func(args []Value) (Value, error) {
		line, err := it.stdin.ReadString('\n')
		if line == "" && err != nil {
			return Unit, errf("read_int: no more input")
		}
		v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return Unit, errf("read_int: %v", err)
		}
		return IntVal(v), nil
	})
}

// Run evaluates n and returns its value. It panics internally via the same
// fail/recover idiom the parser uses; Run converts any RuntimeError back
// into a returned error instead of propagating the panic.
func (it *Interp) Run(n *ast.Node) (v Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(*RuntimeError); ok {
				err = re
				return
			}
			panic(r)
		}
	}()
	return it.eval(n), nil
}

func (it *Interp) eval(n *ast.Node) Value {
	switch n.Kind {
	case ast.EmptyLiteral:
		return Unit
	case ast.IntLiteral:
		return IntVal(n.IntValue)
	case ast.BoolLiteral:
		return BoolVal(n.BoolValue)
	case ast.Identifier:
		v, err := it.values.Lookup(n.Name)
		if err != nil {
			panic(&RuntimeError{Message: err.Error()})
		}
		return v
	case ast.UnaryOp:
		return it.evalUnaryOp(n)
	case ast.BinaryOp:
		return it.evalBinaryOp(n)
	case ast.VarDeclaration:
		return it.evalVarDeclaration(n)
	case ast.Conditional:
		return it.evalConditional(n)
	case ast.While:
		return it.evalWhile(n)
	case ast.FunCall:
		return it.evalFunCall(n)
	case ast.Block:
		return it.evalBlock(n)
	default:
		panic(&RuntimeError{Message: fmt.Sprintf("%s: unhandled node kind %s", n.Location, n.Kind)})
	}
}

func (it *Interp) call(name string, args []Value) Value {
	fnVal, err := it.values.Lookup(name)
	if err != nil {
		panic(&RuntimeError{Message: err.Error()})
	}
	result, err := fnVal.Builtin(args)
	if err != nil {
		panic(err)
	}
	return result
}

func (it *Interp) evalUnaryOp(n *ast.Node) Value {
	operand := it.eval(n.Operand)
	return it.call("unary_"+n.Operator, []Value{operand})
}

func (it *Interp) evalBinaryOp(n *ast.Node) Value {
	switch n.Operator {
	case "=":
		v := it.eval(n.Right)
		it.assign(n.Left.Name, v)
		return v
	case "and":
		left := it.eval(n.Left)
		if !left.BoolValue {
			return BoolVal(false)
		}
		return it.eval(n.Right)
	case "or":
		left := it.eval(n.Left)
		if left.BoolValue {
			return BoolVal(true)
		}
		return it.eval(n.Right)
	case "==":
		return BoolVal(valuesEqual(it.eval(n.Left), it.eval(n.Right)))
	case "!=":
		return BoolVal(!valuesEqual(it.eval(n.Left), it.eval(n.Right)))
	default:
		left := it.eval(n.Left)
		right := it.eval(n.Right)
		return it.call(n.Operator, []Value{left, right})
	}
}

func valuesEqual(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ast.Int:
		return a.IntValue == b.IntValue
	case ast.Bool:
		return a.BoolValue == b.BoolValue
	default:
		return true // both Unit
	}
}

// assign mutates the nearest binding of name, walking outward through the
// scope stack the same way symtab.Lookup does, since "=" updates an
// existing variable rather than redeclaring one.
func (it *Interp) assign(name string, v Value) {
	if err := it.values.Assign(name, v); err != nil {
		panic(&RuntimeError{Message: err.Error()})
	}
}

func (it *Interp) evalVarDeclaration(n *ast.Node) Value {
	v := it.eval(n.Initializer)
	if err := it.values.Insert(n.Name, v); err != nil {
		panic(&RuntimeError{Message: err.Error()})
	}
	return Unit
}

func (it *Interp) evalConditional(n *ast.Node) Value {
	cond := it.eval(n.Cond)
	if cond.BoolValue {
		return it.eval(n.Then)
	}
	if n.Else != nil {
		return it.eval(n.Else)
	}
	return Unit
}

func (it *Interp) evalWhile(n *ast.Node) Value {
	for it.eval(n.Cond).BoolValue {
		it.eval(n.Body)
	}
	return Unit
}

func (it *Interp) evalFunCall(n *ast.Node) Value {
	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		args[i] = it.eval(a)
	}
	return it.call(n.Name, args)
}

func (it *Interp) evalBlock(n *ast.Node) Value {
	it.values.PushScope()
	defer it.values.PopScope()

	last := Unit
	for _, child := range n.Children {
		last = it.eval(child)
	}
	return last
}
