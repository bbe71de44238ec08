package interp

import (
	"strconv"

	"github.com/vesperlang/vesper/lang/ast"
)

// Value is a runtime value: Int, Bool, Unit, or an intrinsic function
// pointer. Like ast.Type and ast.Node, it is a single struct rather than
// one Go type per variant, keeping Kind the only thing callers switch on.
type Value struct {
	Kind      ast.TypeKind
	IntValue  int64
	BoolValue bool
	Builtin   func(args []Value) (Value, error)
}

// Unit is the single value of type Unit.
var Unit = Value{Kind: ast.Unit}

func IntVal(v int64) Value  { return Value{Kind: ast.Int, IntValue: v} }
func BoolVal(v bool) Value  { return Value{Kind: ast.Bool, BoolValue: v} }
func funcVal(fn func(args []Value) (Value, error)) Value {
	return Value{Kind: ast.Func, Builtin: fn}
}

func (v Value) String() string {
	switch v.Kind {
	case ast.Int:
		return strconv.FormatInt(v.IntValue, 10)
	case ast.Bool:
		return strconv.FormatBool(v.BoolValue)
	case ast.Unit:
		return "unit"
	default:
		return "<builtin>"
	}
}
