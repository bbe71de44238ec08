package ast

import "strings"

// TypeKind enumerates the closed sum of types in the language: Int, Bool,
// Unit or Func. There is no subtyping and no inference — every variable has
// exactly one type throughout its life.
type TypeKind int8

const (
	Int TypeKind = iota
	Bool
	Unit
	Func
)

func (k TypeKind) String() string {
	switch k {
	case Int:
		return "Int"
	case Bool:
		return "Bool"
	case Unit:
		return "Unit"
	case Func:
		return "Func"
	default:
		return "unknown"
	}
}

// Type is the closed sum Int | Bool | Unit | Func(params, return). Equality
// is structural, implemented by Equal rather than by the comparison
// operator, since Func carries a slice.
type Type struct {
	Kind   TypeKind
	Params []Type // only meaningful when Kind == Func
	Return *Type  // only meaningful when Kind == Func
}

// IntType, BoolType and UnitType are the three non-function types; they have
// no payload so a single shared value for each is sufficient.
var (
	IntType  = Type{Kind: Int}
	BoolType = Type{Kind: Bool}
	UnitType = Type{Kind: Unit}
)

// FuncType builds a Func type with the given parameter types and return type.
func FuncType(params []Type, ret Type) Type {
	r := ret
	return Type{Kind: Func, Params: params, Return: &r}
}

// Equal reports whether t and other denote the same type.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind != Func {
		return true
	}
	if len(t.Params) != len(other.Params) {
		return false
	}
	for i, p := range t.Params {
		if !p.Equal(other.Params[i]) {
			return false
		}
	}
	if (t.Return == nil) != (other.Return == nil) {
		return false
	}
	return t.Return == nil || t.Return.Equal(*other.Return)
}

func (t Type) String() string {
	if t.Kind != Func {
		return t.Kind.String()
	}
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}
	ret := "Unit"
	if t.Return != nil {
		ret = t.Return.String()
	}
	return "(" + strings.Join(params, ", ") + ") -> " + ret
}
