// Package ir defines the three-address intermediate representation that sits
// between the type-annotated AST and the x86-64 assembly generator: a flat,
// ordered instruction list operating on named variables.
package ir

import "strconv"

// Var is a symbolic IR variable name. Unit and the intrinsic operator/
// function names are globally reserved; everything else is a
// compiler-generated temporary (x1, x2, ...). A VarDeclaration binds its
// surface name to one such temporary.
type Var string

// Unit is the single reserved name denoting the unit value.
const Unit Var = "unit"

// Intrinsics lists every globally reserved operator/function name. These
// never collide with a generated temporary because FreshVar skips any name
// already in its taken set, and the IR generator seeds that set with
// exactly this list (plus Unit).
var Intrinsics = []string{
	"+", "*", "-", "/", "%",
	"<", "<=", ">", ">=", "==", "!=",
	"unary_not", "unary_-",
	"and", "or",
	"print_int", "print_bool", "read_int",
}

// FreshVar returns the lowest-numbered "xN" name not yet present in taken.
func FreshVar(taken map[Var]bool) Var {
	for i := 1; ; i++ {
		candidate := Var("x" + strconv.Itoa(i))
		if !taken[candidate] {
			taken[candidate] = true
			return candidate
		}
	}
}
