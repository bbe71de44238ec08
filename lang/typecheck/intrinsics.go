package typecheck

import "github.com/vesperlang/vesper/lang/ast"

// seedIntrinsics inserts the signatures pre-populated in the bottom frame of the
// type checker's symbol table. "==" and "!=" are deliberately absent: they
// are handled by the special-case rule in BinaryOp before the symbol table
// is ever consulted (spec.md §4.3, §9).
func seedIntrinsics(types *typeTable) {
	binInt := ast.FuncType([]ast.Type{ast.IntType, ast.IntType}, ast.IntType)
	cmpInt := ast.FuncType([]ast.Type{ast.IntType, ast.IntType}, ast.BoolType)
	binBool := ast.FuncType([]ast.Type{ast.BoolType, ast.BoolType}, ast.BoolType)

	must(types.Insert("+", binInt))
	must(types.Insert("*", binInt))
	must(types.Insert("-", binInt))
	must(types.Insert("/", binInt))
	must(types.Insert("%", binInt))

	must(types.Insert("<", cmpInt))
	must(types.Insert("<=", cmpInt))
	must(types.Insert(">", cmpInt))
	must(types.Insert(">=", cmpInt))

	must(types.Insert("unary_not", ast.FuncType([]ast.Type{ast.BoolType}, ast.BoolType)))
	must(types.Insert("unary_-", ast.FuncType([]ast.Type{ast.IntType}, ast.IntType)))

	must(types.Insert("or", binBool))
	must(types.Insert("and", binBool))

	must(types.Insert("print_int", ast.FuncType([]ast.Type{ast.IntType}, ast.UnitType)))
	must(types.Insert("print_bool", ast.FuncType([]ast.Type{ast.BoolType}, ast.UnitType)))
	must(types.Insert("read_int", ast.FuncType(nil, ast.IntType)))
}

// must panics if seeding the bottom frame fails, which would mean a
// programming error (a duplicate intrinsic name), not a user error.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
