package typecheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesperlang/vesper/lang/ast"
	"github.com/vesperlang/vesper/lang/lexer"
	"github.com/vesperlang/vesper/lang/parser"
	"github.com/vesperlang/vesper/lang/symtab"
	"github.com/vesperlang/vesper/lang/typecheck"
)

func mustCheck(t *testing.T, src string) (*ast.Node, ast.Type) {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	require.NoError(t, err)
	n, err := parser.Parse(toks)
	require.NoError(t, err)
	typ, err := typecheck.Check(n)
	require.NoError(t, err)
	return n, typ
}

func TestCheckArithmeticIsInt(t *testing.T) {
	_, typ := mustCheck(t, "1 + 2 * 3")
	assert.True(t, typ.Equal(ast.IntType))
}

func TestCheckConditionalBranchesMustMatch(t *testing.T) {
	_, typ := mustCheck(t, "if true then 1 else 2")
	assert.True(t, typ.Equal(ast.IntType))
}

func TestCheckConditionalWithoutElseIsUnit(t *testing.T) {
	_, typ := mustCheck(t, "if true then 1")
	assert.True(t, typ.Equal(ast.UnitType))
}

func TestCheckVarDeclarationMismatchFails(t *testing.T) {
	toks, err := lexer.Tokenize("var x: Int = true")
	require.NoError(t, err)
	n, err := parser.Parse(toks)
	require.NoError(t, err)
	_, err = typecheck.Check(n)
	require.Error(t, err)
	var terr *typecheck.TypeCheckerError
	require.ErrorAs(t, err, &terr)
}

func TestCheckAssignmentRequiresIdentifierOnLeft(t *testing.T) {
	toks, err := lexer.Tokenize("var x = 1; 1 = x")
	require.NoError(t, err)
	n, err := parser.Parse(toks)
	require.NoError(t, err)
	_, err = typecheck.Check(n)
	require.Error(t, err)
}

func TestCheckAssignmentUpdatesTrackedType(t *testing.T) {
	_, typ := mustCheck(t, "var x: Int = 1; x = x + 1; x")
	assert.True(t, typ.Equal(ast.IntType))
}

func TestCheckUndefinedIdentifierIsSymbolTableError(t *testing.T) {
	toks, err := lexer.Tokenize("y")
	require.NoError(t, err)
	n, err := parser.Parse(toks)
	require.NoError(t, err)
	_, err = typecheck.Check(n)
	require.Error(t, err)
	var serr *symtab.SymbolTableError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, symtab.Undefined, serr.Kind)
}

func TestCheckBlockScopingDropsLocalsOnExit(t *testing.T) {
	toks, err := lexer.Tokenize("{ var x = 1 }; x")
	require.NoError(t, err)
	n, err := parser.Parse(toks)
	require.NoError(t, err)
	_, err = typecheck.Check(n)
	require.Error(t, err)
}

func TestCheckFunCallArityMismatchFails(t *testing.T) {
	toks, err := lexer.Tokenize("print_int(1, 2)")
	require.NoError(t, err)
	n, err := parser.Parse(toks)
	require.NoError(t, err)
	_, err = typecheck.Check(n)
	require.Error(t, err)
}

func TestCheckEqualityDoesNotRequireIntrinsicEntry(t *testing.T) {
	_, typ := mustCheck(t, "1 == 1")
	assert.True(t, typ.Equal(ast.BoolType))
}

func TestCheckEmptyBlockIsUnit(t *testing.T) {
	_, typ := mustCheck(t, "{}")
	assert.True(t, typ.Equal(ast.UnitType))
}

func TestCheckIsIdempotent(t *testing.T) {
	toks, err := lexer.Tokenize("var x: Int = 1; x = x + 1; x")
	require.NoError(t, err)
	n, err := parser.Parse(toks)
	require.NoError(t, err)

	first, err := typecheck.Check(n)
	require.NoError(t, err)
	second, err := typecheck.Check(n)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}
