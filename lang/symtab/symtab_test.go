package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesperlang/vesper/lang/symtab"
)

func TestLookupFindsNearestBinding(t *testing.T) {
	tbl := symtab.New[int]()
	require.NoError(t, tbl.Insert("x", 1))

	tbl.PushScope()
	require.NoError(t, tbl.Insert("x", 2))
	v, err := tbl.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	tbl.PopScope()

	v, err = tbl.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestLookupUndefinedFails(t *testing.T) {
	tbl := symtab.New[int]()
	_, err := tbl.Lookup("missing")
	require.Error(t, err)
	var serr *symtab.SymbolTableError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, symtab.Undefined, serr.Kind)
}

func TestInsertRedefinitionInSameScopeFails(t *testing.T) {
	tbl := symtab.New[int]()
	require.NoError(t, tbl.Insert("x", 1))
	err := tbl.Insert("x", 2)
	require.Error(t, err)
	var serr *symtab.SymbolTableError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, symtab.Redefinition, serr.Kind)
}

func TestShadowingOuterFrameIsAllowed(t *testing.T) {
	tbl := symtab.New[int]()
	require.NoError(t, tbl.Insert("x", 1))
	tbl.PushScope()
	assert.NoError(t, tbl.Insert("x", 2))
}

func TestAssignUpdatesOuterFrameBinding(t *testing.T) {
	tbl := symtab.New[int]()
	require.NoError(t, tbl.Insert("x", 1))
	tbl.PushScope()
	require.NoError(t, tbl.Assign("x", 2))
	v, err := tbl.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestAssignUndefinedFails(t *testing.T) {
	tbl := symtab.New[int]()
	err := tbl.Assign("missing", 1)
	require.Error(t, err)
}

func TestPopScopeRemovesInnerBindings(t *testing.T) {
	tbl := symtab.New[int]()
	tbl.PushScope()
	require.NoError(t, tbl.Insert("y", 1))
	tbl.PopScope()
	_, err := tbl.Lookup("y")
	assert.Error(t, err)
}
