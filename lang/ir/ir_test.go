package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesperlang/vesper/lang/ir"
	"github.com/vesperlang/vesper/lang/token"
)

func TestFreshVarSkipsTaken(t *testing.T) {
	taken := map[ir.Var]bool{"x1": true, "x2": true}
	assert.Equal(t, ir.Var("x3"), ir.FreshVar(taken))
	assert.Equal(t, ir.Var("x4"), ir.FreshVar(taken))
}

func TestLabelAllocatorIsUniquePerStem(t *testing.T) {
	alloc := ir.NewLabelAllocator()
	a := alloc.Fresh(ir.StemThen)
	b := alloc.Fresh(ir.StemThen)
	c := alloc.Fresh(ir.StemElse)
	assert.NotEqual(t, a, b)
	assert.Equal(t, ir.Label("then1"), a)
	assert.Equal(t, ir.Label("then2"), b)
	assert.Equal(t, ir.Label("else1"), c)
}

func TestInstructionStringMatchesSpecNotation(t *testing.T) {
	loc := token.Location{Line: 1, Column: 1}
	in := ir.CallInstr(loc, "*", []ir.Var{"x1", "x2"}, "x3")
	assert.Equal(t, "Call(*, [x1, x2], x3)", in.String())
}

func TestValidateRejectsDuplicateLabels(t *testing.T) {
	loc := token.Location{}
	p := ir.Program{
		ir.LabelDef(loc, "l1"),
		ir.LabelDef(loc, "l1"),
	}
	err := ir.Validate(p)
	require.Error(t, err)
}

func TestValidateRejectsDanglingJump(t *testing.T) {
	loc := token.Location{}
	p := ir.Program{ir.JumpInstr(loc, "nowhere")}
	err := ir.Validate(p)
	require.Error(t, err)
}

func TestValidateAcceptsWellFormedProgram(t *testing.T) {
	loc := token.Location{}
	p := ir.Program{
		ir.CondJumpInstr(loc, "x1", "then1", "if_end1"),
		ir.LabelDef(loc, "then1"),
		ir.LabelDef(loc, "if_end1"),
	}
	require.NoError(t, ir.Validate(p))
}
