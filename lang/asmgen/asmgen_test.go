package asmgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesperlang/vesper/lang/asmgen"
	"github.com/vesperlang/vesper/lang/irgen"
	"github.com/vesperlang/vesper/lang/lexer"
	"github.com/vesperlang/vesper/lang/parser"
	"github.com/vesperlang/vesper/lang/typecheck"
)

func assemble(t *testing.T, src string) string {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	require.NoError(t, err)
	n, err := parser.Parse(toks)
	require.NoError(t, err)
	_, err = typecheck.Check(n)
	require.NoError(t, err)
	prog, err := irgen.Generate(n)
	require.NoError(t, err)
	asm, err := asmgen.Generate(prog)
	require.NoError(t, err)
	return asm
}

func TestGenerateEmitsMainFunctionSymbol(t *testing.T) {
	asm := assemble(t, "1 + 2")
	assert.Contains(t, asm, ".globl main")
	assert.Contains(t, asm, ".type main, @function")
	assert.Contains(t, asm, "main:")
	assert.Contains(t, asm, "ret")
}

func TestGenerateCallsPrintIntExternally(t *testing.T) {
	asm := assemble(t, "1 + 2")
	assert.Contains(t, asm, "callq print_int")
}

func TestGenerateInlinesArithmetic(t *testing.T) {
	asm := assemble(t, "1 + 2 * 3")
	assert.Contains(t, asm, "imulq")
	assert.Contains(t, asm, "addq")
}

func TestGenerateInlinesComparison(t *testing.T) {
	asm := assemble(t, "1 < 2")
	assert.Contains(t, asm, "setl %al")
}

func TestGenerateHandlesLargeImmediateThroughRax(t *testing.T) {
	asm := assemble(t, "3000000000")
	assert.Contains(t, asm, "movabsq $3000000000, %rax")
}

func TestGenerateSmallImmediateIsDirectMove(t *testing.T) {
	asm := assemble(t, "5")
	lines := strings.Split(asm, "\n")
	found := false
	for _, l := range lines {
		if strings.Contains(l, "movq $5,") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := assemble(t, "var x: Int = 1; x = x + 1; x")
	b := assemble(t, "var x: Int = 1; x = x + 1; x")
	assert.Equal(t, a, b)
}

func TestGenerateReservesFrameForLocals(t *testing.T) {
	asm := assemble(t, "var x: Int = 1; var y: Int = 2; x + y")
	assert.Contains(t, asm, "subq $")
}

func TestGenerateWhileLoopUsesLocalLabels(t *testing.T) {
	asm := assemble(t, "var x: Int = 0; while x < 10 do x = x + 1")
	assert.Contains(t, asm, ".Lwhile_start1:")
	assert.Contains(t, asm, ".Lwhile_body1:")
	assert.Contains(t, asm, ".Lwhile_end1:")
}
