package compiler_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesperlang/vesper/lang/compiler"
	"github.com/vesperlang/vesper/lang/interp"
	"github.com/vesperlang/vesper/lang/typecheck"
)

// stubAssembler stands in for the real `as` binary, which isn't guaranteed
// to exist in every environment these tests run in: it returns the
// assembly text itself as the "object bytes", so Compile's base64 step is
// exercised without a real toolchain.
type stubAssembler struct{}

func (stubAssembler) Assemble(ctx context.Context, asmText string) ([]byte, error) {
	return []byte(asmText), nil
}

func TestCompileProducesBase64OfAssembly(t *testing.T) {
	encoded, err := compiler.Compile(context.Background(), "1 + 2", stubAssembler{})
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Contains(t, string(decoded), "main:")
}

func TestCompileStopsAtTypeCheckerError(t *testing.T) {
	_, err := compiler.Compile(context.Background(), "var x: Int = true", stubAssembler{})
	require.Error(t, err)
	var terr *typecheck.TypeCheckerError
	require.ErrorAs(t, err, &terr)
}

func TestCompileStopsAtParserError(t *testing.T) {
	_, err := compiler.Compile(context.Background(), "1 +", stubAssembler{})
	require.Error(t, err)
}

func TestInterpretRunsWithoutTypeChecking(t *testing.T) {
	var out bytes.Buffer
	v, err := compiler.Interpret("var x: Int = 1; x = x + 1; x", &out, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, interp.IntVal(2), v)
}
