package maincmd_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"

	"github.com/vesperlang/vesper/internal/maincmd"
)

func stdio(in string) (mainer.Stdio, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return mainer.Stdio{
		Stdin:  strings.NewReader(in),
		Stdout: &out,
		Stderr: &errOut,
	}, &out, &errOut
}

func TestHelpFlagPrintsUsageAndExitsSuccess(t *testing.T) {
	c := &maincmd.Cmd{}
	s, out, _ := stdio("")
	code := c.Main([]string{"vesper", "-h"}, s)
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out.String(), "vesper")
}

func TestVersionFlagPrintsVersion(t *testing.T) {
	c := &maincmd.Cmd{BuildVersion: "1.2.3"}
	s, out, _ := stdio("")
	code := c.Main([]string{"vesper", "-v"}, s)
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out.String(), "1.2.3")
}

func TestInteractiveModeEvaluatesLines(t *testing.T) {
	c := &maincmd.Cmd{}
	s, out, _ := stdio("1 + 2\n")
	code := c.Main([]string{"vesper", "-i"}, s)
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out.String(), "3")
}

func TestInteractiveModeContinuesAfterError(t *testing.T) {
	c := &maincmd.Cmd{}
	s, out, errOut := stdio("1 +\n2 + 3\n")
	code := c.Main([]string{"vesper", "-i"}, s)
	assert.Equal(t, mainer.Success, code)
	assert.NotEmpty(t, errOut.String())
	assert.Contains(t, out.String(), "5")
}
