package assemble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vesperlang/vesper/internal/assemble"
)

func TestErrorIncludesStderr(t *testing.T) {
	err := &assemble.Error{Stderr: "bad mnemonic", Err: assert.AnError}
	assert.Contains(t, err.Error(), "bad mnemonic")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestErrorWithoutStderr(t *testing.T) {
	err := &assemble.Error{Err: assert.AnError}
	assert.NotContains(t, err.Error(), ":  ")
}
