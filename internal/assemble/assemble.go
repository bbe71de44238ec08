// Package assemble shells out to a GNU-compatible assembler to turn AT&T
// syntax text produced by lang/asmgen into a linkable object file.
package assemble

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Error wraps a failed `as` invocation together with its stderr output, so
// callers can report the assembler's own diagnostics.
type Error struct {
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("assemble: %v: %s", e.Err, e.Stderr)
	}
	return fmt.Sprintf("assemble: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Assembler invokes an external assembler binary. The zero value uses "as"
// found on PATH.
type Assembler struct {
	// Path is the assembler executable. Defaults to "as".
	Path string
}

// Assemble feeds asmText to the assembler via stdin ("-o /dev/stdout -")
// and returns the resulting object bytes.
func (a Assembler) Assemble(ctx context.Context, asmText string) ([]byte, error) {
	path := a.Path
	if path == "" {
		path = "as"
	}

	cmd := exec.CommandContext(ctx, path, "-o", "/dev/stdout", "-")
	cmd.Stdin = bytes.NewBufferString(asmText)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &Error{Stderr: stderr.String(), Err: err}
	}
	return stdout.Bytes(), nil
}
