package maincmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/vesperlang/vesper/lang/compiler"
)

// runInteractive reads one line at a time from stdio.Stdin, interprets it,
// and prints the resulting value. A failing line prints its error and does
// not stop the loop, per spec.md §7's REPL error-handling policy.
//
// A single shared bufio.Reader backs both the line loop and read_int inside
// the interpreter: wrapping the raw stdio.Stdin twice would let the outer
// reader's look-ahead buffer silently swallow bytes a later read_int call
// needs.
func (c *Cmd) runInteractive(ctx context.Context, stdio mainer.Stdio) error {
	in := bufio.NewReader(stdio.Stdin)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := in.ReadString('\n')
		if line == "" && err != nil {
			break
		}

		v, evalErr := compiler.Interpret(line, stdio.Stdout, in)
		if evalErr != nil {
			printError(stdio, evalErr)
			continue
		}
		fmt.Fprintln(stdio.Stdout, v)

		if err != nil {
			break
		}
	}
	return nil
}
