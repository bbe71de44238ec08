package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
)

const binName = "vesper"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [-i]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [-i]
       %[1]s -h|--help
       %[1]s -v|--version

Compiler and interpreter for the vesper toy language.

With no flags, %[1]s starts the JSON-over-TCP compile server.

Valid flag options are:
       -i --interactive          Read expressions from standard input, one
                                 per line, and print each interpreted value.
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// Cmd is the root command. Unlike the teacher's reflection-dispatched
// subcommand table, vesper has exactly two modes selected by a single
// optional flag, so Main branches directly instead of building a command
// map.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help        bool `flag:"h,help"`
	Version     bool `flag:"v,version"`
	Interactive bool `flag:"i,interactive"`

	args []string
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}

func (c *Cmd) Validate() error {
	return nil
}

func printError(stdio mainer.Stdio, err error) error {
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
	}
	return err
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)

	var err error
	if c.Interactive {
		err = c.runInteractive(ctx, stdio)
	} else {
		err = c.runServer(ctx, stdio)
	}
	if err != nil {
		return mainer.Failure
	}
	return mainer.Success
}
