package ir

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// String renders one instruction in the same notation used throughout
// spec-level discussion of the IR, e.g. "Call(+, [x1, x2], x3)".
func (in Instruction) String() string {
	switch in.Kind {
	case LoadIntConst:
		return fmt.Sprintf("LoadIntConst(%d, %s)", in.IntValue, in.Destination)
	case LoadBoolConst:
		return fmt.Sprintf("LoadBoolConst(%t, %s)", in.BoolValue, in.Destination)
	case Copy:
		return fmt.Sprintf("Copy(%s, %s)", in.Source, in.Destination)
	case Call:
		args := make([]string, len(in.Args))
		for i, a := range in.Args {
			args[i] = string(a)
		}
		return fmt.Sprintf("Call(%s, [%s], %s)", in.Callee, strings.Join(args, ", "), in.Destination)
	case Jump:
		return fmt.Sprintf("Jump(%s)", in.Target)
	case CondJump:
		return fmt.Sprintf("CondJump(%s, %s, %s)", in.Condition, in.ThenLabel, in.ElseLabel)
	case LabelInstr:
		return fmt.Sprintf("Label(%s)", in.Name)
	default:
		return "???"
	}
}

// Printer writes a Program in disassembler-style form: one instruction per
// line, each tagged with its index, following the same accumulate-and-
// report-once error discipline the teacher's asm.go disassembler uses.
type Printer struct {
	Output io.Writer
}

// Print writes p to the Printer's Output, one "# %03d  <instr>" line each.
func (pr *Printer) Print(p Program) error {
	buf := new(bytes.Buffer)
	for i, in := range p {
		fmt.Fprintf(buf, "# %03d  %s\n", i, in)
	}
	_, err := pr.Output.Write(buf.Bytes())
	return err
}

// Sprint is a convenience wrapper around Print that returns the text
// directly.
func Sprint(p Program) string {
	var buf bytes.Buffer
	pr := &Printer{Output: &buf}
	_ = pr.Print(p)
	return buf.String()
}
