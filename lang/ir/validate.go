package ir

import "fmt"

// ValidationError reports a structurally malformed instruction list: a
// programming error in the IR generator, never a user-facing error, since
// well-typed source always lowers to a valid Program.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks the two structural invariants spec-level testing holds a
// Program to: the label set has no duplicates, and every Jump/CondJump
// target names a Label instruction present in the same list.
func Validate(p Program) error {
	labels := make(map[Label]bool, len(p))
	for _, in := range p {
		if in.Kind != LabelInstr {
			continue
		}
		if labels[in.Name] {
			return &ValidationError{Message: fmt.Sprintf("duplicate label %q", in.Name)}
		}
		labels[in.Name] = true
	}

	for _, in := range p {
		switch in.Kind {
		case Jump:
			if !labels[in.Target] {
				return &ValidationError{Message: fmt.Sprintf("jump to undefined label %q", in.Target)}
			}
		case CondJump:
			if !labels[in.ThenLabel] {
				return &ValidationError{Message: fmt.Sprintf("cond jump to undefined label %q", in.ThenLabel)}
			}
			if !labels[in.ElseLabel] {
				return &ValidationError{Message: fmt.Sprintf("cond jump to undefined label %q", in.ElseLabel)}
			}
		}
	}
	return nil
}
