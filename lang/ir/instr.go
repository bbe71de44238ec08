package ir

import "github.com/vesperlang/vesper/lang/token"

// Kind identifies an instruction's shape, mirroring the single-struct
// design ast.Node uses for the tree above it: one Instruction type carrying
// only the fields its Kind needs.
type Kind int8

const (
	LoadIntConst Kind = iota
	LoadBoolConst
	Copy
	Call
	Jump
	CondJump
	LabelInstr
)

func (k Kind) String() string {
	switch k {
	case LoadIntConst:
		return "LoadIntConst"
	case LoadBoolConst:
		return "LoadBoolConst"
	case Copy:
		return "Copy"
	case Call:
		return "Call"
	case Jump:
		return "Jump"
	case CondJump:
		return "CondJump"
	case LabelInstr:
		return "Label"
	default:
		return "Unknown"
	}
}

// Instruction is one IR instruction. Which fields are meaningful depends on
// Kind; see the per-shape lowering rules.
type Instruction struct {
	Location token.Location
	Kind     Kind

	IntValue  int64 // LoadIntConst
	BoolValue bool  // LoadBoolConst

	Source      Var // Copy
	Destination Var // LoadIntConst, LoadBoolConst, Copy, Call

	Callee Var   // Call
	Args   []Var // Call

	Target Label // Jump

	Condition Var   // CondJump
	ThenLabel Label // CondJump
	ElseLabel Label // CondJump

	Name Label // LabelInstr
}

func LoadInt(loc token.Location, value int64, dst Var) Instruction {
	return Instruction{Location: loc, Kind: LoadIntConst, IntValue: value, Destination: dst}
}

func LoadBool(loc token.Location, value bool, dst Var) Instruction {
	return Instruction{Location: loc, Kind: LoadBoolConst, BoolValue: value, Destination: dst}
}

func CopyInstr(loc token.Location, src, dst Var) Instruction {
	return Instruction{Location: loc, Kind: Copy, Source: src, Destination: dst}
}

func CallInstr(loc token.Location, callee Var, args []Var, dst Var) Instruction {
	return Instruction{Location: loc, Kind: Call, Callee: callee, Args: args, Destination: dst}
}

func JumpInstr(loc token.Location, target Label) Instruction {
	return Instruction{Location: loc, Kind: Jump, Target: target}
}

func CondJumpInstr(loc token.Location, cond Var, then, els Label) Instruction {
	return Instruction{Location: loc, Kind: CondJump, Condition: cond, ThenLabel: then, ElseLabel: els}
}

func LabelDef(loc token.Location, name Label) Instruction {
	return Instruction{Location: loc, Kind: LabelInstr, Name: name}
}

// Program is the ordered instruction list produced by the IR generator and
// consumed by the assembly generator.
type Program []Instruction
