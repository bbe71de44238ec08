package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Printer pretty-prints a Node tree, indenting one level per nesting depth,
// giving a human-readable dump rather than a literal struct comparison.
type Printer struct {
	Output io.Writer
}

func (p *Printer) Print(n *Node) error {
	pp := &printer{w: p.Output}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w     io.Writer
	depth int
	err   error
}

func (p *printer) Visit(n *Node, dir VisitDirection) Visitor {
	if dir == VisitExit {
		p.depth--
		return nil
	}
	if p.err != nil {
		return nil
	}

	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.depth), describe(n))
	p.depth++
	if p.err != nil {
		return nil
	}
	return p
}

func describe(n *Node) string {
	switch n.Kind {
	case EmptyLiteral:
		return "EmptyLiteral"
	case IntLiteral:
		return "IntLiteral(" + strconv.FormatInt(n.IntValue, 10) + ")"
	case BoolLiteral:
		return "BoolLiteral(" + strconv.FormatBool(n.BoolValue) + ")"
	case Identifier:
		return "Identifier(" + n.Name + ")"
	case UnaryOp:
		return "UnaryOp(" + n.Operator + ")"
	case BinaryOp:
		return "BinaryOp(" + n.Operator + ")"
	case VarDeclaration:
		return "VarDeclaration(" + n.Name + ")"
	case Conditional:
		return "Conditional"
	case While:
		return "While"
	case FunCall:
		return "FunCall(" + n.Name + ")"
	case Block:
		return "Block"
	default:
		return n.Kind.String()
	}
}
