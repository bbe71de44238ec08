package parser

import (
	"strconv"

	"github.com/vesperlang/vesper/lang/ast"
	"github.com/vesperlang/vesper/lang/token"
)

// level describes one precedence tier. Matching is either against an
// Operator-kind token (symbols) or an Identifier-kind keyword token
// (and/or), since "and"/"or" are lexed as ordinary identifiers and only
// the parser treats them as operators.
type level struct {
	symbols    []string
	keyword    bool
	rightAssoc bool
}

// levels lists operator tiers from lowest to highest precedence, stopping
// just below prefix unary operators (level 7) and terms (level 8), which
// parseUnary/parseTerm handle directly. Precedence is data, climbed by a
// single parameterized function, rather than one pair of mutually recursive
// functions per level.
var levels = []level{
	{symbols: []string{"="}, rightAssoc: true},                        // 0
	{symbols: []string{"or"}, keyword: true},                          // 1
	{symbols: []string{"and"}, keyword: true},                         // 2
	{symbols: []string{"==", "!="}},                                   // 3
	{symbols: []string{"<", "<=", ">", ">="}},                         // 4
	{symbols: []string{"+", "-"}},                                     // 5
	{symbols: []string{"*", "/", "%"}},                                // 6
}

// parseExpr parses a full expression, starting the precedence climb at the
// lowest level (assignment).
func (p *Parser) parseExpr() *ast.Node {
	return p.parseLevel(0)
}

func (p *Parser) parseLevel(idx int) *ast.Node {
	if idx >= len(levels) {
		return p.parseUnary()
	}
	lvl := levels[idx]

	left := p.parseLevel(idx + 1)

	if lvl.rightAssoc {
		if !p.matchesLevel(lvl) {
			return left
		}
		opTok := p.advance()
		right := p.parseLevel(idx) // same level: right-associative
		return ast.NewBinaryOp(opTok.Location, opTok.Text, left, right)
	}

	for p.matchesLevel(lvl) {
		opTok := p.advance()
		right := p.parseLevel(idx + 1)
		left = ast.NewBinaryOp(opTok.Location, opTok.Text, left, right)
	}
	return left
}

func (p *Parser) matchesLevel(lvl level) bool {
	if lvl.keyword {
		for _, kw := range lvl.symbols {
			if p.atKeyword(kw) {
				return true
			}
		}
		return false
	}
	return p.atOperator(lvl.symbols...)
}

// parseUnary handles the one remaining prefix level: "-" and "not", right
// associative and chainable ("- - 1", "not not b").
func (p *Parser) parseUnary() *ast.Node {
	if p.atOperator("-") {
		opTok := p.advance()
		operand := p.parseUnary()
		return ast.NewUnaryOp(opTok.Location, opTok.Text, operand)
	}
	if p.atKeyword("not") {
		opTok := p.advance()
		operand := p.parseUnary()
		return ast.NewUnaryOp(opTok.Location, opTok.Text, operand)
	}
	return p.parseTerm()
}

// parseTerm parses the highest-precedence syntactic category: atoms,
// parenthesized expressions, blocks and control-flow expressions.
func (p *Parser) parseTerm() *ast.Node {
	t := p.current()

	switch {
	case t.Kind == token.Integer:
		p.advance()
		v, err := strconv.ParseInt(t.Text, 10, 64)
		if err != nil {
			p.failAt(t, "malformed integer literal")
		}
		return ast.NewIntLiteral(t.Location, v)

	case p.atKeyword("true"):
		p.advance()
		return ast.NewBoolLiteral(t.Location, true)

	case p.atKeyword("false"):
		p.advance()
		return ast.NewBoolLiteral(t.Location, false)

	case p.atPunct("("):
		p.advance()
		e := p.parseExpr()
		p.expectPunct(")")
		return e

	case p.atPunct("{"):
		return p.parseBlock()

	case p.atKeyword("if"):
		return p.parseConditional()

	case p.atKeyword("while"):
		return p.parseWhile()

	case p.atIdentifier():
		p.advance()
		if p.atPunct("(") {
			return p.parseFunCall(t)
		}
		return ast.NewIdentifier(t.Location, t.Text)

	default:
		p.fail("expected an expression")
		panic("unreachable")
	}
}

func (p *Parser) parseConditional() *ast.Node {
	ifTok := p.expectKeyword("if")
	cond := p.parseExpr()
	p.expectKeyword("then")
	then := p.parseExpr()

	var els *ast.Node
	if p.atKeyword("else") {
		p.advance()
		els = p.parseExpr()
	}
	return ast.NewConditional(ifTok.Location, cond, then, els)
}

func (p *Parser) parseWhile() *ast.Node {
	whileTok := p.expectKeyword("while")
	cond := p.parseExpr()
	p.expectKeyword("do")
	body := p.parseExpr()
	return ast.NewWhile(whileTok.Location, cond, body)
}

// parseFunCall parses the argument list of a call; nameTok.Kind ==
// Identifier and the '(' has already been confirmed present but not
// consumed.
func (p *Parser) parseFunCall(nameTok token.Token) *ast.Node {
	p.expectPunct("(")
	var args []*ast.Node
	if !p.atPunct(")") {
		args = append(args, p.parseExpr())
		for p.atPunct(",") {
			p.advance()
			args = append(args, p.parseExpr())
		}
	}
	p.expectPunct(")")
	return ast.NewFunCall(nameTok.Location, nameTok.Text, args)
}

func (p *Parser) failAt(t token.Token, msg string) {
	panic(&ParserError{Message: msg, Text: t.Text, Kind: t.Kind, Location: t.Location})
}
