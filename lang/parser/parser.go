// Package parser implements the hand-written recursive-descent parser of
// the vesper compiler. Operator precedence is expressed as data (a table of
// levels climbed by a single parameterized function) rather than as one
// pair of mutually recursive functions per precedence level.
package parser

import (
	"fmt"

	"github.com/vesperlang/vesper/lang/ast"
	"github.com/vesperlang/vesper/lang/token"
)

// ParserError reports an unexpected token encountered while parsing.
type ParserError struct {
	Message  string
	Text     string
	Kind     token.Kind
	Location token.Location
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s: %s (got %s %q)", e.Location, e.Message, e.Kind, e.Text)
}

// Parse builds a single AST root from a token sequence. It fails if there
// are tokens left over after the top-level expression is consumed, unless
// the top-level-block rule (see parseSequence) applies.
func Parse(tokens []token.Token) (n *ast.Node, err error) {
	p := &Parser{tokens: tokens}
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*ParserError)
			if !ok {
				panic(r)
			}
			err = perr
		}
	}()

	loc := p.here()
	stmts := p.parseSequence(func() bool { return p.atEnd() })
	if !p.atEnd() {
		p.fail("unexpected trailing input")
	}

	if len(stmts) == 1 {
		return stmts[0], nil
	}
	return ast.NewBlock(loc, stmts), nil
}

// Parser holds the token cursor state for a single parse.
type Parser struct {
	tokens  []token.Token
	pos     int
	prevEnd string // text of the last consumed token, used by the brace-omission rule
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.tokens) }

// current returns the token at the cursor, synthesizing an End token when
// the cursor has run past the last real token.
func (p *Parser) current() token.Token {
	if p.atEnd() {
		loc := token.Location{Line: token.AnyPos, Column: token.AnyPos}
		if len(p.tokens) > 0 {
			loc = p.tokens[len(p.tokens)-1].Location
		}
		return token.Token{Kind: token.End, Location: loc}
	}
	return p.tokens[p.pos]
}

func (p *Parser) here() token.Location { return p.current().Location }

func (p *Parser) advance() token.Token {
	t := p.current()
	if !p.atEnd() {
		p.pos++
	}
	p.prevEnd = t.Text
	return t
}

func (p *Parser) fail(msg string) {
	t := p.current()
	panic(&ParserError{Message: msg, Text: t.Text, Kind: t.Kind, Location: t.Location})
}

func (p *Parser) atPunct(text string) bool {
	t := p.current()
	return t.Kind == token.Punctuation && t.Text == text
}

func (p *Parser) atOperator(texts ...string) bool {
	t := p.current()
	if t.Kind != token.Operator {
		return false
	}
	for _, text := range texts {
		if t.Text == text {
			return true
		}
	}
	return false
}

func (p *Parser) atKeyword(name string) bool {
	t := p.current()
	return t.Kind == token.Identifier && t.Text == name
}

// atIdentifier reports whether the current token is an Identifier that is
// not one of the reserved keywords.
func (p *Parser) atIdentifier() bool {
	t := p.current()
	return t.Kind == token.Identifier && !token.Keywords[t.Text]
}

func (p *Parser) expectPunct(text string) token.Token {
	if !p.atPunct(text) {
		p.fail("expected '" + text + "'")
	}
	return p.advance()
}

func (p *Parser) expectKeyword(name string) token.Token {
	if !p.atKeyword(name) {
		p.fail("expected '" + name + "'")
	}
	return p.advance()
}

func (p *Parser) expectIdentifier() token.Token {
	if !p.atIdentifier() {
		p.fail("expected an identifier")
	}
	return p.advance()
}

// endedWithRightBrace reports whether the last consumed token was '}',
// which is the sole condition under which a statement may be followed by
// another statement without an intervening semicolon (spec §4.2).
func (p *Parser) endedWithRightBrace() bool { return p.prevEnd == "}" }
