package parser

import "github.com/vesperlang/vesper/lang/ast"

// parseBlock parses "{ stmt1 ; stmt2 ; ... ; stmtN [;] }". The '{' and '}'
// have not yet been consumed on entry (the '{' is only peeked at).
func (p *Parser) parseBlock() *ast.Node {
	openTok := p.expectPunct("{")
	stmts := p.parseSequence(func() bool { return p.atPunct("}") })
	p.expectPunct("}")
	return ast.NewBlock(openTok.Location, stmts)
}

// parseSequence parses statements separated by ';' until isTerminator holds,
// implementing three rules at once:
//   - the last statement may omit its trailing ';' and becomes the
//     sequence's value;
//   - a trailing ';' makes the sequence evaluate to Unit, realized by
//     appending an EmptyLiteral;
//   - a statement that literally ended with '}' may be directly followed
//     by another statement with no separating ';'.
func (p *Parser) parseSequence(isTerminator func() bool) []*ast.Node {
	var stmts []*ast.Node
	if isTerminator() {
		return stmts
	}

	for {
		stmts = append(stmts, p.parseStatement())

		if isTerminator() {
			break
		}
		if p.atPunct(";") {
			p.advance()
			if isTerminator() {
				stmts = append(stmts, ast.NewEmptyLiteral(p.here()))
				break
			}
			continue
		}
		if p.endedWithRightBrace() {
			continue
		}
		p.fail("expected ';' between statements")
	}
	return stmts
}

// parseStatement parses one statement: a variable declaration (only valid
// here, never as a sub-expression) or a plain expression.
func (p *Parser) parseStatement() *ast.Node {
	if p.atKeyword("var") {
		return p.parseVarDeclaration()
	}
	return p.parseExpr()
}

// parseVarDeclaration parses "var NAME [: TypeName] = expression".
func (p *Parser) parseVarDeclaration() *ast.Node {
	varTok := p.expectKeyword("var")
	nameTok := p.expectIdentifier()

	var declared *ast.Type
	if p.atPunct(":") {
		p.advance()
		declared = p.parseTypeName()
	}

	if !p.atOperator("=") {
		p.fail("expected '=' in variable declaration")
	}
	p.advance()

	init := p.parseExpr()
	return ast.NewVarDeclaration(varTok.Location, nameTok.Text, init, declared)
}

func (p *Parser) parseTypeName() *ast.Type {
	if p.atKeyword("Int") {
		p.advance()
		t := ast.IntType
		return &t
	}
	if p.atKeyword("Bool") {
		p.advance()
		t := ast.BoolType
		return &t
	}
	p.fail("expected a type name ('Int' or 'Bool')")
	panic("unreachable")
}
