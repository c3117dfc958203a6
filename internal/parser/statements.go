package parser

import (
	"github.com/cwbudde/js2cpp/internal/ast"
	"github.com/cwbudde/js2cpp/internal/token"
)

// parseStatementDispatch is the per-kind statement grammar; parseStatement
// (parser.go) wraps it to turn an expect() failure into ast.InvalidStatement.
func (p *Parser) parseStatementDispatch() ast.Statement {
	t := p.cur()
	switch t.Type {
	case token.LBRACE:
		return p.parseBlock()
	case token.SEMICOLON:
		p.advance()
		return &ast.EmptyStatement{Token: t}
	case token.VAR:
		return p.parseVarStatement()
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.WHILE:
		return p.parseWhile()
	case token.DO:
		return p.parseDoWhile()
	case token.BREAK:
		return p.parseBreak()
	case token.CONTINUE:
		return p.parseContinue()
	case token.RETURN:
		return p.parseReturn()
	case token.THROW:
		return p.parseThrow()
	case token.TRY:
		return p.parseTry()
	case token.SWITCH:
		return p.parseSwitch()
	case token.FUNCTION:
		return p.parseFunctionDeclaration()
	case token.IDENT:
		if t.Literal == "extern" && p.peek(1).Type == token.VAR {
			return p.parseExternVar()
		}
		if p.peek(1).Type == token.COLON {
			return p.parseLabeled()
		}
	}
	expr := p.parseExpression()
	p.consumeSemicolon()
	return &ast.ExpressionStatement{Token: t, Expr: expr}
}

func (p *Parser) parseBlock() *ast.BlockStatement {
	tok := p.expect(token.LBRACE)
	var stmts []ast.Statement
	for p.cur().Type != token.RBRACE && p.cur().Type != token.EOF {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(token.RBRACE)
	return &ast.BlockStatement{Token: tok, Statements: stmts}
}

// parseDeclaratorList parses the comma-separated `name (= init)?` list
// shared by `var` statements and for-loop initializers, declaring each
// name as a Variable binding in the current scope (scope.cpp:
// aScope::DeclareVariable).
func (p *Parser) parseDeclaratorList() []ast.Declarator {
	var decls []ast.Declarator
	for {
		nameTok := p.expect(token.IDENT)
		name := nameTok.Literal
		p.scopes.DeclareVariable(p.scope, p.declareName(name))

		var init ast.Expression
		if p.cur().Type == token.ASSIGN {
			p.advance()
			init = p.parseAssignment()
		}
		decls = append(decls, ast.Declarator{Name: name, Init: init})
		if p.cur().Type != token.COMMA {
			break
		}
		p.advance()
	}
	return decls
}

func (p *Parser) parseVarStatement() ast.Statement {
	tok := p.expect(token.VAR)
	decls := p.parseDeclaratorList()
	p.consumeSemicolon()
	return &ast.VarStatement{Token: tok, Declarators: decls}
}

func (p *Parser) parseExternVar() ast.Statement {
	tok := p.advance() // `extern`
	p.expect(token.VAR)
	var names []string
	for {
		nameTok := p.expect(token.IDENT)
		names = append(names, nameTok.Literal)
		p.scopes.DeclareExtern(p.scope, p.declareName(nameTok.Literal))
		if p.cur().Type != token.COMMA {
			break
		}
		p.advance()
	}
	p.consumeSemicolon()
	return &ast.ExternVarStatement{Token: tok, Names: names}
}

func (p *Parser) parseIf() ast.Statement {
	tok := p.advance()
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	then := p.parseStatement()
	var elseStmt ast.Statement
	if p.cur().Type == token.ELSE {
		p.advance()
		elseStmt = p.parseStatement()
	}
	return &ast.IfStatement{Token: tok, Cond: cond, Then: then, Else: elseStmt}
}

// parseFor disambiguates the C-style three-clause form from `for (x in e)`
// / `for (var x in e)`. The original compiler never emitted code for the
// for-in variant (jsrt codegen.cpp's ForLoop has only a stub comment for
// it); this translator gives it full codegen, so the grammar distinguishes
// the two forms explicitly instead of papering over the gap.
func (p *Parser) parseFor() ast.Statement {
	tok := p.advance()
	p.expect(token.LPAREN)

	if p.cur().Type == token.VAR && p.peek(1).Type == token.IDENT && p.peek(2).Type == token.IN {
		p.advance() // var
		nameTok := p.advance()
		p.scopes.DeclareVariable(p.scope, p.declareName(nameTok.Literal))
		p.expect(token.IN)
		obj := p.parseExpression()
		p.expect(token.RPAREN)
		body := p.parseLoopBody()
		return &ast.ForInStatement{Token: tok, Var: true, Name: nameTok.Literal, Object: obj, Body: body}
	}
	if p.cur().Type == token.IDENT && p.peek(1).Type == token.IN {
		nameTok := p.advance()
		p.scopes.Reference(p.scope, p.declareName(nameTok.Literal))
		p.expect(token.IN)
		obj := p.parseExpression()
		p.expect(token.RPAREN)
		body := p.parseLoopBody()
		return &ast.ForInStatement{Token: tok, Var: false, Name: nameTok.Literal, Object: obj, Body: body}
	}

	var init ast.Node
	if p.cur().Type == token.VAR {
		p.advance()
		decls := p.parseDeclaratorList()
		init = &ast.VarStatement{Token: tok, Declarators: decls}
	} else if p.cur().Type != token.SEMICOLON {
		init = p.parseExpression()
	}
	p.expect(token.SEMICOLON)

	var cond ast.Expression
	if p.cur().Type != token.SEMICOLON {
		cond = p.parseExpression()
	}
	p.expect(token.SEMICOLON)

	var post ast.Expression
	if p.cur().Type != token.RPAREN {
		post = p.parseExpression()
	}
	p.expect(token.RPAREN)

	body := p.parseLoopBody()
	return &ast.ForStatement{Token: tok, Init: init, Cond: cond, Post: post, Body: body}
}

func (p *Parser) parseLoopBody() ast.Statement {
	p.loopDepth++
	defer func() { p.loopDepth-- }()
	return p.parseStatement()
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.advance()
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	body := p.parseLoopBody()
	return &ast.WhileStatement{Token: tok, Cond: cond, Body: body}
}

func (p *Parser) parseDoWhile() ast.Statement {
	tok := p.advance()
	body := p.parseLoopBody()
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	p.consumeSemicolon()
	return &ast.DoWhileStatement{Token: tok, Body: body, Cond: cond}
}

func (p *Parser) parseBreak() ast.Statement {
	tok := p.advance()
	var label string
	if p.cur().Type == token.IDENT && !p.cur().PrecededByNewline {
		label = p.advance().Literal
	}
	p.consumeSemicolon()
	return &ast.BreakStatement{Token: tok, Label: label}
}

func (p *Parser) parseContinue() ast.Statement {
	tok := p.advance()
	var label string
	if p.cur().Type == token.IDENT && !p.cur().PrecededByNewline {
		label = p.advance().Literal
	}
	p.consumeSemicolon()
	return &ast.ContinueStatement{Token: tok, Label: label}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.advance()
	var val ast.Expression
	if p.cur().Type != token.SEMICOLON && p.cur().Type != token.RBRACE &&
		p.cur().Type != token.EOF && !p.cur().PrecededByNewline {
		val = p.parseExpression()
	}
	p.consumeSemicolon()
	return &ast.ReturnStatement{Token: tok, Value: val}
}

func (p *Parser) parseThrow() ast.Statement {
	tok := p.advance()
	val := p.parseExpression()
	p.consumeSemicolon()
	return &ast.ThrowStatement{Token: tok, Value: val}
}

func (p *Parser) parseTry() ast.Statement {
	tok := p.advance()
	block := p.parseBlock()

	var catch *ast.CatchClause
	if p.cur().Type == token.CATCH {
		p.advance()
		p.expect(token.LPAREN)
		paramTok := p.expect(token.IDENT)
		p.expect(token.RPAREN)

		parent := p.scope
		p.openScope("catch")
		p.scopes.DeclareVariable(p.scope, p.declareName(paramTok.Literal))
		body := p.parseBlock()
		p.closeScope(parent)

		catch = &ast.CatchClause{Param: paramTok.Literal, Body: body}
	}

	var finally *ast.BlockStatement
	if p.cur().Type == token.FINALLY {
		p.advance()
		finally = p.parseBlock()
	}

	if catch == nil && finally == nil {
		p.errorf(tok.Pos, "try requires a catch or finally clause")
	}
	return &ast.TryStatement{Token: tok, Block: block, Catch: catch, Finally: finally}
}

func (p *Parser) parseSwitch() ast.Statement {
	tok := p.advance()
	p.expect(token.LPAREN)
	disc := p.parseExpression()
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)

	var cases []ast.CaseClause
	sawDefault := false
	for p.cur().Type == token.CASE || p.cur().Type == token.DEFAULT {
		var test ast.Expression
		if p.cur().Type == token.CASE {
			p.advance()
			test = p.parseExpression()
		} else {
			p.advance()
			if sawDefault {
				p.errorf(p.cur().Pos, "switch may have only one default clause")
			}
			sawDefault = true
		}
		p.expect(token.COLON)

		var stmts []ast.Statement
		for p.cur().Type != token.CASE && p.cur().Type != token.DEFAULT &&
			p.cur().Type != token.RBRACE && p.cur().Type != token.EOF {
			stmts = append(stmts, p.parseStatement())
		}
		cases = append(cases, ast.CaseClause{Test: test, Statements: stmts})
	}
	p.expect(token.RBRACE)
	return &ast.SwitchStatement{Token: tok, Discriminant: disc, Cases: cases}
}

func (p *Parser) parseLabeled() ast.Statement {
	nameTok := p.advance()
	p.expect(token.COLON)
	body := p.parseStatement()
	return &ast.LabeledStatement{Token: nameTok, Label: nameTok.Literal, Body: body}
}

func (p *Parser) parseFunctionDeclaration() ast.Statement {
	tok := p.advance()
	nameTok := p.expect(token.IDENT)
	p.scopes.DeclareFunction(p.scope, p.declareName(nameTok.Literal))

	parent := p.scope
	fnScope := p.openScope(nameTok.Literal)
	params := p.parseFormalParams()
	body := p.parseBlock()
	p.closeScope(parent)

	return &ast.FunctionDeclaration{Token: tok, Name: nameTok.Literal, Params: params, Body: body, Scope: fnScope}
}

func (p *Parser) parseFormalParams() []*ast.Identifier {
	p.expect(token.LPAREN)
	var params []*ast.Identifier
	for p.cur().Type != token.RPAREN && p.cur().Type != token.EOF {
		nameTok := p.expect(token.IDENT)
		p.scopes.DeclareVariable(p.scope, p.declareName(nameTok.Literal))
		params = append(params, &ast.Identifier{Token: nameTok, Name: nameTok.Literal})
		if p.cur().Type != token.COMMA {
			break
		}
		p.advance()
	}
	p.expect(token.RPAREN)
	return params
}
