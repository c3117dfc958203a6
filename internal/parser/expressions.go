package parser

import (
	"github.com/cwbudde/js2cpp/internal/ast"
	"github.com/cwbudde/js2cpp/internal/token"
)

// binaryPrecedence implements the 15-level precedence table for the
// binary (non-assignment, non-ternary) operators. Unary (level 13) and
// postfix (level 14) are handled by dedicated parse functions rather than
// this table; assignment (level 1) and the ternary (level 2) likewise
// have their own entry points.
func binaryPrecedence(tt token.Type) (int, bool) {
	switch tt {
	case token.LOR:
		return 3, true
	case token.LAND:
		return 4, true
	case token.OR:
		return 5, true
	case token.XOR:
		return 6, true
	case token.AND:
		return 7, true
	case token.EQ, token.NEQ, token.SEQ, token.SNE:
		return 8, true
	case token.LT, token.LE, token.GT, token.GE, token.INSTANCEOF, token.IN:
		return 9, true
	case token.SHL, token.SHR, token.USHR:
		return 10, true
	case token.PLUS, token.MINUS:
		return 11, true
	case token.STAR, token.SLASH, token.PERCENT:
		return 12, true
	}
	return 0, false
}

const lowestBinaryPrecedence = 3

func isLogical(tt token.Type) bool {
	return tt == token.LAND || tt == token.LOR
}

// parseExpression parses a full expression, including the comma (sequence)
// operator (precedence 0): the lowest-binding form, used at statement
// level and inside parenthesized groups.
func (p *Parser) parseExpression() ast.Expression {
	first := p.parseAssignment()
	if p.cur().Type != token.COMMA {
		return first
	}
	tok := p.cur()
	exprs := []ast.Expression{first}
	for p.cur().Type == token.COMMA {
		p.advance()
		exprs = append(exprs, p.parseAssignment())
	}
	return &ast.SequenceExpr{Token: tok, Expressions: exprs}
}

// parseAssignment parses the ternary and the 14 right-associative
// assignment operators (precedence 1-2).
func (p *Parser) parseAssignment() ast.Expression {
	left := p.parseConditional()
	if !token.IsAssign(p.cur().Type) {
		return left
	}
	if !isAssignable(left) {
		p.errorf(left.Pos(), "invalid assignment target")
	}
	opTok := p.advance()
	right := p.parseAssignment()
	return &ast.AssignExpr{Token: opTok, Operator: opTok.Type, Target: left, Value: right}
}

func isAssignable(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.DotExpr, *ast.IndexExpr:
		return true
	}
	return false
}

// parseConditional parses `cond ? then : else` (precedence 2).
func (p *Parser) parseConditional() ast.Expression {
	cond := p.parseBinary(lowestBinaryPrecedence)
	if p.cur().Type != token.QUESTION {
		return cond
	}
	tok := p.advance()
	then := p.parseAssignment()
	p.expect(token.COLON)
	els := p.parseAssignment()
	return &ast.ConditionalExpr{Token: tok, Cond: cond, Then: then, Else: els}
}

// parseBinary implements precedence climbing over binaryPrecedence, left
// associative at every level.
func (p *Parser) parseBinary(minPrec int) ast.Expression {
	left := p.parseUnary()
	for {
		prec, ok := binaryPrecedence(p.cur().Type)
		if !ok || prec < minPrec {
			return left
		}
		opTok := p.advance()
		right := p.parseBinary(prec + 1)
		if isLogical(opTok.Type) {
			left = &ast.LogicalExpr{Token: opTok, Operator: opTok.Type, Left: left, Right: right}
		} else {
			left = &ast.BinaryExpr{Token: opTok, Operator: opTok.Type, Left: left, Right: right}
		}
	}
}

var prefixOps = map[token.Type]bool{
	token.NOT: true, token.TILDE: true, token.PLUS: true, token.MINUS: true,
	token.TYPEOF: true, token.VOID: true, token.DELETE: true,
	token.INC: true, token.DEC: true,
}

// parseUnary parses prefix operators (precedence 13), including prefix
// ++/--, falling through to the postfix level otherwise.
func (p *Parser) parseUnary() ast.Expression {
	t := p.cur()
	if prefixOps[t.Type] {
		opTok := p.advance()
		operand := p.parseUnary()
		return &ast.UnaryExpr{Token: opTok, Operator: opTok.Type, Operand: operand}
	}
	return p.parsePostfix()
}

// parsePostfix parses trailing ++/-- (precedence 14). Automatic Semicolon
// Insertion forbids a line break between the operand and the operator.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parseLeftHandSide()
	t := p.cur()
	if (t.Type == token.INC || t.Type == token.DEC) && !t.PrecededByNewline {
		opTok := p.advance()
		return &ast.PostfixExpr{Token: opTok, Operator: opTok.Type, Operand: expr}
	}
	return expr
}

// parseLeftHandSide parses a primary expression (or `new` expression)
// followed by any chain of `.prop`, `[index]`, and `(args)` suffixes.
func (p *Parser) parseLeftHandSide() ast.Expression {
	base := p.parseNewOrPrimary()
	for {
		switch p.cur().Type {
		case token.DOT:
			tok := p.advance()
			propTok := p.expect(token.IDENT)
			base = &ast.DotExpr{Token: tok, Object: base, Property: propTok.Literal}
		case token.LBRACKET:
			tok := p.advance()
			idx := p.parseExpression()
			p.expect(token.RBRACKET)
			base = &ast.IndexExpr{Token: tok, Object: base, Index: idx}
		case token.LPAREN:
			tok := p.advance()
			args := p.parseArgList()
			base = &ast.CallExpr{Token: tok, Callee: base, Args: args}
		default:
			return base
		}
	}
}

func (p *Parser) parseNewOrPrimary() ast.Expression {
	if p.cur().Type != token.NEW {
		return p.parsePrimary()
	}
	tok := p.advance()
	callee := p.parseNewCallee()
	var args []ast.Expression
	if p.cur().Type == token.LPAREN {
		p.advance()
		args = p.parseArgList()
	}
	return &ast.NewExpr{Token: tok, Callee: callee, Args: args}
}

// parseNewCallee parses the constructor expression of `new X(...)`,
// consuming `.prop`/`[index]` suffixes but stopping before a `(` so the
// argument list binds to the `new`, not to some inner call
// (codegen.cpp's `tNEW` case expects exactly this shape).
func (p *Parser) parseNewCallee() ast.Expression {
	base := p.parseNewOrPrimary()
	for {
		switch p.cur().Type {
		case token.DOT:
			tok := p.advance()
			propTok := p.expect(token.IDENT)
			base = &ast.DotExpr{Token: tok, Object: base, Property: propTok.Literal}
		case token.LBRACKET:
			tok := p.advance()
			idx := p.parseExpression()
			p.expect(token.RBRACKET)
			base = &ast.IndexExpr{Token: tok, Object: base, Index: idx}
		default:
			return base
		}
	}
}

func (p *Parser) parseArgList() []ast.Expression {
	var args []ast.Expression
	for p.cur().Type != token.RPAREN && p.cur().Type != token.EOF {
		args = append(args, p.parseAssignment())
		if p.cur().Type != token.COMMA {
			break
		}
		p.advance()
	}
	p.expect(token.RPAREN)
	return args
}

func (p *Parser) parsePrimary() ast.Expression {
	t := p.cur()
	switch t.Type {
	case token.IDENT:
		p.advance()
		p.scopes.Reference(p.scope, p.declareName(t.Literal))
		return &ast.Identifier{Token: t, Name: t.Literal}
	case token.NUMBER:
		p.advance()
		return &ast.NumberLiteral{Token: t, Value: t.Literal}
	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Token: t, Raw: t.Literal}
	case token.REGEX:
		p.advance()
		return &ast.RegexLiteral{Token: t, Raw: t.Literal}
	case token.TRUE:
		p.advance()
		return &ast.BoolLiteral{Token: t, Value: true}
	case token.FALSE:
		p.advance()
		return &ast.BoolLiteral{Token: t, Value: false}
	case token.NULL:
		p.advance()
		return &ast.NullLiteral{Token: t}
	case token.THIS:
		p.advance()
		return &ast.ThisExpr{Token: t}
	case token.LPAREN:
		p.advance()
		e := p.parseExpression()
		p.expect(token.RPAREN)
		return e
	case token.LBRACKET:
		return p.parseArrayLiteral()
	case token.FUNCTION:
		return p.parseFunctionExpr()
	}
	p.errorf(t.Pos, "unexpected token %s", t.Type)
	p.advance()
	return &ast.InvalidExpr{Token: t}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.advance() // '['
	var elements []ast.Expression
	for p.cur().Type != token.RBRACKET && p.cur().Type != token.EOF {
		if p.cur().Type == token.COMMA {
			elements = append(elements, nil)
			p.advance()
			continue
		}
		elements = append(elements, p.parseAssignment())
		if p.cur().Type == token.COMMA {
			p.advance()
			if p.cur().Type == token.RBRACKET {
				break
			}
			continue
		}
		break
	}
	p.expect(token.RBRACKET)
	return &ast.ArrayLiteral{Token: tok, Elements: elements}
}

// parseFunctionExpr parses a function expression. A name is visible only
// within the function's own scope (for self-recursive calls), not in the
// enclosing scope, matching the original compiler's DeclareLiteralFunction
// treatment of named function expressions.
func (p *Parser) parseFunctionExpr() ast.Expression {
	tok := p.advance()
	name := ""
	if p.cur().Type == token.IDENT {
		name = p.advance().Literal
	}
	parent := p.scope
	scopeName := name
	if scopeName == "" {
		scopeName = "<anonymous>"
	}
	fnScope := p.openScope(scopeName)
	if name != "" {
		p.scopes.DeclareFunction(fnScope, p.declareName(name))
	}
	params := p.parseFormalParams()
	body := p.parseBlock()
	p.closeScope(parent)
	return &ast.FunctionLiteral{Token: tok, Name: name, Params: params, Body: body, Scope: fnScope}
}
