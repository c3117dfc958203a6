// Package parser implements a recursive-descent, precedence-climbing
// parser: it consumes the token.Token stream from internal/lexer and
// builds an internal/ast tree while simultaneously populating an
// internal/scope.Table, the way the original compiler's jsparse.h Parser
// interleaves parsing with scope bookkeeping.
package parser

import (
	"fmt"

	"github.com/cwbudde/js2cpp/internal/ast"
	"github.com/cwbudde/js2cpp/internal/errors"
	"github.com/cwbudde/js2cpp/internal/intern"
	"github.com/cwbudde/js2cpp/internal/lexer"
	"github.com/cwbudde/js2cpp/internal/scope"
	"github.com/cwbudde/js2cpp/internal/token"
)

// Parser builds an *ast.Program from a lexer.Lexer.
type Parser struct {
	lex    *lexer.Lexer
	names  *intern.Table
	scopes *scope.Table
	scope  scope.ID // current scope

	errs []*errors.CompilerError

	// invalid is raised by expect() when a required token is missing and
	// cleared by parseStatement once it has turned the failure into an
	// ast.InvalidStatement; save/restore around nested parseStatement calls
	// keeps a header failure (e.g. an unmatched "if" paren) from being
	// masked by its own, perfectly-well-formed body statement.
	invalid bool

	loopDepth   int
	labels      map[string]bool
}

// New creates a Parser. names and scopes are shared with the rest of the
// pipeline (the code generator resolves identifiers and scope IDs the
// parser produced).
func New(lex *lexer.Lexer, names *intern.Table, scopes *scope.Table) *Parser {
	return &Parser{lex: lex, names: names, scopes: scopes, labels: make(map[string]bool)}
}

// Errors returns every diagnostic accumulated while parsing (lexical
// errors from the underlying lexer are included).
func (p *Parser) Errors() []*errors.CompilerError {
	return append(p.lex.Errors(), p.errs...)
}

// ParseProgram parses an entire source file (and any preamble pushed ahead
// of it) into a Program rooted in a fresh global scope.
func (p *Parser) ParseProgram() *ast.Program {
	p.scope = p.scopes.New("global", 0, false)
	var stmts []ast.Statement
	for p.cur().Type != token.EOF {
		stmts = append(stmts, p.parseStatement())
	}
	p.scopes.End(p.scope)
	return &ast.Program{Statements: stmts, Scope: p.scope}
}

func (p *Parser) cur() token.Token  { return p.lex.Peek(0) }
func (p *Parser) peek(n int) token.Token { return p.lex.Peek(n) }
func (p *Parser) advance() token.Token { return p.lex.Advance() }

func (p *Parser) errorf(pos token.Position, format string, args ...interface{}) {
	p.errs = append(p.errs, errors.New(errors.Expected, pos, fmt.Sprintf(format, args...), ""))
}

// expect consumes the current token if it has type tt, reporting an error
// and resynchronizing to the next statement boundary otherwise. Once a
// statement has already gone bad, further mismatches inside it are kept
// silent: synchronize already left the cursor past the wreckage, and
// parseStatement will discard whatever the rest of the dispatch builds.
func (p *Parser) expect(tt token.Type) token.Token {
	t := p.cur()
	if t.Type != tt {
		if !p.invalid {
			p.errorf(t.Pos, "expected %s, found %s", tt, t.Type)
			p.invalid = true
			p.synchronize()
		}
		return t
	}
	return p.advance()
}

// synchronize advances past tokens until the parser reaches a safe
// restart point: a ';' (consumed, so the next statement starts clean), a
// '}', a token preceded by a newline, or EOF. Collapses the resync idea
// of a SynchronizeOn/SyncStatementStarters set down to the single
// boundary set this grammar's ASI handling already understands.
func (p *Parser) synchronize() {
	for {
		t := p.cur()
		if t.Type == token.EOF || t.Type == token.RBRACE || t.PrecededByNewline {
			return
		}
		if t.Type == token.SEMICOLON {
			p.advance()
			return
		}
		p.advance()
	}
}

// consumeSemicolon implements Automatic Semicolon Insertion: an explicit
// ';' is consumed if present; otherwise a statement boundary is accepted
// if the next token starts a new line, closes a block, or ends the file.
func (p *Parser) consumeSemicolon() {
	if p.invalid {
		return
	}
	if p.cur().Type == token.SEMICOLON {
		p.advance()
		return
	}
	t := p.cur()
	if t.Type == token.RBRACE || t.Type == token.EOF || t.PrecededByNewline {
		return
	}
	p.errorf(t.Pos, `expected ";"`)
}

// parseStatement parses one statement and turns any expect() failure
// encountered while doing so into an ast.InvalidStatement, so a malformed
// construct never reaches the code generator as a half-built node. The
// save/restore of p.invalid around the dispatch call keeps a failure
// local to the statement that caused it: a nested parseStatement call
// (an if's body, a block's members) resolves its own failures before
// returning, leaving an in-flight failure in an enclosing header intact.
func (p *Parser) parseStatement() ast.Statement {
	t := p.cur()
	outer := p.invalid
	p.invalid = false
	stmt := p.parseStatementDispatch()
	failed := p.invalid
	p.invalid = outer
	if failed {
		return &ast.InvalidStatement{Token: t}
	}
	return stmt
}

// declareName interns s and returns its intern.Name.
func (p *Parser) declareName(s string) intern.Name {
	return p.names.Intern(s)
}

func (p *Parser) openScope(name string) scope.ID {
	s := p.scopes.New(name, p.scope, true)
	p.scope = s
	return s
}

func (p *Parser) closeScope(parent scope.ID) {
	p.scopes.End(p.scope)
	p.scope = parent
}
