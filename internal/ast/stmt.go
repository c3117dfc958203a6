package ast

import (
	"strings"

	"github.com/cwbudde/js2cpp/internal/scope"
	"github.com/cwbudde/js2cpp/internal/token"
)

func (*BlockStatement) statementNode()      {}
func (*VarStatement) statementNode()        {}
func (*ExternVarStatement) statementNode()  {}
func (*ExpressionStatement) statementNode() {}
func (*EmptyStatement) statementNode()      {}
func (*IfStatement) statementNode()         {}
func (*ForStatement) statementNode()        {}
func (*ForInStatement) statementNode()      {}
func (*WhileStatement) statementNode()      {}
func (*DoWhileStatement) statementNode()    {}
func (*BreakStatement) statementNode()      {}
func (*ContinueStatement) statementNode()   {}
func (*ReturnStatement) statementNode()     {}
func (*ThrowStatement) statementNode()      {}
func (*TryStatement) statementNode()        {}
func (*SwitchStatement) statementNode()     {}
func (*LabeledStatement) statementNode()    {}
func (*FunctionDeclaration) statementNode() {}
func (*InvalidStatement) statementNode()    {}

// BlockStatement is `{ stmts... }`.
type BlockStatement struct {
	Token      token.Token // the '{'
	Statements []Statement
}

func (b *BlockStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStatement) Pos() token.Position  { return b.Token.Pos }
func (b *BlockStatement) String() string {
	return "{" + joinStatements(b.Statements) + "}"
}

// Declarator is one `name` or `name = init` clause of a VarStatement.
type Declarator struct {
	Name string
	Init Expression // nil if no initializer
}

// VarStatement is `var a, b = 1, c;`, declaring every name in the
// enclosing scope (scope.cpp: aScope::DeclareVariable, one call per
// declarator).
type VarStatement struct {
	Token       token.Token // `var`
	Declarators []Declarator
}

func (v *VarStatement) TokenLiteral() string { return v.Token.Literal }
func (v *VarStatement) Pos() token.Position  { return v.Token.Pos }
func (v *VarStatement) String() string {
	parts := make([]string, len(v.Declarators))
	for i, d := range v.Declarators {
		if d.Init != nil {
			parts[i] = d.Name + " = " + d.Init.String()
		} else {
			parts[i] = d.Name
		}
	}
	return "var " + strings.Join(parts, ", ") + ";"
}

// ExternVarStatement is `extern var a, b;`: it declares names that are
// assumed to already exist in the target runtime rather than being
// defined by this file. The predefined preamble injected ahead of every
// user source is written entirely in this form.
type ExternVarStatement struct {
	Token token.Token // `extern`
	Names []string
}

func (e *ExternVarStatement) TokenLiteral() string { return e.Token.Literal }
func (e *ExternVarStatement) Pos() token.Position  { return e.Token.Pos }
func (e *ExternVarStatement) String() string {
	return "extern var " + strings.Join(e.Names, ", ") + ";"
}

// ExpressionStatement is an expression used for its side effect, `expr;`.
type ExpressionStatement struct {
	Token token.Token
	Expr  Expression
}

func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStatement) Pos() token.Position  { return e.Expr.Pos() }
func (e *ExpressionStatement) String() string       { return e.Expr.String() + ";" }

// EmptyStatement is a bare `;`.
type EmptyStatement struct {
	Token token.Token
}

func (e *EmptyStatement) TokenLiteral() string { return e.Token.Literal }
func (e *EmptyStatement) Pos() token.Position  { return e.Token.Pos }
func (e *EmptyStatement) String() string       { return ";" }

// IfStatement is `if (cond) then else? else`.
type IfStatement struct {
	Token token.Token // `if`
	Cond  Expression
	Then  Statement
	Else  Statement // nil if absent
}

func (i *IfStatement) TokenLiteral() string { return i.Token.Literal }
func (i *IfStatement) Pos() token.Position  { return i.Token.Pos }
func (i *IfStatement) String() string {
	s := "if (" + i.Cond.String() + ") " + i.Then.String()
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}

// ForStatement is the C-style `for (init; cond; post) body`. Any of Init,
// Cond, Post may be nil.
type ForStatement struct {
	Token token.Token // `for`
	Init  Node        // *VarStatement or Expression, or nil
	Cond  Expression  // or nil
	Post  Expression  // or nil
	Body  Statement
}

func (f *ForStatement) TokenLiteral() string { return f.Token.Literal }
func (f *ForStatement) Pos() token.Position  { return f.Token.Pos }
func (f *ForStatement) String() string {
	init, cond, post := "", "", ""
	if f.Init != nil {
		init = f.Init.String()
	}
	if f.Cond != nil {
		cond = f.Cond.String()
	}
	if f.Post != nil {
		post = f.Post.String()
	}
	return "for (" + init + "; " + cond + "; " + post + ") " + f.Body.String()
}

// ForInStatement is `for (x in e) body` / `for (var x in e) body`.
type ForInStatement struct {
	Token     token.Token // `for`
	Var       bool        // true if the loop variable was declared with `var`
	Name      string
	Object    Expression
	Body      Statement
}

func (f *ForInStatement) TokenLiteral() string { return f.Token.Literal }
func (f *ForInStatement) Pos() token.Position  { return f.Token.Pos }
func (f *ForInStatement) String() string {
	decl := f.Name
	if f.Var {
		decl = "var " + decl
	}
	return "for (" + decl + " in " + f.Object.String() + ") " + f.Body.String()
}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	Token token.Token
	Cond  Expression
	Body  Statement
}

func (w *WhileStatement) TokenLiteral() string { return w.Token.Literal }
func (w *WhileStatement) Pos() token.Position  { return w.Token.Pos }
func (w *WhileStatement) String() string {
	return "while (" + w.Cond.String() + ") " + w.Body.String()
}

// DoWhileStatement is `do body while (cond);`.
type DoWhileStatement struct {
	Token token.Token
	Body  Statement
	Cond  Expression
}

func (d *DoWhileStatement) TokenLiteral() string { return d.Token.Literal }
func (d *DoWhileStatement) Pos() token.Position  { return d.Token.Pos }
func (d *DoWhileStatement) String() string {
	return "do " + d.Body.String() + " while (" + d.Cond.String() + ");"
}

// BreakStatement is `break;` or `break label;`.
type BreakStatement struct {
	Token token.Token
	Label string // "" if unlabeled
}

func (b *BreakStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BreakStatement) Pos() token.Position  { return b.Token.Pos }
func (b *BreakStatement) String() string {
	if b.Label != "" {
		return "break " + b.Label + ";"
	}
	return "break;"
}

// ContinueStatement is `continue;` or `continue label;`.
type ContinueStatement struct {
	Token token.Token
	Label string // "" if unlabeled
}

func (c *ContinueStatement) TokenLiteral() string { return c.Token.Literal }
func (c *ContinueStatement) Pos() token.Position  { return c.Token.Pos }
func (c *ContinueStatement) String() string {
	if c.Label != "" {
		return "continue " + c.Label + ";"
	}
	return "continue;"
}

// ReturnStatement is `return;` or `return expr;`.
type ReturnStatement struct {
	Token token.Token
	Value Expression // nil if bare `return;`
}

func (r *ReturnStatement) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStatement) Pos() token.Position  { return r.Token.Pos }
func (r *ReturnStatement) String() string {
	if r.Value != nil {
		return "return " + r.Value.String() + ";"
	}
	return "return;"
}

// ThrowStatement is `throw expr;`.
type ThrowStatement struct {
	Token token.Token
	Value Expression
}

func (t *ThrowStatement) TokenLiteral() string { return t.Token.Literal }
func (t *ThrowStatement) Pos() token.Position  { return t.Token.Pos }
func (t *ThrowStatement) String() string       { return "throw " + t.Value.String() + ";" }

// CatchClause is the `catch (name) { body }` part of a TryStatement.
type CatchClause struct {
	Param string
	Body  *BlockStatement
}

// TryStatement is `try {..} catch (e) {..}? finally {..}?`. At least one
// of Catch or Finally is present.
type TryStatement struct {
	Token   token.Token // `try`
	Block   *BlockStatement
	Catch   *CatchClause     // nil if absent
	Finally *BlockStatement // nil if absent
}

func (t *TryStatement) TokenLiteral() string { return t.Token.Literal }
func (t *TryStatement) Pos() token.Position  { return t.Token.Pos }
func (t *TryStatement) String() string {
	s := "try " + t.Block.String()
	if t.Catch != nil {
		s += " catch (" + t.Catch.Param + ") " + t.Catch.Body.String()
	}
	if t.Finally != nil {
		s += " finally " + t.Finally.String()
	}
	return s
}

// CaseClause is one `case expr: stmts...` or `default: stmts...` arm of a
// SwitchStatement. Test is nil for the default arm.
type CaseClause struct {
	Test       Expression
	Statements []Statement
}

// SwitchStatement is `switch (disc) { case ... default? ... }`, matched by
// identical_ comparison against each case's Test, generalizing
// codegen.cpp's ExprValue tIDENTITY handling to a native switch.
type SwitchStatement struct {
	Token       token.Token // `switch`
	Discriminant Expression
	Cases       []CaseClause
}

func (s *SwitchStatement) TokenLiteral() string { return s.Token.Literal }
func (s *SwitchStatement) Pos() token.Position  { return s.Token.Pos }
func (s *SwitchStatement) String() string {
	var sb strings.Builder
	sb.WriteString("switch (")
	sb.WriteString(s.Discriminant.String())
	sb.WriteString(") {")
	for _, c := range s.Cases {
		if c.Test != nil {
			sb.WriteString("case " + c.Test.String() + ": ")
		} else {
			sb.WriteString("default: ")
		}
		sb.WriteString(joinStatements(c.Statements))
	}
	sb.WriteString("}")
	return sb.String()
}

// LabeledStatement is `label: stmt`.
type LabeledStatement struct {
	Token token.Token // the label identifier
	Label string
	Body  Statement
}

func (l *LabeledStatement) TokenLiteral() string { return l.Token.Literal }
func (l *LabeledStatement) Pos() token.Position  { return l.Token.Pos }
func (l *LabeledStatement) String() string       { return l.Label + ": " + l.Body.String() }

// FunctionDeclaration is a named function statement, `function f(...) {}`,
// as distinct from a FunctionLiteral used in expression position: the
// original compiler treats the two differently at the declaration site
// (scope.cpp: DeclareFunction vs. DeclareLiteralFunction).
type FunctionDeclaration struct {
	Token  token.Token
	Name   string
	Params []*Identifier
	Body   *BlockStatement
	Scope  scope.ID
}

func (f *FunctionDeclaration) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionDeclaration) Pos() token.Position  { return f.Token.Pos }
func (f *FunctionDeclaration) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return "function " + f.Name + "(" + strings.Join(params, ", ") + ") " + f.Body.String()
}

// InvalidStatement marks a span the parser could not parse as a
// statement; parsing resumes at the next statement boundary.
type InvalidStatement struct {
	Token token.Token
}

func (i *InvalidStatement) TokenLiteral() string { return i.Token.Literal }
func (i *InvalidStatement) Pos() token.Position  { return i.Token.Pos }
func (i *InvalidStatement) String() string       { return "<invalid>;" }
