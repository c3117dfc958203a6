package ast

import (
	"strconv"
	"strings"

	"github.com/cwbudde/js2cpp/internal/scope"
	"github.com/cwbudde/js2cpp/internal/token"
)

func (*Identifier) expressionNode()      {}
func (*NumberLiteral) expressionNode()   {}
func (*StringLiteral) expressionNode()   {}
func (*RegexLiteral) expressionNode()    {}
func (*BoolLiteral) expressionNode()     {}
func (*NullLiteral) expressionNode()     {}
func (*ThisExpr) expressionNode()        {}
func (*ArrayLiteral) expressionNode()    {}
func (*FunctionLiteral) expressionNode() {}
func (*CallExpr) expressionNode()        {}
func (*NewExpr) expressionNode()         {}
func (*DotExpr) expressionNode()         {}
func (*IndexExpr) expressionNode()       {}
func (*UnaryExpr) expressionNode()       {}
func (*PostfixExpr) expressionNode()     {}
func (*BinaryExpr) expressionNode()      {}
func (*LogicalExpr) expressionNode()     {}
func (*AssignExpr) expressionNode()      {}
func (*ConditionalExpr) expressionNode() {}
func (*SequenceExpr) expressionNode()    {}
func (*InvalidExpr) expressionNode()     {}

// Identifier is a bare name reference (IDENT token).
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) TokenLiteral() string  { return i.Token.Literal }
func (i *Identifier) Pos() token.Position   { return i.Token.Pos }
func (i *Identifier) String() string        { return i.Name }

// NumberLiteral is a NUMBER token, kept as its original source text so the
// code generator can emit it unchanged.
type NumberLiteral struct {
	Token token.Token
	Value string
}

func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *NumberLiteral) String() string       { return n.Value }

// StringLiteral is a quoted string, with its raw (still-escaped) contents.
type StringLiteral struct {
	Token token.Token
	Raw   string
}

func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) Pos() token.Position  { return s.Token.Pos }
func (s *StringLiteral) String() string       { return strconv.Quote(s.Raw) }

// RegexLiteral is a /pattern/flags literal, stored verbatim.
type RegexLiteral struct {
	Token token.Token
	Raw   string
}

func (r *RegexLiteral) TokenLiteral() string { return r.Token.Literal }
func (r *RegexLiteral) Pos() token.Position  { return r.Token.Pos }
func (r *RegexLiteral) String() string       { return r.Raw }

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Token token.Token
	Value bool
}

func (b *BoolLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BoolLiteral) Pos() token.Position  { return b.Token.Pos }
func (b *BoolLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// NullLiteral is `null`.
type NullLiteral struct {
	Token token.Token
}

func (n *NullLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NullLiteral) Pos() token.Position  { return n.Token.Pos }
func (n *NullLiteral) String() string       { return "null" }

// ThisExpr is `this`.
type ThisExpr struct {
	Token token.Token
}

func (t *ThisExpr) TokenLiteral() string { return t.Token.Literal }
func (t *ThisExpr) Pos() token.Position  { return t.Token.Pos }
func (t *ThisExpr) String() string       { return "this" }

// ArrayLiteral is `[e1, e2, ...]`. A nil entry denotes an elided element
// (`[1,,3]`), which the original runtime's MakeArray_ treats as undefined.
type ArrayLiteral struct {
	Token    token.Token // the '['
	Elements []Expression
}

func (a *ArrayLiteral) TokenLiteral() string { return a.Token.Literal }
func (a *ArrayLiteral) Pos() token.Position  { return a.Token.Pos }
func (a *ArrayLiteral) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		if e != nil {
			parts[i] = e.String()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FunctionLiteral is a function expression: `function name?(params) {body}`.
// Name is empty for an anonymous function expression. Scope is the scope
// the parameters and body are declared in (scope.cpp's per-function
// aScope, one nesting level deeper than the enclosing scope).
type FunctionLiteral struct {
	Token  token.Token // `function`
	Name   string      // "" if anonymous
	Params []*Identifier
	Body   *BlockStatement
	Scope  scope.ID
}

func (f *FunctionLiteral) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionLiteral) Pos() token.Position  { return f.Token.Pos }
func (f *FunctionLiteral) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return "function " + f.Name + "(" + strings.Join(params, ", ") + ") " + f.Body.String()
}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Token    token.Token // the '('
	Callee   Expression
	Args     []Expression
}

func (c *CallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpr) Pos() token.Position  { return c.Callee.Pos() }
func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// NewExpr is `new Callee(args...)`.
type NewExpr struct {
	Token  token.Token // `new`
	Callee Expression
	Args   []Expression
}

func (n *NewExpr) TokenLiteral() string { return n.Token.Literal }
func (n *NewExpr) Pos() token.Position  { return n.Token.Pos }
func (n *NewExpr) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return "new " + n.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// DotExpr is `object.property` (AST.h's LHS/RHS accessors on a tDOT node).
type DotExpr struct {
	Token    token.Token // the '.'
	Object   Expression
	Property string
}

func (d *DotExpr) TokenLiteral() string { return d.Token.Literal }
func (d *DotExpr) Pos() token.Position  { return d.Object.Pos() }
func (d *DotExpr) String() string       { return d.Object.String() + "." + d.Property }

// IndexExpr is `object[index]`.
type IndexExpr struct {
	Token  token.Token // the '['
	Object Expression
	Index  Expression
}

func (x *IndexExpr) TokenLiteral() string { return x.Token.Literal }
func (x *IndexExpr) Pos() token.Position  { return x.Object.Pos() }
func (x *IndexExpr) String() string {
	return x.Object.String() + "[" + x.Index.String() + "]"
}

// UnaryExpr is a prefix operator: `!x`, `~x`, `+x`, `-x`, `typeof x`,
// `void x`, `delete x`, or prefix `++x`/`--x`.
type UnaryExpr struct {
	Token    token.Token // the operator
	Operator token.Type
	Operand  Expression
}

func (u *UnaryExpr) TokenLiteral() string { return u.Token.Literal }
func (u *UnaryExpr) Pos() token.Position  { return u.Token.Pos }
func (u *UnaryExpr) String() string {
	return "(" + u.Token.Literal + " " + u.Operand.String() + ")"
}

// PostfixExpr is `x++` or `x--`. Kept as its own production (rather than
// folded into UnaryExpr with a prefix flag, as the original AST did) so the
// code generator can dispatch directly to postinc_/postdec_ without
// inspecting a side flag.
type PostfixExpr struct {
	Token    token.Token // the operator
	Operator token.Type
	Operand  Expression
}

func (p *PostfixExpr) TokenLiteral() string { return p.Token.Literal }
func (p *PostfixExpr) Pos() token.Position  { return p.Operand.Pos() }
func (p *PostfixExpr) String() string {
	return "(" + p.Operand.String() + p.Token.Literal + ")"
}

// BinaryExpr covers every non-assignment, non-logical binary operator:
// arithmetic, relational, equality (including the identical_ forms ===
// and !==), bitwise, shift, `in`, and `instanceof`.
type BinaryExpr struct {
	Token    token.Token
	Operator token.Type
	Left     Expression
	Right    Expression
}

func (b *BinaryExpr) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryExpr) Pos() token.Position  { return b.Left.Pos() }
func (b *BinaryExpr) String() string {
	return "(" + b.Left.String() + " " + b.Token.Literal + " " + b.Right.String() + ")"
}

// LogicalExpr is `&&` or `||`, kept distinct from BinaryExpr because the
// code generator must preserve short-circuit evaluation rather than
// emitting both operands unconditionally.
type LogicalExpr struct {
	Token    token.Token
	Operator token.Type
	Left     Expression
	Right    Expression
}

func (l *LogicalExpr) TokenLiteral() string { return l.Token.Literal }
func (l *LogicalExpr) Pos() token.Position  { return l.Left.Pos() }
func (l *LogicalExpr) String() string {
	return "(" + l.Left.String() + " " + l.Token.Literal + " " + l.Right.String() + ")"
}

// AssignExpr is `lhs op rhs` for any of the 14 assignment operators.
// Target must be in reference position (Identifier, DotExpr, or
// IndexExpr); the parser enforces this.
type AssignExpr struct {
	Token    token.Token
	Operator token.Type
	Target   Expression
	Value    Expression
}

func (a *AssignExpr) TokenLiteral() string { return a.Token.Literal }
func (a *AssignExpr) Pos() token.Position  { return a.Target.Pos() }
func (a *AssignExpr) String() string {
	return "(" + a.Target.String() + " " + a.Token.Literal + " " + a.Value.String() + ")"
}

// ConditionalExpr is the ternary `cond ? then : else`.
type ConditionalExpr struct {
	Token token.Token // the '?'
	Cond  Expression
	Then  Expression
	Else  Expression
}

func (c *ConditionalExpr) TokenLiteral() string { return c.Token.Literal }
func (c *ConditionalExpr) Pos() token.Position  { return c.Cond.Pos() }
func (c *ConditionalExpr) String() string {
	return "(" + c.Cond.String() + " ? " + c.Then.String() + " : " + c.Else.String() + ")"
}

// SequenceExpr is the comma operator `e1, e2, ..., en`, evaluated left to
// right with the value of en.
type SequenceExpr struct {
	Token       token.Token
	Expressions []Expression
}

func (s *SequenceExpr) TokenLiteral() string { return s.Token.Literal }
func (s *SequenceExpr) Pos() token.Position  { return s.Expressions[0].Pos() }
func (s *SequenceExpr) String() string {
	parts := make([]string, len(s.Expressions))
	for i, e := range s.Expressions {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// InvalidExpr marks a span the parser could not make sense of; it lets
// parsing continue (and collect further diagnostics) past a syntax error
// instead of aborting at the first one.
type InvalidExpr struct {
	Token token.Token
}

func (e *InvalidExpr) TokenLiteral() string { return e.Token.Literal }
func (e *InvalidExpr) Pos() token.Position  { return e.Token.Pos }
func (e *InvalidExpr) String() string       { return "<invalid>" }
