package ast

import (
	"testing"

	"github.com/cwbudde/js2cpp/internal/token"
)

func ident(name string) *Identifier {
	return &Identifier{Token: token.Token{Type: token.IDENT, Literal: name}, Name: name}
}

func num(lit string) *NumberLiteral {
	return &NumberLiteral{Token: token.Token{Type: token.NUMBER, Literal: lit}, Value: lit}
}

func TestProgramStringConcatenatesStatements(t *testing.T) {
	p := &Program{Statements: []Statement{
		&ExpressionStatement{Token: token.Token{}, Expr: ident("a")},
		&ExpressionStatement{Token: token.Token{}, Expr: ident("b")},
	}}
	if got, want := p.String(), "a;b;"; got != want {
		t.Errorf("Program.String() = %q, want %q", got, want)
	}
}

func TestBinaryExprString(t *testing.T) {
	b := &BinaryExpr{
		Token:    token.Token{Literal: "+"},
		Operator: token.PLUS,
		Left:     ident("x"),
		Right:    num("1"),
	}
	if got, want := b.String(), "(x + 1)"; got != want {
		t.Errorf("BinaryExpr.String() = %q, want %q", got, want)
	}
}

func TestIfStatementWithElse(t *testing.T) {
	s := &IfStatement{
		Token: token.Token{Literal: "if"},
		Cond:  ident("cond"),
		Then:  &ExpressionStatement{Expr: ident("a")},
		Else:  &ExpressionStatement{Expr: ident("b")},
	}
	want := "if (cond) a; else b;"
	if got := s.String(); got != want {
		t.Errorf("IfStatement.String() = %q, want %q", got, want)
	}
}

func TestForStatementOmitsAbsentClauses(t *testing.T) {
	f := &ForStatement{
		Token: token.Token{Literal: "for"},
		Body:  &BlockStatement{},
	}
	want := "for (; ; ) {}"
	if got := f.String(); got != want {
		t.Errorf("ForStatement.String() = %q, want %q", got, want)
	}
}

func TestSwitchStatementRendersCasesAndDefault(t *testing.T) {
	sw := &SwitchStatement{
		Token:        token.Token{Literal: "switch"},
		Discriminant: ident("x"),
		Cases: []CaseClause{
			{Test: num("1"), Statements: []Statement{&BreakStatement{Token: token.Token{}}}},
			{Test: nil, Statements: []Statement{&BreakStatement{Token: token.Token{}}}},
		},
	}
	want := "switch (x) {case 1: break;default: break;}"
	if got := sw.String(); got != want {
		t.Errorf("SwitchStatement.String() = %q, want %q", got, want)
	}
}

func TestFunctionLiteralString(t *testing.T) {
	fn := &FunctionLiteral{
		Token:  token.Token{Literal: "function"},
		Name:   "add",
		Params: []*Identifier{ident("a"), ident("b")},
		Body: &BlockStatement{Statements: []Statement{
			&ReturnStatement{Token: token.Token{Literal: "return"}, Value: &BinaryExpr{
				Token: token.Token{Literal: "+"}, Operator: token.PLUS, Left: ident("a"), Right: ident("b"),
			}},
		}},
	}
	want := "function add(a, b) {return (a + b);}"
	if got := fn.String(); got != want {
		t.Errorf("FunctionLiteral.String() = %q, want %q", got, want)
	}
}
