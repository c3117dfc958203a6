package parser

import (
	"testing"

	"github.com/cwbudde/js2cpp/internal/ast"
	"github.com/cwbudde/js2cpp/internal/intern"
	"github.com/cwbudde/js2cpp/internal/lexer"
	"github.com/cwbudde/js2cpp/internal/scope"
	"github.com/cwbudde/js2cpp/internal/source"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	l := lexer.New(source.New("t.js", src))
	p := New(l, intern.New(), scope.NewTable())
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	return prog
}

func TestParseVarStatement(t *testing.T) {
	prog := parse(t, "var x = 1, y = 2;")
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	v, ok := prog.Statements[0].(*ast.VarStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.VarStatement", prog.Statements[0])
	}
	if len(v.Declarators) != 2 || v.Declarators[0].Name != "x" || v.Declarators[1].Name != "y" {
		t.Fatalf("declarators = %+v", v.Declarators)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	prog := parse(t, "1 + 2 * 3;")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	want := "(1 + (2 * 3))"
	if got := es.Expr.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	prog := parse(t, "a = b = 1;")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	want := "(a = (b = 1))"
	if got := es.Expr.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTernaryAndLogical(t *testing.T) {
	prog := parse(t, "a && b ? c : d;")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	want := "((a && b) ? c : d)"
	if got := es.Expr.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPostfixVsPrefix(t *testing.T) {
	prog := parse(t, "x++; ++x;")
	if _, ok := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.PostfixExpr); !ok {
		t.Errorf("first statement expr = %T, want *ast.PostfixExpr", prog.Statements[0].(*ast.ExpressionStatement).Expr)
	}
	if _, ok := prog.Statements[1].(*ast.ExpressionStatement).Expr.(*ast.UnaryExpr); !ok {
		t.Errorf("second statement expr = %T, want *ast.UnaryExpr", prog.Statements[1].(*ast.ExpressionStatement).Expr)
	}
}

func TestASIInsertsSemicolonAcrossNewline(t *testing.T) {
	prog := parse(t, "var x = 1\nvar y = 2\n")
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(prog.Statements))
	}
}

func TestNewExpressionBindsArgsToConstructor(t *testing.T) {
	prog := parse(t, "new Foo(1).bar();")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	call, ok := es.Expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expr = %T, want *ast.CallExpr", es.Expr)
	}
	dot, ok := call.Callee.(*ast.DotExpr)
	if !ok {
		t.Fatalf("callee = %T, want *ast.DotExpr", call.Callee)
	}
	newExpr, ok := dot.Object.(*ast.NewExpr)
	if !ok {
		t.Fatalf("object = %T, want *ast.NewExpr", dot.Object)
	}
	if len(newExpr.Args) != 1 {
		t.Fatalf("new args = %+v, want 1", newExpr.Args)
	}
}

func TestForInLoop(t *testing.T) {
	prog := parse(t, "for (var k in obj) { x(k); }")
	fi, ok := prog.Statements[0].(*ast.ForInStatement)
	if !ok {
		t.Fatalf("statement = %T, want *ast.ForInStatement", prog.Statements[0])
	}
	if !fi.Var || fi.Name != "k" {
		t.Fatalf("ForInStatement = %+v", fi)
	}
}

func TestClassicForLoop(t *testing.T) {
	prog := parse(t, "for (var i = 0; i < 10; i++) { x(i); }")
	f, ok := prog.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("statement = %T, want *ast.ForStatement", prog.Statements[0])
	}
	if f.Cond == nil || f.Post == nil || f.Init == nil {
		t.Fatalf("ForStatement missing a clause: %+v", f)
	}
}

func TestSwitchStatement(t *testing.T) {
	prog := parse(t, "switch (x) { case 1: y(); break; default: z(); }")
	sw, ok := prog.Statements[0].(*ast.SwitchStatement)
	if !ok {
		t.Fatalf("statement = %T, want *ast.SwitchStatement", prog.Statements[0])
	}
	if len(sw.Cases) != 2 || sw.Cases[1].Test != nil {
		t.Fatalf("cases = %+v", sw.Cases)
	}
}

func TestFunctionDeclarationOpensScope(t *testing.T) {
	prog := parse(t, "function add(a, b) { return a + b; }")
	fn, ok := prog.Statements[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("statement = %T, want *ast.FunctionDeclaration", prog.Statements[0])
	}
	if fn.Scope == prog.Scope {
		t.Fatalf("function scope should differ from the program's global scope")
	}
	if len(fn.Params) != 2 {
		t.Fatalf("params = %+v", fn.Params)
	}
}

func TestExternVarDeclaration(t *testing.T) {
	prog := parse(t, "extern var alert, confirm;")
	ev, ok := prog.Statements[0].(*ast.ExternVarStatement)
	if !ok {
		t.Fatalf("statement = %T, want *ast.ExternVarStatement", prog.Statements[0])
	}
	if len(ev.Names) != 2 {
		t.Fatalf("names = %+v", ev.Names)
	}
}

func TestTryCatchFinally(t *testing.T) {
	prog := parse(t, "try { risky(); } catch (e) { handle(e); } finally { cleanup(); }")
	ts, ok := prog.Statements[0].(*ast.TryStatement)
	if !ok {
		t.Fatalf("statement = %T, want *ast.TryStatement", prog.Statements[0])
	}
	if ts.Catch == nil || ts.Finally == nil {
		t.Fatalf("try statement missing catch or finally: %+v", ts)
	}
}

func TestMalformedStatementResynchronizesAndYieldsInvalidStatement(t *testing.T) {
	l := lexer.New(source.New("t.js", "var ; foo();"))
	p := New(l, intern.New(), scope.NewTable())
	prog := p.ParseProgram()

	if len(p.Errors()) == 0 {
		t.Fatalf("expected at least one diagnostic for the malformed var statement")
	}
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2 (resync should recover the second one)", len(prog.Statements))
	}
	if _, ok := prog.Statements[0].(*ast.InvalidStatement); !ok {
		t.Fatalf("first statement = %T, want *ast.InvalidStatement", prog.Statements[0])
	}
	es, ok := prog.Statements[1].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("second statement = %T, want *ast.ExpressionStatement", prog.Statements[1])
	}
	if _, ok := es.Expr.(*ast.CallExpr); !ok {
		t.Fatalf("second statement expr = %T, want *ast.CallExpr", es.Expr)
	}
}

func TestArrayLiteralWithElision(t *testing.T) {
	prog := parse(t, "var a = [1, , 3];")
	v := prog.Statements[0].(*ast.VarStatement)
	arr := v.Declarators[0].Init.(*ast.ArrayLiteral)
	if len(arr.Elements) != 3 || arr.Elements[1] != nil {
		t.Fatalf("elements = %+v", arr.Elements)
	}
}
