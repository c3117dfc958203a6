package codegen

import (
	"strings"
	"testing"

	"github.com/cwbudde/js2cpp/internal/intern"
	"github.com/cwbudde/js2cpp/internal/lexer"
	"github.com/cwbudde/js2cpp/internal/parser"
	"github.com/cwbudde/js2cpp/internal/scope"
	"github.com/cwbudde/js2cpp/internal/source"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	names := intern.New()
	scopes := scope.NewTable()
	l := lexer.New(source.New("t.js", src))
	p := parser.New(l, names, scopes)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	return New(names, scopes).Generate(prog)
}

func assertContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("output missing %q\ngot:\n%s", want, out)
	}
}

func TestTopLevelVarDeclaration(t *testing.T) {
	out := generate(t, "var x = 1;")
	assertContains(t, out, "value_ x;")
	assertContains(t, out, "x = value_(1);")
}

func TestTopLevelFunctionGetsStaticInstance(t *testing.T) {
	out := generate(t, "function add(a, b) { return a + b; }")
	assertContains(t, out, "class add_foc_ : public jsfunc_ {")
	assertContains(t, out, "struct add_locals_ {")
	assertContains(t, out, "add_foc_ add_func_;")
	assertContains(t, out, "value_ add(&add_func_);")
	assertContains(t, out, "locals_.a = (nargs_ > 0) ? __args_[0] : value_();")
}

func TestExternVarDeclaresGlobal(t *testing.T) {
	out := generate(t, "extern var alert;")
	assertContains(t, out, "extern value_ alert;")
}

func TestNestedFunctionGetsNlngField(t *testing.T) {
	out := generate(t, `
		function outer() {
			var x = 1;
			function inner() {
				return x;
			}
			return inner;
		}
	`)
	assertContains(t, out, "class inner_foc_ : public jsfunc_ {")
	assertContains(t, out, "outer_locals_& nlng1_;")
	assertContains(t, out, "locals_.inner = value_(new inner_foc_(&locals_));")
	assertContains(t, out, "return nlng1_.x;")
}

func TestAnonymousFunctionExpressionGetsSyntheticName(t *testing.T) {
	out := generate(t, "var f = function() { return 1; };")
	assertContains(t, out, "class lit1_foc_ : public jsfunc_ {")
	assertContains(t, out, "f = value_(new lit1_foc_())")
}

func TestBinaryAndStrictEquality(t *testing.T) {
	out := generate(t, "function f() { return (1 + 2) === 3; }")
	assertContains(t, out, "identical_(")
	assertContains(t, out, "value_(1) + value_(2)")
}

func TestCallThroughDotIsDotcall(t *testing.T) {
	out := generate(t, "function f(o) { return o.run(1); }")
	assertContains(t, out, `.dotcall("run", 1, value_(1))`)
}

func TestNewExpressionCallsConstructorThroughToFunc(t *testing.T) {
	out := generate(t, "function f(C) { return new C(1); }")
	assertContains(t, out, "value_(new obj_())")
	assertContains(t, out, "->call(")
}

func TestIfElseLowering(t *testing.T) {
	out := generate(t, "function f(x) { if (x) { return 1; } else { return 2; } }")
	assertContains(t, out, "if (locals_.x) {")
	assertContains(t, out, "} else {")
}

func TestClassicForLoopMovesInitBeforeLoop(t *testing.T) {
	out := generate(t, "function f() { for (var i = 0; i < 10; i++) { x(i); } }")
	assertContains(t, out, "locals_.i = value_(0);")
	assertContains(t, out, "for (; ")
}

func TestUnlabeledContinueStillRunsPostViaForIncrement(t *testing.T) {
	out := generate(t, "function f() { for (var i = 0; i < 5; i++) { if (i) { continue; } x(i); } }")
	assertContains(t, out, "postinc_()")
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "for (;") && !strings.Contains(line, "postinc_()") {
			t.Fatalf("post-increment must live in the for's own increment clause:\n%s", out)
		}
	}
}

func TestForInUsesKeysEnumerator(t *testing.T) {
	out := generate(t, "function f(o) { var k; for (k in o) { use(k); } }")
	assertContains(t, out, ".keys();")
	assertContains(t, out, ".at(value_(__i_")
}

func TestSwitchLowersToSelectorAndNativeSwitch(t *testing.T) {
	out := generate(t, `
		function f(x) {
			switch (x) {
			case 1:
				a();
				break;
			case 2:
				b();
			default:
				c();
			}
		}
	`)
	assertContains(t, out, "int __sel_")
	assertContains(t, out, "switch (__sel_")
	assertContains(t, out, "case 0:")
	assertContains(t, out, "case 1:")
	assertContains(t, out, "case 2:")
}

func TestLabeledBreakAndContinueEmitGoto(t *testing.T) {
	out := generate(t, `
		function f() {
			outer: for (var i = 0; i < 10; i++) {
				if (i) { break outer; }
				if (i) { continue outer; }
			}
		}
	`)
	assertContains(t, out, "goto outer_break_;")
	assertContains(t, out, "goto outer_continue_;")
	assertContains(t, out, "outer_break_:;")
	assertContains(t, out, "outer_continue_:;")
}

func TestTryCatchFinallyDuplicatesFinallyBlock(t *testing.T) {
	out := generate(t, `
		function f() {
			try {
				risky();
			} catch (e) {
				handle(e);
			} finally {
				cleanup();
			}
		}
	`)
	if n := strings.Count(out, "(cleanup).toFunc()->call("); n != 2 {
		t.Fatalf("finally block should appear twice (normal + rethrow path), got %d times:\n%s", n, out)
	}
	assertContains(t, out, "catch (value_ e) {")
	assertContains(t, out, "catch (...) {")
	assertContains(t, out, "throw;")
}

func TestStringLiteralEscapesPassThrough(t *testing.T) {
	out := generate(t, `var s = "a\nb";`)
	assertContains(t, out, `"a\nb"`)
}

func TestUnicodeEscapeBecomesHex(t *testing.T) {
	out := generate(t, `var s = "\u00e9";`)
	assertContains(t, out, `\x00e9`)
}
