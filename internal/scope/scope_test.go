package scope

import (
	"testing"

	"github.com/cwbudde/js2cpp/internal/intern"
)

func TestDeclareAndFindInSameScope(t *testing.T) {
	tab := NewTable()
	names := intern.New()

	global := tab.New("global", 0, false)
	tab.DeclareVariable(global, names.Intern("x"))

	b, owner, ok := tab.FindDeclaration(global, names.Intern("x"))
	if !ok || owner != global || b.Kind != Variable {
		t.Fatalf("FindDeclaration = %+v, %v, %v", b, owner, ok)
	}
}

func TestFindDeclarationWalksParentChain(t *testing.T) {
	tab := NewTable()
	names := intern.New()
	n := names.Intern("outerVar")

	global := tab.New("global", 0, false)
	tab.DeclareVariable(global, n)

	inner := tab.New("fn", global, true)
	b, owner, ok := tab.FindDeclaration(inner, n)
	if !ok || owner != global || b.Kind != Variable {
		t.Fatalf("FindDeclaration from inner = %+v, %v, %v", b, owner, ok)
	}
}

func TestReferenceWithoutDeclarationDoesNotResolve(t *testing.T) {
	tab := NewTable()
	names := intern.New()
	n := names.Intern("mystery")

	global := tab.New("global", 0, false)
	tab.Reference(global, n)

	if _, _, ok := tab.FindDeclaration(global, n); ok {
		t.Fatalf("FindDeclaration found a declaration for a pure reference")
	}
}

func TestEndReExportsDanglingReferenceToParent(t *testing.T) {
	tab := NewTable()
	names := intern.New()
	n := names.Intern("freeVar")

	global := tab.New("global", 0, false)
	inner := tab.New("fn", global, true)

	tab.Reference(inner, n)
	tab.End(inner)

	s := tab.Get(global)
	found := false
	for _, b := range s.Bindings() {
		if b.Name == n && b.Kind == Reference {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %q re-exported as a Reference into the parent scope", "freeVar")
	}
}

func TestEndDoesNotReExportResolvedNames(t *testing.T) {
	tab := NewTable()
	names := intern.New()
	n := names.Intern("localVar")

	global := tab.New("global", 0, false)
	inner := tab.New("fn", global, true)

	tab.DeclareVariable(inner, n)
	tab.End(inner)

	if _, _, ok := tab.FindDeclaration(global, n); ok {
		t.Fatalf("a declaration local to inner leaked into the parent scope")
	}
}

func TestAtDepth(t *testing.T) {
	tab := NewTable()
	global := tab.New("global", 0, false)
	outer := tab.New("outer", global, true)
	inner := tab.New("inner", outer, true)

	if got := tab.AtDepth(inner, 0); got != global {
		t.Errorf("AtDepth(0) = %v, want global scope", got)
	}
	if got := tab.AtDepth(inner, 1); got != outer {
		t.Errorf("AtDepth(1) = %v, want outer scope", got)
	}
	if got := tab.AtDepth(inner, 2); got != inner {
		t.Errorf("AtDepth(2) = %v, want inner scope", got)
	}
}

func TestDepthIncreasesWithNesting(t *testing.T) {
	tab := NewTable()
	global := tab.New("global", 0, false)
	inner := tab.New("fn", global, true)
	if tab.Get(global).Depth() != 0 {
		t.Errorf("global depth = %d, want 0", tab.Get(global).Depth())
	}
	if tab.Get(inner).Depth() != 1 {
		t.Errorf("inner depth = %d, want 1", tab.Get(inner).Depth())
	}
}
