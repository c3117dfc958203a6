// Package scope implements the arena-indexed scope graph the parser
// builds while it walks the source: an arena of Scope records addressed
// by ID rather than by pointer, each holding the Bindings declared
// directly in it. Grounded on the original compiler's aScope / Binding
// classes (scope.cpp, trunk/scope.h), with pointers replaced by
// Table-relative indices.
package scope

import "github.com/cwbudde/js2cpp/internal/intern"

// ID addresses a Scope inside a Table. The zero value never denotes a real
// scope; Table.New always returns IDs starting at 1 so a zero ID can signal
// "no scope" in callers that embed one.
type ID int

// Kind classifies how a name came to be bound in a scope.
type Kind int

const (
	// Reference marks a name that was used in a scope before (or without)
	// ever being declared there. A Reference binding is provisional: if
	// the scope ends without the name being declared, it is re-exported
	// as a Reference to the parent so resolution continues up the chain.
	Reference Kind = iota
	Variable
	Function
	Extern
)

// IsDeclaration reports whether k represents an actual declaration rather
// than a dangling use (scope.cpp: Binding::isDeclaration).
func (k Kind) IsDeclaration() bool { return k != Reference }

// Binding records how and where a single name was bound in a scope.
type Binding struct {
	Name intern.Name
	Kind Kind
}

// Scope is one lexical scope: the names bound directly in it, and the
// scope (if any) it is nested inside.
type Scope struct {
	id       ID
	parent   ID
	hasUp    bool
	depth    int
	name     string
	order    []intern.Name // declaration order, for deterministic codegen output
	bindings map[intern.Name]Binding
}

// ID returns this scope's arena index.
func (s *Scope) ID() ID { return s.id }

// Depth reports nesting depth; the root (unparented) scope is depth 0.
func (s *Scope) Depth() int { return s.depth }

// Name is the scope's diagnostic name (e.g. a function name, or "global").
func (s *Scope) Name() string { return s.name }

// Bindings returns every binding declared directly in this scope, in
// declaration order.
func (s *Scope) Bindings() []Binding {
	out := make([]Binding, 0, len(s.order))
	for _, n := range s.order {
		out = append(out, s.bindings[n])
	}
	return out
}

// Table is the arena owning every Scope created during a parse.
type Table struct {
	scopes []*Scope
}

// NewTable creates an empty scope arena.
func NewTable() *Table {
	return &Table{}
}

// New creates a scope named name, nested inside parent. Pass hasParent as
// false to create the root (global) scope; parent is then ignored.
func (t *Table) New(name string, parent ID, hasParent bool) ID {
	depth := 0
	if hasParent {
		depth = t.get(parent).depth + 1
	}
	s := &Scope{
		name:     name,
		parent:   parent,
		hasUp:    hasParent,
		depth:    depth,
		bindings: make(map[intern.Name]Binding),
	}
	t.scopes = append(t.scopes, s)
	s.id = ID(len(t.scopes))
	return s.id
}

func (t *Table) get(id ID) *Scope {
	return t.scopes[id-1]
}

// Get returns the Scope for id.
func (t *Table) Get(id ID) *Scope {
	return t.get(id)
}

func (t *Table) bind(id ID, name intern.Name, k Kind) {
	s := t.get(id)
	if _, exists := s.bindings[name]; !exists {
		s.order = append(s.order, name)
	}
	s.bindings[name] = Binding{Name: name, Kind: k}
}

// DeclareVariable adds a `var` declaration to scope id.
func (t *Table) DeclareVariable(id ID, name intern.Name) {
	t.bind(id, name, Variable)
}

// DeclareFunction adds a named function declaration to scope id.
func (t *Table) DeclareFunction(id ID, name intern.Name) {
	t.bind(id, name, Function)
}

// DeclareExtern adds an `extern var` declaration to scope id.
func (t *Table) DeclareExtern(id ID, name intern.Name) {
	t.bind(id, name, Extern)
}

// Reference records a use of name in scope id. If the name is not already
// bound there, a provisional Reference binding is recorded so End can
// later decide whether it resolves locally or must bubble up to the
// parent (scope.cpp: aScope::Reference).
func (t *Table) Reference(id ID, name intern.Name) {
	s := t.get(id)
	if _, exists := s.bindings[name]; exists {
		return
	}
	s.order = append(s.order, name)
	s.bindings[name] = Binding{Name: name, Kind: Reference}
}

// FindDeclaration walks the scope chain starting at id, looking for a real
// declaration (not a dangling Reference) of name. It returns the binding,
// the scope that owns it, and whether one was found.
func (t *Table) FindDeclaration(id ID, name intern.Name) (Binding, ID, bool) {
	for {
		s := t.get(id)
		if b, ok := s.bindings[name]; ok && b.Kind.IsDeclaration() {
			return b, id, true
		}
		if !s.hasUp {
			return Binding{}, 0, false
		}
		id = s.parent
	}
}

// End closes scope id: every name referenced in it but never declared
// there is re-exported to the parent scope, so resolution keeps climbing
// the chain (scope.cpp: aScope::End). Call this once, when the parser
// finishes the construct that opened the scope.
func (t *Table) End(id ID) {
	s := t.get(id)
	if !s.hasUp {
		return
	}
	for _, name := range s.order {
		if s.bindings[name].Kind == Reference {
			t.Reference(s.parent, name)
		}
	}
}

// AtDepth returns the ancestor of id (or id itself) at nesting depth d,
// used by the code generator to address an enclosing activation record by
// its static depth (scope.cpp: aScope::AtDepth).
func (t *Table) AtDepth(id ID, d int) ID {
	for {
		s := t.get(id)
		if s.depth == d {
			return id
		}
		id = s.parent
	}
}

// Parent returns the scope id is nested in, and whether one exists.
func (t *Table) Parent(id ID) (ID, bool) {
	s := t.get(id)
	return s.parent, s.hasUp
}
