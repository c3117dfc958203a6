// Package intern canonicalizes identifier text so that later comparisons
// can use integer equality instead of string comparison.
package intern

// Name is a canonical handle for an interned string. Two Names compare
// equal if and only if the strings they were interned from are equal.
type Name int

// invalid is a Name that a Table never hands out; Text returns "" for it.
const invalid Name = -1

// Table interns strings on first sight and hands back a stable Name for
// repeat occurrences of the same text.
type Table struct {
	byText []string
	lookup map[string]Name
}

// New creates an empty interning table.
func New() *Table {
	return &Table{
		lookup: make(map[string]Name),
	}
}

// Intern returns the canonical Name for s, creating one if s has not been
// seen before by this table.
func (t *Table) Intern(s string) Name {
	if n, ok := t.lookup[s]; ok {
		return n
	}
	n := Name(len(t.byText))
	t.byText = append(t.byText, s)
	t.lookup[s] = n
	return n
}

// Lookup reports the Name already assigned to s, if any, without interning
// it.
func (t *Table) Lookup(s string) (Name, bool) {
	n, ok := t.lookup[s]
	return n, ok
}

// Text returns the original string an interned Name was created from.
func (t *Table) Text(n Name) string {
	if n < 0 || int(n) >= len(t.byText) {
		return ""
	}
	return t.byText[n]
}

// Len reports how many distinct strings have been interned.
func (t *Table) Len() int {
	return len(t.byText)
}
