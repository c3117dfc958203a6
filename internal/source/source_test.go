package source

import "testing"

func TestNextLineBasic(t *testing.T) {
	r := New("main.js", "var x = 1;\nvar y = 2;\n")

	line, name, ok := r.NextLine()
	if !ok || line != "var x = 1;" || name != "main.js" {
		t.Fatalf("first NextLine() = (%q, %q, %v)", line, name, ok)
	}

	line, _, ok = r.NextLine()
	if !ok || line != "var y = 2;" {
		t.Fatalf("second NextLine() = (%q, _, %v)", line, ok)
	}

	if _, _, ok := r.NextLine(); ok {
		t.Fatalf("NextLine() after exhaustion returned ok=true")
	}
}

func TestPushConsumedBeforeUnderlyingSource(t *testing.T) {
	r := New("user.js", "alert(1);\n")
	if err := r.Push("preamble.js", "extern var alert;\n"); err != nil {
		t.Fatalf("Push: %v", err)
	}

	line, name, ok := r.NextLine()
	if !ok || name != "preamble.js" || line != "extern var alert;" {
		t.Fatalf("expected preamble line first, got (%q, %q, %v)", line, name, ok)
	}

	line, name, ok = r.NextLine()
	if !ok || name != "user.js" || line != "alert(1);" {
		t.Fatalf("expected user line after preamble exhausted, got (%q, %q, %v)", line, name, ok)
	}

	if _, _, ok := r.NextLine(); ok {
		t.Fatalf("expected exhaustion after both sources consumed")
	}
}

func TestPushStackOverflow(t *testing.T) {
	r := New("root.js", "")
	for i := 0; i < MaxIncludeDepth-1; i++ {
		if err := r.Push("inc.js", ""); err != nil {
			t.Fatalf("unexpected overflow at depth %d: %v", i, err)
		}
	}
	if err := r.Push("one-too-many.js", ""); err != ErrStackOverflow {
		t.Fatalf("Push at depth %d = %v, want ErrStackOverflow", MaxIncludeDepth, err)
	}
}

func TestSplitLinesNoTrailingEmpty(t *testing.T) {
	r := New("x.js", "a\nb\nc")
	var lines []string
	for {
		line, _, ok := r.NextLine()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	want := []string{"a", "b", "c"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %v, want %v", len(lines), lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
