// Package source provides a line-oriented, stackable text source for the
// lexer: the predefined preamble is pushed onto the stack ahead of the
// user's file, consumed first, and popped automatically when exhausted.
package source

import (
	"fmt"
	"strings"
)

// MaxIncludeDepth bounds the include stack: pushing beyond this many
// nested sources fails with ErrStackOverflow.
const MaxIncludeDepth = 32

// text is a single pushed source: its name (for diagnostics) and the lines
// it has been split into.
type text struct {
	name  string
	lines []string
	next  int // index of the next line to hand out
}

// ErrStackOverflow is returned by Push when the include stack is already
// at MaxIncludeDepth.
var ErrStackOverflow = fmt.Errorf("source: include stack overflow (max depth %d)", MaxIncludeDepth)

// Reader feeds lines to the lexer, one at a time, from a stack of pushed
// texts. The line on top of the stack is exhausted before any line beneath
// it is handed out.
type Reader struct {
	stack []*text
}

// New creates a Reader with a single source already pushed.
func New(name, content string) *Reader {
	r := &Reader{}
	r.Push(name, content) // the first push can never overflow
	return r
}

// Push inserts a new source above the current one; it will be fully
// consumed by NextLine before the reader returns to the source beneath it.
// Reports ErrStackOverflow if the stack is already at MaxIncludeDepth.
func (r *Reader) Push(name, content string) error {
	if len(r.stack) >= MaxIncludeDepth {
		return ErrStackOverflow
	}
	r.stack = append(r.stack, &text{
		name:  name,
		lines: splitLines(content),
	})
	return nil
}

// splitLines breaks content into lines without their terminators, the way
// a line-oriented reader would hand lines to a caller one at a time.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	// strings.Split on a trailing "\n" produces one extra empty element;
	// drop it so EOF is reached exactly at the end of real content.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// NextLine returns the next line of source text (without its line
// terminator) and the name of the source it came from. ok is false once
// every pushed source, at every stack level, is exhausted.
func (r *Reader) NextLine() (line string, name string, ok bool) {
	for len(r.stack) > 0 {
		top := r.stack[len(r.stack)-1]
		if top.next < len(top.lines) {
			line = top.lines[top.next]
			name = top.name
			top.next++
			return line, name, true
		}
		// current source exhausted: pop and continue with what's beneath
		r.stack = r.stack[:len(r.stack)-1]
	}
	return "", "", false
}

// Name returns the name of the source that is currently on top of the
// stack, or "" if the reader is exhausted.
func (r *Reader) Name() string {
	if len(r.stack) == 0 {
		return ""
	}
	return r.stack[len(r.stack)-1].name
}

// Depth reports how many sources are currently pushed.
func (r *Reader) Depth() int {
	return len(r.stack)
}
