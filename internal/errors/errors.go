// Package errors formats compiler diagnostics with source context,
// generalizing an internal/errors package's DWScript-error rendering to
// the one-line wire format a batch CLI needs:
//
//	<file>(<line>,<col>) : error <code>: <msg>
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/js2cpp/internal/token"
)

// Code identifies a category of diagnostic. The diagnostic line prints a
// Code by its symbolic name (see String), not by its numeric value.
type Code int

const (
	// Lexical
	EOFInComment Code = iota + 1
	UnterminatedString
	UnterminatedRegex
	DigitAfterDot
	NoDigitsInExponent
	UnknownChar

	// Syntactic
	Expected

	// Resource
	ResourceExhausted
)

var codeNames = map[Code]string{
	EOFInComment:        "EOF_IN_COMMENT",
	UnterminatedString:  "UNTERMINATED_STRING",
	UnterminatedRegex:   "UNTERMINATED_REGEX",
	DigitAfterDot:       "DIGIT_AFTER_DOT",
	NoDigitsInExponent:  "NO_DIGITS_IN_EXP",
	UnknownChar:         "UNKNOWN_CHAR",
	Expected:            "E_EXPECTED",
	ResourceExhausted:   "RESOURCE_EXHAUSTED",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("CODE_%d", int(c))
}

// CompilerError is a single diagnostic with enough context to render a
// source-line-and-caret report for a developer, and a terse one-liner for
// the batch CLI contract.
type CompilerError struct {
	Code    Code
	Message string
	Pos     token.Position
	Source  string // full text of the file the error was found in
}

// New creates a CompilerError.
func New(code Code, pos token.Position, message, source string) *CompilerError {
	return &CompilerError{Code: code, Message: message, Pos: pos, Source: source}
}

// Error implements the error interface with the batch CLI's one-line wire
// format.
func (e *CompilerError) Error() string {
	return fmt.Sprintf("%s : error %s: %s", e.Pos, e.Code, e.Message)
}

// Format renders the diagnostic for interactive use: a header, the
// offending source line, and a caret under the error column. The CLI
// subcommands do not call it; `js2cpp parse` prints the one-line form via
// FormatErrors.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	sb.WriteString(e.Error())
	sb.WriteString("\n")

	line := e.sourceLine(e.Pos.Line)
	if line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(prefix)+maxInt(e.Pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(n int) string {
	if e.Source == "" || n < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FormatErrors joins multiple diagnostics for a single stderr write, one
// wire-format line per error.
func FormatErrors(errs []*CompilerError) string {
	var sb strings.Builder
	for _, e := range errs {
		sb.WriteString(e.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}
