package ox

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies interpreter failures.
type ErrorKind string

const (
	// LexError reports an unrecognized character in the source text.
	LexError ErrorKind = "LexError"
	// ParseError reports an unexpected token or malformed grammar.
	ParseError ErrorKind = "ParseError"
	// NameError reports an undefined variable, field, struct or module.
	NameError ErrorKind = "NameError"
	// TypeError reports an operator or call applied to incompatible value kinds.
	TypeError ErrorKind = "TypeError"
	// ArityError reports a wrong argument or field count.
	ArityError ErrorKind = "ArityError"
	// StackOverflowError reports that the configured recursion depth was exceeded.
	StackOverflowError ErrorKind = "StackOverflowError"
)

// StackFrame records one interpreter call frame for diagnostics.
type StackFrame struct {
	Function string
	Pos      Position
}

// Error is the structured failure result of lexing, parsing or evaluation.
type Error struct {
	Kind      ErrorKind
	Message   string
	Pos       Position
	CodeFrame string
	Frames    []StackFrame
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Kind, e.Message)
	if e.CodeFrame != "" {
		b.WriteString("\n")
		b.WriteString(e.CodeFrame)
	} else if e.Pos.Line > 0 {
		fmt.Fprintf(&b, " at %d:%d", e.Pos.Line, e.Pos.Column)
	}
	b.WriteString(formatStackFrames(e.Frames))
	return b.String()
}

// IsKind reports whether err is an interpreter Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func newLexErrorf(pos Position, format string, args ...any) error {
	return &Error{Kind: LexError, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func newParseErrorf(pos Position, format string, args ...any) error {
	return &Error{Kind: ParseError, Message: fmt.Sprintf(format, args...), Pos: pos}
}
