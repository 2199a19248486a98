package querylang

import "fmt"

// ParseError is the only error kind the lexer/parser ever returns (spec.md
// §7, kind 1: "ParseError"). It is never thrown/panicked — always returned.
type ParseError struct {
	Message string
	Span    Span
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (at %d:%d)", e.Message, e.Span.Start, e.Span.End)
}

func errAt(span Span, format string, args ...interface{}) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Span: span}
}
