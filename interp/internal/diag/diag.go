package diag

import (
	"errors"
	"fmt"
)

// Code identifies a diagnostic class. Codes are stable and grouped by
// stage: GLE lexer, GPA parser, GRT runtime.
type Code string

const (
	// Lexer
	UnterminatedString Code = "GLE0001"
	TooManyTokens      Code = "GLE0002"
	LexemeTooLong      Code = "GLE0003"

	// Parser
	UnexpectedToken Code = "GPA0001"
	ExpectedIdent   Code = "GPA0002"
	ExpectedNumber  Code = "GPA0003"

	// Runtime
	UndeclaredVariable Code = "GRT0001"
	UninitializedVar   Code = "GRT0002"
	DivisionByZero     Code = "GRT0003"
	ModuloByZero       Code = "GRT0004"
	InputError         Code = "GRT0005"
)

// Diagnostic is an interpreter message with a code and an optional
// 1-based source line. Every stage returns it as its error type; the
// first one produced aborts the run.
type Diagnostic struct {
	Code Code
	Line int
	Msg  string
}

func (d Diagnostic) Error() string {
	if d.Line == 0 {
		return d.Msg
	}
	return fmt.Sprintf("linea %d: %s", d.Line, d.Msg)
}

// New builds a Diagnostic. Line 0 means "no position".
func New(code Code, line int, format string, args ...any) Diagnostic {
	return Diagnostic{Code: code, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// WithLine returns a copy carrying line when the diagnostic has none.
// Stages that know only a name (symtab) get positioned by their caller.
func (d Diagnostic) WithLine(line int) Diagnostic {
	if d.Line == 0 {
		d.Line = line
	}
	return d
}

// CodeOf extracts the diagnostic code from err, or "" when err is not a
// Diagnostic.
func CodeOf(err error) Code {
	var d Diagnostic
	if errors.As(err, &d) {
		return d.Code
	}
	return ""
}
