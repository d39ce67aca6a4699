package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError is an error annotated with a location in the user's source code.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Unwrap returns the underlying error.
func (e *CodeError) Unwrap() error { return e.err }

// Pos returns the position where the error occurred. It may be invalid.
func (e *CodeError) Pos() token.Pos { return e.pos }

// End returns the end position of the error. It may be invalid.
func (e *CodeError) End() token.Pos { return e.end }

// Error implements the error interface. A valid position is rendered as a
// "file:line:col: " prefix.
func (e *CodeError) Error() string {
	if e.err == nil {
		return ""
	}

	msg := e.err.Error()
	if !e.pos.IsValid() || e.fset == nil {
		return msg
	}
	return FormatPosition(e.fset.Position(e.pos)) + ": " + msg
}

// Errorf creates a [CodeError] located at poser. A nil poser produces an
// error without a position. Wrapping another error is not allowed since the
// location would become ambiguous.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	e := &CodeError{fset: f.Fset}
	if poser != nil {
		e.pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			e.end = ender.End()
		}
	}

	e.err = fmt.Errorf(format, f.wrapPrintfArgs(args)...)
	return e
}
