// Package argenumerrors provides the error values returned by code that
// argenum generates. Generated parse functions import this package; user
// code may import it to inspect parse failures programmatically.
package argenumerrors

import "strings"

// ParseError is returned by a generated Parse function when the input text
// matches none of the enum's accepted spellings. It is the only error the
// generated surface can return.
type ParseError struct {
	// Enum is the name of the enum type that rejected the input.
	Enum string

	// Input is the rejected text.
	Input string

	// Values lists every accepted spelling in declaration order: each
	// member's canonical name followed by its aliases.
	Values []string
}

// NewParseError creates a [ParseError]. Generated code calls it with the
// enum's baked-in spelling table.
func NewParseError(enum, input string, values []string) *ParseError {
	return &ParseError{Enum: enum, Input: input, Values: values}
}

// Error enumerates every accepted spelling in declaration order.
func (e *ParseError) Error() string {
	return "valid values: " + strings.Join(e.Values, " ,")
}
