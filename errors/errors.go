package errors

import (
	"fmt"
	"strings"
)

// UnexpectedArgumentError indicates a token matched no option while positional
// arguments were disallowed. Suggestion, if present, is a close marker the user
// may have intended.
type UnexpectedArgumentError struct {
	Token      string
	Position   int
	Suggestion string
}

func (e *UnexpectedArgumentError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unexpected argument: %s (did you mean %q?)", e.Token, e.Suggestion)
	}
	return fmt.Sprintf("unexpected argument: %s", e.Token)
}

// InsufficientInputsError indicates a matched option needs more follow-on
// tokens than remain in the input.
type InsufficientInputsError struct {
	Option    string
	Token     string
	Expected  int
	Remaining int
}

func (e *InsufficientInputsError) Error() string {
	return fmt.Sprintf("%s expecting %d input(s), got %d", e.Token, e.Expected, e.Remaining)
}

// MissingOption describes one required option that was neither matched nor
// filled from its defaults.
type MissingOption struct {
	Name    string
	Markers []string
}

// MissingOptionsError collects every required option absent after scanning
// and default-filling.
type MissingOptionsError struct {
	Missing []MissingOption
}

func (e *MissingOptionsError) Error() string {
	return fmt.Sprintf("missing required option(s): %s", strings.Join(e.Names(), ", "))
}

// Names returns the names of the missing options in declaration order.
func (e *MissingOptionsError) Names() []string {
	names := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		names = append(names, m.Name)
	}
	return names
}

// ConversionError indicates a stored value could not be read as the requested type.
type ConversionError struct {
	Name  string
	Value string
	Type  string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("option %s: cannot convert %q to %s", e.Name, e.Value, e.Type)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// MissingValueError indicates a typed accessor was asked for an option with no
// recorded values.
type MissingValueError struct{ Name string }

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option %s has no value", e.Name)
}

// SpecFileError wraps a failure to read or decode an option declaration file.
type SpecFileError struct {
	Path string
	Err  error
}

func (e *SpecFileError) Error() string {
	return fmt.Sprintf("spec file %s: %v", e.Path, e.Err)
}

func (e *SpecFileError) Unwrap() error { return e.Err }

// Helper constructors
func NewUnexpectedArgument(token string, pos int, suggestion string) error {
	return &UnexpectedArgumentError{Token: token, Position: pos, Suggestion: suggestion}
}
func NewInsufficientInputs(option, token string, expected, remaining int) error {
	return &InsufficientInputsError{Option: option, Token: token, Expected: expected, Remaining: remaining}
}
func NewMissingOptions(missing []MissingOption) error {
	return &MissingOptionsError{Missing: missing}
}
func NewConversion(name, value, typ string, err error) error {
	return &ConversionError{Name: name, Value: value, Type: typ, Err: err}
}
func NewMissingValue(name string) error { return &MissingValueError{Name: name} }
func NewSpecFile(path string, err error) error {
	return &SpecFileError{Path: path, Err: err}
}
