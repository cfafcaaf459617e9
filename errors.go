// FILE: lixenwraith/commander/errors.go
package commander

import (
	"errors"
	"fmt"
)

// Registration errors
var (
	// ErrDuplicateOption is returned when a short or long name is already registered
	ErrDuplicateOption = errors.New("duplicate option")
	// ErrInvalidName is returned for empty or malformed option names
	ErrInvalidName = errors.New("invalid option name")
	// ErrInvalidState is returned when the registry is modified after Init
	ErrInvalidState = errors.New("registry already initialized")
)

// Parse errors
var (
	// ErrMissingValue is returned when a value-bearing option is the last token
	ErrMissingValue = errors.New("missing value")
	// ErrInvalidValue is returned when a value cannot be coerced to the option's type
	ErrInvalidValue = errors.New("invalid value")
)

// Post-parse errors
var (
	// ErrMissingOption is returned by Validate for required options that were not supplied
	ErrMissingOption = errors.New("missing required option")
	// ErrUnknownOption is returned when a name does not resolve to a registered option
	ErrUnknownOption = errors.New("unknown option")
	// ErrUnsupportedFormat is returned by Encode and Save for unknown output formats
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// OptionError describes a failure tied to a single option on the command line.
type OptionError struct {
	Option string // Name as written on the command line, without prefix
	Value  string // Offending value text, empty for ErrMissingValue
	Err    error  // One of the sentinel errors
}

func (e *OptionError) Error() string {
	if errors.Is(e.Err, ErrMissingValue) {
		return fmt.Sprintf("%v for option %q", e.Err, e.Option)
	}
	return fmt.Sprintf("%v %q for option %q", e.Err, e.Value, e.Option)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}
