// FILE: lixenwraith/commander/option.go
package commander

import (
	"fmt"
	"strconv"
)

// ValueType describes what, if anything, must follow an option on the command line.
type ValueType int

const (
	// NoValue options are flags; their presence is the value
	NoValue ValueType = iota
	// String options take the next token verbatim
	String
	// Number options take the next token as a base-10 integer
	Number
	// Float options take the next token as a floating-point number
	Float
)

// String returns the lowercase name of the value type.
func (t ValueType) String() string {
	switch t {
	case NoValue:
		return "no value"
	case String:
		return "string"
	case Number:
		return "number"
	case Float:
		return "float"
	default:
		return "ValueType(" + strconv.Itoa(int(t)) + ")"
	}
}

// valid reports whether t is one of the declared value types.
func (t ValueType) valid() bool {
	return t >= NoValue && t <= Float
}

// Option is the immutable description of one registrable option.
type Option struct {
	short       string
	long        string
	description string
	valueType   ValueType
}

// NewOption creates an Option for use with Quick.
// Names are validated when the option is registered.
func NewOption(short, long, description string, vt ValueType) Option {
	return Option{
		short:       short,
		long:        long,
		description: description,
		valueType:   vt,
	}
}

// Short returns the short name.
func (o Option) Short() string { return o.short }

// Long returns the long name.
func (o Option) Long() string { return o.long }

// Description returns the help text.
func (o Option) Description() string { return o.description }

// Type returns the value type.
func (o Option) Type() ValueType { return o.valueType }

// TakesValue reports whether the option consumes the following token.
func (o Option) TakesValue() bool {
	return o.valueType != NoValue
}

// Argument is one option as found on the command line, with its coerced value.
// The payload kind always agrees with the option's value type.
type Argument struct {
	option Option
	value  any // nil, string, int64 or float64
}

// Option returns the registered option this argument satisfies.
func (a Argument) Option() Option {
	return a.option
}

// Value returns the raw payload: nil for NoValue, otherwise string, int64 or float64.
func (a Argument) Value() any {
	return a.value
}

// StringValue returns the payload of a String argument.
func (a Argument) StringValue() (string, bool) {
	s, ok := a.value.(string)
	return s, ok && a.option.valueType == String
}

// NumberValue returns the payload of a Number argument.
func (a Argument) NumberValue() (int64, bool) {
	n, ok := a.value.(int64)
	return n, ok && a.option.valueType == Number
}

// FloatValue returns the payload of a Float argument.
func (a Argument) FloatValue() (float64, bool) {
	f, ok := a.value.(float64)
	return f, ok && a.option.valueType == Float
}

func (a Argument) String() string {
	if a.value == nil {
		return "--" + a.option.long
	}
	return fmt.Sprintf("--%s=%v", a.option.long, a.value)
}
