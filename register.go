package commander

import (
	"fmt"
	"strings"
)

// registry holds the declared options in insertion order with name indexes.
type registry struct {
	options []Option
	byShort map[string]int // short name -> index into options
	byLong  map[string]int // long name -> index into options
}

func newRegistry() *registry {
	return &registry{
		options: make([]Option, 0),
		byShort: make(map[string]int),
		byLong:  make(map[string]int),
	}
}

// register validates the option and appends it.
// The registry is left unchanged on error.
func (r *registry) register(o Option) error {
	if !isValidOptionName(o.short) {
		return fmt.Errorf("%w: short name %q", ErrInvalidName, o.short)
	}
	if !isValidOptionName(o.long) {
		return fmt.Errorf("%w: long name %q", ErrInvalidName, o.long)
	}
	if !o.valueType.valid() {
		return fmt.Errorf("invalid value type %v for option %q", o.valueType, o.long)
	}

	if _, exists := r.byShort[o.short]; exists {
		return fmt.Errorf("%w: short name %q already registered", ErrDuplicateOption, o.short)
	}
	if _, exists := r.byLong[o.long]; exists {
		return fmt.Errorf("%w: long name %q already registered", ErrDuplicateOption, o.long)
	}

	r.byShort[o.short] = len(r.options)
	r.byLong[o.long] = len(r.options)
	r.options = append(r.options, o)
	return nil
}

// match finds the option addressed by a command-line name. The namespace
// signalled by the prefix is tried first, then the other one.
func (r *registry) match(name string, long bool) (Option, bool) {
	primary, secondary := r.byShort, r.byLong
	if long {
		primary, secondary = r.byLong, r.byShort
	}

	if i, ok := primary[name]; ok {
		return r.options[i], true
	}
	if i, ok := secondary[name]; ok {
		return r.options[i], true
	}
	return Option{}, false
}

// resolve finds an option by either name, short first.
func (r *registry) resolve(name string) (Option, bool) {
	return r.match(name, false)
}

// snapshot returns a copy of the registered options.
func (r *registry) snapshot() []Option {
	out := make([]Option, len(r.options))
	copy(out, r.options)
	return out
}

// isValidOptionName checks that a name can be written after a dash prefix.
// Letters, digits, underscores, dashes and dots are allowed; the first
// character must not be a dash.
func isValidOptionName(s string) bool {
	if len(s) == 0 || strings.HasPrefix(s, "-") {
		return false
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'

		if !(isLetter || isDigit || r == '_' || r == '-' || r == '.') {
			return false
		}
	}
	return true
}
