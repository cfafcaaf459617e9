// FILE: lixenwraith/commander/parser.go
package commander

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// parseResult is the outcome of one parse pass.
type parseResult struct {
	executable string
	argCount   int
	arguments  []Argument     // encounter order
	latest     map[string]int // long name -> index of last occurrence
}

// parse scans args left to right against the registry. args[0] is the
// program name and is never matched.
func parse(reg *registry, args []string, logger *log.Logger) (*parseResult, error) {
	result := &parseResult{
		argCount:  len(args),
		arguments: make([]Argument, 0),
		latest:    make(map[string]int),
	}
	if len(args) == 0 {
		return result, nil
	}
	result.executable = args[0]

	i := 1
	for i < len(args) {
		arg := args[i]

		name, long, ok := splitPrefix(arg)
		if !ok {
			logger.Debug("Ignoring non-option token", "token", arg, "position", i)
			i++
			continue
		}

		opt, matched := reg.match(name, long)
		if !matched {
			logger.Debug("Ignoring unregistered option", "token", arg, "position", i)
			i++
			continue
		}

		var raw string
		if opt.TakesValue() {
			if i+1 >= len(args) {
				return nil, &OptionError{Option: name, Err: ErrMissingValue}
			}
			raw = args[i+1]
			i += 2
		} else {
			i++
		}

		value, err := coerce(opt.valueType, raw)
		if err != nil {
			return nil, &OptionError{Option: name, Value: raw, Err: ErrInvalidValue}
		}

		logger.Debug("Matched option", "option", opt.long, "type", opt.valueType, "value", value)
		result.latest[opt.long] = len(result.arguments)
		result.arguments = append(result.arguments, Argument{option: opt, value: value})
	}

	return result, nil
}

// splitPrefix strips the option prefix. long reports a "--" prefix.
// Tokens without a prefix, "-" and "--" are not options.
func splitPrefix(arg string) (name string, long bool, ok bool) {
	switch {
	case strings.HasPrefix(arg, "--"):
		name, long = arg[2:], true
	case strings.HasPrefix(arg, "-"):
		name = arg[1:]
	default:
		return "", false, false
	}
	if name == "" {
		return "", false, false
	}
	return name, long, true
}

// coerce converts the raw value text to the payload for vt.
func coerce(vt ValueType, raw string) (any, error) {
	switch vt {
	case String:
		return raw, nil
	case Number:
		return strconv.ParseInt(raw, 10, 64)
	case Float:
		return strconv.ParseFloat(raw, 64)
	default:
		return nil, nil
	}
}
