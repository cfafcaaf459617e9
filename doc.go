// File: lixenwraith/commander/doc.go

// Package commander provides a declarative command-line option parser.
// Options are registered with a short name, a long name, a description and
// the type of value they expect; the process arguments are then parsed
// against that registry to obtain typed values and a generated help listing.
//
// Features:
//   - Chainable builder with a terminal Init step
//   - Typed values: none, string, integer and floating-point
//   - Lookup by either short or long name
//   - Iteration over matched options in command-line order
//   - Help text generated from the registry
//   - Struct decoding of matched values and TOML/YAML/JSON export
//
// Quick Start:
//
//	cmd, err := commander.NewBuilder().
//	    AddOption("v", "version", "Show the version of this application", commander.NoValue).
//	    AddOption("if", "input", "File to use as input", commander.String).
//	    AddOption("c", "count", "Amount of times to do something", commander.Number).
//	    Init()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if cmd.ArgCount() == 1 {
//	    fmt.Print(cmd.Help())
//	    return
//	}
//
//	input, ok := cmd.StringOption("input")
//	count, _ := cmd.NumberOption("c")
//
// Prefix Convention:
//
//	-short         short name (e.g. -v, -if)
//	-short value   value-bearing options take the next token as their value
//	--long value
//
// A name given with one prefix that only exists in the other namespace is
// still matched. Tokens that match no registered option are ignored,
// including name=value forms such as --input=a.txt.
//
// Errors:
// Registration fails with ErrDuplicateOption, ErrInvalidName or, after Init,
// ErrInvalidState. Parsing fails with ErrMissingValue or ErrInvalidValue,
// wrapped in an *OptionError naming the option and the offending text.
// Lookups of options that were not supplied are not errors; getters report
// them through their boolean result.
package commander
