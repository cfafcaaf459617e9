// File: lixenwraith/commander/convenience.go
package commander

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Quick registers the given options and parses args in a single call.
// A nil args slice parses os.Args.
func Quick(args []string, options ...Option) (*Commander, error) {
	b := NewBuilder()
	if args != nil {
		b.WithArgs(args)
	}

	for _, o := range options {
		b.AddOption(o.short, o.long, o.description, o.valueType)
	}

	return b.Init()
}

// MustQuick is like Quick but panics on error
func MustQuick(options ...Option) *Commander {
	c, err := Quick(os.Args, options...)
	if err != nil {
		panic(fmt.Sprintf("commander initialization failed: %v", err))
	}
	return c
}

// Validate checks that all required options were supplied.
// Names may be short or long.
func (c *Commander) Validate(required ...string) error {
	var missing, unknown []string

	for _, name := range required {
		opt, registered := c.reg.resolve(name)
		if !registered {
			unknown = append(unknown, name)
			continue
		}
		if !c.HasOption(name) {
			missing = append(missing, "--"+opt.long)
		}
	}

	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownOption, strings.Join(unknown, ", "))
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingOption, strings.Join(missing, ", "))
	}

	return nil
}

// Debug returns a formatted string showing the registry and the matched options
func (c *Commander) Debug() string {
	result := c.current()

	var b strings.Builder
	b.WriteString("Commander Debug Info:\n")
	b.WriteString(fmt.Sprintf("Executable: %s\n", result.executable))
	b.WriteString(fmt.Sprintf("Tokens: %d\n", result.argCount))
	b.WriteString("Registered options:\n")

	for _, o := range c.reg.options {
		b.WriteString(fmt.Sprintf("  -%s/--%s (%s)\n", o.short, o.long, o.valueType))
	}

	b.WriteString("Matched options:\n")
	for i, arg := range result.arguments {
		b.WriteString(fmt.Sprintf("  %d: %s\n", i, arg))
	}

	longs := make([]string, 0, len(result.latest))
	for long := range result.latest {
		longs = append(longs, long)
	}
	sort.Strings(longs)
	b.WriteString(fmt.Sprintf("Distinct: %s\n", strings.Join(longs, ", ")))

	return b.String()
}
