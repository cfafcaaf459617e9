// FILE: lixenwraith/commander/commander.go
package commander

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Commander is the finalized, read-only view over a registry and its parse result.
// A Commander must be obtained from Builder.Init or Quick; the zero value is not usable.
type Commander struct {
	reg     *registry
	logger  *log.Logger
	tagName string

	result *parseResult
	mutex  sync.RWMutex // Protects result across re-parses
}

// Parse parses args (program name first) and replaces the current result.
// The previous result is kept if parsing fails.
func (c *Commander) Parse(args []string) error {
	// Build the new result without holding the lock
	result, err := parse(c.reg, args, c.logger)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	c.result = result
	c.mutex.Unlock()

	c.logger.Debug("Parse complete", "tokens", result.argCount, "matched", len(result.arguments))
	return nil
}

// current returns the active parse result.
func (c *Commander) current() *parseResult {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.result
}

// ArgCount returns the number of raw tokens parsed, including the program name.
func (c *Commander) ArgCount() int {
	return c.current().argCount
}

// Executable returns the program name, the first raw token.
func (c *Commander) Executable() string {
	return c.current().executable
}

// OptionCount returns the number of registered options.
func (c *Commander) OptionCount() int {
	return len(c.reg.options)
}

// Options returns the registered options in registration order.
func (c *Commander) Options() []Option {
	return c.reg.snapshot()
}

// Help renders the usage text for the registered options.
func (c *Commander) Help() string {
	return renderHelp(c.reg.options)
}

// Get retrieves the last matched argument for an option by short or long name.
// The second return value is false if the name is unknown or was not supplied.
func (c *Commander) Get(name string) (Argument, bool) {
	opt, registered := c.reg.resolve(name)
	if !registered {
		return Argument{}, false
	}

	result := c.current()
	i, matched := result.latest[opt.long]
	if !matched {
		return Argument{}, false
	}
	return result.arguments[i], true
}

// HasOption reports whether the option was supplied on the command line.
func (c *Commander) HasOption(name string) bool {
	_, found := c.Get(name)
	return found
}

// StringOption returns the value of a String option.
func (c *Commander) StringOption(name string) (string, bool) {
	arg, found := c.Get(name)
	if !found {
		return "", false
	}
	return arg.StringValue()
}

// NumberOption returns the value of a Number option.
func (c *Commander) NumberOption(name string) (int64, bool) {
	arg, found := c.Get(name)
	if !found {
		return 0, false
	}
	return arg.NumberValue()
}

// FloatOption returns the value of a Float option.
func (c *Commander) FloatOption(name string) (float64, bool) {
	arg, found := c.Get(name)
	if !found {
		return 0.0, false
	}
	return arg.FloatValue()
}
