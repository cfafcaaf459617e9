// File: lixenwraith/commander/builder.go
package commander

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// ValidatorFunc defines the signature for a function that can validate a parsed Commander.
// It runs after parsing succeeds and should return an error if validation fails.
type ValidatorFunc func(c *Commander) error

// Builder accumulates option declarations until Init finalizes them.
type Builder struct {
	reg         *registry
	args        []string
	logger      *log.Logger
	tagName     string
	err         error
	validators  []ValidatorFunc
	initialized bool
}

// NewBuilder creates a new option builder reading os.Args at Init time
func NewBuilder() *Builder {
	return &Builder{
		reg:        newRegistry(),
		logger:     log.New(io.Discard),
		tagName:    "option",
		validators: make([]ValidatorFunc, 0),
	}
}

// WithArgs sets the argument list to parse, program name first
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithLogger sets the logger used for debug tracing of the parse
func (b *Builder) WithLogger(logger *log.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithTagName sets the struct tag used by Scan
func (b *Builder) WithTagName(tagName string) *Builder {
	if tagName != "" {
		b.tagName = tagName
	}
	return b
}

// WithValidator adds a validation function that runs after parsing.
// Multiple validators are executed in the order they are added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Register declares an option and reports failures directly.
func (b *Builder) Register(short, long, description string, vt ValueType) error {
	if b.initialized {
		return fmt.Errorf("%w: cannot add option %q", ErrInvalidState, long)
	}
	return b.reg.register(NewOption(short, long, description, vt))
}

// AddOption declares an option. Failures are kept and returned by Init;
// the first one wins.
func (b *Builder) AddOption(short, long, description string, vt ValueType) *Builder {
	if err := b.Register(short, long, description, vt); err != nil && b.err == nil {
		b.err = err
	}
	return b
}

// OptionCount returns the number of registered options.
func (b *Builder) OptionCount() int {
	return len(b.reg.options)
}

// Options returns the registered options in registration order.
func (b *Builder) Options() []Option {
	return b.reg.snapshot()
}

// Err returns the first error recorded by AddOption, if any.
func (b *Builder) Err() error {
	return b.err
}

// Help renders the usage text for the registered options.
func (b *Builder) Help() string {
	return renderHelp(b.reg.options)
}

// Init finalizes the registry and parses the arguments.
// No options can be added after a successful Init. If parsing or a validator
// fails, the Builder stays open and Init can be retried, e.g. with WithArgs.
// Such failures are returned only, not recorded in Err.
func (b *Builder) Init() (*Commander, error) {
	if b.initialized {
		return nil, fmt.Errorf("%w: Init called twice", ErrInvalidState)
	}
	if b.err != nil {
		return nil, b.err
	}

	args := b.args
	if args == nil {
		args = os.Args
	}

	c := &Commander{
		reg:     b.reg,
		logger:  b.logger,
		tagName: b.tagName,
	}

	if err := c.Parse(args); err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(c); err != nil {
			return nil, fmt.Errorf("option validation failed: %w", err)
		}
	}

	b.initialized = true
	return c, nil
}

// MustInit is like Init but panics on error
func (b *Builder) MustInit() *Commander {
	c, err := b.Init()
	if err != nil {
		panic(fmt.Sprintf("commander init failed: %v", err))
	}
	return c
}
