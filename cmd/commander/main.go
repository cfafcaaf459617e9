// File: lixenwraith/commander/cmd/commander/main.go
// Demo program for the commander package
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/lixenwraith/commander"
)

// Settings receives the matched options through Scan
type Settings struct {
	Input   string  `option:"input"`
	Count   int     `option:"count"`
	Balance float64 `option:"balance"`
	Verbose bool    `option:"debug"`
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "commander",
		Level:  log.InfoLevel,
	})

	// -d is checked up front so the parse itself can be traced
	for _, arg := range os.Args[1:] {
		if arg == "-d" || arg == "--debug" {
			logger.SetLevel(log.DebugLevel)
		}
	}

	cmd, err := commander.NewBuilder().
		WithLogger(logger).
		AddOption("v", "version", "Show the version of this application", commander.NoValue).
		AddOption("h", "help", "Show this help", commander.NoValue).
		AddOption("d", "debug", "Trace argument parsing", commander.NoValue).
		AddOption("if", "input", "File to use as input", commander.String).
		AddOption("c", "count", "Amount of times to do something", commander.Number).
		AddOption("b", "balance", "Amount of money in your bank account", commander.Float).
		AddOption("f", "format", "Print matched options as toml, yaml or json", commander.String).
		Init()
	if err != nil {
		logger.Error("Failed to parse arguments", "error", err)
		os.Exit(1)
	}

	if cmd.ArgCount() == 1 || cmd.HasOption("help") {
		fmt.Print(cmd.Help())
		return
	}

	if cmd.HasOption("version") {
		fmt.Println("commander demo 0.1.0")
	}

	if format, ok := cmd.StringOption("format"); ok {
		if err := cmd.Encode(os.Stdout, format); err != nil {
			logger.Error("Failed to encode options", "format", format, "error", err)
			os.Exit(1)
		}
		return
	}

	name := color.New(color.FgCyan, color.Bold)
	for arg := range cmd.Arguments() {
		opt := arg.Option()
		name.Printf("--%s", opt.Long())
		if opt.TakesValue() {
			fmt.Printf(" = %s", color.GreenString("%v", arg.Value()))
		}
		fmt.Println()
	}

	var settings Settings
	if err := cmd.Scan(&settings); err != nil {
		logger.Error("Failed to scan options", "error", err)
		os.Exit(1)
	}
	logger.Debug("Scanned settings", "settings", fmt.Sprintf("%+v", settings))
}
