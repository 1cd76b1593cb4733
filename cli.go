package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

type cliArgs struct {
	Target  string `arg:"" optional:"" help:"Address to describe (0xNNNNNNNN) or path of an Ares instruction trace to annotate."`
	Map     bool   `name:"map" help:"Print the memory map and exit."`
	Verbose bool   `short:"v" name:"verbose" help:"Log annotation statistics."`
	Color   string `name:"color" enum:"auto,always,never" default:"auto" help:"Colorize output (auto, always, never)."`
}

// parseCLI parses argv. Help output is written to stdout.
func parseCLI(argv []string, stdout io.Writer) (cliArgs, error) {
	var args cliArgs
	parser, err := kong.New(
		&args,
		kong.Name("n64addr"),
		kong.Description("Describe an N64 virtual address or annotate an Ares instruction trace."),
		kong.Writers(stdout, os.Stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:   true,
			FlagsLast: true,
		}),
	)
	if err != nil {
		return args, err
	}
	if _, err := parser.Parse(argv); err != nil {
		return args, err
	}
	return args, nil
}

// applyColor overrides the terminal detection done by the color package.
func applyColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}
