package main

import (
	"io"
	"os"

	"github.com/codecat/go-libs/log"

	"github.com/codecat/n64addr/internal/hexaddr"
)

func main() {
	os.Exit(run(os.Args[1:], resultStream()))
}

// resultStream returns the process stdout for results and points os.Stdout at
// stderr, so that everything printed by the logger stays out of the results.
func resultStream() *os.File {
	out := os.Stdout
	os.Stdout = os.Stderr
	return out
}

// run executes the command line and returns the process exit code: 1 for a
// bad address or unreadable trace, 2 for a usage error.
func run(argv []string, stdout io.Writer) int {
	args, err := parseCLI(argv, stdout)
	if err != nil {
		log.Error("%s", err.Error())
		return 2
	}

	applyColor(args.Color)

	if args.Map {
		printMap(stdout)
		return 0
	}

	if args.Target == "" {
		log.Error("Expected a file name or an address as argument")
		return 2
	}

	if hexaddr.HasPrefix(args.Target) {
		addr, err := hexaddr.ParseLiteral(args.Target)
		if err != nil {
			return fail(err)
		}
		describeAddress(stdout, addr)
		return 0
	}

	stats, err := transformTrace(args.Target, stdout)
	if err != nil {
		return fail(err)
	}
	if args.Verbose {
		log.Info("%s: %d lines, %d annotated, %d passed through, %d unmapped",
			args.Target, stats.Lines, stats.Annotated, stats.Passed, stats.Unmapped)
	}
	return 0
}

func fail(err error) int {
	log.Error("%s", err.Error())
	return 1
}
