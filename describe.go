package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/kr/pretty"

	"github.com/codecat/n64addr/internal/memorymap"
)

var heading = color.New(color.FgCyan, color.Bold)

// describeAddress prints the short label followed by a dump of the resolved
// location.
func describeAddress(w io.Writer, addr uint32) {
	loc := memorymap.Resolve(addr)

	heading.Fprintf(w, "%s (%d)\n", loc.String(), loc.VirtualAddress)
	pretty.Fprintf(w, "%# v\n", loc)
}

// printMap prints every tier of the memory map.
func printMap(w io.Writer) {
	tiers := [][]memorymap.Entry{
		memorymap.Segments(),
		memorymap.Regions(),
		memorymap.Subregions(),
	}

	for i, tier := range tiers {
		if i > 0 {
			fmt.Fprintln(w)
		}
		head, rows, _ := strings.Cut(memorymap.SummaryTier(tier), "\n")
		heading.Fprintf(w, "%s\n", head)
		io.WriteString(w, rows)
	}
}
