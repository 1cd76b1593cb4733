// Package trace rewrites the CPU instruction trace produced by the Ares
// emulator, replacing the raw address column with a memory map label.
//
// A trace line such as
//
//	CPU  ffffffffa40005f0  sw      t0{$f0f0f000},v0+$3dd0{$a003e300}
//
// becomes
//
//	CPU 1G.RSPD      0xa40005f0 sw      t0{$f0f0f000},v0+$3dd0{$a003e300}
//
// Only the address column is rewritten. Values inside the {$...} operand
// annotations may be data rather than addresses and are left alone, as is
// every line that does not have the trace shape. The output is not valid
// trace input, so annotating twice is not supported.
package trace

import (
	"fmt"
	"regexp"

	"github.com/codecat/go-libs/log"

	"github.com/codecat/n64addr/internal/hexaddr"
	"github.com/codecat/n64addr/internal/memorymap"
)

// LabelWidth is the minimum width of the label column. Longer labels are not
// truncated.
const LabelWidth = 12

// a three letter component, the 64-bit address column, and the rest of the line
var rTrace = regexp.MustCompile(`^([A-Z]{3})\s*([a-f0-9]{16})\s*(.*)$`)

// Annotate rewrites a single trace line. The second return value is false if
// the line was passed through unchanged.
//
// The pattern only admits exactly 16 lower-case hex digits, so parsing the
// address column cannot fail for a matching line. The parse error check is a
// guard against the pattern being widened and is not reachable today.
func Annotate(line string) (string, bool) {
	out, _, ok := annotate(line)
	return out, ok
}

func annotate(line string) (string, memorymap.Location, bool) {
	matches := rTrace.FindStringSubmatch(line)
	if len(matches) != 4 {
		return line, memorymap.Location{}, false
	}

	addr, err := hexaddr.ParseColumn(matches[2])
	if err != nil {
		log.Warn("Leaving line unannotated: %s", err.Error())
		return line, memorymap.Location{}, false
	}

	loc := memorymap.Resolve(addr)
	out := fmt.Sprintf("%s %-*s 0x%06x %s", matches[1], LabelWidth, loc.Label(), addr, matches[3])
	return out, loc, true
}
