package memorymap

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Summary returns a single multiline string listing every entry of the map,
// one tier after another. Useful for reference.
func Summary() string {
	s := strings.Builder{}

	for i, tier := range [][]Entry{segments, regions, subregions} {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(SummaryTier(tier))
	}

	return s.String()
}

// SummaryTier lists the entries of a single tier, headed by the tier name.
func SummaryTier(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%ss\n", entries[0].Kind))
	for _, e := range entries {
		s.WriteString(fmt.Sprintf("%08x -> %08x\t%-4s\t%s\n", e.Start, e.End, e.Code, e.Name))
	}
	return s.String()
}

// Validate checks that every entry has a well ordered range and that, for the
// segment and region tiers, no two entries overlap. Subregions are allowed to
// overlap.
func Validate(entries []Entry) error {
	for i, e := range entries {
		if e.Start > e.End {
			return errors.Errorf("%s %s: start %08x is after end %08x", e.Kind, e.Code, e.Start, e.End)
		}

		if e.Kind == Subregion {
			continue
		}

		for _, o := range entries[:i] {
			if o.Kind != e.Kind {
				continue
			}
			if e.Start <= o.End && o.Start <= e.End {
				return errors.Errorf("%s %s overlaps %s %s", e.Kind, e.Code, o.Kind, o.Code)
			}
		}
	}
	return nil
}
