package trace

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Stats counts what happened to the lines seen by an Annotator.
type Stats struct {
	Lines     int
	Annotated int
	Passed    int

	// annotated lines where the segment or region could not be found
	Unmapped int
}

// Annotator streams a trace through Annotate, one output line per input line.
type Annotator struct {
	w     io.Writer
	stats Stats
}

// NewAnnotator returns an Annotator writing to w.
func NewAnnotator(w io.Writer) *Annotator {
	return &Annotator{w: w}
}

// Stats returns the counters accumulated over every call to Copy.
func (a *Annotator) Stats() Stats {
	return a.stats
}

// Copy reads r line by line and writes the annotated lines. Lines are not
// limited in length. Output written before a read error is flushed before the
// error is returned; a write error stops reading.
func (a *Annotator) Copy(r io.Reader) error {
	in := bufio.NewReader(r)
	out := bufio.NewWriter(a.w)

	for {
		text, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			out.Flush()
			return errors.Wrapf(err, "unable to read line %d", a.stats.Lines+1)
		}

		if text != "" {
			text = strings.TrimSuffix(text, "\n")
			text = strings.TrimSuffix(text, "\r")

			line, loc, ok := annotate(text)
			a.stats.Lines++
			if ok {
				a.stats.Annotated++
				if !loc.Mapped() {
					a.stats.Unmapped++
				}
			} else {
				a.stats.Passed++
			}

			if _, werr := out.WriteString(line + "\n"); werr != nil {
				return errors.Wrapf(werr, "unable to write line %d", a.stats.Lines)
			}
		}

		if err == io.EOF {
			break
		}
	}

	return errors.Wrap(out.Flush(), "unable to write output")
}
