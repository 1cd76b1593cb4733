package main

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/codecat/n64addr/internal/trace"
)

// transformTrace annotates the trace at path and writes it to w.
func transformTrace(path string, w io.Writer) (trace.Stats, error) {
	fhIn, err := os.Open(path)
	if err != nil {
		return trace.Stats{}, errors.Wrap(err, "unable to make input stream")
	}
	defer fhIn.Close()

	a := trace.NewAnnotator(w)
	if err := a.Copy(fhIn); err != nil {
		return a.Stats(), errors.Wrapf(err, "unable to annotate %s", path)
	}
	return a.Stats(), nil
}
