// Package hexaddr parses the hexadecimal address forms accepted on the
// command line and found in emulator traces.
package hexaddr

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoPrefix is returned by ParseLiteral when the text does not start with "0x".
var ErrNoPrefix = errors.New("address must start with 0x")

const prefix = "0x"

// HasPrefix returns true if the text looks like an address literal rather than
// a file name.
func HasPrefix(text string) bool {
	return strings.HasPrefix(text, prefix)
}

// ParseLiteral parses a "0x" prefixed 32-bit address. Digits may be of either
// case.
func ParseLiteral(text string) (uint32, error) {
	if !HasPrefix(text) {
		return 0, errors.Wrapf(ErrNoPrefix, "invalid address %q", text)
	}
	v, err := strconv.ParseUint(text[len(prefix):], 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid address %q", text)
	}
	return uint32(v), nil
}

// ParseColumn parses the 64-bit address column of a trace line and returns its
// low 32 bits. KSEG addresses appear sign-extended in the trace, so
// "ffffffffa40005f0" yields 0xa40005f0.
func ParseColumn(text string) (uint32, error) {
	v, err := strconv.ParseUint(text, 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid address column %q", text)
	}
	return uint32(v & 0xffffffff), nil
}
