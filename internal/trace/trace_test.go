package trace_test

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecat/n64addr/internal/trace"
)

const sampleLine = "CPU  ffffffffa40005f0  sw      t0{$f0f0f000},v0+$3dd0{$a003e300}"
const sampleAnnotated = "CPU 1G.RSPD      0xa40005f0 sw      t0{$f0f0f000},v0+$3dd0{$a003e300}"

func TestAnnotateSample(t *testing.T) {
	out, ok := trace.Annotate(sampleLine)
	require.True(t, ok)
	assert.Equal(t, sampleAnnotated, out)
}

func TestAnnotateShapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			"CPU  ffffffff80000400  addiu   sp,sp,$ffe8",
			"CPU 0R.RDRM      0x80000400 addiu   sp,sp,$ffe8",
		},
		{
			"CPU  ffffffffbfc00000  lui     t0,$bfc0",
			"CPU 1S.PIFR      0xbfc00000 lui     t0,$bfc0",
		},
		{
			"CPU  00000000000005f0  nop",
			"CPU UR.RDRM      0x0005f0 nop",
		},
		{
			// no gap between tag and address, no rest of line
			"RSPffffffffa4001000",
			"RSP 1G.RSPI      0xa4001000 ",
		},
		{
			// region missing
			"CPU  ffffffffa4a00000  lw      t1,0(t0)",
			"CPU 1?.RCPU      0xa4a00000 lw      t1,0(t0)",
		},
	}
	for _, tc := range tests {
		out, ok := trace.Annotate(tc.in)
		assert.True(t, ok, tc.in)
		assert.Equal(t, tc.want, out)
	}
}

func TestAnnotatePassThrough(t *testing.T) {
	lines := []string{
		"VI I/O: VI_CONTROL <= 00003303",
		"",
		"   ",
		"CPU  FFFFFFFFA40005F0  sw      t0",
		"CPU  ffffffffa40005f  sw      t0",
		"cpu  ffffffffa40005f0  sw      t0",
		"CPUS ffffffffa40005f0  sw      t0",
		"  CPU  ffffffffa40005f0  sw      t0",
		"PI I/O: PI_DRAM_ADDR <= 0x00000400",
	}
	for _, line := range lines {
		out, ok := trace.Annotate(line)
		assert.False(t, ok, line)
		assert.Equal(t, line, out)
	}
}

func TestAnnotatorCopy(t *testing.T) {
	in := strings.Join([]string{
		sampleLine,
		"VI I/O: VI_CONTROL <= 00003303",
		"CPU  ffffffffa4a00000  lw      t1,0(t0)",
		"",
	}, "\n")

	var out bytes.Buffer
	a := trace.NewAnnotator(&out)
	require.NoError(t, a.Copy(strings.NewReader(in)))

	want := strings.Join([]string{
		sampleAnnotated,
		"VI I/O: VI_CONTROL <= 00003303",
		"CPU 1?.RCPU      0xa4a00000 lw      t1,0(t0)",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())

	assert.Equal(t, trace.Stats{Lines: 3, Annotated: 2, Passed: 1, Unmapped: 1}, a.Stats())
}

func TestAnnotatorCopyNoTrailingNewline(t *testing.T) {
	var out bytes.Buffer
	a := trace.NewAnnotator(&out)
	require.NoError(t, a.Copy(strings.NewReader("one\r\ntwo")))
	assert.Equal(t, "one\ntwo\n", out.String())
}

func TestAnnotatorCopyLongLine(t *testing.T) {
	long := strings.Repeat("x", 2*1024*1024+17)
	in := sampleLine + "\n" + long + "\n" + sampleLine + "\n"

	var out bytes.Buffer
	a := trace.NewAnnotator(&out)
	require.NoError(t, a.Copy(strings.NewReader(in)))
	assert.Equal(t, sampleAnnotated+"\n"+long+"\n"+sampleAnnotated+"\n", out.String())
	assert.Equal(t, trace.Stats{Lines: 3, Annotated: 2, Passed: 1}, a.Stats())
}

func TestAnnotatorReadError(t *testing.T) {
	r := io.MultiReader(
		strings.NewReader(sampleLine+"\n"),
		iotest.ErrReader(io.ErrUnexpectedEOF),
	)

	var out bytes.Buffer
	a := trace.NewAnnotator(&out)
	err := a.Copy(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	// lines read before the failure are still written
	assert.Equal(t, sampleAnnotated+"\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, io.ErrShortWrite
}

func TestAnnotatorWriteError(t *testing.T) {
	a := trace.NewAnnotator(failingWriter{})
	err := a.Copy(strings.NewReader(sampleLine + "\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestAnnotatorStopsOnWriteError(t *testing.T) {
	in := strings.Repeat(sampleLine+"\n", 10000)

	a := trace.NewAnnotator(failingWriter{})
	err := a.Copy(strings.NewReader(in))
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrShortWrite)

	// the first full output buffer fails, well before the end of the input
	assert.Less(t, a.Stats().Lines, 1000)
}
