package transform

import (
	"fmt"
	"io"
	"strings"
)

// numberWidth is the numbering field width. Numbers are right-aligned with
// space padding; wider numbers grow the field instead of being truncated.
const numberWidth = 6

// WriteError marks a failure of the destination stream. Unlike a source
// failure it is fatal to the whole run: once the destination is gone there
// is no point in opening further sources.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "write output: " + e.Err.Error() }

func (e *WriteError) Unwrap() error { return e.Err }

// LineSource is the stream contract consumed by a Transformer: a
// scanner-shaped sequence of lines without their terminators.
type LineSource interface {
	Next() bool
	Text() string
	Err() error
}

// Transformer owns the mutable scan state of one source: the next line
// number and whether the previous considered line was blank. Create a
// fresh Transformer per source: numbering restarts at 1 for every file,
// and no state crosses source boundaries.
type Transformer struct {
	opts      Options
	lineNum   int
	prevBlank bool
}

// New creates a transformer with a fresh state for the given options.
func New(opts Options) *Transformer {
	return &Transformer{opts: opts, lineNum: 1}
}

// WriteLine pushes one raw line (terminator already stripped) through the
// pipeline and writes the rendered result, terminator included, to w.
// Squeezed lines produce no output and do not advance the counter.
func (t *Transformer) WriteLine(w io.Writer, line string) error {
	isBlank := strings.TrimSpace(line) == ""

	// Схлопывание пустых строк: повторная пустая строка не выводится
	// и не двигает счётчик.
	if t.opts.SqueezeBlank && isBlank && t.prevBlank {
		return nil
	}
	t.prevBlank = isBlank

	var out strings.Builder
	if t.opts.Numbering == NumberAll || (t.opts.Numbering == NumberNonBlank && !isBlank) {
		fmt.Fprintf(&out, "%*d\t", numberWidth, t.lineNum)
		t.lineNum++
	}
	appendBody(&out, line, t.opts)
	if t.opts.ShowEnds {
		out.WriteByte('$')
	}
	out.WriteByte('\n')

	if _, err := io.WriteString(w, out.String()); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}

// Run drains lines through the transformer into w. A destination failure
// comes back as *WriteError; anything else is a read failure of the
// current source.
func (t *Transformer) Run(lines LineSource, w io.Writer) error {
	for lines.Next() {
		if err := t.WriteLine(w, lines.Text()); err != nil {
			return err
		}
	}
	return lines.Err()
}
