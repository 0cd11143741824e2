// Package source opens input streams (files or standard input) and splits
// them into lines for the transformation pipeline. Sources are streamed,
// not slurped: a line filter must handle inputs larger than memory.
package source

import (
	"fmt"
	"io"
	"os"
)

// Source couples a display name with the stream it reads from. The name is
// what error messages show; for files it is the path as given on the
// command line.
type Source struct {
	Name string
	r    io.ReadCloser
}

// Open opens a file path as a source. The returned error carries the path
// and the underlying cause.
func Open(path string) (*Source, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Source{Name: path, r: f}, nil
}

// New wraps an arbitrary reader as a source. Close on the source is a
// no-op; the reader's lifetime stays with the caller. Used for standard
// input and for tests.
func New(name string, r io.Reader) *Source {
	return &Source{Name: name, r: io.NopCloser(r)}
}

// Close releases the underlying stream.
func (s *Source) Close() error {
	return s.r.Close()
}

// Lines returns a reader yielding the source's lines in order.
func (s *Source) Lines() *LineReader {
	return NewLineReader(s.r)
}
