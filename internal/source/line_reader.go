package source

import (
	"bufio"
	"io"
	"strings"
)

// LineReader splits a stream into lines of unbounded length. A line ends
// at '\n' (an immediately preceding '\r' is dropped with it); a final
// unterminated fragment still counts as a line.
type LineReader struct {
	br   *bufio.Reader
	text string
	err  error
	done bool
}

// NewLineReader wraps r in a buffered line splitter.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{br: bufio.NewReader(r)}
}

// Next advances to the next line. It returns false at end of stream or on
// a read error; check Err afterwards.
func (lr *LineReader) Next() bool {
	if lr.done {
		return false
	}
	data, err := lr.br.ReadString('\n')
	if err != nil {
		lr.done = true
		if err != io.EOF {
			lr.err = err
			return false
		}
		// EOF без завершающего '\n': непустой хвост — тоже строка.
		if data == "" {
			return false
		}
	}
	lr.text = trimLineEnd(data)
	return true
}

// Text returns the current line without its terminator.
func (lr *LineReader) Text() string {
	return lr.text
}

// Err reports the read error that stopped Next, if any. End of stream is
// not an error.
func (lr *LineReader) Err() error {
	return lr.err
}

// trimLineEnd drops one trailing '\n' and, only when that '\n' was
// present, one '\r' before it. A bare trailing '\r' on an unterminated
// final line is content and stays.
func trimLineEnd(s string) string {
	if strings.HasSuffix(s, "\n") {
		s = s[:len(s)-1]
		s = strings.TrimSuffix(s, "\r")
	}
	return s
}
