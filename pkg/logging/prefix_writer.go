package logging

import (
	"bytes"
	"io"
)

// PrefixWriter wraps an io.Writer and prepends a prefix to each
// complete line. Partial lines stay buffered until their newline
// arrives, so a prefix is never emitted mid-line.
type PrefixWriter struct {
	prefix  []byte
	writer  io.Writer
	partial bytes.Buffer
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements io.Writer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	n := len(p)

	for {
		nl := bytes.IndexByte(p, '\n')
		if nl < 0 {
			// No newline yet: hold the remainder for the next Write.
			pw.partial.Write(p)
			return n, nil
		}

		if _, err := pw.writer.Write(pw.prefix); err != nil {
			return 0, err
		}
		if pw.partial.Len() > 0 {
			if _, err := pw.writer.Write(pw.partial.Bytes()); err != nil {
				return 0, err
			}
			pw.partial.Reset()
		}
		if _, err := pw.writer.Write(p[:nl+1]); err != nil {
			return 0, err
		}
		p = p[nl+1:]
	}
}
