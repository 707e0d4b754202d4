package kfmt

import "io"

// PrefixWriter is an io.Writer that wraps another io.Writer and injects a
// prefix at the beginning of each line.
type PrefixWriter struct {
	// Sink receives all writes, injected prefixes included.
	Sink io.Writer

	// Prefix is injected at the beginning of each line.
	Prefix []byte

	// midLine is true while the current line has unfinished content, in
	// which case the next write continues it without a prefix.
	midLine bool
}

// Write writes p to the sink, injecting the configured prefix at the start
// of every line. The returned count covers the bytes of p only; injected
// prefixes are not included in it.
func (w *PrefixWriter) Write(p []byte) (int, error) {
	var written int

	for len(p) != 0 {
		if !w.midLine {
			if _, err := w.Sink.Write(w.Prefix); err != nil {
				return written, err
			}
			w.midLine = true
		}

		// Forward up to and including the next line feed.
		chunk := len(p)
		endsLine := false
		for i, b := range p {
			if b == '\n' {
				chunk, endsLine = i+1, true
				break
			}
		}

		n, err := w.Sink.Write(p[:chunk])
		written += n
		if err != nil {
			return written, err
		}

		if endsLine {
			w.midLine = false
		}

		p = p[chunk:]
	}

	return written, nil
}
