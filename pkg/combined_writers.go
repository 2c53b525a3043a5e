package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every write out to all of its writers.
// A failing writer does not stop the others, e.g. a full disk must not silence stdout logs.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: writers,
	}
}

// Write reports len(p) as long as at least one writer accepted the whole buffer.
// The combined error is returned only when every writer failed.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	succeeded := 0
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr == nil && written < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		succeeded++
	}

	if succeeded == 0 && len(cw.Writers) > 0 {
		return 0, err
	}
	return len(p), nil
}
