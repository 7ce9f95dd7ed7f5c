package compress

import (
	"errors"

	"github.com/tessera-db/tessera/buffer"
)

// Sentinels used to stop a compression engine early. Both are translated to
// the "store the block uncompressed" false return, never surfaced to callers.
var (
	errSpillExhausted = errors.New("compress: output views exhausted")
	errNotSmaller     = errors.New("compress: output not smaller than input")
)

// spillWriter drains a compression engine's output into a primary view and
// an optional overflow view. It aborts with errSpillExhausted once both are
// full, and with errNotSmaller once the running total can no longer beat the
// uncompressed size.
type spillWriter struct {
	out      *buffer.View
	overflow *buffer.View
	written  int
	max      int
}

func (w *spillWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.max {
		return 0, errNotSmaller
	}

	total := 0
	for len(p) > 0 {
		dst := w.out
		if dst.Remaining() == 0 {
			if w.overflow == nil || w.overflow.Remaining() == 0 {
				return total, errSpillExhausted
			}
			dst = w.overflow
		}

		n, _ := dst.Write(p[:min(len(p), dst.Remaining())])
		p = p[n:]
		total += n
		w.written += n
	}

	return total, nil
}

// spillEncoded copies a fully-encoded block into the primary view, spilling
// the tail into the overflow view. It reports false when the block is empty,
// not strictly smaller than its source, or does not fit the supplied
// capacity — in all of which the caller stores the original bytes verbatim.
func spillEncoded(encoded []byte, srcLen int, out, overflow *buffer.View) bool {
	if len(encoded) == 0 || len(encoded) >= srcLen {
		return false
	}

	n, err := out.Write(encoded)
	if err == nil {
		return true
	}
	if overflow == nil {
		return false
	}
	if _, err := overflow.Write(encoded[n:]); err != nil {
		return false
	}

	return true
}

// flipWritten flips v from write mode to read mode so that its readable
// range is exactly the bytes written since start.
func flipWritten(v *buffer.View, start int) {
	v.SetLimit(v.Position())
	v.SetPosition(start)
}
