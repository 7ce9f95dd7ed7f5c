package accel

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"
	"sync"

	fastflate "github.com/intel/fastgo/compress/flate"

	"github.com/tessera-db/tessera/buffer"
)

// Native resolves accelerators backed by Intel's optimized DEFLATE
// implementation, which selects SIMD inflate routines when the CPU supports
// them. It currently offers only the RawDeflate capability.
type Native struct{}

var _ Provider = Native{}

// Resolve returns a raw-DEFLATE accelerator, or ErrUnavailable for any other
// capability.
func (Native) Resolve(cap Capability) (Accelerator, error) {
	if cap != RawDeflate {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, cap)
	}

	return rawDeflate{}, nil
}

// inflateReaderPool recycles accelerated inflate readers across calls. The
// readers carry a sizable history window, so warm reuse matters, but each
// call checks one out exclusively; nothing is shared between in-flight
// decompressions.
var inflateReaderPool = sync.Pool{
	New: func() any {
		return fastflate.NewReader(nil)
	},
}

// rawDeflate adapts the accelerated inflate reader to the Accelerator
// contract. It holds no per-instance state: every call stages its input in a
// local reader and borrows a pooled inflate reader, so concurrent calls on
// the same accelerator never interact.
type rawDeflate struct{}

func (rawDeflate) Decompress(in, out *buffer.View) (int, error) {
	rd := inflateReaderPool.Get().(io.ReadCloser)
	defer inflateReaderPool.Put(rd)

	if err := rd.(flate.Resetter).Reset(bytes.NewReader(in.Bytes()), nil); err != nil {
		return 0, fmt.Errorf("accel: reset inflate reader: %w", err)
	}

	dst := out.Bytes()
	n := 0
	for n < len(dst) {
		m, err := rd.Read(dst[n:])
		n += m
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, fmt.Errorf("accel: inflate: %w", err)
		}
	}
	out.Advance(n)

	return n, nil
}

// Reset is a no-op: all decoding state lives in pooled readers scoped to a
// single call.
func (rawDeflate) Reset() {}

// Release is a no-op for the same reason.
func (rawDeflate) Release() error {
	return nil
}
