// Package accel defines the optional platform-accelerated decompression
// capability used by the codec layer.
//
// Accelerators are resolved through an explicitly injected Provider rather
// than a process-global factory: a codec receives its Provider at
// construction, asks it once for a capability, and caches the outcome.
// Resolution failure is a normal, expected result (ErrUnavailable), not an
// exceptional one — codecs downgrade to their generic decompression path.
package accel

import (
	"errors"

	"github.com/tessera-db/tessera/buffer"
)

// Capability names a decompression format an accelerator may support.
type Capability string

// RawDeflate is a raw RFC 1951 DEFLATE bitstream with no zlib or gzip
// container framing.
const RawDeflate Capability = "raw-deflate-no-header"

// ErrUnavailable is returned by Resolve when the requested capability is not
// supported on this platform or by this provider.
var ErrUnavailable = errors.New("accel: capability unavailable")

// Accelerator decompresses directly between natively-addressable buffers.
//
// Decompress fills out starting at its current position, advancing it as
// bytes are produced, and returns the number of bytes written. The caller is
// responsible for flipping the output view and consuming the input view.
//
// Accelerators may hold platform resources; callers reset them between
// configuration changes and release them when the owning codec closes.
type Accelerator interface {
	Decompress(in, out *buffer.View) (int, error)
	Reset()
	Release() error
}

// Provider resolves accelerator capabilities. Implementations must treat an
// unsupported capability as a normal outcome and return ErrUnavailable.
type Provider interface {
	Resolve(cap Capability) (Accelerator, error)
}

// Absent is a Provider with no capabilities. It stands in for "no
// acceleration on this platform" so codecs never need a nil provider check.
type Absent struct{}

var _ Provider = Absent{}

// Resolve always reports the capability as unavailable.
func (Absent) Resolve(Capability) (Accelerator, error) {
	return nil, ErrUnavailable
}
