package compress

import (
	"github.com/tessera-db/tessera/buffer"
	"github.com/tessera-db/tessera/format"
)

// NoOpCodec is the codec for uncompressed streams. Compression never shrinks
// a block, so Compress always reports false and the caller stores the
// original bytes; Decompress is a bounded copy.
//
// Useful when the data is already compressed or incompressible, or when CPU
// matters more than storage.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a codec that stores blocks verbatim.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Kind returns format.CompressionNone.
func (NoOpCodec) Kind() format.CompressionType {
	return format.CompressionNone
}

// Compress reports false without producing output: a verbatim copy is never
// strictly smaller than its input, so the caller always stores the block
// uncompressed.
func (NoOpCodec) Compress(in, out, overflow *buffer.View) (bool, error) {
	return false, nil
}

// Decompress copies the remaining bytes of in into out.
func (NoOpCodec) Decompress(in, out *buffer.View) (int, error) {
	start := out.Position()
	n := copy(out.Bytes(), in.Bytes())
	out.Advance(n)
	flipWritten(out, start)
	in.SetPosition(in.Limit())

	return n, nil
}

// Modify returns the codec unchanged; there is nothing to tune.
func (c NoOpCodec) Modify(mods ...Modifier) Codec {
	return c
}

// Reset is a no-op.
func (NoOpCodec) Reset() {}

// Close is a no-op.
func (NoOpCodec) Close() error {
	return nil
}
