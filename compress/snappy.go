package compress

import (
	"fmt"

	"github.com/golang/snappy"

	"github.com/tessera-db/tessera/buffer"
	"github.com/tessera-db/tessera/format"
	"github.com/tessera-db/tessera/internal/pool"
)

// SnappyCodec compresses blocks with the Snappy block format. Snappy trades
// compression ratio for very high throughput, which suits hot read paths.
type SnappyCodec struct{}

var _ Codec = SnappyCodec{}

// NewSnappyCodec creates a new Snappy block codec.
func NewSnappyCodec() SnappyCodec {
	return SnappyCodec{}
}

// Kind returns format.CompressionSnappy.
func (SnappyCodec) Kind() format.CompressionType {
	return format.CompressionSnappy
}

// Compress encodes the block into pooled scratch space and spills the result
// into out then overflow. False means the encoded block was not strictly
// smaller than the input or did not fit the supplied capacity.
func (SnappyCodec) Compress(in, out, overflow *buffer.View) (bool, error) {
	src := in.Bytes()
	bound := snappy.MaxEncodedLen(len(src))
	if bound < 0 {
		return false, fmt.Errorf("snappy: block of %d bytes too large to encode", len(src))
	}

	bb := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(bb)

	encoded := snappy.Encode(bb.Extended(bound), src)
	bb.B = encoded

	return spillEncoded(encoded, len(src), out, overflow), nil
}

// Decompress decodes the block directly into out's remaining bytes.
func (SnappyCodec) Decompress(in, out *buffer.View) (int, error) {
	start := out.Position()
	dst := out.Bytes()

	n, err := snappy.DecodedLen(in.Bytes())
	if err != nil {
		return 0, fmt.Errorf("snappy: bad compression data: %w", err)
	}
	if n > len(dst) {
		return 0, fmt.Errorf("snappy: decompressed block of %d bytes exceeds output capacity %d", n, len(dst))
	}

	if _, err := snappy.Decode(dst, in.Bytes()); err != nil {
		return 0, fmt.Errorf("snappy: bad compression data: %w", err)
	}

	out.Advance(n)
	flipWritten(out, start)
	in.SetPosition(in.Limit())

	return n, nil
}

// Modify returns the codec unchanged; Snappy has no tuning parameters.
func (c SnappyCodec) Modify(mods ...Modifier) Codec {
	return c
}

// Reset is a no-op.
func (SnappyCodec) Reset() {}

// Close is a no-op.
func (SnappyCodec) Close() error {
	return nil
}
