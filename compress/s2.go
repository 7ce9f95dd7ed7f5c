package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/tessera-db/tessera/buffer"
	"github.com/tessera-db/tessera/format"
	"github.com/tessera-db/tessera/internal/pool"
)

// S2Codec compresses blocks with the S2 block format, a Snappy evolution
// with better ratios at comparable speed.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates a new S2 block codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Kind returns format.CompressionS2.
func (S2Codec) Kind() format.CompressionType {
	return format.CompressionS2
}

// Compress encodes the block into pooled scratch space and spills the result
// into out then overflow.
func (S2Codec) Compress(in, out, overflow *buffer.View) (bool, error) {
	src := in.Bytes()
	if len(src) == 0 {
		return false, nil
	}
	bound := s2.MaxEncodedLen(len(src))
	if bound < 0 {
		return false, fmt.Errorf("s2: block of %d bytes too large to encode", len(src))
	}

	bb := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(bb)

	encoded := s2.Encode(bb.Extended(bound), src)
	bb.B = encoded

	return spillEncoded(encoded, len(src), out, overflow), nil
}

// Decompress decodes the block directly into out's remaining bytes.
func (S2Codec) Decompress(in, out *buffer.View) (int, error) {
	start := out.Position()
	dst := out.Bytes()

	n, err := s2.DecodedLen(in.Bytes())
	if err != nil {
		return 0, fmt.Errorf("s2: bad compression data: %w", err)
	}
	if n > len(dst) {
		return 0, fmt.Errorf("s2: decompressed block of %d bytes exceeds output capacity %d", n, len(dst))
	}

	if _, err := s2.Decode(dst, in.Bytes()); err != nil {
		return 0, fmt.Errorf("s2: bad compression data: %w", err)
	}

	out.Advance(n)
	flipWritten(out, start)
	in.SetPosition(in.Limit())

	return n, nil
}

// Modify returns the codec unchanged; S2 has no tuning parameters here.
func (c S2Codec) Modify(mods ...Modifier) Codec {
	return c
}

// Reset is a no-op.
func (S2Codec) Reset() {}

// Close is a no-op.
func (S2Codec) Close() error {
	return nil
}
