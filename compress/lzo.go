package compress

import (
	"fmt"

	"github.com/woozymasta/lzo"

	"github.com/tessera-db/tessera/buffer"
	"github.com/tessera-db/tessera/format"
)

// LzoCodec compresses blocks with LZO1X. Kept for interchange with formats
// whose existing data was written with LZO; new data is usually better
// served by LZ4 or Snappy.
type LzoCodec struct{}

var _ Codec = LzoCodec{}

// NewLzoCodec creates a new LZO block codec.
func NewLzoCodec() LzoCodec {
	return LzoCodec{}
}

// Kind returns format.CompressionLzo.
func (LzoCodec) Kind() format.CompressionType {
	return format.CompressionLzo
}

// Compress encodes the block with the default LZO1X level and spills the
// result into out then overflow.
func (LzoCodec) Compress(in, out, overflow *buffer.View) (bool, error) {
	src := in.Bytes()
	if len(src) == 0 {
		return false, nil
	}

	encoded, err := lzo.Compress(src, nil)
	if err != nil {
		return false, fmt.Errorf("lzo: compress block: %w", err)
	}

	return spillEncoded(encoded, len(src), out, overflow), nil
}

// Decompress decodes the block sized by out's remaining capacity and copies
// it into out.
func (LzoCodec) Decompress(in, out *buffer.View) (int, error) {
	start := out.Position()

	decoded, err := lzo.Decompress(in.Bytes(), lzo.DefaultDecompressOptions(out.Remaining()))
	if err != nil {
		return 0, fmt.Errorf("lzo: bad compression data: %w", err)
	}

	n := copy(out.Bytes(), decoded)
	if n < len(decoded) {
		return 0, fmt.Errorf("lzo: decompressed block of %d bytes exceeds output capacity %d", len(decoded), out.Remaining())
	}

	out.Advance(n)
	flipWritten(out, start)
	in.SetPosition(in.Limit())

	return n, nil
}

// Modify returns the codec unchanged; LZO has no tuning parameters here.
func (c LzoCodec) Modify(mods ...Modifier) Codec {
	return c
}

// Reset is a no-op.
func (LzoCodec) Reset() {}

// Close is a no-op.
func (LzoCodec) Close() error {
	return nil
}
