package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/tessera-db/tessera/buffer"
	"github.com/tessera-db/tessera/format"
	"github.com/tessera-db/tessera/internal/pool"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal hash-table state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec compresses blocks with the LZ4 block format. Decompression is
// extremely fast, making LZ4 a good default for query-heavy workloads.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates a new LZ4 block codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Kind returns format.CompressionLZ4.
func (LZ4Codec) Kind() format.CompressionType {
	return format.CompressionLZ4
}

// Compress encodes the block into pooled scratch space and spills the result
// into out then overflow. The LZ4 block encoder signals incompressible data
// with an empty result, which maps to the store-uncompressed false return.
func (LZ4Codec) Compress(in, out, overflow *buffer.View) (bool, error) {
	src := in.Bytes()
	if len(src) == 0 {
		return false, nil
	}

	bb := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(bb)
	dst := bb.Extended(lz4.CompressBlockBound(len(src)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst)
	if err != nil {
		return false, fmt.Errorf("lz4: compress block: %w", err)
	}

	return spillEncoded(dst[:n], len(src), out, overflow), nil
}

// Decompress decodes the block directly into out's remaining bytes.
func (LZ4Codec) Decompress(in, out *buffer.View) (int, error) {
	start := out.Position()

	n, err := lz4.UncompressBlock(in.Bytes(), out.Bytes())
	if err != nil {
		return 0, fmt.Errorf("lz4: bad compression data: %w", err)
	}

	out.Advance(n)
	flipWritten(out, start)
	in.SetPosition(in.Limit())

	return n, nil
}

// Modify returns the codec unchanged; LZ4 has no tuning parameters here.
func (c LZ4Codec) Modify(mods ...Modifier) Codec {
	return c
}

// Reset is a no-op.
func (LZ4Codec) Reset() {}

// Close is a no-op.
func (LZ4Codec) Close() error {
	return nil
}
