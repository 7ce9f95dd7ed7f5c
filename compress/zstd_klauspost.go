//go:build !gozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/tessera-db/tessera/buffer"
	"github.com/tessera-db/tessera/internal/pool"
)

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation overhead.
// The klauspost/compress/zstd library is explicitly designed for decoder reuse:
// the decoder operates without allocations after a warmup.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			// Cannot happen with valid options.
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPool pools zstd encoders for reuse to eliminate allocation overhead.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			// Cannot happen with valid options.
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}
		return encoder
	},
}

// Compress encodes the block with a pooled Zstandard encoder and spills the
// result into out then overflow.
func (ZstdCodec) Compress(in, out, overflow *buffer.View) (bool, error) {
	src := in.Bytes()
	if len(src) == 0 {
		return false, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	bb := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(bb)

	// EncodeAll is stateless, safe with a pooled encoder.
	encoded := encoder.EncodeAll(src, bb.B[:0])
	bb.B = encoded

	return spillEncoded(encoded, len(src), out, overflow), nil
}

// Decompress decodes the block with a pooled Zstandard decoder and copies it
// into out.
func (ZstdCodec) Decompress(in, out *buffer.View) (int, error) {
	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	bb := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(bb)

	// DecodeAll is stateless, safe with a pooled decoder even after a
	// failed call.
	decoded, err := decoder.DecodeAll(in.Bytes(), bb.B[:0])
	if err != nil {
		return 0, fmt.Errorf("zstd: bad compression data: %w", err)
	}
	bb.B = decoded

	return zstdDecodeInto(decoded, in, out)
}
