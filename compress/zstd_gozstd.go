//go:build gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/tessera-db/tessera/buffer"
	"github.com/tessera-db/tessera/internal/pool"
)

const gozstdLevel = 3

// Compress encodes the block with the cgo Zstandard binding and spills the
// result into out then overflow.
func (ZstdCodec) Compress(in, out, overflow *buffer.View) (bool, error) {
	src := in.Bytes()
	if len(src) == 0 {
		return false, nil
	}

	bb := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(bb)

	encoded := gozstd.CompressLevel(bb.B[:0], src, gozstdLevel)
	bb.B = encoded

	return spillEncoded(encoded, len(src), out, overflow), nil
}

// Decompress decodes the block with the cgo Zstandard binding and copies it
// into out.
func (ZstdCodec) Decompress(in, out *buffer.View) (int, error) {
	bb := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(bb)

	decoded, err := gozstd.Decompress(bb.B[:0], in.Bytes())
	if err != nil {
		return 0, fmt.Errorf("zstd: bad compression data: %w", err)
	}
	bb.B = decoded

	return zstdDecodeInto(decoded, in, out)
}
