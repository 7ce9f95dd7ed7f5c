package compress

import (
	"fmt"

	"github.com/tessera-db/tessera/buffer"
	"github.com/tessera-db/tessera/format"
)

// ZstdCodec compresses blocks with Zstandard. It offers the best ratios of
// the codec family and suits cold storage and archival streams.
//
// Two implementations exist behind a build tag: the default pure-Go
// implementation, and a cgo binding selected with the gozstd tag for
// deployments that want the reference library's speed.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a new Zstandard block codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Kind returns format.CompressionZstd.
func (ZstdCodec) Kind() format.CompressionType {
	return format.CompressionZstd
}

// Modify returns the codec unchanged; Zstd tuning is fixed per build.
func (c ZstdCodec) Modify(mods ...Modifier) Codec {
	return c
}

// Reset is a no-op.
func (ZstdCodec) Reset() {}

// Close is a no-op.
func (ZstdCodec) Close() error {
	return nil
}

// zstdDecodeInto copies a fully-decoded block into out and finalizes the
// view contract shared by both zstd implementations.
func zstdDecodeInto(decoded []byte, in, out *buffer.View) (int, error) {
	start := out.Position()
	n := copy(out.Bytes(), decoded)
	if n < len(decoded) {
		return 0, errZstdCapacity(len(decoded), out.Remaining())
	}

	out.Advance(n)
	flipWritten(out, start)
	in.SetPosition(in.Limit())

	return n, nil
}

func errZstdCapacity(decoded, capacity int) error {
	return fmt.Errorf("zstd: decompressed block of %d bytes exceeds output capacity %d", decoded, capacity)
}
