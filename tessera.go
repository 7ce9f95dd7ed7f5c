// Package tessera provides the block-level compression layer of the tessera
// columnar storage format.
//
// The storage engine writes column streams as fixed-size blocks. This module
// owns what happens to one block between the writer and the disk: an
// interchangeable codec compresses it (or decides it is better stored
// verbatim) and restores it on read. Stream framing, block headers and
// checksums are defined by the surrounding file format and never enter this
// layer.
//
// # Layout
//
//   - compress: the codec family and its registry
//   - buffer: position/limit views the codecs drain into and read from
//   - accel: optional platform-accelerated decompression capabilities
//   - format: compression kind identifiers recorded by the file format
//
// # Basic usage
//
//	codec, err := tessera.NewBlockCodec(format.CompressionZlib)
//	if err != nil {
//	    return err
//	}
//	defer codec.Close()
//
//	out := buffer.NewView(make([]byte, blockSize))
//	compressed, err := codec.Compress(in, out, nil)
//	if err != nil {
//	    return err
//	}
//	if !compressed {
//	    // store the original block verbatim
//	}
package tessera

import (
	"github.com/tessera-db/tessera/compress"
	"github.com/tessera-db/tessera/format"
)

// NewBlockCodec creates a fresh codec for the given compression kind.
// It is a thin wrapper over compress.CreateCodec for the common case.
func NewBlockCodec(kind format.CompressionType) (compress.Codec, error) {
	return compress.CreateCodec(kind, "block")
}
