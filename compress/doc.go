// Package compress provides the interchangeable block-compression codecs of
// the tessera I/O layer.
//
// Column streams are written as fixed-size blocks. Before a block goes to
// disk the writer hands it to a Codec, which either shrinks it or reports
// that the block should be stored verbatim; on read the matching codec
// restores it. The codec never sees stream framing, block headers or
// checksums — those belong to the surrounding file format.
//
// # The block contract
//
// All codecs share one contract built on buffer views:
//
//	compressed, err := codec.Compress(in, out, overflow)
//	n, err := codec.Decompress(in, out)
//
// Compress drains its output into the primary view and, once that is full,
// into the optional overflow view. It reports true only when compression
// achieved a strict size reduction; any other outcome — incompressible data,
// exhausted output capacity with no overflow, empty input — is the ordinary
// false return telling the writer to store the original bytes. Decompress
// fills an output view the caller has sized for the whole block, flips it to
// read mode and consumes the input view.
//
// # Codecs
//
// | Kind   | Library                  | Profile                          |
// |--------|--------------------------|----------------------------------|
// | None   | -                        | verbatim storage                 |
// | Zlib   | klauspost/compress/flate | raw DEFLATE, the portable default|
// | Snappy | golang/snappy            | fastest, modest ratio            |
// | Lzo    | woozymasta/lzo           | legacy interchange               |
// | LZ4    | pierrec/lz4              | very fast decompression          |
// | Zstd   | klauspost/compress/zstd  | best ratio, archival             |
// | S2     | klauspost/compress/s2    | Snappy evolution                 |
//
// The Zlib codec is the configurable one: Modify derives variants tuned by
// level and strategy modifiers, and decompression can be delegated to a
// platform accelerator when both views are natively addressable (see the
// accel package). The remaining codecs are fixed-function block codecs.
//
// # Choosing a codec
//
//	codec, err := compress.GetCodec(format.CompressionZstd)   // shared instance
//	codec, err := compress.CreateCodec(kind, "column stream") // fresh instance
//
// Variant derivation never mutates the base codec:
//
//	text := base.Modify(compress.ModifierText, compress.ModifierFastest)
//
// # Concurrency
//
// Compression and decompression engines are constructed per call, so calls
// on distinct codec instances never interact. On a shared instance, Modify
// is safe (copy-on-derive) while Reset and Close require external exclusion.
package compress
