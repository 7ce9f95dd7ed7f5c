package compress

import (
	"fmt"

	"github.com/tessera-db/tessera/buffer"
	"github.com/tessera-db/tessera/format"
)

// Codec is one interchangeable block-compression codec of the storage
// format's I/O layer. A block is compressed or decompressed as a single unit;
// the surrounding format owns framing, block headers and checksums.
//
// Compress encodes the remaining bytes of in into out, spilling into overflow
// once out is full. It reports true only when the produced output is strictly
// smaller than the input; on false the caller stores the block uncompressed.
// Running out of output capacity with no overflow supplied is the expected
// "incompressible" outcome, reported via false rather than an error.
//
// Decompress decodes the remaining bytes of in into out, which the caller
// must size for the full decompressed block. On return out is flipped to read
// mode so its readable range is exactly the produced bytes, in is fully
// consumed, and the produced byte count is returned.
//
// Modify derives a codec variant by applying tuning modifiers to the current
// configuration; it never mutates the receiver. Reset restores the default
// configuration in place. Close releases any platform resources; it is safe
// on codecs that never acquired any.
type Codec interface {
	// Kind identifies the codec within the format's compression registry.
	Kind() format.CompressionType

	Compress(in, out, overflow *buffer.View) (bool, error)
	Decompress(in, out *buffer.View) (int, error)

	Modify(mods ...Modifier) Codec
	Reset()
	Close() error
}

// DirectDecompressionCodec is implemented by codecs that can delegate
// decompression to a platform accelerator operating directly on
// natively-addressable buffers.
type DirectDecompressionCodec interface {
	Codec

	// Available reports whether the accelerated path can be used. The first
	// call resolves the capability; the outcome is cached for the lifetime of
	// the codec instance.
	Available() bool

	// DirectDecompress delegates the whole operation to the accelerator.
	// Callers must check Available first, or use Decompress which dispatches
	// on its own.
	DirectDecompress(in, out *buffer.View) (int, error)
}

// Modifier is a named tuning intent applied by Codec.Modify. Level-axis and
// strategy-axis modifiers are independent; within one Modify call the last
// modifier on an axis wins.
type Modifier uint8

const (
	// ModifierBinary tunes the codec for binary data (filtered strategy).
	ModifierBinary Modifier = iota + 1
	// ModifierText tunes the codec for text-like data (default strategy).
	ModifierText
	// ModifierFastest selects the fastest compression effort.
	ModifierFastest
	// ModifierFast selects the second-fastest compression effort.
	ModifierFast
	// ModifierDefault restores the library-default compression effort.
	ModifierDefault
)

func (m Modifier) String() string {
	switch m {
	case ModifierBinary:
		return "Binary"
	case ModifierText:
		return "Text"
	case ModifierFastest:
		return "Fastest"
	case ModifierFast:
		return "Fast"
	case ModifierDefault:
		return "Default"
	default:
		return "Unknown"
	}
}

// Strategy selects how the DEFLATE encoder trades LZ77 matching against
// entropy coding.
type Strategy uint8

const (
	// StrategyDefault is the standard LZ77+Huffman encoding at the configured level.
	StrategyDefault Strategy = iota
	// StrategyFiltered biases the encoder toward Huffman coding over LZ77
	// matching, which suits binary data with small, noisy values.
	StrategyFiltered
)

func (s Strategy) String() string {
	switch s {
	case StrategyDefault:
		return "Default"
	case StrategyFiltered:
		return "Filtered"
	default:
		return "Unknown"
	}
}

// CreateCodec is a factory function that creates a new Codec for the
// specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zlib, Snappy, Lzo, LZ4, Zstd, or S2)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZlib:
		return NewDeflate()
	case format.CompressionSnappy:
		return NewSnappyCodec(), nil
	case format.CompressionLzo:
		return NewLzoCodec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:   NewNoOpCodec(),
	format.CompressionZlib:   mustDeflate(),
	format.CompressionSnappy: NewSnappyCodec(),
	format.CompressionLzo:    NewLzoCodec(),
	format.CompressionLZ4:    NewLZ4Codec(),
	format.CompressionZstd:   NewZstdCodec(),
	format.CompressionS2:     NewS2Codec(),
}

// GetCodec retrieves a built-in shared Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

func mustDeflate() *Deflate {
	d, err := NewDeflate()
	if err != nil {
		// NewDeflate without options cannot fail.
		panic(err)
	}

	return d
}
