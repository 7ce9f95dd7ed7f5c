package format

// CompressionType identifies the block compression codec used for a
// column stream. The value is recorded by the surrounding file format so
// readers can pick the matching codec.
type CompressionType uint8

const (
	CompressionNone   CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZlib   CompressionType = 0x2 // CompressionZlib represents raw DEFLATE (RFC 1951, no zlib framing).
	CompressionSnappy CompressionType = 0x3 // CompressionSnappy represents Snappy block compression.
	CompressionLzo    CompressionType = 0x4 // CompressionLzo represents LZO1X compression.
	CompressionLZ4    CompressionType = 0x5 // CompressionLZ4 represents LZ4 block compression.
	CompressionZstd   CompressionType = 0x6 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x7 // CompressionS2 represents S2 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZlib:
		return "Zlib"
	case CompressionSnappy:
		return "Snappy"
	case CompressionLzo:
		return "Lzo"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	default:
		return "Unknown"
	}
}
