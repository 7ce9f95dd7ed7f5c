package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	cases := map[CompressionType]string{
		CompressionNone:       "None",
		CompressionZlib:       "Zlib",
		CompressionSnappy:     "Snappy",
		CompressionLzo:        "Lzo",
		CompressionLZ4:        "LZ4",
		CompressionZstd:       "Zstd",
		CompressionS2:         "S2",
		CompressionType(0xff): "Unknown",
	}

	for kind, want := range cases {
		require.Equal(t, want, kind.String())
	}
}
