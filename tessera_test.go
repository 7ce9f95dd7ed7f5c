package tessera

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessera-db/tessera/buffer"
	"github.com/tessera-db/tessera/format"
)

func TestNewBlockCodec(t *testing.T) {
	codec, err := NewBlockCodec(format.CompressionZlib)
	require.NoError(t, err)
	defer codec.Close()

	require.Equal(t, format.CompressionZlib, codec.Kind())

	payload := bytes.Repeat([]byte("tessera block "), 4096)
	outBuf := make([]byte, len(payload))
	out := buffer.NewView(outBuf)

	compressed, err := codec.Compress(buffer.NewView(payload), out, nil)
	require.NoError(t, err)
	require.True(t, compressed)

	dst := buffer.NewView(make([]byte, len(payload)))
	n, err := codec.Decompress(buffer.NewView(outBuf[:out.Position()]), dst)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.Equal(t, payload, dst.Bytes())
}

func TestNewBlockCodec_InvalidKind(t *testing.T) {
	_, err := NewBlockCodec(format.CompressionType(0xee))
	require.Error(t, err)
}
