package accel

import (
	"bytes"
	"sync"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/stretchr/testify/require"

	"github.com/tessera-db/tessera/buffer"
)

// rawDeflateStream produces a raw RFC 1951 stream with no container framing,
// the only format the accelerator is asked to decode.
func rawDeflateStream(t *testing.T, payload []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = fw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, fw.Close())

	return buf.Bytes()
}

func TestNative_ResolveRawDeflate(t *testing.T) {
	acc, err := Native{}.Resolve(RawDeflate)
	require.NoError(t, err)
	require.NotNil(t, acc)
	require.NoError(t, acc.Release())
}

func TestNative_ResolveUnknownCapability(t *testing.T) {
	_, err := Native{}.Resolve(Capability("zstd-frame"))
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestAbsent_Resolve(t *testing.T) {
	_, err := Absent{}.Resolve(RawDeflate)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestNative_Decompress(t *testing.T) {
	payload := bytes.Repeat([]byte("accelerated inflate block "), 1024)
	stream := rawDeflateStream(t, payload)

	acc, err := Native{}.Resolve(RawDeflate)
	require.NoError(t, err)
	defer acc.Release()

	in := buffer.NewView(stream)
	out := buffer.NewView(make([]byte, len(payload)))

	n, err := acc.Decompress(in, out)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.Equal(t, len(payload), out.Position(), "accelerator advances the output position")

	out.Flip()
	require.Equal(t, payload, out.Bytes())
}

func TestNative_DecompressReuse(t *testing.T) {
	acc, err := Native{}.Resolve(RawDeflate)
	require.NoError(t, err)
	defer acc.Release()

	for i, payload := range [][]byte{
		bytes.Repeat([]byte("first stream "), 512),
		bytes.Repeat([]byte("second stream, longer this time "), 768),
	} {
		stream := rawDeflateStream(t, payload)
		out := buffer.NewView(make([]byte, len(payload)))

		n, err := acc.Decompress(buffer.NewView(stream), out)
		require.NoError(t, err, "stream %d", i)
		require.Equal(t, len(payload), n)

		out.Flip()
		require.Equal(t, payload, out.Bytes())
	}
}

func TestNative_ResetBetweenStreams(t *testing.T) {
	acc, err := Native{}.Resolve(RawDeflate)
	require.NoError(t, err)
	defer acc.Release()

	payload := bytes.Repeat([]byte("reset me "), 256)
	stream := rawDeflateStream(t, payload)

	out := buffer.NewView(make([]byte, len(payload)))
	_, err = acc.Decompress(buffer.NewView(stream), out)
	require.NoError(t, err)

	acc.Reset()

	out = buffer.NewView(make([]byte, len(payload)))
	n, err := acc.Decompress(buffer.NewView(stream), out)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
}

func TestNative_ConcurrentDecompress(t *testing.T) {
	acc, err := Native{}.Resolve(RawDeflate)
	require.NoError(t, err)
	defer acc.Release()

	const workers = 4
	payloads := make([][]byte, workers)
	streams := make([][]byte, workers)
	for i := range payloads {
		payloads[i] = bytes.Repeat([]byte{byte('a' + i)}, (i+1)*8192)
		streams[i] = rawDeflateStream(t, payloads[i])
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for round := 0; round < 16; round++ {
				out := buffer.NewView(make([]byte, len(payloads[i])))
				n, err := acc.Decompress(buffer.NewView(streams[i]), out)
				if err != nil {
					t.Errorf("worker %d round %d: %v", i, round, err)
					return
				}
				out.Flip()
				if n != len(payloads[i]) || !bytes.Equal(out.Bytes(), payloads[i]) {
					t.Errorf("worker %d round %d: got %d bytes, want %d", i, round, n, len(payloads[i]))
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestNative_DecompressBadData(t *testing.T) {
	acc, err := Native{}.Resolve(RawDeflate)
	require.NoError(t, err)
	defer acc.Release()

	out := buffer.NewView(make([]byte, 256))
	_, err = acc.Decompress(buffer.NewView([]byte{0xff, 0xfe, 0xfd, 0x00, 0x01}), out)
	require.Error(t, err)
}

func TestRawDeflate_ReleaseIdempotent(t *testing.T) {
	acc, err := Native{}.Resolve(RawDeflate)
	require.NoError(t, err)

	require.NoError(t, acc.Release())
	require.NoError(t, acc.Release())
}
