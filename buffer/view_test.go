package buffer

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestView_NewView(t *testing.T) {
	v := NewView(make([]byte, 16))

	require.Zero(t, v.Position())
	require.Equal(t, 16, v.Limit())
	require.Equal(t, 16, v.Remaining())
	require.Equal(t, 16, v.Cap())
	require.False(t, v.Direct())
}

func TestView_NewDirect(t *testing.T) {
	v := NewDirect(4096)

	require.True(t, v.Direct())
	require.Equal(t, 4096, v.Cap())
	require.Equal(t, 4096, v.Remaining())
}

func TestView_WriteAdvancesPosition(t *testing.T) {
	v := NewView(make([]byte, 8))

	n, err := v.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 3, v.Position())
	require.Equal(t, 5, v.Remaining())
}

func TestView_WriteShortWrite(t *testing.T) {
	v := NewView(make([]byte, 4))

	n, err := v.Write([]byte{1, 2, 3, 4, 5, 6})
	require.ErrorIs(t, err, io.ErrShortWrite)
	require.Equal(t, 4, n)
	require.Zero(t, v.Remaining())
}

func TestView_Flip(t *testing.T) {
	v := NewView(make([]byte, 8))
	_, err := v.Write([]byte{1, 2, 3})
	require.NoError(t, err)

	v.Flip()
	require.Zero(t, v.Position())
	require.Equal(t, 3, v.Limit())
	require.Equal(t, []byte{1, 2, 3}, v.Bytes())
}

func TestView_BytesClippedToLimit(t *testing.T) {
	v := NewView(make([]byte, 16))
	v.SetLimit(4)

	b := v.Bytes()
	require.Len(t, b, 4)
	require.Equal(t, 4, cap(b), "capacity must be clipped so decoders cannot write past the limit")
}

func TestView_SetLimitPullsPositionBack(t *testing.T) {
	v := NewView(make([]byte, 16))
	v.SetPosition(10)

	v.SetLimit(6)
	require.Equal(t, 6, v.Position())
}

func TestView_Rewind(t *testing.T) {
	v := NewView(make([]byte, 8))
	v.SetPosition(5)

	v.Rewind()
	require.Zero(t, v.Position())
	require.Equal(t, 8, v.Limit())
}

func TestView_Advance(t *testing.T) {
	v := NewView(make([]byte, 8))
	v.Advance(5)
	require.Equal(t, 5, v.Position())

	require.Panics(t, func() { v.Advance(4) })
	require.Panics(t, func() { v.Advance(-1) })
}

func TestView_PositionBounds(t *testing.T) {
	v := NewView(make([]byte, 8))

	require.Panics(t, func() { v.SetPosition(9) })
	require.Panics(t, func() { v.SetPosition(-1) })
	require.Panics(t, func() { v.SetLimit(9) })
}
