// Package buffer provides the byte-range views the codecs operate on.
//
// A View is a cursor over a contiguous byte range with a read/write position
// and a limit, following the classic position/limit/flip buffer contract:
// writers advance the position as bytes are produced, and Flip switches the
// view from write mode to read mode so the readable range covers exactly the
// bytes written so far.
//
// Views never own their backing memory policy: the codec layer treats them as
// per-call working state supplied by the I/O layer and never retains them
// beyond a single call.
package buffer

import (
	"fmt"
	"io"

	"github.com/ncw/directio"
)

// View is a bounded cursor over a contiguous byte range.
//
// The invariant 0 <= position <= limit <= cap holds at all times; methods
// panic on attempts to violate it, mirroring the behavior callers expect from
// index errors rather than returning errors on programmer mistakes.
type View struct {
	data   []byte
	pos    int
	lim    int
	direct bool
}

var _ io.Writer = (*View)(nil)

// NewView wraps data in a view with position 0 and limit len(data).
func NewView(data []byte) *View {
	return &View{data: data, lim: len(data)}
}

// NewDirect allocates a view over memory-aligned storage suitable for
// O_DIRECT block I/O. Direct views are natively addressable by platform
// accelerators; codecs use this property to select zero-copy decompression
// paths.
func NewDirect(size int) *View {
	v := NewView(directio.AlignedBlock(size))
	v.direct = true

	return v
}

// Direct reports whether the view is backed by natively-addressable
// (alignment-allocated) storage.
func (v *View) Direct() bool {
	return v.direct
}

// Position returns the current read/write position.
func (v *View) Position() int {
	return v.pos
}

// SetPosition moves the read/write position. Panics if pos is negative or
// greater than the limit.
func (v *View) SetPosition(pos int) {
	if pos < 0 || pos > v.lim {
		panic(fmt.Sprintf("buffer: SetPosition(%d) out of range [0, %d]", pos, v.lim))
	}
	v.pos = pos
}

// Limit returns the current limit.
func (v *View) Limit() int {
	return v.lim
}

// SetLimit moves the limit. Panics if lim is negative or greater than the
// capacity. If the position is beyond the new limit it is pulled back to it.
func (v *View) SetLimit(lim int) {
	if lim < 0 || lim > len(v.data) {
		panic(fmt.Sprintf("buffer: SetLimit(%d) out of range [0, %d]", lim, len(v.data)))
	}
	v.lim = lim
	if v.pos > lim {
		v.pos = lim
	}
}

// Remaining returns limit - position, the number of bytes left to read or
// the capacity left to write.
func (v *View) Remaining() int {
	return v.lim - v.pos
}

// Cap returns the total capacity of the backing range.
func (v *View) Cap() int {
	return len(v.data)
}

// Bytes returns the remaining byte range [position, limit) without copying.
// The slice capacity is clipped to the limit so decoders handed this slice
// can never write past it. Writers that fill (a prefix of) this slice must
// call Advance with the number of bytes produced.
func (v *View) Bytes() []byte {
	return v.data[v.pos:v.lim:v.lim]
}

// Advance moves the position forward by n bytes. Panics if n is negative or
// exceeds Remaining.
func (v *View) Advance(n int) {
	if n < 0 || n > v.Remaining() {
		panic(fmt.Sprintf("buffer: Advance(%d) with %d remaining", n, v.Remaining()))
	}
	v.pos += n
}

// Write copies p into the view at the current position, advancing it.
// It writes at most Remaining bytes and returns io.ErrShortWrite when the
// view cannot hold all of p.
func (v *View) Write(p []byte) (int, error) {
	n := copy(v.data[v.pos:v.lim], p)
	v.pos += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}

	return n, nil
}

// Flip switches the view from write mode to read mode: the limit moves to
// the current position and the position rewinds to the start of the range.
func (v *View) Flip() {
	v.lim = v.pos
	v.pos = 0
}

// Rewind moves the position back to the start of the range without touching
// the limit.
func (v *View) Rewind() {
	v.pos = 0
}
