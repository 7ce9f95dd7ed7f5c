package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"

	"github.com/tessera-db/tessera/accel"
	"github.com/tessera-db/tessera/buffer"
	"github.com/tessera-db/tessera/format"
	"github.com/tessera-db/tessera/internal/options"
)

// Compression effort constants forwarded from the underlying DEFLATE
// implementation.
const (
	LevelFastest = flate.BestSpeed
	LevelFast    = flate.BestSpeed + 1
	LevelBest    = flate.BestCompression
	LevelDefault = flate.DefaultCompression
)

// Deflate is the zlib-family block codec. It produces and consumes raw
// RFC 1951 DEFLATE bitstreams with no zlib or gzip framing; block lengths and
// checksums belong to the surrounding file format.
//
// A fresh encoder or decoder is constructed for every call and torn down
// before it returns, so the same input and configuration always produce the
// same compressed bytes and concurrent calls on distinct codec instances
// never interact. On a single instance, Compress, Decompress and Available
// are safe to call concurrently; Modify never mutates the receiver, while
// Reset and Close mutate shared state and need external exclusion.
type Deflate struct {
	level    int
	strategy Strategy
	provider accel.Provider

	resolveOnce sync.Once
	accelerator accel.Accelerator
}

var _ DirectDecompressionCodec = (*Deflate)(nil)

// DeflateOption represents a functional option for configuring a Deflate codec.
type DeflateOption = options.Option[*Deflate]

// WithLevel sets the compression effort, in the range
// [flate.HuffmanOnly, flate.BestCompression].
func WithLevel(level int) DeflateOption {
	return options.New(func(d *Deflate) error {
		if level < flate.HuffmanOnly || level > flate.BestCompression {
			return fmt.Errorf("compress: invalid deflate level %d", level)
		}
		d.level = level

		return nil
	})
}

// WithStrategy sets the encoding strategy.
func WithStrategy(strategy Strategy) DeflateOption {
	return options.New(func(d *Deflate) error {
		if strategy != StrategyDefault && strategy != StrategyFiltered {
			return fmt.Errorf("compress: invalid deflate strategy %d", strategy)
		}
		d.strategy = strategy

		return nil
	})
}

// WithAcceleratorProvider injects the provider the codec resolves its
// decompression accelerator from. Use accel.Absent to disable acceleration.
func WithAcceleratorProvider(provider accel.Provider) DeflateOption {
	return options.NoError(func(d *Deflate) {
		d.provider = provider
	})
}

// NewDeflate creates a Deflate codec with library defaults: default
// compression level, default strategy, and the native accelerator provider.
func NewDeflate(opts ...DeflateOption) (*Deflate, error) {
	d := &Deflate{
		level:    flate.DefaultCompression,
		strategy: StrategyDefault,
		provider: accel.Native{},
	}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Kind returns format.CompressionZlib.
func (d *Deflate) Kind() format.CompressionType {
	return format.CompressionZlib
}

// Level returns the configured compression effort.
func (d *Deflate) Level() int {
	return d.level
}

// Strategy returns the configured encoding strategy.
func (d *Deflate) Strategy() Strategy {
	return d.strategy
}

// encoderLevel maps the (level, strategy) configuration onto the single
// level knob the Go DEFLATE implementation exposes. Filtered means less
// LZ77, more Huffman, which is exactly what HuffmanOnly provides.
func (d *Deflate) encoderLevel() int {
	if d.strategy == StrategyFiltered {
		return flate.HuffmanOnly
	}

	return d.level
}

// Compress encodes the remaining bytes of in as a raw DEFLATE stream written
// into out and, once out is full, into overflow. It returns true only when
// the stream came out strictly smaller than the input. It returns false,
// with no error, when the output capacity runs out with no overflow supplied
// or when the stream cannot beat the uncompressed size — including the empty
// input, whose stream terminator alone exceeds it.
func (d *Deflate) Compress(in, out, overflow *buffer.View) (bool, error) {
	length := in.Remaining()
	sw := &spillWriter{out: out, overflow: overflow, max: length}

	fw, err := flate.NewWriter(sw, d.encoderLevel())
	if err != nil {
		return false, fmt.Errorf("deflate: create encoder: %w", err)
	}

	_, err = fw.Write(in.Bytes())
	if err == nil {
		err = fw.Close()
	}
	if err != nil {
		if errors.Is(err, errSpillExhausted) || errors.Is(err, errNotSmaller) {
			return false, nil
		}

		return false, fmt.Errorf("deflate: compress block: %w", err)
	}

	return sw.written < length, nil
}

// Decompress decodes the remaining bytes of in into out. When both views are
// direct and the accelerator is available the operation is delegated to
// DirectDecompress; otherwise a generic in-process decoder runs. The caller
// must size out for the full decompressed block.
//
// On return out is flipped to read mode covering exactly the produced bytes,
// in is fully consumed, and the produced byte count is returned.
func (d *Deflate) Decompress(in, out *buffer.View) (int, error) {
	if in.Direct() && out.Direct() && d.Available() {
		return d.DirectDecompress(in, out)
	}

	start := out.Position()
	fr := flate.NewReader(bytes.NewReader(in.Bytes()))

	dst := out.Bytes()
	n := 0
	for n < len(dst) {
		m, err := fr.Read(dst[n:])
		n += m
		if err == io.EOF {
			break
		}
		if err != nil {
			_ = fr.Close()
			return 0, fmt.Errorf("deflate: bad compression data: %w", err)
		}
	}
	_ = fr.Close()

	out.Advance(n)
	flipWritten(out, start)
	in.SetPosition(in.Limit())

	return n, nil
}

// DirectDecompress delegates the whole decompression to the resolved
// accelerator. Callers must ensure Available reported true; without an
// accelerator an error wrapping accel.ErrUnavailable is returned.
func (d *Deflate) DirectDecompress(in, out *buffer.View) (int, error) {
	if !d.Available() {
		return 0, fmt.Errorf("deflate: direct decompress: %w", accel.ErrUnavailable)
	}

	start := out.Position()
	n, err := d.accelerator.Decompress(in, out)
	if err != nil {
		return 0, fmt.Errorf("deflate: direct decompress: %w", err)
	}

	flipWritten(out, start)
	in.SetPosition(in.Limit())

	return n, nil
}

// Available reports whether the accelerated decompression path can be used.
// The first call resolves the raw-DEFLATE capability from the injected
// provider; failure is cached permanently for this instance and silently
// downgrades all decompression to the generic path.
func (d *Deflate) Available() bool {
	d.resolveOnce.Do(func() {
		a, err := d.provider.Resolve(accel.RawDeflate)
		if err != nil {
			return
		}
		d.accelerator = a
	})

	return d.accelerator != nil
}

// Modify derives a new codec from the current configuration by folding the
// modifiers, in order, into a level slot and a strategy slot; the last
// modifier on an axis wins. With no modifiers the receiver itself is
// returned. The new codec shares only the injected provider and resolves its
// own accelerator lazily.
func (d *Deflate) Modify(mods ...Modifier) Codec {
	if len(mods) == 0 {
		return d
	}

	level, strategy := d.level, d.strategy
	for _, m := range mods {
		switch m {
		case ModifierBinary:
			strategy = StrategyFiltered
		case ModifierText:
			strategy = StrategyDefault
		case ModifierFastest:
			level = LevelFastest
		case ModifierFast:
			level = LevelFast
		case ModifierDefault:
			level = LevelDefault
		}
	}

	return &Deflate{level: level, strategy: strategy, provider: d.provider}
}

// Reset restores the default level and strategy in place and resets a
// resolved accelerator's internal state.
func (d *Deflate) Reset() {
	d.level = flate.DefaultCompression
	d.strategy = StrategyDefault
	if d.accelerator != nil {
		d.accelerator.Reset()
	}
}

// Close releases the resolved accelerator's resources, if any. Safe to call
// when the accelerator was never resolved.
func (d *Deflate) Close() error {
	if d.accelerator != nil {
		return d.accelerator.Release()
	}

	return nil
}
