// SPDX-License-Identifier: EPL-2.0

package encoder

import (
	"errors"
	"io"

	"github.com/ik5/modwav/engine"
	"github.com/ik5/modwav/failure"
	"github.com/ik5/modwav/formats/wav"
	"go.uber.org/zap"
)

// DefaultBlockSize is the number of samples (all channels) requested from
// the engine per iteration: one second of 48 kHz audio.
const DefaultBlockSize = 48000

var ErrInvalidBlockSize = errors.New("block size must be a positive multiple of channels")

// Options tunes Encode. The zero value is usable.
type Options struct {
	// BlockSize is the sample buffer capacity. Zero means DefaultBlockSize.
	BlockSize int
	// OnBlock, if set, is called after every block with the running
	// sample count.
	OnBlock func(samples uint32)
}

func (o Options) blockSize() int {
	if o.BlockSize == 0 {
		return DefaultBlockSize
	}
	return o.BlockSize
}

// Encode writes one loop of ctx to sink as a WAV file in format f and
// returns the number of samples written. ctx is not closed.
func Encode(ctx engine.Context, f wav.Format, sink io.WriteSeeker, opts Options) (uint32, error) {
	if err := f.Validate(); err != nil {
		return 0, failure.NewFatal(failure.KindInvalidFormat, "encode", "", err)
	}

	blockSize := opts.blockSize()
	if blockSize <= 0 || blockSize%f.Channels != 0 {
		return 0, failure.NewFatal(failure.KindInvalidFormat, "encode", "", ErrInvalidBlockSize)
	}

	ctx.SetMaxLoopCount(1)

	w, err := wav.NewWriter(sink, f)
	if err != nil {
		return 0, err
	}

	Logger().Debug("encoding",
		zap.Int("channels", f.Channels),
		zap.Int("sample_rate", f.SampleRate),
		zap.Int("bits_per_sample", f.BitsPerSample),
		zap.Int("block_size", blockSize))

	buf := make([]int16, blockSize)
	blocks := 0

	for ctx.LoopCount() == 0 {
		ctx.GenerateSamples(buf)

		if err := w.WriteSamples(buf); err != nil {
			return w.Samples(), err
		}
		blocks++

		if opts.OnBlock != nil {
			opts.OnBlock(w.Samples())
		}
	}

	if err := w.Finish(); err != nil {
		return w.Samples(), err
	}

	Logger().Debug("encoded",
		zap.Int("blocks", blocks),
		zap.Uint32("samples", w.Samples()),
		zap.Uint32("data_bytes", w.DataSize()))

	return w.Samples(), nil
}
