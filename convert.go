// SPDX-License-Identifier: EPL-2.0

package modwav

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/ik5/modwav/encoder"
	"github.com/ik5/modwav/engine"
	"github.com/ik5/modwav/engine/tracker"
	"github.com/ik5/modwav/engine/xm"
	"github.com/ik5/modwav/failure"
	"github.com/ik5/modwav/formats/wav"
	"github.com/ik5/modwav/loader"
	"go.uber.org/zap"
)

const (
	// Channels is fixed by the tracker engine, which renders stereo.
	Channels = tracker.Channels

	DefaultSampleRate    = 48000
	DefaultBitsPerSample = 16
)

var ErrUnsupportedFormat = errors.New("no engine registered for extension")

// Options configures Convert. Zero fields take their defaults.
type Options struct {
	SampleRate    int
	BitsPerSample int
	// BlockSize is the number of samples requested from the engine per
	// iteration, see encoder.Options.
	BlockSize int
	// Registry maps input extensions to engines. Nil means DefaultRegistry().
	Registry *engine.Registry
	// OnBlock is called after each written block with the running sample count.
	OnBlock func(samples uint32)
}

func (o Options) withDefaults() Options {
	if o.SampleRate == 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.BitsPerSample == 0 {
		o.BitsPerSample = DefaultBitsPerSample
	}
	if o.BlockSize == 0 {
		o.BlockSize = encoder.DefaultBlockSize
	}
	if o.Registry == nil {
		o.Registry = DefaultRegistry()
	}
	return o
}

// Result summarizes a finished conversion.
type Result struct {
	Format    wav.Format
	Samples   uint32
	Frames    uint32
	DataBytes uint32
	Duration  time.Duration
}

// DefaultRegistry returns a registry with the MOD, S3M and XM engines.
func DefaultRegistry() *engine.Registry {
	reg := engine.NewRegistry()
	reg.Register("mod", tracker.Factory{Format: tracker.FormatMOD})
	reg.Register("s3m", tracker.Factory{Format: tracker.FormatS3M})
	reg.Register("xm", xm.Factory{})
	return reg
}

// Convert renders one loop of the module at inPath into a WAV file at
// outPath. The engine is picked by inPath's extension. Nothing is created
// at outPath when loading fails.
func Convert(inPath, outPath string, opts Options) (Result, error) {
	opts = opts.withDefaults()

	format := wav.Format{
		Channels:      Channels,
		SampleRate:    opts.SampleRate,
		BitsPerSample: opts.BitsPerSample,
	}
	if err := format.Validate(); err != nil {
		return Result{}, failure.NewFatal(failure.KindInvalidFormat, "convert", outPath, err)
	}
	if opts.BlockSize <= 0 || opts.BlockSize%format.Channels != 0 {
		return Result{}, failure.NewFatal(failure.KindInvalidFormat, "convert", outPath, encoder.ErrInvalidBlockSize)
	}

	factory, ok := opts.Registry.Get(filepath.Ext(inPath))
	if !ok {
		return Result{}, failure.NewRecoverable(failure.KindUnsupportedFormat, "convert", inPath, ErrUnsupportedFormat)
	}

	ctx, err := loader.Load(inPath, uint32(opts.SampleRate), factory)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if err := ctx.Close(); err != nil {
			engine.Logger().Warn("closing engine context", zap.String("path", inPath), zap.Error(err))
		}
	}()

	out, err := os.Create(outPath)
	if err != nil {
		return Result{}, failure.NewFatal(failure.KindSinkOpen, "create", outPath, err)
	}

	samples, err := encoder.Encode(ctx, format, out, encoder.Options{
		BlockSize: opts.BlockSize,
		OnBlock:   opts.OnBlock,
	})
	if err != nil {
		_ = out.Close()
		return Result{}, err
	}

	if err := out.Close(); err != nil {
		return Result{}, failure.NewFatal(failure.KindWrite, "close", outPath, err)
	}

	return newResult(format, samples), nil
}

func newResult(f wav.Format, samples uint32) Result {
	frames := samples / uint32(f.Channels)

	return Result{
		Format:    f,
		Samples:   samples,
		Frames:    frames,
		DataBytes: samples * uint32(f.BytesPerSample()),
		Duration:  time.Duration(frames) * time.Second / time.Duration(f.SampleRate),
	}
}
