// SPDX-License-Identifier: EPL-2.0

package xm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/modwav/engine"
	"github.com/quasilyte/xm"
	"github.com/quasilyte/xm/xmfile"
	"go.uber.org/zap"
)

// Channels is the number of interleaved channels every context renders.
const Channels = 2

// bytesPerFrame is one stereo frame of 16-bit samples on the stream.
const bytesPerFrame = Channels * 2

var (
	ErrParserPanic = errors.New("xm parser panicked")
	ErrClosed      = errors.New("context already closed")
)

// Factory creates contexts for XM modules.
type Factory struct {
	// LinearInterpolation smooths sample playback at some CPU cost.
	LinearInterpolation bool
}

// Create parses data and loads it into a fresh stream. Parse and load
// errors are reported as engine.StatusInvalidModule.
func (f Factory) Create(data []byte, sampleRate uint32) (ctx engine.Context, status engine.Status, err error) {
	defer func() {
		if r := recover(); r != nil {
			engine.Logger().Debug("xm parser panic", zap.Any("panic", r))
			ctx, status, err = nil, engine.StatusInvalidModule, fmt.Errorf("%w: %v", ErrParserPanic, r)
		}
	}()

	parser := xmfile.NewParser(xmfile.ParserConfig{})
	module, err := parser.ParseFromBytes(data)
	if err != nil {
		return nil, engine.StatusInvalidModule, fmt.Errorf("parsing xm: %w", err)
	}

	c := &context{
		stream: xm.NewStream(),
		module: module,
		config: xm.LoadModuleConfig{
			LinearInterpolation: f.LinearInterpolation,
			SampleRate:          int(sampleRate),
		},
	}
	c.stream.SetLooping(false)

	if err := c.rewind(); err != nil {
		return nil, engine.StatusInvalidModule, err
	}

	return c, engine.StatusOK, nil
}

// context adapts an xm.Stream to engine.Context.
type context struct {
	stream *xm.Stream
	module *xmfile.Module
	config xm.LoadModuleConfig
	buf    []byte

	maxLoops int
	loops    int
	closed   bool
}

func (c *context) SetMaxLoopCount(n int) { c.maxLoops = n }
func (c *context) LoopCount() int        { return c.loops }

func (c *context) rewind() error {
	if err := c.stream.LoadModule(c.module, c.config); err != nil {
		return fmt.Errorf("loading xm: %w", err)
	}
	return nil
}

func (c *context) limitReached() bool {
	return c.maxLoops > 0 && c.loops >= c.maxLoops
}

func (c *context) GenerateSamples(dst []int16) {
	frames := len(dst) / Channels
	want := frames * bytesPerFrame
	if cap(c.buf) < want {
		c.buf = make([]byte, want)
	}
	buf := c.buf[:want]

	n := 0
	for n < want && !c.closed && !c.limitReached() {
		read, err := c.stream.Read(buf[n:])
		n += read
		if err == nil && read > 0 {
			continue
		}

		if err != nil && !errors.Is(err, io.EOF) {
			engine.Logger().Warn("xm stream read", zap.Error(err))
		}

		c.loops++
		if c.limitReached() {
			break
		}
		if err := c.rewind(); err != nil {
			engine.Logger().Warn("restarting xm module", zap.Error(err))
			break
		}
	}

	n -= n % 2
	for i := 0; i < n/2; i++ {
		dst[i] = int16(binary.LittleEndian.Uint16(buf[2*i:]))
	}

	// The block is always full: whatever the song did not cover is silence.
	clear(dst[n/2:])
}

func (c *context) Close() error {
	if c.closed {
		return ErrClosed
	}

	c.closed = true
	c.stream = nil
	c.module = nil

	return nil
}
