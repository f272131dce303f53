// SPDX-License-Identifier: EPL-2.0

package enginetest

import (
	"math"

	"github.com/ik5/modwav/engine"
)

// MockContext is a test helper that generates a deterministic module.
// It implements engine.Context. One loop of the module is totalFrames frames
// long; generation past the end wraps around and bumps the loop counter.
type MockContext struct {
	channels    int
	totalFrames int
	position    int // frame position inside the current loop
	loops       int
	maxLoops    int
	waveform    func(frame int, channel int) int16

	// Calls counts GenerateSamples invocations.
	Calls int
	// Closed counts Close invocations.
	Closed int
}

// NewMockContext creates a new mock engine context.
// totalFrames is the number of frames in one loop of the module.
// waveform generates the sample for a frame index and channel.
func NewMockContext(channels, totalFrames int, waveform func(frame int, channel int) int16) *MockContext {
	return &MockContext{
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewRampContext creates a mock whose samples encode frame and channel, so
// reordering or loss shows up in comparisons.
func NewRampContext(channels, totalFrames int) *MockContext {
	return NewMockContext(channels, totalFrames, func(frame int, channel int) int16 {
		return int16(frame*channels + channel)
	})
}

// NewSineContext creates a mock that generates a full-scale sine wave.
func NewSineContext(channels, totalFrames, sampleRate int, frequency float64) *MockContext {
	return NewMockContext(channels, totalFrames, func(frame int, channel int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(math.Sin(2*math.Pi*frequency*t) * math.MaxInt16)
	})
}

// NewSilentContext creates a mock that generates silence.
func NewSilentContext(channels, totalFrames int) *MockContext {
	return NewMockContext(channels, totalFrames, func(int, int) int16 { return 0 })
}

func (m *MockContext) SetMaxLoopCount(n int) { m.maxLoops = n }
func (m *MockContext) MaxLoopCount() int     { return m.maxLoops }
func (m *MockContext) LoopCount() int        { return m.loops }

func (m *MockContext) Close() error {
	m.Closed++
	return nil
}

// Reset rewinds the mock to its first frame.
func (m *MockContext) Reset() {
	m.position = 0
	m.loops = 0
	m.Calls = 0
}

func (m *MockContext) GenerateSamples(dst []int16) {
	m.Calls++

	frames := len(dst) / m.channels
	for frame := range frames {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.position, ch)
		}

		m.position++
		if m.position >= m.totalFrames {
			m.position = 0
			m.loops++
		}
	}
}

// Factory returns an engine.Factory that hands out ctx when data is
// non-empty and reports StatusInvalidModule otherwise. The data passed to
// the last Create call is copied into *seen when seen is non-nil.
func Factory(ctx engine.Context, seen *[]byte) engine.Factory {
	return engine.FactoryFunc(func(data []byte, _ uint32) (engine.Context, engine.Status, error) {
		if seen != nil {
			*seen = append((*seen)[:0], data...)
		}
		if len(data) == 0 {
			return nil, engine.StatusInvalidModule, nil
		}
		return ctx, engine.StatusOK, nil
	})
}

// StatusFactory returns an engine.Factory that always reports status and
// returns ctx alongside it.
func StatusFactory(ctx engine.Context, status engine.Status) engine.Factory {
	return engine.FactoryFunc(func([]byte, uint32) (engine.Context, engine.Status, error) {
		return ctx, status, nil
	})
}
