// SPDX-License-Identifier: EPL-2.0

package engine

import "fmt"

// Status is the outcome of a Factory.Create call.
type Status int

const (
	StatusOK Status = iota
	StatusInvalidModule
	StatusAllocFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidModule:
		return "invalid module"
	case StatusAllocFailed:
		return "allocation failed"
	default:
		return fmt.Sprintf("unknown status %d", int(s))
	}
}

// Context is a ready-to-play module owned by the caller.
type Context interface {
	// SetMaxLoopCount limits playback to n full loops of the module.
	// Once the limit is reached LoopCount is non-zero.
	SetMaxLoopCount(n int)
	// GenerateSamples fills every element of dst with interleaved signed
	// 16-bit PCM. len(dst) must be a multiple of the channel count.
	GenerateSamples(dst []int16)
	// LoopCount is the number of times the module has looped so far.
	LoopCount() int
	// Close releases the context. It must be called exactly once.
	Close() error
}

// Factory builds a Context from module bytes.
type Factory interface {
	Create(data []byte, sampleRate uint32) (Context, Status, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(data []byte, sampleRate uint32) (Context, Status, error)

func (f FactoryFunc) Create(data []byte, sampleRate uint32) (Context, Status, error) {
	return f(data, sampleRate)
}
