// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ik5/modwav/engine"
	"github.com/ik5/modwav/failure"
	"go.uber.org/zap"
)

// Load maps path and asks factory for a context rendering at sampleRate.
// On success the caller owns the returned context and must Close it.
// The mapping and the file handle are released before Load returns.
func Load(path string, sampleRate uint32, factory engine.Factory) (engine.Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, failure.NewRecoverable(failure.KindUnreadable, "open", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			Logger().Warn("closing module file", zap.String("path", path), zap.Error(err))
		}
	}()

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, failure.NewRecoverable(failure.KindSizeUnknown, "seek", path, err)
	}

	// Zero bytes cannot be mapped.
	if size == 0 {
		return nil, failure.NewRecoverable(failure.KindInvalidModule, "load", path, ErrEmptyFile)
	}
	if size > math.MaxInt {
		return nil, failure.NewFatal(failure.KindMapFailed, "mmap", path, ErrFileTooLarge)
	}

	m, err := mapFile(f, int(size))
	if err != nil {
		return nil, failure.NewFatal(failure.KindMapFailed, "mmap", path, err)
	}
	defer func() {
		if err := m.unmap(); err != nil {
			Logger().Warn("unmapping module file", zap.String("path", path), zap.Error(err))
		}
	}()

	return construct(factory, m.data, sampleRate, path)
}

// construct runs the engine's safe construction entry point and sorts its
// status into the two failure tiers. Unknown statuses are fatal, the same
// as an allocation failure.
func construct(factory engine.Factory, data []byte, sampleRate uint32, path string) (engine.Context, error) {
	ctx, status, err := factory.Create(data, sampleRate)

	switch status {
	case engine.StatusOK:
		if ctx == nil {
			return nil, failure.NewFatal(failure.KindEngineContract, "create context", path, ErrNilContext)
		}
		return ctx, nil

	case engine.StatusInvalidModule:
		if ctx != nil {
			if err := ctx.Close(); err != nil {
				Logger().Warn("closing rejected engine context", zap.String("path", path), zap.Error(err))
			}
		}
		return nil, failure.NewRecoverable(failure.KindInvalidModule, "create context", path, wrap(ErrInvalidModule, err))

	case engine.StatusAllocFailed:
		return nil, failure.NewFatal(failure.KindEngineAlloc, "create context", path, wrap(ErrEngineAlloc, err))

	default:
		return nil, failure.NewFatal(failure.KindEngineContract, "create context", path,
			wrap(fmt.Errorf("%w: %s", ErrUnknownStatus, status), err))
	}
}

func wrap(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, cause)
}
