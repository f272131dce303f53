// SPDX-License-Identifier: EPL-2.0

package loader

import "errors"

var (
	ErrEmptyFile       = errors.New("module file is empty")
	ErrFileTooLarge    = errors.New("module file too large to map")
	ErrNilContext      = errors.New("engine reported success without a context")
	ErrUnknownStatus   = errors.New("engine returned an unknown status")
	ErrEngineAlloc     = errors.New("engine allocation failed")
	ErrInvalidModule   = errors.New("module is not sane")
	errMmapNotMapped   = &mmapError{"not mapped", nil}
	errMmapUnsupported = &mmapError{"unsupported platform", nil}
)

type mmapError struct {
	op  string
	err error
}

func (e *mmapError) Error() string {
	if e.err != nil {
		return "mmap: " + e.op + ": " + e.err.Error()
	}
	return "mmap: " + e.op
}

func (e *mmapError) Unwrap() error {
	return e.err
}
