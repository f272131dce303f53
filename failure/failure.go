// SPDX-License-Identifier: EPL-2.0

package failure

import (
	"errors"
	"fmt"
	"strings"
)

// Severity tells the caller whether it may continue after an error.
type Severity uint8

const (
	Recoverable Severity = iota
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Recoverable:
		return "recoverable"
	case Fatal:
		return "fatal"
	default:
		return fmt.Sprintf("severity(%d)", uint8(s))
	}
}

// Kind categorizes the error
type Kind string

const (
	// recoverable
	KindUnreadable        Kind = "unreadable"
	KindSizeUnknown       Kind = "size_unknown"
	KindInvalidModule     Kind = "invalid_module"
	KindUnsupportedFormat Kind = "unsupported_format"

	// fatal
	KindMapFailed      Kind = "map_failed"
	KindEngineAlloc    Kind = "engine_alloc"
	KindEngineContract Kind = "engine_contract"
	KindSinkOpen       Kind = "sink_open"
	KindWrite          Kind = "write"
	KindSeek           Kind = "seek"
	KindTooLarge       Kind = "too_large"
	KindInvalidFormat  Kind = "invalid_format"
)

// Error is the structured error type returned by modwav packages.
type Error struct {
	Err      error
	Op       string
	Path     string
	Kind     Kind
	Severity Severity
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.Severity.String())
	b.WriteString(" [")
	b.WriteString(string(e.Kind))
	b.WriteString("]")

	if e.Op != "" {
		b.WriteString(" ")
		b.WriteString(e.Op)
	}

	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by Kind and Severity, so sentinel values built
// with New can be used as errors.Is targets.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Severity == e.Severity && t.Err == nil
}

// New builds an Error without operation context.
func New(sev Severity, kind Kind, err error) *Error {
	return &Error{Severity: sev, Kind: kind, Err: err}
}

// NewRecoverable builds a Recoverable error for op on path.
func NewRecoverable(kind Kind, op, path string, err error) *Error {
	return &Error{Severity: Recoverable, Kind: kind, Op: op, Path: path, Err: err}
}

// NewFatal builds a Fatal error for op on path.
func NewFatal(kind Kind, op, path string, err error) *Error {
	return &Error{Severity: Fatal, Kind: kind, Op: op, Path: path, Err: err}
}

// IsFatal reports whether err carries the Fatal severity anywhere in its chain.
func IsFatal(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Severity == Fatal
	}
	return false
}

// KindOf returns the Kind of the first *Error in err's chain, or "" when
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err's chain holds an *Error of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
