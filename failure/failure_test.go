package failure

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"full",
			NewFatal(KindMapFailed, "mmap", "/tmp/a.mod", io.ErrUnexpectedEOF),
			"fatal [map_failed] mmap /tmp/a.mod: unexpected EOF",
		},
		{
			"no path",
			NewRecoverable(KindInvalidModule, "create context", "", errors.New("not sane")),
			"recoverable [invalid_module] create context: not sane",
		},
		{
			"bare",
			New(Fatal, KindWrite, nil),
			"fatal [write]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("plain"), false},
		{"recoverable", NewRecoverable(KindUnreadable, "open", "x", nil), false},
		{"fatal", NewFatal(KindSinkOpen, "create", "y", nil), true},
		{"wrapped fatal", fmt.Errorf("convert: %w", NewFatal(KindSeek, "patch", "", nil)), true},
		{"joined", errors.Join(errors.New("a"), NewFatal(KindWrite, "", "", nil)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsFatal(tt.err); got != tt.want {
				t.Errorf("IsFatal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load: %w", NewRecoverable(KindSizeUnknown, "seek", "z", io.EOF))

	if got := KindOf(err); got != KindSizeUnknown {
		t.Errorf("KindOf() = %q, want %q", got, KindSizeUnknown)
	}
	if !Is(err, KindSizeUnknown) {
		t.Error("Is(err, KindSizeUnknown) = false, want true")
	}
	if Is(err, KindUnreadable) {
		t.Error("Is(err, KindUnreadable) = true, want false")
	}
	if got := KindOf(errors.New("plain")); got != "" {
		t.Errorf("KindOf(plain) = %q, want \"\"", got)
	}
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NewFatal(KindWrite, "wav data", "", io.ErrShortWrite)

	if !errors.Is(err, io.ErrShortWrite) {
		t.Error("errors.Is(err, io.ErrShortWrite) = false, want true")
	}

	var target *Error
	if !errors.As(fmt.Errorf("x: %w", err), &target) {
		t.Fatal("errors.As() = false, want true")
	}
	if target.Op != "wav data" {
		t.Errorf("Op = %q, want %q", target.Op, "wav data")
	}
}

func TestError_IsSentinel(t *testing.T) {
	t.Parallel()

	errFatalWrite := New(Fatal, KindWrite, nil)
	err := NewFatal(KindWrite, "close", "out.wav", io.ErrClosedPipe)

	if !errors.Is(err, errFatalWrite) {
		t.Error("errors.Is(err, fatal write sentinel) = false, want true")
	}
	if errors.Is(err, New(Recoverable, KindWrite, nil)) {
		t.Error("severity mismatch matched")
	}
	if errors.Is(err, New(Fatal, KindSeek, nil)) {
		t.Error("kind mismatch matched")
	}
}

func TestSeverity_String(t *testing.T) {
	t.Parallel()

	if Recoverable.String() != "recoverable" || Fatal.String() != "fatal" {
		t.Errorf("Severity strings = %q, %q", Recoverable, Fatal)
	}
	if got := Severity(9).String(); got != "severity(9)" {
		t.Errorf("Severity(9).String() = %q, want \"severity(9)\"", got)
	}
}
