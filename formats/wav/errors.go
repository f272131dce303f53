// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrInvalidChannels       = errors.New("channel count must be positive")
	ErrInvalidSampleRate     = errors.New("sample rate must be positive")
	ErrUnsupportedBitDepth   = errors.New("bits per sample must be 8, 16, 24 or 32")
	ErrDataTooLarge          = errors.New("data chunk exceeds 4 GiB")
	ErrPartialFrame          = errors.New("sample count must be multiple of channels")
	ErrWriterFinished        = errors.New("writer already finished")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
)
