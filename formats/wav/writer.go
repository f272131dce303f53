// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/modwav/failure"
)

// Writer streams PCM samples into a WAV container whose length is not
// known in advance.
//
// NewWriter writes the header with zero RIFF and data sizes, WriteSamples
// appends samples while counting them, and Finish seeks back to patch the
// two size fields. Until Finish returns the file is a well-formed WAV with
// wrong sizes and must not be handed to a consumer.
//
// Offsets are relative to the sink position at NewWriter time, which is 0
// for a freshly created file. Errors from the sink are returned as fatal
// *failure.Error values: a half-written container cannot be recovered.
type Writer struct {
	ws       io.WriteSeeker
	format   Format
	start    int64
	samples  uint64
	scratch  []byte
	field    [4]byte
	padded   bool
	finished bool
}

// NewWriter validates f and writes the placeholder header to ws.
func NewWriter(ws io.WriteSeeker, f Format) (*Writer, error) {
	if err := f.Validate(); err != nil {
		return nil, failure.NewFatal(failure.KindInvalidFormat, "wav header", "", err)
	}

	start, err := ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, failure.NewFatal(failure.KindSeek, "wav header", "", err)
	}

	var header [HeaderSize]byte
	putHeader(header[:], f, 0, 0)

	if _, err := ws.Write(header[:]); err != nil {
		return nil, failure.NewFatal(failure.KindWrite, "wav header", "", err)
	}

	return &Writer{
		ws:     ws,
		format: f,
		start:  start,
	}, nil
}

// Format returns the layout the writer was created with.
func (w *Writer) Format() Format { return w.format }

// Samples is the number of samples (all channels) written so far.
func (w *Writer) Samples() uint32 { return uint32(w.samples) }

// DataSize is the size in bytes of the data written so far.
func (w *Writer) DataSize() uint32 {
	return uint32(w.samples * uint64(w.format.BytesPerSample()))
}

// WriteSamples converts samples to the writer's bit depth and appends
// them in a single write. The scratch buffer grows to the largest block
// seen and is reused afterwards.
func (w *Writer) WriteSamples(samples []int16) error {
	if w.finished || w.padded {
		return failure.NewFatal(failure.KindWrite, "wav data", "", ErrWriterFinished)
	}
	if len(samples)%w.format.Channels != 0 {
		return failure.NewFatal(failure.KindInvalidFormat, "wav data", "", ErrPartialFrame)
	}
	if len(samples) == 0 {
		return nil
	}

	width := w.format.BytesPerSample()
	if (w.samples+uint64(len(samples)))*uint64(width) > maxDataSize {
		return failure.NewFatal(failure.KindTooLarge, "wav data", "",
			fmt.Errorf("%w: %d samples of %d bytes", ErrDataTooLarge, w.samples+uint64(len(samples)), width))
	}

	size := len(samples) * width
	if cap(w.scratch) < size {
		w.scratch = make([]byte, size)
	}
	buf := w.scratch[:size]

	switch width {
	case 1:
		// 8-bit WAV is unsigned with a 128 bias.
		for i, s := range samples {
			buf[i] = byte((s >> 8) + 128)
		}
	case 2:
		for i, s := range samples {
			binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(s))
		}
	case 3:
		for i, s := range samples {
			v := uint32(int32(s) << 8)
			buf[i*3] = byte(v)
			buf[i*3+1] = byte(v >> 8)
			buf[i*3+2] = byte(v >> 16)
		}
	case 4:
		for i, s := range samples {
			binary.LittleEndian.PutUint32(buf[i*4:i*4+4], uint32(int32(s)<<16))
		}
	}

	if _, err := w.ws.Write(buf); err != nil {
		return failure.NewFatal(failure.KindWrite, "wav data", "", err)
	}

	w.samples += uint64(len(samples))

	return nil
}

// Finish patches the RIFF size at offset 4 and the data size at offset 40.
// An odd-sized data chunk gets its RIFF pad byte first, so the two patches
// are always the last writes. The sink is left positioned at the end of
// the file. Finish is a no-op once it has succeeded.
func (w *Writer) Finish() error {
	if w.finished {
		return nil
	}

	dataSize := w.DataSize()
	end := w.start + HeaderSize + int64(dataSize)

	// A retried Finish must not append a second pad byte.
	if dataSize%2 == 1 {
		if !w.padded {
			if _, err := w.ws.Write([]byte{0}); err != nil {
				return failure.NewFatal(failure.KindWrite, "wav pad", "", err)
			}
			w.padded = true
		}
		end++
	}

	if err := w.patch(RIFFSizeOffset, riffSize(dataSize)); err != nil {
		return err
	}
	if err := w.patch(DataSizeOffset, dataSize); err != nil {
		return err
	}

	if _, err := w.ws.Seek(end, io.SeekStart); err != nil {
		return failure.NewFatal(failure.KindSeek, "wav finish", "", err)
	}

	w.finished = true

	return nil
}

func (w *Writer) patch(offset int64, v uint32) error {
	if _, err := w.ws.Seek(w.start+offset, io.SeekStart); err != nil {
		return failure.NewFatal(failure.KindSeek, "wav patch", "", err)
	}

	binary.LittleEndian.PutUint32(w.field[:], v)
	if _, err := w.ws.Write(w.field[:]); err != nil {
		return failure.NewFatal(failure.KindWrite, "wav patch", "", err)
	}

	return nil
}
