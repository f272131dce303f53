// SPDX-License-Identifier: EPL-2.0

package enginetest

import (
	"errors"
	"fmt"
	"io"
)

var ErrInjected = errors.New("injected sink failure")

// Sink is an in-memory io.ReadWriteSeeker. Writes past the end grow the
// buffer; writes inside it overwrite in place, like a file.
type Sink struct {
	data   []byte
	offset int64

	// Writes counts Write calls; Seeks counts Seek calls.
	Writes int
	Seeks  int
	// Log records the offset of every Write in order.
	Log []int64
}

// Bytes returns the current contents.
func (s *Sink) Bytes() []byte { return s.data }

func (s *Sink) Write(p []byte) (int, error) {
	s.Writes++
	s.Log = append(s.Log, s.offset)

	end := s.offset + int64(len(p))
	if end > int64(len(s.data)) {
		grown := make([]byte, end)
		copy(grown, s.data)
		s.data = grown
	}

	n := copy(s.data[s.offset:], p)
	s.offset += int64(n)
	return n, nil
}

func (s *Sink) Read(p []byte) (int, error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

func (s *Sink) Seek(offset int64, whence int) (int64, error) {
	s.Seeks++

	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	s.offset = newOffset
	return newOffset, nil
}

// FailingSink wraps a Sink and fails its FailWrite-th Write or its
// FailSeek-th Seek (both 1-based). Zero disables a trigger.
type FailingSink struct {
	Sink

	FailWrite int
	FailSeek  int
}

func (f *FailingSink) Write(p []byte) (int, error) {
	if f.FailWrite > 0 && f.Writes+1 == f.FailWrite {
		f.Writes++
		return 0, ErrInjected
	}
	return f.Sink.Write(p)
}

func (f *FailingSink) Seek(offset int64, whence int) (int64, error) {
	if f.FailSeek > 0 && f.Seeks+1 == f.FailSeek {
		f.Seeks++
		return 0, ErrInjected
	}
	return f.Sink.Seek(offset, whence)
}
