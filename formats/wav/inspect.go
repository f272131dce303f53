// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Info is what a reader sees in a WAV header.
type Info struct {
	Format

	AudioFormat int
	ByteRate    int
	RIFFSize    uint32
	DataSize    uint32
}

// Inspect parses the RIFF, fmt and data chunk headers of r. The chunk
// walking is done by go-audio/wav; the RIFF size is read directly since
// the decoder does not expose it.
func Inspect(r io.ReadSeeker) (Info, error) {
	riff, dec, err := openDecoder(r)
	if err != nil {
		return Info{}, err
	}

	if err := dec.FwdToPCM(); err != nil {
		return Info{}, fmt.Errorf("locating data chunk: %w", err)
	}

	return Info{
		Format: Format{
			Channels:      int(dec.NumChans),
			SampleRate:    int(dec.SampleRate),
			BitsPerSample: int(dec.BitDepth),
		},
		AudioFormat: int(dec.WavAudioFormat),
		ByteRate:    int(dec.AvgBytesPerSec),
		RIFFSize:    binary.LittleEndian.Uint32(riff[4:8]),
		DataSize:    uint32(dec.PCMSize),
	}, nil
}

// ReadPCM16 decodes the whole data chunk of a 16-bit PCM WAV.
func ReadPCM16(r io.ReadSeeker) (*goaudio.IntBuffer, error) {
	_, dec, err := openDecoder(r)
	if err != nil {
		return nil, err
	}
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading pcm data: %w", err)
	}

	return buf, nil
}

// Int16s narrows the samples of a 16-bit IntBuffer.
func Int16s(buf *goaudio.IntBuffer) []int16 {
	out := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = int16(v)
	}
	return out
}

// openDecoder checks the RIFF/WAVE tags of r, rewinds it and reads the fmt
// chunk through go-audio/wav. It returns the raw 12-byte RIFF header.
func openDecoder(r io.ReadSeeker) ([12]byte, *gowav.Decoder, error) {
	var riff [12]byte

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return riff, nil, fmt.Errorf("%w", err)
	}
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return riff, nil, fmt.Errorf("%w", err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return riff, nil, ErrNotWavFile
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return riff, nil, fmt.Errorf("%w", err)
	}

	dec := gowav.NewDecoder(r)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return riff, nil, fmt.Errorf("reading wav info: %w", err)
	}

	return riff, dec, nil
}
