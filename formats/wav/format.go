// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"math"
)

// Canonical PCM WAV layout. The two size fields are written as zero by
// Writer and patched by Finish.
const (
	HeaderSize     = 44
	RIFFSizeOffset = 4
	DataSizeOffset = 40

	// riffOverhead is the number of header bytes counted by the RIFF size
	// field besides the data payload: "WAVE" + fmt chunk + data chunk header.
	riffOverhead = HeaderSize - 8

	fmtChunkSize = 16
	formatPCM    = 1

	maxDataSize = math.MaxUint32 - riffOverhead
)

// Format describes the PCM layout of a WAV file.
type Format struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
}

// BytesPerSample is the width of one sample of one channel.
func (f Format) BytesPerSample() int { return f.BitsPerSample / 8 }

// BlockAlign is the size of one interleaved frame in bytes.
func (f Format) BlockAlign() int { return f.Channels * f.BytesPerSample() }

// ByteRate is the number of data bytes per second of audio.
func (f Format) ByteRate() int { return f.SampleRate * f.BlockAlign() }

// Validate checks f can be written as integer PCM.
func (f Format) Validate() error {
	if f.Channels <= 0 || f.Channels > math.MaxUint16 {
		return ErrInvalidChannels
	}
	if f.SampleRate <= 0 || int64(f.SampleRate) > math.MaxUint32 {
		return ErrInvalidSampleRate
	}
	switch f.BitsPerSample {
	case 8, 16, 24, 32:
	default:
		return ErrUnsupportedBitDepth
	}
	return nil
}

// putHeader fills header (HeaderSize bytes) for f with the given size fields.
func putHeader(header []byte, f Format, riffSize, dataSize uint32) {
	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[RIFFSizeOffset:RIFFSizeOffset+4], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(f.BlockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], uint16(f.BitsPerSample))

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[DataSizeOffset:DataSizeOffset+4], dataSize)
}

// riffSize is the RIFF chunk size for a data payload of dataSize bytes,
// including the pad byte RIFF requires after an odd-sized chunk.
func riffSize(dataSize uint32) uint32 {
	return riffOverhead + dataSize + dataSize%2
}
