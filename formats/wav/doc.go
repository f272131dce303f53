// SPDX-License-Identifier: EPL-2.0

// Package wav writes and inspects PCM WAV files.
//
// Writing streams samples into a seekable sink whose total length is not
// known up front. Reading uses the github.com/go-audio library and is
// meant for checking what was written.
//
// # Supported Formats
//
// Currently supported:
//   - Integer PCM, 8, 16, 24 and 32 bits
//   - Any channel count
//   - Any sample rate
//
// # Writing WAV Files
//
// Writer uses a two phase protocol. NewWriter emits the canonical 44-byte
// header with the RIFF size (offset 4) and the data size (offset 40) set
// to zero. WriteSamples appends blocks while counting samples. Finish
// seeks back and patches both sizes:
//
//	f, _ := os.Create("output.wav")
//	w, err := wav.NewWriter(f, wav.Format{Channels: 2, SampleRate: 48000, BitsPerSample: 16})
//	if err != nil {
//	    // Handle error
//	}
//	for block := range blocks {
//	    if err := w.WriteSamples(block); err != nil {
//	        // Handle error
//	    }
//	}
//	err = w.Finish()
//
// Samples are always 16-bit in memory. Other bit depths are produced by
// shifting: 8-bit output is unsigned, 24 and 32-bit output is the 16-bit
// value in the most significant bytes. All integers are little-endian
// regardless of the host byte order.
//
// The payload is never buffered as a whole: one scratch buffer the size
// of the largest block is reused for the byte conversion.
//
// # Reading WAV Files
//
// Inspect re-parses a header:
//
//	info, err := wav.Inspect(f)
//	fmt.Println(info.Channels, info.SampleRate, info.DataSize)
//
// ReadPCM16 returns the data chunk of a 16-bit file as a go-audio
// IntBuffer.
//
// # Error Handling
//
// Writer returns *failure.Error values, all fatal: the container cannot be
// repaired once a write or seek failed. Inspect and ReadPCM16 return plain
// errors such as ErrNotWavFile.
//
// # File Format
//
// WAV files written here consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: 8 byte header followed by interleaved samples
package wav
