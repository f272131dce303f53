// SPDX-License-Identifier: EPL-2.0

// Package encoder streams an engine context into a WAV container.
//
// Encode limits the context to one loop of the module, then repeatedly asks
// it for a full block of interleaved PCM16 samples and appends the block to
// a wav.Writer until the context reports a non-zero loop count. The last
// block is written whole even if the module ended part way through it.
// Finally the writer backpatches the RIFF and data sizes:
//
//	f, _ := os.Create("song.wav")
//	n, err := encoder.Encode(ctx, wav.Format{
//	    Channels:      2,
//	    SampleRate:    48000,
//	    BitsPerSample: 16,
//	}, f, encoder.Options{})
//
// The sample block is allocated once per call and reused. Every error
// Encode returns is a fatal *failure.Error.
package encoder
