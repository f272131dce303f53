// SPDX-License-Identifier: EPL-2.0

// Package modwav converts tracker modules into PCM WAV files.
//
// The conversion is a two stage pipeline:
//   - loader maps the module file read-only and builds an engine context
//     from the mapped bytes, unmapping before it returns
//   - encoder streams fixed-size blocks of interleaved PCM16 from the
//     context into a WAV container, then backpatches the RIFF and data
//     sizes that could not be known while streaming
//
// # Quick Start
//
//	res, err := modwav.Convert("song.xm", "song.wav", modwav.Options{})
//	if failure.IsFatal(err) {
//	    log.Fatal(err)
//	}
//	if err != nil {
//	    // not readable, not a module, or an unsupported extension
//	}
//	fmt.Println(res.Duration)
//
// # Supported Formats
//
// The default registry knows:
//   - ProTracker MOD (.mod)
//   - ScreamTracker 3 (.s3m)
//   - FastTracker 2 Extended Module (.xm)
//
// Other engines can be plugged in through engine.Registry and
// engine.Factory.
//
// # Output
//
// The output is a canonical 44-byte-header PCM WAV, two channels, 48 kHz
// and 16 bits by default. Bit depths of 8, 24 and 32 are produced by
// widening or narrowing the engine's 16-bit samples. The destination must
// be seekable.
//
// # Errors
//
// Errors are *failure.Error values with a Recoverable or Fatal severity.
// A fatal error leaves the output file in an unspecified state.
package modwav
