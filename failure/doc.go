// SPDX-License-Identifier: EPL-2.0

// Package failure provides the two-tier error model used across modwav.
//
// Every error produced by the loader, the encoder and the conversion pipeline
// carries a Severity:
//   - Recoverable: a classification handed back to the caller, which decides
//     what to do next (unreadable input, invalid module data, ...).
//   - Fatal: a condition the process cannot continue past (mapping failure,
//     sink cannot be opened, engine allocation failure, I/O failure while
//     writing the container).
//
// Library code never terminates the process. It returns a Fatal error
// immediately and the command layer exits with status 1:
//
//	ctx, err := loader.Load(path, 48000, factory)
//	if failure.IsFatal(err) {
//	    log.Fatal(err)
//	}
//	if err != nil {
//	    // recoverable, e.g. failure.Is(err, failure.KindInvalidModule)
//	}
//
// Errors support errors.Is and errors.As through Unwrap.
package failure
