// SPDX-License-Identifier: EPL-2.0

// Package xm provides an engine.Factory for FastTracker 2 Extended Modules,
// backed by github.com/quasilyte/xm.
//
// The module is parsed with xmfile and rendered by an xm.Stream with
// looping disabled. The stream emits interleaved little-endian 16-bit
// stereo, which the context decodes into the caller's sample block. When
// the stream reports the end of the song the context counts a loop and,
// below the loop limit, reloads the module to play it again.
//
//	registry := engine.NewRegistry()
//	registry.Register("xm", xm.Factory{})
package xm
