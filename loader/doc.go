// SPDX-License-Identifier: EPL-2.0

// Package loader maps a module file into memory and builds an engine
// context from it.
//
// The file is never read into a Go buffer. Load maps it read-only in one
// call, passes the mapped bytes to an engine.Factory, and unmaps the file
// before returning. The factory must copy whatever it needs to keep.
//
//	ctx, err := loader.Load("song.mod", 48000, modplayer.Factory{})
//	switch {
//	case failure.IsFatal(err):
//	    // mapping failed or the engine could not allocate; stop
//	case err != nil:
//	    // unreadable file or not a module; caller decides
//	default:
//	    defer ctx.Close()
//	}
//
// Recoverable kinds: failure.KindUnreadable, failure.KindSizeUnknown,
// failure.KindInvalidModule. Fatal kinds: failure.KindMapFailed,
// failure.KindEngineAlloc, failure.KindEngineContract.
//
// Mapping is implemented with mmap(2) on unix and with
// CreateFileMapping/MapViewOfFile on windows.
package loader
