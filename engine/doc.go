// SPDX-License-Identifier: EPL-2.0

// Package engine defines the module engine capability set used by modwav.
//
// A module engine turns the raw bytes of a tracker module into PCM audio.
// modwav does not decode modules itself; it talks to an engine through two
// small interfaces:
//
//	type Factory interface {
//	    Create(data []byte, sampleRate uint32) (Context, Status, error)
//	}
//
//	type Context interface {
//	    SetMaxLoopCount(n int)
//	    GenerateSamples(dst []int16)
//	    LoopCount() int
//	    Close() error
//	}
//
// # Construction Status
//
// Create reports a tri-state Status. StatusInvalidModule means the data is
// not a sane module and the caller may try something else. StatusAllocFailed
// and any unrecognized status are treated as fatal by the loader.
//
// Create must not retain data after it returns: the loader unmaps the
// region right after construction.
//
// # Registry
//
// Engines are registered per file extension:
//
//	registry := engine.NewRegistry()
//	registry.Register("mod", modplayer.Factory{})
//	factory, ok := registry.Get("mod")
package engine
