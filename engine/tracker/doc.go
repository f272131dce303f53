// SPDX-License-Identifier: EPL-2.0

// Package tracker provides an engine.Factory for ProTracker MOD and
// ScreamTracker 3 S3M modules, backed by github.com/chriskillpack/modplayer.
//
// The player renders stereo only, so contexts built here always produce
// two interleaved channels:
//
//	registry := engine.NewRegistry()
//	registry.Register("mod", tracker.Factory{Format: tracker.FormatMOD})
//	registry.Register("s3m", tracker.Factory{Format: tracker.FormatS3M})
//
// Create copies the module bytes before parsing, since the player keeps
// references into the song data for its whole life.
package tracker
