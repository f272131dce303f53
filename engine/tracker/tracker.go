// SPDX-License-Identifier: EPL-2.0

package tracker

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/chriskillpack/modplayer"
	"github.com/ik5/modwav/engine"
	"go.uber.org/zap"
)

// Channels is the number of interleaved channels every context renders.
const Channels = 2

var (
	ErrUnknownFormat = errors.New("unknown tracker format")
	ErrParserPanic   = errors.New("module parser panicked")
	ErrClosed        = errors.New("context already closed")
)

// Format selects the module parser.
type Format int

const (
	FormatMOD Format = iota
	FormatS3M
)

func (f Format) String() string {
	switch f {
	case FormatMOD:
		return "mod"
	case FormatS3M:
		return "s3m"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Factory creates contexts for one module format.
type Factory struct {
	Format Format
	// Boost is the player's volume boost, 1 to 4. Zero means 1.
	Boost int
}

// Create parses data and returns a context positioned at the first order.
// Any parser or player error is reported as engine.StatusInvalidModule.
func (f Factory) Create(data []byte, sampleRate uint32) (ctx engine.Context, status engine.Status, err error) {
	defer func() {
		if r := recover(); r != nil {
			engine.Logger().Debug("module parser panic", zap.Stringer("format", f.Format), zap.Any("panic", r))
			ctx, status, err = nil, engine.StatusInvalidModule, fmt.Errorf("%w: %v", ErrParserPanic, r)
		}
	}()

	song, err := f.parse(bytes.Clone(data))
	if err != nil {
		return nil, engine.StatusInvalidModule, err
	}

	player, err := modplayer.NewPlayer(song, uint(sampleRate))
	if err != nil {
		return nil, engine.StatusInvalidModule, fmt.Errorf("%w", err)
	}

	if f.Boost != 0 {
		if err := player.SetVolumeBoost(f.Boost); err != nil {
			return nil, engine.StatusInvalidModule, fmt.Errorf("%w", err)
		}
	}

	player.SeekTo(0, 0)

	return &context{player: player}, engine.StatusOK, nil
}

func (f Factory) parse(data []byte) (*modplayer.Song, error) {
	var (
		song *modplayer.Song
		err  error
	)

	switch f.Format {
	case FormatMOD:
		song, err = modplayer.NewMODSongFromBytes(data)
	case FormatS3M:
		song, err = modplayer.NewS3MSongFromBytes(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.Format, err)
	}

	return song, nil
}

// context adapts a modplayer.Player to engine.Context. The player stops at
// the end of the song; each stop counts as one loop and playback restarts
// from the first order until the loop limit is reached.
type context struct {
	player   *modplayer.Player
	maxLoops int
	loops    int
}

func (c *context) SetMaxLoopCount(n int) { c.maxLoops = n }
func (c *context) LoopCount() int        { return c.loops }

func (c *context) GenerateSamples(dst []int16) {
	n := 0
	for n+Channels <= len(dst) {
		if !c.player.IsPlaying() {
			c.loops++
			if c.maxLoops > 0 && c.loops >= c.maxLoops {
				break
			}

			c.player.SeekTo(0, 0)
			if !c.player.IsPlaying() {
				break
			}
			continue
		}

		frames := c.player.GenerateAudio(dst[n:])
		if frames == 0 {
			c.loops++
			break
		}
		n += frames * Channels
	}

	// The block is always full: whatever the song did not cover is silence.
	clear(dst[n:])
}

func (c *context) Close() error {
	if c.player == nil {
		return ErrClosed
	}

	c.player.Stop()
	c.player = nil

	return nil
}
