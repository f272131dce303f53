package tracker

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ik5/modwav/engine"
)

func TestFactory_InvalidData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		data   []byte
	}{
		{"mod empty", FormatMOD, []byte{}},
		{"mod text", FormatMOD, []byte("This is not a module")},
		{"s3m empty", FormatS3M, []byte{}},
		{"s3m text", FormatS3M, []byte("This is not a module either")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, status, err := Factory{Format: tt.format}.Create(tt.data, 48000)

			if status != engine.StatusInvalidModule {
				t.Errorf("Create() status = %v, want %v", status, engine.StatusInvalidModule)
			}
			if ctx != nil {
				t.Errorf("Create() context = %v, want nil", ctx)
			}
			if err == nil {
				t.Error("Create() error = nil, want parse error")
			}
		})
	}
}

func TestFactory_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, status, err := Factory{Format: Format(9)}.Create([]byte("whatever"), 48000)

	if status != engine.StatusInvalidModule {
		t.Errorf("Create() status = %v, want %v", status, engine.StatusInvalidModule)
	}
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Create() error = %v, want ErrUnknownFormat", err)
	}
}

func TestFormat_String(t *testing.T) {
	t.Parallel()

	if FormatMOD.String() != "mod" || FormatS3M.String() != "s3m" {
		t.Errorf("Format strings = %q, %q, want \"mod\", \"s3m\"", FormatMOD, FormatS3M)
	}
	if got := Format(5).String(); got != "format(5)" {
		t.Errorf("Format(5).String() = %q, want \"format(5)\"", got)
	}
}

// buildMOD returns a four-channel "M.K." module with one order, one
// pattern and one 32-byte sample triggered on the first row.
func buildMOD() []byte {
	const (
		headerSize  = 20 + 31*30 + 2 + 128 + 4
		patternSize = 64 * 4 * 4
		sampleBytes = 32
	)

	mod := make([]byte, headerSize+patternSize+sampleBytes)
	copy(mod, "synthetic")

	// Sample 1: length in words, finetune, volume, repeat offset, repeat length.
	s := mod[20:50]
	copy(s, "blip")
	binary.BigEndian.PutUint16(s[22:], sampleBytes/2)
	s[25] = 64
	binary.BigEndian.PutUint16(s[28:], 1)

	mod[950] = 1    // song length
	mod[951] = 0x7f // restart position
	copy(mod[1080:], "M.K.")

	// Row 0, channel 0: sample 1 at period 428.
	note := mod[headerSize:]
	note[0] = 0x01
	note[1] = 0xac
	note[2] = 0x10

	data := mod[headerSize+patternSize:]
	for i := range data {
		data[i] = byte(int8((i%8 - 4) * 24))
	}

	return mod
}

func TestContext_PlaysOneLoop(t *testing.T) {
	t.Parallel()

	const (
		sentinel  = 0x1234
		blockSize = 1000
		maxCalls  = 10000
	)

	ctx, status, err := Factory{Format: FormatMOD}.Create(buildMOD(), 8000)
	if status != engine.StatusOK || err != nil {
		t.Fatalf("Create() = %v, %v, want ok", status, err)
	}
	ctx.SetMaxLoopCount(1)

	block := make([]int16, blockSize)
	calls := 0
	for ctx.LoopCount() == 0 {
		if calls == maxCalls {
			t.Fatalf("LoopCount() still 0 after %d blocks", maxCalls)
		}
		calls++

		for i := range block {
			block[i] = sentinel
		}
		ctx.GenerateSamples(block)

		for i, v := range block {
			if v == sentinel {
				t.Fatalf("block %d sample %d left unwritten", calls, i)
			}
		}
	}

	if calls < 2 {
		t.Errorf("song ended after %d blocks, want a multi-block render", calls)
	}

	// Past the loop limit the context only produces silence.
	for i := range block {
		block[i] = sentinel
	}
	ctx.GenerateSamples(block)
	for i, v := range block {
		if v != 0 {
			t.Fatalf("sample %d after the last loop = %d, want 0", i, v)
		}
	}
	if ctx.LoopCount() < 1 {
		t.Errorf("LoopCount() = %d, want >= 1", ctx.LoopCount())
	}

	if err := ctx.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
	if err := ctx.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close() error = %v, want ErrClosed", err)
	}
}

func TestContext_PartialTailZeroed(t *testing.T) {
	t.Parallel()

	ctx, status, err := Factory{Format: FormatMOD}.Create(buildMOD(), 8000)
	if status != engine.StatusOK || err != nil {
		t.Fatalf("Create() = %v, %v, want ok", status, err)
	}
	defer ctx.Close()
	ctx.SetMaxLoopCount(1)

	// One block larger than the whole song: the song ends inside it.
	block := make([]int16, 2*8000*60)
	for i := range block {
		block[i] = 0x1234
	}
	ctx.GenerateSamples(block)

	if ctx.LoopCount() != 1 {
		t.Errorf("LoopCount() = %d, want 1", ctx.LoopCount())
	}
	if last := block[len(block)-1]; last != 0 {
		t.Errorf("last sample = %d, want 0", last)
	}
}
