package modwav_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/modwav"
	"github.com/ik5/modwav/engine"
	"github.com/ik5/modwav/internal/enginetest"
)

func ExampleConvert() {
	dir, err := os.MkdirTemp("", "modwav")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "tune.ramp")
	if err := os.WriteFile(in, []byte("any bytes"), 0o600); err != nil {
		fmt.Println("Error:", err)
		return
	}

	// One loop of the ramp module lasts 12000 frames, a quarter second at 48kHz.
	reg := engine.NewRegistry()
	reg.Register("ramp", engine.FactoryFunc(func([]byte, uint32) (engine.Context, engine.Status, error) {
		return enginetest.NewRampContext(modwav.Channels, 12000), engine.StatusOK, nil
	}))

	res, err := modwav.Convert(in, filepath.Join(dir, "tune.wav"), modwav.Options{
		BlockSize: 24000,
		Registry:  reg,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Frames: %d\n", res.Frames)
	fmt.Printf("Data: %d bytes\n", res.DataBytes)
	fmt.Printf("Duration: %s\n", res.Duration)
	// Output:
	// Frames: 12000
	// Data: 48000 bytes
	// Duration: 250ms
}
