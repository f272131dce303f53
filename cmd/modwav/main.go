// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/ik5/modwav"
	"github.com/ik5/modwav/encoder"
	"github.com/ik5/modwav/engine"
	"github.com/ik5/modwav/failure"
	"github.com/ik5/modwav/formats/wav"
	"github.com/ik5/modwav/loader"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#98FB98"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))
)

var errVerify = errors.New("written header does not match")

func main() {
	var (
		rate    = flag.Int("rate", modwav.DefaultSampleRate, "output sample rate in Hz")
		bits    = flag.Int("bits", modwav.DefaultBitsPerSample, "bits per sample: 8, 16, 24 or 32")
		block   = flag.Int("block", encoder.DefaultBlockSize, "samples rendered per engine call")
		verify  = flag.Bool("verify", false, "re-read the output header after writing")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <module-input> <wav-output>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	engine.SetLogger(logger.Named("engine"))
	loader.SetLogger(logger.Named("loader"))
	encoder.SetLogger(logger.Named("encoder"))

	res, err := modwav.Convert(inPath, outPath, modwav.Options{
		SampleRate:    *rate,
		BitsPerSample: *bits,
		BlockSize:     *block,
	})
	if err != nil {
		exit(logger, err, inPath)
	}

	if *verify {
		if err := verifyOutput(outPath, res); err != nil {
			exit(logger, err, outPath)
		}
	}

	printSummary(outPath, res)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableStacktrace = !verbose

	return cfg.Build()
}

// exit terminates with status 1. Fatal errors go through logger.Fatal;
// recoverable ones have no further handler at this level.
func exit(logger *zap.Logger, err error, path string) {
	if failure.IsFatal(err) {
		logger.Fatal("conversion aborted",
			zap.String("path", path),
			zap.String("kind", string(failure.KindOf(err))),
			zap.Error(err))
	}

	logger.Error("conversion failed",
		zap.String("path", path),
		zap.String("kind", string(failure.KindOf(err))),
		zap.Error(err))
	_ = logger.Sync()
	os.Exit(1)
}

func verifyOutput(path string, res modwav.Result) error {
	f, err := os.Open(path)
	if err != nil {
		return failure.NewFatal(failure.KindInvalidFormat, "verify", path, err)
	}
	defer f.Close()

	info, err := wav.Inspect(f)
	if err != nil {
		return failure.NewFatal(failure.KindInvalidFormat, "verify", path, err)
	}

	switch {
	case info.Format != res.Format:
		err = fmt.Errorf("%w: format %+v, want %+v", errVerify, info.Format, res.Format)
	case info.DataSize != res.DataBytes:
		err = fmt.Errorf("%w: data size %d, want %d", errVerify, info.DataSize, res.DataBytes)
	case info.RIFFSize != 36+info.DataSize+info.DataSize%2:
		err = fmt.Errorf("%w: riff size %d for data size %d", errVerify, info.RIFFSize, info.DataSize)
	}
	if err != nil {
		return failure.NewFatal(failure.KindInvalidFormat, "verify", path, err)
	}

	return nil
}

func printSummary(path string, res modwav.Result) {
	head := "Wrote: " + path
	detail := fmt.Sprintf("%d Hz, %d channels, %d bit, %d frames (%s), %d data bytes",
		res.Format.SampleRate, res.Format.Channels, res.Format.BitsPerSample,
		res.Frames, res.Duration, res.DataBytes)

	if term.IsTerminal(int(os.Stdout.Fd())) {
		head = okStyle.Render(head)
		detail = detailStyle.Render(detail)
	}

	fmt.Println(head)
	fmt.Println(detail)
}
