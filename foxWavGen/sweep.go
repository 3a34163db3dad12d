package foxWavGen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Foxenfurter/foxSineSweep/foxLog"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultOutputDir = "wav_test_files"
	DefaultDuration  = 5.0 // seconds
)

var (
	DefaultSampleRates = []int{8000, 16000, 44100, 48000}
	DefaultBitDepths   = []int{8, 16, 24, 32}
)

// Sweep generates one file for every sample rate / bit depth combination.
type Sweep struct {
	OutputDir   string
	SampleRates []int
	BitDepths   []int
	Duration    float64
	// Workers caps how many files are written at once; 1 or less runs the combinations in order.
	Workers int
	Logger  *foxLog.Logger
}

// DefaultSweep is the fixed 4 x 4 fixture set: 5 second files written sequentially to wav_test_files.
func DefaultSweep(logger *foxLog.Logger) *Sweep {
	return &Sweep{
		OutputDir:   DefaultOutputDir,
		SampleRates: append([]int(nil), DefaultSampleRates...),
		BitDepths:   append([]int(nil), DefaultBitDepths...),
		Duration:    DefaultDuration,
		Workers:     1,
		Logger:      logger,
	}
}

// FileName is the fixture name for one combination, e.g. test_44100Hz_16bit.wav
func FileName(sampleRate, bitDepth int) string {
	return fmt.Sprintf("test_%dHz_%dbit.wav", sampleRate, bitDepth)
}

// Run writes every combination, rate major. The first failure stops jobs that have not started yet and is returned.
// The paths of all files written are returned in sweep order, with blanks for jobs that did not complete.
func (s *Sweep) Run(ctx context.Context) ([]string, error) {
	const functionName = "Sweep.Run"

	type job struct {
		sampleRate int
		bitDepth   int
	}
	var jobs []job
	for _, sampleRate := range s.SampleRates {
		for _, bitDepth := range s.BitDepths {
			jobs = append(jobs, job{sampleRate, bitDepth})
		}
	}

	workers := max(s.Workers, 1)
	s.debug(fmt.Sprintf("%s:%s %d files to %s, %d worker(s)", packageName, functionName, len(jobs), s.OutputDir, workers))

	written := make([]string, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := os.MkdirAll(s.OutputDir, os.ModePerm); err != nil {
				return fmt.Errorf("%s:%s: %w: %w", packageName, functionName, ErrIO, err)
			}
			filename := filepath.Join(s.OutputDir, FileName(j.sampleRate, j.bitDepth))
			if err := GenerateWav(filename, j.sampleRate, j.bitDepth, s.Duration, s.Logger); err != nil {
				return err
			}
			written[i] = filename
			return nil
		})
	}
	err := g.Wait()
	return written, err
}

func (s *Sweep) debug(message string) {
	if s.Logger != nil {
		s.Logger.Debug(message)
	}
}
