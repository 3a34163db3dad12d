// Package: github.com/Foxenfurter/foxSineSweep/foxWavGen
// writes 440Hz stereo sine fixtures as WAV files, one file per sample rate / bit depth pair.
package foxWavGen

import (
	"errors"
	"fmt"

	"github.com/Foxenfurter/foxSineSweep/foxAudioEncoder"
	"github.com/Foxenfurter/foxSineSweep/foxLog"
	"github.com/Foxenfurter/foxSineSweep/foxSignalGen"
)

const packageName = "foxWavGen"

var (
	ErrInvalidParameter = foxSignalGen.ErrInvalidParameter
	ErrIO               = foxAudioEncoder.ErrIO
)

// encoder steps after the file exists, swapped in tests to fail part way
var (
	encodeFrames = func(e *foxAudioEncoder.AudioEncoder, frames []int) error { return e.EncodeData(frames) }
	closeEncoder = func(e *foxAudioEncoder.AudioEncoder) error { return e.Close() }
)

// GenerateWav writes a stereo 440Hz sine of the given length to filename, replacing any existing file.
// Invalid parameters are rejected before the file is created; a file that fails part way is removed.
// logger may be nil.
func GenerateWav(filename string, sampleRate, bitDepth int, duration float64, logger *foxLog.Logger) error {
	const functionName = "GenerateWav"

	req := foxSignalGen.Request{SampleRate: sampleRate, BitDepth: bitDepth, Duration: duration}
	mono, err := foxSignalGen.GenerateSine(req)
	if err != nil {
		return fmt.Errorf("%s:%s: %w", packageName, functionName, err)
	}

	myEncoder := foxAudioEncoder.AudioEncoder{
		Type:        "WAV",
		SampleRate:  sampleRate,
		BitDepth:    bitDepth,
		NumChannels: foxSignalGen.StereoChannels,
		Filename:    filename,
	}
	if logger != nil {
		myEncoder.DebugOn = logger.DebugEnabled
		myEncoder.DebugFunc = logger.Debug
	}

	if err := myEncoder.Initialise(); err != nil {
		if errors.Is(err, foxAudioEncoder.ErrUnsupported) {
			err = fmt.Errorf("%w: %w", ErrInvalidParameter, err)
		}
		return fmt.Errorf("%s:%s: %w", packageName, functionName, err)
	}
	if err := encodeFrames(&myEncoder, foxSignalGen.ToStereo(mono, foxSignalGen.StereoChannels)); err != nil {
		myEncoder.Abort()
		return fmt.Errorf("%s:%s: %w", packageName, functionName, err)
	}
	if err := closeEncoder(&myEncoder); err != nil {
		myEncoder.Abort()
		return fmt.Errorf("%s:%s: %w", packageName, functionName, err)
	}

	if logger != nil {
		logger.Info(fmt.Sprintf("Generated WAV file: %s, sample rate: %d Hz, bit depth: %d bit, duration: %v s",
			myEncoder.Filename, sampleRate, bitDepth, duration))
	}
	return nil
}
