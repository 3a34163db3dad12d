// Package: github.com/Foxenfurter/foxSineSweep/foxSignalGen
// generates the 440Hz test tone used for the fixture sweep. Samples are produced as
// plain ints already scaled and truncated to the target bit depth, ready to be handed to an encoder.
package foxSignalGen

import (
	"errors"
	"fmt"
	"math"
)

const packageName = "foxSignalGen"

// ToneFrequency is A4, fixed for every fixture.
const ToneFrequency = 440.0

// StereoChannels is the channel count written to every fixture.
const StereoChannels = 2

// ErrInvalidParameter is returned for a request that cannot be generated,
// most commonly an unsupported bit depth.
var ErrInvalidParameter = errors.New("invalid parameter")

// Format describes how samples are stored for one bit depth.
// StorageBytes is the width of the in-memory integer, SampleWidth the number of bytes each sample takes in the file.
type Format struct {
	BitDepth     int
	StorageBytes int
	SampleWidth  int
	Amplitude    int
	Signed       bool
}

var formats = map[int]Format{
	8:  {BitDepth: 8, StorageBytes: 1, SampleWidth: 1, Amplitude: 127, Signed: false},
	16: {BitDepth: 16, StorageBytes: 2, SampleWidth: 2, Amplitude: 32767, Signed: true},
	24: {BitDepth: 24, StorageBytes: 4, SampleWidth: 3, Amplitude: 8388607, Signed: true},
	32: {BitDepth: 32, StorageBytes: 4, SampleWidth: 4, Amplitude: 2147483647, Signed: true},
}

// SupportedBitDepths lists the depths FormatFor accepts, in ascending order.
var SupportedBitDepths = []int{8, 16, 24, 32}

// FormatFor looks up the storage format for a bit depth
func FormatFor(bitDepth int) (Format, error) {
	const functionName = "FormatFor"
	f, ok := formats[bitDepth]
	if !ok {
		return Format{}, fmt.Errorf("%s:%s: unsupported bit depth %d, choose from 8, 16, 24, 32: %w",
			packageName, functionName, bitDepth, ErrInvalidParameter)
	}
	return f, nil
}

// MinValue is the lowest value a generated sample can take.
func (f Format) MinValue() int {
	if f.Signed {
		return -f.Amplitude
	}
	return 0
}

// MaxValue is the highest value a generated sample can take.
func (f Format) MaxValue() int {
	if f.Signed {
		return f.Amplitude
	}
	return 2 * f.Amplitude
}

// Request fully determines one generated tone.
type Request struct {
	SampleRate int
	BitDepth   int
	Duration   float64 // seconds
}

// Validate checks the request and returns its format.
func (r Request) Validate() (Format, error) {
	const functionName = "Validate"
	if r.SampleRate <= 0 {
		return Format{}, fmt.Errorf("%s:%s: sample rate must be positive, got %d: %w",
			packageName, functionName, r.SampleRate, ErrInvalidParameter)
	}
	if math.IsNaN(r.Duration) || math.IsInf(r.Duration, 0) || r.Duration < 0 {
		return Format{}, fmt.Errorf("%s:%s: duration must be a finite value >= 0, got %v: %w",
			packageName, functionName, r.Duration, ErrInvalidParameter)
	}
	return FormatFor(r.BitDepth)
}

// NumSamples is floor(sampleRate * duration).
func (r Request) NumSamples() int {
	return int(float64(r.SampleRate) * r.Duration)
}

// GenerateSine returns one mono sample per time point, evenly spaced over [0, Duration) with the end point excluded.
// Values are truncated toward zero; 8 bit output is unsigned and centred on the amplitude.
func GenerateSine(r Request) ([]int, error) {
	format, err := r.Validate()
	if err != nil {
		return nil, err
	}

	numSamples := r.NumSamples()
	samples := make([]int, numSamples)
	if numSamples == 0 {
		return samples, nil
	}

	step := r.Duration / float64(numSamples)
	amplitude := float64(format.Amplitude)
	for i := range samples {
		t := float64(i) * step
		v := amplitude * math.Sin(2*math.Pi*ToneFrequency*t)
		switch format.StorageBytes {
		case 1:
			samples[i] = format.Amplitude + int(int8(v))
		case 2:
			samples[i] = int(int16(v))
		default:
			samples[i] = int(int32(v))
		}
	}
	return samples, nil
}

// ToStereo copies each mono sample to every channel and returns the frames interleaved (L,R,L,R...).
// There is no offset between channels, left and right are identical.
func ToStereo(mono []int, numChannels int) []int {
	frames := make([]int, len(mono)*numChannels)
	for i, s := range mono {
		for c := 0; c < numChannels; c++ {
			frames[i*numChannels+c] = s
		}
	}
	return frames
}
