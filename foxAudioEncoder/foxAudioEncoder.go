// package writes interleaved integer frames to an audio container file.
// The container itself is produced by the go-audio wav encoder, this package owns
// the file handle, error wrapping and debug output around it.
package foxAudioEncoder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const packageName = "foxAudioEncoder"

// WAV audio format code for uncompressed PCM
const wavFormatPCM = 1

// ErrIO marks failures creating, writing or closing the output file.
var ErrIO = errors.New("io error")

// ErrUnsupported is returned for an encoder type or bit depth the container cannot hold.
var ErrUnsupported = errors.New("unsupported encoder setting")

// Encoder definition
type AudioEncoder struct {
	SampleRate  int
	BitDepth    int
	NumChannels int
	Type        string
	Filename    string

	DebugFunc func(string) // enables the use of an external debug function supplied at the application level - expect to use foxLog
	DebugOn   bool         //enables debugging
	NumFrames int64

	file    *os.File
	encoder *wav.Encoder
	format  *audio.Format
	started bool
	created bool
}

// Initialise creates (or truncates) the output file and prepares the container encoder.
func (myEncoder *AudioEncoder) Initialise() error {
	const functionName = "Initialise"

	if strings.ToUpper(myEncoder.Type) != "WAV" {
		return fmt.Errorf("%s:%s: encoder type %q: %w", packageName, functionName, myEncoder.Type, ErrUnsupported)
	}
	switch myEncoder.BitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%s:%s: bit depth %d: %w", packageName, functionName, myEncoder.BitDepth, ErrUnsupported)
	}
	if myEncoder.NumChannels < 1 || myEncoder.SampleRate < 1 {
		return fmt.Errorf("%s:%s: %d channels at %dHz: %w", packageName, functionName, myEncoder.NumChannels, myEncoder.SampleRate, ErrUnsupported)
	}
	if myEncoder.Filename == "" {
		return fmt.Errorf("%s:%s: no output file name: %w", packageName, functionName, ErrUnsupported)
	}

	//clean and standardize the file path
	myEncoder.Filename = filepath.Clean(myEncoder.Filename)

	file, err := os.Create(myEncoder.Filename)
	if err != nil {
		return fmt.Errorf("%s:%s: %w: %w", packageName, functionName, ErrIO, err)
	}
	myEncoder.file = file
	myEncoder.created = true
	myEncoder.encoder = wav.NewEncoder(file, myEncoder.SampleRate, myEncoder.BitDepth, myEncoder.NumChannels, wavFormatPCM)
	myEncoder.format = &audio.Format{NumChannels: myEncoder.NumChannels, SampleRate: myEncoder.SampleRate}
	myEncoder.NumFrames = 0
	myEncoder.started = false

	myEncoder.debug(fmt.Sprintf(packageName+":"+functionName+" Header SampleRate: [%v] Channels: [%v] BitDepth: [%v] File [%v] ",
		myEncoder.SampleRate, myEncoder.NumChannels, myEncoder.BitDepth, myEncoder.Filename))
	return nil
}

// EncodeData writes interleaved frames (L,R,L,R... for stereo). Values must already be scaled to BitDepth;
// 24 bit values are narrowed to 3 little endian bytes, 8 bit values are written unsigned.
// The first call writes the header, so calling with no frames still produces a valid, empty file.
func (myEncoder *AudioEncoder) EncodeData(frames []int) error {
	const functionName = "EncodeData"
	if myEncoder.encoder == nil {
		return errors.New(packageName + ":" + functionName + ": encoder not initialised")
	}
	if len(frames)%myEncoder.NumChannels != 0 {
		return fmt.Errorf("%s:%s: %d samples do not divide into %d channels", packageName, functionName, len(frames), myEncoder.NumChannels)
	}

	buf := &audio.IntBuffer{
		Format:         myEncoder.format,
		Data:           frames,
		SourceBitDepth: myEncoder.BitDepth,
	}
	if err := myEncoder.encoder.Write(buf); err != nil {
		return fmt.Errorf("%s:%s: %w: %w", packageName, functionName, ErrIO, err)
	}
	myEncoder.started = true
	myEncoder.NumFrames += int64(len(frames) / myEncoder.NumChannels)
	return nil
}

// Close patches the header sizes and closes the file.
func (e *AudioEncoder) Close() error {
	const functionName = "Close"
	var err error

	if e.encoder != nil && !e.started {
		// the header goes out with the first write
		if encErr := e.EncodeData(nil); encErr != nil {
			err = encErr
		}
	}
	if e.encoder != nil {
		if encErr := e.encoder.Close(); encErr != nil && err == nil {
			err = fmt.Errorf("%s:%s: %w: %w", packageName, functionName, ErrIO, encErr)
		}
		e.encoder = nil
	}

	// Close the file handle if open
	if e.file != nil {
		if closeErr := e.file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%s:%s: %w: close error: %w", packageName, functionName, ErrIO, closeErr)
		}
		e.file = nil
	}

	if err == nil {
		e.debug(fmt.Sprintf("%s:%s Frames written: %v", packageName, functionName, e.NumFrames))
	}
	return err
}

// Abort closes the encoder and removes whatever has been written so far.
func (e *AudioEncoder) Abort() {
	const functionName = "Abort"
	if !e.created {
		return
	}
	e.encoder = nil
	if e.file != nil {
		e.file.Close()
		e.file = nil
	}
	e.created = false
	if err := os.Remove(e.Filename); err != nil && !os.IsNotExist(err) {
		e.debug(fmt.Sprintf("%s:%s failed to remove partial file %s: %v", packageName, functionName, e.Filename, err))
	}
}

// Function to handle debug calls, allowing for different logging implementations
func (myEncoder *AudioEncoder) debug(message string) {
	if myEncoder.DebugOn {
		if myEncoder.DebugFunc != nil {
			myEncoder.DebugFunc(message)
		} else { // if no external debug function available just print the message
			println(message)
		}
	}
}
