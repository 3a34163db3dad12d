package foxWavGen

import "github.com/Foxenfurter/foxSineSweep/foxAudioEncoder"

// SetEncoderSteps replaces the encode and close steps of GenerateWav; nil keeps the current step.
func SetEncoderSteps(encode func(*foxAudioEncoder.AudioEncoder, []int) error, close func(*foxAudioEncoder.AudioEncoder) error) (restore func()) {
	oldEncode, oldClose := encodeFrames, closeEncoder
	if encode != nil {
		encodeFrames = encode
	}
	if close != nil {
		closeEncoder = close
	}
	return func() {
		encodeFrames, closeEncoder = oldEncode, oldClose
	}
}
