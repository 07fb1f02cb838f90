package synth

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavBitDepth = 16

// WAVSink writes buffers as 16-bit mono PCM WAV files instead of
// playing them. Samples are hard-clipped to ±1 before quantization.
type WAVSink struct {
	Path string
}

// Play encodes the buffer to the configured path
func (s *WAVSink) Play(buf []float64, sampleRate int) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}

	data := make([]int, len(buf))
	for i, v := range buf {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		data[i] = int(v * 32767)
	}

	enc := wav.NewEncoder(f, sampleRate, wavBitDepth, 1, 1)
	ib := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: wavBitDepth,
		Data:           data,
	}
	if err := enc.Write(ib); err != nil {
		f.Close()
		return fmt.Errorf("write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close wav: %w", err)
	}
	return f.Close()
}
