package synth

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SpeakerSink plays buffers through the system audio device via beep.
// beep keeps a single global speaker, so the device is (re)initialized
// lazily when the sample rate changes.
type SpeakerSink struct {
	mu     sync.Mutex
	volume float64
	rate   beep.SampleRate // 0 until first Init
}

// NewSpeakerSink creates a speaker sink with the given master volume
func NewSpeakerSink(volume float64) *SpeakerSink {
	if volume < 0 {
		volume = 0
	} else if volume > 1 {
		volume = 1
	}
	return &SpeakerSink{volume: volume}
}

// Play blocks until the device has played the whole buffer
func (s *SpeakerSink) Play(buf []float64, sampleRate int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sr := beep.SampleRate(sampleRate)
	if s.rate != sr {
		if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
			return err
		}
		s.rate = sr
	}

	done := make(chan struct{})
	st := &bufferStreamer{buf: buf, volume: s.volume}
	speaker.Play(beep.Seq(st, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}

// bufferStreamer streams a mono buffer to both output channels
type bufferStreamer struct {
	buf    []float64
	pos    int
	volume float64
}

func (b *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	for i := range samples {
		if b.pos >= len(b.buf) {
			return i, true
		}
		v := b.buf[b.pos] * b.volume
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *bufferStreamer) Err() error {
	return nil
}
