package synth

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Generator renders waveform sample buffers at a fixed sample rate.
// Noise draws from its own RNG so runs are reproducible when the
// config carries a nonzero seed.
type Generator struct {
	rate float64
	rng  *rand.Rand
}

// NewGenerator creates a generator for the configured sample rate and seed
func NewGenerator(cfg *Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rate: float64(cfg.SampleRate),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Generate renders seconds of the given waveform at freq Hz.
// Freq is ignored for Noise. Amplitude is 0.5 peak across all shapes.
func (g *Generator) Generate(w Waveform, freq, seconds float64) ([]float64, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWaveform, int(w))
	}

	n, err := g.samples(seconds)
	if err != nil {
		return nil, err
	}

	buf := make([]float64, n)
	for i := range buf {
		t := float64(i) / g.rate
		switch w {
		case Sine:
			buf[i] = 0.5 * math.Sin(2*math.Pi*freq*t)
		case Square:
			// sign(0) counts as positive so zero-crossing samples
			// land on the high half-cycle
			if math.Sin(2*math.Pi*freq*t) < 0 {
				buf[i] = -0.5
			} else {
				buf[i] = 0.5
			}
		case Triangle:
			buf[i] = 0.5 * (2 / math.Pi) * math.Asin(math.Sin(2*math.Pi*freq*t))
		case Noise:
			buf[i] = g.rng.Float64() - 0.5
		}
	}
	return buf, nil
}

// Silence renders seconds of zero samples
func (g *Generator) Silence(seconds float64) ([]float64, error) {
	n, err := g.samples(seconds)
	if err != nil {
		return nil, err
	}
	return make([]float64, n), nil
}

// samples converts a duration to a buffer length, rejecting negative
// and non-finite values before allocation
func (g *Generator) samples(seconds float64) (int, error) {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("%w: %v seconds", ErrInvalidDuration, seconds)
	}
	return int(math.Round(g.rate * seconds)), nil
}
