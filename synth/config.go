package synth

import (
	"os"
	"strconv"
)

// Config carries the synthesis parameters. Constructed once at startup
// and passed into the generator and sequencer; never mutated afterwards.
type Config struct {
	SampleRate   int     // Samples per second
	BPM          int     // Tempo in beats per minute
	Waveform     Waveform
	MasterVolume float64 // 0.0-1.0, applied at the speaker only
	Seed         int64   // Noise RNG seed, 0 = time-seeded
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		SampleRate:   44100,
		BPM:          150,
		Waveform:     Square,
		MasterVolume: 1.0,
	}
}

// SecondsPerBeat converts the tempo to beat length
func (c *Config) SecondsPerBeat() float64 {
	return 60.0 / float64(c.BPM)
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if rate := os.Getenv("CHIPTUNE_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if bpm := os.Getenv("CHIPTUNE_BPM"); bpm != "" {
		if val, err := strconv.Atoi(bpm); err == nil && val > 0 {
			cfg.BPM = val
		}
	}

	if wave := os.Getenv("CHIPTUNE_WAVEFORM"); wave != "" {
		if w, err := ParseWaveform(wave); err == nil {
			cfg.Waveform = w
		}
	}

	// Master volume is 0-100, converted to 0.0-1.0
	if volume := os.Getenv("CHIPTUNE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if seed := os.Getenv("CHIPTUNE_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	return cfg
}
