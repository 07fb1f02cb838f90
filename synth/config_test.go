package synth

import (
	"os"
	"testing"
)

func clearEnv() {
	os.Unsetenv("CHIPTUNE_SAMPLE_RATE")
	os.Unsetenv("CHIPTUNE_BPM")
	os.Unsetenv("CHIPTUNE_WAVEFORM")
	os.Unsetenv("CHIPTUNE_MASTER_VOLUME")
	os.Unsetenv("CHIPTUNE_SEED")
}

// TestDefaultConfig verifies the built-in settings
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	if cfg.BPM != 150 {
		t.Errorf("Expected default BPM 150, got %d", cfg.BPM)
	}
	if cfg.Waveform != Square {
		t.Errorf("Expected default waveform square, got %s", cfg.Waveform)
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected default master volume 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected default seed 0, got %d", cfg.Seed)
	}
}

// TestSecondsPerBeat verifies the tempo conversion
func TestSecondsPerBeat(t *testing.T) {
	testCases := []struct {
		bpm      int
		expected float64
	}{
		{150, 0.4},
		{60, 1.0},
		{120, 0.5},
	}

	for _, tc := range testCases {
		cfg := DefaultConfig()
		cfg.BPM = tc.bpm
		if got := cfg.SecondsPerBeat(); got != tc.expected {
			t.Errorf("Expected %f seconds per beat at %d BPM, got %f", tc.expected, tc.bpm, got)
		}
	}
}

// TestLoadConfigDefaults verifies loading with no env vars set
func TestLoadConfigDefaults(t *testing.T) {
	clearEnv()

	cfg := LoadConfig()
	def := DefaultConfig()

	if *cfg != *def {
		t.Errorf("Expected defaults %+v, got %+v", def, cfg)
	}
}

// TestLoadConfigOverrides verifies env var overrides
func TestLoadConfigOverrides(t *testing.T) {
	clearEnv()
	defer clearEnv()

	os.Setenv("CHIPTUNE_SAMPLE_RATE", "48000")
	os.Setenv("CHIPTUNE_BPM", "90")
	os.Setenv("CHIPTUNE_WAVEFORM", "triangle")
	os.Setenv("CHIPTUNE_MASTER_VOLUME", "75")
	os.Setenv("CHIPTUNE_SEED", "42")

	cfg := LoadConfig()

	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
	if cfg.BPM != 90 {
		t.Errorf("Expected BPM 90, got %d", cfg.BPM)
	}
	if cfg.Waveform != Triangle {
		t.Errorf("Expected waveform triangle, got %s", cfg.Waveform)
	}
	if cfg.MasterVolume != 0.75 {
		t.Errorf("Expected master volume 0.75, got %f", cfg.MasterVolume)
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
}

// TestLoadConfigRejectsBadValues verifies invalid values fall back to defaults
func TestLoadConfigRejectsBadValues(t *testing.T) {
	clearEnv()
	defer clearEnv()

	os.Setenv("CHIPTUNE_SAMPLE_RATE", "-1")
	os.Setenv("CHIPTUNE_BPM", "fast")
	os.Setenv("CHIPTUNE_WAVEFORM", "sawtooth")

	cfg := LoadConfig()

	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate, got %d", cfg.SampleRate)
	}
	if cfg.BPM != 150 {
		t.Errorf("Expected default BPM, got %d", cfg.BPM)
	}
	if cfg.Waveform != Square {
		t.Errorf("Expected default waveform, got %s", cfg.Waveform)
	}
}

// TestLoadConfigVolumeClamping verifies out-of-range volumes are clamped
func TestLoadConfigVolumeClamping(t *testing.T) {
	clearEnv()
	defer clearEnv()

	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"100", 1.0},
		{"150", 1.0},
		{"-10", 0.0},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			os.Setenv("CHIPTUNE_MASTER_VOLUME", tc.value)
			cfg := LoadConfig()
			if cfg.MasterVolume != tc.expected {
				t.Errorf("Expected volume %f for %s, got %f", tc.expected, tc.value, cfg.MasterVolume)
			}
		})
	}
}
