package synth

import (
	"errors"
	"fmt"
	"strings"
)

// Waveform selects the oscillator shape
type Waveform int

const (
	Sine Waveform = iota
	Square
	Triangle
	Noise
	waveformCount
)

// Rest is the note-name sentinel for silence
const Rest = "REST"

// NoteEvent is one step of a track: a note name (or Rest) held for Beats
type NoteEvent struct {
	Note  string
	Beats float64
}

// Track is an ordered sequence of note events
type Track []NoteEvent

// Sentinel errors
var (
	ErrUnknownNote     = errors.New("unknown note")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidWaveform = errors.New("invalid waveform")
	ErrNoTracks        = errors.New("no tracks to mix")
)

// ParseWaveform maps a waveform name to its variant
func ParseWaveform(s string) (Waveform, error) {
	switch strings.ToLower(s) {
	case "sine":
		return Sine, nil
	case "square":
		return Square, nil
	case "triangle":
		return Triangle, nil
	case "noise":
		return Noise, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWaveform, s)
}

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Noise:
		return "noise"
	}
	return "unknown"
}

// Valid reports whether w is one of the defined waveforms
func (w Waveform) Valid() bool {
	return w >= Sine && w < waveformCount
}
