package synth

import (
	"fmt"
	"math"
)

// Pitch-class names within an octave, C-rooted
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// MIDI range of the 88-key piano: A0 (21) to C8 (108), A4 (69) = 440Hz
const (
	midiLow  = 21
	midiHigh = 108
	midiA4   = 69
)

// NoteTable maps note names ("C4", "F#5") to frequencies in Hz.
// Built once, read-only afterwards.
type NoteTable map[string]float64

// BuildNoteTable computes equal-tempered frequencies for the 88 piano
// keys, rounded to 2 decimals
func BuildNoteTable() NoteTable {
	t := make(NoteTable, midiHigh-midiLow+1)
	for midi := midiLow; midi <= midiHigh; midi++ {
		octave := midi/12 - 1
		name := fmt.Sprintf("%s%d", noteNames[midi%12], octave)
		freq := 440.0 * math.Pow(2, float64(midi-midiA4)/12.0)
		t[name] = math.Round(freq*100) / 100
	}
	return t
}

// Freq resolves a note name to its frequency
func (t NoteTable) Freq(name string) (float64, error) {
	f, ok := t[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownNote, name)
	}
	return f, nil
}
