package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chiptune/synth"
)

const noteSeconds = 0.3

// Home row plays the white keys of one octave, the row above plays the
// sharps, piano-style
var keyNotes = map[rune]string{
	'a': "C4", 's': "D4", 'd': "E4", 'f': "F4",
	'g': "G4", 'h': "A4", 'j': "B4", 'k': "C5",
	'l': "D5", ';': "E5",

	'w': "C#4", 'e': "D#4", 't': "F#4", 'y': "G#4",
	'u': "A#4", 'o': "C#5", 'p': "D#5",
}

var waveKeys = map[rune]synth.Waveform{
	'1': synth.Sine,
	'2': synth.Square,
	'3': synth.Triangle,
	'4': synth.Noise,
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func draw(screen tcell.Screen, wave synth.Waveform, last string) {
	screen.Clear()
	style := tcell.StyleDefault
	bold := style.Bold(true)

	drawText(screen, 2, 1, bold, "chiptune piano")
	drawText(screen, 2, 3, style, "a s d f g h j k l ;  white keys (C4-E5)")
	drawText(screen, 2, 4, style, " w e   t y u   o p   sharps")
	drawText(screen, 2, 6, style, "1-4 waveform (sine, square, triangle, noise)")
	drawText(screen, 2, 7, style, "ESC or q to quit")
	drawText(screen, 2, 9, bold, fmt.Sprintf("waveform: %s", wave))
	if last != "" {
		drawText(screen, 2, 10, bold, fmt.Sprintf("last note: %s", last))
	}
	screen.Show()
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal init failed: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal init failed: %v", err)
	}
	defer screen.Fini()

	cfg := synth.LoadConfig()
	player := synth.NewNotePlayer(cfg, synth.NewSpeakerSink(cfg.MasterVolume))

	wave := cfg.Waveform
	last := ""
	draw(screen, wave, last)

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, wave, last)

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}

			r := ev.Rune()
			if r == 'q' {
				return
			}
			if w, ok := waveKeys[r]; ok {
				wave = w
				draw(screen, wave, last)
				continue
			}
			note, ok := keyNotes[r]
			if !ok {
				continue
			}

			// PlayNote blocks for the note's duration; notes are short
			// enough to keep the loop responsive
			if err := player.PlayNote(note, noteSeconds, wave); err != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "playback failed: %v\n", err)
				os.Exit(1)
			}
			last = note
			draw(screen, wave, last)
		}
	}
}
