package main

import (
	"flag"
	"log"

	"github.com/lixenwraith/chiptune/synth"
)

var (
	waveFlag = flag.String("wave", "", "waveform: sine, square, triangle, noise")
	bpmFlag  = flag.Int("bpm", 0, "tempo override in beats per minute")
	outFlag  = flag.String("o", "", "write the mix to a WAV file instead of playing it")
)

// Built-in demo song: melody with a bass line entering after the intro
var (
	introMelody = synth.Track{
		{Note: "G5", Beats: 4}, {Note: "F#5", Beats: 2}, {Note: "B5", Beats: 2}, {Note: "E5", Beats: 4},
		{Note: "D5", Beats: 2}, {Note: "G5", Beats: 2}, {Note: "C5", Beats: 4}, {Note: "B4", Beats: 2}, {Note: "E5", Beats: 2},
		{Note: "A4", Beats: 4}, {Note: "D5", Beats: 3}, {Note: "F#5", Beats: 0.5}, {Note: "G5", Beats: 0.5}, {Note: "D5", Beats: 2}, {Note: synth.Rest, Beats: 0.5},
	}

	bassLine = synth.Track{
		{Note: synth.Rest, Beats: 32}, {Note: "G4", Beats: 4}, {Note: "F#4", Beats: 2}, {Note: "B4", Beats: 2}, {Note: "E4", Beats: 4},
		{Note: "D4", Beats: 2}, {Note: "G4", Beats: 2}, {Note: "C4", Beats: 4}, {Note: "B3", Beats: 2}, {Note: "E4", Beats: 2},
		{Note: "A3", Beats: 4}, {Note: "D4", Beats: 3},
	}
)

func main() {
	flag.Parse()

	cfg := synth.LoadConfig()
	if *bpmFlag > 0 {
		cfg.BPM = *bpmFlag
	}

	wave := cfg.Waveform
	if *waveFlag != "" {
		w, err := synth.ParseWaveform(*waveFlag)
		if err != nil {
			log.Fatalf("bad -wave: %v", err)
		}
		wave = w
	}

	var sink synth.Sink
	if *outFlag != "" {
		sink = &synth.WAVSink{Path: *outFlag}
	} else {
		sink = synth.NewSpeakerSink(cfg.MasterVolume)
	}

	seq := synth.NewSequencer(cfg)
	if err := seq.Play([]synth.Track{introMelody, bassLine}, wave, sink); err != nil {
		log.Fatalf("playback failed: %v", err)
	}
}
