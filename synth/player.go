package synth

// Sink receives a rendered sample buffer for playback or storage.
// Play blocks until the buffer has been fully consumed.
type Sink interface {
	Play(buf []float64, sampleRate int) error
}

// NotePlayer synthesizes and plays single notes through a sink
type NotePlayer struct {
	cfg   *Config
	notes NoteTable
	gen   *Generator
	sink  Sink
}

// NewNotePlayer creates a player writing to sink
func NewNotePlayer(cfg *Config, sink Sink) *NotePlayer {
	return &NotePlayer{
		cfg:   cfg,
		notes: BuildNoteTable(),
		gen:   NewGenerator(cfg),
		sink:  sink,
	}
}

// PlayNote renders one note and blocks until the sink finishes with it.
// Noise skips the frequency lookup.
func (p *NotePlayer) PlayNote(name string, seconds float64, w Waveform) error {
	var buf []float64
	var err error

	if w == Noise {
		buf, err = p.gen.Generate(Noise, 0, seconds)
	} else {
		freq, ferr := p.notes.Freq(name)
		if ferr != nil {
			return ferr
		}
		buf, err = p.gen.Generate(w, freq, seconds)
	}
	if err != nil {
		return err
	}

	return p.sink.Play(buf, p.cfg.SampleRate)
}
