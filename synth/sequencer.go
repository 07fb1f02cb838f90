package synth

// Sequencer renders note tracks into sample buffers and mixes them
type Sequencer struct {
	cfg   *Config
	notes NoteTable
	gen   *Generator
}

// NewSequencer creates a sequencer with its own note table and generator
func NewSequencer(cfg *Config) *Sequencer {
	return &Sequencer{
		cfg:   cfg,
		notes: BuildNoteTable(),
		gen:   NewGenerator(cfg),
	}
}

// RenderTrack concatenates one segment per note event, in order
func (s *Sequencer) RenderTrack(track Track, w Waveform) ([]float64, error) {
	var buf []float64
	for _, ev := range track {
		seg, err := s.renderEvent(ev, w)
		if err != nil {
			return nil, err
		}
		buf = append(buf, seg...)
	}
	return buf, nil
}

func (s *Sequencer) renderEvent(ev NoteEvent, w Waveform) ([]float64, error) {
	seconds := ev.Beats * s.cfg.SecondsPerBeat()
	switch {
	case ev.Note == Rest:
		return s.gen.Silence(seconds)
	case w == Noise:
		return s.gen.Generate(Noise, 0, seconds)
	default:
		freq, err := s.notes.Freq(ev.Note)
		if err != nil {
			return nil, err
		}
		return s.gen.Generate(w, freq, seconds)
	}
}

// Mix renders every track with the given waveform, right-pads them with
// silence to the longest track, averages them per sample and
// peak-normalizes the result. Any bad note or duration aborts the whole
// mix with no partial buffer.
func (s *Sequencer) Mix(tracks []Track, w Waveform) ([]float64, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}

	rendered := make([][]float64, 0, len(tracks))
	maxLen := 0
	for _, tr := range tracks {
		buf, err := s.RenderTrack(tr, w)
		if err != nil {
			return nil, err
		}
		if len(buf) > maxLen {
			maxLen = len(buf)
		}
		rendered = append(rendered, buf)
	}

	for i, buf := range rendered {
		rendered[i] = padTo(buf, maxLen)
	}

	return normalize(average(rendered, maxLen)), nil
}

// Play mixes the tracks and hands the result to the sink, blocking
// until playback completes
func (s *Sequencer) Play(tracks []Track, w Waveform, sink Sink) error {
	mix, err := s.Mix(tracks, w)
	if err != nil {
		return err
	}
	return sink.Play(mix, s.cfg.SampleRate)
}
