package audio

import (
	"math"
	"time"
)

// melody is an endless square-ish lead built from a fixed note table.
type melody struct {
	notes    []note
	index    int
	position int
	length   int
	phase    float64
}

var theme = []note{
	{659.25, 400 * time.Millisecond}, {493.88, 200 * time.Millisecond}, {523.25, 200 * time.Millisecond},
	{587.33, 400 * time.Millisecond}, {523.25, 200 * time.Millisecond}, {493.88, 200 * time.Millisecond},
	{440.00, 400 * time.Millisecond}, {440.00, 200 * time.Millisecond}, {523.25, 200 * time.Millisecond},
	{659.25, 400 * time.Millisecond}, {587.33, 200 * time.Millisecond}, {523.25, 200 * time.Millisecond},
	{493.88, 600 * time.Millisecond}, {523.25, 200 * time.Millisecond}, {587.33, 400 * time.Millisecond},
	{659.25, 400 * time.Millisecond}, {523.25, 400 * time.Millisecond}, {440.00, 400 * time.Millisecond},
	{440.00, 800 * time.Millisecond},
}

func newMelody(notes []note) *melody {
	m := &melody{notes: notes}
	m.length = SampleRate.N(notes[0].duration)
	return m
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if m.position >= m.length {
			m.index = (m.index + 1) % len(m.notes)
			m.position = 0
			m.length = SampleRate.N(m.notes[m.index].duration)
		}

		cur := m.notes[m.index]
		v := 0.6*math.Sin(2*math.Pi*m.phase) + 0.2*math.Sin(6*math.Pi*m.phase)

		// Short gap at the end of every note.
		if m.length-m.position < SampleRate.N(20*time.Millisecond) {
			v = 0
		}

		samples[i][0] = v
		samples[i][1] = v

		m.phase += cur.freq / float64(SampleRate)
		m.phase -= math.Floor(m.phase)
		m.position++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }
