package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"berry-snake/game"
)

type Cue int

const (
	CueApple Cue = iota
	CueGolden
	CueBerry
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueApple:
		return "apple"
	case CueGolden:
		return "golden"
	case CueBerry:
		return "berry"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// CueFor maps a tick outcome to its sound. Plain moves are silent.
func CueFor(outcome game.Outcome) (Cue, bool) {
	switch outcome {
	case game.OutcomeApple:
		return CueApple, true
	case game.OutcomeGoldenApple:
		return CueGolden, true
	case game.OutcomeBerry:
		return CueBerry, true
	case game.OutcomeGameOver:
		return CueGameOver, true
	default:
		return 0, false
	}
}

type note struct {
	freq     float64
	duration time.Duration
}

func notes(c Cue) []note {
	switch c {
	case CueApple:
		return []note{{880, 60 * time.Millisecond}}
	case CueGolden:
		return []note{{987.77, 60 * time.Millisecond}, {1318.51, 120 * time.Millisecond}}
	case CueBerry:
		return []note{{220, 80 * time.Millisecond}, {165, 120 * time.Millisecond}}
	case CueGameOver:
		return []note{{392, 150 * time.Millisecond}, {330, 150 * time.Millisecond}, {262, 300 * time.Millisecond}}
	default:
		return nil
	}
}

// Streamer renders a cue as a sequence of faded sine notes.
func Streamer(c Cue, volume float64) beep.Streamer {
	var parts []beep.Streamer
	for _, n := range notes(c) {
		parts = append(parts, newTone(n.freq, n.duration, sampleRate))
	}
	seq := beep.Seq(parts...)
	if volume <= 0 {
		return &effects.Volume{Streamer: seq, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: seq, Base: 2, Volume: math.Log2(volume)}
}

// tone is a sine wave with a short linear fade at both ends.
type tone struct {
	freq  float64
	rate  beep.SampleRate
	pos   int
	total int
	fade  int
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) *tone {
	total := rate.N(d)
	return &tone{freq: freq, rate: rate, total: total, fade: total / 10}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		vol := 1.0
		if t.fade > 0 {
			if t.pos < t.fade {
				vol = float64(t.pos) / float64(t.fade)
			} else if rest := t.total - t.pos; rest < t.fade {
				vol = float64(rest) / float64(t.fade)
			}
		}
		v := 0.3 * vol * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.rate))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
