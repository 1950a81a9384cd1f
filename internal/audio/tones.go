package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a tone of the given frequency and duration.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		val := waveAt(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func waveAt(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which is expected to last d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range n {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = max(float64(left)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// pulse is an endless soft tick at a fixed period, used as background while
// a round is running. It never drains; pause it through a beep.Ctrl.
type pulse struct {
	rate     beep.SampleRate
	period   int
	click    int
	position int
}

func newPulse(period time.Duration, rate beep.SampleRate) *pulse {
	return &pulse{
		rate:   rate,
		period: max(rate.N(period), 1),
		click:  rate.N(25 * time.Millisecond),
	}
}

func (p *pulse) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		pos := p.position % p.period
		val := 0.0
		if pos < p.click {
			env := 1 - float64(pos)/float64(p.click)
			t := float64(pos) / float64(p.rate)
			val = 0.3 * env * math.Sin(2*math.Pi*110*t)
		}
		samples[i][0] = val
		samples[i][1] = val
		p.position++
	}
	return len(samples), true
}

func (p *pulse) Err() error { return nil }

// newVolume scales s linearly; vol <= 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// startSound is a short rising two-note chirp.
func startSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(440, 70*time.Millisecond, WaveSquare, rate),
		note(660, 90*time.Millisecond, WaveSquare, rate),
	)
}

// eatSound is a bell: fundamental plus octave.
func eatSound(rate beep.SampleRate) beep.Streamer {
	const d = 120 * time.Millisecond
	return beep.Mix(
		newVolume(note(880, d, WaveSine, rate), 0.7),
		newVolume(note(1760, d, WaveSine, rate), 0.3),
	)
}

// loseSound is a descending buzz.
func loseSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(220, 120*time.Millisecond, WaveSaw, rate),
		note(165, 120*time.Millisecond, WaveSaw, rate),
		note(110, 240*time.Millisecond, WaveSaw, rate),
	)
}

// winSound is a rising arpeggio.
func winSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(523, 90*time.Millisecond, WaveSine, rate),
		note(659, 90*time.Millisecond, WaveSine, rate),
		note(784, 90*time.Millisecond, WaveSine, rate),
		note(1047, 200*time.Millisecond, WaveSine, rate),
	)
}
