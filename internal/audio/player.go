// Package audio plays synthesized sound effects for game events.
// Every tone is generated at runtime; there are no asset files.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const sampleRate = beep.SampleRate(44100)

// speakerLock guards the mixer against the speaker's streaming goroutine.
type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Player is a snake.Observer that turns game events into sound.
// Until Initialize succeeds every event is ignored, so a Player is safe to
// wire into headless runs and tests.
type Player struct {
	snake.NopObserver

	mu          sync.Mutex
	cfg         config.AudioConfig
	logger      *log.Logger
	mixer       *beep.Mixer
	pulse       *beep.Ctrl
	output      sync.Locker
	initialized bool
}

// NewPlayer creates a player. Nothing is played until Initialize.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		cfg:    cfg,
		logger: logger,
		mixer:  &beep.Mixer{},
		output: speakerLock{},
	}
}

// Initialize opens the speaker. It does nothing when audio is disabled.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio initialized", "rate", int(sampleRate), "volume", p.cfg.Volume)
	return nil
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.output.Lock()
	p.mixer.Clear()
	p.pulse = nil
	p.output.Unlock()

	speaker.Close()
	p.initialized = false
}

// OnStart plays the start chirp and starts the background pulse.
func (p *Player) OnStart(s snake.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.output.Lock()
	defer p.output.Unlock()

	p.stopPulse()
	p.pulse = &beep.Ctrl{Streamer: newVolume(newPulse(s.Interval*4, sampleRate), p.cfg.Volume*0.4)}
	p.mixer.Add(newVolume(startSound(sampleRate), p.cfg.Volume), p.pulse)
}

// OnScored plays the bell.
func (p *Player) OnScored(int) {
	p.play(eatSound(sampleRate))
}

// OnGameOver stops the pulse and plays the win or lose sound.
// Aborted rounds end silently.
func (p *Player) OnGameOver(r snake.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.output.Lock()
	defer p.output.Unlock()

	p.stopPulse()

	switch {
	case r.Won():
		p.mixer.Add(newVolume(winSound(sampleRate), p.cfg.Volume))
	case r.Cause != snake.CauseAborted:
		p.mixer.Add(newVolume(loseSound(sampleRate), p.cfg.Volume))
	}
}

// stopPulse drops the background pulse. A Ctrl without a streamer reports
// itself drained, so the mixer removes it on the next buffer.
// Callers hold p.output.
func (p *Player) stopPulse() {
	if p.pulse == nil {
		return
	}
	p.pulse.Paused = true
	p.pulse.Streamer = nil
	p.pulse = nil
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.output.Lock()
	p.mixer.Add(newVolume(s, p.cfg.Volume))
	p.output.Unlock()
}

// Playing returns the number of streams in the mixer.
func (p *Player) Playing() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.output.Lock()
	defer p.output.Unlock()
	return p.mixer.Len()
}

var _ snake.Observer = (*Player)(nil)
