// Package tui provides the Bubble Tea integration for the snake game.
// The game loop runs on its own goroutine; its events reach the program as
// messages through a Bridge.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SnapshotMsg carries the state after a round started or a tick.
type SnapshotMsg snake.Snapshot

// ScoredMsg is sent on every consumption.
type ScoredMsg int

// GameOverMsg is sent once when a round ends.
type GameOverMsg snake.Result

// Bridge is a snake.Observer that forwards events to a Bubble Tea program.
// Events are dropped until Attach and after Detach.
type Bridge struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

// Attach starts forwarding to send, usually (*tea.Program).Send.
func (b *Bridge) Attach(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

// Detach stops forwarding.
func (b *Bridge) Detach() {
	b.Attach(nil)
}

func (b *Bridge) forward(msg tea.Msg) {
	b.mu.Lock()
	send := b.send
	b.mu.Unlock()

	if send != nil {
		send(msg)
	}
}

func (b *Bridge) OnStart(s snake.Snapshot)  { b.forward(SnapshotMsg(s)) }
func (b *Bridge) OnTick(s snake.Snapshot)   { b.forward(SnapshotMsg(s)) }
func (b *Bridge) OnScored(score int)        { b.forward(ScoredMsg(score)) }
func (b *Bridge) OnGameOver(r snake.Result) { b.forward(GameOverMsg(r)) }

var _ snake.Observer = (*Bridge)(nil)
