package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// hudLines is the number of rows used around the board for HUD, status and help.
const hudLines = 3

// Driver is the part of the game loop the model talks to.
// *snake.Loop implements it.
type Driver interface {
	RequestStart()
	Propose(dir core.Direction) bool
}

// Options configures the terminal UI.
type Options struct {
	Logger        *log.Logger
	LastReplay    func() int64 // Id of the most recently saved replay, 0 if none
	ScreenshotDir string       // Defaults to ~/.snake/screenshots
}

// Model is the Bubble Tea model for the snake game.
// It only renders snapshots and forwards input; the loop owns the game.
type Model struct {
	driver   Driver
	keys     KeyMap
	help     help.Model
	opts     Options
	snap     snake.Snapshot
	best     int // Best score this session
	status   string
	width    int
	height   int
	quitting bool
}

// NewModel creates a model showing initial until the first event arrives.
func NewModel(driver Driver, initial snake.Snapshot, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return Model{
		driver: driver,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		opts:   opts,
		snap:   initial,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case SnapshotMsg:
		s := snake.Snapshot(msg)
		if s.Phase == snake.PhasePlaying && s.Tick == 0 {
			m.status = ""
		}
		m.snap = s
		return m, nil

	case ScoredMsg:
		m.best = max(m.best, int(msg))
		return m, nil

	case GameOverMsg:
		return m.handleGameOver(snake.Result(msg)), nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionStart:
		if m.snap.Phase != snake.PhasePlaying {
			m.driver.RequestStart()
		}
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	default:
		if dir, ok := action.Direction(); ok && m.snap.Phase == snake.PhasePlaying {
			m.driver.Propose(dir)
		}
	}

	return m, nil
}

func (m Model) handleGameOver(r snake.Result) Model {
	m.snap = r.Final
	m.best = max(m.best, r.Score)

	switch {
	case r.Won():
		m.status = "You filled the board!"
	case r.Cause == snake.CauseWall:
		m.status = "Hit the wall."
	case r.Cause == snake.CauseSelf:
		m.status = "Bit your own tail."
	default:
		m.status = ""
	}

	if m.opts.LastReplay != nil && r.Cause != snake.CauseAborted {
		if id := m.opts.LastReplay(); id > 0 {
			m.status = strings.TrimSpace(fmt.Sprintf("%s Saved as replay #%d.", m.status, id))
		}
	}
	return m
}

// board renders the current snapshot into a fresh screen buffer.
func (m Model) board() *core.Screen {
	w, h := snake.BoardSize(m.snap.Columns, m.snap.Rows)
	screen := core.NewScreen(w, h)
	snake.Render(screen, m.snap, 0, 0)
	return screen
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := snake.BoardSize(m.snap.Columns, m.snap.Rows)
	if m.width > 0 && (m.width < w || m.height < h+hudLines) {
		return warnStyle.Render(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			w, h+hudLines, m.width, m.height))
	}

	hud := strings.Join([]string{
		hudItem("Score", fmt.Sprint(m.snap.Score)),
		hudItem("Best", fmt.Sprint(m.best)),
		hudItem("Speed", m.snap.Interval.String()),
	}, "   ")

	content := lipgloss.JoinVertical(lipgloss.Left,
		hud,
		RenderScreen(m.board()),
		labelStyle.Render(m.status),
		m.help.View(m.keys),
	)

	if m.width == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// saveScreenshot writes the board as plain text.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.status = "Screenshot failed."
			return
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		m.status = "Screenshot failed."
		return
	}

	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.board().String()+"\n"), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "path", path, "err", err)
		m.status = "Screenshot failed."
		return
	}
	m.status = "Screenshot saved to " + path
}

// Run starts the Bubble Tea program and the game loop and blocks until the
// user quits or ctx is cancelled. bridge must be among the game's observers.
func Run(ctx context.Context, loop *snake.Loop, bridge *Bridge, initial snake.Snapshot, opts Options) error {
	model := NewModel(loop, initial, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	bridge.Attach(p.Send)

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopErr := make(chan error, 1)
	go func() { loopErr <- loop.Run(loopCtx) }()

	_, err := p.Run()

	// Stop forwarding before aborting the round; the program is gone.
	bridge.Detach()
	cancel()
	if lerr := <-loopErr; err == nil {
		err = lerr
	}

	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
