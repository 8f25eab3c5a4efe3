// Package tui provides the Bubble Tea presentation layer for clusters:
// the puzzle board, the puzzle picker, the results browser, and the SSH
// server for remote play. It drives the game core exclusively through the
// Session's public actions and renders the state it reads back.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Will-Nollert/clusters/internal/config"
	"github.com/Will-Nollert/clusters/internal/game"
	"github.com/Will-Nollert/clusters/internal/storage"
)

// clockTickMsg refreshes the elapsed-time display once per second.
type clockTickMsg time.Time

// shakeDoneMsg ends the shake feedback window. The sequence number guards
// against a stale timer clearing a newer shake.
type shakeDoneMsg struct{ seq int }

// BoardModel is the Bubble Tea model for playing one puzzle.
type BoardModel struct {
	session *game.Session
	cfg     config.Config
	store   *storage.Store

	rows      []game.LayoutRow
	cursorRow int
	cursorCol int

	width  int
	height int
	keys   BoardKeyMap
	help   help.Model

	now         time.Time
	shakeSeq    int
	shakeActive bool
	resultSaved bool
	goingBack   bool
	quitting    bool
}

// NewBoardModel creates a board model for an already-started session.
func NewBoardModel(session *game.Session, store *storage.Store, cfg config.Config, width, height int) BoardModel {
	m := BoardModel{
		session: session,
		cfg:     cfg,
		store:   store,
		width:   width,
		height:  height,
		keys:    DefaultBoardKeyMap(),
		help:    help.New(),
		now:     time.Now(),
	}
	m.relayout()
	return m
}

// Init starts the clock tick loop.
func (m BoardModel) Init() tea.Cmd {
	return clockTick()
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clockTickMsg:
		m.now = time.Time(msg)
		return m, clockTick()

	case shakeDoneMsg:
		if msg.seq == m.shakeSeq {
			m.session.ClearShake()
			m.shakeActive = false
		}
		return m, nil
	}

	return m, nil
}

func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveResult()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.saveResult()
		m.goingBack = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.session.ResetGame()
		m.shakeActive = false
		m.resultSaved = false
		m.cursorRow, m.cursorCol = 0, 0
		m.relayout()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.session.ClearSelection()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m.handleSelect()
	}

	return m, nil
}

// handleSelect taps the square under the cursor. Taps are swallowed while
// shake feedback from the previous failed attempt is still on screen.
func (m BoardModel) handleSelect() (tea.Model, tea.Cmd) {
	if m.shakeActive {
		return m, nil
	}

	sq, ok := m.squareAtCursor()
	if !ok {
		return m, nil
	}

	res := m.session.SelectSquare(sq.ID)
	if res.Merge == nil {
		return m, nil
	}

	if !res.Merge.Success {
		m.shakeSeq++
		m.shakeActive = true
		seq := m.shakeSeq
		return m, tea.Tick(m.cfg.Board.ShakeDuration(), func(time.Time) tea.Msg {
			return shakeDoneMsg{seq: seq}
		})
	}

	// The grid changed shape: re-pack and keep the cursor in bounds.
	m.relayout()

	if m.session.State().Won() {
		m.saveResult()
	}
	return m, nil
}

// moveCursor shifts the cursor by row/column deltas, clamping to the
// current layout.
func (m *BoardModel) moveCursor(dr, dc int) {
	if len(m.rows) == 0 {
		return
	}

	m.cursorRow += dr
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	if m.cursorRow > len(m.rows)-1 {
		m.cursorRow = len(m.rows) - 1
	}

	m.cursorCol += dc
	m.clampCursorCol()
}

func (m *BoardModel) clampCursorCol() {
	if len(m.rows) == 0 {
		m.cursorCol = 0
		return
	}
	rowLen := len(m.rows[m.cursorRow].Squares)
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
	if m.cursorCol > rowLen-1 {
		m.cursorCol = rowLen - 1
	}
}

// relayout re-derives the display rows from the live unsolved squares.
func (m *BoardModel) relayout() {
	unsolved := game.UnsolvedSquares(m.session.State().Grid)
	m.rows = game.PackRows(unsolved, m.cfg.Layout.TargetItemsPerRow, m.cfg.Layout.MaxItemsPerRow)

	if m.cursorRow > len(m.rows)-1 {
		m.cursorRow = len(m.rows) - 1
	}
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	m.clampCursorCol()
}

func (m BoardModel) squareAtCursor() (game.GridSquare, bool) {
	if m.cursorRow < 0 || m.cursorRow >= len(m.rows) {
		return game.GridSquare{}, false
	}
	row := m.rows[m.cursorRow]
	if m.cursorCol < 0 || m.cursorCol >= len(row.Squares) {
		return game.GridSquare{}, false
	}
	return row.Squares[m.cursorCol], true
}

// saveResult persists the session outcome once. Wins are recorded as
// solved; leaving mid-game records an abandoned attempt only if the player
// actually did something.
func (m *BoardModel) saveResult() {
	if m.resultSaved || m.store == nil {
		return
	}

	state := m.session.State()
	touched := state.Mistakes > 0 || len(state.Grid) < game.TotalItems
	if !state.Won() && !touched {
		return
	}

	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveResult(storage.ResultEntry{
		PuzzleID:     state.PuzzleID,
		Mistakes:     state.Mistakes,
		DurationSecs: int(state.Duration(time.Now()).Seconds()),
		Solved:       state.Won(),
	})
	m.resultSaved = true
}

// GoingBack reports whether the player left the board for the menu rather
// than quitting outright.
func (m BoardModel) GoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to leave the program.
func (m BoardModel) IsQuitting() bool {
	return m.quitting
}

// Run starts a standalone Bubble Tea program for the board.
func Run(session *game.Session, store *storage.Store, cfg config.Config, width, height int) error {
	model := NewBoardModel(session, store, cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
