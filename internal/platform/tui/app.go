package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Will-Nollert/clusters/internal/catalog"
	"github.com/Will-Nollert/clusters/internal/config"
	"github.com/Will-Nollert/clusters/internal/game"
	"github.com/Will-Nollert/clusters/internal/storage"
)

type appMode int

const (
	modeMenu appMode = iota
	modeBoard
	modeResults
)

// AppModel composes the picker, the board, and the results browser into
// one flow: pick a puzzle, play it, come back. Used for local interactive
// runs and for each SSH session.
type AppModel struct {
	mode    appMode
	menu    MenuModel
	board   BoardModel
	results ResultsModel

	store  *storage.Store
	cfg    config.Config
	seed   int64
	width  int
	height int
}

// NewAppModel creates the app flow starting at the puzzle picker. A seed
// of 0 means shuffle from the current time, one fresh seed per game.
func NewAppModel(store *storage.Store, cfg config.Config, seed int64, width, height int) AppModel {
	return AppModel{
		mode:   modeMenu,
		menu:   NewMenuModel(store, width, height),
		store:  store,
		cfg:    cfg,
		seed:   seed,
		width:  width,
		height: height,
	}
}

// Init initializes the app flow.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update dispatches to the active screen and handles transitions between
// them. Sub-model quit intents become transitions here; only an explicit
// player quit leaves the program.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	switch m.mode {
	case modeMenu:
		return m.updateMenu(msg)
	case modeBoard:
		return m.updateBoard(msg)
	case modeResults:
		return m.updateResults(msg)
	}
	return m, nil
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.menu.Update(msg)
	menu, ok := updated.(MenuModel)
	if !ok {
		return m, cmd
	}
	m.menu = menu

	switch {
	case menu.IsQuitting():
		return m, tea.Quit

	case menu.WantsResults():
		m.mode = modeResults
		m.results = NewResultsModel(m.store, m.width, m.height)
		return m, m.results.Init()

	case menu.Selected() != nil:
		return m.startGame(menu.Selected().PuzzleID)
	}

	return m, cmd
}

func (m AppModel) startGame(puzzleID string) (tea.Model, tea.Cmd) {
	puzzle, err := catalog.Get(puzzleID)
	if err != nil {
		// The menu only lists registered puzzles; a miss means the
		// catalog changed under us. Bail out of the flow.
		return m, tea.Quit
	}

	seed := m.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := game.NewSession(puzzle, seed)
	if err != nil {
		return m, tea.Quit
	}

	m.mode = modeBoard
	m.board = NewBoardModel(session, m.store, m.cfg, m.width, m.height)
	return m, m.board.Init()
}

func (m AppModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.board.Update(msg)
	board, ok := updated.(BoardModel)
	if !ok {
		return m, cmd
	}
	m.board = board

	if board.IsQuitting() {
		return m, tea.Quit
	}
	if board.GoingBack() {
		// Rebuild the menu so the best-result column reflects this game.
		m.mode = modeMenu
		m.menu = NewMenuModel(m.store, m.width, m.height)
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m AppModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.results.Update(msg)
	results, ok := updated.(ResultsModel)
	if !ok {
		return m, cmd
	}
	m.results = results

	if results.quitting {
		return m, tea.Quit
	}
	if results.GoingBack() {
		m.mode = modeMenu
		m.menu = NewMenuModel(m.store, m.width, m.height)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	switch m.mode {
	case modeBoard:
		return m.board.View()
	case modeResults:
		return m.results.View()
	default:
		return m.menu.View()
	}
}

// RunApp starts the interactive picker flow in the local terminal.
func RunApp(store *storage.Store, cfg config.Config, seed int64, width, height int) error {
	model := NewAppModel(store, cfg, seed, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
