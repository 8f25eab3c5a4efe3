package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Will-Nollert/clusters/internal/catalog"
	"github.com/Will-Nollert/clusters/internal/storage"
)

const maxResultRows = 100

// ResultsKeyMap defines the key bindings for the results browser.
type ResultsKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextPuzzle key.Binding
	PrevPuzzle key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPuzzle, k.PrevPuzzle, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPuzzle, k.PrevPuzzle},
		{k.Back, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPuzzle: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next puzzle"),
		),
		PrevPuzzle: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev puzzle"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for browsing past results.
type ResultsModel struct {
	puzzles      []catalog.Info
	puzzleCursor int
	store        *storage.Store
	table        table.Model
	help         help.Model
	keys         ResultsKeyMap
	width        int
	height       int
	quitting     bool
	goingBack    bool
}

// NewResultsModel creates a results browser over all registered puzzles.
func NewResultsModel(store *storage.Store, width, height int) ResultsModel {
	m := ResultsModel{
		puzzles: catalog.List(),
		store:   store,
		keys:    DefaultResultsKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}

	m.table = m.createTable()
	if len(m.puzzles) > 0 {
		m.loadResults(m.puzzles[0].ID)
	}
	return m
}

func (m ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 18},
		{Title: "Mistakes", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Outcome", Width: 10},
	}

	height := m.height - 8
	if height < 4 {
		height = 4
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color("25"))
	t.SetStyles(styles)

	return t
}

func (m *ResultsModel) loadResults(puzzleID string) {
	var rows []table.Row
	if m.store != nil {
		entries, err := m.store.RecentResults(puzzleID, maxResultRows)
		if err == nil {
			for _, e := range entries {
				outcome := "abandoned"
				if e.Solved {
					outcome = "solved"
				}
				rows = append(rows, table.Row{
					e.CreatedAt.Format("2006-01-02 15:04"),
					fmt.Sprintf("%d", e.Mistakes),
					formatDuration(time.Duration(e.DurationSecs) * time.Second),
					outcome,
				})
			}
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results browser.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPuzzle):
			if len(m.puzzles) > 0 {
				m.puzzleCursor = (m.puzzleCursor + 1) % len(m.puzzles)
				m.loadResults(m.puzzles[m.puzzleCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPuzzle):
			if len(m.puzzles) > 0 {
				m.puzzleCursor = (m.puzzleCursor - 1 + len(m.puzzles)) % len(m.puzzles)
				m.loadResults(m.puzzles[m.puzzleCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(maxInt(4, msg.Height-8))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results browser.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	puzzleID := "no puzzles"
	if len(m.puzzles) > 0 {
		puzzleID = m.puzzles[m.puzzleCursor].ID
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf(" Results · %s ", puzzleID)))
	b.WriteString("\n\n")

	if len(m.table.Rows()) == 0 {
		b.WriteString(hudStyle.Render(" No games recorded yet."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// GoingBack reports whether the user left for the menu rather than
// quitting.
func (m ResultsModel) GoingBack() bool {
	return m.goingBack
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
