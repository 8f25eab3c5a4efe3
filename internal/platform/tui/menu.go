package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Will-Nollert/clusters/internal/catalog"
	"github.com/Will-Nollert/clusters/internal/storage"
)

// MenuItem represents a selectable puzzle in the picker.
type MenuItem struct {
	PuzzleID string
	Month    string
	Best     string // best solved result, e.g. "2 mistakes", or ""
}

// MenuModel is the Bubble Tea model for the puzzle picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	quitting    bool
	selected    *MenuItem // set when the user picks a puzzle
	openResults bool      // true if the user pressed Tab for results
}

// NewMenuModel creates a picker listing every registered puzzle, with the
// player's best solved result next to each.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	infos := catalog.List()
	items := make([]MenuItem, 0, len(infos))

	for _, info := range infos {
		item := MenuItem{PuzzleID: info.ID, Month: info.Month}
		if store != nil {
			if best, err := store.BestResult(info.ID); err == nil && best != nil {
				item.Best = fmt.Sprintf("best: %d mistakes", best.Mistakes)
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		width:  width,
		height: height,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k", "w":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j", "s":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case "enter", " ":
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // exit menu to start the puzzle
		}

	case "tab":
		m.openResults = true
		return m, tea.Quit // exit menu to show results
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  C L U S T E R S  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a puzzle", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s (%s)", cursor, item.PuzzleID, item.Month)
		if item.Best != "" {
			line += "  " + item.Best
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Results  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the picked puzzle, or nil if none.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if the user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsResults returns true if the user requested the results browser.
func (m MenuModel) WantsResults() bool {
	return m.openResults
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
