package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Will-Nollert/clusters/internal/game"
)

// Board layout constants.
const (
	minBoardWidth = 40
	maxBoardWidth = 110
	minCellWidth  = 4
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	cellStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252"))

	cellSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("25")).
				Foreground(lipgloss.Color("231")).
				Bold(true)

	cellShakingStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("124")).
				Foreground(lipgloss.Color("231"))

	cellCursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("231")).
			Bold(true)

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))
)

// trophyPalette colors solved categories by difficulty order.
var trophyPalette = []lipgloss.Color{
	"42", "43", "44", "45", "39", "63", "99", "135", "171", "207",
}

// View renders the board: HUD, packed rows, solved trophies, help bar.
func (m BoardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	state := m.session.State()

	var b strings.Builder
	b.WriteString(m.renderHUD(state))
	b.WriteString("\n\n")

	if state.Won() {
		b.WriteString(m.renderWin(state))
	} else {
		b.WriteString(m.renderRows())
	}

	b.WriteString("\n")
	b.WriteString(m.renderTrophies(state))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m BoardModel) renderHUD(state game.GameState) string {
	title := titleStyle.Render(fmt.Sprintf(" clusters · %s ", state.PuzzleID))

	var parts []string
	if m.cfg.Board.ShowMistakes {
		parts = append(parts, fmt.Sprintf("%d mistakes", state.Mistakes))
	}
	if m.cfg.Board.ShowTimer {
		parts = append(parts, formatDuration(state.Duration(m.now)))
	}
	parts = append(parts, fmt.Sprintf("%d/%d solved", len(state.SolvedCategoryIDs), game.CategoryCount))

	return title + "  " + hudStyle.Render(strings.Join(parts, " · "))
}

func (m BoardModel) renderRows() string {
	boardWidth := m.width - 2
	if boardWidth < minBoardWidth {
		boardWidth = minBoardWidth
	}
	if boardWidth > maxBoardWidth {
		boardWidth = maxBoardWidth
	}

	var b strings.Builder
	for ri, row := range m.rows {
		b.WriteString(" ")
		b.WriteString(m.renderRow(row, ri, boardWidth))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow lays the row's squares out proportionally to their item
// counts: cell width = fraction of the row total, so the row is always
// fully covered with no gaps.
func (m BoardModel) renderRow(row game.LayoutRow, rowIdx, boardWidth int) string {
	cells := make([]string, 0, len(row.Squares))
	used := 0

	for i, sq := range row.Squares {
		w := int(float64(boardWidth) * row.WidthFraction(i))
		if i == len(row.Squares)-1 {
			w = boardWidth - used // last square absorbs rounding
		}
		if w < minCellWidth {
			w = minCellWidth
		}
		used += w

		cells = append(cells, m.renderCell(sq, w, rowIdx == m.cursorRow && i == m.cursorCol))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m BoardModel) renderCell(sq game.GridSquare, width int, underCursor bool) string {
	style := cellStyle
	switch {
	case m.session.IsShaking(sq.ID):
		style = cellShakingStyle
	case m.session.IsSelected(sq.ID):
		style = cellSelectedStyle
	case underCursor:
		style = cellCursorStyle
	}

	label := sq.Label()
	if sq.ItemCount() > 1 {
		label = fmt.Sprintf("%s +%d", label, sq.ItemCount()-1)
	}
	if underCursor {
		label = "›" + label
	}

	// One space of breathing room on each side, then hard-truncate so the
	// proportional widths hold.
	label = " " + truncate(label, width-2)
	return style.Width(width).MaxWidth(width).Render(label)
}

func (m BoardModel) renderTrophies(state game.GameState) string {
	if len(state.SolvedCategoryIDs) == 0 {
		return hudStyle.Render(" no categories solved yet")
	}

	var parts []string
	for _, id := range state.SolvedCategoryIDs {
		cat := m.session.CategoryByID(id)
		if cat == nil {
			continue
		}
		color := trophyPalette[(cat.Difficulty-1)%len(trophyPalette)]
		parts = append(parts, lipgloss.NewStyle().Foreground(color).Render("● "+cat.Name))
	}
	return " " + strings.Join(parts, "  ")
}

func (m BoardModel) renderWin(state game.GameState) string {
	var b strings.Builder
	b.WriteString(winStyle.Render(" ★ Puzzle solved!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("   Time      %s\n", formatDuration(state.Duration(m.now))))
	b.WriteString(fmt.Sprintf("   Mistakes  %d\n", state.Mistakes))
	b.WriteString("\n")
	b.WriteString(hudStyle.Render("   r to play again · b for menu · q to quit"))
	b.WriteString("\n")
	return b.String()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
