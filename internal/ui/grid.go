package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gallery/internal/prefs"
)

// columns returns the number of cards per row for the current width.
func (m Model) columns() int {
	if m.layout == prefs.LayoutList {
		return 1
	}
	return max(1, (m.width+cardGap)/(cardWidth+cardGap))
}

// rowHeight returns the height of one grid row in lines.
func (m Model) rowHeight() int {
	if m.layout == prefs.LayoutList {
		return 1
	}
	return cardHeight
}

// bodyHeight returns the lines available between header and footer.
func (m Model) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if m.showAudio {
		h -= audioHeight
	}
	return max(h, 1)
}

func (m Model) visibleRows() int {
	return max(1, m.bodyHeight()/m.rowHeight())
}

func (m Model) totalRows() int {
	cols := m.columns()
	return (len(m.filtered) + cols - 1) / cols
}

// moveCursor moves the grid cursor by delta cells, stopping at the edges.
func (m *Model) moveCursor(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, len(m.filtered)-1)
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	rows := m.visibleRows()
	row := m.cursor / m.columns()
	if row < m.scroll {
		m.scroll = row
	}
	if row >= m.scroll+rows {
		m.scroll = row - rows + 1
	}
	m.scroll = clamp(m.scroll, 0, max(0, m.totalRows()-rows))
}

// renderGrid renders the visible rows of the filtered list.
func (m Model) renderGrid() string {
	styles := m.theme.Styles()
	if len(m.filtered) == 0 {
		return styles.MutedText.Render("  No artworks match the current filters.")
	}
	if m.layout == prefs.LayoutList {
		return m.renderList()
	}

	cols := m.columns()
	gap := strings.Repeat(" ", cardGap)
	var rows []string
	for r := m.scroll; r < m.scroll+m.visibleRows(); r++ {
		start := r * cols
		if start >= len(m.filtered) {
			break
		}
		end := min(start+cols, len(m.filtered))
		cards := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, gap)
			}
			cards = append(cards, m.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

// renderCard renders the i-th filtered artwork as a bordered card.
func (m Model) renderCard(i int) string {
	art := m.filtered[i]
	styles := m.theme.Styles()
	inner := cardWidth - 4 // border and padding

	lines := []string{
		m.heart(art.ID) + " " + styles.Text.Bold(true).Render(truncate(art.Title, inner-2)),
		styles.MutedText.Render(truncate(art.Byline(), inner)),
		styles.Tag.Render(truncate(joinTags(art.Tags), inner)),
		styles.FaintText.Render(truncate(art.Image, inner)),
	}

	border := m.theme.BorderMuted
	if i == m.cursor {
		border = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(cardWidth - 2).
		Height(cardHeight - 2).
		Render(strings.Join(lines, "\n"))
}

// renderList renders one artwork per line.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	titleWidth := clamp(m.width/3, 12, 40)
	row := lipgloss.NewStyle().MaxWidth(max(m.width, 1))

	var lines []string
	end := min(m.scroll+m.visibleRows(), len(m.filtered))
	for i := m.scroll; i < end; i++ {
		art := m.filtered[i]
		marker := "  "
		title := styles.Text.Render(padRight(truncate(art.Title, titleWidth), titleWidth))
		if i == m.cursor {
			marker = styles.AccentText.Render("> ")
			title = styles.Selected.Render(padRight(truncate(art.Title, titleWidth), titleWidth))
		}
		line := marker + m.heart(art.ID) + " " + title + "  " +
			styles.MutedText.Render(art.Byline()) + "  " +
			styles.Tag.Render(joinTags(art.Tags))
		lines = append(lines, row.Render(line))
	}
	return strings.Join(lines, "\n")
}

// heart renders the favorite icon for id.
func (m Model) heart(id string) string {
	styles := m.theme.Styles()
	if m.favorites.Has(id) {
		return styles.Heart.Render("♥")
	}
	return styles.FaintText.Render("♡")
}
