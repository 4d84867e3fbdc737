package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderMain renders header, grid, audio panel and footer.
func (m Model) renderMain() string {
	body := lipgloss.NewStyle().
		Height(m.bodyHeight()).
		MaxHeight(m.bodyHeight()).
		Render(m.renderGrid())

	sections := []string{m.renderHeader(), body}
	if m.showAudio {
		sections = append(sections, m.renderAudio())
	}
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

// renderHeader renders the title, filter controls and result count.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	line := lipgloss.NewStyle().MaxWidth(max(m.width, 1))

	title := styles.Logo.Render(windowTitle) + "  " +
		styles.FaintText.Render(fmt.Sprintf("♥ %d", m.favorites.Len()))

	artist := styles.AccentText.Render("artist: " + m.artistLabel())
	controls := m.search.View() + "   " + artist

	count := styles.MutedText.Render(fmt.Sprintf("%d artworks found", len(m.filtered)))

	return strings.Join([]string{
		line.Render(title),
		line.Render(controls),
		line.Render(count),
		"",
	}, "\n")
}

// renderFooter renders the key hints for the current mode.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.searching {
		return styles.Footer.Width(m.width).Render("enter/esc: done  " + m.keys.Reset.Help().Key + ": reset")
	}
	return styles.Footer.Width(m.width).Render(m.help.View(m.keys))
}

// renderAudio renders the playlist panel.
func (m Model) renderAudio() string {
	styles := m.theme.Styles()
	target := styles.MutedText.Render("No playlist configured")
	if m.playlistURL != "" {
		target = styles.MutedText.Render(truncate(m.playlistURL, max(m.width-16, 8)))
	}
	body := styles.AccentText.Render("♫ ") + styles.Text.Render("Playlist") + "  " + target +
		"\n" + styles.FaintText.Render("m to hide")

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Width(max(m.width, 1)).
		Render(body)
}
