package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gallery/internal/catalog"
)

// modalWidth returns the outer width of the viewer box.
func (m Model) modalWidth() int {
	return clamp(m.width-4, 24, modalMaxWidth)
}

// modalInner returns the content width inside the viewer box.
func (m Model) modalInner() int {
	return m.modalWidth() - 6 // border and horizontal padding
}

// renderViewer centers the viewer box over the screen.
func (m Model) renderViewer() string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.renderModalBox(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// renderModalBox renders the viewer for the current artwork. The controls
// line is always the last content line.
func (m Model) renderModalBox() string {
	i, ok := m.viewer.Index()
	if !ok || i >= len(m.filtered) {
		return ""
	}
	art := m.filtered[i]
	styles := m.theme.Styles()
	inner := m.modalInner()

	image := lipgloss.NewStyle().
		Width(inner).
		Height(modalImageLines).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Foreground(lipgloss.Color(m.theme.Faint)).
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Render("▣\n" + truncate(art.Image, inner-2))

	parts := []string{image}
	if m.viewer.UIVisible() {
		label := "Add to favorites"
		if m.favorites.Has(art.ID) {
			label = "Favorited"
		}
		position := fmt.Sprintf("%d / %d", i+1, len(m.filtered))
		favorite := m.heart(art.ID) + " " + styles.MutedText.Render(label)
		favorite += strings.Repeat(" ", max(1, inner-lipgloss.Width(favorite)-len(position)))
		favorite += styles.FaintText.Render(position)

		parts = append(parts,
			"",
			m.captions.render(art, inner, m.theme.GlamourStyle),
			"",
			favorite,
			m.renderControls(inner),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(m.modalWidth() - 2).
		Render(strings.Join(parts, "\n"))
}

// renderControls renders the prev / close / next line split into thirds.
func (m Model) renderControls(inner int) string {
	styles := m.theme.Styles()
	third := inner / 3
	prev := styles.AccentText.Width(third).Align(lipgloss.Left).Render("← prev")
	closeBtn := styles.MutedText.Width(inner - 2*third).Align(lipgloss.Center).Render("esc close")
	next := styles.AccentText.Width(third).Align(lipgloss.Right).Render("next →")
	return lipgloss.JoinHorizontal(lipgloss.Top, prev, closeBtn, next)
}

// captionRenderer renders artwork captions with glamour, reusing the
// renderer and output for a given width and style.
type captionRenderer struct {
	width    int
	style    string
	renderer *glamour.TermRenderer
	cache    map[string]string
}

func newCaptionRenderer() *captionRenderer {
	return &captionRenderer{cache: make(map[string]string)}
}

func (c *captionRenderer) render(art catalog.Artwork, width int, style string) string {
	if c.renderer == nil || c.width != width || c.style != style {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(max(width-4, 10)),
		)
		if err != nil {
			return plainCaption(art)
		}
		c.renderer, c.width, c.style = r, width, style
		clear(c.cache)
	}

	if out, ok := c.cache[art.ID]; ok {
		return out
	}
	out, err := c.renderer.Render(captionMarkdown(art))
	if err != nil {
		return plainCaption(art)
	}
	out = strings.Trim(out, "\n")
	c.cache[art.ID] = out
	return out
}

// captionMarkdown describes an artwork as markdown.
func captionMarkdown(art catalog.Artwork) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", art.Title)
	fmt.Fprintf(&b, "*%s*\n\n", art.Byline())
	if tags := joinTags(art.Tags); tags != "" {
		fmt.Fprintf(&b, "%s\n\n", tags)
	}
	if art.Image != "" {
		fmt.Fprintf(&b, "`%s`\n", art.Image)
	}
	return b.String()
}

func plainCaption(art catalog.Artwork) string {
	return art.Title + "\n" + art.Byline()
}
