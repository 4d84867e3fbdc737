package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
	"go.uber.org/zap"

	"github.com/five82/gallery/internal/catalog"
)

// pagerExitMsg is sent when the pager returns control to the UI.
type pagerExitMsg struct {
	err error
}

// pagerCommand runs ov over a fixed text. It implements tea.ExecCommand so
// Bubble Tea releases and restores the terminal around it.
type pagerCommand struct {
	content string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func (c *pagerCommand) SetStdin(r io.Reader)  { c.stdin = r }
func (c *pagerCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *pagerCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run shows the content in ov until the user quits it.
func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return fmt.Errorf("open pager: %w", err)
	}

	// Leave the screen alone on exit; Bubble Tea redraws it.
	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// pagerCmd pages the filtered list.
func (m Model) pagerCmd() tea.Cmd {
	if len(m.filtered) == 0 {
		return nil
	}
	var b strings.Builder
	if err := WriteListing(&b, m.filtered, m.favorites.Has); err != nil {
		m.logger.Warn("format listing", zap.Error(err))
		return nil
	}
	cmd := &pagerCommand{content: b.String()}
	return tea.Exec(cmd, func(err error) tea.Msg {
		return pagerExitMsg{err: err}
	})
}

// WriteListing writes items as aligned plain-text rows: favorite mark, id,
// title, byline and tags. isFavorite may be nil.
func WriteListing(w io.Writer, items []catalog.Artwork, isFavorite func(id string) bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, art := range items {
		mark := " "
		if isFavorite != nil && isFavorite(art.ID) {
			mark = "♥"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			mark, art.ID, art.Title, art.Byline(), joinTags(art.Tags)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
