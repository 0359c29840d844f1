package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/typecard/typecard-cli/pkg/card"
	"github.com/typecard/typecard-cli/pkg/utils"
)

const (
	minEditorLines = 3
	maxEditorLines = 10
)

// blockSpan is where a block sits inside the blocks viewport content
type blockSpan struct {
	start int
	lines int
}

func (a *App) handleBlocksKey(msg tea.KeyMsg) tea.Cmd {
	n := len(a.card.Blocks())

	switch {
	case key.Matches(msg, a.keys.Up):
		if a.selected > 0 {
			a.selected--
			a.ensureBlockVisible(a.selected)
		}
	case key.Matches(msg, a.keys.Down):
		if a.selected < n-1 {
			a.selected++
			a.ensureBlockVisible(a.selected)
		}
	case key.Matches(msg, a.keys.Edit), key.Matches(msg, a.keys.Confirm):
		return a.startEdit(a.selected)
	case key.Matches(msg, a.keys.Copy):
		return a.card.Copy(a.selected)
	case key.Matches(msg, a.keys.Split), key.Matches(msg, a.keys.SplitKey):
		return a.split()
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(msg, a.keys.Cancel):
		return a.setFocus(card.FocusControls)
	default:
		// Page keys scroll the list
		var cmd tea.Cmd
		a.blocksVP, cmd = a.blocksVP.Update(msg)
		return cmd
	}
	return nil
}

func (a *App) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keys.Cancel) {
		a.card.EndEdit()
		return nil
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	a.card.EditBlock(a.card.EditingIndex(), a.editor.Value())
	return cmd
}

func (a *App) ensureBlockVisible(i int) {
	if i < 0 || i >= len(a.spans) {
		return
	}
	span := a.spans[i]
	switch {
	case span.start < a.blocksVP.YOffset:
		a.blocksVP.SetYOffset(span.start)
	case span.start+span.lines > a.blocksVP.YOffset+a.blocksVP.Height:
		a.blocksVP.SetYOffset(span.start + span.lines - a.blocksVP.Height)
	}
}

// blockAt returns the block drawn at screen cell (x, y)
func (a *App) blockAt(x, y int) (int, bool) {
	for i, r := range a.regions {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

func (a *App) blockHeader(i, n int, b card.Block) string {
	styles := a.theme.Styles
	parts := []string{fmt.Sprintf("Block %d/%d", i+1, n), utils.FormatCount(utils.CountChars(b.Content), "chars")}
	if b.Copied {
		parts = append(parts, styles.Success.Render("✓ Copied"))
	}
	if b.Edited() {
		ins, del := b.Changes()
		parts = append(parts, styles.Warning.Render(fmt.Sprintf("✎ edited +%d −%d", ins, del)))
	}

	heading := strings.Join(parts, styles.Dim.Render(" · "))
	if i == a.selected && (a.focus == card.FocusBlocks || a.focus == card.FocusBlockEditor) {
		return styles.Title.Render("▸ ") + heading
	}
	return "  " + heading
}

// renderBlocks builds the viewport content and records each block's span
func (a *App) renderBlocks(width int) string {
	blocks := a.card.Blocks()
	editing := a.card.EditingIndex()
	bodyWidth := max(width-4, minWrapWidth)

	a.spans = a.spans[:0]
	var lines []string
	for i, b := range blocks {
		start := len(lines)
		lines = append(lines, a.blockHeader(i, len(blocks), b))

		var body string
		if i == editing {
			body = a.editor.View()
		} else {
			body = a.theme.Styles.Normal.Render(wrap.String(wordwrap.String(b.Content, bodyWidth), bodyWidth))
		}
		for _, line := range strings.Split(body, "\n") {
			lines = append(lines, "  "+line)
		}
		a.spans = append(a.spans, blockSpan{start: start, lines: len(lines) - start})

		if i < len(blocks)-1 {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

func editorHeight(content string, width int) int {
	h := strings.Count(wrap.String(wordwrap.String(content, width), width), "\n") + 2
	return min(max(h, minEditorLines), maxEditorLines)
}

// placeBlocks maps each block span onto the screen, clipped to the
// viewport starting at row top.
func (a *App) placeBlocks(top, width int) {
	a.regions = a.regions[:0]
	a.card.ClearBlockRegions()
	if !a.card.BlocksVisible() {
		return
	}

	bottom := top + a.blocksVP.Height
	for i, span := range a.spans {
		y0 := top + span.start - a.blocksVP.YOffset
		y1 := y0 + span.lines
		y0 = max(y0, top)
		y1 = min(y1, bottom)

		r := card.Rect{X: 1, Y: y0, Width: max(width-2, 0), Height: max(y1-y0, 0)}
		a.regions = append(a.regions, r)
		a.card.SetBlockRegion(i, r)
	}
}
