package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/typecard/typecard-cli/pkg/card"
	"github.com/typecard/typecard-cli/pkg/utils"
)

const (
	textLines       = 5
	previewLines    = 6
	sideBySideWidth = 100
	minBlocksHeight = 3
)

// frame holds the rendered panes above the block list
type frame struct {
	header      string
	text        string
	middle      string
	footer      string
	controlsX   int
	controlsY   int
	controlsW   int
	controlsH   int
	blocksStart int
}

func (a *App) paneStyle(active bool, width int) lipgloss.Style {
	style := a.theme.Styles.InactiveBorder
	if active {
		style = a.theme.Styles.ActiveBorder
	}
	return style.Width(width-2).Padding(0, 1)
}

func (a *App) renderTextPane(width int) string {
	active := a.focus == card.FocusText
	badge := a.theme.Styles.Dim.Render(utils.Summary(a.card.Text()))
	heading := renderHeading("TEXT", active, badge, width-4, a.theme)
	return a.paneStyle(active, width).Render(heading + "\n" + a.text.View())
}

func (a *App) renderPreviewPane(width int) string {
	style := a.card.Style()
	badge := a.theme.Styles.Dim.Render(string(style.FontFamily))
	heading := renderHeading("PREVIEW", false, badge, width-4, a.theme)
	body := renderPreview(a.card.Text(), style, width-4, previewLines, a.theme)

	pane := a.paneStyle(false, width).
		Border(layoutFor(style, width-4).Border).
		Height(previewLines + 1)
	return pane.Render(heading + "\n" + body)
}

func (a *App) renderControlsPane(width int) string {
	active := a.focus == card.FocusControls
	badge := ""
	if a.card.Changed() {
		badge = a.theme.Styles.Warning.Render("● modified")
	}
	heading := renderHeading("STYLE", active, badge, width-4, a.theme)
	return a.paneStyle(active, width).Render(heading + "\n" + a.renderControls())
}

func (a *App) renderBlocksPane() string {
	active := a.focus == card.FocusBlocks || a.focus == card.FocusBlockEditor
	n := len(a.card.Blocks())
	badge := a.theme.Styles.Dim.Render(fmt.Sprintf("%d blocks · %3.f%%", n, a.blocksVP.ScrollPercent()*100))
	heading := renderHeading("BLOCKS", active, badge, a.width-4, a.theme)
	return a.paneStyle(active, a.width).Render(heading + "\n" + a.blocksVP.View())
}

func (a *App) renderFooter() string {
	styles := a.theme.Styles
	parts := []string{
		utils.FormatCount(a.card.CharCount(), "chars"),
		fmt.Sprintf("%d blocks", len(a.card.Blocks())),
		a.theme.Name(),
	}
	status := styles.Dim.Render(strings.Join(parts, " · "))
	if toast := a.card.Toast(); toast.Visible {
		status += "  " + styles.Toast.Render(toast.Message)
	}

	helpView := ""
	if a.settings.UI.ShowHelp {
		helpView = a.help.View(a.keys.forFocus(a.focus, a.card.Changed()))
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(lipgloss.JoinVertical(lipgloss.Left, status, helpView))
}

func (a *App) buildFrame() frame {
	var f frame

	status := a.theme.Styles.Dim.Render(a.card.Focus().String())
	f.header = renderHeader(a.width, status, a.theme)
	f.text = a.renderTextPane(a.width)
	top := lipgloss.Height(f.header) + lipgloss.Height(f.text)

	if a.width >= sideBySideWidth {
		previewW := a.width / 2
		f.controlsW = a.width - previewW
		preview := a.renderPreviewPane(previewW)
		controls := a.renderControlsPane(f.controlsW)
		f.middle = lipgloss.JoinHorizontal(lipgloss.Top, preview, controls)
		f.controlsX = previewW
		f.controlsY = top
		f.controlsH = lipgloss.Height(controls)
	} else {
		preview := a.renderPreviewPane(a.width)
		controls := a.renderControlsPane(a.width)
		f.middle = lipgloss.JoinVertical(lipgloss.Left, preview, controls)
		f.controlsW = a.width
		f.controlsY = top + lipgloss.Height(preview)
		f.controlsH = lipgloss.Height(controls)
	}

	f.footer = a.renderFooter()
	f.blocksStart = top + lipgloss.Height(f.middle)
	return f
}

// layout sizes the block list to the space left and records the screen
// regions used for pointer hit testing.
func (a *App) layout() {
	if a.width == 0 {
		return
	}
	f := a.buildFrame()

	headerH := lipgloss.Height(f.header)
	a.textArea = card.Rect{X: 0, Y: headerH, Width: a.width, Height: lipgloss.Height(f.text)}
	a.controls = card.Rect{X: f.controlsX, Y: f.controlsY, Width: f.controlsW, Height: f.controlsH}

	// Two border rows plus the heading
	a.blocksVP.Height = max(a.height-f.blocksStart-lipgloss.Height(f.footer)-3, minBlocksHeight)
	a.blocksTop = f.blocksStart + 2

	if i := a.card.EditingIndex(); i != card.NoBlock {
		a.editor.SetHeight(editorHeight(a.editor.Value(), max(a.blocksVP.Width-4, minWrapWidth)))
	}
	a.blocksVP.SetContent(a.renderBlocks(a.blocksVP.Width))
	a.placeBlocks(a.blocksTop, a.width)
}

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}
	f := a.buildFrame()

	sections := []string{f.header, f.text, f.middle}
	if a.card.BlocksVisible() {
		sections = append(sections, a.renderBlocksPane())
	}
	sections = append(sections, f.footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
