package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/typecard/typecard-cli/pkg/card"
	"github.com/typecard/typecard-cli/pkg/models"
)

type controlRow int

const (
	rowFamily controlRow = iota
	rowSize
	rowWeight
	rowSpacing
	rowLineHeight
	rowActions
	controlRowCount
)

type action int

const (
	actionReset action = iota
	actionQuote
	actionSplit
	actionCount
)

var actionLabels = [actionCount]string{"Reset", "Add Quote", "Split"}

const sliderWidth = 24

func (r controlRow) label() string {
	switch r {
	case rowFamily:
		return "Font"
	case rowSize:
		return "Size"
	case rowWeight:
		return "Weight"
	case rowSpacing:
		return "Spacing"
	case rowLineHeight:
		return "Line height"
	}
	return ""
}

func (r controlRow) bound() (models.Bound, bool) {
	switch r {
	case rowSize:
		return models.FontSizeBound, true
	case rowWeight:
		return models.FontWeightBound, true
	case rowSpacing:
		return models.LetterSpacingBound, true
	case rowLineHeight:
		return models.LineHeightBound, true
	}
	return models.Bound{}, false
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func valueFor(r controlRow, s models.StyleParameters) string {
	switch r {
	case rowFamily:
		return string(s.FontFamily)
	case rowSize:
		return formatNumber(s.FontSizePx) + "px"
	case rowWeight:
		return formatNumber(s.FontWeight)
	case rowSpacing:
		return formatNumber(s.LetterSpacingPx) + "px"
	case rowLineHeight:
		return fmt.Sprintf("%.1f", s.LineHeight)
	}
	return ""
}

func rawValueFor(r controlRow, s models.StyleParameters) float64 {
	switch r {
	case rowSize:
		return s.FontSizePx
	case rowWeight:
		return s.FontWeight
	case rowSpacing:
		return s.LetterSpacingPx
	case rowLineHeight:
		return s.LineHeight
	}
	return 0
}

func (a *App) cycleFamily(delta int) {
	current := a.card.Style().FontFamily
	idx := 0
	for i, f := range models.FontFamilies {
		if f == current {
			idx = i
		}
	}
	n := len(models.FontFamilies)
	a.card.SetFontFamily(models.FontFamilies[((idx+delta)%n+n)%n])
}

func (a *App) stepRow(delta int) {
	switch a.row {
	case rowFamily:
		a.cycleFamily(delta)
	case rowSize:
		a.card.StepFontSize(delta)
	case rowWeight:
		a.card.StepFontWeight(delta)
	case rowSpacing:
		a.card.StepLetterSpacing(delta)
	case rowLineHeight:
		a.card.StepLineHeight(delta)
	case rowActions:
		a.action = action((int(a.action) + delta + int(actionCount)) % int(actionCount))
	}
}

func (a *App) activate() tea.Cmd {
	switch a.row {
	case rowFamily:
		a.cycleFamily(1)
		return nil
	case rowActions:
		switch a.action {
		case actionReset:
			return a.reset()
		case actionQuote:
			a.card.GenerateQuote()
		case actionSplit:
			return a.split()
		}
		return nil
	}
	return a.startEntry()
}

func (a *App) handleControlsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Up):
		a.row = (a.row - 1 + controlRowCount) % controlRowCount
	case key.Matches(msg, a.keys.Down):
		a.row = (a.row + 1) % controlRowCount
	case key.Matches(msg, a.keys.Decrease):
		a.stepRow(-1)
	case key.Matches(msg, a.keys.Increase):
		a.stepRow(1)
	case key.Matches(msg, a.keys.Confirm):
		return a.activate()
	case key.Matches(msg, a.keys.Split), key.Matches(msg, a.keys.SplitKey):
		return a.split()
	case key.Matches(msg, a.keys.Quote), key.Matches(msg, a.keys.QuoteKey):
		a.card.GenerateQuote()
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(msg, a.keys.Cancel):
		return a.setFocus(card.FocusText)
	}
	return nil
}

// startEntry opens free-form entry for the selected numeric control
func (a *App) startEntry() tea.Cmd {
	if _, ok := a.row.bound(); !ok {
		return nil
	}
	a.entering = true
	a.entry.SetValue(formatNumber(rawValueFor(a.row, a.card.Style())))
	a.entry.CursorEnd()
	return a.entry.Focus()
}

func (a *App) handleEntryKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Confirm):
		raw := a.entry.Value()
		switch a.row {
		case rowSize:
			a.card.EnterFontSize(raw)
		case rowWeight:
			a.card.EnterFontWeight(raw)
		case rowSpacing:
			a.card.EnterLetterSpacing(raw)
		case rowLineHeight:
			a.card.EnterLineHeight(raw)
		}
		a.closeEntry()
		return nil
	case key.Matches(msg, a.keys.Cancel):
		a.closeEntry()
		return nil
	}

	var cmd tea.Cmd
	a.entry, cmd = a.entry.Update(msg)
	return cmd
}

func (a *App) closeEntry() {
	a.entering = false
	a.entry.Blur()
	a.entry.SetValue("")
}

func (a *App) renderSlider(b models.Bound, v float64) string {
	filled := int(math.Round(b.Fraction(v) * sliderWidth))
	return a.theme.Styles.SliderFill.Render(strings.Repeat("━", filled)) +
		a.theme.Styles.SliderTrack.Render(strings.Repeat("─", sliderWidth-filled))
}

func (a *App) renderActions(active bool) string {
	styles := a.theme.Styles
	buttons := make([]string, 0, actionCount)
	for i, label := range actionLabels {
		style := styles.Button
		switch {
		case action(i) == actionReset && !a.card.Changed():
			style = styles.ButtonDisabled
		case active && action(i) == a.action:
			style = styles.ButtonActive
		}
		buttons = append(buttons, style.Render(label))
	}
	return strings.Join(buttons, " ")
}

// renderControls draws the style controls and the action row
func (a *App) renderControls() string {
	styles := a.theme.Styles
	style := a.card.Style()
	focused := a.focus == card.FocusControls

	var lines []string
	for r := rowFamily; r < rowActions; r++ {
		cursor := "  "
		labelStyle := styles.Label
		if focused && r == a.row {
			cursor = styles.Title.Render("▸ ")
			labelStyle = styles.Selected
		}

		value := styles.Value.Render(valueFor(r, style))
		if a.entering && r == a.row {
			value = a.entry.View()
		}

		line := cursor + labelStyle.Render(fmt.Sprintf("%-12s", r.label()))
		if b, ok := r.bound(); ok {
			line += " " + a.renderSlider(b, rawValueFor(r, style))
		} else {
			line += " " + styles.Dim.Render("‹ ") + styles.Normal.Render(fmt.Sprintf("%-*s", sliderWidth-4, style.FontFamily)) + styles.Dim.Render(" ›")
			value = ""
		}
		if value != "" {
			line += "  " + value
		}
		lines = append(lines, line)
	}

	cursor := "  "
	if focused && a.row == rowActions {
		cursor = styles.Title.Render("▸ ")
	}
	lines = append(lines, "", cursor+a.renderActions(focused && a.row == rowActions))
	return strings.Join(lines, "\n")
}
