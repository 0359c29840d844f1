package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/typecard/typecard-cli/pkg/models"
)

// Terminal cells have no pixel size; these map the card's CSS-ish values
// onto cells.
const (
	pxPerCell      = 8.0
	baseFontSizePx = 24.0
	minWrapWidth   = 8
)

// previewLayout is the cell geometry that approximates a style
type previewLayout struct {
	WrapWidth   int
	Gap         int // spaces inserted between characters
	BlankLines  int // blank lines between wrapped lines
	Bold, Faint bool
	Border      lipgloss.Border
}

func layoutFor(style models.StyleParameters, width int) previewLayout {
	l := previewLayout{}

	if style.LetterSpacingPx > 0 {
		l.Gap = int(math.Round(style.LetterSpacingPx / pxPerCell))
	}

	// Larger type fits fewer characters on a line.
	wrapWidth := int(float64(width) * baseFontSizePx / style.FontSizePx)
	if wrapWidth > width {
		wrapWidth = width
	}
	wrapWidth /= l.Gap + 1
	if wrapWidth < minWrapWidth {
		wrapWidth = minWrapWidth
	}
	l.WrapWidth = wrapWidth

	l.BlankLines = int(math.Round(style.LineHeight)) - 1
	if l.BlankLines < 0 {
		l.BlankLines = 0
	}

	l.Bold = style.FontWeight >= 600
	l.Faint = style.FontWeight <= 300

	switch style.FontFamily {
	case models.FontRobotoMono:
		l.Border = lipgloss.NormalBorder()
	case models.FontMontserrat:
		l.Border = lipgloss.ThickBorder()
	default:
		l.Border = lipgloss.RoundedBorder()
	}
	return l
}

func spaceOut(line string, gap int) string {
	if gap <= 0 || line == "" {
		return line
	}
	sep := strings.Repeat(" ", gap)
	runes := []rune(line)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, sep)
}

// renderPreview draws text the way the current style would set it,
// within width cells and at most maxLines lines.
func renderPreview(text string, style models.StyleParameters, width, maxLines int, theme Theme) string {
	l := layoutFor(style, width)

	textStyle := theme.Styles.Normal
	if l.Bold {
		textStyle = textStyle.Bold(true)
	}
	if l.Faint {
		textStyle = textStyle.Faint(true)
	}

	var lines []string
	if text == "" {
		lines = []string{theme.Styles.Dim.Render("Preview appears here as you type.")}
	} else {
		wrapped := wrap.String(wordwrap.String(text, l.WrapWidth), l.WrapWidth)
		for i, line := range strings.Split(wrapped, "\n") {
			if i > 0 {
				for j := 0; j < l.BlankLines; j++ {
					lines = append(lines, "")
				}
			}
			line = truncate.String(spaceOut(line, l.Gap), uint(width))
			lines = append(lines, textStyle.Render(line))
		}
	}

	if maxLines > 0 && len(lines) > maxLines {
		lines = append(lines[:maxLines-1], theme.Styles.Dim.Render("…"))
	}
	return strings.Join(lines, "\n")
}
