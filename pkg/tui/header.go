package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = "▀█▀ █▄█ █▀█ █▀▀ █▀▀ ▄▀█ █▀█ █▀▄"

// renderHeader draws the logo line with status on the right
func renderHeader(width int, status string, theme Theme) string {
	logoRendered := theme.Styles.Title.Render(logo)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	contentWidth := width - 2
	gap := contentWidth - lipgloss.Width(logoRendered) - lipgloss.Width(status)
	if gap < 1 {
		return headerPadding.Render(logoRendered)
	}
	return headerPadding.Render(logoRendered + strings.Repeat(" ", gap) + status)
}

// renderHeading draws a pane heading followed by a colon rule up to the
// badge, the way every pane in the app is titled.
func renderHeading(heading string, active bool, badge string, width int, theme Theme) string {
	styles := theme.Styles
	headingStyle := styles.Warning.Bold(true)
	colonStyle := styles.Dim
	if active {
		headingStyle = styles.Title
		colonStyle = styles.Title
	}

	colonSpace := width - lipgloss.Width(heading) - lipgloss.Width(badge) - 2
	if badge == "" {
		colonSpace++
	}
	if colonSpace < 3 {
		colonSpace = 3
	}

	line := headingStyle.Render(heading) + " " + colonStyle.Render(strings.Repeat(":", colonSpace))
	if badge != "" {
		line += " " + badge
	}
	return line
}
