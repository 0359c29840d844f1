package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants (dark palette)
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast
	ColorPrimary  = "33"  // Blue for primary actions
	ColorTrack    = "237" // Unfilled slider track
)

// Palette is the set of colors a theme draws with
type Palette struct {
	Active   string
	Inactive string
	Selected string
	Normal   string
	Dim      string
	Warning  string
	Success  string
	Primary  string
	Track    string
	ToastFg  string
	ToastBg  string
}

var darkPalette = Palette{
	Active:   ColorActive,
	Inactive: ColorInactive,
	Selected: ColorSelected,
	Normal:   ColorNormal,
	Dim:      ColorDim,
	Warning:  ColorWarning,
	Success:  ColorSuccess,
	Primary:  ColorPrimary,
	Track:    ColorTrack,
	ToastFg:  ColorWhite,
	ToastBg:  ColorDark,
}

var lightPalette = Palette{
	Active:   "127",
	Inactive: "250",
	Selected: "254",
	Normal:   "236",
	Dim:      "244",
	Warning:  "166",
	Success:  "28",
	Primary:  "27",
	Track:    "252",
	ToastFg:  "255",
	ToastBg:  "238",
}

// Styles are the lipgloss styles derived from a palette
type Styles struct {
	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
	Title          lipgloss.Style
	Label          lipgloss.Style
	Value          lipgloss.Style
	Selected       lipgloss.Style
	Normal         lipgloss.Style
	Dim            lipgloss.Style
	Success        lipgloss.Style
	Warning        lipgloss.Style
	Button         lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonDisabled lipgloss.Style
	SliderFill     lipgloss.Style
	SliderTrack    lipgloss.Style
	Toast          lipgloss.Style
	ContentPadding lipgloss.Style
}

func newStyles(p Palette) Styles {
	return Styles{
		ActiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Active)),
		InactiveBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Inactive)),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Active)),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Normal)),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Dim)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Active)).
			Background(lipgloss.Color(p.Selected)).
			Bold(true),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Normal)),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Dim)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Normal)).
			Background(lipgloss.Color(p.Selected)).
			Padding(0, 2),
		ButtonActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(p.Primary)).
			Bold(true).
			Padding(0, 2),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Inactive)).
			Padding(0, 2),
		SliderFill: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Primary)),
		SliderTrack: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Track)),
		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.ToastFg)).
			Background(lipgloss.Color(p.ToastBg)).
			Padding(0, 2),
		ContentPadding: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),
	}
}

// Theme is the light/dark display mode. It has no effect on card state.
type Theme struct {
	Dark   bool
	Styles Styles
}

// NewTheme builds the theme for mode "dark" or "light"
func NewTheme(mode string) Theme {
	return themeFor(mode != "light")
}

func themeFor(dark bool) Theme {
	if dark {
		return Theme{Dark: true, Styles: newStyles(darkPalette)}
	}
	return Theme{Dark: false, Styles: newStyles(lightPalette)}
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	return themeFor(!t.Dark)
}

// Name returns "dark" or "light"
func (t Theme) Name() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}
