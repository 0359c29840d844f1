package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	return s.getFor(GetOS())
}

func (s ShortcutKey) getFor(os OSType) string {
	switch os {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Shortcuts contains all keyboard shortcuts with OS-specific variations.
// The reset key is not listed here: it belongs to the card's shortcut router.
var Shortcuts = struct {
	// Card actions while typing
	Split ShortcutKey
	Quote ShortcutKey

	// Card actions from the controls and blocks
	SplitKey ShortcutKey
	QuoteKey ShortcutKey
	Copy     ShortcutKey
	Edit     ShortcutKey

	// Navigation
	SwitchPane    ShortcutKey
	ReverseSwitch ShortcutKey
	Up            ShortcutKey
	Down          ShortcutKey
	Left          ShortcutKey
	Right         ShortcutKey

	// System
	Theme   ShortcutKey
	Help    ShortcutKey
	Quit    ShortcutKey
	Cancel  ShortcutKey
	Confirm ShortcutKey
}{
	Split: ShortcutKey{
		Mac:     "ctrl+s",
		Linux:   "alt+s", // Avoid Ctrl+S terminal conflict (XOFF)
		Windows: "alt+s", // Consistent with Linux
		Default: "ctrl+s",
	},
	Quote: ShortcutKey{
		Mac:     "ctrl+g",
		Linux:   "alt+g",
		Windows: "alt+g",
		Default: "ctrl+g",
	},

	SplitKey: ShortcutKey{
		Default: "s",
	},
	QuoteKey: ShortcutKey{
		Default: "g",
	},
	Copy: ShortcutKey{
		Default: "y",
	},
	Edit: ShortcutKey{
		Default: "e",
	},

	SwitchPane: ShortcutKey{
		Default: "tab",
	},
	ReverseSwitch: ShortcutKey{
		Mac:     "shift+tab",
		Linux:   "shift+tab",
		Windows: "backtab", // Windows terminal compatibility
		Default: "shift+tab",
	},
	Up: ShortcutKey{
		Default: "up",
	},
	Down: ShortcutKey{
		Default: "down",
	},
	Left: ShortcutKey{
		Default: "left",
	},
	Right: ShortcutKey{
		Default: "right",
	},

	Theme: ShortcutKey{
		Mac:     "ctrl+t",
		Linux:   "alt+t", // Avoid readline transpose
		Windows: "alt+t",
		Default: "ctrl+t",
	},
	Help: ShortcutKey{
		Default: "?",
	},
	Quit: ShortcutKey{
		Default: "ctrl+c",
	},
	Cancel: ShortcutKey{
		Default: "esc",
	},
	Confirm: ShortcutKey{
		Default: "enter",
	},
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(key ShortcutKey) string {
	return formatShortcut(key.Get(), GetOS())
}

func formatShortcut(shortcut string, os OSType) string {
	// Use M- prefix for Alt on Linux/Windows (common terminal convention)
	if os == OSLinux || os == OSWindows {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")

	switch shortcut {
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return shortcut
}
