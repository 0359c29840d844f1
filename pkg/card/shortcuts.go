package card

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Focus identifies which part of the card currently owns keyboard input
type Focus int

const (
	FocusText        Focus = iota // primary text entry
	FocusControls                 // style controls and buttons
	FocusBlocks                   // block list navigation
	FocusBlockEditor              // a block in edit mode
)

func (f Focus) String() string {
	switch f {
	case FocusText:
		return "text"
	case FocusControls:
		return "controls"
	case FocusBlocks:
		return "blocks"
	case FocusBlockEditor:
		return "block editor"
	default:
		return "unknown"
	}
}

// IsTextEntry reports whether keys typed under this focus are text
func (f Focus) IsTextEntry() bool {
	return f == FocusText || f == FocusBlockEditor
}

// ResetShortcut is the key that resets the card when focus is not on text entry
const ResetShortcut = "r"

// ShortcutRouter maps the reset key to an action, gated on focus
type ShortcutRouter struct {
	Key   string
	Focus func() Focus
	Reset func() tea.Cmd
}

// Handle is a KeyHandler. Any key other than the reset key passes through.
func (r *ShortcutRouter) Handle(ev KeyEvent) (tea.Cmd, bool) {
	if !strings.EqualFold(ev.Key, r.Key) {
		return nil, false
	}
	if r.Focus != nil && r.Focus().IsTextEntry() {
		return nil, false
	}
	return r.Reset(), true
}
