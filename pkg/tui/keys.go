package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/typecard/typecard-cli/pkg/card"
)

func binding(s ShortcutKey, desc string, extra ...string) key.Binding {
	keys := append([]string{s.Get()}, extra...)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(FormatShortcutForHelp(s), desc),
	)
}

// keyMap holds the presentation's bindings. Reset is listed for help only;
// the card's shortcut router owns the key itself.
type keyMap struct {
	Split      key.Binding
	Quote      key.Binding
	SplitKey   key.Binding
	QuoteKey   key.Binding
	Reset      key.Binding
	Copy       key.Binding
	Edit       key.Binding
	NextPane   key.Binding
	PrevPane   key.Binding
	Up         key.Binding
	Down       key.Binding
	Decrease   key.Binding
	Increase   key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Theme      key.Binding
	Help       key.Binding
	Quit       key.Binding
	focus      card.Focus
}

func newKeyMap() keyMap {
	return keyMap{
		Split:    binding(Shortcuts.Split, "split"),
		Quote:    binding(Shortcuts.Quote, "add quote"),
		SplitKey: binding(Shortcuts.SplitKey, "split"),
		QuoteKey: binding(Shortcuts.QuoteKey, "add quote"),
		Reset: key.NewBinding(
			key.WithKeys(card.ResetShortcut),
			key.WithHelp("r", "reset"),
		),
		Copy:     binding(Shortcuts.Copy, "copy", "c"),
		Edit:     binding(Shortcuts.Edit, "edit"),
		NextPane: binding(Shortcuts.SwitchPane, "next pane"),
		PrevPane: binding(Shortcuts.ReverseSwitch, "prev pane"),
		Up:       binding(Shortcuts.Up, "up", "k"),
		Down:     binding(Shortcuts.Down, "down", "j"),
		Decrease: binding(Shortcuts.Left, "less", "h", "-"),
		Increase: binding(Shortcuts.Right, "more", "l", "+"),
		Confirm:  binding(Shortcuts.Confirm, "select"),
		Cancel:   binding(Shortcuts.Cancel, "back"),
		Theme:    binding(Shortcuts.Theme, "theme"),
		Help:     binding(Shortcuts.Help, "help"),
		Quit:     binding(Shortcuts.Quit, "quit"),
	}
}

// forFocus returns a copy of the map scoped to the given focus so help
// shows what applies right now.
func (k keyMap) forFocus(f card.Focus, resettable bool) keyMap {
	k.focus = f
	k.Reset.SetEnabled(resettable)
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	switch k.focus {
	case card.FocusText:
		return []key.Binding{k.Split, k.Quote, k.NextPane, k.Cancel, k.Quit}
	case card.FocusControls:
		return []key.Binding{k.Up, k.Down, k.Decrease, k.Increase, k.Reset, k.NextPane, k.Help}
	case card.FocusBlocks:
		return []key.Binding{k.Up, k.Down, k.Edit, k.Copy, k.Reset, k.NextPane, k.Help}
	case card.FocusBlockEditor:
		return []key.Binding{k.Cancel, k.Quit}
	}
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decrease, k.Increase, k.Confirm},
		{k.SplitKey, k.QuoteKey, k.Reset, k.Edit, k.Copy},
		{k.Split, k.Quote, k.NextPane, k.PrevPane, k.Cancel},
		{k.Theme, k.Help, k.Quit},
	}
}
