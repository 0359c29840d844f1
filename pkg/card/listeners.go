package card

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyEvent is a key press as reported by the presentation layer,
// using Bubble Tea key names ("r", "R", "ctrl+c", ...).
type KeyEvent struct {
	Key string
}

// PointerEvent is a pointer press at a screen cell
type PointerEvent struct {
	X int
	Y int
}

// KeyHandler reacts to a key press. It returns whether it consumed the key.
type KeyHandler func(KeyEvent) (tea.Cmd, bool)

// PointerHandler reacts to a pointer press
type PointerHandler func(PointerEvent) tea.Cmd

// Listeners holds the card-wide key and pointer subscriptions. Every
// registration hands back a remove function; callers own the lifetime.
type Listeners struct {
	nextID  int
	keys    map[int]KeyHandler
	pointer map[int]PointerHandler
}

// NewListeners creates an empty registry
func NewListeners() *Listeners {
	return &Listeners{
		keys:    make(map[int]KeyHandler),
		pointer: make(map[int]PointerHandler),
	}
}

// OnKey registers a key handler
func (l *Listeners) OnKey(h KeyHandler) (remove func()) {
	l.nextID++
	id := l.nextID
	l.keys[id] = h
	return func() { delete(l.keys, id) }
}

// OnPointer registers a pointer handler
func (l *Listeners) OnPointer(h PointerHandler) (remove func()) {
	l.nextID++
	id := l.nextID
	l.pointer[id] = h
	return func() { delete(l.pointer, id) }
}

// DispatchKey offers ev to key handlers in registration order until one consumes it
func (l *Listeners) DispatchKey(ev KeyEvent) (tea.Cmd, bool) {
	for _, id := range sortedIDs(l.keys) {
		h, ok := l.keys[id]
		if !ok {
			continue
		}
		if cmd, handled := h(ev); handled {
			return cmd, true
		}
	}
	return nil, false
}

// DispatchPointer delivers ev to every pointer handler in registration order
func (l *Listeners) DispatchPointer(ev PointerEvent) tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range sortedIDs(l.pointer) {
		// A handler may remove others (or itself) while we iterate.
		h, ok := l.pointer[id]
		if !ok {
			continue
		}
		if cmd := h(ev); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// KeyCount returns the number of registered key handlers
func (l *Listeners) KeyCount() int {
	return len(l.keys)
}

// PointerCount returns the number of registered pointer handlers
func (l *Listeners) PointerCount() int {
	return len(l.pointer)
}

func sortedIDs[H any](m map[int]H) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
