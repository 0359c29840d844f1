package card

import tea "github.com/charmbracelet/bubbletea"

// Rect is a screen region in terminal cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether r covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// outsideGuard ends an edit session when a pointer press lands outside
// the edited block. It is only subscribed while a session is active.
type outsideGuard struct {
	listeners *Listeners
	remove    func()
}

func (g *outsideGuard) active() bool {
	return g.remove != nil
}

func (g *outsideGuard) install(region func() (Rect, bool), exit func()) {
	if g.active() {
		return
	}
	g.remove = g.listeners.OnPointer(func(ev PointerEvent) tea.Cmd {
		r, ok := region()
		if !ok || !r.Contains(ev.X, ev.Y) {
			exit()
		}
		return nil
	})
}

func (g *outsideGuard) uninstall() {
	if g.remove == nil {
		return
	}
	g.remove()
	g.remove = nil
}
