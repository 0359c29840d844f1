package card

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastSlot is the timer slot used by the reset toast
const ToastSlot = "toast"

const copySlotPrefix = "copy:"

func copySlot(index int) string {
	return fmt.Sprintf("%s%d", copySlotPrefix, index)
}

// TimerExpiredMsg is delivered when an armed slot's delay has passed.
// It only counts if Generation still matches the slot.
type TimerExpiredMsg struct {
	Slot       string
	Generation int
}

// Timer shows-then-hides feedback after a fixed delay. Each slot has at
// most one live timer: arming a slot again supersedes the pending tick,
// which is then ignored when it arrives.
type Timer struct {
	generations map[string]int
	armed       map[string]bool
}

// NewTimer creates an empty timer table
func NewTimer() *Timer {
	return &Timer{
		generations: make(map[string]int),
		armed:       make(map[string]bool),
	}
}

// Arm (re)starts the delay for slot and returns the tick command
func (t *Timer) Arm(slot string, d time.Duration) tea.Cmd {
	t.generations[slot]++
	t.armed[slot] = true
	gen := t.generations[slot]

	return tea.Tick(d, func(time.Time) tea.Msg {
		return TimerExpiredMsg{Slot: slot, Generation: gen}
	})
}

// Expire consumes msg and reports whether it is the live tick for its slot
func (t *Timer) Expire(msg TimerExpiredMsg) bool {
	if !t.armed[msg.Slot] || t.generations[msg.Slot] != msg.Generation {
		return false
	}
	delete(t.armed, msg.Slot)
	return true
}

// Pending reports whether slot has a live timer
func (t *Timer) Pending(slot string) bool {
	return t.armed[slot]
}

// Cancel drops the live timer for slot, if any
func (t *Timer) Cancel(slot string) {
	if !t.armed[slot] {
		return
	}
	t.generations[slot]++
	delete(t.armed, slot)
}

// CancelPrefix drops every live timer whose slot starts with prefix
func (t *Timer) CancelPrefix(prefix string) {
	for slot := range t.armed {
		if strings.HasPrefix(slot, prefix) {
			t.Cancel(slot)
		}
	}
}

// CancelAll drops every live timer
func (t *Timer) CancelAll() {
	for slot := range t.armed {
		t.Cancel(slot)
	}
}
