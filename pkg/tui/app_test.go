package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typecard/typecard-cli/pkg/card"
	"github.com/typecard/typecard-cli/pkg/models"
)

type fakeClipboard struct {
	writes []string
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.writes = append(f.writes, text)
	return nil
}

func newTestApp(t *testing.T, text string) (*App, *fakeClipboard) {
	t.Helper()
	settings := models.DefaultSettings()
	settings.Notifications.CopyFeedbackMs = 1
	settings.Notifications.ToastMs = 1

	clip := &fakeClipboard{}
	a := NewApp(Config{
		InitialText: text,
		Settings:    settings,
		Clipboard:   clip,
		Quotes:      []models.Quote{{Text: "Stay hungry.", Author: "Steve Jobs"}},
	})
	a.SetSize(120, 60)
	t.Cleanup(a.card.Close)
	return a, clip
}

func press(a *App, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = a.Update(msg)
	}
	return cmd
}

func runes(s string) []tea.KeyMsg {
	var msgs []tea.KeyMsg
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyBack  = tea.KeyMsg{Type: tea.KeyBackspace}
)

func click(a *App, x, y int) tea.Cmd {
	_, cmd := a.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return cmd
}

// splitApp returns an app whose 650 character text has been split
func splitApp(t *testing.T) (*App, *fakeClipboard) {
	t.Helper()
	a, clip := newTestApp(t, strings.Repeat("a", 650))
	press(a, keyTab)
	require.Equal(t, card.FocusControls, a.Focus())
	press(a, runes("s")...)
	require.Len(t, a.card.Blocks(), 3)
	return a, clip
}

func TestApp_TypingUpdatesCard(t *testing.T) {
	a, _ := newTestApp(t, "")

	press(a, runes("hi")...)

	assert.Equal(t, "hi", a.card.Text())
	assert.True(t, a.card.Changed())
}

func TestApp_InitialTextIsNotAChange(t *testing.T) {
	a, _ := newTestApp(t, "hello")

	assert.Equal(t, "hello", a.text.Value())
	assert.False(t, a.card.Changed())
}

func TestApp_ResetKeyIsTextWhileTyping(t *testing.T) {
	a, _ := newTestApp(t, "")

	press(a, runes("r")...)

	assert.Equal(t, "r", a.card.Text())
	assert.False(t, a.card.Toast().Visible)
}

func TestApp_ResetKeyFromControls(t *testing.T) {
	a, _ := newTestApp(t, "")
	press(a, runes("abc")...)
	press(a, keyTab, keyDown, keyRight)
	require.Equal(t, 25.0, a.card.Style().FontSizePx)

	press(a, runes("R")...)

	assert.Equal(t, "", a.card.Text())
	assert.Equal(t, "", a.text.Value())
	assert.Equal(t, models.DefaultStyle(), a.card.Style())
	assert.False(t, a.card.Changed())
	assert.True(t, a.card.Toast().Visible)
}

func TestApp_QuoteSyncsTextWidget(t *testing.T) {
	a, _ := newTestApp(t, "")
	press(a, keyTab)

	press(a, runes("g")...)

	assert.Equal(t, "「Stay hungry.」 - Steve Jobs", a.card.Text())
	assert.Equal(t, a.card.Text(), a.text.Value())
}

func TestApp_StepControls(t *testing.T) {
	a, _ := newTestApp(t, "")
	press(a, keyTab)

	press(a, keyRight)
	assert.Equal(t, models.FontRobotoMono, a.card.Style().FontFamily)

	press(a, keyDown, keyDown, keyRight)
	assert.Equal(t, 500.0, a.card.Style().FontWeight)
}

func TestApp_FreeFormEntry(t *testing.T) {
	a, _ := newTestApp(t, "")
	press(a, keyTab, keyDown, keyEnter)
	require.True(t, a.entering)

	press(a, keyBack, keyBack)
	press(a, runes("100")...)
	press(a, keyEnter)

	assert.False(t, a.entering)
	assert.Equal(t, 48.0, a.card.Style().FontSizePx)
}

func TestApp_FreeFormEntryCancel(t *testing.T) {
	a, _ := newTestApp(t, "")
	press(a, keyTab, keyDown, keyEnter)
	press(a, runes("9")...)

	press(a, keyEsc)

	assert.False(t, a.entering)
	assert.Equal(t, 24.0, a.card.Style().FontSizePx)
	assert.Equal(t, card.FocusControls, a.Focus())
}

func TestApp_SplitShowsBlocks(t *testing.T) {
	a, _ := splitApp(t)

	assert.True(t, a.card.BlocksVisible())
	assert.Contains(t, a.View(), "BLOCKS")
	assert.Contains(t, a.View(), "Block 1/3")

	press(a, keyTab)
	assert.Equal(t, card.FocusBlocks, a.Focus())
}

func TestApp_CopyBlock(t *testing.T) {
	a, clip := splitApp(t)
	press(a, keyTab, keyDown)

	cmd := press(a, runes("y")...)
	require.NotNil(t, cmd)
	_, feedback := a.Update(cmd())

	require.Equal(t, []string{strings.Repeat("a", 300)}, clip.writes)
	assert.True(t, a.card.Blocks()[1].Copied)
	assert.Contains(t, a.View(), "✓ Copied")

	// The feedback timer is a real tick at the configured delay
	require.NotNil(t, feedback)
	a.Update(feedback())
	assert.False(t, a.card.Blocks()[1].Copied)
}

func TestApp_EditBlockLeavesTextAlone(t *testing.T) {
	a, _ := splitApp(t)
	press(a, keyTab, keyEnter)
	require.Equal(t, card.FocusBlockEditor, a.Focus())
	require.Equal(t, 0, a.card.EditingIndex())

	press(a, runes("xr")...)

	block := a.card.Blocks()[0]
	assert.Equal(t, strings.Repeat("a", 300)+"xr", block.Content)
	assert.Equal(t, strings.Repeat("a", 650), a.card.Text())
	assert.False(t, a.card.Toast().Visible, "r is text inside the block editor")

	press(a, keyEsc)
	assert.Equal(t, card.NoBlock, a.card.EditingIndex())
	assert.Equal(t, card.FocusBlocks, a.Focus())
}

func TestApp_ClickOutsideEndsEdit(t *testing.T) {
	a, _ := splitApp(t)
	press(a, keyTab, keyEnter)
	require.Equal(t, 0, a.card.EditingIndex())

	click(a, 0, 0)

	assert.Equal(t, card.NoBlock, a.card.EditingIndex())
	assert.Equal(t, card.FocusBlocks, a.Focus())
}

func TestApp_ClickInsideKeepsEdit(t *testing.T) {
	a, _ := splitApp(t)
	press(a, keyTab, keyEnter)
	r := a.regions[0]
	require.False(t, r.Empty())

	click(a, r.X+1, r.Y)

	assert.Equal(t, 0, a.card.EditingIndex())
}

func TestApp_ClickBlockStartsEdit(t *testing.T) {
	a, _ := splitApp(t)
	r := a.regions[2]
	require.False(t, r.Empty())

	click(a, r.X+1, r.Y)

	assert.Equal(t, 2, a.card.EditingIndex())
	assert.Equal(t, card.FocusBlockEditor, a.Focus())
}

func TestApp_ClickTextFocusesIt(t *testing.T) {
	a, _ := splitApp(t)

	click(a, 2, a.textArea.Y+1)

	assert.Equal(t, card.FocusText, a.Focus())
}

func TestApp_ResplitDropsEdits(t *testing.T) {
	a, _ := splitApp(t)
	press(a, keyTab, keyEnter)
	press(a, runes("x")...)
	press(a, keyEsc)

	press(a, runes("s")...)

	assert.False(t, a.card.Blocks()[0].Edited())
	assert.Equal(t, 0, a.selected)
}

func TestApp_ResetHidesBlocks(t *testing.T) {
	a, _ := splitApp(t)
	press(a, keyTab)

	press(a, runes("r")...)

	assert.False(t, a.card.BlocksVisible())
	assert.Equal(t, card.FocusControls, a.Focus())
	assert.NotContains(t, a.View(), "BLOCKS")
	assert.Contains(t, a.View(), card.ResetToastMessage)
}

func TestApp_TabCycle(t *testing.T) {
	a, _ := newTestApp(t, "")

	press(a, keyTab)
	assert.Equal(t, card.FocusControls, a.Focus())
	press(a, keyTab)
	assert.Equal(t, card.FocusText, a.Focus(), "blocks are skipped while hidden")
}

func TestApp_Quit(t *testing.T) {
	a, _ := newTestApp(t, "")

	cmd := press(a, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Zero(t, a.card.Listeners().KeyCount())
}

func TestApp_View(t *testing.T) {
	a, _ := newTestApp(t, "")

	view := a.View()
	for _, want := range []string{"TEXT", "PREVIEW", "STYLE", "Reset", "Add Quote", "Split"} {
		assert.Contains(t, view, want)
	}
}
