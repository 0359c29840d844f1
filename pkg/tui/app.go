package tui

import (
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/typecard/typecard-cli/pkg/card"
	"github.com/typecard/typecard-cli/pkg/models"
)

const textPlaceholder = "Please enter your text here..."

// Config wires the app to its host
type Config struct {
	InitialText string
	Settings    *models.Settings
	Quotes      []models.Quote
	Clipboard   card.Clipboard
	Logger      *log.Logger
	// Observer receives the card's text and reset notifications
	Observer card.Observer
}

// App is the Bubble Tea model around one card
type App struct {
	card     *card.Card
	settings *models.Settings
	logger   *log.Logger
	theme    Theme
	keys     keyMap
	help     help.Model

	focus  card.Focus
	width  int
	height int

	text      textarea.Model
	editor    textarea.Model
	entry     textinput.Model
	entering  bool
	blocksVP  viewport.Model
	row       controlRow
	action    action
	selected  int
	textArea  card.Rect
	controls  card.Rect
	blocksTop int
	spans     []blockSpan
	regions   []card.Rect
}

// NewApp creates the app and mounts its card
func NewApp(cfg Config) *App {
	settings := cfg.Settings
	if settings == nil {
		settings = models.DefaultSettings()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	a := &App{
		settings: settings,
		logger:   logger,
		theme:    NewTheme(settings.UI.Theme),
		keys:     newKeyMap(),
		help:     help.New(),
		focus:    card.FocusText,
		blocksVP: viewport.New(80, 5),
	}
	a.help.ShowAll = false

	a.card = card.New(card.Options{
		InitialText:       cfg.InitialText,
		Quotes:            cfg.Quotes,
		Clipboard:         cfg.Clipboard,
		Logger:            logger,
		CopyFeedbackDelay: time.Duration(settings.Notifications.CopyFeedbackMs) * time.Millisecond,
		ToastDelay:        time.Duration(settings.Notifications.ToastMs) * time.Millisecond,
	})
	if cfg.Observer != nil {
		a.card.AddObserver(cfg.Observer)
	}
	// Keep the text widget in step when the card rewrites the text itself.
	a.card.AddObserver(card.ObserverFuncs{OnTextChange: a.syncTextWidget})
	a.card.Mount()

	a.text = textarea.New()
	a.text.Placeholder = textPlaceholder
	a.text.ShowLineNumbers = false
	a.text.CharLimit = 0
	a.text.SetHeight(textLines)
	a.text.SetValue(cfg.InitialText)
	a.text.Focus()

	a.editor = textarea.New()
	a.editor.ShowLineNumbers = false
	a.editor.CharLimit = 0
	a.editor.Prompt = ""

	a.entry = textinput.New()
	a.entry.CharLimit = 8
	a.entry.Prompt = "› "

	a.card.SetFocus(a.focus)
	return a
}

// Card exposes the underlying card
func (a *App) Card() *card.Card {
	return a.card
}

// Focus returns the pane that owns keyboard input
func (a *App) Focus() card.Focus {
	return a.focus
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, a.text.Focus())
}

func (a *App) syncTextWidget(text string) {
	if a.text.Value() != text {
		a.text.SetValue(text)
	}
}

// setFocus moves keyboard input to f and reports it to the card
func (a *App) setFocus(f card.Focus) tea.Cmd {
	if f == card.FocusBlocks && !a.card.BlocksVisible() {
		f = card.FocusText
	}
	if a.focus == card.FocusBlockEditor && f != card.FocusBlockEditor {
		a.card.EndEdit()
		a.editor.Blur()
	}
	a.focus = f
	a.card.SetFocus(f)

	var cmd tea.Cmd
	if f == card.FocusText {
		cmd = a.text.Focus()
	} else {
		a.text.Blur()
	}
	return cmd
}

func (a *App) cycleFocus(forward bool) tea.Cmd {
	order := []card.Focus{card.FocusText, card.FocusControls}
	if a.card.BlocksVisible() {
		order = append(order, card.FocusBlocks)
	}
	current := a.focus
	if current == card.FocusBlockEditor {
		current = card.FocusBlocks
	}

	idx := 0
	for i, f := range order {
		if f == current {
			idx = i
		}
	}
	if forward {
		idx = (idx + 1) % len(order)
	} else {
		idx = (idx - 1 + len(order)) % len(order)
	}
	return a.setFocus(order[idx])
}

// startEdit puts block i in edit mode with the editor focused
func (a *App) startEdit(i int) tea.Cmd {
	blocks := a.card.Blocks()
	if i < 0 || i >= len(blocks) {
		return nil
	}
	a.setFocus(card.FocusBlocks)
	a.selected = i
	a.card.StartEdit(i)
	a.editor.SetValue(blocks[i].Content)
	a.focus = card.FocusBlockEditor
	a.card.SetFocus(a.focus)
	return a.editor.Focus()
}

// syncEditState follows edit sessions the card ended on its own
func (a *App) syncEditState() {
	if a.focus == card.FocusBlockEditor && a.card.EditingIndex() == card.NoBlock {
		a.editor.Blur()
		a.focus = card.FocusBlocks
		a.card.SetFocus(a.focus)
	}
	if a.focus == card.FocusBlocks && !a.card.BlocksVisible() {
		a.focus = card.FocusControls
		a.card.SetFocus(a.focus)
	}
	if n := len(a.card.Blocks()); a.selected >= n {
		a.selected = max(n-1, 0)
	}
}

func (a *App) split() tea.Cmd {
	a.card.Split()
	a.selected = 0
	a.blocksVP.GotoTop()
	return nil
}

func (a *App) reset() tea.Cmd {
	cmd := a.card.Reset()
	a.row = rowFamily
	a.action = actionReset
	return cmd
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)

	case card.CopyResultMsg, card.TimerExpiredMsg:
		cmd = a.card.Update(msg)

	case tea.MouseMsg:
		cmd = a.handleMouse(msg)

	case tea.KeyMsg:
		cmd = a.handleKey(msg)

	default:
		// Cursor blink and other widget messages
		switch a.focus {
		case card.FocusText:
			a.text, cmd = a.text.Update(msg)
		case card.FocusBlockEditor:
			a.editor, cmd = a.editor.Update(msg)
		}
		if a.entering {
			var entryCmd tea.Cmd
			a.entry, entryCmd = a.entry.Update(msg)
			cmd = tea.Batch(cmd, entryCmd)
		}
	}

	a.syncEditState()
	a.layout()
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.card.Close()
		return tea.Quit
	case key.Matches(msg, a.keys.Theme):
		a.theme = a.theme.Toggle()
		return nil
	}

	if a.entering {
		return a.handleEntryKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.NextPane):
		return a.cycleFocus(true)
	case key.Matches(msg, a.keys.PrevPane):
		return a.cycleFocus(false)
	}

	if cmd, handled := a.card.HandleKey(card.KeyEvent{Key: msg.String()}); handled {
		return cmd
	}

	switch a.focus {
	case card.FocusText:
		return a.handleTextKey(msg)
	case card.FocusControls:
		return a.handleControlsKey(msg)
	case card.FocusBlocks:
		return a.handleBlocksKey(msg)
	case card.FocusBlockEditor:
		return a.handleEditorKey(msg)
	}
	return nil
}

func (a *App) handleTextKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Split):
		return a.split()
	case key.Matches(msg, a.keys.Quote):
		a.card.GenerateQuote()
		return nil
	case key.Matches(msg, a.keys.Cancel):
		return a.setFocus(card.FocusControls)
	}

	var cmd tea.Cmd
	a.text, cmd = a.text.Update(msg)
	if value := a.text.Value(); value != a.card.Text() {
		a.card.SetText(value)
	}
	return cmd
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	// Pointer subscriptions first: this is where an edit session ends.
	cmd := a.card.HandlePointer(card.PointerEvent{X: msg.X, Y: msg.Y})

	if msg.Button != tea.MouseButtonLeft {
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			var vpCmd tea.Cmd
			a.blocksVP, vpCmd = a.blocksVP.Update(msg)
			return tea.Batch(cmd, vpCmd)
		}
		return cmd
	}

	switch {
	case a.textArea.Contains(msg.X, msg.Y):
		return tea.Batch(cmd, a.setFocus(card.FocusText))
	case a.controls.Contains(msg.X, msg.Y):
		return tea.Batch(cmd, a.setFocus(card.FocusControls))
	}

	if i, ok := a.blockAt(msg.X, msg.Y); ok {
		if a.card.EditingIndex() == i {
			return cmd
		}
		return tea.Batch(cmd, a.startEdit(i))
	}
	return cmd
}

// SetSize lays out the widgets for a terminal of width x height
func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height

	inner := max(width-4, 10)
	a.text.SetWidth(inner)
	a.editor.SetWidth(max(inner-2, 10))
	a.help.Width = width
	a.blocksVP.Width = max(width-4, 10)
	a.layout()
}
