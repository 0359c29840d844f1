// Package card is the interaction and state engine behind the text
// styling card: text and style state, change tracking, block
// segmentation with per-block edit and copy state, timed feedback, and
// the keyboard and pointer rules that drive them.
//
// A Card is owned by a single Bubble Tea model and is not safe for
// concurrent use. Operations that need time or I/O return a tea.Cmd whose
// message must be handed back to Update.
package card

import (
	"io"
	"log"
	"math/rand"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/typecard/typecard-cli/pkg/models"
)

// Default feedback delays
const (
	CopyFeedbackDelay = 2000 * time.Millisecond
	ToastDelay        = 3000 * time.Millisecond
)

// ResetToastMessage is shown after a reset
const ResetToastMessage = "Changes reset"

// Observer is told about changes to the primary text
type Observer interface {
	TextChanged(text string)
	Reset()
}

// ObserverFuncs adapts optional callbacks to Observer
type ObserverFuncs struct {
	OnTextChange func(text string)
	OnReset      func()
}

// TextChanged implements Observer
func (o ObserverFuncs) TextChanged(text string) {
	if o.OnTextChange != nil {
		o.OnTextChange(text)
	}
}

// Reset implements Observer
func (o ObserverFuncs) Reset() {
	if o.OnReset != nil {
		o.OnReset()
	}
}

// Options configures a new Card. Zero values select defaults.
type Options struct {
	InitialText       string
	Quotes            []models.Quote
	Rand              *rand.Rand
	Clipboard         Clipboard
	Logger            *log.Logger
	CopyFeedbackDelay time.Duration
	ToastDelay        time.Duration
	Observer          Observer
}

// Toast is the transient notification shown after a reset
type Toast struct {
	Visible bool
	Message string
}

// State is a read-only snapshot of the card
type State struct {
	Text          string
	Style         models.StyleParameters
	Changed       bool
	Blocks        []Block
	BlocksVisible bool
	EditingIndex  int
	Toast         Toast
}

// Card owns the editor state and every transition on it
type Card struct {
	text    string
	style   models.StyleParameters
	changed bool

	blocks        []Block
	blocksVisible bool
	editing       int
	generation    int
	regions       map[int]Rect

	toast Toast
	timer *Timer

	focus      Focus
	listeners  *Listeners
	guard      *outsideGuard
	unmountKey func()

	quotes    []models.Quote
	rng       *rand.Rand
	clipboard Clipboard
	logger    *log.Logger

	copyDelay  time.Duration
	toastDelay time.Duration

	observers map[int]Observer
	nextObs   int
}

// New creates a card holding opts.InitialText, unchanged
func New(opts Options) *Card {
	c := &Card{
		text:       opts.InitialText,
		style:      models.DefaultStyle(),
		editing:    NoBlock,
		regions:    make(map[int]Rect),
		timer:      NewTimer(),
		focus:      FocusText,
		listeners:  NewListeners(),
		quotes:     opts.Quotes,
		rng:        opts.Rand,
		clipboard:  opts.Clipboard,
		logger:     opts.Logger,
		copyDelay:  opts.CopyFeedbackDelay,
		toastDelay: opts.ToastDelay,
		observers:  make(map[int]Observer),
	}
	c.guard = &outsideGuard{listeners: c.listeners}

	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.clipboard == nil {
		c.clipboard = SystemClipboard{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard, "", 0)
	}
	if c.copyDelay <= 0 {
		c.copyDelay = CopyFeedbackDelay
	}
	if c.toastDelay <= 0 {
		c.toastDelay = ToastDelay
	}
	if opts.Observer != nil {
		c.AddObserver(opts.Observer)
	}
	return c
}

// Mount subscribes the reset shortcut. Calling it twice is harmless.
func (c *Card) Mount() {
	if c.unmountKey != nil {
		return
	}
	router := &ShortcutRouter{
		Key:   ResetShortcut,
		Focus: c.Focus,
		Reset: c.Reset,
	}
	c.unmountKey = c.listeners.OnKey(router.Handle)
}

// Close drops every subscription and pending timer
func (c *Card) Close() {
	if c.unmountKey != nil {
		c.unmountKey()
		c.unmountKey = nil
	}
	c.guard.uninstall()
	c.timer.CancelAll()
}

// Listeners exposes the subscription registry
func (c *Card) Listeners() *Listeners {
	return c.listeners
}

// AddObserver registers o for text and reset notifications
func (c *Card) AddObserver(o Observer) (remove func()) {
	c.nextObs++
	id := c.nextObs
	c.observers[id] = o
	return func() { delete(c.observers, id) }
}

func (c *Card) notifyText() {
	for _, id := range sortedIDs(c.observers) {
		c.observers[id].TextChanged(c.text)
	}
}

func (c *Card) notifyReset() {
	for _, id := range sortedIDs(c.observers) {
		c.observers[id].Reset()
	}
}

// State returns a snapshot of the card
func (c *Card) State() State {
	return State{
		Text:          c.text,
		Style:         c.style,
		Changed:       c.changed,
		Blocks:        c.Blocks(),
		BlocksVisible: c.blocksVisible,
		EditingIndex:  c.editing,
		Toast:         c.toast,
	}
}

// Text returns the primary text
func (c *Card) Text() string { return c.text }

// CharCount returns the number of characters in the primary text
func (c *Card) CharCount() int { return utf8.RuneCountInString(c.text) }

// Style returns the current style parameters
func (c *Card) Style() models.StyleParameters { return c.style }

// Changed reports whether anything changed since creation or the last reset
func (c *Card) Changed() bool { return c.changed }

// Toast returns the reset toast state
func (c *Card) Toast() Toast { return c.toast }

// Focus returns the focus last reported by the presentation
func (c *Card) Focus() Focus { return c.focus }

// SetFocus records which part of the UI owns keyboard input
func (c *Card) SetFocus(f Focus) { c.focus = f }

// LoadText replaces the text as supplied by the host. It is not a user
// change and is not echoed back.
func (c *Card) LoadText(s string) {
	c.text = s
}

// SetText replaces the primary text
func (c *Card) SetText(s string) {
	c.text = s
	c.changed = true
	c.notifyText()
}

// SetFontFamily selects the font family. Unknown values fall back to Inter.
func (c *Card) SetFontFamily(f models.FontFamily) {
	if !f.Valid() {
		f = models.ParseFontFamily(string(f))
	}
	c.style.FontFamily = f
	c.changed = true
}

// SetFontSize sets the font size from a discrete control
func (c *Card) SetFontSize(n float64) {
	c.style.FontSizePx = models.FontSizeBound.Snap(n)
	c.changed = true
}

// SetFontWeight sets the font weight from a discrete control
func (c *Card) SetFontWeight(n float64) {
	c.style.FontWeight = models.FontWeightBound.Snap(n)
	c.changed = true
}

// SetLetterSpacing sets the letter spacing from a discrete control
func (c *Card) SetLetterSpacing(n float64) {
	c.style.LetterSpacingPx = models.LetterSpacingBound.Snap(n)
	c.changed = true
}

// SetLineHeight sets the line height from a discrete control
func (c *Card) SetLineHeight(n float64) {
	c.style.LineHeight = models.LineHeightBound.Snap(n)
	c.changed = true
}

// StepFontSize moves the font size by delta steps
func (c *Card) StepFontSize(delta int) {
	c.SetFontSize(models.FontSizeBound.Nudge(c.style.FontSizePx, delta))
}

// StepFontWeight moves the font weight by delta steps
func (c *Card) StepFontWeight(delta int) {
	c.SetFontWeight(models.FontWeightBound.Nudge(c.style.FontWeight, delta))
}

// StepLetterSpacing moves the letter spacing by delta steps
func (c *Card) StepLetterSpacing(delta int) {
	c.SetLetterSpacing(models.LetterSpacingBound.Nudge(c.style.LetterSpacingPx, delta))
}

// StepLineHeight moves the line height by delta steps
func (c *Card) StepLineHeight(delta int) {
	c.SetLineHeight(models.LineHeightBound.Nudge(c.style.LineHeight, delta))
}

// EnterFontSize sets the font size from free-form input
func (c *Card) EnterFontSize(raw string) {
	c.style.FontSizePx = models.FontSizeBound.Parse(raw)
	c.changed = true
}

// EnterFontWeight sets the font weight from free-form input
func (c *Card) EnterFontWeight(raw string) {
	c.style.FontWeight = models.FontWeightBound.Parse(raw)
	c.changed = true
}

// EnterLetterSpacing sets the letter spacing from free-form input
func (c *Card) EnterLetterSpacing(raw string) {
	c.style.LetterSpacingPx = models.LetterSpacingBound.Parse(raw)
	c.changed = true
}

// EnterLineHeight sets the line height from free-form input
func (c *Card) EnterLineHeight(raw string) {
	c.style.LineHeight = models.LineHeightBound.Parse(raw)
	c.changed = true
}

// GenerateQuote replaces the text with a random quote from the corpus
func (c *Card) GenerateQuote() {
	if len(c.quotes) == 0 {
		return
	}
	q := c.quotes[c.rng.Intn(len(c.quotes))]
	c.SetText(q.Format())
}

// Split cuts the current text into blocks, replacing any previous block
// list along with its unsaved edits. Blank text is left alone.
func (c *Card) Split() {
	if !Splittable(c.text) {
		return
	}
	c.clearBlocks()

	segments := Segment(c.text, BlockSize)
	c.blocks = make([]Block, len(segments))
	for i, s := range segments {
		c.blocks[i] = Block{Content: s, Original: s}
	}
	c.blocksVisible = true
	c.changed = true
}

// Reset restores the defaults and shows the reset toast. Without changes
// it does nothing and returns nil.
func (c *Card) Reset() tea.Cmd {
	if !c.changed {
		return nil
	}

	c.style = models.DefaultStyle()
	c.text = ""
	c.clearBlocks()
	c.changed = false

	c.notifyText()
	c.notifyReset()

	c.toast = Toast{Visible: true, Message: ResetToastMessage}
	return c.timer.Arm(ToastSlot, c.toastDelay)
}

// HandleKey routes a key press through the key subscriptions. It reports
// whether a subscription consumed the key.
func (c *Card) HandleKey(ev KeyEvent) (tea.Cmd, bool) {
	return c.listeners.DispatchKey(ev)
}

// HandlePointer routes a pointer press through the pointer subscriptions
func (c *Card) HandlePointer(ev PointerEvent) tea.Cmd {
	return c.listeners.DispatchPointer(ev)
}

// Update applies asynchronous results (clipboard writes, timer ticks).
// Messages the card does not own are ignored.
func (c *Card) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case CopyResultMsg:
		return c.handleCopyResult(msg)

	case TimerExpiredMsg:
		if !c.timer.Expire(msg) {
			return nil
		}
		if msg.Slot == ToastSlot {
			c.toast = Toast{}
			return nil
		}
		for i := range c.blocks {
			if copySlot(i) == msg.Slot {
				c.blocks[i].Copied = false
				break
			}
		}
	}
	return nil
}
