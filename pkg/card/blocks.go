package card

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// NoBlock is the editing index when no block is in edit mode
const NoBlock = -1

// Block is one segment of the text produced by Split
type Block struct {
	Content  string
	Original string
	Copied   bool
}

// Edited reports whether the block differs from the segment it was cut as
func (b Block) Edited() bool {
	return b.Content != b.Original
}

// Changes counts the characters inserted into and deleted from the
// original segment.
func (b Block) Changes() (inserted, deleted int) {
	if !b.Edited() {
		return 0, 0
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(b.Original, b.Content, false)
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			inserted += utf8.RuneCountInString(d.Text)
		case diffmatchpatch.DiffDelete:
			deleted += utf8.RuneCountInString(d.Text)
		}
	}
	return inserted, deleted
}

// CopyResultMsg reports the outcome of a clipboard write for a block.
// Generation identifies the block list the write was issued against.
type CopyResultMsg struct {
	Index      int
	Generation int
	Err        error
}

func (c *Card) validIndex(i int) bool {
	return i >= 0 && i < len(c.blocks)
}

// Blocks returns a copy of the current block list
func (c *Card) Blocks() []Block {
	out := make([]Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// BlocksVisible reports whether the block list is shown
func (c *Card) BlocksVisible() bool {
	return c.blocksVisible
}

// EditingIndex returns the block in edit mode, or NoBlock
func (c *Card) EditingIndex() int {
	return c.editing
}

// StartEdit puts block i in edit mode, ending any other block's session.
// Out-of-range indexes are ignored.
func (c *Card) StartEdit(i int) {
	if !c.validIndex(i) {
		return
	}
	c.editing = i
	c.guard.install(c.editedRegion, c.EndEdit)
}

// EditBlock replaces the content of block i. It only applies to the
// block currently in edit mode. The primary text is never touched.
func (c *Card) EditBlock(i int, content string) {
	if i != c.editing || !c.validIndex(i) {
		return
	}
	if c.blocks[i].Content == content {
		return
	}
	c.blocks[i].Content = content
	c.changed = true
}

// EndEdit leaves edit mode
func (c *Card) EndEdit() {
	c.editing = NoBlock
	c.guard.uninstall()
}

// SetBlockRegion records where block i is drawn so pointer presses can be
// tested against it.
func (c *Card) SetBlockRegion(i int, r Rect) {
	if r.Empty() {
		delete(c.regions, i)
		return
	}
	c.regions[i] = r
}

// ClearBlockRegions forgets all recorded block regions
func (c *Card) ClearBlockRegions() {
	c.regions = make(map[int]Rect)
}

func (c *Card) editedRegion() (Rect, bool) {
	if c.editing == NoBlock {
		return Rect{}, false
	}
	r, ok := c.regions[c.editing]
	return r, ok
}

// Copy writes block i to the clipboard. The returned command performs the
// write; its CopyResultMsg must be passed back to Update.
func (c *Card) Copy(i int) tea.Cmd {
	if !c.validIndex(i) {
		return nil
	}
	content := c.blocks[i].Content
	gen := c.generation
	clip := c.clipboard

	return func() tea.Msg {
		return CopyResultMsg{Index: i, Generation: gen, Err: clip.WriteAll(content)}
	}
}

func (c *Card) handleCopyResult(msg CopyResultMsg) tea.Cmd {
	if msg.Generation != c.generation || !c.validIndex(msg.Index) {
		c.logger.Printf("dropping copy result for stale block %d", msg.Index)
		return nil
	}
	if msg.Err != nil {
		c.logger.Printf("copy block %d: %v", msg.Index, msg.Err)
		return nil
	}

	c.blocks[msg.Index].Copied = true
	c.changed = true
	return c.timer.Arm(copySlot(msg.Index), c.copyDelay)
}

func (c *Card) clearBlocks() {
	c.EndEdit()
	c.timer.CancelPrefix(copySlotPrefix)
	c.blocks = nil
	c.blocksVisible = false
	c.generation++
	c.ClearBlockRegions()
}
