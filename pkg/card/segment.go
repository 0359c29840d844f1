package card

import (
	"strings"
	"unicode/utf8"
)

// BlockSize is the maximum number of characters in a block
const BlockSize = 300

// Segment cuts text into contiguous chunks of size runes; the last chunk
// may be shorter. A non-positive size uses BlockSize. Multi-byte
// characters are never split and the original bytes are kept.
func Segment(text string, size int) []string {
	if size <= 0 {
		size = BlockSize
	}
	if text == "" {
		return nil
	}

	blocks := make([]string, 0, (utf8.RuneCountInString(text)+size-1)/size)
	start, n := 0, 0
	for i := 0; i < len(text); {
		// An invalid byte decodes with width 1 and counts as one character.
		_, width := utf8.DecodeRuneInString(text[i:])
		i += width
		n++
		if n == size {
			blocks = append(blocks, text[start:i])
			start, n = i, 0
		}
	}
	if start < len(text) {
		blocks = append(blocks, text[start:])
	}
	return blocks
}

// Splittable reports whether text holds anything worth splitting
func Splittable(text string) bool {
	return strings.TrimSpace(text) != ""
}
