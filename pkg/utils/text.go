package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CountChars returns the number of characters (runes) in text
func CountChars(text string) int {
	return utf8.RuneCountInString(text)
}

// CountWords returns the number of whitespace separated words in text
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// FormatCount formats a count with its unit for display, abbreviating
// thousands: "12 chars", "1.5K chars", "24K chars".
func FormatCount(n int, unit string) string {
	if n < 1000 {
		return fmt.Sprintf("%d %s", n, unit)
	} else if n < 10000 {
		return fmt.Sprintf("%.1fK %s", float64(n)/1000, unit)
	}
	return fmt.Sprintf("%.0fK %s", float64(n)/1000, unit)
}

// Summary is the char and word count line shown for a text
func Summary(text string) string {
	return FormatCount(CountChars(text), "chars") + " · " + FormatCount(CountWords(text), "words")
}
