package card

import "github.com/atotto/clipboard"

// Clipboard is the write side of the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the platform clipboard
type SystemClipboard struct{}

// WriteAll implements Clipboard
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// ClipboardFunc adapts a plain function to Clipboard
type ClipboardFunc func(text string) error

// WriteAll implements Clipboard
func (f ClipboardFunc) WriteAll(text string) error {
	return f(text)
}
