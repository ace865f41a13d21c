package easel

import "github.com/atotto/clipboard"

// Clipboard abstracts the system clipboard for widgets that cut, copy and
// paste. Errors are surfaced so callers can decide whether to ignore them;
// interactive widgets typically treat a failed clipboard as empty.
type Clipboard interface {
	Text() (string, error)
	SetText(text string) error
}

// SystemClipboard talks to the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Text() (string, error) {
	return clipboard.ReadAll()
}

func (SystemClipboard) SetText(text string) error {
	return clipboard.WriteAll(text)
}

// MemoryClipboard is an in-process clipboard, used in tests and headless
// environments where no system clipboard exists.
type MemoryClipboard struct {
	text string
}

func (c *MemoryClipboard) Text() (string, error) {
	return c.text, nil
}

func (c *MemoryClipboard) SetText(text string) error {
	c.text = text
	return nil
}
