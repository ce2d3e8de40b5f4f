// Package clipboard writes copied text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/jsamuelsen/quoteboard/internal/page"
)

// ErrUnsupported is returned when no clipboard utility is available
// (for example a Linux host without xclip, xsel or wl-copy).
var ErrUnsupported = errors.New("clipboard not supported")

// System is the host clipboard. It satisfies page.Clipboard.
type System struct{}

// WriteText replaces the clipboard contents with text.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w on %s", ErrUnsupported, runtime.GOOS)
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}

	return nil
}

// ReadText returns the current clipboard contents.
func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("%w on %s", ErrUnsupported, runtime.GOOS)
	}

	return clipboard.ReadAll()
}

// Buffer is an in-process clipboard for hosts without one, and for tests.
// It is safe for concurrent use.
type Buffer struct {
	mu   sync.Mutex
	text string
}

func (b *Buffer) WriteText(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.text = text

	return nil
}

func (b *Buffer) ReadText() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.text, nil
}

// Fallback writes to Primary and, if that fails, to Secondary. OnFallback,
// when set, sees the primary's error.
type Fallback struct {
	Primary    page.Clipboard
	Secondary  page.Clipboard
	OnFallback func(err error)
}

func (f Fallback) WriteText(text string) error {
	err := f.Primary.WriteText(text)
	if err == nil {
		return nil
	}

	if f.OnFallback != nil {
		f.OnFallback(err)
	}

	return f.Secondary.WriteText(text)
}
