package interact

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/pkg/errors"
)

// Clipboard accepts text to copy.
type Clipboard interface {
	WriteAll(text string) error
}

//nolint:gochecknoglobals // Swapped in tests
var clipboardWriteAll = clipboard.WriteAll

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) (err error) {
	if clipboard.Unsupported {
		err = errors.New("system clipboard unsupported")
		return err
	}

	err = clipboardWriteAll(text)
	if err != nil {
		err = errors.Wrap(err, "failed to write system clipboard")
		return err
	}

	return err
}

// TerminalClipboard copies by emitting an OSC 52 escape sequence, which
// most terminal emulators forward to the local clipboard, including over SSH.
type TerminalClipboard struct {
	Out io.Writer
	// Tmux wraps the sequence for tmux passthrough.
	Tmux bool
}

// NewTerminalClipboard writes to stderr, wrapping for tmux when $TMUX is set.
func NewTerminalClipboard() (tc *TerminalClipboard) {
	tc = &TerminalClipboard{
		Out:  os.Stderr,
		Tmux: os.Getenv("TMUX") != "",
	}
	return tc
}

// WriteAll emits the escape sequence for text.
func (tc *TerminalClipboard) WriteAll(text string) (err error) {
	if tc.Out == nil {
		err = errors.New("no terminal to write to")
		return err
	}

	seq := osc52.New(text)
	if tc.Tmux {
		seq = seq.Tmux()
	}

	_, err = seq.WriteTo(tc.Out)
	if err != nil {
		err = errors.Wrap(err, "failed to write osc52 sequence")
		return err
	}

	return err
}
