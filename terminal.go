package beautty

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when raw mode is requested on a file that is
// not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Terminal is the raw terminal the App drives.
type Terminal interface {
	io.Writer

	// Size returns the terminal dimensions in cells.
	Size() (cols, rows int, err error)
	// MoveCursor positions the cursor; row and col are 1-based.
	MoveCursor(row, col int) error
	EnableRawMode() error
	DisableRawMode() error
	// ReadKey blocks until one key is available.
	ReadKey() (Key, error)
	// NotifyResize delivers a value on ch (without blocking) every time the
	// terminal is resized, until StopResize is called.
	NotifyResize(ch chan<- struct{})
	StopResize()
}

// Control sequences written around a session.
const (
	seqEnterAltScreen = "\x1b[?1049h"
	seqLeaveAltScreen = "\x1b[?1049l"
	seqClearScreen    = "\x1b[2J"
	seqCursorHome     = "\x1b[H"
	seqHideCursor     = "\x1b[?25l"
	seqShowCursor     = "\x1b[?25h"
	seqResetAttrs     = "\x1b[0m"
)

// KeyCode identifies a decoded key.
type KeyCode uint8

const (
	KeyRune KeyCode = iota // printable rune in Key.Rune
	KeyCtrl                // control chord, letter in Key.Rune
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyDelete
	KeyUnknown
)

// Key is one keypress.
type Key struct {
	Code KeyCode
	Rune rune
}

var keyNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyEscape:    "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyRight:     "right",
	KeyLeft:      "left",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyDelete:    "delete",
	KeyUnknown:   "unknown",
}

// String returns the binding name used by App.OnKey: the rune itself
// ("q"), "ctrl+<letter>", or a name such as "enter" or "up".
func (k Key) String() string {
	switch k.Code {
	case KeyRune:
		return string(k.Rune)
	case KeyCtrl:
		if k.Rune == ' ' {
			return "ctrl+space"
		}
		return "ctrl+" + string(k.Rune)
	}
	return keyNames[k.Code]
}

// IsQuit reports whether k is one of the keys that end an App: q, Q or
// Ctrl+C.
func (k Key) IsQuit() bool {
	return (k.Code == KeyRune && (k.Rune == 'q' || k.Rune == 'Q')) ||
		(k.Code == KeyCtrl && k.Rune == 'c')
}

var csiKeys = map[byte]KeyCode{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// decodeKey decodes the first key in b and returns it with the number of
// bytes consumed. It returns 0 when b holds only part of a UTF-8 rune.
func decodeKey(b []byte) (Key, int) {
	if len(b) == 0 {
		return Key{}, 0
	}
	switch c := b[0]; {
	case c == 0x1b:
		return decodeEscape(b)
	case c == '\r' || c == '\n':
		return Key{Code: KeyEnter}, 1
	case c == '\t':
		return Key{Code: KeyTab}, 1
	case c == 0x7f || c == 0x08:
		return Key{Code: KeyBackspace}, 1
	case c == 0:
		return Key{Code: KeyCtrl, Rune: ' '}, 1
	case c < 0x1c:
		return Key{Code: KeyCtrl, Rune: rune('a' + c - 1)}, 1
	case c < 0x20:
		// Ctrl+\ ] ^ _ have no letter.
		return Key{Code: KeyUnknown}, 1
	}
	if !utf8.FullRune(b) {
		return Key{}, 0
	}
	r, n := utf8.DecodeRune(b)
	return Key{Code: KeyRune, Rune: r}, n
}

func decodeEscape(b []byte) (Key, int) {
	if len(b) < 3 || (b[1] != '[' && b[1] != 'O') {
		return Key{Code: KeyEscape}, 1
	}
	if code, ok := csiKeys[b[2]]; ok {
		return Key{Code: code}, 3
	}
	if b[1] == 'O' {
		return Key{Code: KeyUnknown}, 3
	}
	// CSI with parameters: ESC [ <digits/;> <final>
	i := 2
	for i < len(b) && (b[i] >= '0' && b[i] <= '9' || b[i] == ';') {
		i++
	}
	if i == len(b) {
		return Key{Code: KeyEscape}, 1
	}
	if b[i] == '~' && string(b[2:i]) == "3" {
		return Key{Code: KeyDelete}, i + 1
	}
	if code, ok := csiKeys[b[i]]; ok {
		return Key{Code: code}, i + 1
	}
	return Key{Code: KeyUnknown}, i + 1
}

// TTY is the Terminal backed by the process's stdin and stdout.
type TTY struct {
	in    *os.File
	out   *os.File
	state *term.State

	pending []byte
	rbuf    [64]byte

	stopResize func()

	fallbackCols, fallbackRows int
}

// NewTTY returns a terminal over os.Stdin and os.Stdout.
func NewTTY() *TTY {
	return &TTY{in: os.Stdin, out: os.Stdout}
}

// SetFallbackSize sets the size Size reports when the window size cannot be
// queried. Non-positive values keep the 80x24 default.
func (t *TTY) SetFallbackSize(cols, rows int) *TTY {
	t.fallbackCols, t.fallbackRows = cols, rows
	return t
}

func (t *TTY) fallbackSize() (int, int) {
	cols, rows := 80, 24
	if t.fallbackCols > 0 {
		cols = t.fallbackCols
	}
	if t.fallbackRows > 0 {
		rows = t.fallbackRows
	}
	return cols, rows
}

// Size returns the window size. On failure it reports the fallback size
// together with the error.
func (t *TTY) Size() (int, int, error) {
	cols, rows, err := windowSize(int(t.out.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		if err == nil {
			err = fmt.Errorf("invalid window size %dx%d", cols, rows)
		}
		fc, fr := t.fallbackSize()
		return fc, fr, err
	}
	return cols, rows, nil
}

func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

func (t *TTY) MoveCursor(row, col int) error {
	_, err := fmt.Fprintf(t.out, "\x1b[%d;%dH", row, col)
	return err
}

// EnableRawMode puts stdin into raw mode.
func (t *TTY) EnableRawMode() error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	t.state = state
	return nil
}

// DisableRawMode restores the mode saved by EnableRawMode.
func (t *TTY) DisableRawMode() error {
	if t.state == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.state); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	t.state = nil
	return nil
}

// ReadKey blocks until a key can be decoded from stdin.
func (t *TTY) ReadKey() (Key, error) {
	for {
		if k, n := decodeKey(t.pending); n > 0 {
			t.pending = t.pending[n:]
			return k, nil
		}
		n, err := t.in.Read(t.rbuf[:])
		if n > 0 {
			t.pending = append(t.pending, t.rbuf[:n]...)
			continue
		}
		if err != nil {
			return Key{}, err
		}
	}
}

// NotifyResize forwards window-change signals to ch.
func (t *TTY) NotifyResize(ch chan<- struct{}) {
	t.StopResize()
	t.stopResize = notifyResize(ch)
}

// StopResize stops resize delivery.
func (t *TTY) StopResize() {
	if t.stopResize != nil {
		t.stopResize()
		t.stopResize = nil
	}
}
