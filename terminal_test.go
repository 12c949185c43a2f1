package beautty

import (
	"errors"
	"io"
	"os"
	"testing"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Key
		n    int
	}{
		{"empty", "", Key{}, 0},
		{"letter", "q", Key{Code: KeyRune, Rune: 'q'}, 1},
		{"space", " ", Key{Code: KeyRune, Rune: ' '}, 1},
		{"multibyte", "é!", Key{Code: KeyRune, Rune: 'é'}, 2},
		{"partial rune", "\xc3", Key{}, 0},
		{"enter", "\r", Key{Code: KeyEnter}, 1},
		{"newline", "\n", Key{Code: KeyEnter}, 1},
		{"tab", "\t", Key{Code: KeyTab}, 1},
		{"backspace", "\x7f", Key{Code: KeyBackspace}, 1},
		{"ctrl c", "\x03", Key{Code: KeyCtrl, Rune: 'c'}, 1},
		{"ctrl r", "\x12", Key{Code: KeyCtrl, Rune: 'r'}, 1},
		{"ctrl z", "\x1a", Key{Code: KeyCtrl, Rune: 'z'}, 1},
		{"ctrl space", "\x00", Key{Code: KeyCtrl, Rune: ' '}, 1},
		{"ctrl backslash", "\x1c", Key{Code: KeyUnknown}, 1},
		{"ctrl underscore", "\x1f", Key{Code: KeyUnknown}, 1},
		{"escape", "\x1b", Key{Code: KeyEscape}, 1},
		{"alt chord", "\x1bx", Key{Code: KeyEscape}, 1},
		{"up", "\x1b[A", Key{Code: KeyUp}, 3},
		{"down ss3", "\x1bOB", Key{Code: KeyDown}, 3},
		{"home", "\x1b[H", Key{Code: KeyHome}, 3},
		{"delete", "\x1b[3~", Key{Code: KeyDelete}, 4},
		{"ctrl right", "\x1b[1;5C", Key{Code: KeyRight}, 6},
		{"page up", "\x1b[5~", Key{Code: KeyUnknown}, 4},
		{"unterminated csi", "\x1b[12", Key{Code: KeyEscape}, 1},
		{"two keys", "\x1b[Dx", Key{Code: KeyLeft}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := decodeKey([]byte(tt.in))
			if got != tt.want || n != tt.n {
				t.Errorf("decodeKey(%q) = %+v, %d; want %+v, %d", tt.in, got, n, tt.want, tt.n)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Key{Code: KeyRune, Rune: 'x'}, "x"},
		{Key{Code: KeyRune, Rune: ' '}, " "},
		{Key{Code: KeyCtrl, Rune: 'r'}, "ctrl+r"},
		{Key{Code: KeyCtrl, Rune: ' '}, "ctrl+space"},
		{Key{Code: KeyEnter}, "enter"},
		{Key{Code: KeyLeft}, "left"},
		{Key{Code: KeyEscape}, "esc"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyIsQuit(t *testing.T) {
	quit := []Key{
		{Code: KeyRune, Rune: 'q'},
		{Code: KeyRune, Rune: 'Q'},
		{Code: KeyCtrl, Rune: 'c'},
	}
	for _, k := range quit {
		if !k.IsQuit() {
			t.Errorf("%v should quit", k)
		}
	}
	other := []Key{
		{Code: KeyRune, Rune: 'c'},
		{Code: KeyCtrl, Rune: 'q'},
		{Code: KeyEscape},
	}
	for _, k := range other {
		if k.IsQuit() {
			t.Errorf("%v should not quit", k)
		}
	}
}

func TestTTYReadKey(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	tty := &TTY{in: r, out: w}
	if _, err := w.Write([]byte("a\x1b[Aé")); err != nil {
		t.Fatal(err)
	}
	w.Close()

	want := []Key{
		{Code: KeyRune, Rune: 'a'},
		{Code: KeyUp},
		{Code: KeyRune, Rune: 'é'},
	}
	for _, k := range want {
		got, err := tty.ReadKey()
		if err != nil {
			t.Fatalf("ReadKey: %v", err)
		}
		if got != k {
			t.Errorf("ReadKey = %+v, want %+v", got, k)
		}
	}
	if _, err := tty.ReadKey(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadKey at end = %v, want EOF", err)
	}
}

func TestTTYRawModeNeedsTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	tty := &TTY{in: r, out: w}
	if err := tty.EnableRawMode(); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("EnableRawMode on a pipe = %v, want ErrNotTerminal", err)
	}
	if err := tty.DisableRawMode(); err != nil {
		t.Errorf("DisableRawMode without raw mode = %v", err)
	}
	if cols, rows, err := tty.Size(); err == nil || cols != 80 || rows != 24 {
		t.Errorf("Size on a pipe = %dx%d, %v; want 80x24 fallback with error", cols, rows, err)
	}

	tty.SetFallbackSize(100, 30)
	if cols, rows, err := tty.Size(); err == nil || cols != 100 || rows != 30 {
		t.Errorf("Size with fallback = %dx%d, %v; want 100x30 with error", cols, rows, err)
	}
	tty.SetFallbackSize(0, 40)
	if cols, rows, _ := tty.Size(); cols != 80 || rows != 40 {
		t.Errorf("Size with partial fallback = %dx%d, want 80x40", cols, rows)
	}
}
