package beautty

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFlushWritesOnlyChanges(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, 10, 3)

	s.DrawText(0, 0, "hi", DefaultAttrs())
	n, err := s.Flush()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("first flush wrote %d cells, want 2", n)
	}
	if got := out.String(); got != "\x1b[1;1Hhi" {
		t.Errorf("output = %q", got)
	}

	out.Reset()
	s.Clear()
	s.DrawText(0, 0, "hi", DefaultAttrs())
	n, err = s.Flush()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 || out.Len() != 0 {
		t.Errorf("unchanged frame wrote %d cells, %q", n, out.String())
	}

	out.Reset()
	s.Clear()
	s.DrawText(0, 0, "ho", DefaultAttrs())
	if n, _ := s.Flush(); n != 1 {
		t.Errorf("one changed cell, flush wrote %d", n)
	}
	if got := out.String(); got != "\x1b[1;2Ho" {
		t.Errorf("output = %q", got)
	}
}

func TestFlushCursorElision(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, 10, 2)
	s.DrawText(0, 0, "ab", DefaultAttrs())
	s.DrawText(5, 0, "c", DefaultAttrs())
	s.DrawText(0, 1, "d", DefaultAttrs())
	s.Flush()

	if got := out.String(); got != "\x1b[1;1Hab\x1b[1;6Hc\x1b[2;1Hd" {
		t.Errorf("output = %q", got)
	}

	t.Run("wide rune", func(t *testing.T) {
		var out bytes.Buffer
		s := NewScreen(&out, 10, 1)
		s.DrawText(0, 0, "日", DefaultAttrs())
		s.Buffer().Set(2, 0, NewCell('x', DefaultAttrs()))
		s.Flush()
		if got := out.String(); got != "\x1b[1;1H日x" {
			t.Errorf("output = %q", got)
		}
	})
}

func TestFlushAttributes(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, 10, 1)
	red := Attrs{FG: Red, Attr: AttrBold}
	s.DrawText(0, 0, "ab", red)
	s.DrawText(2, 0, "c", DefaultAttrs())
	s.DrawText(3, 0, "d", red)
	s.Flush()

	want := "\x1b[1;1H\x1b[0;1;31mab\x1b[0mc\x1b[0;1;31md\x1b[0m"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestAppendSGR(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attrs
		want  string
	}{
		{"plain", DefaultAttrs(), "\x1b[0m"},
		{"base fg", Attrs{FG: Green}, "\x1b[0;32m"},
		{"base bg", Attrs{BG: Blue}, "\x1b[0;44m"},
		{"bright fg", Attrs{FG: BrightRed}, "\x1b[0;91m"},
		{"bright bg", Attrs{BG: BrightBlue}, "\x1b[0;104m"},
		{"palette", Attrs{FG: PaletteColor(208)}, "\x1b[0;38;5;208m"},
		{"rgb bg", Attrs{BG: RGB(1, 2, 3)}, "\x1b[0;48;2;1;2;3m"},
		{"emphasis", Attrs{Attr: AttrBold | AttrUnderline | AttrStrikethrough}, "\x1b[0;1;4;9m"},
		{"all", Attrs{FG: Hex(0xFF8000), BG: Black, Attr: AttrItalic | AttrReverse}, "\x1b[0;3;7;38;2;255;128;0;40m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(appendSGR(nil, tt.attrs)); got != tt.want {
				t.Errorf("appendSGR = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvalidateRepaints(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, 4, 2)
	s.DrawText(0, 0, "x", DefaultAttrs())
	s.Flush()

	out.Reset()
	s.Invalidate()
	s.Clear()
	s.DrawText(0, 0, "x", DefaultAttrs())
	n, err := s.Flush()
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Errorf("repaint wrote %d cells, want 8", n)
	}
	if !strings.HasPrefix(out.String(), "\x1b[0m\x1b[2J") {
		t.Errorf("repaint does not clear first: %q", out.String())
	}

	out.Reset()
	s.Clear()
	s.DrawText(0, 0, "x", DefaultAttrs())
	if n, _ := s.Flush(); n != 0 || out.Len() != 0 {
		t.Errorf("clear repeated on the next flush: %d cells, %q", n, out.String())
	}
}

func TestScreenResize(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, 4, 2)
	s.Resize(6, 3)
	if w, h := s.Size(); w != 6 || h != 3 {
		t.Fatalf("Size = %dx%d", w, h)
	}
	if s.Buffer().Width() != 6 || s.Front().Height() != 3 {
		t.Error("buffers not resized")
	}

	s.Invalidate()
	if n, _ := s.Flush(); n != 18 {
		t.Errorf("flush after resize wrote %d cells, want 18", n)
	}
}

// failWriter fails every write while fail is set and records the rest.
type failWriter struct {
	fail bool
	out  bytes.Buffer
}

var errWrite = errors.New("write failed")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.fail {
		return 0, errWrite
	}
	return w.out.Write(p)
}

func TestFlushWriteError(t *testing.T) {
	w := &failWriter{fail: true}
	s := NewScreen(w, 3, 1)
	s.DrawText(0, 0, "ab", DefaultAttrs())
	if _, err := s.Flush(); !errors.Is(err, errWrite) {
		t.Errorf("Flush = %v, want wrapped write error", err)
	}

	w.fail = false
	s.Clear()
	s.DrawText(0, 0, "ab", DefaultAttrs())
	n, err := s.Flush()
	if err != nil {
		t.Fatalf("Flush after recovery = %v", err)
	}
	if n != 3 {
		t.Errorf("repaint wrote %d cells, want 3", n)
	}
	got := w.out.String()
	if !strings.HasPrefix(got, "\x1b[0m\x1b[2J") {
		t.Errorf("repaint should clear the terminal first, got %q", got)
	}
	if !strings.Contains(got, "ab") {
		t.Errorf("repaint missing the frame: %q", got)
	}
}

func TestFlushStripsControlCharacters(t *testing.T) {
	var out bytes.Buffer
	s := NewScreen(&out, 10, 1)
	s.DrawText(0, 0, "a\nb\x1b[2Jc\t", DefaultAttrs())
	if _, err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	// Blank cells match the cleared front buffer, so the cursor jumps over them.
	if want := "\x1b[1;1Ha\x1b[1;3Hb\x1b[1;5H[2Jc"; got != want {
		t.Errorf("Flush wrote %q, want %q", got, want)
	}

	t.Run("cells set directly", func(t *testing.T) {
		var out bytes.Buffer
		s := NewScreen(&out, 2, 1)
		s.Buffer().Set(0, 0, Cell{Rune: '\x07', Attrs: DefaultAttrs()})
		s.Buffer().Set(1, 0, Cell{Rune: 'x', Attrs: DefaultAttrs()})
		if _, err := s.Flush(); err != nil {
			t.Fatal(err)
		}
		if strings.ContainsRune(out.String(), '\x07') {
			t.Errorf("control character reached the terminal: %q", out.String())
		}
	})
}

func TestBufferANSI(t *testing.T) {
	buf := NewBuffer(3, 2)
	buf.DrawText(0, 0, "a", Attrs{FG: Red})
	buf.DrawText(1, 0, "b", DefaultAttrs())
	want := "\x1b[0;31ma\x1b[0mb \n   \n"
	if got := buf.ANSI(); got != want {
		t.Errorf("ANSI = %q, want %q", got, want)
	}
}
