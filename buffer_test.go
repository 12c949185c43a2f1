package beautty

import "testing"

func TestDrawTextClipping(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		text    string
		max     int
		written int
		line    string
	}{
		{"fits", 0, 0, "hello", 10, 5, "hello"},
		{"right edge", 8, 0, "hello", 10, 2, "        he"},
		{"negative x", -2, 0, "hello", 10, 3, "llo"},
		{"max width", 1, 0, "hello", 3, 3, " hel"},
		{"row below", 0, 3, "hello", 10, 0, ""},
		{"row above", 0, -1, "hello", 10, 0, ""},
		{"zero width", 0, 0, "hello", 0, 0, ""},
		{"multibyte", 0, 0, "héllo", 10, 5, "héllo"},
		{"control characters", 0, 0, "a\tb\x1bc\n", 10, 6, "a b c"},
		{"del and c1", 0, 0, "x\x7fy\u0085z", 10, 5, "x y z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBuffer(10, 2)
			n := buf.DrawTextClipped(tt.x, tt.y, tt.text, DefaultAttrs(), tt.max)
			if n != tt.written {
				t.Errorf("written = %d, want %d", n, tt.written)
			}
			if got := buf.Line(0); got != tt.line {
				t.Errorf("line = %q, want %q", got, tt.line)
			}
		})
	}
}

func TestDrawRectVariants(t *testing.T) {
	tests := []struct {
		name string
		opts RectOptions
		want string
	}{
		{"single", RectOptions{}, "┌───┐\n│   │\n└───┘"},
		{"double", RectOptions{Variant: VariantDouble}, "╔═══╗\n║   ║\n╚═══╝"},
		{"rounded", RectOptions{Variant: VariantRounded}, "╭───╮\n│   │\n╰───╯"},
		{"radius", RectOptions{Radius: true}, "╭───╮\n│   │\n╰───╯"},
		{"thick", RectOptions{Variant: VariantThick}, "▛▀▀▀▜\n▌   ▐\n▙▄▄▄▟"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBuffer(5, 3)
			buf.DrawRect(0, 0, 5, 3, tt.opts)
			if got := buf.String(); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestDrawRectEdgeCases(t *testing.T) {
	buf := NewBuffer(4, 4)
	buf.DrawRect(1, 1, 1, 1, RectOptions{})
	if got := buf.StringTrimmed(); got != "" {
		t.Errorf("1x1 outline drew %q", got)
	}

	buf.DrawRect(2, 2, 5, 5, RectOptions{})
	if got := buf.Get(2, 2).Rune; got != '┌' {
		t.Errorf("clipped outline corner = %q", got)
	}

	attrs := Attrs{BG: Blue}
	buf.DrawRect(-1, -1, 3, 3, RectOptions{Fill: true, Attrs: attrs})
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if got := buf.Get(p[0], p[1]); got != NewCell(' ', attrs) {
			t.Errorf("cell %v = %+v, want filled", p, got)
		}
	}
	if got := buf.Get(2, 0); got != EmptyCell() {
		t.Errorf("fill leaked to %+v", got)
	}
}

func TestBufferResize(t *testing.T) {
	buf := NewBuffer(4, 2)
	buf.DrawText(0, 0, "abcd", DefaultAttrs())
	buf.DrawText(0, 1, "efgh", DefaultAttrs())

	buf.Resize(2, 3)
	if w, h := buf.Size(); w != 2 || h != 3 {
		t.Fatalf("Size = %dx%d", w, h)
	}
	if got := buf.String(); got != "ab\nef\n  " {
		t.Errorf("after shrink:\n%q", got)
	}

	buf.Resize(3, 1)
	if got := buf.String(); got != "ab " {
		t.Errorf("after grow:\n%q", got)
	}

	buf.Resize(-1, 5)
	if w, h := buf.Size(); w != 0 || h != 5 {
		t.Errorf("negative width not clamped: %dx%d", w, h)
	}
}

func TestBufferAccess(t *testing.T) {
	buf := NewBuffer(3, 2)
	buf.Set(5, 5, NewCell('x', DefaultAttrs()))
	if buf.Get(5, 5) != EmptyCell() {
		t.Error("out-of-bounds Get should return an empty cell")
	}
	buf.Set(2, 1, NewCell('z', DefaultAttrs()))
	if buf.Get(2, 1).Rune != 'z' {
		t.Error("Set did not store the cell")
	}
	if got := buf.StringTrimmed(); got != "\n  z" {
		t.Errorf("StringTrimmed = %q", got)
	}
	buf.Clear()
	if got := buf.StringTrimmed(); got != "" {
		t.Errorf("after Clear = %q", got)
	}
}
