package beautty

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in     string
		want   Color
		wantOK bool
	}{
		{"red", Red, true},
		{"Blue", Blue, true},
		{"bright-red", BrightRed, true},
		{"Bright White", BrightWhite, true},
		{"default", DefaultColor(), true},
		{"none", DefaultColor(), true},
		{"214", PaletteColor(214), true},
		{"#FF8000", Hex(0xFF8000), true},
		{"", DefaultColor(), false},
		{"bright_pink", DefaultColor(), false},
		{"#12345", DefaultColor(), false},
		{"#zzzzzz", DefaultColor(), false},
		{"256", DefaultColor(), false},
		{"mauve", DefaultColor(), false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseColor(%q) = %+v, %v; want %+v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestColorStringParsesBack(t *testing.T) {
	colors := []Color{Black, Red, Cyan, BrightBlack, BrightMagenta, PaletteColor(42), RGB(1, 170, 255), DefaultColor()}
	for _, c := range colors {
		got, ok := ParseColor(c.String())
		if !ok || got != c {
			t.Errorf("%+v: String %q parses to %+v, %v", c, c.String(), got, ok)
		}
	}
}

func TestParseAttributes(t *testing.T) {
	got, ok := ParseAttributes("bold", "Underline", "strikethrough")
	if !ok || got != AttrBold|AttrUnderline|AttrStrikethrough {
		t.Errorf("ParseAttributes = %08b, %v", got, ok)
	}

	got, ok = ParseAttributes("bold", "sparkle")
	if ok || got != AttrBold {
		t.Errorf("unknown name: got %08b, %v; want bold, false", got, ok)
	}
}

func TestAttributeSet(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrDim)
	if !a.Has(AttrBold) || !a.Has(AttrDim) || a.Has(AttrItalic) {
		t.Errorf("With: %08b", a)
	}
	if a.Without(AttrBold).Has(AttrBold) {
		t.Error("Without did not clear bold")
	}
	if Red.Bright() != BrightRed || BrightRed.Bright() != BrightRed || PaletteColor(3).Bright() != PaletteColor(3) {
		t.Error("Bright only lifts base colors")
	}
}
