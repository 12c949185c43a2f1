package beautty

import (
	"strconv"
	"strings"
)

var colorNames = map[string]uint8{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

var attributeNames = map[string]Attribute{
	"bold":          AttrBold,
	"dim":           AttrDim,
	"italic":        AttrItalic,
	"underline":     AttrUnderline,
	"blink":         AttrBlink,
	"reverse":       AttrReverse,
	"hidden":        AttrHidden,
	"strikethrough": AttrStrikethrough,
}

// normalizeName lowercases and folds '-' and ' ' to '_' so "bright-red",
// "Bright Red" and "bright_red" all match.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// ParseColor parses a color name.
//
// Accepted forms: one of the 8 base names ("red"), a bright variant
// ("bright_red"), "default", a palette index ("214") or "#rrggbb".
func ParseColor(s string) (Color, bool) {
	name := normalizeName(s)
	if name == "" || name == "default" || name == "none" {
		return DefaultColor(), name != ""
	}
	if idx, ok := colorNames[name]; ok {
		return BasicColor(idx), true
	}
	if base, ok := strings.CutPrefix(name, "bright_"); ok {
		if idx, ok := colorNames[base]; ok {
			return BasicColor(idx).Bright(), true
		}
		return DefaultColor(), false
	}
	if hex, ok := strings.CutPrefix(name, "#"); ok && len(hex) == 6 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return DefaultColor(), false
		}
		return Hex(uint32(v)), true
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n <= 255 {
		return PaletteColor(uint8(n)), true
	}
	return DefaultColor(), false
}

// ParseAttribute parses a single emphasis name such as "bold".
func ParseAttribute(s string) (Attribute, bool) {
	a, ok := attributeNames[normalizeName(s)]
	return a, ok
}

// ParseAttributes parses a list of emphasis names. Unknown names are
// skipped and reported via ok=false.
func ParseAttributes(names ...string) (Attribute, bool) {
	var out Attribute
	ok := true
	for _, n := range names {
		a, found := ParseAttribute(n)
		if !found {
			ok = false
			continue
		}
		out = out.With(a)
	}
	return out, ok
}

// String returns the color name in the form ParseColor accepts.
func (c Color) String() string {
	switch c.Mode {
	case Color16:
		for name, idx := range colorNames {
			if idx == c.Index {
				return name
			}
			if idx+8 == c.Index {
				return "bright_" + name
			}
		}
	case Color256:
		return strconv.Itoa(int(c.Index))
	case ColorRGB:
		const digits = "0123456789abcdef"
		b := []byte{'#', 0, 0, 0, 0, 0, 0}
		for i, v := range [3]uint8{c.R, c.G, c.B} {
			b[1+i*2] = digits[v>>4]
			b[2+i*2] = digits[v&0x0F]
		}
		return string(b)
	}
	return "default"
}
