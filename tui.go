// Package beautty is a terminal UI core: a tree of styled nodes, a flexbox-style
// layout engine, and a double-buffered cell renderer that writes only the cells
// that changed since the previous frame.
package beautty

// Attribute represents text emphasis attributes that can be combined.
type Attribute uint8

const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << (iota - 1)
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrikethrough
)

// attrCodes maps each attribute to its SGR parameter, in emission order.
var attrCodes = [...]struct {
	attr Attribute
	code int
}{
	{AttrBold, 1},
	{AttrDim, 2},
	{AttrItalic, 3},
	{AttrUnderline, 4},
	{AttrBlink, 5},
	{AttrReverse, 7},
	{AttrHidden, 8},
	{AttrStrikethrough, 9},
}

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// ColorMode represents the color mode for a color value.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // Terminal default
	Color16                       // Base and bright colors (0-15)
	Color256                      // 256 color palette (0-255)
	ColorRGB                      // 24-bit true color
)

// Color represents a terminal color.
type Color struct {
	Mode    ColorMode
	R, G, B uint8 // For RGB mode
	Index   uint8 // For 16/256 mode
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{Mode: ColorDefault}
}

// BasicColor returns one of the 16 basic terminal colors.
// Indexes 8-15 are the bright variants of 0-7.
func BasicColor(index uint8) Color {
	return Color{Mode: Color16, Index: index & 0x0F}
}

// PaletteColor returns one of the 256 palette colors.
func PaletteColor(index uint8) Color {
	return Color{Mode: Color256, Index: index}
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// Hex returns a 24-bit true color from a hex value (e.g., 0xFF5500).
func Hex(hex uint32) Color {
	return Color{
		Mode: ColorRGB,
		R:    uint8((hex >> 16) & 0xFF),
		G:    uint8((hex >> 8) & 0xFF),
		B:    uint8(hex & 0xFF),
	}
}

// Base colors and their bright variants.
var (
	Black   = BasicColor(0)
	Red     = BasicColor(1)
	Green   = BasicColor(2)
	Yellow  = BasicColor(3)
	Blue    = BasicColor(4)
	Magenta = BasicColor(5)
	Cyan    = BasicColor(6)
	White   = BasicColor(7)

	BrightBlack   = BasicColor(8)
	BrightRed     = BasicColor(9)
	BrightGreen   = BasicColor(10)
	BrightYellow  = BasicColor(11)
	BrightBlue    = BasicColor(12)
	BrightMagenta = BasicColor(13)
	BrightCyan    = BasicColor(14)
	BrightWhite   = BasicColor(15)
)

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c.Mode == ColorDefault
}

// Bright returns the bright variant of a base color. Other colors are
// returned unchanged.
func (c Color) Bright() Color {
	if c.Mode == Color16 && c.Index < 8 {
		c.Index += 8
	}
	return c
}

// Attrs combines foreground, background colors and emphasis for one cell.
type Attrs struct {
	FG   Color
	BG   Color
	Attr Attribute
}

// DefaultAttrs returns attributes with default colors and no emphasis.
func DefaultAttrs() Attrs {
	return Attrs{
		FG: DefaultColor(),
		BG: DefaultColor(),
	}
}

// Foreground returns a copy with the given foreground color.
func (a Attrs) Foreground(c Color) Attrs {
	a.FG = c
	return a
}

// Background returns a copy with the given background color.
func (a Attrs) Background(c Color) Attrs {
	a.BG = c
	return a
}

// Bold returns a copy with bold enabled.
func (a Attrs) Bold() Attrs {
	a.Attr = a.Attr.With(AttrBold)
	return a
}

// Underline returns a copy with underline enabled.
func (a Attrs) Underline() Attrs {
	a.Attr = a.Attr.With(AttrUnderline)
	return a
}

// Reverse returns a copy with reverse video enabled.
func (a Attrs) Reverse() Attrs {
	a.Attr = a.Attr.With(AttrReverse)
	return a
}

// Plain reports whether a carries no color and no emphasis.
func (a Attrs) Plain() bool {
	return a == DefaultAttrs()
}

// Cell represents a single character cell on the terminal.
type Cell struct {
	Rune  rune
	Attrs Attrs
}

// EmptyCell returns a cell with a space and default attributes.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Attrs: DefaultAttrs()}
}

// NewCell creates a cell with the given rune and attributes. Control
// characters are stored as spaces.
func NewCell(r rune, attrs Attrs) Cell {
	return Cell{Rune: printable(r), Attrs: attrs}
}

// printable maps C0 and C1 control characters, DEL and NUL to a space so a
// cell never moves the terminal cursor or starts an escape sequence.
func printable(r rune) rune {
	if r < 0x20 || (r >= 0x7f && r < 0xa0) {
		return ' '
	}
	return r
}

// Equal returns true if two cells are equal.
func (c Cell) Equal(other Cell) bool {
	return c == other
}
