package beautty

import "strings"

// Buffer is a 2D grid of cells representing a drawable surface.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a new buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	return &Buffer{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// InBounds returns true if the given coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) index(x, y int) int {
	return y*b.width + x
}

// Get returns the cell at the given coordinates.
// Returns an empty cell if out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[b.index(x, y)]
}

// Set sets the cell at the given coordinates.
// Does nothing if out of bounds.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
}

// Fill fills the entire buffer with the given cell.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Clear resets every cell to a blank with default attributes.
func (b *Buffer) Clear() {
	b.Fill(EmptyCell())
}

// FillRect fills a rectangular region with the given cell, clipped to the
// buffer.
func (b *Buffer) FillRect(x, y, width, height int, c Cell) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, b.width), min(y+height, b.height)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			b.cells[b.index(col, row)] = c
		}
	}
}

// DrawText writes one cell per rune starting at (x, y). Cells that fall
// outside the buffer are dropped. Returns the number of cells written.
func (b *Buffer) DrawText(x, y int, text string, attrs Attrs) int {
	return b.DrawTextClipped(x, y, text, attrs, b.width)
}

// DrawTextClipped is DrawText limited to at most maxWidth runes from x.
func (b *Buffer) DrawTextClipped(x, y int, text string, attrs Attrs, maxWidth int) int {
	if y < 0 || y >= b.height || maxWidth <= 0 {
		return 0
	}
	written, col := 0, 0
	for _, r := range text {
		if col >= maxWidth || x+col >= b.width {
			break
		}
		if x+col >= 0 {
			b.cells[b.index(x+col, y)] = NewCell(r, attrs)
			written++
		}
		col++
	}
	return written
}

// HLine draws a horizontal line of the given rune.
func (b *Buffer) HLine(x, y, length int, r rune, attrs Attrs) {
	for i := 0; i < length; i++ {
		b.Set(x+i, y, NewCell(r, attrs))
	}
}

// VLine draws a vertical line of the given rune.
func (b *Buffer) VLine(x, y, length int, r rune, attrs Attrs) {
	for i := 0; i < length; i++ {
		b.Set(x, y+i, NewCell(r, attrs))
	}
}

// BorderStyle defines the characters used for drawing borders.
type BorderStyle struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

// Standard border styles.
var (
	BorderSingle = BorderStyle{
		TopLeft: '┌', Top: '─', TopRight: '┐',
		Left: '│', Right: '│',
		BottomLeft: '└', Bottom: '─', BottomRight: '┘',
	}
	BorderDouble = BorderStyle{
		TopLeft: '╔', Top: '═', TopRight: '╗',
		Left: '║', Right: '║',
		BottomLeft: '╚', Bottom: '═', BottomRight: '╝',
	}
	BorderThick = BorderStyle{
		TopLeft: '▛', Top: '▀', TopRight: '▜',
		Left: '▌', Right: '▐',
		BottomLeft: '▙', Bottom: '▄', BottomRight: '▟',
	}
	BorderRounded = BorderStyle{
		TopLeft: '╭', Top: '─', TopRight: '╮',
		Left: '│', Right: '│',
		BottomLeft: '╰', Bottom: '─', BottomRight: '╯',
	}
)

// BorderFor returns the glyph set for a variant. The radius flag turns a
// single outline into the rounded one.
func BorderFor(v BorderVariant, radius bool) BorderStyle {
	switch v {
	case VariantDouble:
		return BorderDouble
	case VariantThick:
		return BorderThick
	case VariantRounded:
		return BorderRounded
	}
	if radius {
		return BorderRounded
	}
	return BorderSingle
}

// RectOptions controls DrawRect.
type RectOptions struct {
	Fill    bool // paint the whole rectangle instead of the outline
	Variant BorderVariant
	Radius  bool
	Attrs   Attrs
}

// DrawRect fills a rectangle with blanks or draws its 1-cell outline.
// An outline needs at least 2x2 cells.
func (b *Buffer) DrawRect(x, y, width, height int, opts RectOptions) {
	if width <= 0 || height <= 0 {
		return
	}
	if opts.Fill {
		b.FillRect(x, y, width, height, NewCell(' ', opts.Attrs))
		return
	}
	b.DrawBorder(x, y, width, height, BorderFor(opts.Variant, opts.Radius), opts.Attrs)
}

// DrawBorder draws a border around the given rectangle.
func (b *Buffer) DrawBorder(x, y, width, height int, border BorderStyle, attrs Attrs) {
	if width < 2 || height < 2 {
		return
	}

	b.Set(x, y, NewCell(border.TopLeft, attrs))
	b.Set(x+width-1, y, NewCell(border.TopRight, attrs))
	b.Set(x, y+height-1, NewCell(border.BottomLeft, attrs))
	b.Set(x+width-1, y+height-1, NewCell(border.BottomRight, attrs))

	b.HLine(x+1, y, width-2, border.Top, attrs)
	b.HLine(x+1, y+height-1, width-2, border.Bottom, attrs)
	b.VLine(x, y+1, height-2, border.Left, attrs)
	b.VLine(x+width-1, y+1, height-2, border.Right, attrs)
}

// Line returns the content of a single row with trailing spaces removed.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteRune(printable(b.cells[b.index(x, y)].Rune))
	}
	return strings.TrimRight(sb.String(), " ")
}

// String returns the buffer contents as a string (for testing/debugging).
// Each row is separated by a newline. Trailing spaces are preserved.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			sb.WriteRune(printable(b.cells[b.index(x, y)].Rune))
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the buffer contents with trailing spaces removed per
// line and trailing empty lines dropped.
func (b *Buffer) StringTrimmed() string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Resize resizes the buffer to new dimensions.
// The overlapping top-left region is preserved; new cells are blank.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == b.width && height == b.height {
		return
	}

	newCells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range newCells {
		newCells[i] = empty
	}

	w, h := min(width, b.width), min(height, b.height)
	for y := 0; y < h; y++ {
		copy(newCells[y*width:y*width+w], b.cells[y*b.width:y*b.width+w])
	}

	b.cells = newCells
	b.width = width
	b.height = height
}
