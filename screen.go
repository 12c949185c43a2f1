package beautty

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/mattn/go-runewidth"
)

// Screen manages the terminal display with double buffering and diff-based
// updates. Drawing goes to the back buffer; Flush writes only the cells that
// differ from the front buffer and then swaps the two.
type Screen struct {
	front  *Buffer   // What's currently displayed
	back   *Buffer   // What we're drawing to
	writer io.Writer // Output destination

	width  int
	height int

	// Rendering state
	lastAttrs    Attrs        // Last attributes we emitted
	clearPending bool         // Invalidate was called since the last flush
	buf          bytes.Buffer // Reusable buffer for building output

	mu sync.Mutex
}

// NewScreen creates a width x height screen writing to w. The front buffer
// starts blank, matching a freshly cleared terminal.
func NewScreen(w io.Writer, width, height int) *Screen {
	width, height = max(width, 0), max(height, 0)
	return &Screen{
		front:     NewBuffer(width, height),
		back:      NewBuffer(width, height),
		writer:    w,
		width:     width,
		height:    height,
		lastAttrs: DefaultAttrs(),
	}
}

// Size returns the current screen dimensions.
func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

// Width returns the screen width.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height.
func (s *Screen) Height() int {
	return s.height
}

// Buffer returns the back buffer for drawing.
func (s *Screen) Buffer() *Buffer {
	return s.back
}

// Front returns the buffer holding what the terminal currently shows.
func (s *Screen) Front() *Buffer {
	return s.front
}

// Clear resets the back buffer to blank cells.
func (s *Screen) Clear() {
	s.back.Clear()
}

// DrawText draws into the back buffer. See Buffer.DrawText.
func (s *Screen) DrawText(x, y int, text string, attrs Attrs) int {
	return s.back.DrawText(x, y, text, attrs)
}

// DrawRect draws into the back buffer. See Buffer.DrawRect.
func (s *Screen) DrawRect(x, y, width, height int, opts RectOptions) {
	s.back.DrawRect(x, y, width, height, opts)
}

// Resize reallocates both buffers, keeping the overlapping region.
func (s *Screen) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	width, height = max(width, 0), max(height, 0)
	s.front.Resize(width, height)
	s.back.Resize(width, height)
	s.width = width
	s.height = height
}

// Invalidate forgets what the terminal shows. The next Flush clears the
// terminal and repaints every cell.
func (s *Screen) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.front.Fill(Cell{})
	s.clearPending = true
	s.lastAttrs = DefaultAttrs()
}

// Flush writes every cell that differs between the back and front buffers
// in a single Write, then swaps the buffers. It returns the number of cells
// written; an unchanged frame writes nothing.
func (s *Screen) Flush() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()
	if s.clearPending {
		s.buf.WriteString("\x1b[0m\x1b[2J")
		s.clearPending = false
	}

	written := 0
	cursorX, cursorY := -1, -1

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			idx := s.back.index(x, y)
			cell := s.back.cells[idx]
			if cell == s.front.cells[idx] {
				continue
			}

			// Position cursor if not already there
			if cursorX != x || cursorY != y {
				s.buf.WriteString("\x1b[")
				s.buf.Write(appendInt(nil, y+1))
				s.buf.WriteByte(';')
				s.buf.Write(appendInt(nil, x+1))
				s.buf.WriteByte('H')
			}

			s.writeCell(cell)
			s.front.cells[idx] = cell
			written++

			// cursor advances by the display width of the character
			rw := runewidth.RuneWidth(cell.Rune)
			if rw == 0 {
				rw = 1
			}
			cursorX = x + rw
			cursorY = y
		}
	}

	if written > 0 && !s.lastAttrs.Plain() {
		s.buf.WriteString("\x1b[0m")
		s.lastAttrs = DefaultAttrs()
	}

	s.front, s.back = s.back, s.front

	if s.buf.Len() == 0 {
		return written, nil
	}
	if _, err := s.writer.Write(s.buf.Bytes()); err != nil {
		// The terminal state is unknown; repaint everything next time.
		s.front.Fill(Cell{})
		s.clearPending = true
		s.lastAttrs = DefaultAttrs()
		return written, fmt.Errorf("failed to write frame: %w", err)
	}
	return written, nil
}

func (s *Screen) writeCell(cell Cell) {
	// Only emit attribute changes
	if cell.Attrs != s.lastAttrs {
		s.buf.Write(appendSGR(nil, cell.Attrs))
		s.lastAttrs = cell.Attrs
	}
	s.buf.WriteRune(printable(cell.Rune))
}

// appendSGR appends one combined select-graphic-rendition sequence: a reset
// followed by every emphasis code and the non-default colors.
func appendSGR(b []byte, a Attrs) []byte {
	b = append(b, "\x1b[0"...)
	for _, ac := range attrCodes {
		if a.Attr.Has(ac.attr) {
			b = append(b, ';')
			b = appendInt(b, ac.code)
		}
	}
	b = appendColor(b, a.FG, true)
	b = appendColor(b, a.BG, false)
	return append(b, 'm')
}

func appendColor(b []byte, c Color, fg bool) []byte {
	switch c.Mode {
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		idx := int(c.Index & 0x0F)
		if idx >= 8 {
			// Bright colors
			base += 60
			idx -= 8
		}
		b = append(b, ';')
		b = appendInt(b, base+idx)
	case Color256:
		if fg {
			b = append(b, ";38;5;"...)
		} else {
			b = append(b, ";48;5;"...)
		}
		b = appendInt(b, int(c.Index))
	case ColorRGB:
		if fg {
			b = append(b, ";38;2;"...)
		} else {
			b = append(b, ";48;2;"...)
		}
		b = appendInt(b, int(c.R))
		b = append(b, ';')
		b = appendInt(b, int(c.G))
		b = append(b, ';')
		b = appendInt(b, int(c.B))
	}
	return b
}

// ANSI returns the buffer as lines of text with SGR sequences, suitable for
// printing a single frame to a terminal that is not in raw mode.
func (b *Buffer) ANSI() string {
	var out []byte
	last := DefaultAttrs()
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.cells[b.index(x, y)]
			if cell.Attrs != last {
				out = appendSGR(out, cell.Attrs)
				last = cell.Attrs
			}
			out = append(out, string(printable(cell.Rune))...)
		}
		if !last.Plain() {
			out = append(out, "\x1b[0m"...)
			last = DefaultAttrs()
		}
		out = append(out, '\n')
	}
	return string(out)
}

func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	var scratch [20]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	return append(b, scratch[i:]...)
}
