package beautty

import "unicode/utf8"

// Render draws every attached node of a laid-out tree into the screen's
// back buffer, then flushes the difference to the terminal. It returns the
// number of cells written.
func Render(t *Tree, s *Screen) (int, error) {
	Draw(t, s.Buffer())
	return s.Flush()
}

// Draw clears buf and paints the tree into it in preorder, so children
// overwrite their parents.
func Draw(t *Tree, buf *Buffer) {
	buf.Clear()
	drawNode(t, buf, t.Root())
}

func drawNode(t *Tree, buf *Buffer, id NodeID) {
	r := t.Layout(id)
	if r.Empty() {
		return
	}
	c := t.Computed(id)

	if !c.BG.IsDefault() {
		buf.DrawRect(r.X, r.Y, r.Width, r.Height, RectOptions{Fill: true, Attrs: Attrs{FG: c.FG, BG: c.BG}})
	}

	if c.Border {
		variant := c.BorderVariant
		if c.BorderThickness >= 2 {
			variant = VariantThick
		}
		attrs := c.OutlineAttrs()
		buf.DrawRect(r.X, r.Y, r.Width, r.Height, RectOptions{Variant: variant, Radius: c.BorderRadius, Attrs: attrs})
		if c.Header != "" {
			drawHeader(buf, r, c.Header, attrs)
		}
	}

	if t.Kind(id) == NodeText {
		inset := c.BorderInset()
		x := r.X + inset + c.Padding.Left
		y := r.Y + inset + c.Padding.Top
		w := r.Width - 2*inset - c.Padding.Horizontal()
		h := r.Height - 2*inset - c.Padding.Vertical()
		if w > 0 && h > 0 {
			buf.DrawTextClipped(x, y, t.Text(id), c.Attrs(), w)
		}
	}

	for ch := range t.Children(id) {
		drawNode(t, buf, ch)
	}
}

// HeaderLabel returns the text written on the top border of a box of the
// given outer width: the label padded with one space on each side, or
// truncated with an ellipsis when it does not fit between the corners.
func HeaderLabel(label string, width int) string {
	if width < 2 {
		return ""
	}
	if utf8.RuneCountInString(label)+2 > width-2 {
		runes := []rune(label)
		runes = runes[:min(max(width-5, 0), len(runes))]
		label = string(runes) + "…"
	}
	return " " + label + " "
}

func drawHeader(buf *Buffer, r Rect, label string, attrs Attrs) {
	text := HeaderLabel(label, r.Width)
	buf.DrawTextClipped(r.X+1, r.Y, text, attrs, r.Width-2)
}
