package beautty

import (
	"math"
	"unicode/utf8"
)

// Two-pass flexbox layout:
//
//	Measure: each child of a flex container is sized with an unbounded main
//	         axis to find its preferred main size. Percent and fill sizes are
//	         resolved against the container first.
//	Place:   leftover space is handed to growing children (or taken from
//	         shrinking ones), justify spacing is applied and every child is
//	         laid out for real with its final bounds.
//
// Block containers stack children on the column axis.

// RemainderPolicy decides where the cells lost to flooring go when grow
// space does not divide evenly.
type RemainderPolicy uint8

const (
	// RemainderLast gives the leftover cells to the last growing child so
	// growing children fill the container exactly.
	RemainderLast RemainderPolicy = iota
	// RemainderDrop leaves the leftover cells unused.
	RemainderDrop
)

// Engine computes node rectangles. The zero value is ready to use.
type Engine struct {
	Remainder RemainderPolicy
}

// CalculateLayout lays out t for a width x height viewport with the
// default engine.
func CalculateLayout(t *Tree, width, height int) {
	Engine{}.Calculate(t, width, height)
}

// Calculate recomputes cascaded styles and the rectangle of every node
// attached to the root. The root always covers the whole viewport.
// Invalid sizes are clamped; it never fails.
func (e Engine) Calculate(t *Tree, width, height int) {
	width, height = max(width, 0), max(height, 0)
	t.cascade(t.root, Style{})

	p := &layoutPass{
		engine: e,
		tree:   t,
		cache:  make(map[measureKey]size),
	}
	p.layout(t.root, bounds{w: width, h: height, fixW: width, fixH: height}, true)
	t.dirty = false
}

type size struct {
	w, h int
}

// axis returns the size as (main, cross) for the given direction.
func (s size) axis(row bool) (int, int) {
	if row {
		return s.w, s.h
	}
	return s.h, s.w
}

func sizeOf(row bool, main, cross int) size {
	if row {
		return size{main, cross}
	}
	return size{cross, main}
}

// bounds is the box offered to a node by its parent. w and h are the
// available space including margins and may be Unbounded. fixW and fixH
// are outer sizes already decided by the parent, or -1.
type bounds struct {
	x, y       int
	w, h       int
	fixW, fixH int
}

func axisBounds(row bool, mainPos, crossPos, mainAvail, crossAvail, fixMain, fixCross int) bounds {
	if row {
		return bounds{x: mainPos, y: crossPos, w: mainAvail, h: crossAvail, fixW: fixMain, fixH: fixCross}
	}
	return bounds{x: crossPos, y: mainPos, w: crossAvail, h: mainAvail, fixW: fixCross, fixH: fixMain}
}

type measureKey struct {
	id         NodeID
	w, h       int
	fixW, fixH int
}

type layoutPass struct {
	engine Engine
	tree   *Tree
	cache  map[measureKey]size
}

// shrinkBy subtracts d from an available size, keeping Unbounded as is.
func shrinkBy(v, d int) int {
	if v >= Unbounded {
		return Unbounded
	}
	return max(v-d, 0)
}

func clampSize(v, lo, hi, avail int) int {
	v = min(max(v, lo), hi)
	if avail < Unbounded {
		v = min(v, avail)
	}
	return max(v, 0)
}

// layout sizes and (when write is set) positions id and its subtree inside
// b. It returns the node's footprint: its outer size plus margins.
func (p *layoutPass) layout(id NodeID, b bounds, write bool) size {
	key := measureKey{id, b.w, b.h, b.fixW, b.fixH}
	if !write {
		if s, ok := p.cache[key]; ok {
			return s
		}
	}

	t := p.tree
	n := t.get(id)
	c := &n.computed
	root := id == t.root

	m := c.Margin
	if root {
		m = Edges{}
	}
	x, y := b.x+m.Left, b.y+m.Top
	aw, ah := shrinkBy(b.w, m.Horizontal()), shrinkBy(b.h, m.Vertical())

	inset := c.BorderInset()
	padW := c.Padding.Horizontal() + 2*inset
	padH := c.Padding.Vertical() + 2*inset

	var w, h int
	var wKnown, hKnown bool
	if root {
		w, h, wKnown, hKnown = b.fixW, b.fixH, true, true
	} else {
		w, wKnown = outerSize(b.fixW, c.Width, aw, c.MinWidth, c.MaxWidth)
		h, hKnown = outerSize(b.fixH, c.Height, ah, c.MinHeight, c.MaxHeight)
	}
	innerW := innerSize(w, wKnown, min(aw, c.MaxWidth), padW)
	innerH := innerSize(h, hKnown, min(ah, c.MaxHeight), padH)
	cx, cy := x+inset+c.Padding.Left, y+inset+c.Padding.Top

	var content size
	switch {
	case n.kind == NodeText:
		content = size{utf8.RuneCountInString(n.text), 1}
	case c.IsFlex():
		content = p.flex(id, c, cx, cy, innerW, innerH, wKnown, hKnown, write)
	default:
		content = p.block(id, cx, cy, innerW, innerH, write)
	}

	if !wKnown {
		w = clampSize(content.w+padW, c.MinWidth, c.MaxWidth, aw)
	}
	if !hKnown {
		h = clampSize(content.h+padH, c.MinHeight, c.MaxHeight, ah)
	}

	if write {
		n.rect = Rect{X: x, Y: y, Width: w, Height: h}
	}
	out := size{w + m.Horizontal(), h + m.Vertical()}
	if !write {
		p.cache[key] = out
	}
	return out
}

// outerSize returns the size fixed by the parent or by an explicit
// dimension, and false when the node is sized from its content.
func outerSize(fix int, d Dimension, avail, lo, hi int) (int, bool) {
	if fix >= 0 {
		return clampSize(fix, lo, hi, avail), true
	}
	if v, ok := d.Resolve(avail); ok {
		return clampSize(v, lo, hi, avail), true
	}
	return 0, false
}

func innerSize(outer int, known bool, avail, pad int) int {
	if known {
		return max(outer-pad, 0)
	}
	return shrinkBy(avail, pad)
}

func (p *layoutPass) block(id NodeID, cx, cy, innerW, innerH int, write bool) size {
	var used, widest int
	for ch := range p.tree.Children(id) {
		remaining := innerH
		if innerH < Unbounded {
			remaining = max(innerH-used, 0)
		}
		s := p.layout(ch, bounds{x: cx, y: cy + used, w: innerW, h: remaining, fixW: -1, fixH: -1}, write)
		used += s.h
		widest = max(widest, s.w)
	}
	return size{widest, used}
}

type flexItem struct {
	id            NodeID
	pref          int // main footprint from the measure pass
	final         int // main footprint after distribution
	cross         int // measured cross footprint
	grow          float64
	shrink        float64
	mainMargin    int
	crossMargin   int
	crossExplicit bool
}

func (p *layoutPass) flex(id NodeID, c *ComputedStyle, cx, cy, innerW, innerH int, wKnown, hKnown, write bool) size {
	t := p.tree
	row := c.Direction == DirectionRow
	mainOrigin, crossOrigin := cx, cy
	mainAvail, crossAvail := innerW, innerH
	crossDefinite := hKnown
	if !row {
		mainOrigin, crossOrigin = cy, cx
		mainAvail, crossAvail = innerH, innerW
		crossDefinite = wKnown
	}

	items := make([]flexItem, 0, t.ChildCount(id))
	var totalPref int
	var totalGrow float64

	// Measure
	for ch := range t.Children(id) {
		cc := &t.nodes[ch].computed
		it := flexItem{id: ch, grow: cc.Grow, shrink: cc.Shrink}
		mainDim, crossDim := cc.Width, cc.Height
		if row {
			it.mainMargin, it.crossMargin = cc.Margin.Horizontal(), cc.Margin.Vertical()
		} else {
			it.mainMargin, it.crossMargin = cc.Margin.Vertical(), cc.Margin.Horizontal()
			mainDim, crossDim = cc.Height, cc.Width
		}
		it.crossExplicit = crossDim.Kind != DimAuto && crossDim.Kind != DimUnset

		fixMain := -1
		switch {
		case cc.Basis.Kind == DimCells:
			fixMain = int(cc.Basis.Value)
		case mainDim.Kind == DimPercent || mainDim.Kind == DimFill:
			if v, ok := mainDim.Resolve(shrinkBy(mainAvail, it.mainMargin)); ok {
				fixMain = v
			}
		}
		s := p.layout(ch, axisBounds(row, 0, 0, Unbounded, crossAvail, fixMain, -1), false)
		it.pref, it.cross = s.axis(row)
		it.final = it.pref

		totalPref += it.pref
		if it.grow > 0 {
			totalGrow += it.grow
		}
		items = append(items, it)
	}
	if len(items) == 0 {
		return size{}
	}

	// Distribute
	if mainAvail < Unbounded {
		switch {
		case totalPref < mainAvail && totalGrow > 0:
			p.grow(items, mainAvail-totalPref, totalGrow)
		case totalPref > mainAvail:
			shrinkItems(items, totalPref-mainAvail)
		}
	}

	used := 0
	for i := range items {
		it := &items[i]
		if mainAvail < Unbounded {
			it.final = min(it.final, mainAvail-used)
		}
		it.final = max(it.final, 0)
		used += it.final
	}

	lead, gap := 0, 0
	if mainAvail < Unbounded && used < mainAvail {
		lead, gap = justifySpacing(c.Justify, mainAvail-used, len(items))
	}

	lineCross := crossAvail
	if !crossDefinite {
		lineCross = 0
		for _, it := range items {
			lineCross = max(lineCross, it.cross)
		}
		if crossAvail < Unbounded {
			lineCross = min(lineCross, crossAvail)
		}
	}

	// Place
	pos, end, crossExtent := lead, 0, 0
	for i, it := range items {
		fixMain := max(it.final-it.mainMargin, 0)
		fixCross := -1
		stretch := c.Align == AlignStretch && !it.crossExplicit
		if stretch {
			fixCross = max(lineCross-it.crossMargin, 0)
		}

		childCross := crossAvail
		if lineCross < Unbounded {
			childCross = lineCross
		}
		offset := 0
		if !stretch && c.Align != AlignFlexStart && c.Align != AlignStretch {
			s := p.layout(it.id, axisBounds(row, 0, 0, it.final, childCross, fixMain, fixCross), false)
			_, foot := s.axis(row)
			free := max(lineCross-foot, 0)
			if c.Align == AlignCenter {
				offset = free / 2
			} else {
				offset = free
			}
		}

		s := p.layout(it.id, axisBounds(row, mainOrigin+pos, crossOrigin+offset, it.final, childCross, fixMain, fixCross), write)
		_, cross := s.axis(row)
		crossExtent = max(crossExtent, offset+cross)

		end = pos + it.final
		pos = end
		if i < len(items)-1 {
			pos += gap
		}
	}

	return sizeOf(row, end, crossExtent)
}

// grow hands extra cells to items in proportion to their grow factor.
func (p *layoutPass) grow(items []flexItem, extra int, totalGrow float64) {
	perUnit := float64(extra) / totalGrow
	given, last := 0, -1
	for i := range items {
		it := &items[i]
		if it.grow <= 0 {
			continue
		}
		add := int(math.Floor(perUnit*it.grow + 1e-9))
		it.final += add
		given += add
		last = i
	}
	if p.engine.Remainder == RemainderLast && last >= 0 && given < extra {
		items[last].final += extra - given
	}
}

// shrinkItems removes deficit cells from items in proportion to
// shrink x preferred size.
func shrinkItems(items []flexItem, deficit int) {
	var weights float64
	for _, it := range items {
		weights += it.shrink * float64(it.pref)
	}
	if weights <= 0 {
		return
	}
	for i := range items {
		it := &items[i]
		cut := int(math.Floor(float64(deficit) * it.shrink * float64(it.pref) / weights))
		it.final = max(it.pref-cut, 0)
	}
}

// justifySpacing returns the leading offset and the gap between children
// for the given leftover main-axis space.
func justifySpacing(j Justify, leftover, n int) (lead, gap int) {
	if leftover <= 0 || n <= 0 {
		return 0, 0
	}
	switch j {
	case JustifyFlexEnd:
		return leftover, 0
	case JustifyCenter:
		return leftover / 2, 0
	case JustifySpaceBetween:
		if n <= 1 {
			return 0, 0
		}
		return 0, leftover / (n - 1)
	case JustifySpaceAround:
		return leftover / (2 * n), leftover / n
	case JustifySpaceEvenly:
		g := leftover / (n + 1)
		return g, g
	}
	return 0, 0
}
