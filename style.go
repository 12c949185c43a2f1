package beautty

import (
	"math"
	"strconv"
	"strings"
)

// Unbounded marks a size with no upper limit: an unconstrained layout axis
// or an unset maximum.
const Unbounded = math.MaxInt32

// Property identifies one field of a Style. A Style records which
// properties were explicitly set so that an explicit zero or false value is
// never confused with a property left unspecified.
type Property uint32

const (
	PropFG Property = 1 << iota
	PropBG
	PropEmphasis
	PropPadding
	PropMargin
	PropBorder
	PropBorderVariant
	PropBorderThickness
	PropBorderRadius
	PropBorderColor
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropDisplay
	PropDirection
	PropJustify
	PropAlign
	PropGrow
	PropShrink
	PropBasis
	PropHeader

	propLast = PropHeader
)

// inheritedProps are the properties a node takes from its parent's cascaded
// style when it leaves them unset: colors, emphasis, the border and its look,
// and the width, height and maximum sizes. Box spacing, minimum sizes, the
// flex properties and the header stay with the node that declares them.
const inheritedProps = PropFG | PropBG | PropEmphasis |
	PropBorder | PropBorderVariant | PropBorderThickness | PropBorderRadius | PropBorderColor |
	PropWidth | PropHeight | PropMaxWidth | PropMaxHeight

// Edges is a resolved 4-sided box-model value.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgesOf parses 1 to 4 values using CSS shorthand order:
//
//	1 value:  all sides
//	2 values: vertical, horizontal
//	3 values: top, horizontal, bottom
//	4 values: top, right, bottom, left
//
// Extra values are ignored. Negative values clamp to 0.
func EdgesOf(values ...int) Edges {
	v := make([]int, len(values))
	for i, n := range values {
		v[i] = max(n, 0)
	}
	switch len(v) {
	case 0:
		return Edges{}
	case 1:
		return Edges{v[0], v[0], v[0], v[0]}
	case 2:
		return Edges{v[0], v[1], v[0], v[1]}
	case 3:
		return Edges{v[0], v[1], v[2], v[1]}
	default:
		return Edges{v[0], v[1], v[2], v[3]}
	}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() int { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e Edges) Vertical() int { return e.Top + e.Bottom }

func (e Edges) clamped() Edges {
	return Edges{max(e.Top, 0), max(e.Right, 0), max(e.Bottom, 0), max(e.Left, 0)}
}

// DimensionKind selects how a Dimension resolves against available space.
type DimensionKind uint8

const (
	DimUnset DimensionKind = iota
	DimCells
	DimPercent
	DimFill
	DimAuto
)

// Dimension is a width, height or flex-basis value.
type Dimension struct {
	Kind  DimensionKind
	Value float64 // cells for DimCells, 0-100 for DimPercent
}

// Cells returns an absolute dimension.
func Cells(n int) Dimension { return Dimension{Kind: DimCells, Value: float64(max(n, 0))} }

// Percent returns a dimension relative to the available space.
func Percent(p float64) Dimension {
	if p < 0 || math.IsNaN(p) {
		p = 0
	}
	return Dimension{Kind: DimPercent, Value: p}
}

// Fill returns a dimension that takes all available space.
func Fill() Dimension { return Dimension{Kind: DimFill} }

// Auto returns a dimension sized from content.
func Auto() Dimension { return Dimension{Kind: DimAuto} }

// Resolve returns the size in cells for the given available space, and
// false when the dimension is content-sized. Percent and fill have nothing
// to resolve against on an unbounded axis and report false.
func (d Dimension) Resolve(available int) (int, bool) {
	switch d.Kind {
	case DimCells:
		return max(int(d.Value), 0), true
	case DimPercent:
		if available >= Unbounded {
			return 0, false
		}
		return max(int(math.Floor(float64(available)*d.Value/100)), 0), true
	case DimFill:
		if available >= Unbounded {
			return 0, false
		}
		return max(available, 0), true
	}
	return 0, false
}

// String returns the dimension in the form ParseDimension accepts.
func (d Dimension) String() string {
	switch d.Kind {
	case DimCells:
		return strconv.Itoa(int(d.Value))
	case DimPercent:
		return strconv.FormatFloat(d.Value, 'f', -1, 64) + "%"
	case DimFill:
		return "fill"
	case DimAuto:
		return "auto"
	}
	return "unset"
}

// ParseDimension parses "20", "50%", "fill" or "auto".
func ParseDimension(s string) (Dimension, bool) {
	s = normalizeName(s)
	switch s {
	case "fill", "100%_fill":
		return Fill(), true
	case "auto", "":
		return Auto(), s == "auto"
	}
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || v < 0 {
			return Dimension{}, false
		}
		return Percent(v), true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Dimension{}, false
	}
	return Cells(n), true
}

// BorderVariant selects the glyph set used to draw an outline.
type BorderVariant uint8

const (
	VariantSingle BorderVariant = iota
	VariantDouble
	VariantThick
	VariantRounded
)

// Display selects how a container positions its children.
type Display uint8

const (
	DisplayBlock Display = iota
	DisplayFlex
)

// Direction is the main axis of a flex container.
type Direction uint8

const (
	DirectionRow Direction = iota
	DirectionColumn
)

// Justify distributes leftover main-axis space.
type Justify uint8

const (
	JustifyFlexStart Justify = iota
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align positions children on the cross axis.
type Align uint8

const (
	AlignStretch Align = iota
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
)

var (
	variantNames   = []string{"single", "double", "thick", "rounded"}
	displayNames   = []string{"block", "flex"}
	directionNames = []string{"row", "column"}
	justifyNames   = []string{"flex_start", "flex_end", "center", "space_between", "space_around", "space_evenly"}
	alignNames     = []string{"stretch", "flex_start", "flex_end", "center"}
)

func parseEnum(names []string, s string) (int, bool) {
	s = normalizeName(s)
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "invalid"
	}
	return names[i]
}

// ParseBorderVariant parses "single", "double", "thick" or "rounded".
func ParseBorderVariant(s string) (BorderVariant, bool) {
	i, ok := parseEnum(variantNames, s)
	return BorderVariant(i), ok
}

// ParseDisplay parses "block" or "flex".
func ParseDisplay(s string) (Display, bool) {
	i, ok := parseEnum(displayNames, s)
	return Display(i), ok
}

// ParseDirection parses "row" or "column".
func ParseDirection(s string) (Direction, bool) {
	i, ok := parseEnum(directionNames, s)
	return Direction(i), ok
}

// ParseJustify parses a justify-content keyword such as "space-between".
func ParseJustify(s string) (Justify, bool) {
	i, ok := parseEnum(justifyNames, s)
	return Justify(i), ok
}

// ParseAlign parses an align-items keyword such as "center".
func ParseAlign(s string) (Align, bool) {
	i, ok := parseEnum(alignNames, s)
	return Align(i), ok
}

func (v BorderVariant) String() string { return enumName(variantNames, int(v)) }
func (d Display) String() string       { return enumName(displayNames, int(d)) }
func (d Direction) String() string     { return enumName(directionNames, int(d)) }
func (j Justify) String() string       { return enumName(justifyNames, int(j)) }
func (a Align) String() string         { return enumName(alignNames, int(a)) }

// Style is the declared style of a node. The zero value sets nothing.
// Build styles with the chainable setters:
//
//	Style{}.Flex().Direction(DirectionColumn).Border(true).Padding(1, 2)
type Style struct {
	set Property

	fg, bg      Color
	emphasis    Attribute
	padding     Edges
	margin      Edges
	border      bool
	variant     BorderVariant
	thickness   int
	radius      bool
	borderColor Color

	width, height       Dimension
	minWidth, minHeight int
	maxWidth, maxHeight int

	display   Display
	direction Direction
	justify   Justify
	align     Align
	grow      float64
	shrink    float64
	basis     Dimension

	header string
}

// Has reports whether p was explicitly set.
func (s Style) Has(p Property) bool { return s.set&p != 0 }

// Unset returns a copy with the given properties cleared back to unset.
func (s Style) Unset(p Property) Style {
	var zero Style
	for bit := Property(1); bit <= propLast; bit <<= 1 {
		if p&bit != 0 {
			s.copyProp(bit, &zero)
		}
	}
	s.set &^= p
	return s
}

// Foreground sets the text color.
func (s Style) Foreground(c Color) Style { s.fg = c; s.set |= PropFG; return s }

// Background sets the fill color.
func (s Style) Background(c Color) Style { s.bg = c; s.set |= PropBG; return s }

// Emphasis replaces the emphasis attributes.
func (s Style) Emphasis(a Attribute) Style { s.emphasis = a; s.set |= PropEmphasis; return s }

// Bold adds bold to the emphasis attributes.
func (s Style) Bold() Style { return s.Emphasis(s.emphasis.With(AttrBold)) }

// Dim adds dim to the emphasis attributes.
func (s Style) Dim() Style { return s.Emphasis(s.emphasis.With(AttrDim)) }

// Italic adds italic to the emphasis attributes.
func (s Style) Italic() Style { return s.Emphasis(s.emphasis.With(AttrItalic)) }

// Underline adds underline to the emphasis attributes.
func (s Style) Underline() Style { return s.Emphasis(s.emphasis.With(AttrUnderline)) }

// Reverse adds reverse video to the emphasis attributes.
func (s Style) Reverse() Style { return s.Emphasis(s.emphasis.With(AttrReverse)) }

// Padding sets padding from 1-4 shorthand values (see EdgesOf).
func (s Style) Padding(values ...int) Style { return s.PaddingEdges(EdgesOf(values...)) }

// PaddingEdges sets padding per side.
func (s Style) PaddingEdges(e Edges) Style { s.padding = e.clamped(); s.set |= PropPadding; return s }

// Margin sets margin from 1-4 shorthand values (see EdgesOf).
func (s Style) Margin(values ...int) Style { return s.MarginEdges(EdgesOf(values...)) }

// MarginEdges sets margin per side.
func (s Style) MarginEdges(e Edges) Style { s.margin = e.clamped(); s.set |= PropMargin; return s }

// Border enables or explicitly disables the outline.
func (s Style) Border(on bool) Style { s.border = on; s.set |= PropBorder; return s }

// BorderVariant selects the outline glyph set.
func (s Style) BorderVariant(v BorderVariant) Style { s.variant = v; s.set |= PropBorderVariant; return s }

// BorderThickness sets the outline thickness (1 or 2).
func (s Style) BorderThickness(n int) Style { s.thickness = n; s.set |= PropBorderThickness; return s }

// BorderRadius rounds the corners of a single outline.
func (s Style) BorderRadius(on bool) Style { s.radius = on; s.set |= PropBorderRadius; return s }

// BorderColor sets the outline color independently of the foreground.
func (s Style) BorderColor(c Color) Style { s.borderColor = c; s.set |= PropBorderColor; return s }

// Width sets the outer width.
func (s Style) Width(d Dimension) Style { s.width = d; s.set |= PropWidth; return s }

// Height sets the outer height.
func (s Style) Height(d Dimension) Style { s.height = d; s.set |= PropHeight; return s }

// MinWidth sets the minimum outer width.
func (s Style) MinWidth(n int) Style { s.minWidth = n; s.set |= PropMinWidth; return s }

// MinHeight sets the minimum outer height.
func (s Style) MinHeight(n int) Style { s.minHeight = n; s.set |= PropMinHeight; return s }

// MaxWidth sets the maximum outer width.
func (s Style) MaxWidth(n int) Style { s.maxWidth = n; s.set |= PropMaxWidth; return s }

// MaxHeight sets the maximum outer height.
func (s Style) MaxHeight(n int) Style { s.maxHeight = n; s.set |= PropMaxHeight; return s }

// Display sets block or flex layout for children.
func (s Style) Display(d Display) Style { s.display = d; s.set |= PropDisplay; return s }

// Direction sets the flex main axis.
func (s Style) Direction(d Direction) Style { s.direction = d; s.set |= PropDirection; return s }

// Justify sets justify-content.
func (s Style) Justify(j Justify) Style { s.justify = j; s.set |= PropJustify; return s }

// Align sets align-items.
func (s Style) Align(a Align) Style { s.align = a; s.set |= PropAlign; return s }

// Grow sets flex-grow.
func (s Style) Grow(f float64) Style { s.grow = f; s.set |= PropGrow; return s }

// Shrink sets flex-shrink.
func (s Style) Shrink(f float64) Style { s.shrink = f; s.set |= PropShrink; return s }

// Basis sets flex-basis. Only DimCells and DimAuto are meaningful.
func (s Style) Basis(d Dimension) Style { s.basis = d; s.set |= PropBasis; return s }

// Header sets the label drawn on the top border.
func (s Style) Header(label string) Style { s.header = label; s.set |= PropHeader; return s }

// Flex is shorthand for Display(DisplayFlex).
func (s Style) Flex() Style { return s.Display(DisplayFlex) }

// Row is shorthand for a flex container on the row axis.
func (s Style) Row() Style { return s.Flex().Direction(DirectionRow) }

// Column is shorthand for a flex container on the column axis.
func (s Style) Column() Style { return s.Flex().Direction(DirectionColumn) }

func (s *Style) copyProp(p Property, src *Style) {
	switch p {
	case PropFG:
		s.fg = src.fg
	case PropBG:
		s.bg = src.bg
	case PropEmphasis:
		s.emphasis = src.emphasis
	case PropPadding:
		s.padding = src.padding
	case PropMargin:
		s.margin = src.margin
	case PropBorder:
		s.border = src.border
	case PropBorderVariant:
		s.variant = src.variant
	case PropBorderThickness:
		s.thickness = src.thickness
	case PropBorderRadius:
		s.radius = src.radius
	case PropBorderColor:
		s.borderColor = src.borderColor
	case PropWidth:
		s.width = src.width
	case PropHeight:
		s.height = src.height
	case PropMinWidth:
		s.minWidth = src.minWidth
	case PropMinHeight:
		s.minHeight = src.minHeight
	case PropMaxWidth:
		s.maxWidth = src.maxWidth
	case PropMaxHeight:
		s.maxHeight = src.maxHeight
	case PropDisplay:
		s.display = src.display
	case PropDirection:
		s.direction = src.direction
	case PropJustify:
		s.justify = src.justify
	case PropAlign:
		s.align = src.align
	case PropGrow:
		s.grow = src.grow
	case PropShrink:
		s.shrink = src.shrink
	case PropBasis:
		s.basis = src.basis
	case PropHeader:
		s.header = src.header
	}
}

// Merge cascades own over parent: every property set on own wins, every
// property own leaves unset takes the parent's value (set or not).
func Merge(parent, own Style) Style {
	out := parent
	for bit := Property(1); bit <= propLast; bit <<= 1 {
		if own.set&bit != 0 {
			out.copyProp(bit, &own)
		}
	}
	out.set |= own.set
	return out
}

// Inheritable returns the properties a child inherits when it leaves them
// unset. A child opts out with an explicit value, e.g. Border(false) or
// Width(Auto()).
func (s Style) Inheritable() Style {
	return s.Unset(^inheritedProps)
}

// ComputedStyle is a fully resolved style: every property has a concrete,
// valid value.
type ComputedStyle struct {
	FG, BG   Color
	Emphasis Attribute
	Padding  Edges
	Margin   Edges

	Border          bool
	BorderVariant   BorderVariant
	BorderThickness int
	BorderRadius    bool
	BorderColor     Color

	Width, Height       Dimension
	MinWidth, MinHeight int
	MaxWidth, MaxHeight int // Unbounded when unset

	Display   Display
	Direction Direction
	Justify   Justify
	Align     Align
	Grow      float64
	Shrink    float64
	Basis     Dimension

	Header string
}

func clampFactor(f float64) float64 {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Resolve fills defaults for unset properties and clamps invalid values.
func (s Style) Resolve() ComputedStyle {
	c := ComputedStyle{
		FG:              DefaultColor(),
		BG:              DefaultColor(),
		BorderThickness: 1,
		MaxWidth:        Unbounded,
		MaxHeight:       Unbounded,
		Shrink:          1,
		Basis:           Auto(),
		Width:           Auto(),
		Height:          Auto(),
	}
	if s.Has(PropFG) {
		c.FG = s.fg
	}
	if s.Has(PropBG) {
		c.BG = s.bg
	}
	c.Emphasis = s.emphasis
	c.Padding = s.padding.clamped()
	c.Margin = s.margin.clamped()
	c.Border = s.border
	if s.variant <= VariantRounded {
		c.BorderVariant = s.variant
	}
	if s.Has(PropBorderThickness) {
		c.BorderThickness = min(max(s.thickness, 1), 2)
	}
	c.BorderRadius = s.radius
	c.BorderColor = c.FG
	if s.Has(PropBorderColor) {
		c.BorderColor = s.borderColor
	}
	if s.Has(PropWidth) && s.width.Kind != DimUnset {
		c.Width = s.width
	}
	if s.Has(PropHeight) && s.height.Kind != DimUnset {
		c.Height = s.height
	}
	c.MinWidth = max(s.minWidth, 0)
	c.MinHeight = max(s.minHeight, 0)
	if s.Has(PropMaxWidth) && s.maxWidth >= 0 {
		c.MaxWidth = max(s.maxWidth, c.MinWidth)
	}
	if s.Has(PropMaxHeight) && s.maxHeight >= 0 {
		c.MaxHeight = max(s.maxHeight, c.MinHeight)
	}
	if s.display <= DisplayFlex {
		c.Display = s.display
	}
	if s.direction <= DirectionColumn {
		c.Direction = s.direction
	}
	if s.justify <= JustifySpaceEvenly {
		c.Justify = s.justify
	}
	if s.align <= AlignCenter {
		c.Align = s.align
	}
	c.Grow = clampFactor(s.grow)
	if s.Has(PropShrink) {
		c.Shrink = clampFactor(s.shrink)
	}
	if s.Has(PropBasis) && s.basis.Kind == DimCells {
		c.Basis = s.basis
	}
	c.Header = s.header
	return c
}

// Attrs returns the cell attributes for content drawn by this node.
func (c ComputedStyle) Attrs() Attrs {
	return Attrs{FG: c.FG, BG: c.BG, Attr: c.Emphasis}
}

// OutlineAttrs returns the cell attributes for the node's border and header.
func (c ComputedStyle) OutlineAttrs() Attrs {
	return Attrs{FG: c.BorderColor, BG: c.BG}
}

// BorderInset returns the cells reserved per side for the outline.
func (c ComputedStyle) BorderInset() int {
	if c.Border {
		return 1
	}
	return 0
}

// IsFlex reports whether children are laid out by the flex algorithm.
func (c ComputedStyle) IsFlex() bool {
	return c.Display == DisplayFlex
}
