package beautty

import (
	"errors"
	"fmt"
	"iter"
)

// Tree mutation errors. They are returned wrapped with the offending handles.
var (
	ErrInvalidNode  = errors.New("invalid node")
	ErrCycle        = errors.New("child is the parent or one of its ancestors")
	ErrAttached     = errors.New("child already has a parent")
	ErrTextChildren = errors.New("text nodes cannot have children")
	ErrNotChild     = errors.New("node is not a child of parent")
)

// NodeID is a stable handle to a node in a Tree.
type NodeID int32

// NoNode is the parent of the root and of detached nodes.
const NoNode NodeID = -1

// NodeKind identifies the type of node
type NodeKind uint8

const (
	NodeBox NodeKind = iota
	NodeText
)

func (k NodeKind) String() string {
	if k == NodeText {
		return "text"
	}
	return "box"
}

// Rect is an absolute rectangle in root coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

type node struct {
	kind NodeKind

	parent     NodeID
	firstChild NodeID
	lastChild  NodeID
	nextSib    NodeID
	children   int

	text     string
	style    Style
	cascaded Style
	computed ComputedStyle

	// Written only by the layout engine.
	rect Rect
}

// Tree is an arena of nodes addressed by NodeID. Nodes are never freed;
// a removed node stays valid and can be attached again.
//
// A Tree is not safe for concurrent use. The App loop owns it.
type Tree struct {
	nodes []node
	root  NodeID
	dirty bool
}

// NewTree creates a tree whose root is a box with the given style.
func NewTree(rootStyle Style) *Tree {
	t := &Tree{nodes: make([]node, 0, 64)}
	t.root = t.add(NodeBox, "", rootStyle)
	return t
}

// Root returns the root handle.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of nodes ever created, attached or not.
func (t *Tree) Len() int { return len(t.nodes) }

func (t *Tree) add(kind NodeKind, text string, style Style) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		kind:       kind,
		parent:     NoNode,
		firstChild: NoNode,
		lastChild:  NoNode,
		nextSib:    NoNode,
		text:       text,
		style:      style,
		cascaded:   style,
		computed:   style.Resolve(),
	})
	t.dirty = true
	return id
}

// NewBox creates a detached container node.
func (t *Tree) NewBox(style Style) NodeID {
	return t.add(NodeBox, "", style)
}

// NewText creates a detached text leaf.
func (t *Tree) NewText(text string, style Style) NodeID {
	return t.add(NodeText, text, style)
}

// Valid reports whether id refers to a node of this tree.
func (t *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

func (t *Tree) get(id NodeID) *node {
	return &t.nodes[id]
}

// AddChild appends child to parent's children.
func (t *Tree) AddChild(parent, child NodeID) error {
	if !t.Valid(parent) || !t.Valid(child) {
		return fmt.Errorf("add child %d to %d: %w", child, parent, ErrInvalidNode)
	}
	p := t.get(parent)
	if p.kind == NodeText {
		return fmt.Errorf("add child %d to %d: %w", child, parent, ErrTextChildren)
	}
	for a := parent; a != NoNode; a = t.nodes[a].parent {
		if a == child {
			return fmt.Errorf("add child %d to %d: %w", child, parent, ErrCycle)
		}
	}
	if child == t.root || t.nodes[child].parent != NoNode {
		return fmt.Errorf("add child %d to %d: %w", child, parent, ErrAttached)
	}

	c := t.get(child)
	c.parent = parent
	c.nextSib = NoNode
	if p.firstChild == NoNode {
		p.firstChild = child
	} else {
		t.nodes[p.lastChild].nextSib = child
	}
	p.lastChild = child
	p.children++
	t.dirty = true
	return nil
}

// RemoveChild detaches child from parent. The child keeps its own subtree
// and may be attached again.
func (t *Tree) RemoveChild(parent, child NodeID) error {
	if !t.Valid(parent) || !t.Valid(child) {
		return fmt.Errorf("remove child %d from %d: %w", child, parent, ErrInvalidNode)
	}
	if t.nodes[child].parent != parent {
		return fmt.Errorf("remove child %d from %d: %w", child, parent, ErrNotChild)
	}

	p := t.get(parent)
	if p.firstChild == child {
		p.firstChild = t.nodes[child].nextSib
		if p.firstChild == NoNode {
			p.lastChild = NoNode
		}
	} else {
		prev := p.firstChild
		for prev != NoNode && t.nodes[prev].nextSib != child {
			prev = t.nodes[prev].nextSib
		}
		if prev != NoNode {
			t.nodes[prev].nextSib = t.nodes[child].nextSib
			if p.lastChild == child {
				p.lastChild = prev
			}
		}
	}
	p.children--

	c := t.get(child)
	c.parent = NoNode
	c.nextSib = NoNode
	c.rect = Rect{}
	t.dirty = true
	return nil
}

// Parent returns the parent handle, or NoNode for the root, detached nodes
// and invalid handles.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.Valid(id) {
		return NoNode
	}
	return t.nodes[id].parent
}

// Children returns an iterator over a node's children in order.
func (t *Tree) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if !t.Valid(id) {
			return
		}
		for c := t.nodes[id].firstChild; c != NoNode; c = t.nodes[c].nextSib {
			if !yield(c) {
				return
			}
		}
	}
}

// ChildCount returns the number of children of id.
func (t *Tree) ChildCount(id NodeID) int {
	if !t.Valid(id) {
		return 0
	}
	return t.nodes[id].children
}

// Walk returns a preorder iterator over id and its descendants together
// with their depth relative to id.
func (t *Tree) Walk(id NodeID) iter.Seq2[NodeID, int] {
	return func(yield func(NodeID, int) bool) {
		if t.Valid(id) {
			t.walk(id, 0, yield)
		}
	}
}

func (t *Tree) walk(id NodeID, depth int, yield func(NodeID, int) bool) bool {
	if !yield(id, depth) {
		return false
	}
	for c := t.nodes[id].firstChild; c != NoNode; c = t.nodes[c].nextSib {
		if !t.walk(c, depth+1, yield) {
			return false
		}
	}
	return true
}

// Attached reports whether id is the root or reachable from it.
func (t *Tree) Attached(id NodeID) bool {
	for a := id; t.Valid(a); a = t.nodes[a].parent {
		if a == t.root {
			return true
		}
	}
	return false
}

// Kind returns the node kind.
func (t *Tree) Kind(id NodeID) NodeKind {
	if !t.Valid(id) {
		return NodeBox
	}
	return t.nodes[id].kind
}

// Style returns the declared style.
func (t *Tree) Style(id NodeID) Style {
	if !t.Valid(id) {
		return Style{}
	}
	return t.nodes[id].style
}

// SetStyle replaces the declared style.
func (t *Tree) SetStyle(id NodeID, s Style) error {
	if !t.Valid(id) {
		return fmt.Errorf("set style on %d: %w", id, ErrInvalidNode)
	}
	t.nodes[id].style = s
	t.dirty = true
	return nil
}

// Text returns the content of a text node.
func (t *Tree) Text(id NodeID) string {
	if !t.Valid(id) {
		return ""
	}
	return t.nodes[id].text
}

// SetText replaces the content of a text node.
func (t *Tree) SetText(id NodeID, text string) error {
	if !t.Valid(id) {
		return fmt.Errorf("set text on %d: %w", id, ErrInvalidNode)
	}
	t.nodes[id].text = text
	t.dirty = true
	return nil
}

// Layout returns the rectangle computed by the last layout pass.
func (t *Tree) Layout(id NodeID) Rect {
	if !t.Valid(id) {
		return Rect{}
	}
	return t.nodes[id].rect
}

// Cascaded returns the declared style merged with the inherited
// presentation of the ancestors, as of the last layout pass.
func (t *Tree) Cascaded(id NodeID) Style {
	if !t.Valid(id) {
		return Style{}
	}
	return t.nodes[id].cascaded
}

// Computed returns the resolved style as of the last layout pass.
func (t *Tree) Computed(id NodeID) ComputedStyle {
	if !t.Valid(id) {
		return Style{}.Resolve()
	}
	return t.nodes[id].computed
}

// NeedsLayout reports whether the tree changed since the last layout pass.
func (t *Tree) NeedsLayout() bool { return t.dirty }

// Invalidate forces the next NeedsLayout to report true.
func (t *Tree) Invalidate() { t.dirty = true }

// cascade recomputes cascaded and computed styles for id's subtree.
func (t *Tree) cascade(id NodeID, inherited Style) {
	n := t.get(id)
	n.cascaded = Merge(inherited, n.style)
	n.computed = n.cascaded.Resolve()
	next := n.cascaded.Inheritable()
	for c := n.firstChild; c != NoNode; c = t.nodes[c].nextSib {
		t.cascade(c, next)
	}
}
