// Package examples holds the demo trees shown by the beautty CLI.
//
// Every styled node is built from a named default that the config style
// sheet may override, so a reloaded config can restyle a running demo.
package examples

import (
	"fmt"
	"slices"

	"beautty"
)

// Sheet looks up style overrides by name.
type Sheet interface {
	Lookup(name string) (beautty.Style, bool)
}

type noSheet struct{}

func (noSheet) Lookup(string) (beautty.Style, bool) { return beautty.Style{}, false }

// Example describes one demo.
type Example struct {
	Name        string
	Description string
	root        beautty.Style
	build       func(d *Demo, b *beautty.Builder)
}

// Demo is a built example: its tree plus the keys it handles.
type Demo struct {
	Tree *beautty.Tree
	Keys map[string]func()

	sheet     Sheet
	named     []namedNode
	onRestyle func()
}

type namedNode struct {
	id   beautty.NodeID
	name string
	def  beautty.Style
}

var column = beautty.Style{}.Column()

// plain opts a node out of the border and size its parent would pass down.
var plain = beautty.Style{}.Border(false).Width(beautty.Auto()).Height(beautty.Auto())

var registry = []Example{
	{"hello", "centered greeting in a rounded box",
		column.Justify(beautty.JustifyCenter).Align(beautty.AlignCenter), buildHello},
	{"flexbox", "header, sidebar, growing content and footer",
		column.Background(beautty.Black), buildFlexbox},
	{"kanban", "three-column board; arrows move, space picks, enter drops",
		column.Background(beautty.Black), buildKanban},
	{"justify", "every justify-content and align-items mode side by side", column, buildJustify},
}

// All returns every example in display order.
func All() []Example {
	return slices.Clone(registry)
}

// Lookup finds an example by name.
func Lookup(name string) (Example, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e, true
		}
	}
	return Example{}, false
}

// Names returns the example names.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.Name
	}
	return names
}

// New builds the example. sheet may be nil.
func (e Example) New(sheet Sheet) (*Demo, error) {
	if sheet == nil {
		sheet = noSheet{}
	}
	d := &Demo{sheet: sheet, Keys: make(map[string]func())}
	d.Tree = beautty.NewTree(d.style("root", e.root))
	d.named = append(d.named, namedNode{d.Tree.Root(), "root", e.root})

	b := beautty.NewBuilder(d.Tree)
	e.build(d, b)
	if err := b.Err(); err != nil {
		return nil, fmt.Errorf("building %s: %w", e.Name, err)
	}
	return d, nil
}

// style returns def with the sheet's override for name merged on top.
func (d *Demo) style(name string, def beautty.Style) beautty.Style {
	if s, ok := d.sheet.Lookup(name); ok {
		return beautty.Merge(def, s)
	}
	return def
}

func (d *Demo) box(b *beautty.Builder, name string, def beautty.Style, fn func()) beautty.NodeID {
	id := b.Box(d.style(name, def), fn)
	d.named = append(d.named, namedNode{id, name, def})
	return id
}

func (d *Demo) text(b *beautty.Builder, name, text string, def beautty.Style) beautty.NodeID {
	id := b.Text(text, d.style(name, def))
	d.named = append(d.named, namedNode{id, name, def})
	return id
}

// Restyle reapplies every named style from a new sheet.
func (d *Demo) Restyle(sheet Sheet) {
	if sheet == nil {
		sheet = noSheet{}
	}
	d.sheet = sheet
	for _, n := range d.named {
		_ = d.Tree.SetStyle(n.id, d.style(n.name, n.def))
	}
	if d.onRestyle != nil {
		d.onRestyle()
	}
}
