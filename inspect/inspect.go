// Package inspect renders a laid-out beautty tree as a readable outline:
// one line per node with its kind, rectangle and the layout properties
// that produced it.
package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"beautty"
)

type styles struct {
	kind   lipgloss.Style
	rect   lipgloss.Style
	detail lipgloss.Style
	text   lipgloss.Style
	branch lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		kind:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		rect:   r.NewStyle().Foreground(lipgloss.Color("10")),
		detail: r.NewStyle().Foreground(lipgloss.Color("8")),
		text:   r.NewStyle().Foreground(lipgloss.Color("11")),
		branch: r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Write dumps t to w. Colors are used only when w is a color terminal.
func Write(w io.Writer, t *beautty.Tree) error {
	out := Render(t, lipgloss.NewRenderer(w))
	_, err := io.WriteString(w, out+"\n")
	return err
}

// Render returns the outline of t styled for the given renderer.
func Render(t *beautty.Tree, r *lipgloss.Renderer) string {
	st := newStyles(r)
	root := build(t, t.Root(), st)
	return root.String()
}

func build(t *beautty.Tree, id beautty.NodeID, st styles) *tree.Tree {
	node := tree.Root(label(t, id, st)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(st.branch)
	for ch := range t.Children(id) {
		if t.ChildCount(ch) == 0 {
			node.Child(label(t, ch, st))
			continue
		}
		node.Child(build(t, ch, st))
	}
	return node
}

// label describes one node, e.g.
//
//	box#3 [2,1 40x10] flex column justify=center border=double "Menu"
func label(t *beautty.Tree, id beautty.NodeID, st styles) string {
	c := t.Computed(id)
	r := t.Layout(id)

	var sb strings.Builder
	sb.WriteString(st.kind.Render(fmt.Sprintf("%s#%d", t.Kind(id), id)))
	sb.WriteByte(' ')
	sb.WriteString(st.rect.Render(fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.Width, r.Height)))

	var details []string
	if t.Kind(id) == beautty.NodeText {
		details = append(details, st.text.Render(fmt.Sprintf("%q", t.Text(id))))
	} else if c.IsFlex() {
		details = append(details, "flex "+c.Direction.String())
		if c.Justify != beautty.JustifyFlexStart {
			details = append(details, "justify="+c.Justify.String())
		}
		if c.Align != beautty.AlignStretch {
			details = append(details, "align="+c.Align.String())
		}
	}
	if c.Grow > 0 {
		details = append(details, fmt.Sprintf("grow=%g", c.Grow))
	}
	if c.Border {
		details = append(details, "border="+c.BorderVariant.String())
	}
	if c.Padding != (beautty.Edges{}) {
		details = append(details, fmt.Sprintf("pad=%d,%d,%d,%d", c.Padding.Top, c.Padding.Right, c.Padding.Bottom, c.Padding.Left))
	}
	if c.Margin != (beautty.Edges{}) {
		details = append(details, fmt.Sprintf("margin=%d,%d,%d,%d", c.Margin.Top, c.Margin.Right, c.Margin.Bottom, c.Margin.Left))
	}
	if c.Header != "" {
		details = append(details, fmt.Sprintf("%q", c.Header))
	}
	if len(details) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(st.detail.Render(strings.Join(details, " ")))
	}
	return sb.String()
}
