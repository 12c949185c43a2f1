package beautty

import (
	"errors"
	"slices"
	"testing"
)

func TestBuilderNesting(t *testing.T) {
	tree := NewTree(Style{}.Column())
	b := NewBuilder(tree)

	var header, body, left, right, footer NodeID
	header = b.Text("header", Style{})
	body = b.Box(Style{}.Row(), func() {
		if b.Parent() == tree.Root() {
			t.Error("Parent inside Box should be the new box")
		}
		left = b.Text("left", Style{})
		right = b.Box(Style{}, nil)
	})
	footer = b.Text("footer", Style{})

	if err := b.Err(); err != nil {
		t.Fatalf("Err = %v", err)
	}
	if b.Parent() != tree.Root() {
		t.Error("Parent should return to the root after Box")
	}
	if got := slices.Collect(tree.Children(tree.Root())); !slices.Equal(got, []NodeID{header, body, footer}) {
		t.Errorf("root children = %v", got)
	}
	if got := slices.Collect(tree.Children(body)); !slices.Equal(got, []NodeID{left, right}) {
		t.Errorf("body children = %v", got)
	}
	if tree.Kind(left) != NodeText || tree.Kind(right) != NodeBox {
		t.Error("wrong node kinds")
	}
}

func TestBuilderAt(t *testing.T) {
	tree := NewTree(Style{})
	list := tree.NewBox(Style{})
	if err := tree.AddChild(tree.Root(), list); err != nil {
		t.Fatal(err)
	}

	b := NewBuilderAt(tree, list)
	item := b.Text("item", Style{})
	if tree.Parent(item) != list {
		t.Errorf("Parent(item) = %d, want %d", tree.Parent(item), list)
	}
	if b.Tree() != tree {
		t.Error("Tree() returned another tree")
	}
}

func TestBuilderKeepsFirstError(t *testing.T) {
	tree := NewTree(Style{})
	leaf := tree.NewText("leaf", Style{})

	b := NewBuilderAt(tree, leaf)
	b.Text("a", Style{})
	b.Box(Style{}, nil)

	if err := b.Err(); !errors.Is(err, ErrTextChildren) {
		t.Errorf("Err = %v, want ErrTextChildren", err)
	}
}
