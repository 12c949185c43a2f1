package beautty

// Builder constructs a subtree declaratively. It keeps its own parent stack,
// so nested Box calls attach to the enclosing box:
//
//	b := NewBuilder(tree)
//	b.Box(Style{}.Row(), func() {
//		b.Text("left", Style{})
//		b.Text("right", Style{}.Grow(1))
//	})
//
// A Builder is tied to one tree and must not be shared between goroutines.
type Builder struct {
	tree  *Tree
	stack []NodeID
	err   error
}

// NewBuilder returns a builder that attaches top-level nodes to the root.
func NewBuilder(t *Tree) *Builder {
	return NewBuilderAt(t, t.Root())
}

// NewBuilderAt returns a builder that attaches top-level nodes to parent.
func NewBuilderAt(t *Tree, parent NodeID) *Builder {
	stack := make([]NodeID, 1, 16)
	stack[0] = parent
	return &Builder{tree: t, stack: stack}
}

// Tree returns the tree being built.
func (b *Builder) Tree() *Tree { return b.tree }

// Parent returns the node new nodes are currently attached to.
func (b *Builder) Parent() NodeID { return b.stack[len(b.stack)-1] }

func (b *Builder) attach(id NodeID) {
	if err := b.tree.AddChild(b.Parent(), id); err != nil && b.err == nil {
		b.err = err
	}
}

// Box creates a container, attaches it to the current parent and runs fn
// with the new box as the current parent. fn may be nil.
func (b *Builder) Box(style Style, fn func()) NodeID {
	id := b.tree.NewBox(style)
	b.attach(id)
	if fn != nil {
		b.stack = append(b.stack, id)
		fn()
		b.stack = b.stack[:len(b.stack)-1]
	}
	return id
}

// Text creates a text leaf under the current parent.
func (b *Builder) Text(text string, style Style) NodeID {
	id := b.tree.NewText(text, style)
	b.attach(id)
	return id
}

// Err returns the first attach error, if any.
func (b *Builder) Err() error { return b.err }
