// Package teaview hosts a beautty tree inside a bubbletea program, for
// applications that already run on bubbletea's event loop.
package teaview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"beautty"
)

// Model is a tea.Model that lays out and draws a tree on every View.
type Model struct {
	tree   *beautty.Tree
	engine beautty.Engine
	keys   map[string]func()
	buf    *beautty.Buffer

	width, height int
}

// Option configures a Model.
type Option func(*Model)

// WithEngine sets the layout engine.
func WithEngine(e beautty.Engine) Option {
	return func(m *Model) { m.engine = e }
}

// WithKeys binds key names (bubbletea's KeyMsg.String form) to handlers
// that may mutate the tree.
func WithKeys(keys map[string]func()) Option {
	return func(m *Model) {
		for k, fn := range keys {
			m.keys[k] = fn
		}
	}
}

// New returns a model showing t. The size is unknown until the first
// tea.WindowSizeMsg; until then it assumes 80x24.
func New(t *beautty.Tree, opts ...Option) Model {
	m := Model{
		tree:   t,
		keys:   make(map[string]func()),
		buf:    beautty.NewBuffer(80, 24),
		width:  80,
		height: 24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.buf.Resize(m.width, m.height)
		m.tree.Invalidate()
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "Q", "ctrl+c":
			return m, tea.Quit
		default:
			if fn, ok := m.keys[key]; ok {
				fn()
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.tree.NeedsLayout() {
		m.engine.Calculate(m.tree, m.width, m.height)
	}
	beautty.Draw(m.tree, m.buf)
	return strings.TrimSuffix(m.buf.ANSI(), "\n")
}

// Run starts a full-screen bubbletea program for t and blocks until it
// quits.
func Run(t *beautty.Tree, opts ...Option) error {
	_, err := tea.NewProgram(New(t, opts...), tea.WithAltScreen()).Run()
	return err
}
