package beautty

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// ErrRunning is returned by Run when the App is already running.
var ErrRunning = errors.New("app is already running")

// App runs the event loop: it owns the tree and the screen, re-lays-out on
// resize and after input, and renders a frame after every event.
//
// Only Post and Quit may be called from other goroutines. Everything else,
// including tree mutation, happens on the loop: in key handlers or in
// functions passed to Post.
type App struct {
	term   Terminal
	tree   *Tree
	screen *Screen
	engine Engine
	logger *zap.Logger

	handlers map[string]func()

	mu    sync.Mutex
	queue []func()

	wake          chan struct{}
	quit          chan struct{}
	quitOnce      sync.Once
	resizePending atomic.Bool
	running       atomic.Bool
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithEngine sets the layout engine.
func WithEngine(e Engine) Option {
	return func(a *App) { a.engine = e }
}

// NewApp creates an application that shows tree on term.
func NewApp(term Terminal, tree *Tree, opts ...Option) *App {
	a := &App{
		term:     term,
		tree:     tree,
		logger:   zap.NewNop(),
		handlers: make(map[string]func()),
		wake:     make(chan struct{}, 1),
		quit:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetEngine replaces the layout engine and lays the tree out again on the
// next frame. Call it on the loop, e.g. from Post.
func (a *App) SetEngine(e Engine) {
	a.engine = e
	a.tree.Invalidate()
}

// Engine returns the layout engine in use.
func (a *App) Engine() Engine { return a.engine }

// Tree returns the tree shown by the App.
func (a *App) Tree() *Tree { return a.tree }

// Screen returns the screen, or nil before Run.
func (a *App) Screen() *Screen { return a.screen }

// OnKey binds fn to a key name as produced by Key.String ("x", "enter",
// "ctrl+r"). Quit keys cannot be rebound.
func (a *App) OnKey(key string, fn func()) *App {
	a.handlers[key] = fn
	return a
}

// Post queues fn to run on the loop before the next frame. Safe to call
// from any goroutine.
func (a *App) Post(fn func()) {
	a.mu.Lock()
	a.queue = append(a.queue, fn)
	a.mu.Unlock()
	a.poke()
}

// Quit stops the loop after the current event. Safe to call from any
// goroutine and more than once.
func (a *App) Quit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

func (a *App) poke() {
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

func (a *App) quitting() bool {
	select {
	case <-a.quit:
		return true
	default:
		return false
	}
}

// Run takes over the terminal and blocks until a quit key or Quit. The
// terminal is restored on every return path. An App runs once.
func (a *App) Run() (err error) {
	if !a.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer a.running.Store(false)
	defer a.Quit()

	cols, rows, serr := a.term.Size()
	if serr != nil {
		a.logger.Warn("terminal size unavailable, using fallback",
			zap.Int("cols", cols), zap.Int("rows", rows), zap.Error(serr))
	}
	a.screen = NewScreen(a.term, cols, rows)

	if err := a.term.EnableRawMode(); err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		if rerr := a.restore(); rerr != nil {
			a.logger.Error("terminal restore failed", zap.Error(rerr))
			err = errors.Join(err, rerr)
		}
	}()

	if _, err := io.WriteString(a.term, seqEnterAltScreen+seqClearScreen+seqCursorHome+seqHideCursor); err != nil {
		return fmt.Errorf("failed to enter alternate screen: %w", err)
	}

	resize := make(chan struct{}, 1)
	a.term.NotifyResize(resize)
	defer a.term.StopResize()
	go func() {
		for {
			select {
			case <-resize:
				a.resizePending.Store(true)
				a.poke()
			case <-a.quit:
				return
			}
		}
	}()

	keys := make(chan Key)
	readErr := make(chan error, 1)
	go a.readKeys(keys, readErr)

	a.tree.Invalidate()
	a.frame()

	for {
		select {
		case k := <-keys:
			a.handleKey(k)
		case <-a.wake:
		case rerr := <-readErr:
			if errors.Is(rerr, io.EOF) || a.quitting() {
				return nil
			}
			a.logger.Error("key reader stopped", zap.Error(rerr))
			return fmt.Errorf("failed to read key: %w", rerr)
		case <-a.quit:
			return nil
		}

		a.runPosted()
		if a.quitting() {
			return nil
		}
		if a.resizePending.Swap(false) {
			a.resize()
		}
		a.frame()
	}
}

// readKeys forwards decoded keys to the loop until the reader fails or the
// App quits.
func (a *App) readKeys(keys chan<- Key, errs chan<- error) {
	for {
		k, err := a.term.ReadKey()
		if err != nil {
			errs <- err
			return
		}
		select {
		case keys <- k:
		case <-a.quit:
			return
		}
	}
}

func (a *App) handleKey(k Key) {
	if k.IsQuit() {
		a.logger.Debug("quit key", zap.Stringer("key", k))
		a.Quit()
		return
	}
	if fn, ok := a.handlers[k.String()]; ok {
		fn()
	}
}

func (a *App) runPosted() {
	a.mu.Lock()
	queue := a.queue
	a.queue = nil
	a.mu.Unlock()

	for _, fn := range queue {
		a.runTask(fn)
	}
}

func (a *App) runTask(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("posted task panicked", zap.Any("panic", r))
		}
	}()
	fn()
}

func (a *App) resize() {
	cols, rows, err := a.term.Size()
	if err != nil {
		a.logger.Warn("terminal size unavailable, using fallback", zap.Error(err))
	}
	a.logger.Debug("resize", zap.Int("cols", cols), zap.Int("rows", rows))
	a.screen.Resize(cols, rows)
	a.screen.Invalidate()
	a.tree.Invalidate()
}

// frame lays out the tree when it changed and renders it.
func (a *App) frame() {
	if a.tree.NeedsLayout() {
		a.engine.Calculate(a.tree, a.screen.Width(), a.screen.Height())
	}
	n, err := Render(a.tree, a.screen)
	if err != nil {
		a.logger.Error("render failed", zap.Error(err))
		return
	}
	a.logger.Debug("frame", zap.Int("cells", n))
}

// restore undoes everything Run did to the terminal. Every step is
// attempted even when an earlier one fails.
func (a *App) restore() error {
	var errs []error
	for _, seq := range []string{seqResetAttrs, seqShowCursor, seqLeaveAltScreen} {
		if _, err := io.WriteString(a.term, seq); err != nil {
			errs = append(errs, fmt.Errorf("failed to write %q: %w", seq, err))
		}
	}
	if err := a.term.DisableRawMode(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
