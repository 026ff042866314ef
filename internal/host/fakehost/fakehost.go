// Package fakehost is an in-memory host.Host used by tests.
package fakehost

import (
	"sync"

	"github.com/awsl-project/todo-sticker/internal/host"
)

var (
	_ host.Host     = (*Host)(nil)
	_ host.Registry = (*Host)(nil)
	_ host.Window   = (*Window)(nil)
)

// Window is a fake native window. Fields ending in Err make the matching
// operation fail with that error.
type Window struct {
	mu sync.Mutex

	name        string
	alwaysOnTop bool
	decorations bool
	visible     bool
	minimised   bool
	maximised   bool
	closed      bool
	calls       []string

	AlwaysOnTopErr    error
	DecorationsErr    error
	ShowErr           error
	MinimiseErr       error
	ToggleMaximiseErr error
	CloseErr          error
}

// NewWindow returns a decorated, hidden, not-on-top window.
func NewWindow(name string) *Window {
	return &Window{name: name, decorations: true}
}

func (w *Window) Name() string { return w.name }

func (w *Window) record(call string) {
	w.calls = append(w.calls, call)
}

func (w *Window) SetAlwaysOnTop(on bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.record("SetAlwaysOnTop")
	if w.closed {
		return host.ErrWindowGone
	}
	if w.AlwaysOnTopErr != nil {
		return w.AlwaysOnTopErr
	}
	w.alwaysOnTop = on
	return nil
}

func (w *Window) SetDecorations(visible bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.record("SetDecorations")
	if w.closed {
		return host.ErrWindowGone
	}
	if w.DecorationsErr != nil {
		return w.DecorationsErr
	}
	w.decorations = visible
	return nil
}

func (w *Window) Show() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.record("Show")
	if w.closed {
		return host.ErrWindowGone
	}
	if w.ShowErr != nil {
		return w.ShowErr
	}
	w.visible = true
	w.minimised = false
	return nil
}

func (w *Window) Minimise() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.record("Minimise")
	if w.closed {
		return host.ErrWindowGone
	}
	if w.MinimiseErr != nil {
		return w.MinimiseErr
	}
	w.minimised = true
	return nil
}

func (w *Window) ToggleMaximise() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.record("ToggleMaximise")
	if w.closed {
		return host.ErrWindowGone
	}
	if w.ToggleMaximiseErr != nil {
		return w.ToggleMaximiseErr
	}
	w.maximised = !w.maximised
	return nil
}

func (w *Window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.record("Close")
	if w.closed {
		return host.ErrWindowGone
	}
	if w.CloseErr != nil {
		return w.CloseErr
	}
	w.closed = true
	w.visible = false
	return nil
}

// State is a snapshot of a fake window.
type State struct {
	AlwaysOnTop bool
	Decorations bool
	Visible     bool
	Minimised   bool
	Maximised   bool
	Closed      bool
}

func (w *Window) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		AlwaysOnTop: w.alwaysOnTop,
		Decorations: w.decorations,
		Visible:     w.visible,
		Minimised:   w.minimised,
		Maximised:   w.maximised,
		Closed:      w.closed,
	}
}

// Calls returns the operations invoked on the window, in order.
func (w *Window) Calls() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.calls...)
}

// Host is a fake event loop holding a fixed set of windows.
type Host struct {
	mu      sync.Mutex
	windows map[string]*Window
	bound   []interface{}
	entered bool

	// RunErr is returned by Run after a successful setup, standing in for
	// an event loop failure.
	RunErr error
	// Loop, if set, runs in place of the event loop after setup succeeds.
	Loop func()
}

// New returns a host serving the given windows.
func New(windows ...*Window) *Host {
	h := &Host{windows: make(map[string]*Window)}
	for _, w := range windows {
		h.windows[w.name] = w
	}
	return h
}

func (h *Host) Window(name string) (host.Window, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.windows[name]
	if !ok {
		return nil, false
	}
	return w, true
}

func (h *Host) Run(app host.Application) error {
	h.mu.Lock()
	h.bound = append([]interface{}(nil), app.Bind...)
	h.mu.Unlock()

	if app.Setup != nil {
		if err := app.Setup(h); err != nil {
			return err
		}
	}

	h.mu.Lock()
	h.entered = true
	h.mu.Unlock()

	if h.Loop != nil {
		h.Loop()
	}
	if app.Shutdown != nil {
		app.Shutdown()
	}
	return h.RunErr
}

// LoopEntered reports whether Run got past setup.
func (h *Host) LoopEntered() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entered
}

// Bound returns the command objects registered by the last Run.
func (h *Host) Bound() []interface{} {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]interface{}(nil), h.bound...)
}
