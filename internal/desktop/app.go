package desktop

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/awsl-project/todo-sticker/internal/config"
	"github.com/awsl-project/todo-sticker/internal/host"
	"golang.org/x/sync/singleflight"
)

// The sticker is always pinned and borderless once setup returns.
const (
	stickerAlwaysOnTop = true
	stickerDecorations = false
)

// App is the sticker shell: it configures the main window at startup and
// serves the window commands afterwards.
type App struct {
	cfg config.Config

	mu  sync.RWMutex
	reg host.Registry

	alwaysOnTop atomic.Bool
	ready       chan struct{}
	readyOnce   sync.Once

	closeGroup singleflight.Group
	commands   *Commands
}

// NewApp 创建桌面壳实例
func NewApp(cfg config.Config) *App {
	a := &App{
		cfg:   cfg,
		ready: make(chan struct{}),
	}
	a.commands = &Commands{app: a}
	return a
}

// Run registers the shell with h and blocks in its event loop.
func Run(h host.Host, app *App) error {
	return h.Run(host.Application{
		Setup:    app.Setup,
		Bind:     []interface{}{app.commands},
		Shutdown: app.Shutdown,
	})
}

// Setup resolves the main window and applies the sticker attributes.
// Any failure aborts startup; earlier mutations are not reverted.
func (a *App) Setup(reg host.Registry) error {
	win, ok := reg.Window(a.cfg.MainWindow)
	if !ok {
		return fmt.Errorf("failed to get main window %q: %w", a.cfg.MainWindow, host.ErrWindowNotFound)
	}

	if err := win.SetAlwaysOnTop(stickerAlwaysOnTop); err != nil {
		return fmt.Errorf("failed to set always on top: %w", err)
	}
	a.alwaysOnTop.Store(stickerAlwaysOnTop)

	if err := win.SetDecorations(stickerDecorations); err != nil {
		return fmt.Errorf("failed to set decorations: %w", err)
	}

	a.mu.Lock()
	a.reg = reg
	a.mu.Unlock()

	log.Printf("[Shell] Window %q pinned and borderless", win.Name())
	a.readyOnce.Do(func() { close(a.ready) })
	return nil
}

// Ready is closed once Setup has succeeded.
func (a *App) Ready() <-chan struct{} {
	return a.ready
}

// Commands returns the object bound to the UI layer.
func (a *App) Commands() *Commands {
	return a.commands
}

// AlwaysOnTop reports the last always-on-top state the host accepted.
func (a *App) AlwaysOnTop() bool {
	return a.alwaysOnTop.Load()
}

// Shutdown runs after the event loop exits.
func (a *App) Shutdown() {
	log.Println("[Shell] Event loop stopped")
}

// ShowWindow brings the main window back to the foreground.
func (a *App) ShowWindow() error {
	win, err := a.mainWindow()
	if err != nil {
		return fmt.Errorf("failed to show window: %w", err)
	}
	if err := win.Show(); err != nil {
		return fmt.Errorf("failed to show window: %w", err)
	}
	return nil
}

// mainWindow resolves the main window at call time. Before Setup has
// succeeded there is no registry and the window counts as not found.
func (a *App) mainWindow() (host.Window, error) {
	a.mu.RLock()
	reg := a.reg
	a.mu.RUnlock()

	if reg == nil {
		return nil, host.ErrWindowNotFound
	}
	win, ok := reg.Window(a.cfg.MainWindow)
	if !ok {
		return nil, host.ErrWindowNotFound
	}
	return win, nil
}
