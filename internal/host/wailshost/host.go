// Package wailshost runs the shell inside a Wails v2 application.
package wailshost

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/awsl-project/todo-sticker/internal/config"
	"github.com/awsl-project/todo-sticker/internal/host"
	"github.com/awsl-project/todo-sticker/internal/version"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Replaced in tests; the real runtime needs a live frontend.
var (
	quitApp    = runtime.Quit
	showWindow = runtime.WindowShow
)

// Host is a host.Host backed by Wails. Wails v2 owns exactly one window,
// registered under cfg.MainWindow.
type Host struct {
	cfg    config.Config
	assets fs.FS

	mu       sync.Mutex
	ctx      context.Context
	setupErr error

	// set once the Wails runtime has shut down
	down atomic.Bool
}

// New returns a host serving assets as the frontend.
func New(cfg config.Config, assets fs.FS) *Host {
	return &Host{cfg: cfg, assets: assets}
}

// Run starts Wails and blocks until the application quits. The window is
// created hidden and only shown once app.Setup has succeeded; on setup
// failure the application quits and Run returns the setup error.
func (h *Host) Run(app host.Application) error {
	level, err := logger.StringToLogLevel(strings.ToLower(h.cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	opts := h.options(level)
	opts.Bind = app.Bind
	opts.OnStartup = func(ctx context.Context) { h.startup(ctx, app) }
	opts.OnShutdown = func(ctx context.Context) { h.shutdown(app) }

	runErr := wails.Run(opts)
	if err := h.SetupErr(); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("wails run: %w", runErr)
	}
	return nil
}

// startup runs the setup hook once Wails has a runtime context. The window
// stays hidden unless setup succeeds.
func (h *Host) startup(ctx context.Context, app host.Application) {
	h.setContext(ctx)
	if app.Setup != nil {
		if err := app.Setup(h); err != nil {
			log.Printf("[Host] Setup failed: %v", err)
			h.setSetupErr(err)
			quitApp(ctx)
			return
		}
	}
	showWindow(ctx)
}

// shutdown marks the window gone. The shell's shutdown hook only runs for a
// loop that setup let start.
func (h *Host) shutdown(app host.Application) {
	h.down.Store(true)
	if h.SetupErr() == nil && app.Shutdown != nil {
		app.Shutdown()
	}
}

// options builds the Wails application options without lifecycle hooks.
func (h *Host) options(level logger.LogLevel) *options.App {
	cfg := h.cfg
	// Wails v2 fixes the frame at creation; the sticker is always borderless.
	frameless := true

	return &options.App{
		Title:       cfg.Title,
		Width:       cfg.Width,
		Height:      cfg.Height,
		MinWidth:    cfg.MinWidth,
		MinHeight:   cfg.MinHeight,
		StartHidden: true,
		Frameless:   frameless,
		AssetServer: &assetserver.Options{
			Assets: h.assets,
		},
		BackgroundColour: &options.RGBA{
			R: cfg.Background.R,
			G: cfg.Background.G,
			B: cfg.Background.B,
			A: cfg.Background.A,
		},
		Logger:             logger.NewDefaultLogger(),
		LogLevel:           level,
		LogLevelProduction: level,
		Windows: &windows.Options{
			WebviewIsTransparent:              false,
			WindowIsTranslucent:               false,
			DisableFramelessWindowDecorations: frameless,
		},
		Mac: &mac.Options{
			TitleBar: mac.TitleBarHiddenInset(),
			About: &mac.AboutInfo{
				Title:   cfg.AppName,
				Message: version.Full(),
			},
		},
		Linux: &linux.Options{
			ProgramName: cfg.AppName,
		},
	}
}

// Window implements host.Registry. Only the main window exists, and only
// after Wails has handed over its runtime context.
func (h *Host) Window(name string) (host.Window, bool) {
	if name != h.cfg.MainWindow || h.context() == nil {
		return nil, false
	}
	return &window{h: h, name: name}, true
}

// SetupErr returns the error recorded by a failed setup hook.
func (h *Host) SetupErr() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.setupErr
}

func (h *Host) setSetupErr(err error) {
	h.mu.Lock()
	h.setupErr = err
	h.mu.Unlock()
}

func (h *Host) context() context.Context {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ctx
}

func (h *Host) setContext(ctx context.Context) {
	h.mu.Lock()
	h.ctx = ctx
	h.mu.Unlock()
}
