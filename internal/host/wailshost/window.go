package wailshost

import (
	"context"
	"fmt"

	"github.com/awsl-project/todo-sticker/internal/host"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var (
	_ host.Host     = (*Host)(nil)
	_ host.Registry = (*Host)(nil)
	_ host.Window   = (*window)(nil)
)

// window is the Wails main window. The Wails runtime exits the process when
// handed a context without a frontend, so every call checks first.
type window struct {
	h    *Host
	name string
}

func (w *window) Name() string { return w.name }

func (w *window) runtimeContext() (context.Context, error) {
	ctx := w.h.context()
	if ctx == nil || w.h.down.Load() || ctx.Err() != nil {
		return nil, host.ErrWindowGone
	}
	if ctx.Value("frontend") == nil {
		return nil, host.ErrWindowGone
	}
	return ctx, nil
}

func (w *window) SetAlwaysOnTop(on bool) error {
	ctx, err := w.runtimeContext()
	if err != nil {
		return err
	}
	runtime.WindowSetAlwaysOnTop(ctx, on)
	return nil
}

// SetDecorations only accepts the borderless state the window was created
// with; Wails v2 cannot add or remove the frame of a live window.
func (w *window) SetDecorations(visible bool) error {
	if visible {
		return fmt.Errorf("%w: decorations are fixed at window creation", host.ErrUnsupported)
	}
	_, err := w.runtimeContext()
	return err
}

func (w *window) Show() error {
	ctx, err := w.runtimeContext()
	if err != nil {
		return err
	}
	runtime.WindowShow(ctx)
	runtime.WindowUnminimise(ctx)
	return nil
}

func (w *window) Minimise() error {
	ctx, err := w.runtimeContext()
	if err != nil {
		return err
	}
	runtime.WindowMinimise(ctx)
	return nil
}

func (w *window) ToggleMaximise() error {
	ctx, err := w.runtimeContext()
	if err != nil {
		return err
	}
	runtime.WindowToggleMaximise(ctx)
	return nil
}

// Close quits the application: the main window is the only window.
func (w *window) Close() error {
	ctx, err := w.runtimeContext()
	if err != nil {
		return err
	}
	runtime.Quit(ctx)
	return nil
}
