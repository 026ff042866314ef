package desktop

import (
	"fmt"
	"log"

	"github.com/awsl-project/todo-sticker/internal/host"
)

// Commands is bound to the UI layer; every exported method is invokable
// from the frontend (window.go.desktop.Commands.*). Each method resolves
// the main window when called and keeps no state of its own.
type Commands struct {
	app *App
}

// CloseWindow is the close_window command.
func (c *Commands) CloseWindow() error {
	// UI button and tray item may race; the host sees one close.
	_, err, _ := c.app.closeGroup.Do("close", func() (interface{}, error) {
		win, err := c.app.mainWindow()
		if err != nil {
			return nil, closeError(err)
		}
		return nil, CloseWindow(win)
	})
	if err != nil {
		log.Printf("[Shell] close_window: %v", err)
	}
	return err
}

// SetAlwaysOnTop pins or unpins the main window.
func (c *Commands) SetAlwaysOnTop(on bool) error {
	win, err := c.app.mainWindow()
	if err == nil {
		err = win.SetAlwaysOnTop(on)
	}
	if err != nil {
		log.Printf("[Shell] set_always_on_top(%v): %v", on, err)
		return fmt.Errorf("Failed to set always on top: %w", err)
	}
	c.app.alwaysOnTop.Store(on)
	return nil
}

// AlwaysOnTop reports whether the main window is pinned. The UI reads it
// before toggling since the tray can change the state too.
func (c *Commands) AlwaysOnTop() bool {
	return c.app.AlwaysOnTop()
}

// Minimise minimises the main window.
func (c *Commands) Minimise() error {
	win, err := c.app.mainWindow()
	if err == nil {
		err = win.Minimise()
	}
	if err != nil {
		log.Printf("[Shell] minimise: %v", err)
		return fmt.Errorf("Failed to minimise window: %w", err)
	}
	return nil
}

// ToggleMaximise switches the main window between maximised and normal.
func (c *Commands) ToggleMaximise() error {
	win, err := c.app.mainWindow()
	if err == nil {
		err = win.ToggleMaximise()
	}
	if err != nil {
		log.Printf("[Shell] toggle_maximise: %v", err)
		return fmt.Errorf("Failed to toggle maximise: %w", err)
	}
	return nil
}

// CloseWindow requests closure of win. A host failure is returned as
// "Failed to close window: <host message>".
func CloseWindow(win host.Window) error {
	if err := win.Close(); err != nil {
		return closeError(err)
	}
	return nil
}

func closeError(err error) error {
	return fmt.Errorf("Failed to close window: %w", err)
}
