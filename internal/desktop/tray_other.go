//go:build !windows

package desktop

// TrayManager stub for non-Windows platforms
type TrayManager struct{}

// NewTrayManager creates a no-op tray manager
func NewTrayManager(app *App) *TrayManager {
	return &TrayManager{}
}

// Start is a no-op on non-Windows platforms
func (t *TrayManager) Start() {}

// Stop is a no-op on non-Windows platforms
func (t *TrayManager) Stop() {}
