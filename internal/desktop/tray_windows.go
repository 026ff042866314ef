//go:build windows

package desktop

import (
	_ "embed"
	"log"

	"github.com/awsl-project/todo-sticker/internal/version"
	"github.com/getlantern/systray"
)

//go:embed icon.ico
var iconData []byte

// TrayManager 管理系统托盘
type TrayManager struct {
	app  *App
	gate trayGate

	menuShow  *systray.MenuItem
	menuPin   *systray.MenuItem
	menuClose *systray.MenuItem
}

// NewTrayManager 创建托盘管理器
func NewTrayManager(app *App) *TrayManager {
	return &TrayManager{app: app}
}

// Start 启动托盘，阻塞直到托盘退出。Stop 之后调用不会启动托盘
func (t *TrayManager) Start() {
	if !t.gate.claimStart() {
		return
	}
	systray.Run(t.onReady, t.onExit)
}

// Stop 退出托盘
func (t *TrayManager) Stop() {
	if t.gate.claimStop() {
		systray.Quit()
	}
}

func (t *TrayManager) onReady() {
	log.Println("[Tray] Initializing system tray...")

	systray.SetIcon(iconData)
	systray.SetTitle(t.app.cfg.AppName)
	systray.SetTooltip(t.app.cfg.Title + " " + version.Info())

	t.menuShow = systray.AddMenuItem("Show window", "Bring the sticker to the front")
	t.menuPin = systray.AddMenuItemCheckbox("Always on top", "Keep the sticker above other windows", t.app.AlwaysOnTop())
	systray.AddSeparator()
	t.menuClose = systray.AddMenuItem("Close", "Close the sticker")

	go t.handleMenuEvents()
}

func (t *TrayManager) onExit() {
	log.Println("[Tray] System tray exited")
}

func (t *TrayManager) handleMenuEvents() {
	for {
		select {
		case <-t.menuShow.ClickedCh:
			if err := t.app.ShowWindow(); err != nil {
				log.Printf("[Tray] %v", err)
			}

		case <-t.menuPin.ClickedCh:
			on := !t.app.AlwaysOnTop()
			if err := t.app.Commands().SetAlwaysOnTop(on); err != nil {
				continue
			}
			if on {
				t.menuPin.Check()
			} else {
				t.menuPin.Uncheck()
			}

		case <-t.menuClose.ClickedCh:
			log.Println("[Tray] Close clicked")
			if err := t.app.Commands().CloseWindow(); err == nil {
				systray.Quit()
				return
			}
		}
	}
}
