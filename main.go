package main

import (
	"embed"
	"io/fs"
	"log"

	"github.com/awsl-project/todo-sticker/internal/config"
	"github.com/awsl-project/todo-sticker/internal/desktop"
	"github.com/awsl-project/todo-sticker/internal/host/wailshost"
	"github.com/awsl-project/todo-sticker/internal/version"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration:", err)
	}
	log.Printf("[Shell] %s %s", cfg.AppName, version.Full())

	dist, err := fs.Sub(assets, "frontend/dist")
	if err != nil {
		log.Fatal("Failed to load frontend assets:", err)
	}

	app := desktop.NewApp(cfg)

	// 托盘在窗口配置完成后启动（在 goroutine 中运行，避免阻塞主线程）
	tray := desktop.NewTrayManager(app)
	if cfg.Tray {
		go func() {
			<-app.Ready()
			tray.Start()
		}()
	}

	err = desktop.Run(wailshost.New(cfg, dist), app)
	tray.Stop()
	if err != nil {
		log.Fatal("Error:", err)
	}
}
