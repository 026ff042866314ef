package config

import (
	"errors"
	"fmt"
	"strings"
)

// MainWindowName is the logical name of the single top-level window.
const MainWindowName = "main"

// RGBA is a window background colour.
type RGBA struct {
	R, G, B, A uint8
}

// Config holds the compiled-in shell settings. There is no file, flag or
// environment source; Default is the only producer.
type Config struct {
	AppName    string
	MainWindow string
	Title      string

	Width     int
	Height    int
	MinWidth  int
	MinHeight int

	// Tray enables the system tray icon where the platform supports it
	Tray bool

	// LogLevel is the Wails runtime log level: trace, debug, info, warning, error
	LogLevel string

	Background RGBA
}

// Default returns the sticker window configuration.
func Default() Config {
	return Config{
		AppName:    "Todo Sticker",
		MainWindow: MainWindowName,
		Title:      "Todo Sticker",
		Width:      360,
		Height:     520,
		MinWidth:   280,
		MinHeight:  320,
		Tray:       true,
		LogLevel:   "info",
		Background: RGBA{R: 255, G: 249, B: 196, A: 255},
	}
}

var validLogLevels = []string{"trace", "debug", "info", "warning", "error"}

// Validate checks the configuration before the host is built.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.MainWindow) == "" {
		errs = append(errs, errors.New("main window name is empty"))
	}
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, errors.New("window title is empty"))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.MinWidth < 0 || c.MinHeight < 0 {
		errs = append(errs, fmt.Errorf("minimum size %dx%d must not be negative", c.MinWidth, c.MinHeight))
	}
	if c.MinWidth > c.Width || c.MinHeight > c.Height {
		errs = append(errs, fmt.Errorf("minimum size %dx%d exceeds window size %dx%d",
			c.MinWidth, c.MinHeight, c.Width, c.Height))
	}
	if !isValidLogLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func isValidLogLevel(level string) bool {
	level = strings.ToLower(level)
	for _, l := range validLogLevels {
		if l == level {
			return true
		}
	}
	return false
}
