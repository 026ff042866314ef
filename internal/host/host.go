// Package host describes the windowing runtime the shell runs inside.
//
// The shell never talks to a GUI toolkit directly; it only sees the
// capabilities below. wailshost implements them on Wails, fakehost in memory.
package host

import "errors"

var (
	// ErrWindowNotFound is returned when no window carries the requested name.
	ErrWindowNotFound = errors.New("window not found")
	// ErrWindowGone is returned by a Window whose native window no longer exists.
	ErrWindowGone = errors.New("window is no longer available")
	// ErrUnsupported is returned when the host cannot apply a mutation.
	ErrUnsupported = errors.New("operation not supported by host")
)

// Window is a handle to a native top-level window.
type Window interface {
	Name() string
	SetAlwaysOnTop(on bool) error
	SetDecorations(visible bool) error
	Show() error
	Minimise() error
	ToggleMaximise() error
	Close() error
}

// Registry resolves windows by logical name.
type Registry interface {
	Window(name string) (Window, bool)
}

// Application is what the shell hands to a Host.
type Application struct {
	// Setup runs once before the event loop processes UI events.
	// A non-nil error aborts the run; the window is never shown.
	Setup func(reg Registry) error

	// Bind lists the objects whose exported methods the UI may invoke.
	Bind []interface{}

	// Shutdown, if set, runs after the event loop exits.
	Shutdown func()
}

// Host owns the event loop.
type Host interface {
	// Run blocks until the application exits. It returns the setup error
	// when setup fails, or the event loop's own failure.
	Run(app Application) error
}
