package desktop

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/awsl-project/todo-sticker/internal/config"
	"github.com/awsl-project/todo-sticker/internal/host"
	"github.com/awsl-project/todo-sticker/internal/host/fakehost"
)

func TestRun_ConfiguresMainWindow(t *testing.T) {
	win := fakehost.NewWindow("main")
	h := fakehost.New(win)
	app := NewApp(config.Default())

	if err := Run(h, app); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}

	state := win.State()
	if !state.AlwaysOnTop {
		t.Error("always on top = false after setup, want true")
	}
	if state.Decorations {
		t.Error("decorations = true after setup, want false")
	}
	if !h.LoopEntered() {
		t.Error("event loop not entered after successful setup")
	}
	if got, want := win.Calls(), []string{"SetAlwaysOnTop", "SetDecorations"}; !reflect.DeepEqual(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}

	select {
	case <-app.Ready():
	default:
		t.Error("Ready() not closed after successful setup")
	}
}

func TestRun_MissingMainWindow(t *testing.T) {
	h := fakehost.New(fakehost.NewWindow("settings"))
	app := NewApp(config.Default())

	err := Run(h, app)
	if !errors.Is(err, host.ErrWindowNotFound) {
		t.Fatalf("Run() = %v, want ErrWindowNotFound", err)
	}
	if h.LoopEntered() {
		t.Error("event loop entered although the main window is missing")
	}

	select {
	case <-app.Ready():
		t.Error("Ready() closed after failed setup")
	default:
	}
}

func TestSetup_MutationFailures(t *testing.T) {
	hostErr := errors.New("compositor refused")

	tests := []struct {
		name      string
		prepare   func(w *fakehost.Window)
		wantMsg   string
		wantCalls []string
		wantOnTop bool
	}{
		{
			name:      "always on top rejected",
			prepare:   func(w *fakehost.Window) { w.AlwaysOnTopErr = hostErr },
			wantMsg:   "failed to set always on top: compositor refused",
			wantCalls: []string{"SetAlwaysOnTop"},
		},
		{
			name:      "decorations rejected keeps earlier mutation",
			prepare:   func(w *fakehost.Window) { w.DecorationsErr = hostErr },
			wantMsg:   "failed to set decorations: compositor refused",
			wantCalls: []string{"SetAlwaysOnTop", "SetDecorations"},
			wantOnTop: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win := fakehost.NewWindow("main")
			tt.prepare(win)
			h := fakehost.New(win)

			err := Run(h, NewApp(config.Default()))
			if err == nil {
				t.Fatal("Run() = nil, want error")
			}
			if !errors.Is(err, hostErr) {
				t.Errorf("Run() = %v, want it to wrap the host error", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Run() = %q, want %q", err.Error(), tt.wantMsg)
			}
			if h.LoopEntered() {
				t.Error("event loop entered after failed setup")
			}
			if got := win.Calls(); !reflect.DeepEqual(got, tt.wantCalls) {
				t.Errorf("calls = %v, want %v", got, tt.wantCalls)
			}
			if got := win.State().AlwaysOnTop; got != tt.wantOnTop {
				t.Errorf("always on top = %v, want %v", got, tt.wantOnTop)
			}
		})
	}
}

func TestRun_LoopFailure(t *testing.T) {
	loopErr := errors.New("display connection lost")
	h := fakehost.New(fakehost.NewWindow("main"))
	h.RunErr = loopErr

	if err := Run(h, NewApp(config.Default())); !errors.Is(err, loopErr) {
		t.Errorf("Run() = %v, want %v", err, loopErr)
	}
}

func TestRun_BindsCommands(t *testing.T) {
	h := fakehost.New(fakehost.NewWindow("main"))
	app := NewApp(config.Default())

	if err := Run(h, app); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	bound := h.Bound()
	if len(bound) != 1 {
		t.Fatalf("bound %d objects, want 1", len(bound))
	}
	if bound[0] != app.Commands() {
		t.Errorf("bound %T, want the app's *Commands", bound[0])
	}
}

func TestShowWindow(t *testing.T) {
	win := fakehost.NewWindow("main")
	app := NewApp(config.Default())

	if err := app.ShowWindow(); !errors.Is(err, host.ErrWindowNotFound) {
		t.Errorf("ShowWindow() before setup = %v, want ErrWindowNotFound", err)
	}

	if err := Run(fakehost.New(win), app); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if err := app.ShowWindow(); err != nil {
		t.Fatalf("ShowWindow() = %v", err)
	}
	if !win.State().Visible {
		t.Error("window not visible after ShowWindow")
	}

	win.ShowErr = errors.New("no display")
	err := app.ShowWindow()
	if err == nil || !strings.Contains(err.Error(), "no display") {
		t.Errorf("ShowWindow() = %v, want host error", err)
	}
}

func TestRun_CloseFailureDuringLoop(t *testing.T) {
	win := fakehost.NewWindow("main")
	win.CloseErr = errors.New("denied")
	h := fakehost.New(win)
	app := NewApp(config.Default())

	var cmdErr error
	h.Loop = func() {
		cmdErr = app.Commands().CloseWindow()
	}

	if err := Run(h, app); err != nil {
		t.Fatalf("Run() = %v, a failed close must not end the run with an error", err)
	}
	if cmdErr == nil || cmdErr.Error() != "Failed to close window: denied" {
		t.Errorf("CloseWindow() during loop = %v, want formatted host error", cmdErr)
	}
}
