package desktop

import "testing"

func TestTrayGate(t *testing.T) {
	tests := []struct {
		name      string
		stopFirst bool
		wantStart bool
		wantQuit  bool
	}{
		{name: "start then stop", wantStart: true, wantQuit: true},
		{name: "stop before start", stopFirst: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g trayGate
			var started, quit bool
			if tt.stopFirst {
				quit = g.claimStop()
				started = g.claimStart()
			} else {
				started = g.claimStart()
				quit = g.claimStop()
			}

			if started != tt.wantStart {
				t.Errorf("claimStart() = %v, want %v", started, tt.wantStart)
			}
			if quit != tt.wantQuit {
				t.Errorf("claimStop() = %v, want %v", quit, tt.wantQuit)
			}
		})
	}
}

func TestTrayGate_StartsOnce(t *testing.T) {
	var g trayGate
	if !g.claimStart() {
		t.Fatal("claimStart() = false on a fresh gate")
	}
	if !g.claimStop() {
		t.Error("first claimStop() = false after start")
	}
	if g.claimStart() {
		t.Error("claimStart() = true on a gate that already started")
	}
}
