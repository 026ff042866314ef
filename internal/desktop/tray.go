package desktop

import "sync"

// trayGate decides once between starting and stopping the tray. Whichever of
// claimStart and claimStop runs first wins; the loser reports false.
type trayGate struct {
	once    sync.Once
	started bool
}

// claimStart reports whether the tray may start.
func (g *trayGate) claimStart() bool {
	g.once.Do(func() { g.started = true })
	return g.started
}

// claimStop reports whether a running tray must be quit. A Stop that wins
// the gate keeps any later Start from running.
func (g *trayGate) claimStop() bool {
	won := false
	g.once.Do(func() { won = true })
	return !won && g.started
}
