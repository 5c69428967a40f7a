package core

// Alerter receives the fire-and-forget alert cue emitted on pickups.
// Implementations must not block.
type Alerter interface {
	Alert()
}

// AlertFunc adapts a function to the Alerter interface.
type AlertFunc func()

// Alert calls f.
func (f AlertFunc) Alert() {
	f()
}

// NopAlerter discards alerts.
type NopAlerter struct{}

// Alert does nothing.
func (NopAlerter) Alert() {}
