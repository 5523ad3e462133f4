package display

import "github.com/sweeney/lampd/internal/device"

// ShowCall records one ShowStatus invocation.
type ShowCall struct {
	SensorRaw int
	ModeName  string
	OnCount   int
	Total     int
}

// Fake is a test double that records every status shown to it.
type Fake struct {
	// Calls contains all recorded ShowStatus invocations.
	Calls []ShowCall

	// ShowError, if set, is returned by ShowStatus.
	ShowError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFake creates a Fake panel.
func NewFake() *Fake {
	return &Fake{}
}

// ShowStatus records the call.
func (f *Fake) ShowStatus(sensorRaw int, modeName string, onCount, total int) error {
	if f.ShowError != nil {
		return f.ShowError
	}
	f.Calls = append(f.Calls, ShowCall{SensorRaw: sensorRaw, ModeName: modeName, OnCount: onCount, Total: total})
	return nil
}

// Close marks the panel as closed.
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}

// Last returns the most recent call, or a zero ShowCall if none.
func (f *Fake) Last() ShowCall {
	if len(f.Calls) == 0 {
		return ShowCall{}
	}
	return f.Calls[len(f.Calls)-1]
}

// ID returns the device identity.
func (f *Fake) ID() string { return "panel-fake" }

// Channel returns 0; the fake has no bus address.
func (f *Fake) Channel() int { return 0 }

// Init is a no-op.
func (f *Fake) Init() {}

// Write is inert; the panel is driven through ShowStatus.
func (f *Fake) Write(v int) {}

// Read is inert.
func (f *Fake) Read() int { return 0 }

var (
	_ Panel         = (*Fake)(nil)
	_ device.Device = (*Fake)(nil)
)
