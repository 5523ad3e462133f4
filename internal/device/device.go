// Package device implements the uniform capability interface over the
// heterogeneous I/O elements of the lighting controller: dimmable outputs,
// debounced buttons, the light sensor, and the mode selector. Each variant
// implements the subset of the contract that is meaningful for it and
// leaves the rest inert; no method ever fails.
package device

// Device is the capability contract shared by every hardware element.
// Write on a read-only device and Read on a write-only device are legal
// no-ops; capability is advisory.
type Device interface {
	// ID returns the stable identity assigned at construction.
	ID() string
	// Channel returns the abstract addressable line (GPIO offset, ADC
	// channel, or bus address). Channel 0 marks an unwired optional
	// device.
	Channel() int
	// Init configures the underlying line. Idempotent; called once per
	// device at startup.
	Init()
	// Write sends a value to the device if applicable.
	Write(v int)
	// Read returns the device's latest value: cached brightness for
	// outputs, a live sample for inputs.
	Read() int
}

var (
	_ Device = (*Dimmer)(nil)
	_ Device = (*Button)(nil)
	_ Device = (*LightSensor)(nil)
	_ Device = (*Selector)(nil)
)
