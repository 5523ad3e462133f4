// Package hw provides the hardware line abstractions the device layer is
// built on. The real implementations use the Linux GPIO character device,
// sysfs PWM, and the IIO ADC sysfs interface. The fakes allow testing
// without hardware.
//
// Ports are deliberately infallible: a failed read returns the last good
// value, a failed write leaves the line at its previous level. Hardware
// setup errors surface once, at construction.
package hw

// Level is a digital line level.
type Level int

const (
	Low  Level = 0
	High Level = 1
)

// DigitalIn samples a digital input line.
type DigitalIn interface {
	// Level returns the current line level.
	Level() Level
}

// PWMOut drives a pulse-width output line.
type PWMOut interface {
	// SetDuty applies a duty level in [0, 255]. Values outside the range
	// are clamped. The level is re-applied on every call.
	SetDuty(v int)
}

// AnalogIn samples an analog input channel.
type AnalogIn interface {
	// Sample returns the latest raw reading in [0, full scale].
	Sample() int
}
