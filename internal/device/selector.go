package device

import (
	"github.com/sweeney/lampd/internal/hw"
	"github.com/sweeney/lampd/internal/mode"
)

// Selector maps a raw potentiometer position to a discrete mode (the
// rotary selector role).
type Selector struct {
	id        string
	channel   int
	in        hw.AnalogIn
	fullScale int
}

// NewSelector creates a selector bound to the given ADC port. A fullScale
// of 0 selects the default.
func NewSelector(id string, channel int, in hw.AnalogIn, fullScale int) *Selector {
	if fullScale <= 0 {
		fullScale = DefaultFullScale
	}
	return &Selector{id: id, channel: channel, in: in, fullScale: fullScale}
}

// ID returns the device identity.
func (s *Selector) ID() string { return s.id }

// Channel returns the ADC channel.
func (s *Selector) Channel() int { return s.channel }

// Init is a no-op; the ADC channel is opened at construction.
func (s *Selector) Init() {}

// Read returns the raw sample.
func (s *Selector) Read() int { return s.in.Sample() }

// SelectedMode maps the raw position into six buckets and clamps to the
// last mode. The map-to-six-then-clamp-to-five asymmetry biases the top of
// the travel toward Manual and is deliberate; it matches the feel of the
// original panel.
func (s *Selector) SelectedMode() mode.Mode {
	raw := s.in.Sample()
	if raw < 0 {
		raw = 0
	}
	if raw > s.fullScale {
		raw = s.fullScale
	}
	idx := raw * 6 / s.fullScale
	if idx > 5 {
		idx = 5
	}
	return mode.Mode(idx)
}

// Write is inert; selectors are read-only.
func (s *Selector) Write(v int) {}
