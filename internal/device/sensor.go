package device

import "github.com/sweeney/lampd/internal/hw"

const (
	// DefaultFullScale is the ADC full-scale reading.
	DefaultFullScale = 4095
	// DefaultDarkThreshold is the reading at or below which the room
	// counts as dark.
	DefaultDarkThreshold = 400
)

// LightSensor is an analog input with a darkness classification (the LDR
// role).
type LightSensor struct {
	id        string
	channel   int
	in        hw.AnalogIn
	threshold int
}

// NewLightSensor creates a sensor bound to the given ADC port. A threshold
// of 0 selects the default.
func NewLightSensor(id string, channel int, in hw.AnalogIn, threshold int) *LightSensor {
	if threshold <= 0 {
		threshold = DefaultDarkThreshold
	}
	return &LightSensor{id: id, channel: channel, in: in, threshold: threshold}
}

// ID returns the device identity.
func (s *LightSensor) ID() string { return s.id }

// Channel returns the ADC channel.
func (s *LightSensor) Channel() int { return s.channel }

// Init is a no-op; the ADC channel is opened at construction.
func (s *LightSensor) Init() {}

// Read returns the raw sample.
func (s *LightSensor) Read() int { return s.in.Sample() }

// Dark reports whether the reading is at or below the dark threshold.
func (s *LightSensor) Dark() bool { return s.Read() <= s.threshold }

// Threshold returns the configured dark threshold.
func (s *LightSensor) Threshold() int { return s.threshold }

// Write is inert; sensors are read-only.
func (s *LightSensor) Write(v int) {}
