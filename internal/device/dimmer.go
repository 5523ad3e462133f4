package device

import "github.com/sweeney/lampd/internal/hw"

// MaxBrightness is the full-scale brightness level.
const MaxBrightness = 255

// Dimmer is a dimmable output (the LED role). It holds the commanded
// brightness and on/off state; isOn is always brightness > 0.
type Dimmer struct {
	id         string
	channel    int
	out        hw.PWMOut
	brightness int
	on         bool
}

// NewDimmer creates a dimmer bound to the given PWM port.
func NewDimmer(id string, channel int, out hw.PWMOut) *Dimmer {
	return &Dimmer{id: id, channel: channel, out: out}
}

// ID returns the device identity.
func (d *Dimmer) ID() string { return d.id }

// Channel returns the PWM channel.
func (d *Dimmer) Channel() int { return d.channel }

// Init applies the initial (off) level to the output.
func (d *Dimmer) Init() {
	d.out.SetDuty(d.brightness)
}

// SetBrightness clamps v to [0, 255] and applies it. The physical output
// is re-driven on every call, even when the value is unchanged.
func (d *Dimmer) SetBrightness(v int) {
	if v < 0 {
		v = 0
	}
	if v > MaxBrightness {
		v = MaxBrightness
	}
	d.brightness = v
	d.on = v > 0
	d.out.SetDuty(v)
}

// TurnOn sets full brightness.
func (d *Dimmer) TurnOn() { d.SetBrightness(MaxBrightness) }

// TurnOff sets zero brightness.
func (d *Dimmer) TurnOff() { d.SetBrightness(0) }

// Toggle flips between off and full brightness based on the current state.
func (d *Dimmer) Toggle() {
	if d.on {
		d.TurnOff()
	} else {
		d.TurnOn()
	}
}

// On reports whether the output is currently on.
func (d *Dimmer) On() bool { return d.on }

// Write applies v as a brightness level.
func (d *Dimmer) Write(v int) { d.SetBrightness(v) }

// Read returns the cached brightness.
func (d *Dimmer) Read() int { return d.brightness }
