package mode

// Fixed brightness levels per mode, out of 255.
const (
	levelNight   = 51  // 20%
	levelReading = 102 // 40%
	levelRelax   = 76  // 30%
	levelFull    = 255
)

const (
	// partyStepMillis is the dwell time of each step of the party chase.
	partyStepMillis = 200
	// autoDwellMillis is the minimum dwell before the recorded Auto
	// decision may flip. It gates only the recorded state, never the
	// returned brightness.
	autoDwellMillis = 1000
)

// Output is the subset of a dimmable output the party animation needs.
type Output interface {
	TurnOn()
	TurnOff()
}

// Controller owns the current mode, the auto flags, and the brightness
// decision and animation state. All elapsed-time comparisons use unsigned
// millisecond subtraction so a wrapped counter behaves correctly.
type Controller struct {
	mode        Mode
	autoEnabled bool
	forceOn     bool

	partyIndex int
	partyLast  uint32

	lastDecision bool
	lastChange   uint32
}

// NewController creates a controller in Night mode. autoEnabled gates
// whether the fixed non-Auto brightnesses are applied at all.
func NewController(autoEnabled bool) *Controller {
	return &Controller{autoEnabled: autoEnabled}
}

// Mode returns the currently active mode.
func (c *Controller) Mode() Mode { return c.mode }

// AutoEnabled reports whether automatic brightness application is enabled.
func (c *Controller) AutoEnabled() bool { return c.autoEnabled }

// ForceOn reports whether the Auto forced-on override is set.
func (c *Controller) ForceOn() bool { return c.forceOn }

// SetMode selects the mode by ordinal. Out-of-range indices are ignored.
// Called every cycle with the selector's current bucket, so the
// potentiometer continuously drives the mode.
func (c *Controller) SetMode(idx int) {
	if idx < 0 || idx >= int(numModes) {
		return
	}
	c.mode = Mode(idx)
}

// ForceAutoShortcut handles the reserved shortcut button: switch to Auto,
// enable automatic application, and flip the forced-on override, all in one
// action.
func (c *Controller) ForceAutoShortcut() {
	c.mode = Auto
	c.autoEnabled = true
	c.forceOn = !c.forceOn
}

// ToggleAutoEnabled flips the automatic-application gate, independent of
// the current mode.
func (c *Controller) ToggleAutoEnabled() {
	c.autoEnabled = !c.autoEnabled
}

// Decide computes this cycle's brightness plan from the sensor's darkness
// classification. now is the current millisecond counter value.
func (c *Controller) Decide(dark bool, now uint32) Plan {
	switch c.mode {
	case Night:
		return levelNight
	case Reading:
		return levelReading
	case Relax:
		return levelRelax
	case Party:
		return PlanParty
	case Auto:
		shouldBeDark := dark || c.forceOn
		// The recorded decision flips only after a minimum dwell; the
		// returned brightness follows the live decision regardless.
		if shouldBeDark != c.lastDecision && now-c.lastChange >= autoDwellMillis {
			c.lastDecision = shouldBeDark
			c.lastChange = now
		}
		if shouldBeDark {
			return levelFull
		}
		return 0
	}
	return PlanManual
}

// Recorded returns the dwell-gated Auto decision, used for stable
// telemetry output.
func (c *Controller) Recorded() bool { return c.lastDecision }

// StepParty advances the party chase: every step, all outputs are turned
// off and the one at the current index is turned on, then the index
// advances. Calls within the step dwell are no-ops.
func (c *Controller) StepParty(outputs []Output, now uint32) {
	if len(outputs) == 0 {
		return
	}
	if now-c.partyLast < partyStepMillis {
		return
	}
	c.partyLast = now

	if c.partyIndex >= len(outputs) {
		c.partyIndex = 0
	}
	for _, o := range outputs {
		o.TurnOff()
	}
	outputs[c.partyIndex].TurnOn()
	c.partyIndex = (c.partyIndex + 1) % len(outputs)
}
