// Package mode contains the mode-decision state machine for the lighting
// controller. It is pure logic with no hardware or OS dependencies; time is
// always injected as a millisecond counter value.
package mode

// Mode is the operating mode of the controller. Exactly one mode is active
// at a time. The ordinal matches the potentiometer bucket order.
type Mode int

const (
	Night Mode = iota
	Reading
	Relax
	Party
	Auto
	Manual

	numModes
)

// String returns the display name, as shown on the LCD and in telemetry.
func (m Mode) String() string {
	switch m {
	case Night:
		return "Noche"
	case Reading:
		return "Lectura"
	case Relax:
		return "Relax"
	case Party:
		return "Fiesta"
	case Auto:
		return "Auto"
	case Manual:
		return "Manual"
	}
	return "?"
}

// Plan is the per-cycle brightness decision. Non-negative values are a
// uniform brightness for all outputs; the sentinels mean the outputs are
// driven by other means this cycle.
type Plan int

const (
	// PlanManual means the outputs are controlled exclusively by
	// button-triggered toggles; nothing is applied automatically.
	PlanManual Plan = -1
	// PlanParty means the party animation owns the outputs this cycle.
	PlanParty Plan = -2
)

// Uniform reports whether the plan carries a brightness to apply to all
// outputs.
func (p Plan) Uniform() bool {
	return p >= 0
}

// Level returns the uniform brightness, or 0 for sentinel plans.
func (p Plan) Level() int {
	if p < 0 {
		return 0
	}
	return int(p)
}
