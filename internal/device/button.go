package device

import "github.com/sweeney/lampd/internal/hw"

// DebounceMillis is the minimum spacing between accepted button edges.
const DebounceMillis = 50

// Button is a debounced digital input (the push-button role). A press is
// reported exactly once per qualifying HIGH→LOW transition.
//
// Channel 0 marks an unwired optional button: it never reports a press and
// reads HIGH, so callers need no branching for missing hardware.
type Button struct {
	id       string
	channel  int
	in       hw.DigitalIn
	prev     hw.Level
	lastEdge uint32
}

// NewButton creates a button bound to the given input line. The previous
// level starts HIGH, matching an idle pulled-up line.
func NewButton(id string, channel int, in hw.DigitalIn) *Button {
	return &Button{id: id, channel: channel, in: in, prev: hw.High}
}

// ID returns the device identity.
func (b *Button) ID() string { return b.id }

// Channel returns the GPIO offset, 0 if unwired.
func (b *Button) Channel() int { return b.channel }

// Init is a no-op; the line is configured when it is requested.
func (b *Button) Init() {}

// Poll samples the line and reports whether a debounced press occurred.
// now is the current millisecond counter value; the comparison is
// wrap-safe. The previous level is updated on every poll whether or not
// the edge was accepted, so a bounce inside the debounce window becomes
// the new reference level and can swallow the next press. That matches the
// original debounce behavior and is relied on downstream.
func (b *Button) Poll(now uint32) bool {
	if b.channel == 0 || b.in == nil {
		return false
	}
	cur := b.in.Level()
	pressed := b.prev == hw.High && cur == hw.Low && now-b.lastEdge >= DebounceMillis
	if pressed {
		b.lastEdge = now
	}
	b.prev = cur
	return pressed
}

// Write is inert; buttons are read-only.
func (b *Button) Write(v int) {}

// Read returns the current raw level, HIGH for unwired buttons.
func (b *Button) Read() int {
	if b.channel == 0 || b.in == nil {
		return int(hw.High)
	}
	return int(b.in.Level())
}
