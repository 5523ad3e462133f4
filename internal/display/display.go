// Package display renders the status snapshot onto a 16x2 character panel.
// The real implementation drives an HD44780 LCD behind a PCF8574 I2C
// backpack; the log implementation writes the same two lines to the
// structured log for headless setups.
package display

import "fmt"

// Width is the panel line width; longer text is truncated.
const Width = 16

// Panel accepts the per-cycle status for presentation.
type Panel interface {
	// ShowStatus renders the sensor reading, mode name, and on-count.
	ShowStatus(sensorRaw int, modeName string, onCount, total int) error

	// Close releases the underlying transport.
	Close() error
}

// Line1 formats the sensor/output summary line.
func Line1(sensorRaw, onCount, total int) string {
	return truncate(fmt.Sprintf("LDR:%d  LED:%d/%d", sensorRaw, onCount, total))
}

// Line2 formats the mode line.
func Line2(modeName string) string {
	return truncate("Modo " + modeName)
}

func truncate(s string) string {
	if len(s) > Width {
		return s[:Width]
	}
	return s
}

// pad right-fills s with spaces to the panel width, clearing leftovers
// from a previous longer line.
func pad(s string) string {
	for len(s) < Width {
		s += " "
	}
	return s
}
