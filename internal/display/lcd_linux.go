//go:build linux

package display

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/sweeney/lampd/internal/device"
)

// PCF8574 backpack bit layout: P0=RS, P1=RW, P2=EN, P3=backlight,
// P4..P7=D4..D7.
const (
	lcdRS        = 0x01
	lcdEN        = 0x04
	lcdBacklight = 0x08
)

// LCD drives a 16x2 HD44780 character display behind a PCF8574 I2C
// backpack. The controller runs in 4-bit mode; each byte goes out as two
// nibbles with an EN pulse.
type LCD struct {
	bus  i2c.BusCloser
	dev  *i2c.Dev
	addr uint16
	last [2]string
}

// NewLCD opens the named I2C bus (e.g. "1" for /dev/i2c-1) and runs the
// panel init sequence.
func NewLCD(busName string, addr uint16) (*LCD, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init host drivers: %w", err)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %s: %w", busName, err)
	}
	l := &LCD{bus: bus, dev: &i2c.Dev{Bus: bus, Addr: addr}, addr: addr}
	if err := l.initSequence(); err != nil {
		bus.Close()
		return nil, fmt.Errorf("lcd init: %w", err)
	}
	return l, nil
}

// ShowStatus renders the two status lines. Unchanged text is not
// retransmitted; a full rewrite at poll rate would saturate the bus.
func (l *LCD) ShowStatus(sensorRaw int, modeName string, onCount, total int) error {
	lines := [2]string{Line1(sensorRaw, onCount, total), Line2(modeName)}
	if lines == l.last {
		return nil
	}
	for row, text := range lines {
		if err := l.setCursor(row); err != nil {
			return err
		}
		for _, ch := range []byte(pad(text)) {
			if err := l.writeByte(ch, true); err != nil {
				return err
			}
		}
	}
	l.last = lines
	return nil
}

// Close clears the panel and releases the bus.
func (l *LCD) Close() error {
	_ = l.command(0x01) // clear
	return l.bus.Close()
}

// ID returns the device identity.
func (l *LCD) ID() string { return "lcd" }

// Channel returns the I2C address.
func (l *LCD) Channel() int { return int(l.addr) }

// Init re-runs the panel init sequence. Idempotent.
func (l *LCD) Init() {
	_ = l.initSequence()
}

// Write is inert; the panel is driven through ShowStatus.
func (l *LCD) Write(v int) {}

// Read is inert.
func (l *LCD) Read() int { return 0 }

func (l *LCD) initSequence() error {
	time.Sleep(50 * time.Millisecond)
	// Three times 0x3 to force 8-bit mode from any state, then 0x2 to
	// switch to 4-bit. Standard HD44780 wake-up.
	for _, nib := range []byte{0x3, 0x3, 0x3, 0x2} {
		if err := l.writeNibble(nib, 0); err != nil {
			return err
		}
		time.Sleep(5 * time.Millisecond)
	}
	for _, cmd := range []byte{
		0x28, // 4-bit, 2 lines, 5x8 font
		0x0c, // display on, cursor off
		0x06, // entry mode: increment, no shift
		0x01, // clear
	} {
		if err := l.command(cmd); err != nil {
			return err
		}
	}
	time.Sleep(2 * time.Millisecond)
	l.last = [2]string{}
	return nil
}

func (l *LCD) setCursor(row int) error {
	addr := byte(0x00)
	if row == 1 {
		addr = 0x40
	}
	return l.command(0x80 | addr)
}

func (l *LCD) command(b byte) error {
	return l.writeByte(b, false)
}

func (l *LCD) writeByte(b byte, data bool) error {
	var flags byte
	if data {
		flags = lcdRS
	}
	if err := l.writeNibble(b>>4, flags); err != nil {
		return err
	}
	return l.writeNibble(b&0x0f, flags)
}

func (l *LCD) writeNibble(nib, flags byte) error {
	b := nib<<4 | flags | lcdBacklight
	if _, err := l.dev.Write([]byte{b | lcdEN}); err != nil {
		return err
	}
	if _, err := l.dev.Write([]byte{b}); err != nil {
		return err
	}
	return nil
}

var (
	_ Panel         = (*LCD)(nil)
	_ device.Device = (*LCD)(nil)
)
