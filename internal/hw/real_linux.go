//go:build linux

package hw

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/warthog618/go-gpiocdev"
)

// InputBank owns a GPIO chip and the button lines requested from it.
type InputBank struct {
	chip  *gpiocdev.Chip
	lines []*gpiocdev.Line
}

// OpenInputBank opens the named GPIO chip (e.g. "gpiochip0").
func OpenInputBank(chipName string) (*InputBank, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", chipName, err)
	}
	return &InputBank{chip: chip}, nil
}

// Line requests the given offset as an input with pull-up, matching the
// idle-high wiring of momentary push buttons to ground.
func (b *InputBank) Line(offset int) (DigitalIn, error) {
	line, err := b.chip.RequestLine(offset, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		return nil, fmt.Errorf("request button line %d: %w", offset, err)
	}
	b.lines = append(b.lines, line)
	return &cdevLine{line: line, last: High}, nil
}

// Close releases all requested lines and the chip.
func (b *InputBank) Close() error {
	var errs []error
	for _, line := range b.lines {
		if err := line.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if b.chip != nil {
		if err := b.chip.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// cdevLine adapts a gpiocdev line to the DigitalIn port. Read errors yield
// the last good level, so a stuck line reads as a stale value forever.
type cdevLine struct {
	line *gpiocdev.Line
	last Level
}

func (l *cdevLine) Level() Level {
	v, err := l.line.Value()
	if err != nil {
		return l.last
	}
	if v != 0 {
		l.last = High
	} else {
		l.last = Low
	}
	return l.last
}

// SysfsPWM drives one channel of a Linux sysfs PWM chip
// (/sys/class/pwm/pwmchipN/pwmM). Duty levels 0..255 map linearly onto the
// configured period.
type SysfsPWM struct {
	dir      string
	periodNs int
}

// OpenSysfsPWM exports the channel if needed, sets the period, and enables
// the output at duty 0.
func OpenSysfsPWM(chip, channel, periodNs int) (*SysfsPWM, error) {
	chipDir := fmt.Sprintf("/sys/class/pwm/pwmchip%d", chip)
	dir := filepath.Join(chipDir, fmt.Sprintf("pwm%d", channel))

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.WriteFile(filepath.Join(chipDir, "export"), []byte(strconv.Itoa(channel)), 0o644); err != nil {
			return nil, fmt.Errorf("export pwm%d on %s: %w", channel, chipDir, err)
		}
	}

	p := &SysfsPWM{dir: dir, periodNs: periodNs}
	if err := p.writeAttr("duty_cycle", 0); err != nil {
		return nil, err
	}
	if err := p.writeAttr("period", periodNs); err != nil {
		return nil, fmt.Errorf("set pwm period: %w", err)
	}
	if err := p.writeAttr("enable", 1); err != nil {
		return nil, fmt.Errorf("enable pwm: %w", err)
	}
	return p, nil
}

// SetDuty applies a duty level in [0, 255]. Write errors leave the output
// at its previous level.
func (p *SysfsPWM) SetDuty(v int) {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	_ = p.writeAttr("duty_cycle", p.periodNs*v/255)
}

// Close disables the output.
func (p *SysfsPWM) Close() error {
	return p.writeAttr("enable", 0)
}

func (p *SysfsPWM) writeAttr(name string, v int) error {
	return os.WriteFile(filepath.Join(p.dir, name), []byte(strconv.Itoa(v)), 0o644)
}

// IIOADC samples one voltage channel of a Linux IIO ADC device
// (e.g. an MCP3008 or ADS1115 exposed under /sys/bus/iio/devices).
type IIOADC struct {
	path string
	last int
}

// OpenIIOADC opens channel ch of the ADC rooted at deviceDir. The channel
// is probed once so wiring mistakes surface at startup.
func OpenIIOADC(deviceDir string, ch int) (*IIOADC, error) {
	a := &IIOADC{path: filepath.Join(deviceDir, fmt.Sprintf("in_voltage%d_raw", ch))}
	if _, err := os.ReadFile(a.path); err != nil {
		return nil, fmt.Errorf("probe adc channel %d: %w", ch, err)
	}
	return a, nil
}

// Sample returns the latest raw reading. Read or parse errors yield the
// last good value.
func (a *IIOADC) Sample() int {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return a.last
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return a.last
	}
	a.last = v
	return v
}
