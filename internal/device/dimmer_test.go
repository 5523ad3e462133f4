package device

import (
	"testing"

	"github.com/sweeney/lampd/internal/hw"
)

func TestSetBrightnessClamps(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero", 0, 0},
		{"mid", 128, 128},
		{"max", 255, 255},
		{"above max", 300, 255},
		{"negative", -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pwm := &hw.FakePWM{}
			d := NewDimmer("led", 1, pwm)
			d.SetBrightness(tt.in)

			if d.Read() != tt.want {
				t.Errorf("brightness: got %d, want %d", d.Read(), tt.want)
			}
			if pwm.Last() != tt.want {
				t.Errorf("applied duty: got %d, want %d", pwm.Last(), tt.want)
			}
			if d.On() != (tt.want > 0) {
				t.Errorf("On: got %v, want %v", d.On(), tt.want > 0)
			}
		})
	}
}

func TestSetBrightnessAlwaysApplies(t *testing.T) {
	pwm := &hw.FakePWM{}
	d := NewDimmer("led", 1, pwm)

	// Repeated identical calls must each reach the output.
	d.SetBrightness(100)
	d.SetBrightness(100)
	d.SetBrightness(100)

	if len(pwm.History) != 3 {
		t.Errorf("expected 3 applied duties, got %d", len(pwm.History))
	}
}

func TestToggleIsInvolution(t *testing.T) {
	pwm := &hw.FakePWM{}
	d := NewDimmer("led", 1, pwm)

	for _, start := range []bool{false, true} {
		if start {
			d.TurnOn()
		} else {
			d.TurnOff()
		}

		d.Toggle()
		if d.On() == start {
			t.Errorf("start=%v: one toggle should flip On", start)
		}
		d.Toggle()
		if d.On() != start {
			t.Errorf("start=%v: two toggles should restore On", start)
		}
	}
}

func TestTurnOnOff(t *testing.T) {
	pwm := &hw.FakePWM{}
	d := NewDimmer("led", 1, pwm)

	d.TurnOn()
	if d.Read() != MaxBrightness || !d.On() {
		t.Errorf("after TurnOn: brightness=%d on=%v", d.Read(), d.On())
	}

	d.TurnOff()
	if d.Read() != 0 || d.On() {
		t.Errorf("after TurnOff: brightness=%d on=%v", d.Read(), d.On())
	}
}

func TestDimmerDeviceContract(t *testing.T) {
	pwm := &hw.FakePWM{}
	d := NewDimmer("led-2", 3, pwm)

	if d.ID() != "led-2" {
		t.Errorf("ID: got %q", d.ID())
	}
	if d.Channel() != 3 {
		t.Errorf("Channel: got %d", d.Channel())
	}

	d.Init()
	if pwm.Last() != 0 {
		t.Errorf("Init should drive the output to 0, got %d", pwm.Last())
	}

	d.Write(77)
	if d.Read() != 77 {
		t.Errorf("Write/Read: got %d, want 77", d.Read())
	}
}
