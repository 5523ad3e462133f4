package device

import (
	"testing"

	"github.com/sweeney/lampd/internal/hw"
)

func TestDarkAtThresholdBoundary(t *testing.T) {
	tests := []struct {
		raw  int
		dark bool
	}{
		{0, true},
		{399, true},
		{400, true}, // at threshold counts as dark
		{401, false},
		{4095, false},
	}

	for _, tt := range tests {
		adc := hw.NewFakeADC(tt.raw)
		s := NewLightSensor("ldr", 0, adc, 0)
		if got := s.Dark(); got != tt.dark {
			t.Errorf("raw=%d: Dark=%v, want %v", tt.raw, got, tt.dark)
		}
	}
}

func TestCustomThreshold(t *testing.T) {
	adc := hw.NewFakeADC(1000)
	s := NewLightSensor("ldr", 0, adc, 1200)

	if !s.Dark() {
		t.Error("1000 <= 1200 should be dark")
	}
	if s.Threshold() != 1200 {
		t.Errorf("Threshold: got %d, want 1200", s.Threshold())
	}
}

func TestSensorReadTracksSamples(t *testing.T) {
	adc := hw.NewFakeADC(100, 2000)
	s := NewLightSensor("ldr", 2, adc, 0)

	if got := s.Read(); got != 100 {
		t.Errorf("first Read: got %d, want 100", got)
	}
	if got := s.Read(); got != 2000 {
		t.Errorf("second Read: got %d, want 2000", got)
	}
	s.Write(5) // inert
	s.Init()
	if s.ID() != "ldr" || s.Channel() != 2 {
		t.Errorf("identity: got %q/%d", s.ID(), s.Channel())
	}
}
