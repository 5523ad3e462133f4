package mode

import "testing"

func TestModeNames(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Night, "Noche"},
		{Reading, "Lectura"},
		{Relax, "Relax"},
		{Party, "Fiesta"},
		{Auto, "Auto"},
		{Manual, "Manual"},
		{Mode(99), "?"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String: got %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestPlanHelpers(t *testing.T) {
	if !Plan(128).Uniform() || Plan(128).Level() != 128 {
		t.Error("Plan(128) should be uniform at level 128")
	}
	if !Plan(0).Uniform() {
		t.Error("Plan(0) is a valid uniform level (all off)")
	}
	if PlanManual.Uniform() || PlanParty.Uniform() {
		t.Error("sentinel plans must not be uniform")
	}
	if PlanManual.Level() != 0 || PlanParty.Level() != 0 {
		t.Error("sentinel plans carry no level")
	}
}
