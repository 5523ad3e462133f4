package hw

import "testing"

func TestFakeLineRepeatsLastLevel(t *testing.T) {
	f := NewFakeLine(High, Low)

	if got := f.Level(); got != High {
		t.Errorf("first level: got %v, want High", got)
	}
	for i := 0; i < 3; i++ {
		if got := f.Level(); got != Low {
			t.Errorf("call %d: got %v, want Low (last sample repeats)", i+2, got)
		}
	}
}

func TestFakeLineEmptyReadsHigh(t *testing.T) {
	f := NewFakeLine()
	if got := f.Level(); got != High {
		t.Errorf("empty script: got %v, want High", got)
	}
}

func TestFakePWMRecordsHistory(t *testing.T) {
	f := &FakePWM{}
	f.SetDuty(255)
	f.SetDuty(0)
	f.SetDuty(51)

	if len(f.History) != 3 {
		t.Fatalf("expected 3 recorded duties, got %d", len(f.History))
	}
	if f.Last() != 51 {
		t.Errorf("Last: got %d, want 51", f.Last())
	}
}

func TestFakeADCScript(t *testing.T) {
	f := NewFakeADC(100, 200)
	if got := f.Sample(); got != 100 {
		t.Errorf("first sample: got %d, want 100", got)
	}
	if got := f.Sample(); got != 200 {
		t.Errorf("second sample: got %d, want 200", got)
	}
	if got := f.Sample(); got != 200 {
		t.Errorf("exhausted script: got %d, want 200", got)
	}

	f.Set(4095)
	if got := f.Sample(); got != 4095 {
		t.Errorf("after Set: got %d, want 4095", got)
	}
}
