package status

import (
	"encoding/json"
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		PollMs:        50,
		TelemetryMs:   1000,
		Broker:        "tcp://127.0.0.1:1883",
		HTTPAddr:      ":8080",
		Outputs:       4,
		DarkThreshold: 400,
	}
}

func TestTrackerUpdateAndSnapshot(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tr := NewTracker(start, testConfig())

	tr.Update(350, true, "Auto", 4, true, true, Counts{ModeChanges: 2, ButtonPresses: 5})
	tr.SetMQTTConnected(true)

	snap := tr.Snapshot()
	if snap.SensorRaw != 350 || !snap.Dark {
		t.Errorf("sensor: raw=%d dark=%v", snap.SensorRaw, snap.Dark)
	}
	if snap.Mode != "Auto" || snap.OutputsOn != 4 {
		t.Errorf("mode=%q on=%d", snap.Mode, snap.OutputsOn)
	}
	if !snap.AutoEnabled || !snap.ForceOn {
		t.Errorf("flags: autoEnabled=%v forceOn=%v", snap.AutoEnabled, snap.ForceOn)
	}
	if snap.Counts.ModeChanges != 2 || snap.Counts.ButtonPresses != 5 {
		t.Errorf("counts: %+v", snap.Counts)
	}
	if !snap.MQTTConnected {
		t.Error("MQTTConnected should be set")
	}
	if !snap.StartTime.Equal(start) {
		t.Errorf("StartTime: got %v", snap.StartTime)
	}
	if snap.Now.IsZero() {
		t.Error("Snapshot should stamp Now")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	tr := NewTracker(time.Now(), testConfig())
	tr.Update(100, false, "Noche", 0, true, false, Counts{})

	snap := tr.Snapshot()
	tr.Update(4000, false, "Manual", 2, false, false, Counts{ButtonPresses: 1})

	if snap.SensorRaw != 100 || snap.Mode != "Noche" {
		t.Error("snapshot must not observe later updates")
	}
}

func TestFormatJSONFields(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tr := NewTracker(start, testConfig())
	tr.Update(350, true, "Auto", 3, true, false, Counts{ModeChanges: 1})

	var doc StatusJSON
	if err := json.Unmarshal(FormatJSON(tr.Snapshot()), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	s := doc.Status
	if s.Mode != "Auto" || s.LDRRaw != 350 || !s.Dark {
		t.Errorf("status: %+v", s)
	}
	if s.LedsOn != 3 || s.LedsTotal != 4 {
		t.Errorf("leds: on=%d total=%d", s.LedsOn, s.LedsTotal)
	}
	if s.Event != "" {
		t.Errorf("plain status must not carry an event, got %q", s.Event)
	}
	if s.Config.PollMs != 50 || s.Config.DarkThreshold != 400 {
		t.Errorf("config: %+v", s.Config)
	}
}

func TestFormatStatusEventCarriesEvent(t *testing.T) {
	tr := NewTracker(time.Now(), testConfig())

	var doc StatusJSON
	if err := json.Unmarshal(FormatStatusEvent(tr.Snapshot(), "SHUTDOWN", "SIGTERM"), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Status.Event != "SHUTDOWN" || doc.Status.Reason != "SIGTERM" {
		t.Errorf("event=%q reason=%q", doc.Status.Event, doc.Status.Reason)
	}
}

func TestEmptyModeRendersPlaceholder(t *testing.T) {
	tr := NewTracker(time.Now(), testConfig())

	var doc StatusJSON
	if err := json.Unmarshal(FormatJSON(tr.Snapshot()), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Status.Mode != "?" {
		t.Errorf("mode placeholder: got %q", doc.Status.Mode)
	}
}
