package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event         string     `json:"event,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	Mode          string     `json:"mode"`
	LDRRaw        int        `json:"ldr_raw"`
	Dark          bool       `json:"dark"`
	LedsOn        int        `json:"leds_on"`
	LedsTotal     int        `json:"leds_total"`
	AutoEnabled   bool       `json:"auto_enabled"`
	ForceOn       bool       `json:"force_on"`
	UptimeSeconds int64      `json:"uptime_seconds"`
	StartTime     string     `json:"start_time"`
	Timestamp     string     `json:"timestamp"`
	MQTT          MQTTStatus `json:"mqtt"`
	Counts        CountsJSON `json:"counts"`
	Config        ConfigJSON `json:"config"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
}

// CountsJSON is the JSON representation of activity counts.
type CountsJSON struct {
	ModeChanges   int `json:"mode_changes"`
	ButtonPresses int `json:"button_presses"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs        int64  `json:"poll_ms"`
	TelemetryMs   int64  `json:"telemetry_ms"`
	Broker        string `json:"broker,omitempty"`
	HTTPAddr      string `json:"http_addr,omitempty"`
	DarkThreshold int    `json:"dark_threshold"`
}

func buildInner(snap Snapshot) StatusInner {
	mode := snap.Mode
	if mode == "" {
		mode = "?"
	}

	return StatusInner{
		Mode:          mode,
		LDRRaw:        snap.SensorRaw,
		Dark:          snap.Dark,
		LedsOn:        snap.OutputsOn,
		LedsTotal:     snap.Config.Outputs,
		AutoEnabled:   snap.AutoEnabled,
		ForceOn:       snap.ForceOn,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		MQTT:          MQTTStatus{Connected: snap.MQTTConnected, Broker: snap.Config.Broker},
		Counts: CountsJSON{
			ModeChanges:   snap.Counts.ModeChanges,
			ButtonPresses: snap.Counts.ButtonPresses,
		},
		Config: ConfigJSON{
			PollMs:        snap.Config.PollMs,
			TelemetryMs:   snap.Config.TelemetryMs,
			Broker:        snap.Config.Broker,
			HTTPAddr:      snap.Config.HTTPAddr,
			DarkThreshold: snap.Config.DarkThreshold,
		},
	}
}

// FormatJSON creates the JSON document served over HTTP.
func FormatJSON(snap Snapshot) []byte {
	data, _ := json.MarshalIndent(StatusJSON{Status: buildInner(snap)}, "", "  ")
	return data
}

// FormatStatusEvent creates the JSON payload for a system lifecycle event
// (STARTUP, SHUTDOWN, HEARTBEAT) carrying the full status snapshot.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason
	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
