// Package mqtt publishes lighting status to an MQTT broker, with an
// abstraction for testing and a discard sink for broker-less setups.
package mqtt

import (
	"encoding/json"
	"time"
)

// Topic is the MQTT topic for lighting status events.
const Topic = "home/lights/status"

// TopicSystem is the MQTT topic for system lifecycle events.
const TopicSystem = "home/lights/system"

// Publisher publishes events to MQTT.
type Publisher interface {
	// Publish sends a lighting status event to the broker.
	// Returns error if publishing fails (should not crash the process).
	Publish(event StatusEvent) error

	// PublishSystem sends a system lifecycle event to the broker.
	PublishSystem(event SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// ConnectionStatus reports whether the MQTT connection is active.
type ConnectionStatus interface {
	IsConnected() bool
}

// StatusEvent describes the lighting state at a mode change.
type StatusEvent struct {
	Timestamp   time.Time
	Mode        string
	SensorRaw   int
	Dark        bool
	OutputsOn   int
	Outputs     int
	AutoEnabled bool
	ForceOn     bool
}

// SystemEvent represents a system lifecycle event (e.g., startup, shutdown, heartbeat).
type SystemEvent struct {
	Timestamp  time.Time
	Event      string // e.g., "STARTUP", "SHUTDOWN", "HEARTBEAT"
	Reason     string // e.g., "SIGTERM", "SIGINT" (shutdown only)
	RawPayload []byte // Pre-formatted JSON payload; if set, FormatSystemPayload returns it directly
	Retained   bool   // Whether the message should be retained by the broker
}

// Payload represents the MQTT message payload structure.
type Payload struct {
	Lights LightsPayload `json:"lights"`
}

// LightsPayload contains the lighting status details.
type LightsPayload struct {
	Timestamp   string `json:"timestamp"`
	Mode        string `json:"mode"`
	LDRRaw      int    `json:"ldr_raw"`
	Dark        bool   `json:"dark"`
	LedsOn      int    `json:"leds_on"`
	LedsTotal   int    `json:"leds_total"`
	AutoEnabled bool   `json:"auto_enabled"`
	ForceOn     bool   `json:"force_on"`
}

// FormatPayload creates the JSON payload for a lighting status event.
func FormatPayload(event StatusEvent) ([]byte, error) {
	payload := Payload{
		Lights: LightsPayload{
			Timestamp:   event.Timestamp.UTC().Format(time.RFC3339),
			Mode:        event.Mode,
			LDRRaw:      event.SensorRaw,
			Dark:        event.Dark,
			LedsOn:      event.OutputsOn,
			LedsTotal:   event.Outputs,
			AutoEnabled: event.AutoEnabled,
			ForceOn:     event.ForceOn,
		},
	}
	return json.Marshal(payload)
}

// SystemPayload represents the MQTT message payload for system events
// that don't carry a full status snapshot.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner contains the system event details.
type SystemPayloadInner struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
}

// FormatSystemPayload creates the JSON payload for a system event.
// If event.RawPayload is set, it is returned directly (used for full status snapshots).
func FormatSystemPayload(event SystemEvent) ([]byte, error) {
	if event.RawPayload != nil {
		return event.RawPayload, nil
	}

	payload := SystemPayload{
		System: SystemPayloadInner{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     event.Event,
			Reason:    event.Reason,
		},
	}
	return json.Marshal(payload)
}

// Discard is a Publisher that drops everything, used when no broker is
// configured.
type Discard struct{}

// Publish drops the event.
func (Discard) Publish(StatusEvent) error { return nil }

// PublishSystem drops the event.
func (Discard) PublishSystem(SystemEvent) error { return nil }

// Close is a no-op.
func (Discard) Close() error { return nil }

// IsConnected always reports false.
func (Discard) IsConnected() bool { return false }
