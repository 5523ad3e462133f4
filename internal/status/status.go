// Package status provides a thread-safe status tracker for the lampd
// daemon. It is read by the HTTP handlers and the MQTT system events.
package status

import (
	"sync"
	"time"
)

// Config contains daemon configuration for display.
type Config struct {
	PollMs        int64
	TelemetryMs   int64
	Broker        string
	HTTPAddr      string
	Outputs       int
	DarkThreshold int
}

// Counts tracks activity since startup.
type Counts struct {
	ModeChanges   int
	ButtonPresses int
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	SensorRaw     int
	Dark          bool
	Mode          string
	OutputsOn     int
	AutoEnabled   bool
	ForceOn       bool
	Counts        Counts
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the per-cycle state. Called from the controller loop on
// every tick.
func (t *Tracker) Update(sensorRaw int, dark bool, mode string, outputsOn int, autoEnabled, forceOn bool, counts Counts) {
	t.mu.Lock()
	t.snap.SensorRaw = sensorRaw
	t.snap.Dark = dark
	t.snap.Mode = mode
	t.snap.OutputsOn = outputsOn
	t.snap.AutoEnabled = autoEnabled
	t.snap.ForceOn = forceOn
	t.snap.Counts = counts
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
