package display

import "github.com/rs/zerolog"

// LogPanel writes the rendered panel lines to the structured log. Used
// when no LCD is wired. Unchanged lines are not repeated, so the log is
// written at status-change rate rather than poll rate.
type LogPanel struct {
	log  zerolog.Logger
	last [2]string
}

// NewLogPanel creates a panel that logs through the given logger.
func NewLogPanel(log zerolog.Logger) *LogPanel {
	return &LogPanel{log: log}
}

// ShowStatus logs the two panel lines when they change.
func (p *LogPanel) ShowStatus(sensorRaw int, modeName string, onCount, total int) error {
	lines := [2]string{Line1(sensorRaw, onCount, total), Line2(modeName)}
	if lines == p.last {
		return nil
	}
	p.last = lines
	p.log.Info().Str("line1", lines[0]).Str("line2", lines[1]).Msg("panel")
	return nil
}

// Close is a no-op.
func (p *LogPanel) Close() error { return nil }

var _ Panel = (*LogPanel)(nil)
