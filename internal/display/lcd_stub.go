//go:build !linux

package display

import "errors"

// LCD is not available on non-Linux platforms.
type LCD struct{}

// NewLCD returns an error on non-Linux platforms.
func NewLCD(busName string, addr uint16) (*LCD, error) {
	return nil, errors.New("display: lcd not supported on this platform (requires Linux)")
}

// ShowStatus is not implemented on non-Linux platforms.
func (l *LCD) ShowStatus(sensorRaw int, modeName string, onCount, total int) error {
	return errors.New("display: lcd not supported")
}

// Close is not implemented on non-Linux platforms.
func (l *LCD) Close() error { return nil }
