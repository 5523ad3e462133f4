//go:build !linux

package hw

import "errors"

var errUnsupported = errors.New("hw: not supported on this platform (requires Linux)")

// InputBank is not available on non-Linux platforms.
type InputBank struct{}

// OpenInputBank returns an error on non-Linux platforms.
func OpenInputBank(chipName string) (*InputBank, error) {
	return nil, errUnsupported
}

// Line is not implemented on non-Linux platforms.
func (b *InputBank) Line(offset int) (DigitalIn, error) {
	return nil, errUnsupported
}

// Close is not implemented on non-Linux platforms.
func (b *InputBank) Close() error {
	return nil
}

// SysfsPWM is not available on non-Linux platforms.
type SysfsPWM struct{}

// OpenSysfsPWM returns an error on non-Linux platforms.
func OpenSysfsPWM(chip, channel, periodNs int) (*SysfsPWM, error) {
	return nil, errUnsupported
}

// SetDuty is not implemented on non-Linux platforms.
func (p *SysfsPWM) SetDuty(v int) {}

// Close is not implemented on non-Linux platforms.
func (p *SysfsPWM) Close() error {
	return nil
}

// IIOADC is not available on non-Linux platforms.
type IIOADC struct{}

// OpenIIOADC returns an error on non-Linux platforms.
func OpenIIOADC(deviceDir string, ch int) (*IIOADC, error) {
	return nil, errUnsupported
}

// Sample is not implemented on non-Linux platforms.
func (a *IIOADC) Sample() int {
	return 0
}
