//go:build !linux

package gpio

import "errors"

var errUnsupported = errors.New("gpio: not supported on this platform (requires Linux)")

// RealWriter is not available on non-Linux platforms.
type RealWriter struct{}

// NewRealWriter returns an error on non-Linux platforms.
func NewRealWriter(chipName string, pin int) (*RealWriter, error) {
	return nil, errUnsupported
}

// Set is not implemented on non-Linux platforms.
func (w *RealWriter) Set(high bool) error {
	return errUnsupported
}

// Close is not implemented on non-Linux platforms.
func (w *RealWriter) Close() error {
	return nil
}

// RPIOWriter is not available on non-Linux platforms.
type RPIOWriter struct{}

// NewRPIOWriter returns an error on non-Linux platforms.
func NewRPIOWriter(pin int) (*RPIOWriter, error) {
	return nil, errUnsupported
}

// Set is not implemented on non-Linux platforms.
func (w *RPIOWriter) Set(high bool) error {
	return errUnsupported
}

// Close is not implemented on non-Linux platforms.
func (w *RPIOWriter) Close() error {
	return nil
}
