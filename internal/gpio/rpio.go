//go:build linux

package gpio

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// RPIOWriter drives the line through memory-mapped /dev/gpiomem registers.
// Writes cannot fail once the mapping is open.
type RPIOWriter struct {
	pin  rpio.Pin
	open bool
}

// NewRPIOWriter maps the GPIO registers and configures pin as an output, initially low.
func NewRPIOWriter(pin int) (*RPIOWriter, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("open gpiomem: %w", err)
	}

	p := rpio.Pin(pin)
	p.Output()
	p.Low()

	return &RPIOWriter{pin: p, open: true}, nil
}

// Set drives the line to the requested level.
func (w *RPIOWriter) Set(high bool) error {
	if !w.open {
		return fmt.Errorf("set pin %d %s: writer closed", int(w.pin), levelString(high))
	}
	if high {
		w.pin.High()
	} else {
		w.pin.Low()
	}
	return nil
}

// Close reverts the pin to an input and unmaps the registers.
func (w *RPIOWriter) Close() error {
	if !w.open {
		return nil
	}
	w.open = false
	w.pin.Input()
	if err := rpio.Close(); err != nil {
		return fmt.Errorf("close gpiomem: %w", err)
	}
	return nil
}
