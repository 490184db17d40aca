// Package input locates the touchscreen among the evdev input devices and
// reads its pending events without blocking.
package input

import (
	"errors"
	"time"
)

// Event types and codes from linux/input-event-codes.h.
const (
	EvSyn = 0x00
	EvKey = 0x01
	EvRel = 0x02
	EvAbs = 0x03
	EvMax = 0x1f

	AbsX           = 0x00
	AbsY           = 0x01
	AbsPressure    = 0x18
	AbsMtPositionX = 0x35
	AbsMtPositionY = 0x36
)

// ErrNotFound is returned when no input device looks like a touchscreen.
var ErrNotFound = errors.New("no touchscreen device found")

// Event is a decoded struct input_event.
type Event struct {
	Time  time.Time
	Type  uint16
	Code  uint16
	Value int32
}

// Capabilities maps an event type to the codes the device reports for it.
type Capabilities map[uint16][]uint16

// Device is an open input device.
type Device interface {
	Name() string
	Path() string
	Capabilities() Capabilities

	// ReadEvents drains every event that is immediately available.
	// An empty result with a nil error means nothing was pending.
	ReadEvents() ([]Event, error)

	Close() error
}

// OpenFunc opens the device node at path.
type OpenFunc func(path string) (Device, error)

// HasAbsEvent reports whether any event is an absolute-position event.
func HasAbsEvent(events []Event) bool {
	for _, e := range events {
		if e.Type == EvAbs {
			return true
		}
	}
	return false
}
