// Package logic contains the pure screen timeout state machine.
// This package has NO external dependencies (no GPIO, evdev, MQTT, OS, or time.Sleep).
// Time is always injectable via time.Time parameters.
package logic

import "time"

// State is the logical backlight state.
type State string

const (
	StateAwake  State = "AWAKE"
	StateAsleep State = "ASLEEP"
)

// EventType identifies what the caller must do in response to an input sample.
type EventType string

const (
	// EventWake: drive the line high. Emitted for every sample with touch activity.
	EventWake EventType = "SCREEN_ON"
	// EventSleep: drive the line low. Emitted once per idle episode.
	EventSleep EventType = "SCREEN_OFF"
	// EventCountdown: print the remaining whole seconds. No line change.
	EventCountdown EventType = "COUNTDOWN"
)

// Event is one action produced by Detector.Process.
type Event struct {
	Timestamp time.Time
	Type      EventType

	// Notify is true when the activity notice passed the log throttle.
	// Only meaningful for EventWake; EventSleep and EventCountdown always notify.
	Notify bool

	// Remaining is the whole seconds left before sleep (EventCountdown only).
	Remaining int
}

// Input is a single poll of the touch device.
type Input struct {
	Touched bool // at least one absolute-position event was drained
	Time    time.Time
}
