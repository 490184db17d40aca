// Package mqtt publishes screen state changes with abstraction for testing.
package mqtt

import (
	"encoding/json"
	"time"

	"github.com/sweeney/touch-backlight/internal/logic"
)

// Topic is the MQTT topic for screen on/off events.
const Topic = "display/backlight/events"

// TopicSystem is the MQTT topic for lifecycle events.
const TopicSystem = "display/backlight/system"

// Publisher publishes events to MQTT.
type Publisher interface {
	// Publish sends a screen event. Errors must not stop the backlight loop.
	Publish(event logic.Event, device string) error

	// PublishSystem sends a lifecycle event.
	PublishSystem(event SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// SystemEvent represents a lifecycle event (startup or shutdown).
type SystemEvent struct {
	Timestamp time.Time
	Event     string // "STARTUP", "SHUTDOWN"
	Reason    string // e.g. "SIGTERM" (shutdown only)
	Device    string // touchscreen name
	Retained  bool
}

// Payload is the JSON body of a screen event.
type Payload struct {
	Screen ScreenPayload `json:"screen"`
}

// ScreenPayload contains the screen event details.
type ScreenPayload struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Device    string `json:"device,omitempty"`
}

// FormatPayload creates the JSON payload for a screen event.
func FormatPayload(event logic.Event, device string) ([]byte, error) {
	return json.Marshal(Payload{
		Screen: ScreenPayload{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     string(event.Type),
			Device:    device,
		},
	})
}

// SystemPayload is the JSON body of a lifecycle event.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner contains the lifecycle event details.
type SystemPayloadInner struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
	Device    string `json:"device,omitempty"`
}

// FormatSystemPayload creates the JSON payload for a lifecycle event.
func FormatSystemPayload(event SystemEvent) ([]byte, error) {
	return json.Marshal(SystemPayload{
		System: SystemPayloadInner{
			Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
			Event:     event.Event,
			Reason:    event.Reason,
			Device:    event.Device,
		},
	})
}
