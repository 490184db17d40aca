// Package config holds the fixed parameters of the backlight controller.
// Values are passed explicitly into each component; nothing reads globals.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GPIO backends.
const (
	BackendCdev = "cdev" // Linux GPIO character device
	BackendRPIO = "rpio" // /dev/gpiomem register access
)

// Defaults.
const (
	DefaultInputDir      = "/dev/input"
	DefaultChip          = "gpiochip0"
	DefaultPin           = 24 // BCM numbering
	DefaultScreenTimeout = 60 * time.Second
	DefaultPollInterval  = 100 * time.Millisecond
)

// Config is the immutable configuration of one controller instance.
type Config struct {
	InputDir      string
	Chip          string
	Pin           int
	Backend       string
	ScreenTimeout time.Duration
	PollInterval  time.Duration

	// Broker is the MQTT broker URL for screen state events. Empty disables publishing.
	Broker string
}

// Default returns the configuration the device ships with.
func Default() Config {
	return Config{
		InputDir:      DefaultInputDir,
		Chip:          DefaultChip,
		Pin:           DefaultPin,
		Backend:       BackendCdev,
		ScreenTimeout: DefaultScreenTimeout,
		PollInterval:  DefaultPollInterval,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("input dir is empty")
	}
	if c.Pin < 0 {
		return fmt.Errorf("invalid pin %d", c.Pin)
	}
	switch c.Backend {
	case BackendCdev:
		if c.Chip == "" {
			return errors.New("gpio chip is empty")
		}
	case BackendRPIO:
	default:
		return fmt.Errorf("unknown gpio backend %q", c.Backend)
	}
	if c.ScreenTimeout <= 0 {
		return fmt.Errorf("screen timeout must be positive, got %v", c.ScreenTimeout)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", c.PollInterval)
	}
	return nil
}
