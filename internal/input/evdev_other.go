//go:build !linux

package input

import "errors"

// OpenDevice is not available on non-Linux platforms.
func OpenDevice(path string) (Device, error) {
	return nil, errors.New("input: evdev not supported on this platform (requires Linux)")
}
