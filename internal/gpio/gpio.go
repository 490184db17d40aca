// Package gpio provides the backlight power output with hardware abstraction.
// The real implementations use the Linux GPIO character device or /dev/gpiomem.
// The fake implementation allows testing without hardware.
package gpio

// Writer drives a single digital output line.
type Writer interface {
	// Set drives the line high (true) or low (false).
	Set(high bool) error

	// Close releases the line. Safe to call more than once.
	Close() error
}

// DefaultPin is the backlight power pin (BCM numbering).
const DefaultPin = 24

func levelString(high bool) string {
	if high {
		return "HIGH"
	}
	return "LOW"
}
