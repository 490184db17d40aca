package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// touchAxes are the absolute axes that mark a touch surface. 53 and 54 are
// the raw codes some vendor drivers report for position; they coincide with
// the multi-touch axes.
var touchAxes = []uint16{
	AbsX,
	AbsY,
	AbsMtPositionX,
	AbsMtPositionY,
	AbsPressure,
	53,
	54,
}

var touchKeywords = []string{"touch", "ts", "touchscreen", "qdtech"}

// FindTouchscreen scans dir for event* nodes and returns the first one that
// reports absolute touch axes or has a touch-like name. Nodes that fail to
// open are logged and skipped. The scan runs once; devices plugged in later
// are never seen.
func FindTouchscreen(dir string, open OpenFunc) (Device, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}

	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "event") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		dev, err := open(path)
		if err != nil {
			log.Warn().Err(err).Msgf("Error checking device %s", entry.Name())
			continue
		}

		log.Info().Msgf("Checking device: %s", dev.Name())
		log.Info().Msgf("Path: %s", dev.Path())
		log.Debug().Msgf("Capabilities: %s", dev.Capabilities())

		if IsTouchscreen(dev) {
			log.Info().Msgf("Found touchscreen device: %s", dev.Name())
			return dev, nil
		}

		if err := dev.Close(); err != nil {
			log.Debug().Err(err).Str("path", path).Msg("close rejected device")
		}
	}

	log.Warn().Msg("No touchscreen devices found after checking all input devices")
	return nil, ErrNotFound
}

// IsTouchscreen applies both heuristics. Either one is enough, so a non-touch
// device whose name happens to contain a keyword is accepted.
func IsTouchscreen(dev Device) bool {
	return hasAbsTouch(dev.Capabilities()) || hasTouchName(dev.Name())
}

func hasAbsTouch(caps Capabilities) bool {
	if _, ok := caps[EvAbs]; !ok {
		return false
	}
	for _, axis := range touchAxes {
		if caps.Has(EvAbs, axis) {
			return true
		}
	}
	return false
}

func hasTouchName(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range touchKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
