package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeney/touch-backlight/internal/gpio"
	"github.com/sweeney/touch-backlight/internal/input"
	"github.com/sweeney/touch-backlight/internal/logic"
	"github.com/sweeney/touch-backlight/internal/mqtt"
)

// TestIntegrationFullFlow runs discovery, the timeout state machine, the GPIO
// line and MQTT payloads together using fakes.
func TestIntegrationFullFlow(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"event0", "event1", "mice"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o600))
	}

	kbd := input.NewFakeDevice("Dell USB Keyboard", "", input.Capabilities{input.EvKey: {30, 31}})
	panel := input.NewFakeDevice("QDtech MPI3501", "", input.Capabilities{
		input.EvKey: {0x14a},
		input.EvAbs: {input.AbsX, input.AbsY, input.AbsPressure},
	})
	// 2s timeout at 100ms polls: touch at 0.5s, idle until off at 2.5s,
	// touch again at 4s.
	panel.Batches = make([][]input.Event, 50)
	panel.Batches[4] = input.Touch(10, 10)
	panel.Batches[39] = input.Touch(20, 20)

	devices := map[string]*input.FakeDevice{"event0": kbd, "event1": panel}
	dev, err := input.FindTouchscreen(dir, func(path string) (input.Device, error) {
		d := devices[filepath.Base(path)]
		d.DevicePath = path
		return d, nil
	})
	require.NoError(t, err)
	require.Equal(t, "QDtech MPI3501", dev.Name())
	assert.True(t, kbd.Closed)

	line := gpio.NewFakeWriter()
	publisher := mqtt.NewFakePublisher()
	startTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	detector := logic.NewDetector(2*time.Second, startTime)
	require.NoError(t, line.Set(true))

	pollInterval := 100 * time.Millisecond

	// Simulate the main loop
	for i := 0; i < 50; i++ {
		now := startTime.Add(time.Duration(i+1) * pollInterval)
		events, err := dev.ReadEvents()
		require.NoError(t, err)

		before := detector.CurrentState()
		for _, ev := range detector.Process(logic.Input{Touched: input.HasAbsEvent(events), Time: now}) {
			switch ev.Type {
			case logic.EventWake:
				require.NoError(t, line.Set(true))
			case logic.EventSleep:
				require.NoError(t, line.Set(false))
			}
		}
		if after := detector.CurrentState(); after != before {
			typ := logic.EventSleep
			if after == logic.StateAwake {
				typ = logic.EventWake
			}
			require.NoError(t, publisher.Publish(logic.Event{Timestamp: now, Type: typ}, dev.Name()))
		}
	}

	assert.Equal(t, []bool{true, true, false, true}, line.Writes)
	assert.True(t, line.High)
	require.NoError(t, line.Close())
	assert.True(t, line.Closed())

	require.Equal(t, []logic.EventType{logic.EventSleep, logic.EventWake}, publisher.EventTypes())

	var off mqtt.Payload
	require.NoError(t, json.Unmarshal(publisher.Payloads[0], &off))
	assert.Equal(t, "SCREEN_OFF", off.Screen.Event)
	assert.Equal(t, "2026-01-01T12:00:02Z", off.Screen.Timestamp, "RFC3339 drops the .5s")
	assert.Equal(t, "QDtech MPI3501", off.Screen.Device)

	var on mqtt.Payload
	require.NoError(t, json.Unmarshal(publisher.Payloads[1], &on))
	assert.Equal(t, "SCREEN_ON", on.Screen.Event)
	assert.Equal(t, "2026-01-01T12:00:04Z", on.Screen.Timestamp)
}
