package logic

import "time"

// logThrottle is the minimum gap between two printed notices.
const logThrottle = time.Second

// countdownStep is the granularity of countdown notices, in seconds.
const countdownStep = 10

// Detector tracks touch activity and decides when the screen sleeps.
type Detector struct {
	timeout time.Duration

	// awake reports whether lastTouch is set. When false the screen is off
	// and no timeout check runs until the next touch.
	awake     bool
	lastTouch time.Time

	// lastLog is shared by activity and countdown notices.
	lastLog time.Time
}

// NewDetector creates a detector that is awake as of startTime, matching the
// controller turning the screen on at startup.
func NewDetector(timeout time.Duration, startTime time.Time) *Detector {
	return &Detector{
		timeout:   timeout,
		awake:     true,
		lastTouch: startTime,
	}
}

// Timeout returns the configured idle duration.
func (d *Detector) Timeout() time.Duration {
	return d.timeout
}

// Process takes one poll and returns the actions for this iteration, in order.
// A touch is handled before the timeout check, so a touch in the same
// iteration as an expiry always keeps the screen on.
func (d *Detector) Process(input Input) []Event {
	var events []Event

	if input.Touched {
		notify := d.allowLog(input.Time)
		d.awake = true
		d.lastTouch = input.Time
		events = append(events, Event{
			Timestamp: input.Time,
			Type:      EventWake,
			Notify:    notify,
		})
	}

	if !d.awake {
		return events
	}

	remaining := d.timeout - input.Time.Sub(d.lastTouch)
	if remaining <= 0 {
		d.awake = false
		d.lastTouch = time.Time{}
		return append(events, Event{
			Timestamp: input.Time,
			Type:      EventSleep,
			Notify:    true,
		})
	}

	secs := int(remaining / time.Second)
	if secs%countdownStep == 0 && d.allowLog(input.Time) {
		events = append(events, Event{
			Timestamp: input.Time,
			Type:      EventCountdown,
			Notify:    true,
			Remaining: secs,
		})
	}

	return events
}

// allowLog consumes the throttle if at least logThrottle has passed.
func (d *Detector) allowLog(now time.Time) bool {
	if !d.lastLog.IsZero() && now.Sub(d.lastLog) < logThrottle {
		return false
	}
	d.lastLog = now
	return true
}

// CurrentState returns AWAKE while the idle timer is running, ASLEEP otherwise.
func (d *Detector) CurrentState() State {
	if d.awake {
		return StateAwake
	}
	return StateAsleep
}

// LastTouch returns the time of the last touch and whether the timer is running.
func (d *Detector) LastTouch() (time.Time, bool) {
	return d.lastTouch, d.awake
}

// Remaining returns the time left before sleep, or 0 when already asleep.
func (d *Detector) Remaining(now time.Time) time.Duration {
	if !d.awake {
		return 0
	}
	r := d.timeout - now.Sub(d.lastTouch)
	if r < 0 {
		return 0
	}
	return r
}
