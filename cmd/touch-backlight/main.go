// Command touch-backlight switches the display backlight off after a period
// without touchscreen input and back on at the next touch.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sweeney/touch-backlight/internal/config"
	"github.com/sweeney/touch-backlight/internal/gpio"
	"github.com/sweeney/touch-backlight/internal/input"
	"github.com/sweeney/touch-backlight/internal/logging"
	"github.com/sweeney/touch-backlight/internal/logic"
	"github.com/sweeney/touch-backlight/internal/mqtt"
)

func main() {
	logging.Init()

	if err := run(config.Default(), realHardware()); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}

// hardware opens the devices the controller drives. Tests substitute fakes.
type hardware struct {
	openDevice   input.OpenFunc
	openLine     func(cfg config.Config) (gpio.Writer, error)
	newPublisher func(broker string) mqtt.Publisher
}

func realHardware() hardware {
	return hardware{
		openDevice:   input.OpenDevice,
		openLine:     openLine,
		newPublisher: func(broker string) mqtt.Publisher { return mqtt.NewRealPublisher(broker) },
	}
}

func openLine(cfg config.Config) (gpio.Writer, error) {
	if cfg.Backend == config.BackendRPIO {
		w, err := gpio.NewRPIOWriter(cfg.Pin)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	w, err := gpio.NewRealWriter(cfg.Chip, cfg.Pin)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func run(cfg config.Config, hw hardware) error {
	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	return serve(cfg, hw, time.Now, ticker.C, sigCh)
}

// serve locates the touchscreen, claims the GPIO line and runs the monitor
// loop. The line is released on every return path, including panics.
func serve(cfg config.Config, hw hardware, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	dev, err := input.FindTouchscreen(cfg.InputDir, hw.openDevice)
	if err != nil {
		return fmt.Errorf("locate touchscreen: %w", err)
	}
	defer dev.Close()

	line, err := hw.openLine(cfg)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer releaseLine(line, cfg.Pin)

	var publisher mqtt.Publisher
	if cfg.Broker != "" {
		publisher = hw.newPublisher(cfg.Broker)
		defer publisher.Close()
		log.Info().Msgf("publishing screen state to %s", cfg.Broker)
	}

	log.Info().Msgf("started: device=%s pin=%d timeout=%v poll=%v",
		dev.Path(), cfg.Pin, cfg.ScreenTimeout, cfg.PollInterval)

	return runLoop(dev, line, publisher, cfg.ScreenTimeout, now, tick, sig)
}

func releaseLine(line gpio.Writer, pin int) {
	if err := line.Close(); err != nil {
		log.Error().Err(err).Msgf("release gpio pin %d", pin)
		return
	}
	log.Info().Msgf("released gpio pin %d", pin)
}

// runLoop turns the screen on, then polls dev on every tick until a signal
// arrives or a GPIO write fails. publisher may be nil.
func runLoop(dev input.Device, line gpio.Writer, publisher mqtt.Publisher, timeout time.Duration, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	start := now()
	detector := logic.NewDetector(timeout, start)

	if err := line.Set(true); err != nil {
		return fmt.Errorf("screen on: %w", err)
	}
	log.Info().Msg("Screen on")

	if publisher != nil {
		publishSystem(publisher, mqtt.SystemEvent{
			Timestamp: start,
			Event:     "STARTUP",
			Device:    dev.Name(),
			Retained:  true,
		})
		publish(publisher, logic.Event{Timestamp: start, Type: logic.EventWake}, dev.Name())
	}

	for {
		select {
		case s := <-sig:
			log.Info().Msgf("received %v, shutting down", s)
			if publisher != nil {
				publishSystem(publisher, mqtt.SystemEvent{
					Timestamp: now(),
					Event:     "SHUTDOWN",
					Reason:    signalName(s),
					Device:    dev.Name(),
					Retained:  true,
				})
			}
			return nil

		case <-tick:
			t := now()

			events, err := dev.ReadEvents()
			if err != nil {
				// treated as no events
				log.Debug().Err(err).Msg("touch read error")
			}

			before := detector.CurrentState()
			for _, ev := range detector.Process(logic.Input{Touched: input.HasAbsEvent(events), Time: t}) {
				if err := apply(ev, line, timeout); err != nil {
					return err
				}
			}

			if publisher != nil && detector.CurrentState() != before {
				typ := logic.EventSleep
				if detector.CurrentState() == logic.StateAwake {
					typ = logic.EventWake
				}
				publish(publisher, logic.Event{Timestamp: t, Type: typ}, dev.Name())
			}
		}
	}
}

// apply performs the GPIO write and log output for one detector event.
func apply(ev logic.Event, line gpio.Writer, timeout time.Duration) error {
	switch ev.Type {
	case logic.EventWake:
		if ev.Notify {
			log.Info().Msgf("Touch detected! Screen will turn off in %d seconds if no further input.", int(timeout/time.Second))
		}
		if err := line.Set(true); err != nil {
			return fmt.Errorf("screen on: %w", err)
		}

	case logic.EventSleep:
		log.Info().Msg("Turning screen off")
		if err := line.Set(false); err != nil {
			return fmt.Errorf("screen off: %w", err)
		}

	case logic.EventCountdown:
		log.Info().Msgf("Screen will turn off in %d seconds", ev.Remaining)
	}
	return nil
}

func publish(p mqtt.Publisher, ev logic.Event, device string) {
	if err := p.Publish(ev, device); err != nil {
		log.Warn().Err(err).Msg("publish error")
	}
}

func publishSystem(p mqtt.Publisher, ev mqtt.SystemEvent) {
	if err := p.PublishSystem(ev); err != nil {
		log.Warn().Err(err).Msgf("failed to publish %s event", ev.Event)
	}
}

func signalName(s os.Signal) string {
	switch s {
	case syscall.SIGINT:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	}
	return "UNKNOWN"
}
