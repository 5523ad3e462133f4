// Command lampd drives dimmable LED channels from a light sensor, a mode
// potentiometer, and push buttons, with an I2C character display, MQTT
// telemetry, and an HTTP status page.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sweeney/lampd/internal/config"
	"github.com/sweeney/lampd/internal/device"
	"github.com/sweeney/lampd/internal/display"
	"github.com/sweeney/lampd/internal/hw"
	"github.com/sweeney/lampd/internal/mode"
	"github.com/sweeney/lampd/internal/mqtt"
	"github.com/sweeney/lampd/internal/status"
	"github.com/sweeney/lampd/internal/web"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	poll := flag.Duration("poll", 0, "Override controller loop period")
	broker := flag.String("broker", "", "Override MQTT broker address (enables MQTT)")
	httpAddr := flag.String("http", "", "Override HTTP status address")
	printState := flag.Bool("print-state", false, "Print current input state and exit")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		cfg = loaded
	}
	if *poll > 0 {
		cfg.Poll = config.Duration(*poll)
	}
	if *broker != "" {
		cfg.MQTT.Enabled = true
		cfg.MQTT.Broker = *broker
	}
	if *httpAddr != "" {
		cfg.HTTP.Addr = *httpAddr
	}

	setupLogging(cfg.Log.Level, cfg.Log.JSON, cfg.Log.Colors)
	log.Info().Str("config", configPath).Msg("Starting lampd")

	if err := run(cfg, *printState); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}

func setupLogging(level string, useJSON bool, colors bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	if useJSON {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "2006-01-02T15:04:05.000Z07:00",
			NoColor:    !colors,
		})
	}

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// rig holds the devices the controller loop owns. Nothing else touches
// them.
type rig struct {
	sensor    *device.LightSensor
	selector  *device.Selector
	autoBtn   *device.Button
	enableBtn *device.Button
	manual    []*device.Button
	leds      []*device.Dimmer
}

// all returns every device for uniform initialization.
func (r *rig) all() []device.Device {
	devs := []device.Device{r.sensor, r.selector, r.autoBtn, r.enableBtn}
	for _, b := range r.manual {
		devs = append(devs, b)
	}
	for _, l := range r.leds {
		devs = append(devs, l)
	}
	return devs
}

// newButton requests a GPIO line for the button, or builds an inert one
// for offset 0 (unwired).
func newButton(id string, bank *hw.InputBank, offset int) (*device.Button, error) {
	if offset == 0 {
		return device.NewButton(id, 0, nil), nil
	}
	line, err := bank.Line(offset)
	if err != nil {
		return nil, err
	}
	return device.NewButton(id, offset, line), nil
}

// buildRig opens all hardware lines and binds the devices to them.
// The returned closers release the PWM channels.
func buildRig(cfg *config.Config, bank *hw.InputBank) (*rig, []*hw.SysfsPWM, error) {
	sensorADC, err := hw.OpenIIOADC(cfg.ADC.Device, cfg.ADC.SensorChannel)
	if err != nil {
		return nil, nil, fmt.Errorf("open light sensor: %w", err)
	}
	selectorADC, err := hw.OpenIIOADC(cfg.ADC.Device, cfg.ADC.SelectorChannel)
	if err != nil {
		return nil, nil, fmt.Errorf("open mode selector: %w", err)
	}

	r := &rig{
		sensor:   device.NewLightSensor("ldr", cfg.ADC.SensorChannel, sensorADC, cfg.ADC.DarkThreshold),
		selector: device.NewSelector("pot", cfg.ADC.SelectorChannel, selectorADC, cfg.ADC.FullScale),
	}

	if r.autoBtn, err = newButton("btn-auto", bank, cfg.GPIO.AutoButton); err != nil {
		return nil, nil, err
	}
	if r.enableBtn, err = newButton("btn-enable", bank, cfg.GPIO.EnableButton); err != nil {
		return nil, nil, err
	}
	for i, offset := range cfg.GPIO.ManualButtons {
		b, err := newButton(fmt.Sprintf("btn-%d", i+1), bank, offset)
		if err != nil {
			return nil, nil, err
		}
		r.manual = append(r.manual, b)
	}

	var pwms []*hw.SysfsPWM
	for i, ch := range cfg.PWM.Channels {
		pwm, err := hw.OpenSysfsPWM(cfg.PWM.Chip, ch, cfg.PWM.PeriodNs)
		if err != nil {
			for _, p := range pwms {
				p.Close()
			}
			return nil, nil, fmt.Errorf("open led channel %d: %w", ch, err)
		}
		pwms = append(pwms, pwm)
		r.leds = append(r.leds, device.NewDimmer(fmt.Sprintf("led-%d", i+1), ch, pwm))
	}

	return r, pwms, nil
}

func run(cfg *config.Config, printState bool) error {
	bank, err := hw.OpenInputBank(cfg.GPIO.Chip)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer bank.Close()

	r, pwms, err := buildRig(cfg, bank)
	if err != nil {
		return err
	}
	defer func() {
		for _, p := range pwms {
			p.Close()
		}
	}()

	for _, d := range r.all() {
		d.Init()
	}

	// Print state mode
	if printState {
		raw := r.sensor.Read()
		dark := "claro"
		if r.sensor.Dark() {
			dark = "oscuro"
		}
		fmt.Printf("LDR: %d (%s), Modo: %s\n", raw, dark, r.selector.SelectedMode())
		return nil
	}

	// Display panel: LCD when wired, structured log otherwise.
	var panel display.Panel
	if cfg.LCD.Enabled {
		lcd, err := display.NewLCD(cfg.LCD.Bus, cfg.LCD.Addr)
		if err != nil {
			return fmt.Errorf("init lcd: %w", err)
		}
		panel = lcd
	} else {
		panel = display.NewLogPanel(log.With().Str("component", "panel").Logger())
	}
	defer panel.Close()

	// Telemetry sink.
	var publisher mqtt.Publisher
	var mqttStatus mqtt.ConnectionStatus
	if cfg.MQTT.Enabled {
		real, err := mqtt.NewRealPublisher(cfg.MQTT.Broker)
		if err != nil {
			return fmt.Errorf("init mqtt: %w", err)
		}
		publisher = real
		mqttStatus = real
	} else {
		d := mqtt.Discard{}
		publisher = d
		mqttStatus = d
	}
	defer publisher.Close()

	tracker := status.NewTracker(time.Now(), status.Config{
		PollMs:        cfg.Poll.Duration().Milliseconds(),
		TelemetryMs:   cfg.Telemetry.Duration().Milliseconds(),
		Broker:        cfg.MQTT.Broker,
		HTTPAddr:      cfg.HTTP.Addr,
		Outputs:       len(r.leds),
		DarkThreshold: cfg.ADC.DarkThreshold,
	})

	// Publish startup event with full status snapshot
	startupEvent := mqtt.SystemEvent{
		Timestamp:  time.Now(),
		Event:      "STARTUP",
		Retained:   true,
		RawPayload: status.FormatStatusEvent(tracker.Snapshot(), "STARTUP", ""),
	}
	if err := publisher.PublishSystem(startupEvent); err != nil {
		log.Warn().Err(err).Msg("failed to publish startup event")
	}

	// Start HTTP status server
	if cfg.HTTP.Addr != "" {
		srv := web.New(cfg.HTTP.Addr, tracker)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("http server error")
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("http status server listening")
	}

	log.Info().
		Dur("poll", cfg.Poll.Duration()).
		Int("leds", len(r.leds)).
		Bool("auto_enabled", cfg.AutoEnabledOn()).
		Msg("started")

	ticker := time.NewTicker(cfg.Poll.Duration())
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ctrl := mode.NewController(cfg.AutoEnabledOn())
	start := time.Now()
	millis := func() uint32 {
		return uint32(time.Since(start).Milliseconds())
	}

	return runLoop(r, ctrl, panel, publisher, mqttStatus, tracker,
		cfg.Telemetry.Duration(), millis, time.Now, ticker.C, sigCh)
}

func runLoop(r *rig, ctrl *mode.Controller, panel display.Panel, publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, telemetry time.Duration, millis func() uint32, now func() time.Time, tick <-chan time.Time, sig <-chan os.Signal) error {
	outputs := make([]mode.Output, len(r.leds))
	for i, l := range r.leds {
		outputs[i] = l
	}

	var counts status.Counts
	prevMode := ctrl.Mode()
	telemetryMs := uint32(telemetry.Milliseconds())
	var lastTelemetry uint32

	for {
		select {
		case s := <-sig:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			event := mqtt.SystemEvent{
				Timestamp: now(),
				Event:     "SHUTDOWN",
				Reason:    signalName,
				Retained:  true,
			}
			if tracker != nil {
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
				event.RawPayload = status.FormatStatusEvent(tracker.Snapshot(), "SHUTDOWN", signalName)
			}
			if err := publisher.PublishSystem(event); err != nil {
				log.Warn().Err(err).Msg("failed to publish shutdown event")
			}
			return nil

		case <-tick:
			ms := millis()
			raw := r.sensor.Read()
			dark := raw <= r.sensor.Threshold()

			// The selector continuously drives the mode; a shortcut
			// press below overrides it until the next cycle.
			ctrl.SetMode(int(r.selector.SelectedMode()))

			if r.autoBtn.Poll(ms) {
				ctrl.ForceAutoShortcut()
				counts.ButtonPresses++
				log.Debug().Bool("force_on", ctrl.ForceOn()).Msg("auto shortcut pressed")
			}
			if r.enableBtn.Poll(ms) {
				ctrl.ToggleAutoEnabled()
				counts.ButtonPresses++
				log.Debug().Bool("auto_enabled", ctrl.AutoEnabled()).Msg("auto apply toggled")
			}

			if ctrl.Mode() == mode.Manual {
				n := len(r.manual)
				if n > len(r.leds) {
					n = len(r.leds)
				}
				for i := 0; i < n; i++ {
					if r.manual[i].Poll(ms) {
						r.leds[i].Toggle()
						counts.ButtonPresses++
					}
				}
			}

			plan := ctrl.Decide(dark, ms)
			switch {
			case plan == mode.PlanParty:
				ctrl.StepParty(outputs, ms)
			case plan.Uniform() && (ctrl.Mode() == mode.Auto || ctrl.AutoEnabled()):
				for _, l := range r.leds {
					l.SetBrightness(plan.Level())
				}
			}

			on := 0
			for _, l := range r.leds {
				if l.On() {
					on++
				}
			}

			if m := ctrl.Mode(); m != prevMode {
				counts.ModeChanges++
				prevMode = m
				log.Info().Str("mode", m.String()).Msg("mode changed")
				event := mqtt.StatusEvent{
					Timestamp:   now(),
					Mode:        m.String(),
					SensorRaw:   raw,
					Dark:        dark,
					OutputsOn:   on,
					Outputs:     len(r.leds),
					AutoEnabled: ctrl.AutoEnabled(),
					ForceOn:     ctrl.ForceOn(),
				}
				if err := publisher.Publish(event); err != nil {
					log.Warn().Err(err).Msg("publish error")
					// Don't crash on publish failure
				}
			}

			if tracker != nil {
				tracker.Update(raw, dark, ctrl.Mode().String(), on, ctrl.AutoEnabled(), ctrl.ForceOn(), counts)
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
			}

			if err := panel.ShowStatus(raw, ctrl.Mode().String(), on, len(r.leds)); err != nil {
				log.Debug().Err(err).Msg("panel error")
			}

			if ms-lastTelemetry >= telemetryMs {
				lastTelemetry = ms
				e := log.Info().
					Int("ldr", raw).
					Bool("dark", dark).
					Str("mode", ctrl.Mode().String()).
					Bool("auto_enabled", ctrl.AutoEnabled()).
					Int("leds_on", on)
				if ctrl.Mode() == mode.Auto {
					e = e.Bool("force_on", ctrl.ForceOn())
				}
				e.Msg("status")

				if tracker != nil {
					hb := mqtt.SystemEvent{
						Timestamp:  now(),
						Event:      "HEARTBEAT",
						RawPayload: status.FormatStatusEvent(tracker.Snapshot(), "HEARTBEAT", ""),
					}
					if err := publisher.PublishSystem(hb); err != nil {
						log.Warn().Err(err).Msg("heartbeat publish error")
					}
				}
			}
		}
	}
}
