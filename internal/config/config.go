// Package config loads the lampd YAML configuration and applies defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the daemon configuration.
type Config struct {
	Poll      Duration `yaml:"poll"`      // controller loop period
	Telemetry Duration `yaml:"telemetry"` // minimum interval between telemetry lines

	// AutoEnabled gates automatic brightness application in the fixed
	// modes. Defaults to true; nil means unset.
	AutoEnabled *bool `yaml:"auto_enabled"`

	Log  LogConfig  `yaml:"log"`
	GPIO GPIOConfig `yaml:"gpio"`
	PWM  PWMConfig  `yaml:"pwm"`
	ADC  ADCConfig  `yaml:"adc"`
	LCD  LCDConfig  `yaml:"lcd"`
	MQTT MQTTConfig `yaml:"mqtt"`
	HTTP HTTPConfig `yaml:"http"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	JSON   bool   `yaml:"json"`
	Colors bool   `yaml:"colors"`
}

// GPIOConfig maps the buttons onto GPIO line offsets. Offset 0 marks an
// unwired optional button.
type GPIOConfig struct {
	Chip          string `yaml:"chip"`
	AutoButton    int    `yaml:"auto_button"`    // Auto shortcut / force toggle
	EnableButton  int    `yaml:"enable_button"`  // auto-apply gate toggle (optional)
	ManualButtons []int  `yaml:"manual_buttons"` // one per LED, in LED order
}

// PWMConfig maps the LED outputs onto sysfs PWM channels.
type PWMConfig struct {
	Chip     int   `yaml:"chip"`
	PeriodNs int   `yaml:"period_ns"`
	Channels []int `yaml:"channels"`
}

// ADCConfig maps the analog inputs onto IIO ADC channels.
type ADCConfig struct {
	Device          string `yaml:"device"`
	SensorChannel   int    `yaml:"sensor_channel"`
	SelectorChannel int    `yaml:"selector_channel"`
	FullScale       int    `yaml:"full_scale"`
	DarkThreshold   int    `yaml:"dark_threshold"`
}

// LCDConfig contains the I2C character display settings.
type LCDConfig struct {
	Enabled bool   `yaml:"enabled"`
	Bus     string `yaml:"bus"`
	Addr    uint16 `yaml:"addr"`
}

// MQTTConfig contains the telemetry broker settings.
type MQTTConfig struct {
	Enabled bool   `yaml:"enabled"`
	Broker  string `yaml:"broker"`
}

// HTTPConfig contains the status server settings.
type HTTPConfig struct {
	Addr string `yaml:"addr"` // empty disables the server
}

// Duration is a wrapper around time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// AutoEnabledOn returns the auto-apply gate with its default.
func (c *Config) AutoEnabledOn() bool {
	if c.AutoEnabled == nil {
		return true
	}
	return *c.AutoEnabled
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses the configuration file. Environment variables in
// the file are expanded before decoding.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Poll == 0 {
		cfg.Poll = Duration(50 * time.Millisecond)
	}
	if cfg.Telemetry == 0 {
		cfg.Telemetry = Duration(1 * time.Second)
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.GPIO.Chip == "" {
		cfg.GPIO.Chip = "gpiochip0"
	}
	if cfg.GPIO.AutoButton == 0 {
		cfg.GPIO.AutoButton = 16
	}
	// EnableButton defaults to 0: unwired.
	if cfg.GPIO.ManualButtons == nil {
		cfg.GPIO.ManualButtons = []int{5, 6, 13, 19}
	}
	if cfg.PWM.PeriodNs == 0 {
		cfg.PWM.PeriodNs = 1_000_000 // 1 kHz
	}
	if cfg.PWM.Channels == nil {
		cfg.PWM.Channels = []int{0, 1, 2, 3}
	}
	if cfg.ADC.Device == "" {
		cfg.ADC.Device = "/sys/bus/iio/devices/iio:device0"
	}
	if cfg.ADC.SelectorChannel == 0 {
		cfg.ADC.SelectorChannel = 1
	}
	if cfg.ADC.FullScale == 0 {
		cfg.ADC.FullScale = 4095
	}
	if cfg.ADC.DarkThreshold == 0 {
		cfg.ADC.DarkThreshold = 400
	}
	if cfg.LCD.Bus == "" {
		cfg.LCD.Bus = "1"
	}
	if cfg.LCD.Addr == 0 {
		cfg.LCD.Addr = 0x27
	}
	if cfg.MQTT.Broker == "" {
		cfg.MQTT.Broker = "tcp://127.0.0.1:1883"
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
}
