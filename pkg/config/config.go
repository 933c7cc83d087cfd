package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	VideoModeStream = "stream" // re-encode to DASH on the handler host, next to the hud
	VideoModePlay   = "play"   // video only, in a local ffplay window; the hud stays on the handler host
	VideoModeCamera = "camera" // local camera to the handler host, for bench tests without flying
)

type Config struct {
	SessionID      string          `yaml:"-"`
	HandlerHostURL string          `yaml:"handler_host_url"`
	LogLevel       string          `yaml:"log_level"`
	Speed          int             `yaml:"speed"`
	SportsMode     bool            `yaml:"sports_mode"`
	SpeedPresets   map[string]int  `yaml:"speed_presets"` // key name -> speed
	Video          VideoConfig     `yaml:"video"`
	Telemetry      TelemetryConfig `yaml:"telemetry"`
}

type VideoConfig struct {
	Mode             string `yaml:"mode"`
	Debug            bool   `yaml:"debug"`
	KeyFramePeriodMs int    `yaml:"key_frame_period_ms"`
}

type TelemetryConfig struct {
	PeriodMs int `yaml:"period_ms"`
}

func Default() Config {
	return Config{
		SessionID: uuid.NewString(),
		LogLevel:  logrus.InfoLevel.String(),
		Speed:     60,
		SpeedPresets: map[string]int{
			"j": 30,
			"k": 60,
			"l": 120,
		},
		Video: VideoConfig{
			Mode:             VideoModeStream,
			KeyFramePeriodMs: 500,
		},
		Telemetry: TelemetryConfig{
			PeriodMs: 100,
		},
	}
}

// Load reads the optional YAML file at path over the defaults and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("HANDLER_HOST_URL"); ok {
		c.HandlerHostURL = v
	}
	if v, ok := lookup("TELLO_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("TELLO_VIDEO_MODE"); ok {
		c.Video.Mode = v
	}
	if v, ok := lookup("TELLO_VIDEO_DEBUG"); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("error parsing TELLO_VIDEO_DEBUG: %w", err)
		}
		c.Video.Debug = debug
	}
	if v, ok := lookup("TELLO_SPEED"); ok {
		speed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("error parsing TELLO_SPEED: %w", err)
		}
		c.Speed = speed
	}
	return nil
}

func (c Config) Validate() error {
	if c.HandlerHostURL == "" {
		return errors.New("handler host url is required")
	}
	switch c.Video.Mode {
	case VideoModeStream, VideoModePlay, VideoModeCamera:
	default:
		return fmt.Errorf("unknown video mode %q", c.Video.Mode)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %d", c.Speed)
	}
	for key, speed := range c.SpeedPresets {
		if speed <= 0 {
			return fmt.Errorf("speed preset %q must be positive, got %d", key, speed)
		}
	}
	if c.Video.KeyFramePeriodMs <= 0 {
		return errors.New("key frame period must be positive")
	}
	if c.Telemetry.PeriodMs <= 0 {
		return errors.New("telemetry period must be positive")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c Config) KeyFramePeriod() time.Duration {
	return time.Duration(c.Video.KeyFramePeriodMs) * time.Millisecond
}

// TelemetryPeriod is passed to StreamFlightData, which takes milliseconds as a
// bare time.Duration.
func (c Config) TelemetryPeriod() time.Duration {
	return time.Duration(c.Telemetry.PeriodMs)
}
