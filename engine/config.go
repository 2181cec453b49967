package engine

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/geoscene/engine/core"
)

// ApplicationConfig is read from a TOML file. Keys left out keep the values
// of DefaultApplicationConfig.
type ApplicationConfig struct {
	// The application name, used in log output.
	Name     string `toml:"name"`
	LogLevel string `toml:"log_level"`
	// Path to a scene document (.toml, .yaml or .yml). When empty the game
	// provides the collection.
	Scene string `toml:"scene"`
	// RFC3339 clock bounds. An empty start means the wall clock at startup and
	// an empty stop means one day after start.
	StartTime  string  `toml:"start_time"`
	StopTime   string  `toml:"stop_time"`
	Multiplier float64 `toml:"multiplier"`
	// One of "unbounded", "clamped" or "loop".
	ClockRange      string `toml:"clock_range"`
	FramesPerSecond int    `toml:"frames_per_second"`
	// Reload the scene document when it changes on disk.
	Watch bool `toml:"watch"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:            "GeoScene",
		LogLevel:        "info",
		Multiplier:      1.0,
		ClockRange:      "unbounded",
		FramesPerSecond: 60,
	}
}

// LoadApplicationConfig reads the TOML file at path over the defaults and
// validates the result.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	config := DefaultApplicationConfig()
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

func (c *ApplicationConfig) Validate() error {
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := core.ParseClockRange(c.ClockRange); err != nil {
		return fmt.Errorf("clock_range: %w", err)
	}
	if c.FramesPerSecond <= 0 || c.FramesPerSecond > 1000 {
		return fmt.Errorf("frames_per_second must be in (0, 1000], got %d: %w", c.FramesPerSecond, core.ErrInvalidArgument)
	}
	if c.Watch && c.Scene == "" {
		return fmt.Errorf("watch needs a scene document: %w", core.ErrInvalidArgument)
	}
	if _, err := c.NewClock(time.Now()); err != nil {
		return err
	}
	return nil
}

// NewClock builds the simulation clock. now is used when no start time is set.
func (c *ApplicationConfig) NewClock(now time.Time) (*core.Clock, error) {
	start := core.JulianDateFromTime(now)
	if c.StartTime != "" {
		t, err := time.Parse(time.RFC3339Nano, c.StartTime)
		if err != nil {
			return nil, fmt.Errorf("start_time %q: %w", c.StartTime, core.ErrInvalidArgument)
		}
		start = core.JulianDateFromTime(t)
	}
	stop := start.AddSeconds(core.SecondsPerDay)
	if c.StopTime != "" {
		t, err := time.Parse(time.RFC3339Nano, c.StopTime)
		if err != nil {
			return nil, fmt.Errorf("stop_time %q: %w", c.StopTime, core.ErrInvalidArgument)
		}
		stop = core.JulianDateFromTime(t)
	}
	clockRange, err := core.ParseClockRange(c.ClockRange)
	if err != nil {
		return nil, err
	}
	return core.NewClock(start, stop, c.Multiplier, clockRange)
}

func (c *ApplicationConfig) logLevel() core.LogLevel {
	level, err := core.ParseLogLevel(c.LogLevel)
	if err != nil {
		return core.InfoLevel
	}
	return level
}

// frameDuration is the target time between two frames.
func (c *ApplicationConfig) frameDuration() time.Duration {
	return time.Second / time.Duration(c.FramesPerSecond)
}
