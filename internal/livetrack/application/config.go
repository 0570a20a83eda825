package application

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	livetrack "github.com/MiserableKnight/VJC-sub000/internal/livetrack/domain"
)

// Config defines live-tracking schedule and visibility settings. Values may
// come from a yaml file (LIVETRACK_CONFIG) with env fallbacks; defaults
// match the operating rules of the reporting desk: window 07:45-22:00,
// refresh every 10 minutes, same-day rows visible from 21:00.
type Config struct {
	WindowStart     string        `yaml:"window_start"`
	WindowEnd       string        `yaml:"window_end"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	CutoffHour      int           `yaml:"cutoff_hour"`
}

// LoadConfig loads config from yaml or env.
func LoadConfig() (Config, error) {
	cfg := Config{
		WindowStart:     getenvDefault("LIVETRACK_WINDOW_START", "07:45"),
		WindowEnd:       getenvDefault("LIVETRACK_WINDOW_END", "22:00"),
		RefreshInterval: getenvDuration("LIVETRACK_REFRESH_INTERVAL", 10*time.Minute),
		CutoffHour:      getenvIntDefault("VISIBILITY_CUTOFF_HOUR", 21),
	}

	if path := os.Getenv("LIVETRACK_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.RefreshInterval <= 0 {
		return cfg, livetrack.ErrIntervalNotPositive
	}
	if cfg.CutoffHour < 0 || cfg.CutoffHour > 23 {
		return cfg, fmt.Errorf("livetrack: cutoff hour %d out of range", cfg.CutoffHour)
	}
	return cfg, nil
}

// Window builds the validated operating window from the configured bounds.
func (c Config) Window() (livetrack.OperatingWindow, error) {
	startHour, startMinute, err := parseWallTime(c.WindowStart)
	if err != nil {
		return livetrack.OperatingWindow{}, err
	}
	endHour, endMinute, err := parseWallTime(c.WindowEnd)
	if err != nil {
		return livetrack.OperatingWindow{}, err
	}
	return livetrack.NewOperatingWindow(startHour, startMinute, endHour, endMinute)
}

// Scheduler builds the validated scheduler from the config.
func (c Config) Scheduler() (*livetrack.Scheduler, error) {
	window, err := c.Window()
	if err != nil {
		return nil, err
	}
	return livetrack.NewScheduler(window, c.RefreshInterval)
}

func parseWallTime(value string) (int, int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, 0, fmt.Errorf("livetrack: bad wall time %q: %w", value, err)
	}
	return t.Hour(), t.Minute(), nil
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
