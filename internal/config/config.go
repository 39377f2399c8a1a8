package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "chapters"

// Defaults and bounds.
const (
	DefaultMaxHeightPct = 60
	MinMaxHeightPct     = 20
	MaxMaxHeightPct     = 100
	DefaultScrollMargin = 2
	DefaultSeekStep     = 5 // seconds
	DefaultTickMs       = 250
	MinTickMs           = 50
)

type Config struct {
	Chapters ChaptersConfig `koanf:"chapters"`
	Playback PlaybackConfig `koanf:"playback"`
	Log      LogConfig      `koanf:"log"`
}

// ChaptersConfig holds the chapter sheet settings.
type ChaptersConfig struct {
	MaxHeightPct   int   `koanf:"max_height_pct"`  // sheet height limit, % of the terminal (20-100, default: 60)
	ScrollMargin   *int  `koanf:"scroll_margin"`   // rows kept around the cursor (default: 2)
	ShowThumbnails *bool `koanf:"show_thumbnails"` // mark chapters that have artwork (default: true)
}

// PlaybackConfig holds the transport settings.
type PlaybackConfig struct {
	SeekStep int `koanf:"seek_step"` // seconds per left/right (default: 5)
	TickMs   int `koanf:"tick_ms"`   // position refresh interval (min 50, default: 250)
}

// LogConfig holds the log file settings.
type LogConfig struct {
	File  string `koanf:"file"` // default: $XDG_STATE_HOME/chapters/chapters.log
	Debug bool   `koanf:"debug"`
}

// Load reads the config files in order of priority (last wins).
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files, skipping missing ones, and applies
// defaults.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Log.File == "" {
		cfg.Log.File = defaultLogFile()
	}
	cfg.Log.File = expandPath(cfg.Log.File)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/chapters/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func defaultLogFile() string {
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// MaxHeightPct returns the sheet height limit in percent, clamped.
func (c *Config) MaxHeightPct() int {
	p := c.Chapters.MaxHeightPct
	if p == 0 {
		return DefaultMaxHeightPct
	}
	return min(max(p, MinMaxHeightPct), MaxMaxHeightPct)
}

// MaxSheetRows converts the percentage limit to rows of a terminal.
func (c *Config) MaxSheetRows(termHeight int) int {
	return max(termHeight*c.MaxHeightPct()/100, 0)
}

// ScrollMargin returns the configured scroll margin, 2 when unset.
func (c *Config) ScrollMargin() int {
	if c.Chapters.ScrollMargin == nil || *c.Chapters.ScrollMargin < 0 {
		return DefaultScrollMargin
	}
	return *c.Chapters.ScrollMargin
}

// ShowThumbnails reports whether the thumbnail marker is drawn (default true).
func (c *Config) ShowThumbnails() bool {
	return c.Chapters.ShowThumbnails == nil || *c.Chapters.ShowThumbnails
}

// SeekStep returns the left/right seek step.
func (c *Config) SeekStep() time.Duration {
	if c.Playback.SeekStep <= 0 {
		return DefaultSeekStep * time.Second
	}
	return time.Duration(c.Playback.SeekStep) * time.Second
}

// TickInterval returns how often the playback position is refreshed.
func (c *Config) TickInterval() time.Duration {
	ms := c.Playback.TickMs
	switch {
	case ms <= 0:
		ms = DefaultTickMs
	case ms < MinTickMs:
		ms = MinTickMs
	}
	return time.Duration(ms) * time.Millisecond
}
