package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "ticking.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.ticking/configs/ticking.yaml -> ./configs/ticking.yaml -> embedded default.
// A custom path must exist, parse and validate; files found on the search
// path are skipped when they are broken.
func Load(customPath string) (GameConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := LoadFile(filepath.Join("configs", FileName)); err == nil {
		return cfg, nil
	}

	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads, parses and validates a single configuration file.
func LoadFile(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return GameConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the
// result. Keys missing from data keep their default values; lists replace
// the default list entirely.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ticking", "configs", filename)
}

// Validate checks the configuration for values the simulation cannot honor.
// All problems are reported together.
func (c GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0,
		"screen: size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)

	v := c.Viewport
	check(v.LeftMargin >= 0 && v.RightMargin >= 0 && v.BottomMargin >= 0 && v.TopMargin >= 0,
		"viewport: margins must not be negative")
	check(v.LeftMargin+v.RightMargin+c.Player.Width <= c.Screen.Width,
		"viewport: left_margin + right_margin + player width (%v) exceeds screen width %v",
		v.LeftMargin+v.RightMargin+c.Player.Width, c.Screen.Width)
	check(v.BottomMargin+v.TopMargin+c.Player.Height <= c.Screen.Height,
		"viewport: bottom_margin + top_margin + player height (%v) exceeds screen height %v",
		v.BottomMargin+v.TopMargin+c.Player.Height, c.Screen.Height)

	p := c.Player
	check(p.Width > 0 && p.Height > 0, "player: size must be positive")
	check(p.MoveSpeed > 0, "player: move_speed must be positive, got %v", p.MoveSpeed)
	check(p.JumpSpeed > 0, "player: jump_speed must be positive, got %v", p.JumpSpeed)

	ph := c.Physics
	check(ph.Gravity > 0, "physics: gravity must be positive, got %v", ph.Gravity)
	check(ph.GroundProbe > 0, "physics: ground_probe must be positive, got %v", ph.GroundProbe)
	check(ph.MaxFallSpeed > 0, "physics: max_fall_speed must be positive, got %v", ph.MaxFallSpeed)
	if thinnest := c.thinnestPlatform(); thinnest > 0 {
		check(ph.MaxFallSpeed < thinnest,
			"physics: max_fall_speed %v would tunnel through platforms %v thick", ph.MaxFallSpeed, thinnest)
	}

	w := c.World
	check(w.Length >= w.Floor.TileWidth, "world: length %v is shorter than one floor tile", w.Length)
	check(w.Floor.TileWidth > 0 && w.Floor.TileHeight > 0, "world: floor tiles must have a positive size")
	check(len(w.Blocks) == 0 || w.BlockSize > 0, "world: block_size must be positive")
	check(w.Clouds.Stride > 0, "world: clouds.stride must be positive")
	check(w.Clouds.FirstLow <= w.Clouds.FirstHigh, "world: clouds.first_low must not exceed first_high")
	check(w.Clouds.MinY <= w.Clouds.MaxY, "world: clouds.min_y must not exceed max_y")

	seen := make(map[string]bool, len(c.Objects))
	for i, o := range c.Objects {
		check(o.ID != "", "objects[%d]: id is required", i)
		check(!seen[o.ID], "objects[%d]: duplicate id %q", i, o.ID)
		seen[o.ID] = true
		check(o.Width > 0 && o.Height > 0, "objects[%d]: size must be positive", i)
		check(o.RangeLow < o.RangeHigh, "objects[%d]: range_low must be below range_high", i)
	}

	s := c.Session
	check(s.Length > 0, "session: length must be positive, got %v", s.Length)
	check(s.StartDelay >= 0 && s.EndDelay >= 0, "session: delays must not be negative")

	a := c.Audio
	check(a.MusicVolume >= 0 && a.MusicVolume <= 1, "audio: music_volume must be within [0, 1]")
	check(a.FXVolume >= 0 && a.FXVolume <= 1, "audio: fx_volume must be within [0, 1]")

	check(c.Input.HoldTimeoutMS > 0, "input: hold_timeout_ms must be positive")
	check(c.Input.MaxTickDTMS > 0, "input: max_tick_dt_ms must be positive")

	return errors.Join(errs...)
}

// thinnestPlatform returns the smallest platform height, or 0 if unknown.
func (c GameConfig) thinnestPlatform() float64 {
	thinnest := c.World.Floor.TileHeight
	if len(c.World.Blocks) > 0 && c.World.BlockSize > 0 && c.World.BlockSize < thinnest {
		thinnest = c.World.BlockSize
	}
	return thinnest
}
