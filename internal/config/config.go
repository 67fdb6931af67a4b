// Package config provides YAML-based configuration for the game: embedded
// defaults, a layered search path for user overrides, and validation.
package config

// GameConfig contains every tunable of a session. Distances are world pixels,
// speeds are pixels per tick, durations are seconds unless noted.
type GameConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Viewport ViewportConfig `yaml:"viewport"`
	Player   PlayerConfig   `yaml:"player"`
	Physics  PhysicsConfig  `yaml:"physics"`
	World    WorldConfig    `yaml:"world"`
	Objects  []ObjectConfig `yaml:"objects"`
	Session  SessionConfig  `yaml:"session"`
	HUD      HUDConfig      `yaml:"hud"`
	Audio    AudioConfig    `yaml:"audio"`
	Input    InputConfig    `yaml:"input"`
}

// ScreenConfig is the size of the visible world window in pixels.
// The terminal renderer scales it to whatever size the terminal has.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ViewportConfig defines the minimum distance kept between the player and
// each screen edge before the camera scrolls.
type ViewportConfig struct {
	LeftMargin   float64 `yaml:"left_margin"`
	RightMargin  float64 `yaml:"right_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
	TopMargin    float64 `yaml:"top_margin"`
}

// PlayerConfig defines the player sprite and its movement constants.
type PlayerConfig struct {
	StartX    float64 `yaml:"start_x"` // Center x at spawn
	StartY    float64 `yaml:"start_y"` // Center y at spawn
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

// PhysicsConfig defines the platformer physics parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // Subtracted from vy every tick
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Must stay below the thinnest platform
	GroundProbe  float64 `yaml:"ground_probe"`   // Distance probed below the feet for grounded
}

// WorldConfig defines the static level geometry.
type WorldConfig struct {
	Length    float64       `yaml:"length"`
	Floor     FloorConfig   `yaml:"floor"`
	BlockSize float64       `yaml:"block_size"`
	Blocks    []PointConfig `yaml:"blocks"` // Block centers
	Clouds    CloudConfig   `yaml:"clouds"`
}

// FloorConfig defines the repeated floor tiles.
type FloorConfig struct {
	StartX     float64 `yaml:"start_x"` // Center x of the first tile
	Y          float64 `yaml:"y"`       // Center y of every tile
	TileWidth  float64 `yaml:"tile_width"`
	TileHeight float64 `yaml:"tile_height"`
}

// PointConfig is a world coordinate.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CloudConfig controls decorative cloud placement. One cloud is placed per
// stride; its x is drawn from a window that slides by stride each time.
type CloudConfig struct {
	Fixed     []PointConfig `yaml:"fixed"` // Clouds that always spawn
	Stride    float64       `yaml:"stride"`
	FirstLow  int           `yaml:"first_low"`
	FirstHigh int           `yaml:"first_high"`
	MinY      int           `yaml:"min_y"`
	MaxY      int           `yaml:"max_y"`
	Width     float64       `yaml:"width"`
	Height    float64       `yaml:"height"`
}

// ObjectConfig defines an interactive world object such as a sign.
type ObjectConfig struct {
	ID            string         `yaml:"id"`
	Kind          string         `yaml:"kind"`
	Name          string         `yaml:"name"`
	X             float64        `yaml:"x"` // Center x
	Y             float64        `yaml:"y"` // Center y
	Width         float64        `yaml:"width"`
	Height        float64        `yaml:"height"`
	RangeLow      float64        `yaml:"range_low"`  // Inclusive
	RangeHigh     float64        `yaml:"range_high"` // Exclusive
	AllowAirborne bool           `yaml:"allow_airborne"`
	Dialogue      DialogueConfig `yaml:"dialogue"`
}

// DialogueConfig is the content shown while interacting with an object.
type DialogueConfig struct {
	Title string   `yaml:"title"`
	Lines []string `yaml:"lines"`
}

// SessionConfig defines the countdown and transition delays.
type SessionConfig struct {
	Length     float64 `yaml:"length"`      // Countdown length in seconds
	StartDelay float64 `yaml:"start_delay"` // Delay between start confirm and play
	EndDelay   float64 `yaml:"end_delay"`   // Delay between timer expiry and game over
}

// HUDConfig positions the HUD texts relative to the player center.
type HUDConfig struct {
	ClockOffsetX  float64 `yaml:"clock_offset_x"`
	ClockOffsetY  float64 `yaml:"clock_offset_y"`
	PromptOffsetX float64 `yaml:"prompt_offset_x"`
	PromptOffsetY float64 `yaml:"prompt_offset_y"`
}

// AudioConfig lists track names and playback volumes.
type AudioConfig struct {
	MusicVolume float64  `yaml:"music_volume"`
	FXVolume    float64  `yaml:"fx_volume"`
	MenuTracks  []string `yaml:"menu_tracks"`
	GameTracks  []string `yaml:"game_tracks"`
	Effects     []string `yaml:"effects"`
}

// InputConfig tunes how terminal key events become movement intents.
type InputConfig struct {
	HoldTimeoutMS int `yaml:"hold_timeout_ms"` // Release synthesized after this long without a repeat
	MaxTickDTMS   int `yaml:"max_tick_dt_ms"`  // Upper bound for a single tick's dt
}
