package config

import (
	_ "embed"
)

//go:embed defaults/ticking.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration. It mirrors the
// embedded defaults/ticking.yaml and is used if that file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Screen: ScreenConfig{
			Width:  1680,
			Height: 720,
		},
		Viewport: ViewportConfig{
			LeftMargin:   250,
			RightMargin:  250,
			BottomMargin: 50,
			TopMargin:    100,
		},
		Player: PlayerConfig{
			StartX:    64,
			StartY:    128,
			Width:     64,
			Height:    144,
			MoveSpeed: 5,
			JumpSpeed: 20,
		},
		Physics: PhysicsConfig{
			Gravity:      1,
			MaxFallSpeed: 40,
			GroundProbe:  1,
		},
		World: WorldConfig{
			Length: 10000,
			Floor: FloorConfig{
				StartX:     -1048,
				Y:          -75,
				TileWidth:  262,
				TileHeight: 262,
			},
			BlockSize: 80,
			Blocks: []PointConfig{
				{X: 512, Y: 96},
				{X: 256, Y: 96},
				{X: 768, Y: 96},
			},
			Clouds: CloudConfig{
				Fixed:     []PointConfig{{X: 400, Y: 500}},
				Stride:    175,
				FirstLow:  -800,
				FirstHigh: -625,
				MinY:      350,
				MaxY:      675,
				Width:     220,
				Height:    100,
			},
		},
		Objects: []ObjectConfig{
			{
				ID:        "sign",
				Kind:      "sign",
				Name:      "Sign",
				X:         1100,
				Y:         91,
				Width:     60,
				Height:    70,
				RangeLow:  900,
				RangeHigh: 1300,
				Dialogue: DialogueConfig{
					Title: "The clock is ticking...",
					Lines: []string{
						"Ten minutes. That is all you get.",
						"Keep heading right and do not look back.",
					},
				},
			},
		},
		Session: SessionConfig{
			Length:     600,
			StartDelay: 0.75,
			EndDelay:   0.5,
		},
		HUD: HUDConfig{
			ClockOffsetX:  -800,
			ClockOffsetY:  500,
			PromptOffsetX: 445,
			PromptOffsetY: 500,
		},
		Audio: AudioConfig{
			MusicVolume: 0.005,
			FXVolume:    0.015,
			MenuTracks:  []string{"glitch"},
			GameTracks:  []string{"ambient_1"},
			Effects:     []string{"jump"},
		},
		Input: InputConfig{
			HoldTimeoutMS: 700,
			MaxTickDTMS:   250,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
