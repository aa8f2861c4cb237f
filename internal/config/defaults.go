package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dodge.yaml
var defaultYAML []byte

// Built-in profile names.
const (
	ProfileClassic = "classic"
	ProfileNeglect = "neglect"
	ProfileEndless = "endless"
)

// DefaultProfile returns the classic rule profile.
func DefaultProfile() Profile {
	return Profile{
		Title: "Classic",
		Field: FieldConfig{
			Width:  1920,
			Height: 1080,
		},
		Avatar: AvatarConfig{
			Radius: 1,
			Speed:  2.5,
		},
		Hazard: HazardConfig{
			Radius:        20,
			SpawnInterval: time.Second,
			MinSpeed:      0.1,
			MaxSpeed:      0.5,
		},
		Edible: EdibleConfig{
			Radius:   10,
			Cap:      10,
			MinSpeed: 0.1,
			MaxSpeed: 0.4,
			Score:    10,
		},
		Rules: RulesConfig{
			Menu:        true,
			HazardLoss:  true,
			NeglectLoss: false,
		},
		Button: ButtonConfig{
			Width:  200,
			Height: 50,
		},
		Timing: TimingConfig{
			Mode:          TimingFixed,
			ReferenceRate: 60,
		},
	}
}

// DefaultConfig returns the built-in configuration with all three profiles.
func DefaultConfig() Config {
	neglect := DefaultProfile()
	neglect.Title = "Neglect"
	neglect.Avatar.Radius = 5
	neglect.Hazard.Radius = 15
	neglect.Edible.Cap = 7
	neglect.Rules.NeglectLoss = true

	endless := DefaultProfile()
	endless.Title = "Endless"
	endless.Rules = RulesConfig{}

	return Config{
		Profile: ProfileClassic,
		Profiles: map[string]Profile{
			ProfileClassic: DefaultProfile(),
			ProfileNeglect: neglect,
			ProfileEndless: endless,
		},
		Input: InputConfig{
			Hold: 150 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled: true,
			Asset:   "music",
			Volume:  50,
			Loop:    true,
		},
		Assets: []AssetConfig{
			{Name: "background", Kind: "art", Required: true},
			{Name: "avatar", Kind: "art", Required: true},
			{Name: "background_image", Kind: "image", Required: true},
			{Name: "avatar_image", Kind: "image", Required: true},
			{Name: "font", Kind: "font", Required: true},
			{Name: "music", Kind: "audio", Required: false},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
