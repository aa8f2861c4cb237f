// Package config provides YAML/INI game configuration loading and the named
// rule profiles the game can run under.
package config

import (
	"fmt"
	"sort"
	"time"
)

// Config is the complete configuration file.
type Config struct {
	Profile  string             `yaml:"profile"`  // Profile used when none is requested
	Profiles map[string]Profile `yaml:"profiles"` // Rule profiles by name
	Input    InputConfig        `yaml:"input"`
	Audio    AudioConfig        `yaml:"audio"`
	Assets   []AssetConfig      `yaml:"assets"`
}

// Profile is one complete set of gameplay constants and rules.
type Profile struct {
	Title  string       `yaml:"title" ini:"title"`
	Field  FieldConfig  `yaml:"field" ini:"field"`
	Avatar AvatarConfig `yaml:"avatar" ini:"avatar"`
	Hazard HazardConfig `yaml:"hazard" ini:"hazard"`
	Edible EdibleConfig `yaml:"edible" ini:"edible"`
	Rules  RulesConfig  `yaml:"rules" ini:"rules"`
	Button ButtonConfig `yaml:"button" ini:"button"`
	Timing TimingConfig `yaml:"timing" ini:"timing"`
}

// FieldConfig defines the play-field extent in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width" ini:"width"`
	Height float64 `yaml:"height" ini:"height"`
}

// AvatarConfig defines the player avatar.
type AvatarConfig struct {
	Radius float64 `yaml:"radius" ini:"radius"`
	Speed  float64 `yaml:"speed" ini:"speed"` // Displacement per tick per held direction
}

// HazardConfig defines falling lethal hazards.
type HazardConfig struct {
	Radius        float64       `yaml:"radius" ini:"radius"`
	SpawnInterval time.Duration `yaml:"spawn_interval" ini:"spawn_interval"`
	MinSpeed      float64       `yaml:"min_speed" ini:"min_speed"`
	MaxSpeed      float64       `yaml:"max_speed" ini:"max_speed"`
}

// EdibleConfig defines falling edible items.
type EdibleConfig struct {
	Radius   float64 `yaml:"radius" ini:"radius"`
	Cap      int     `yaml:"cap" ini:"cap"` // Maximum live edibles
	MinSpeed float64 `yaml:"min_speed" ini:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed" ini:"max_speed"`
	Score    int     `yaml:"score" ini:"score"` // Points per collected edible
}

// RulesConfig selects the lifecycle and loss conditions.
type RulesConfig struct {
	Menu        bool `yaml:"menu" ini:"menu"`                 // Start in the menu and wait for the play button
	HazardLoss  bool `yaml:"hazard_loss" ini:"hazard_loss"`   // A lethal hazard hit ends the game
	NeglectLoss bool `yaml:"neglect_loss" ini:"neglect_loss"` // An uncollected edible leaving the field ends the game
}

// ButtonConfig defines the menu play button size in field units.
type ButtonConfig struct {
	Width  float64 `yaml:"width" ini:"width"`
	Height float64 `yaml:"height" ini:"height"`
}

// Timing modes for velocity application.
const (
	TimingFixed  = "fixed"  // One velocity application per tick
	TimingScaled = "scaled" // Velocity scaled by elapsed time × reference rate
)

// TimingConfig defines how velocities relate to wall-clock time.
type TimingConfig struct {
	Mode          string  `yaml:"mode" ini:"mode"`
	ReferenceRate float64 `yaml:"reference_rate" ini:"reference_rate"` // Ticks per second the velocities were tuned for
}

// InputConfig defines terminal input emulation.
type InputConfig struct {
	Hold time.Duration `yaml:"hold"` // How long a key press counts as held
}

// AudioConfig defines background audio playback.
type AudioConfig struct {
	Enabled bool   `yaml:"enabled"`
	Asset   string `yaml:"asset"`  // Manifest name of the clip
	Volume  int    `yaml:"volume"` // Percent, 0-100
	Loop    bool   `yaml:"loop"`
}

// AssetConfig is one entry of the asset manifest.
type AssetConfig struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"` // art, image, font or audio
	Path     string `yaml:"path"` // Empty selects the built-in asset, if any
	Required bool   `yaml:"required"`
}

// ProfileNames returns the configured profile names, sorted.
func (c Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the named profile. An empty name selects the configured
// default profile, falling back to "classic".
func (c Config) Select(name string) (Profile, string, error) {
	if name == "" {
		name = c.Profile
	}
	if name == "" {
		name = ProfileClassic
	}
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, name, fmt.Errorf("config: unknown profile %q", name)
	}
	return p, name, nil
}

// Validate checks every profile and the audio settings.
func (c Config) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("config: no profiles defined")
	}
	for _, name := range c.ProfileNames() {
		if err := c.Profiles[name].Validate(); err != nil {
			return fmt.Errorf("config: profile %q: %w", name, err)
		}
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("config: audio volume %d out of range 0-100", c.Audio.Volume)
	}
	if c.Input.Hold < 0 {
		return fmt.Errorf("config: negative input hold %s", c.Input.Hold)
	}
	return nil
}

// Validate checks that a profile describes a playable field.
func (p Profile) Validate() error {
	switch {
	case p.Field.Width <= 0 || p.Field.Height <= 0:
		return fmt.Errorf("field size must be positive, got %gx%g", p.Field.Width, p.Field.Height)
	case p.Avatar.Radius <= 0:
		return fmt.Errorf("avatar radius must be positive")
	case 2*p.Avatar.Radius > p.Field.Width || 2*p.Avatar.Radius > p.Field.Height:
		return fmt.Errorf("avatar does not fit in the field")
	case p.Avatar.Speed < 0:
		return fmt.Errorf("avatar speed must not be negative")
	case p.Hazard.Radius <= 0 || p.Edible.Radius <= 0:
		return fmt.Errorf("hazard and edible radius must be positive")
	case p.Hazard.SpawnInterval <= 0:
		return fmt.Errorf("hazard spawn interval must be positive")
	case p.Hazard.MinSpeed <= 0 || p.Hazard.MaxSpeed < p.Hazard.MinSpeed:
		return fmt.Errorf("hazard speed range [%g, %g] is invalid", p.Hazard.MinSpeed, p.Hazard.MaxSpeed)
	case p.Edible.MinSpeed <= 0 || p.Edible.MaxSpeed < p.Edible.MinSpeed:
		return fmt.Errorf("edible speed range [%g, %g] is invalid", p.Edible.MinSpeed, p.Edible.MaxSpeed)
	case p.Edible.Cap < 0:
		return fmt.Errorf("edible cap must not be negative")
	case p.Edible.Score <= 0:
		return fmt.Errorf("edible score must be positive")
	case p.Rules.Menu && (p.Button.Width <= 0 || p.Button.Height <= 0):
		return fmt.Errorf("menu needs a positive button size")
	}

	switch p.Timing.Mode {
	case TimingFixed:
	case TimingScaled:
		if p.Timing.ReferenceRate <= 0 {
			return fmt.Errorf("scaled timing needs a positive reference rate")
		}
	default:
		return fmt.Errorf("unknown timing mode %q", p.Timing.Mode)
	}
	return nil
}

// fillDefaults copies zero-valued numeric settings from base. Booleans are
// left alone because false is a meaningful rule value.
func (p *Profile) fillDefaults(base Profile) {
	if p.Title == "" {
		p.Title = base.Title
	}
	fillF(&p.Field.Width, base.Field.Width)
	fillF(&p.Field.Height, base.Field.Height)
	fillF(&p.Avatar.Radius, base.Avatar.Radius)
	fillF(&p.Avatar.Speed, base.Avatar.Speed)
	fillF(&p.Hazard.Radius, base.Hazard.Radius)
	fillF(&p.Hazard.MinSpeed, base.Hazard.MinSpeed)
	fillF(&p.Hazard.MaxSpeed, base.Hazard.MaxSpeed)
	if p.Hazard.SpawnInterval == 0 {
		p.Hazard.SpawnInterval = base.Hazard.SpawnInterval
	}
	fillF(&p.Edible.Radius, base.Edible.Radius)
	fillF(&p.Edible.MinSpeed, base.Edible.MinSpeed)
	fillF(&p.Edible.MaxSpeed, base.Edible.MaxSpeed)
	if p.Edible.Cap == 0 {
		p.Edible.Cap = base.Edible.Cap
	}
	if p.Edible.Score == 0 {
		p.Edible.Score = base.Edible.Score
	}
	fillF(&p.Button.Width, base.Button.Width)
	fillF(&p.Button.Height, base.Button.Height)
	if p.Timing.Mode == "" {
		p.Timing.Mode = base.Timing.Mode
	}
	fillF(&p.Timing.ReferenceRate, base.Timing.ReferenceRate)
}

func fillF(dst *float64, v float64) {
	if *dst == 0 {
		*dst = v
	}
}
