package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.bubble-dodge/dodge.yaml -> ~/.bubble-dodge/dodge.ini
// -> ./configs/dodge.yaml -> embedded default.
// Only an explicit customPath turns read, parse or validation problems into errors;
// files found on the search path are skipped when they are unusable.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory
	candidates := []string{
		userConfigPath("dodge.yaml"),
		userConfigPath("dodge.ini"),
		filepath.Join("configs", "dodge.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseByExtension(defaultYAML, ".yaml")
	if err != nil {
		return DefaultConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// LoadFile reads, parses and validates a single configuration file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w (in %s)", err, path)
	}
	return cfg, nil
}

// parseByExtension dispatches to the parser for a file extension.
func parseByExtension(data []byte, ext string) (Config, error) {
	switch ext {
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".ini":
		return parseINI(data)
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", ext)
	}
}

// parseYAML parses a full configuration with any number of profiles.
// Sections missing from the file keep their built-in values.
func parseYAML(data []byte) (Config, error) {
	cfg := DefaultConfig()
	cfg.Profiles = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// parseINI parses a flat single-profile file:
//
//	profile = mine
//	title = My Rules
//
//	[hazard]
//	radius = 25
//	spawn_interval = 750ms
//
//	[rules]
//	menu = true
//	hazard_loss = true
//	neglect_loss = true
//
// Keys left out keep their classic values. Optional [input] and [audio]
// sections override the global settings.
func parseINI(data []byte) (Config, error) {
	f, err := ini.Load(data)
	if err != nil {
		return Config{}, fmt.Errorf("ini load: %w", err)
	}

	name := f.Section(ini.DefaultSection).Key("profile").MustString("custom")

	p := DefaultProfile()
	p.Title = name
	if err := f.MapTo(&p); err != nil {
		return Config{}, fmt.Errorf("ini profile: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Profiles[name] = p
	cfg.Profile = name

	if sec, err := f.GetSection("input"); err == nil {
		if hold, err := sec.Key("hold").Duration(); err == nil {
			cfg.Input.Hold = hold
		}
	}
	if sec, err := f.GetSection("audio"); err == nil {
		cfg.Audio.Enabled = sec.Key("enabled").MustBool(cfg.Audio.Enabled)
		cfg.Audio.Asset = sec.Key("asset").MustString(cfg.Audio.Asset)
		cfg.Audio.Volume = sec.Key("volume").MustInt(cfg.Audio.Volume)
		cfg.Audio.Loop = sec.Key("loop").MustBool(cfg.Audio.Loop)
	}
	if sec, err := f.GetSection("assets"); err == nil {
		for i := range cfg.Assets {
			if key, err := sec.GetKey(cfg.Assets[i].Name); err == nil {
				cfg.Assets[i].Path = key.String()
			}
		}
	}
	return cfg, nil
}

// normalize fills gaps left by a partial file.
func (c *Config) normalize() {
	if len(c.Profiles) == 0 {
		c.Profiles = DefaultConfig().Profiles
	}
	base := DefaultProfile()
	for name, p := range c.Profiles {
		p.fillDefaults(base)
		c.Profiles[name] = p
	}
	if c.Profile == "" {
		c.Profile = ProfileClassic
	}
	if c.Audio.Asset == "" {
		c.Audio.Asset = "music"
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bubble-dodge", filename)
}
