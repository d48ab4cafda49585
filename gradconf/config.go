package gradconf

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/benoitkugler/gradfx/gradfx"
)

type Config struct {
	Display  DisplayConfig  `toml:"display"`
	Playback PlaybackConfig `toml:"playback"`
	Effects  []EffectConfig `toml:"effect"`
}

type DisplayConfig struct {
	Width   int  `toml:"width"`
	Height  int  `toml:"height"`
	Catalog bool `toml:"catalog"` // include the builtin effects
}

type PlaybackConfig struct {
	FPS    int     `toml:"fps"`
	Frames int     `toml:"frames"` // frames exported per effect
	Scale  float64 `toml:"scale"`  // thumbnail scale of contact sheets
}

func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:   400,
			Height:  300,
			Catalog: true,
		},
		Playback: PlaybackConfig{
			FPS:    60,
			Frames: 6,
			Scale:  0.5,
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "gradfx"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gallery.toml"), nil
}

// Load reads the config from the user config directory,
// falling back to DefaultConfig when there is none.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	cfg, err := LoadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads the given file. Missing settings keep their default value.
// Relative SVG paths of effects are resolved against the file directory.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, err
	}
	for i, e := range cfg.Effects {
		if e.SVG != "" && !filepath.IsAbs(e.SVG) {
			cfg.Effects[i].SVG = filepath.Join(filepath.Dir(path), e.SVG)
		}
	}
	return cfg, nil
}

// Decode parses a TOML document over the default config.
func Decode(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// Gallery returns the builtin effects (if enabled) followed by
// the configured ones, all validated.
func (c *Config) Gallery() ([]*gradfx.Effect, error) {
	var out []*gradfx.Effect
	if c.Display.Catalog {
		out = gradfx.Catalog(float64(c.Display.Width), float64(c.Display.Height))
	}
	for _, ec := range c.Effects {
		e, err := ec.Effect()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := gradfx.ValidateAll(out); err != nil {
		return nil, err
	}
	return out, nil
}
