package loopback

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the editor's startup settings. Buffer dimensions are fixed at
// process start and never change at runtime; resizing the window only
// rescales the presentation surface.
type Config struct {
	Width  int
	Height int
	Title  string

	ShowFPS bool
	Debug   bool

	// Seed feeds the spawn randomizer. Keep it fixed for reproducible
	// sessions; the loopback binary randomizes it when left at zero.
	Seed int64

	// ObjectAlpha is the blend opacity viewports are created with.
	ObjectAlpha uint8

	SpawnZoneX    float64
	SpawnZoneY    float64
	SpawnZoneSize float64
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        600,
		Title:         "loopback",
		ShowFPS:       true,
		ObjectAlpha:   128,
		SpawnZoneX:    20,
		SpawnZoneY:    20,
		SpawnZoneSize: 60,
	}
}

// LoadConfig reads a TOML config file over the defaults: keys absent from
// the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig writes cfg to path as TOML. Used to initialize a config file
// that does not exist yet.
func WriteConfig(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
