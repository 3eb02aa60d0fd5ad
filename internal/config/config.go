// Package config loads the retrobridge host configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pawndev/retrobridge/pkg/retrobridge/constants"
)

const (
	PresenterSDL  = "sdl"
	PresenterTerm = "term"

	EndpointPipe = "pipe"

	DefaultPath = "retrobridge.toml"
)

type Config struct {
	Log    LogConfig    `toml:"log"`
	UI     UIConfig     `toml:"ui"`
	Core   CoreConfig   `toml:"core"`
	Launch LaunchConfig `toml:"launch"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
	Dir   string `toml:"dir"`
}

type UIConfig struct {
	Language          string   `toml:"language"`
	Presenter         string   `toml:"presenter"`
	WindowTitle       string   `toml:"window_title"`
	FullscreenOnStart bool     `toml:"fullscreen_on_start"`
	MenuDevice        string   `toml:"menu_device"`  // evdev node watched for the menu button
	SkipDevices       []string `toml:"skip_devices"` // input devices that never count as gamepads
	MenuKeys          []string `toml:"menu_keys"`    // SDL key names
	MenuButtons       []string `toml:"menu_buttons"` // SDL controller button names
}

type CoreConfig struct {
	Path      string   `toml:"path"`
	Args      []string `toml:"args"`
	Endpoint  string   `toml:"endpoint"` // "pipe" or a ws:// URL
	QueueSize int      `toml:"queue_size"`
}

// LaunchConfig holds the launch parameters handed to the screen, as the
// launcher would pass them.
type LaunchConfig struct {
	Extras map[string]string `toml:"extras"`
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
			File:  constants.DefaultLogFile,
			Dir:   constants.DefaultLogDir,
		},
		UI: UIConfig{
			Language:    "en",
			Presenter:   PresenterSDL,
			WindowTitle: "retrobridge",
		},
		Core: CoreConfig{
			Endpoint: EndpointPipe,
		},
		Launch: LaunchConfig{
			Extras: map[string]string{},
		},
	}
}

// Load reads path over the defaults. An empty path falls back to
// RETROBRIDGE_CONFIG and then retrobridge.toml; a missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if path == "" {
		path = os.Getenv(constants.ConfigEnvVar)
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath
	}

	meta, err := toml.DecodeFile(path, &cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		cfg = DefaultConfig()
	case err != nil:
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	default:
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return Config{}, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if level := os.Getenv(constants.LogLevelEnvVar); level != "" {
		c.Log.Level = level
	}
}

func (c Config) Validate() error {
	switch c.UI.Presenter {
	case PresenterSDL, PresenterTerm:
	default:
		return fmt.Errorf("unknown presenter %q, expected %q or %q", c.UI.Presenter, PresenterSDL, PresenterTerm)
	}

	switch {
	case c.Core.Endpoint == EndpointPipe:
	case strings.HasPrefix(c.Core.Endpoint, "ws://"), strings.HasPrefix(c.Core.Endpoint, "wss://"):
	default:
		return fmt.Errorf("unknown core endpoint %q, expected %q or a websocket URL", c.Core.Endpoint, EndpointPipe)
	}

	if c.Core.QueueSize < 0 {
		return fmt.Errorf("core queue_size must not be negative, got %d", c.Core.QueueSize)
	}

	return nil
}

// UsesWebSocket reports whether commands go to a remote core.
func (c Config) UsesWebSocket() bool {
	return c.Core.Endpoint != EndpointPipe
}
