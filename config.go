package learngl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable holding an optional config file
// path for the exercise executables.
const EnvConfig = "LEARNGL_CONFIG"

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// WindowConfig holds window and context creation parameters.
type WindowConfig struct {
	Title             string `yaml:"title" toml:"title"`
	Width             int    `yaml:"width" toml:"width"`
	Height            int    `yaml:"height" toml:"height"`
	GLMajor           int    `yaml:"gl_major" toml:"gl_major"`
	GLMinor           int    `yaml:"gl_minor" toml:"gl_minor"`
	CoreProfile       bool   `yaml:"core_profile" toml:"core_profile"`
	ForwardCompatible bool   `yaml:"forward_compatible" toml:"forward_compatible"`
	VSync             bool   `yaml:"vsync" toml:"vsync"`
	Hidden            bool   `yaml:"hidden" toml:"hidden"`
}

// Config is everything an exercise needs to open its window and run its
// loop. Scenes start from DefaultConfig and override what they need.
type Config struct {
	Window     WindowConfig `yaml:"window" toml:"window"`
	ClearColor Color        `yaml:"clear_color" toml:"clear_color"`
	Wireframe  bool         `yaml:"wireframe" toml:"wireframe"`
	// ShaderDir, when set, makes file based scenes read their shaders from
	// disk instead of the embedded copies.
	ShaderDir string `yaml:"shader_dir" toml:"shader_dir"`
	// HotReload rebuilds programs whose shader files change on disk.
	// Only effective together with ShaderDir.
	HotReload bool   `yaml:"hot_reload" toml:"hot_reload"`
	AssetDir  string `yaml:"asset_dir" toml:"asset_dir"`
	LogLevel  string `yaml:"log_level" toml:"log_level"`
}

// DefaultConfig returns the settings shared by most exercises.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:             "learngl",
			Width:             800,
			Height:            600,
			GLMajor:           4,
			GLMinor:           1,
			CoreProfile:       true,
			ForwardCompatible: true,
			VSync:             true,
		},
		ClearColor: Color{0.2, 0.3, 0.3, 1.0},
		LogLevel:   "info",
	}
}

// Validate reports every invalid setting, joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.GLMajor < 3 || (c.Window.GLMajor == 3 && c.Window.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d is older than 3.3", c.Window.GLMajor, c.Window.GLMinor))
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clear_color[%d] = %g is outside [0, 1]", i, v))
		}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return &SetupError{Stage: StageConfig, Subject: "config", Err: err}
	}
	return nil
}

// LoadConfig reads path and overlays the settings it contains onto base.
// The format is chosen by extension: .yaml/.yml or .toml.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, &SetupError{Stage: StageRead, Subject: path, Err: err}
	}

	cfg := base
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return base, &SetupError{Stage: StageConfig, Subject: path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// ConfigFromEnv overlays the file named by LEARNGL_CONFIG onto base, if set.
func ConfigFromEnv(base Config) (Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		return base, base.Validate()
	}
	return LoadConfig(path, base)
}
