package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"backdrop/internal/field"
)

// Backends a window can be opened with.
const (
	BackendGL     = "gl"
	BackendCanvas = "canvas"
	BackendEbiten = "ebiten"
	BackendTerm   = "term"
)

var (
	ErrUnknownBackend = errors.New("unknown backend")
	ErrInvalidField   = errors.New("invalid field setting")
)

// Config is the root configuration struct
type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	Field   FieldConfig   `mapstructure:"field"`
	Seed    uint64        `mapstructure:"seed"`
	Audio   AudioConfig   `mapstructure:"audio"`
	Contact ContactConfig `mapstructure:"contact"`
	Stats   []StatConfig  `mapstructure:"stats"`
	Log     LogConfig     `mapstructure:"log"`
}

type WindowConfig struct {
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	Title   string `mapstructure:"title"`
	Backend string `mapstructure:"backend"`
}

// FieldConfig holds the particle field tunables
type FieldConfig struct {
	Count         int     `mapstructure:"count"`
	LinkDistance  float64 `mapstructure:"linkDistance"`
	PointerRadius float64 `mapstructure:"pointerRadius"`
	RepelStep     float64 `mapstructure:"repelStep"`
	MaxSpeed      float64 `mapstructure:"maxSpeed"`
	MinRadius     float64 `mapstructure:"minRadius"`
	MaxRadius     float64 `mapstructure:"maxRadius"`
}

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type ContactConfig struct {
	Email string `mapstructure:"email"`
}

// StatConfig is one entry of the animated stats strip
type StatConfig struct {
	Label string `mapstructure:"label"`
	Value string `mapstructure:"value"`
}

type LogConfig struct {
	Development bool `mapstructure:"development"`
}

// Load reads configuration from file and environment
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "backdrop")
	v.SetDefault("window.backend", BackendGL)
	v.SetDefault("field.count", field.DefaultCount)
	v.SetDefault("field.linkDistance", field.DefaultLinkDistance)
	v.SetDefault("field.pointerRadius", field.DefaultPointerRadius)
	v.SetDefault("field.repelStep", field.DefaultRepelStep)
	v.SetDefault("field.maxSpeed", field.DefaultMaxSpeed)
	v.SetDefault("field.minRadius", field.DefaultMinRadius)
	v.SetDefault("field.maxRadius", field.DefaultMaxRadius)
	v.SetDefault("seed", 0)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
	v.SetDefault("contact.email", "hello@example.com")
	v.SetDefault("stats", []map[string]any{
		{"label": "Projects", "value": "15+"},
		{"label": "Certifications", "value": "8"},
		{"label": "CGPA", "value": "3.52"},
	})
	v.SetDefault("log.development", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("BACKDROP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no host can run with. Field limits are checked
// again by field.New.
func (c *Config) Validate() error {
	switch c.Window.Backend {
	case BackendGL, BackendCanvas, BackendEbiten, BackendTerm:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Window.Backend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d: %w", c.Window.Width, c.Window.Height, field.ErrInvalidViewport)
	}
	if c.Field.Count < 0 {
		return fmt.Errorf("field.count %d: %w", c.Field.Count, field.ErrInvalidCount)
	}
	if c.Field.LinkDistance <= 0 {
		return fmt.Errorf("field.linkDistance %g must be positive: %w", c.Field.LinkDistance, ErrInvalidField)
	}
	if c.Field.PointerRadius <= 0 {
		return fmt.Errorf("field.pointerRadius %g must be positive: %w", c.Field.PointerRadius, ErrInvalidField)
	}
	if c.Field.MinRadius <= 0 || c.Field.MinRadius > c.Field.MaxRadius {
		return fmt.Errorf("field radius range [%g, %g]: %w", c.Field.MinRadius, c.Field.MaxRadius, ErrInvalidField)
	}
	return nil
}

// FieldConfig converts the loaded settings for field.New. seed replaces the
// configured seed when that is zero.
func (c *Config) FieldConfig(seed uint64) field.Config {
	if c.Seed != 0 {
		seed = c.Seed
	}
	return field.Config{
		Count:         c.Field.Count,
		LinkDistance:  c.Field.LinkDistance,
		PointerRadius: c.Field.PointerRadius,
		RepelStep:     c.Field.RepelStep,
		MaxSpeed:      c.Field.MaxSpeed,
		MinRadius:     c.Field.MinRadius,
		MaxRadius:     c.Field.MaxRadius,
		Seed:          seed,
	}
}
