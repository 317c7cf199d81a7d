package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Vazpera/vividry/internal/color"
	"github.com/Vazpera/vividry/internal/logger"
	"github.com/Vazpera/vividry/internal/types"
)

var cfgLog = logger.New("config")

// validate is the shared validator instance
var validate = validator.New()

// Config represents the vividry configuration
type Config struct {
	LogLevel types.LogLevel `yaml:"log_level"`
	NoColor  bool           `yaml:"no_color"`
	Gradient GradientConfig `yaml:"gradient"`
	Convert  ConvertConfig  `yaml:"convert"`
	Swatch   SwatchConfig   `yaml:"swatch"`
	Hex      HexConfig      `yaml:"hex"`
	Serve    ServeConfig    `yaml:"serve"`
	// Palettes maps a name to a list of hex colors usable with
	// "gradient --palette NAME".
	Palettes map[string][]string `yaml:"palettes" validate:"dive,keys,required,endkeys,min=1"`
}

// GradientConfig holds defaults for the gradient subcommand
type GradientConfig struct {
	Number int          `yaml:"number" validate:"min=2,max=4096"`
	Format types.Format `yaml:"format" validate:"oneof=hex rgb hsv"`
}

// ConvertConfig holds defaults for the convert subcommand
type ConvertConfig struct {
	Format types.Format `yaml:"format" validate:"oneof=hex rgb hsv table"`
}

// SwatchConfig controls how swatches are drawn
type SwatchConfig struct {
	Foreground types.Foreground `yaml:"foreground" validate:"oneof=black white auto"`
	Padding    int              `yaml:"padding" validate:"min=0,max=16"` // spaces on each side of the label
}

// HexConfig controls hex parsing
type HexConfig struct {
	// ExpandShorthand makes "#f80" mean "#ff8800". When false (the default)
	// each digit of a 3-digit color is a 0-15 channel value.
	ExpandShorthand bool `yaml:"expand_shorthand"`
}

// ServeConfig holds HTTP API settings
type ServeConfig struct {
	Listen    string `yaml:"listen" validate:"required,hostname_port"`
	MaxNumber int    `yaml:"max_number" validate:"min=2,max=65536"` // largest gradient a request may ask for
}

// DefaultConfigPath returns the default config file path (~/.vividry/config.yaml).
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".vividry", "config.yaml")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel: types.LogLevelInfo,
		Gradient: GradientConfig{
			Number: 5,
			Format: types.FormatHex,
		},
		Convert: ConvertConfig{
			Format: types.FormatRGB,
		},
		Swatch: SwatchConfig{
			Foreground: types.ForegroundBlack,
		},
		Serve: ServeConfig{
			Listen:    "127.0.0.1:7878",
			MaxNumber: 4096,
		},
		Palettes: map[string][]string{},
	}
}

// ParseColor parses a hex color honoring hex.expand_shorthand.
func (c *Config) ParseColor(s string) (color.Color, error) {
	if c.Hex.ExpandShorthand {
		return color.FromHexExpanded(s)
	}
	return color.FromHex(s)
}

// ParseColors parses every argument, failing on the first bad one.
func (c *Config) ParseColors(args []string) ([]color.Color, error) {
	out := make([]color.Color, 0, len(args))
	for _, a := range args {
		col, err := c.ParseColor(a)
		if err != nil {
			return nil, err
		}
		out = append(out, col)
	}
	return out, nil
}

// Palette returns the named palette's colors.
func (c *Config) Palette(name string) ([]color.Color, error) {
	hexes, ok := c.Palettes[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q (available: %s)", name, strings.Join(c.PaletteNames(), ", "))
	}
	cols, err := c.ParseColors(hexes)
	if err != nil {
		return nil, fmt.Errorf("palette %q: %w", name, err)
	}
	return cols, nil
}

// PaletteNames returns the configured palette names, sorted.
func (c *Config) PaletteNames() []string {
	names := make([]string, 0, len(c.Palettes))
	for n := range c.Palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Validate checks all Config fields and returns a multi-error report.
// Call this AFTER CLI and environment overrides have been applied.
func (c *Config) Validate() error {
	var errs []string

	if !c.LogLevel.Valid() {
		errs = append(errs, fmt.Sprintf("log_level: unknown log level %q (valid: trace, debug, info, warn, error)", c.LogLevel))
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			errs = append(errs, describe(fe))
		}
	}

	for _, name := range c.PaletteNames() {
		for i, h := range c.Palettes[name] {
			if _, err := c.ParseColor(h); err != nil {
				errs = append(errs, fmt.Sprintf("palettes.%s[%d]: %v", name, i, err))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for i, e := range errs {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, e)
	}
	return errors.New(sb.String())
}

// describe turns a validator field error into a config-path message.
func describe(fe validator.FieldError) string {
	path := yamlPath(fe.Namespace())
	switch fe.Tag() {
	case "min", "max":
		return fmt.Sprintf("%s: must be %s %s (got %v)", path, bound(fe.Tag()), fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s: must be one of %s (got %q)", path, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "hostname_port":
		return fmt.Sprintf("%s: must be host:port (got %q)", path, fe.Value())
	case "required":
		return fmt.Sprintf("%s: must not be empty", path)
	default:
		return fmt.Sprintf("%s: failed %q check", path, fe.Tag())
	}
}

func bound(tag string) string {
	if tag == "min" {
		return ">="
	}
	return "<="
}

// yamlPath maps "Config.Gradient.Number" to "gradient.number".
func yamlPath(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// isUnknownFieldError returns true if the error is from yaml.Decoder.KnownFields(true)
// detecting an unrecognized key (e.g. typo like "gradiant:").
func isUnknownFieldError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not found in type")
}

// Load loads configuration from a YAML file. A missing file yields defaults.
// Note: Load does NOT call Validate(). Callers should apply overrides
// first, then call cfg.Validate() themselves.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfgLog.Debug("no config at %s, using defaults", path)
			return cfg, nil
		}
		return nil, err
	}

	// Try strict decode to warn about unknown fields
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			// empty file
		case isUnknownFieldError(err):
			cfgLog.Warn("config has unknown fields (ignored): %v", err)
			// Re-parse without strict mode for forward compatibility
			cfg = DefaultConfig()
			if err2 := yaml.Unmarshal(data, cfg); err2 != nil {
				return nil, fmt.Errorf("config parse error: %w", err2)
			}
		default:
			return nil, fmt.Errorf("config parse error: %w", err)
		}
	}
	if cfg.Palettes == nil {
		cfg.Palettes = map[string][]string{}
	}

	return cfg, nil
}
