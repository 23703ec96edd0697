package theme

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/HrX03/fluent-ui/pkg/animation"
	"github.com/HrX03/fluent-ui/pkg/graphics"
	"github.com/HrX03/fluent-ui/pkg/layout"
	"github.com/HrX03/fluent-ui/pkg/scope"
	"github.com/HrX03/fluent-ui/pkg/style"
)

// Config represents the optional theme.yaml configuration.
//
// Every field is optional; zero values fall back to the built-in defaults.
// Invalid values are rejected with a descriptive error at load time, never
// clamped silently.
type Config struct {
	Brightness string          `yaml:"brightness,omitempty" validate:"omitempty,oneof=light dark"`
	Accent     string          `yaml:"accent,omitempty" validate:"omitempty,theme_color"`
	Animation  AnimationConfig `yaml:"animation,omitempty"`
	Surface    SurfaceConfig   `yaml:"surface,omitempty"`
	Style      StyleConfig     `yaml:"style,omitempty"`
	Features   map[string]bool `yaml:"features,omitempty"`
}

// StyleConfig declares a theme style layer in configuration. Set fields
// become fixed properties of the layer; unset fields fall through to the
// built-in defaults, per the usual layer semantics.
type StyleConfig struct {
	Background   string   `yaml:"background,omitempty" validate:"omitempty,theme_color"`
	Foreground   string   `yaml:"foreground,omitempty" validate:"omitempty,theme_color"`
	CornerRadius *float64 `yaml:"corner_radius,omitempty" validate:"omitempty,min=0"`
	Padding      *float64 `yaml:"padding,omitempty" validate:"omitempty,min=0"`
	Elevation    *float64 `yaml:"elevation,omitempty" validate:"omitempty,min=0"`
	PressedScale *float64 `yaml:"pressed_scale,omitempty" validate:"omitempty,gt=0,max=1"`
}

// AnimationConfig overrides the default motion settings.
type AnimationConfig struct {
	DurationMS int    `yaml:"duration_ms,omitempty" validate:"omitempty,min=0"`
	Curve      string `yaml:"curve,omitempty" validate:"omitempty,oneof=linear standard decelerate ease ease-in ease-out ease-in-out"`
}

// SurfaceConfig overrides the defaults of translucent blur surfaces.
type SurfaceConfig struct {
	TintOpacity *float64 `yaml:"tint_opacity,omitempty" validate:"omitempty,min=0,max=1"`
	Elevation   *float64 `yaml:"elevation,omitempty" validate:"omitempty,min=0"`
	BlurSigma   *float64 `yaml:"blur_sigma,omitempty" validate:"omitempty,min=0"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used for
// theme configuration.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_color", func(fl validator.FieldLevel) bool {
			_, err := ParseColor(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}

// LoadConfig reads and validates a theme.yaml file. A missing file is not
// an error; it yields an empty config so every value falls back to the
// built-in defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("theme: failed to read %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses and validates yaml theme configuration.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("theme: failed to parse config: %w", err)
	}
	if err := validatorInstance().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("theme: invalid config: %w", err)
	}
	return &cfg, nil
}

// ThemeData builds theme data from the config, filling unset fields with
// the built-in defaults.
func (c *Config) ThemeData() (*ThemeData, error) {
	brightness := BrightnessLight
	if c.Brightness == "dark" {
		brightness = BrightnessDark
	}

	accent := AccentDefault
	if c.Accent != "" {
		parsed, err := ParseColor(c.Accent)
		if err != nil {
			return nil, fmt.Errorf("theme: invalid accent: %w", err)
		}
		accent = parsed
	}

	data := NewThemeData(brightness, accent)
	if c.Animation.DurationMS > 0 {
		data.AnimationDuration = time.Duration(c.Animation.DurationMS) * time.Millisecond
	}
	if curve := curveByName(c.Animation.Curve); curve != nil {
		data.AnimationCurve = curve
	}
	return data, nil
}

// StyleLayer builds the theme style layer declared by the config, or nil
// when the config declares none. Publish it with [PublishStyle].
func (c *Config) StyleLayer() (*style.Style, error) {
	sc := c.Style
	if sc == (StyleConfig{}) {
		return nil, nil
	}
	layer := &style.Style{}
	if sc.Background != "" {
		bg, err := ParseColor(sc.Background)
		if err != nil {
			return nil, fmt.Errorf("theme: invalid style background: %w", err)
		}
		layer.BackgroundColor = style.Fixed(bg)
	}
	if sc.Foreground != "" {
		fg, err := ParseColor(sc.Foreground)
		if err != nil {
			return nil, fmt.Errorf("theme: invalid style foreground: %w", err)
		}
		layer.ForegroundColor = style.Fixed(fg)
	}
	if sc.CornerRadius != nil {
		layer.Shape = style.Fixed(graphics.RoundedShape(*sc.CornerRadius))
	}
	if sc.Padding != nil {
		layer.Padding = style.Fixed(layout.EdgeInsetsAll(*sc.Padding))
	}
	if sc.Elevation != nil {
		layer.Elevation = style.Fixed(*sc.Elevation)
	}
	if sc.PressedScale != nil {
		layer.Scale = style.Fixed(*sc.PressedScale)
	}
	return layer, nil
}

// PublishFeatures publishes the config's feature toggles that match one of
// the known features by name. Unknown names are ignored so configs can
// carry toggles for features compiled out of the host.
func (c *Config) PublishFeatures(s *scope.Scope, known ...*scope.Feature) {
	if len(c.Features) == 0 {
		return
	}
	for _, f := range known {
		if enabled, ok := c.Features[f.Name()]; ok {
			f.Publish(s, enabled)
		}
	}
}

func curveByName(name string) func(float64) float64 {
	switch name {
	case "linear":
		return animation.LinearCurve
	case "standard":
		return animation.FluentStandard
	case "decelerate":
		return animation.FluentDecelerate
	case "ease":
		return animation.Ease
	case "ease-in":
		return animation.EaseIn
	case "ease-out":
		return animation.EaseOut
	case "ease-in-out":
		return animation.EaseInOut
	default:
		return nil
	}
}

// ParseColor parses a color from "#RRGGBB" or "#AARRGGBB" hex notation, or
// from an SVG 1.1 color name such as "red" or "cornflowerblue".
func ParseColor(s string) (graphics.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty color")
	}

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 6:
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return 0, fmt.Errorf("invalid hex color %q", s)
			}
			return graphics.Color(0xFF000000 | uint32(v)), nil
		case 8:
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return 0, fmt.Errorf("invalid hex color %q", s)
			}
			return graphics.Color(uint32(v)), nil
		default:
			return 0, fmt.Errorf("invalid hex color %q: want #RRGGBB or #AARRGGBB", s)
		}
	}

	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return fromRGBA(named), nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

func fromRGBA(c color.RGBA) graphics.Color {
	return graphics.RGBA8(c.R, c.G, c.B, c.A)
}
