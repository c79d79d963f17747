package theme

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/neumorphic/pkg/errors"
	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

// Preset is one named style in a preset file.
//
// Colors are "#RRGGBB" hex strings. LightSource is one of top_left,
// top_right, bottom_left, bottom_right; Shape is flat or pressed.
// Unrecognized enum strings degrade to the fail-safe defaults (top_left,
// flat) rather than erroring; malformed colors and YAML are real config
// errors and are reported.
type Preset struct {
	LightColor  string     `yaml:"light_color"`
	DarkColor   string     `yaml:"dark_color"`
	Elevation   float64    `yaml:"elevation"`
	LightSource string     `yaml:"light_source,omitempty"`
	Shape       string     `yaml:"shape,omitempty"`
	Corner      CornerSpec `yaml:"corner,omitempty"`
}

// CornerSpec selects the outline shape for a preset: set Oval for an
// ellipse, otherwise Radius rounds the rectangle corners.
type CornerSpec struct {
	Oval   bool    `yaml:"oval,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
}

type presetFile struct {
	Presets map[string]Preset `yaml:"presets"`
}

// LoadPresets reads a YAML preset file and resolves every preset into a
// ready-to-draw style, keyed by preset name.
func LoadPresets(path string) (map[string]neumorphic.Style, error) {
	const op = "theme.LoadPresets"
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.E(op, errors.KindConfig, err)
	}
	return ParsePresets(data)
}

// ParsePresets resolves YAML preset data into styles keyed by preset name.
func ParsePresets(data []byte) (map[string]neumorphic.Style, error) {
	const op = "theme.ParsePresets"
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.E(op, errors.KindConfig, err)
	}
	styles := make(map[string]neumorphic.Style, len(file.Presets))
	for name, preset := range file.Presets {
		style, err := preset.Style()
		if err != nil {
			return nil, errors.E(op, errors.KindConfig, fmt.Errorf("preset %q: %w", name, err))
		}
		styles[name] = style
	}
	return styles, nil
}

// Style resolves the preset into a normalized neumorphic style.
func (p Preset) Style() (neumorphic.Style, error) {
	light, err := ParseHexColor(p.LightColor)
	if err != nil {
		return neumorphic.Style{}, fmt.Errorf("light_color: %w", err)
	}
	dark, err := ParseHexColor(p.DarkColor)
	if err != nil {
		return neumorphic.Style{}, fmt.Errorf("dark_color: %w", err)
	}

	// Enum strings fall back rather than fail; the closed variant set makes
	// every fallback a valid, drawable configuration.
	source, _ := neumorphic.ParseLightSource(p.LightSource)
	shape, _ := neumorphic.ParseShapeVariant(p.Shape)

	corner := neumorphic.RoundedCorner(p.Corner.Radius)
	if p.Corner.Oval {
		corner = neumorphic.OvalCorner()
	}
	return neumorphic.NewStyle(light, dark, p.Elevation, source, shape, corner), nil
}

// ParseHexColor converts a "#RRGGBB" hex string to an opaque color.
func ParseHexColor(s string) (rendering.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return rendering.ColorTransparent, err
	}
	r, g, b := c.RGB255()
	return rendering.RGB(r, g, b), nil
}
