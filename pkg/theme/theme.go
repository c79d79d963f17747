// Package theme provides theme-aware default styles for the neumorphic
// renderer.
//
// A Theme bundles a base surface color with the pair of shadow colors that
// make the effect read correctly on that surface. Shadow colors can be
// supplied explicitly or derived from the base color with FromBase. The
// renderer itself never touches a theme; themes only assemble fully
// resolved neumorphic.Style values.
package theme

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

// Brightness indicates if a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// String returns a human-readable representation of the brightness.
func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// Lightness shifts applied to the base color when deriving shadow colors.
// Tuned so the derived pair approximates the classic neumorphism palette
// (#E0E5EC surface with white and #A3B1C6 shadows).
const (
	lightShadowShift = 0.12
	darkShadowShift  = 0.14
)

// Theme holds the resolved colors and defaults for one brightness.
type Theme struct {
	Brightness Brightness

	// BaseColor is the surface color the shapes sit on.
	BaseColor rendering.Color

	// LightShadowColor and DarkShadowColor are the two shadow layers.
	LightShadowColor rendering.Color
	DarkShadowColor  rendering.Color

	// Defaults used by Style for fields the caller does not override.
	Elevation    float64
	LightSource  neumorphic.LightSource
	CornerRadius float64
}

// Light returns the default light theme, using the classic neumorphism
// palette.
func Light() *Theme {
	return &Theme{
		Brightness:       BrightnessLight,
		BaseColor:        rendering.Color(0xFFE0E5EC),
		LightShadowColor: rendering.ColorWhite,
		DarkShadowColor:  rendering.Color(0xFFA3B1C6),
		Elevation:        6,
		LightSource:      neumorphic.LightTopLeft,
		CornerRadius:     12,
	}
}

// Dark returns the default dark theme, with shadow colors derived from a
// dark slate surface.
func Dark() *Theme {
	t := FromBase(rendering.Color(0xFF2E3239), BrightnessDark)
	return t
}

// FromBase derives a theme from a surface color: the light shadow is the
// base lifted in HSL lightness, the dark shadow is the base lowered.
func FromBase(base rendering.Color, brightness Brightness) *Theme {
	h, s, l := toColorful(base).Hsl()
	light := colorful.Hsl(h, s, clamp01(l+lightShadowShift))
	dark := colorful.Hsl(h, s, clamp01(l-darkShadowShift))
	return &Theme{
		Brightness:       brightness,
		BaseColor:        base,
		LightShadowColor: fromColorful(light),
		DarkShadowColor:  fromColorful(dark),
		Elevation:        6,
		LightSource:      neumorphic.LightTopLeft,
		CornerRadius:     12,
	}
}

// Style assembles a neumorphic style for the given shape variant using the
// theme's colors and defaults, with rounded corners of the theme's radius.
func (t *Theme) Style(shape neumorphic.ShapeVariant) neumorphic.Style {
	return t.StyleWith(shape, neumorphic.RoundedCorner(t.CornerRadius))
}

// StyleWith assembles a neumorphic style for the given shape variant and
// corner style using the theme's colors and defaults.
func (t *Theme) StyleWith(shape neumorphic.ShapeVariant, corner neumorphic.CornerStyle) neumorphic.Style {
	return neumorphic.NewStyle(
		t.LightShadowColor,
		t.DarkShadowColor,
		t.Elevation,
		t.LightSource,
		shape,
		corner,
	)
}

// CopyWith returns a new theme with the specified defaults overridden.
// Nil arguments keep the receiver's value.
func (t *Theme) CopyWith(elevation *float64, source *neumorphic.LightSource, cornerRadius *float64) *Theme {
	out := *t
	if elevation != nil {
		out.Elevation = *elevation
	}
	if source != nil {
		out.LightSource = *source
	}
	if cornerRadius != nil {
		out.CornerRadius = *cornerRadius
	}
	return &out
}

// ForBrightness returns the default theme for the given brightness, the
// conditional an ambient dark-mode flag feeds into.
func ForBrightness(b Brightness) *Theme {
	if b == BrightnessDark {
		return Dark()
	}
	return Light()
}

func toColorful(c rendering.Color) colorful.Color {
	r, g, b, _ := c.RGBAF()
	return colorful.Color{R: r, G: g, B: b}
}

func fromColorful(c colorful.Color) rendering.Color {
	r, g, b := c.Clamped().RGB255()
	return rendering.RGB(r, g, b)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
