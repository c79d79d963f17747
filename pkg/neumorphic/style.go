package neumorphic

import (
	"math"

	"github.com/go-drift/neumorphic/pkg/rendering"
)

// Style is the fully resolved configuration for one neumorphic draw.
//
// A Style is an immutable value: build it once (directly, via NewStyle, or
// from a theme), pass it to Draw each frame, and discard or cache it as the
// caller sees fit. The renderer performs no theme or dark-mode lookup; both
// shadow colors arrive fully resolved.
type Style struct {
	// LightColor is the shadow cast on the side facing the light source.
	LightColor rendering.Color

	// DarkColor is the shadow cast on the side away from the light source.
	DarkColor rendering.Color

	// Elevation sets the shadow offset magnitude per axis and scales the
	// blur radius. Zero or negative elevation disables the shadows.
	Elevation float64

	// LightSource is the assumed ambient light direction.
	LightSource LightSource

	// Shape selects the flat (raised) or pressed (inset) algorithm.
	Shape ShapeVariant

	// Corner selects the rounded-rectangle or oval outline.
	Corner CornerStyle
}

// NewStyle assembles a normalized style from its constituent fields.
func NewStyle(light, dark rendering.Color, elevation float64, source LightSource, shape ShapeVariant, corner CornerStyle) Style {
	return Style{
		LightColor:  light,
		DarkColor:   dark,
		Elevation:   elevation,
		LightSource: source,
		Shape:       shape,
		Corner:      corner,
	}.Normalize()
}

// Normalize returns a copy with fail-safe defaults applied: non-finite or
// negative elevation becomes 0, an out-of-range light source becomes
// top-left, and an out-of-range shape variant becomes flat. Corner radius
// clamping happens later, at outline resolution, where the bounds are known.
func (s Style) Normalize() Style {
	if s.Elevation < 0 || math.IsNaN(s.Elevation) || math.IsInf(s.Elevation, 0) {
		s.Elevation = 0
	}
	if s.LightSource < LightTopLeft || s.LightSource > LightBottomRight {
		s.LightSource = LightTopLeft
	}
	if s.Shape != ShapeFlat && s.Shape != ShapePressed {
		s.Shape = ShapeFlat
	}
	return s
}
