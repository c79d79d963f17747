package neumorphic

import (
	"fmt"

	"github.com/go-drift/neumorphic/pkg/rendering"
)

// LightSource is the assumed direction of ambient light. It determines
// which side of the shape receives the light shadow; the dark shadow always
// falls on the opposite side.
type LightSource int

const (
	LightTopLeft LightSource = iota
	LightTopRight
	LightBottomLeft
	LightBottomRight
)

// String returns a human-readable representation of the light source.
func (l LightSource) String() string {
	switch l {
	case LightTopLeft:
		return "top_left"
	case LightTopRight:
		return "top_right"
	case LightBottomLeft:
		return "bottom_left"
	case LightBottomRight:
		return "bottom_right"
	default:
		return fmt.Sprintf("LightSource(%d)", int(l))
	}
}

// ParseLightSource converts a string (as used in preset files and CLI flags)
// to a LightSource. Returns false for unrecognized values.
func ParseLightSource(s string) (LightSource, bool) {
	switch s {
	case "top_left":
		return LightTopLeft, true
	case "top_right":
		return LightTopRight, true
	case "bottom_left":
		return LightBottomLeft, true
	case "bottom_right":
		return LightBottomRight, true
	default:
		return LightTopLeft, false
	}
}

// OffsetPair holds the displacement vectors for the two shadow layers.
// Dark is always the exact negation of Light, so the two shadows sit on
// opposite sides of the shape center.
type OffsetPair struct {
	Light rendering.Offset
	Dark  rendering.Offset
}

// IsZero reports whether both offsets are zero.
func (p OffsetPair) IsZero() bool {
	return p.Light.IsZero() && p.Dark.IsZero()
}

// Offsets maps the light source to the light/dark shadow displacements for
// the given elevation. The light shadow moves toward the light source by
// elevation on each axis; the dark shadow mirrors it. Elevation <= 0 yields
// a zero pair, which the renderer treats as "no shadows".
func (l LightSource) Offsets(elevation float64) OffsetPair {
	if elevation <= 0 {
		return OffsetPair{}
	}
	var light rendering.Offset
	switch l {
	case LightTopRight:
		light = rendering.Offset{X: elevation, Y: -elevation}
	case LightBottomLeft:
		light = rendering.Offset{X: -elevation, Y: elevation}
	case LightBottomRight:
		light = rendering.Offset{X: elevation, Y: elevation}
	default:
		// LightTopLeft, and the fail-safe for out-of-range values.
		light = rendering.Offset{X: -elevation, Y: -elevation}
	}
	return OffsetPair{Light: light, Dark: light.Negate()}
}
