package neumorphic

import "fmt"

// ShapeVariant selects which of the two shadow algorithms the renderer uses.
type ShapeVariant int

const (
	// ShapeFlat draws both shadows behind the content, clipped to the
	// outside of the outline, so the shape appears raised off the surface.
	ShapeFlat ShapeVariant = iota

	// ShapePressed draws both shadows over the content, clipped to the
	// inside of the outline, so the shape appears carved into the surface.
	ShapePressed
)

// String returns a human-readable representation of the shape variant.
func (v ShapeVariant) String() string {
	switch v {
	case ShapeFlat:
		return "flat"
	case ShapePressed:
		return "pressed"
	default:
		return fmt.Sprintf("ShapeVariant(%d)", int(v))
	}
}

// ParseShapeVariant converts a string (as used in preset files and CLI
// flags) to a ShapeVariant. Returns false for unrecognized values.
func ParseShapeVariant(s string) (ShapeVariant, bool) {
	switch s {
	case "flat":
		return ShapeFlat, true
	case "pressed":
		return ShapePressed, true
	default:
		return ShapeFlat, false
	}
}

type cornerKind int

const (
	cornerRounded cornerKind = iota
	cornerOval
)

// CornerStyle is a closed two-case variant: a rounded rectangle with a
// uniform corner radius, or an oval inscribed in the bounds.
//
// The zero value is a rounded corner with radius 0 (a plain rectangle),
// which doubles as the fail-safe default for malformed external input.
type CornerStyle struct {
	kind   cornerKind
	radius float64
}

// RoundedCorner returns a corner style with all four corners rounded by
// radius. The radius is clamped to [0, min(width, height)/2] when the
// outline is resolved against concrete bounds.
func RoundedCorner(radius float64) CornerStyle {
	return CornerStyle{kind: cornerRounded, radius: radius}
}

// OvalCorner returns the corner style for an ellipse inscribed in the bounds.
func OvalCorner() CornerStyle {
	return CornerStyle{kind: cornerOval}
}

// IsOval reports whether this corner style produces an elliptical outline.
func (c CornerStyle) IsOval() bool {
	return c.kind == cornerOval
}

// Radius returns the requested corner radius. Only meaningful for rounded
// corner styles; the value is unclamped until outline resolution.
func (c CornerStyle) Radius() float64 {
	return c.radius
}

// String returns a human-readable representation of the corner style.
func (c CornerStyle) String() string {
	if c.kind == cornerOval {
		return "oval"
	}
	return fmt.Sprintf("rounded(%g)", c.radius)
}
