package rendering

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape on the canvas.
//
// A zero-value Paint is an opaque black fill with no blur.
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color       Color
	Style       PaintStyle // Fill or stroke
	StrokeWidth float64    // Width of stroke in pixels

	// MaskBlur is the gaussian sigma applied to the shape's coverage mask
	// before compositing. Zero or negative means no blur. Follows the Skia
	// convention sigma = blurRadius * 0.5.
	MaskBlur float64

	// Alpha is the overall opacity 0.0-1.0; zero or negative defaults to
	// 1.0, so the zero-value Paint stays usable.
	Alpha float64
}

// DefaultPaint returns a basic opaque white fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		Alpha:       1.0,
	}
}

// BlurSigma converts a blur radius to a gaussian sigma.
// Returns 0 for zero or negative radii.
func BlurSigma(blurRadius float64) float64 {
	if blurRadius <= 0 {
		return 0
	}
	return blurRadius * 0.5
}
