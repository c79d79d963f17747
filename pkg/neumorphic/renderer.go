package neumorphic

import "github.com/go-drift/neumorphic/pkg/rendering"

// Tunables mapping elevation to blur and clip geometry. The blur radius
// grows linearly with elevation; sigma follows the Skia convention of half
// the radius (see rendering.BlurSigma).
const (
	// BlurRadiusFactor converts elevation to the shadow blur radius.
	BlurRadiusFactor = 1.0

	// ClipPaddingFactor converts elevation to the outward padding of the
	// background-shadow clip rect. The padding keeps the blur falloff from
	// being cut off hard at the shape bounds while the outline-difference
	// clip still keeps every shadow pixel out of the content area.
	ClipPaddingFactor = 2.0
)

// Draw renders the neumorphic effect for the given bounds and style around
// the content callback.
//
// For ShapeFlat the two shadow layers are drawn first, clipped to the
// outside of the outline, then content paints over the interior. For
// ShapePressed the content paints first and the shadow layers are drawn on
// top, clipped to the inside of the outline.
//
// The content callback is invoked exactly once per call regardless of
// style, including for degenerate bounds and zero elevation, where no
// shadow commands are issued at all. Draw holds no state across the
// callback, so content may itself invoke nested neumorphic draws.
func Draw(canvas rendering.Canvas, bounds rendering.Rect, style Style, content func(rendering.Canvas)) {
	style = style.Normalize()
	outline := ResolveOutline(bounds, style.Corner)
	offsets := style.LightSource.Offsets(style.Elevation)
	skip := outline.IsEmpty() || offsets.IsZero()

	if style.Shape == ShapePressed {
		invokeContent(canvas, content)
		if !skip {
			drawForegroundShadows(canvas, outline, offsets, style)
		}
		return
	}

	if !skip {
		drawBackgroundShadows(canvas, bounds, outline, offsets, style)
	}
	invokeContent(canvas, content)
}

func invokeContent(canvas rendering.Canvas, content func(rendering.Canvas)) {
	if content != nil {
		content(canvas)
	}
}

// drawBackgroundShadows paints the flat-variant shadows: two blurred,
// offset copies of the outline, dark then light, visible only outside the
// un-translated outline.
func drawBackgroundShadows(canvas rendering.Canvas, bounds rendering.Rect, outline Outline, offsets OffsetPair, style Style) {
	sigma := rendering.BlurSigma(style.Elevation * BlurRadiusFactor)
	pad := style.Elevation * ClipPaddingFactor

	canvas.Save()
	canvas.ClipRect(bounds.Inflate(pad))
	outline.Clip(canvas, rendering.ClipOpDifference)
	outline.Translate(offsets.Dark).Draw(canvas, shadowPaint(style.DarkColor, sigma))
	outline.Translate(offsets.Light).Draw(canvas, shadowPaint(style.LightColor, sigma))
	canvas.Restore()
}

// drawForegroundShadows paints the pressed-variant shadows: two blurred,
// offset copies of the outline, light then dark, visible only inside the
// un-translated outline so the shape reads as carved into the surface.
func drawForegroundShadows(canvas rendering.Canvas, outline Outline, offsets OffsetPair, style Style) {
	sigma := rendering.BlurSigma(style.Elevation * BlurRadiusFactor)

	canvas.Save()
	outline.Clip(canvas, rendering.ClipOpIntersect)
	outline.Translate(offsets.Light).Draw(canvas, shadowPaint(style.LightColor, sigma))
	outline.Translate(offsets.Dark).Draw(canvas, shadowPaint(style.DarkColor, sigma))
	canvas.Restore()
}

func shadowPaint(color rendering.Color, sigma float64) rendering.Paint {
	return rendering.Paint{
		Color:    color,
		Style:    rendering.PaintStyleFill,
		MaskBlur: sigma,
		Alpha:    1.0,
	}
}
