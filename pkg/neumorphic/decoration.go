package neumorphic

import "github.com/go-drift/neumorphic/pkg/rendering"

// Decoration is the attachable form of the effect: a style bundled with an
// optional surface fill, border, and content clipping. Configure it as a
// struct literal and call Paint once per draw pass with the node's current
// bounds.
//
// Paint applies decorations in this order for flat shapes:
//  1. Background shadows (outside the outline)
//  2. Surface fill (inside the outline)
//  3. Content callback (optionally clipped to the outline)
//  4. Border stroke
//
// For pressed shapes the surface fill, content, and border paint first and
// the inset shadows are drawn over them.
type Decoration struct {
	Style Style

	// SurfaceColor fills the outline before the content callback runs.
	// ColorTransparent skips the fill.
	SurfaceColor rendering.Color

	// BorderColor and BorderWidth stroke the outline after the content.
	// A zero width or transparent color skips the border.
	BorderColor rendering.Color
	BorderWidth float64

	// ClipContent restricts the content callback to the outline interior.
	ClipContent bool
}

// Paint draws the decorated effect around content within rect.
// The content callback is invoked exactly once; pass nil to decorate an
// empty node.
func (d Decoration) Paint(canvas rendering.Canvas, rect rendering.Rect, content func(rendering.Canvas)) {
	Draw(canvas, rect, d.Style, func(c rendering.Canvas) {
		outline := ResolveOutline(rect, d.Style.Corner)

		if !outline.IsEmpty() && d.SurfaceColor != rendering.ColorTransparent {
			fill := rendering.DefaultPaint()
			fill.Color = d.SurfaceColor
			outline.Draw(c, fill)
		}

		if content != nil {
			if d.ClipContent && !outline.IsEmpty() {
				c.Save()
				outline.Clip(c, rendering.ClipOpIntersect)
				content(c)
				c.Restore()
			} else {
				content(c)
			}
		}

		if !outline.IsEmpty() && d.BorderWidth > 0 && d.BorderColor != rendering.ColorTransparent {
			border := rendering.DefaultPaint()
			border.Color = d.BorderColor
			border.Style = rendering.PaintStyleStroke
			border.StrokeWidth = d.BorderWidth
			outline.Draw(c, border)
		}
	})
}
