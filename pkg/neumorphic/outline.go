package neumorphic

import (
	"math"

	"github.com/go-drift/neumorphic/pkg/rendering"
)

type outlineKind int

const (
	outlineEmpty outlineKind = iota
	outlineRRect
	outlineOval
)

// Outline is the resolved boundary of a shape: a rounded rectangle, an
// ellipse, or empty for degenerate bounds. It is a pure function of
// (bounds, corner style) and carries no lifecycle of its own; callers may
// recompute it each draw or cache it alongside the bounds.
type Outline struct {
	kind  outlineKind
	rrect rendering.RRect // set when kind == outlineRRect
	rect  rendering.Rect  // set when kind == outlineOval
}

// ResolveOutline computes the outline for the given bounds and corner style.
//
// Rounded corner radii are clamped to [0, min(width, height)/2]; a radius of
// half the short side turns the rectangle into a stadium shape rather than
// erroring. Bounds with zero or negative width or height produce an empty
// outline, which draws nothing.
func ResolveOutline(bounds rendering.Rect, corner CornerStyle) Outline {
	if bounds.IsEmpty() {
		return Outline{}
	}
	if corner.IsOval() {
		return Outline{kind: outlineOval, rect: bounds}
	}
	radius := corner.Radius()
	if radius < 0 || math.IsNaN(radius) {
		radius = 0
	}
	if max := math.Min(bounds.Width(), bounds.Height()) / 2; radius > max {
		radius = max
	}
	return Outline{
		kind:  outlineRRect,
		rrect: rendering.RRectFromRectAndRadius(bounds, rendering.CircularRadius(radius)),
	}
}

// IsEmpty reports whether the outline is degenerate and draws nothing.
func (o Outline) IsEmpty() bool {
	return o.kind == outlineEmpty
}

// Bounds returns the bounding box of the outline. Empty outlines return the
// zero rect.
func (o Outline) Bounds() rendering.Rect {
	switch o.kind {
	case outlineRRect:
		return o.rrect.Rect
	case outlineOval:
		return o.rect
	default:
		return rendering.Rect{}
	}
}

// Translate returns a copy of the outline displaced by the given offset.
func (o Outline) Translate(offset rendering.Offset) Outline {
	switch o.kind {
	case outlineRRect:
		return Outline{kind: outlineRRect, rrect: o.rrect.Translate(offset.X, offset.Y)}
	case outlineOval:
		return Outline{kind: outlineOval, rect: o.rect.Translate(offset.X, offset.Y)}
	default:
		return o
	}
}

// Path converts the outline to a vector path, for clipping.
func (o Outline) Path() *rendering.Path {
	path := rendering.NewPath()
	switch o.kind {
	case outlineRRect:
		path.AddRRect(o.rrect)
	case outlineOval:
		path.AddOval(o.rect)
	}
	return path
}

// Draw fills or strokes the outline shape with the given paint. Empty
// outlines draw nothing.
func (o Outline) Draw(canvas rendering.Canvas, paint rendering.Paint) {
	switch o.kind {
	case outlineRRect:
		canvas.DrawRRect(o.rrect, paint)
	case outlineOval:
		canvas.DrawOval(o.rect, paint)
	}
}

// Clip combines the outline with the canvas clip region. Intersecting with
// a rounded-rectangle outline uses the dedicated ClipRRect op; everything
// else goes through ClipPath. Empty outlines leave the clip unchanged.
func (o Outline) Clip(canvas rendering.Canvas, op rendering.ClipOp) {
	if o.kind == outlineEmpty {
		return
	}
	if o.kind == outlineRRect && op == rendering.ClipOpIntersect {
		canvas.ClipRRect(o.rrect)
		return
	}
	canvas.ClipPath(o.Path(), op, true)
}
