package rendering

import "fmt"

// ClipOp controls how a clip shape combines with the current clip region.
// Values match Skia's SkClipOp enum.
type ClipOp int

const (
	// ClipOpDifference keeps the region outside the clip shape.
	ClipOpDifference ClipOp = iota

	// ClipOpIntersect keeps the region inside the clip shape.
	ClipOpIntersect
)

// String returns a human-readable representation of the clip op.
func (o ClipOp) String() string {
	switch o {
	case ClipOpDifference:
		return "difference"
	case ClipOpIntersect:
		return "intersect"
	default:
		return fmt.Sprintf("ClipOp(%d)", int(o))
	}
}

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect intersects the clip region with the given rectangle.
	ClipRect(rect Rect)

	// ClipRRect intersects the clip region with the given rounded rectangle.
	ClipRRect(rrect RRect)

	// ClipPath combines the clip region with the given path.
	// ClipOpIntersect keeps the path interior; ClipOpDifference keeps
	// everything outside it.
	ClipPath(path *Path, op ClipOp, antialias bool)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawOval draws an ellipse inscribed in rect with the provided paint.
	DrawOval(rect Rect, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
