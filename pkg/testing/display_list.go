package testing

import (
	"math"

	"github.com/go-drift/neumorphic/pkg/rendering"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// CaptureOps runs fn against a serializing canvas of the given size and
// returns the recorded operations.
func CaptureOps(size rendering.Size, fn func(rendering.Canvas)) []DisplayOp {
	canvas := &serializingCanvas{size: size}
	fn(canvas)
	return canvas.ops
}

// SerializeDisplayList replays a DisplayList through a serializing canvas.
func SerializeDisplayList(dl *rendering.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// FindOps returns the ops with the given name, in order.
func FindOps(ops []DisplayOp, name string) []DisplayOp {
	var out []DisplayOp
	for _, op := range ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

// OpNames returns just the operation names, in order.
func OpNames(ops []DisplayOp) []string {
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Op
	}
	return names
}

// serializingCanvas implements rendering.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size rendering.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: params("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) ClipRect(rect rendering.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: params("rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) ClipRRect(rrect rendering.RRect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRRect",
		Params: params("rect", serializeRect(rrect.Rect), "radius", round2(rrect.UniformRadius())),
	})
}

func (c *serializingCanvas) ClipPath(path *rendering.Path, op rendering.ClipOp, _ bool) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipPath",
		Params: params("bounds", serializeRect(path.Bounds()), "clipOp", op.String()),
	})
}

func (c *serializingCanvas) Clear(color rendering.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: params("color", color.String()),
	})
}

func (c *serializingCanvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: paintParams(paint, "rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) DrawRRect(rrect rendering.RRect, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: paintParams(paint,
			"rect", serializeRect(rrect.Rect),
			"radius", round2(rrect.UniformRadius()),
		),
	})
}

func (c *serializingCanvas) DrawOval(rect rendering.Rect, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawOval",
		Params: paintParams(paint, "rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) DrawPath(path *rendering.Path, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawPath",
		Params: paintParams(paint, "bounds", serializeRect(path.Bounds())),
	})
}

func (c *serializingCanvas) Size() rendering.Size {
	return c.size
}

// --- Serialization helpers ---

func serializeRect(r rendering.Rect) map[string]any {
	return params(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

// paintParams extends the given params with color, and blur/stroke when set.
func paintParams(paint rendering.Paint, kvs ...any) map[string]any {
	m := params(kvs...)
	m["color"] = paint.Color.String()
	if paint.MaskBlur > 0 {
		m["blur"] = round2(paint.MaskBlur)
	}
	if paint.Style == rendering.PaintStyleStroke {
		m["stroke"] = round2(paint.StrokeWidth)
	}
	return m
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// params creates a map from alternating key-value pairs.
func params(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
