// Package raster provides a pure-Go software backend for the rendering
// Canvas. It rasterizes draw commands — directly or replayed from a
// DisplayList — into an in-memory RGBA image, including the blurred-mask
// fills and outline clips the neumorphic renderer emits.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"
	"github.com/fogleman/gg"

	"github.com/go-drift/neumorphic/pkg/rendering"
)

// Canvas implements rendering.Canvas over an in-memory RGBA image.
//
// The transform state is translation-only, which covers everything the
// neumorphic renderer and decoration painter emit. Clip regions are
// tracked as 8-bit coverage masks, so antialiased and blurred edges
// composite without seams.
type Canvas struct {
	dst   *image.RGBA
	size  rendering.Size
	state canvasState
	stack []canvasState
}

type canvasState struct {
	tx, ty float64
	clip   *image.Alpha // nil means unclipped
}

// NewCanvas creates a software canvas of the given pixel dimensions.
// Non-positive dimensions produce an empty canvas on which every draw is a
// no-op.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		dst:  image.NewRGBA(image.Rect(0, 0, width, height)),
		size: rendering.Size{Width: float64(width), Height: float64(height)},
	}
}

// Image returns the backing image. The canvas keeps drawing into it, so
// callers that need a stable copy should clone it.
func (c *Canvas) Image() *image.RGBA {
	return c.dst
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() rendering.Size {
	return c.size
}

// Save pushes the current translation and clip state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recent translation and clip state. Unbalanced
// restores are ignored.
func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// Translate moves the origin by the given offset.
func (c *Canvas) Translate(dx, dy float64) {
	c.state.tx += dx
	c.state.ty += dy
}

// ClipRect intersects the clip region with the given rectangle.
func (c *Canvas) ClipRect(rect rendering.Rect) {
	c.applyClip(c.shapeMask(fillStyle(), func(g *gg.Context) {
		g.DrawRectangle(rect.Left, rect.Top, rect.Width(), rect.Height())
	}), rendering.ClipOpIntersect)
}

// ClipRRect intersects the clip region with the given rounded rectangle.
func (c *Canvas) ClipRRect(rrect rendering.RRect) {
	path := rendering.NewPath()
	path.AddRRect(rrect)
	c.applyClip(c.pathMask(path, fillStyle()), rendering.ClipOpIntersect)
}

// ClipPath combines the clip region with the given path.
func (c *Canvas) ClipPath(path *rendering.Path, op rendering.ClipOp, _ bool) {
	// The mask representation is always antialiased.
	c.applyClip(c.pathMask(path, fillStyle()), op)
}

// Clear fills the entire canvas with the given color, ignoring clip state.
func (c *Canvas) Clear(col rendering.Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(toNRGBA(col, 1)), image.Point{}, draw.Src)
}

// DrawRect draws a rectangle with the provided paint.
func (c *Canvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	c.fillMask(c.shapeMask(paint, func(g *gg.Context) {
		g.DrawRectangle(rect.Left, rect.Top, rect.Width(), rect.Height())
	}), paint)
}

// DrawRRect draws a rounded rectangle with the provided paint.
func (c *Canvas) DrawRRect(rrect rendering.RRect, paint rendering.Paint) {
	path := rendering.NewPath()
	path.AddRRect(rrect)
	c.fillMask(c.pathMask(path, paint), paint)
}

// DrawOval draws an ellipse inscribed in rect with the provided paint.
func (c *Canvas) DrawOval(rect rendering.Rect, paint rendering.Paint) {
	center := rect.Center()
	c.fillMask(c.shapeMask(paint, func(g *gg.Context) {
		g.DrawEllipse(center.X, center.Y, rect.Width()*0.5, rect.Height()*0.5)
	}), paint)
}

// DrawPath draws a path with the provided paint.
func (c *Canvas) DrawPath(path *rendering.Path, paint rendering.Paint) {
	c.fillMask(c.pathMask(path, paint), paint)
}

// fillStyle is the paint used when rasterizing clip shapes.
func fillStyle() rendering.Paint {
	return rendering.Paint{Style: rendering.PaintStyleFill}
}

// shapeMask rasterizes a shape into a coverage mask under the current
// translation.
func (c *Canvas) shapeMask(paint rendering.Paint, build func(*gg.Context)) *image.Alpha {
	bounds := c.dst.Bounds()
	mask := image.NewAlpha(bounds)
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return mask
	}
	g := gg.NewContext(bounds.Dx(), bounds.Dy())
	g.Translate(c.state.tx, c.state.ty)
	build(g)
	g.SetRGB(1, 1, 1)
	if paint.Style == rendering.PaintStyleStroke {
		width := paint.StrokeWidth
		if width <= 0 {
			width = 1
		}
		g.SetLineWidth(width)
		g.Stroke()
	} else {
		g.Fill()
	}
	if rgba, ok := g.Image().(*image.RGBA); ok {
		for i := range mask.Pix {
			mask.Pix[i] = rgba.Pix[i*4+3]
		}
	}
	return mask
}

// pathMask rasterizes a vector path into a coverage mask, honoring the
// path's fill rule.
func (c *Canvas) pathMask(path *rendering.Path, paint rendering.Paint) *image.Alpha {
	return c.shapeMask(paint, func(g *gg.Context) {
		if path == nil {
			return
		}
		if path.FillRule == rendering.FillRuleEvenOdd {
			g.SetFillRule(gg.FillRuleEvenOdd)
		} else {
			g.SetFillRule(gg.FillRuleWinding)
		}
		for _, cmd := range path.Commands {
			switch cmd.Op {
			case rendering.PathOpMoveTo:
				g.MoveTo(cmd.Args[0], cmd.Args[1])
			case rendering.PathOpLineTo:
				g.LineTo(cmd.Args[0], cmd.Args[1])
			case rendering.PathOpQuadTo:
				g.QuadraticTo(cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3])
			case rendering.PathOpCubicTo:
				g.CubicTo(cmd.Args[0], cmd.Args[1], cmd.Args[2], cmd.Args[3], cmd.Args[4], cmd.Args[5])
			case rendering.PathOpClose:
				g.ClosePath()
			}
		}
	})
}

// applyClip folds a shape mask into the current clip under the given op.
func (c *Canvas) applyClip(shape *image.Alpha, op rendering.ClipOp) {
	cur := c.state.clip
	out := image.NewAlpha(c.dst.Bounds())
	for i := range out.Pix {
		base := uint8(0xFF)
		if cur != nil {
			base = cur.Pix[i]
		}
		s := shape.Pix[i]
		if op == rendering.ClipOpDifference {
			s = 0xFF - s
		}
		out.Pix[i] = mulAlpha(base, s)
	}
	c.state.clip = out
}

// fillMask blurs the mask if requested, intersects it with the clip, and
// composites the paint color through it.
func (c *Canvas) fillMask(mask *image.Alpha, paint rendering.Paint) {
	bounds := c.dst.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	if paint.MaskBlur > 0 {
		mask = blurMask(mask, paint.MaskBlur)
	}
	if c.state.clip != nil {
		combined := image.NewAlpha(bounds)
		for i := range combined.Pix {
			combined.Pix[i] = mulAlpha(mask.Pix[i], c.state.clip.Pix[i])
		}
		mask = combined
	}
	draw.DrawMask(c.dst, bounds, image.NewUniform(toNRGBA(paint.Color, effectiveAlpha(paint))), image.Point{}, mask, image.Point{}, draw.Over)
}

// blurMask applies a gaussian blur to a coverage mask. The bild kernel
// radius is 2x sigma, which for the renderer's sigma convention makes the
// kernel radius equal the style's blur radius.
func blurMask(mask *image.Alpha, sigma float64) *image.Alpha {
	src := image.NewRGBA(mask.Bounds())
	for i, a := range mask.Pix {
		src.Pix[i*4+0] = a
		src.Pix[i*4+1] = a
		src.Pix[i*4+2] = a
		src.Pix[i*4+3] = a
	}
	blurred := blur.Gaussian(src, sigma*2)
	out := image.NewAlpha(mask.Bounds())
	for i := range out.Pix {
		out.Pix[i] = blurred.Pix[i*4+3]
	}
	return out
}

func effectiveAlpha(paint rendering.Paint) float64 {
	if paint.Alpha <= 0 || paint.Alpha > 1 {
		return 1
	}
	return paint.Alpha
}

func toNRGBA(c rendering.Color, alpha float64) color.NRGBA {
	r, g, b, a := c.Components()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(float64(a)*alpha + 0.5)}
}

func mulAlpha(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}

var _ rendering.Canvas = (*Canvas)(nil)
