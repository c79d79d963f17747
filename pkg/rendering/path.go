package rendering

import "fmt"

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	// Useful for creating holes: nested shapes alternate between filled/unfilled.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the path fill rule.
func (r PathFillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("PathFillRule(%d)", int(r))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close, or the
// AddRect/AddRRect/AddOval shape helpers. Use with Canvas.DrawPath to fill
// or stroke, and Canvas.ClipPath to clip.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{
		Commands: make([]PathCommand, len(p.Commands)),
		FillRule: p.FillRule,
	}
	for i, cmd := range p.Commands {
		args := make([]float64, len(cmd.Args))
		copy(args, cmd.Args)
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: args}
	}
	return out
}

// kappa is the control-point distance factor for approximating a quarter
// circle with a single cubic bezier: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// AddRect appends a closed rectangular subpath.
func (p *Path) AddRect(rect Rect) {
	if rect.IsEmpty() {
		return
	}
	p.MoveTo(rect.Left, rect.Top)
	p.LineTo(rect.Right, rect.Top)
	p.LineTo(rect.Right, rect.Bottom)
	p.LineTo(rect.Left, rect.Bottom)
	p.Close()
}

// AddRRect appends a closed rounded-rectangle subpath. Corner radii are
// taken from the X component of each corner's Radius (circular corners).
func (p *Path) AddRRect(rr RRect) {
	r := rr.Rect
	if r.IsEmpty() {
		return
	}
	tl, tr := rr.TopLeft.X, rr.TopRight.X
	br, bl := rr.BottomRight.X, rr.BottomLeft.X

	p.MoveTo(r.Left+tl, r.Top)
	p.LineTo(r.Right-tr, r.Top)
	if tr > 0 {
		p.CubicTo(
			r.Right-tr+tr*kappa, r.Top,
			r.Right, r.Top+tr-tr*kappa,
			r.Right, r.Top+tr,
		)
	}
	p.LineTo(r.Right, r.Bottom-br)
	if br > 0 {
		p.CubicTo(
			r.Right, r.Bottom-br+br*kappa,
			r.Right-br+br*kappa, r.Bottom,
			r.Right-br, r.Bottom,
		)
	}
	p.LineTo(r.Left+bl, r.Bottom)
	if bl > 0 {
		p.CubicTo(
			r.Left+bl-bl*kappa, r.Bottom,
			r.Left, r.Bottom-bl+bl*kappa,
			r.Left, r.Bottom-bl,
		)
	}
	p.LineTo(r.Left, r.Top+tl)
	if tl > 0 {
		p.CubicTo(
			r.Left, r.Top+tl-tl*kappa,
			r.Left+tl-tl*kappa, r.Top,
			r.Left+tl, r.Top,
		)
	}
	p.Close()
}

// AddOval appends a closed elliptical subpath inscribed in rect.
func (p *Path) AddOval(rect Rect) {
	if rect.IsEmpty() {
		return
	}
	c := rect.Center()
	rx := rect.Width() * 0.5
	ry := rect.Height() * 0.5

	p.MoveTo(c.X+rx, c.Y)
	p.CubicTo(c.X+rx, c.Y+ry*kappa, c.X+rx*kappa, c.Y+ry, c.X, c.Y+ry)
	p.CubicTo(c.X-rx*kappa, c.Y+ry, c.X-rx, c.Y+ry*kappa, c.X-rx, c.Y)
	p.CubicTo(c.X-rx, c.Y-ry*kappa, c.X-rx*kappa, c.Y-ry, c.X, c.Y-ry)
	p.CubicTo(c.X+rx*kappa, c.Y-ry, c.X+rx, c.Y-ry*kappa, c.X+rx, c.Y)
	p.Close()
}

// Bounds returns the bounding box of all path points, including bezier
// control points. Returns an empty rect for an empty path.
func (p *Path) Bounds() Rect {
	first := true
	var bounds Rect
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			if first {
				bounds = Rect{Left: x, Top: y, Right: x, Bottom: y}
				first = false
				continue
			}
			if x < bounds.Left {
				bounds.Left = x
			}
			if x > bounds.Right {
				bounds.Right = x
			}
			if y < bounds.Top {
				bounds.Top = y
			}
			if y > bounds.Bottom {
				bounds.Bottom = y
			}
		}
	}
	return bounds
}
