package rendering

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Left != 10 || r.Top != 20 || r.Right != 40 || r.Bottom != 60 {
		t.Errorf("unexpected rect: %+v", r)
	}
	if r.Width() != 30 {
		t.Errorf("Width = %v, want 30", r.Width())
	}
	if r.Height() != 40 {
		t.Errorf("Height = %v, want 40", r.Height())
	}
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"normal", RectFromLTWH(0, 0, 10, 10), false},
		{"zero width", RectFromLTWH(0, 0, 0, 10), true},
		{"zero height", RectFromLTWH(0, 0, 10, 0), true},
		{"negative width", RectFromLTWH(0, 0, -5, 10), true},
		{"zero rect", Rect{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	got := a.Intersect(b)
	want := Rect{Left: 5, Top: 5, Right: 10, Bottom: 10}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	c := RectFromLTWH(20, 20, 5, 5)
	if !a.Intersect(c).IsEmpty() {
		t.Error("expected empty intersection for disjoint rects")
	}
}

func TestRectInflate(t *testing.T) {
	r := RectFromLTWH(10, 10, 20, 20)
	got := r.Inflate(5)
	want := Rect{Left: 5, Top: 5, Right: 35, Bottom: 35}
	if got != want {
		t.Errorf("Inflate(5) = %+v, want %+v", got, want)
	}

	shrunk := r.Inflate(-5)
	if shrunk.Width() != 10 || shrunk.Height() != 10 {
		t.Errorf("Inflate(-5) = %+v, want 10x10", shrunk)
	}
}

func TestRectTranslate(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10).Translate(3, -4)
	want := Rect{Left: 3, Top: -4, Right: 13, Bottom: 6}
	if r != want {
		t.Errorf("Translate = %+v, want %+v", r, want)
	}
}

func TestOffsetNegate(t *testing.T) {
	o := Offset{X: 3, Y: -4}
	got := o.Negate()
	if got.X != -3 || got.Y != 4 {
		t.Errorf("Negate = %+v", got)
	}
	if !o.Add(got).IsZero() {
		t.Error("offset plus its negation should be zero")
	}
}

func TestRRectUniformRadius(t *testing.T) {
	rr := RRectFromRectAndRadius(RectFromLTWH(0, 0, 100, 50), CircularRadius(8))
	if got := rr.UniformRadius(); got != 8 {
		t.Errorf("UniformRadius = %v, want 8", got)
	}

	rr.TopRight = Radius{X: 4, Y: 4}
	if got := rr.UniformRadius(); got != 0 {
		t.Errorf("UniformRadius with mixed corners = %v, want 0", got)
	}
}

func TestRRectTranslate(t *testing.T) {
	rr := RRectFromRectAndRadius(RectFromLTWH(0, 0, 10, 10), CircularRadius(2))
	got := rr.Translate(5, 5)
	if got.Rect.Left != 5 || got.Rect.Top != 5 {
		t.Errorf("Translate rect = %+v", got.Rect)
	}
	if got.TopLeft != rr.TopLeft {
		t.Error("Translate should not change corner radii")
	}
}
