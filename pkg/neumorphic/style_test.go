package neumorphic_test

import (
	"math"
	"testing"

	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

func TestStyleNormalize(t *testing.T) {
	tests := []struct {
		name  string
		style neumorphic.Style
		check func(t *testing.T, got neumorphic.Style)
	}{
		{
			"negative elevation",
			neumorphic.Style{Elevation: -3},
			func(t *testing.T, got neumorphic.Style) {
				if got.Elevation != 0 {
					t.Errorf("Elevation = %v, want 0", got.Elevation)
				}
			},
		},
		{
			"nan elevation",
			neumorphic.Style{Elevation: math.NaN()},
			func(t *testing.T, got neumorphic.Style) {
				if got.Elevation != 0 {
					t.Errorf("Elevation = %v, want 0", got.Elevation)
				}
			},
		},
		{
			"infinite elevation",
			neumorphic.Style{Elevation: math.Inf(1)},
			func(t *testing.T, got neumorphic.Style) {
				if got.Elevation != 0 {
					t.Errorf("Elevation = %v, want 0", got.Elevation)
				}
			},
		},
		{
			"out-of-range light source",
			neumorphic.Style{LightSource: neumorphic.LightSource(9)},
			func(t *testing.T, got neumorphic.Style) {
				if got.LightSource != neumorphic.LightTopLeft {
					t.Errorf("LightSource = %v, want top-left", got.LightSource)
				}
			},
		},
		{
			"out-of-range shape",
			neumorphic.Style{Shape: neumorphic.ShapeVariant(7)},
			func(t *testing.T, got neumorphic.Style) {
				if got.Shape != neumorphic.ShapeFlat {
					t.Errorf("Shape = %v, want flat", got.Shape)
				}
			},
		},
		{
			"valid style untouched",
			neumorphic.Style{
				Elevation:   8,
				LightSource: neumorphic.LightBottomRight,
				Shape:       neumorphic.ShapePressed,
			},
			func(t *testing.T, got neumorphic.Style) {
				if got.Elevation != 8 || got.LightSource != neumorphic.LightBottomRight || got.Shape != neumorphic.ShapePressed {
					t.Errorf("valid style changed: %+v", got)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.style.Normalize())
		})
	}
}

func TestNewStyleNormalizes(t *testing.T) {
	got := neumorphic.NewStyle(
		rendering.ColorWhite, rendering.ColorBlack,
		-5, neumorphic.LightSource(42), neumorphic.ShapeVariant(3),
		neumorphic.RoundedCorner(10),
	)
	if got.Elevation != 0 {
		t.Errorf("Elevation = %v, want 0", got.Elevation)
	}
	if got.LightSource != neumorphic.LightTopLeft {
		t.Errorf("LightSource = %v, want top-left", got.LightSource)
	}
	if got.Shape != neumorphic.ShapeFlat {
		t.Errorf("Shape = %v, want flat", got.Shape)
	}
}

func TestCornerStyleZeroValue(t *testing.T) {
	var corner neumorphic.CornerStyle
	if corner.IsOval() {
		t.Error("zero-value corner should be rounded")
	}
	if corner.Radius() != 0 {
		t.Errorf("zero-value radius = %v, want 0", corner.Radius())
	}
	if got := corner.String(); got != "rounded(0)" {
		t.Errorf("String = %q, want rounded(0)", got)
	}
	if got := neumorphic.OvalCorner().String(); got != "oval" {
		t.Errorf("oval String = %q", got)
	}
}

func TestParseShapeVariant(t *testing.T) {
	tests := []struct {
		in   string
		want neumorphic.ShapeVariant
		ok   bool
	}{
		{"flat", neumorphic.ShapeFlat, true},
		{"pressed", neumorphic.ShapePressed, true},
		{"convex", neumorphic.ShapeFlat, false},
		{"", neumorphic.ShapeFlat, false},
	}
	for _, tt := range tests {
		got, ok := neumorphic.ParseShapeVariant(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseShapeVariant(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
