package neumorphic_test

import (
	"math"
	"testing"

	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

func TestLightSourceOffsets(t *testing.T) {
	const elevation = 6.0
	tests := []struct {
		name   string
		source neumorphic.LightSource
		want   rendering.Offset
	}{
		{"top left", neumorphic.LightTopLeft, rendering.Offset{X: -elevation, Y: -elevation}},
		{"top right", neumorphic.LightTopRight, rendering.Offset{X: elevation, Y: -elevation}},
		{"bottom left", neumorphic.LightBottomLeft, rendering.Offset{X: -elevation, Y: elevation}},
		{"bottom right", neumorphic.LightBottomRight, rendering.Offset{X: elevation, Y: elevation}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := tt.source.Offsets(elevation)
			if pair.Light != tt.want {
				t.Errorf("light offset = %+v, want %+v", pair.Light, tt.want)
			}
			if pair.Dark != tt.want.Negate() {
				t.Errorf("dark offset = %+v, want exact negation of light", pair.Dark)
			}
			if math.Abs(pair.Light.X) != elevation || math.Abs(pair.Light.Y) != elevation {
				t.Errorf("offset magnitude per axis = (%v, %v), want %v", math.Abs(pair.Light.X), math.Abs(pair.Light.Y), elevation)
			}
		})
	}
}

func TestLightSourceOffsetsAntiparallel(t *testing.T) {
	for _, source := range []neumorphic.LightSource{
		neumorphic.LightTopLeft,
		neumorphic.LightTopRight,
		neumorphic.LightBottomLeft,
		neumorphic.LightBottomRight,
	} {
		for _, elevation := range []float64{0.5, 1, 6, 24} {
			pair := source.Offsets(elevation)
			sum := pair.Light.Add(pair.Dark)
			if !sum.IsZero() {
				t.Errorf("%v at elevation %v: offsets not antiparallel, sum %+v", source, elevation, sum)
			}
		}
	}
}

func TestLightSourceOffsetsDegenerate(t *testing.T) {
	for _, elevation := range []float64{0, -1, -100} {
		pair := neumorphic.LightTopRight.Offsets(elevation)
		if !pair.IsZero() {
			t.Errorf("elevation %v: expected zero pair, got %+v", elevation, pair)
		}
	}
}

func TestLightSourceOffsetsOutOfRangeFallsBack(t *testing.T) {
	bad := neumorphic.LightSource(42)
	pair := bad.Offsets(5)
	want := neumorphic.LightTopLeft.Offsets(5)
	if pair != want {
		t.Errorf("out-of-range source = %+v, want top-left fallback %+v", pair, want)
	}
}

func TestParseLightSource(t *testing.T) {
	tests := []struct {
		in   string
		want neumorphic.LightSource
		ok   bool
	}{
		{"top_left", neumorphic.LightTopLeft, true},
		{"top_right", neumorphic.LightTopRight, true},
		{"bottom_left", neumorphic.LightBottomLeft, true},
		{"bottom_right", neumorphic.LightBottomRight, true},
		{"noon", neumorphic.LightTopLeft, false},
		{"", neumorphic.LightTopLeft, false},
	}
	for _, tt := range tests {
		got, ok := neumorphic.ParseLightSource(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLightSource(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
