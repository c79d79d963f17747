package neumorphic_test

import (
	"reflect"
	"testing"

	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
	neumtest "github.com/go-drift/neumorphic/pkg/testing"
)

func TestDecorationFlatOrder(t *testing.T) {
	decoration := neumorphic.Decoration{
		Style:        testStyle(neumorphic.ShapeFlat),
		SurfaceColor: rendering.Color(0xFFE0E5EC),
		BorderColor:  rendering.ColorBlack,
		BorderWidth:  2,
	}
	calls := 0
	ops := neumtest.CaptureOps(testSize, func(c rendering.Canvas) {
		decoration.Paint(c, rendering.RectFromLTWH(0, 0, 100, 100), contentMarker(&calls))
	})

	// Shadows, surface fill, content, border.
	want := []string{
		"save", "clipRect", "clipPath", "drawRRect", "drawRRect", "restore",
		"drawRRect", "drawRect", "drawRRect",
	}
	if got := neumtest.OpNames(ops); !reflect.DeepEqual(got, want) {
		t.Fatalf("op names = %v, want %v", got, want)
	}
	if calls != 1 {
		t.Fatalf("content invoked %d times, want 1", calls)
	}

	surface := ops[6].Params
	if surface["color"] != "0xFFE0E5EC" {
		t.Errorf("surface color = %v", surface["color"])
	}
	if _, hasBlur := surface["blur"]; hasBlur {
		t.Error("surface fill should not be blurred")
	}

	border := ops[8].Params
	if border["stroke"] != 2.0 {
		t.Errorf("border stroke width = %v, want 2", border["stroke"])
	}
	if border["color"] != "0xFF000000" {
		t.Errorf("border color = %v", border["color"])
	}
}

func TestDecorationPressedShadowsOnTop(t *testing.T) {
	decoration := neumorphic.Decoration{
		Style:        testStyle(neumorphic.ShapePressed),
		SurfaceColor: rendering.Color(0xFFE0E5EC),
	}
	ops := neumtest.CaptureOps(testSize, func(c rendering.Canvas) {
		decoration.Paint(c, rendering.RectFromLTWH(0, 0, 100, 100), nil)
	})

	// Surface fill first, then the inset shadows over it.
	want := []string{"drawRRect", "save", "clipRRect", "drawRRect", "drawRRect", "restore"}
	if got := neumtest.OpNames(ops); !reflect.DeepEqual(got, want) {
		t.Errorf("op names = %v, want %v", got, want)
	}
}

func TestDecorationClipContent(t *testing.T) {
	decoration := neumorphic.Decoration{
		Style:       testStyle(neumorphic.ShapeFlat),
		ClipContent: true,
	}
	calls := 0
	ops := neumtest.CaptureOps(testSize, func(c rendering.Canvas) {
		decoration.Paint(c, rendering.RectFromLTWH(0, 0, 100, 100), contentMarker(&calls))
	})

	// Transparent surface skips the fill; content is wrapped in a clip.
	want := []string{
		"save", "clipRect", "clipPath", "drawRRect", "drawRRect", "restore",
		"save", "clipRRect", "drawRect", "restore",
	}
	if got := neumtest.OpNames(ops); !reflect.DeepEqual(got, want) {
		t.Errorf("op names = %v, want %v", got, want)
	}
	if calls != 1 {
		t.Errorf("content invoked %d times, want 1", calls)
	}
}

func TestDecorationSkipsOptionalLayers(t *testing.T) {
	decoration := neumorphic.Decoration{Style: testStyle(neumorphic.ShapeFlat)}
	ops := neumtest.CaptureOps(testSize, func(c rendering.Canvas) {
		decoration.Paint(c, rendering.RectFromLTWH(0, 0, 100, 100), nil)
	})

	// Only the two shadow layers; no surface, no border, no content.
	want := []string{"save", "clipRect", "clipPath", "drawRRect", "drawRRect", "restore"}
	if got := neumtest.OpNames(ops); !reflect.DeepEqual(got, want) {
		t.Errorf("op names = %v, want %v", got, want)
	}
}

func TestDecorationZeroBorderWidthSkipsBorder(t *testing.T) {
	decoration := neumorphic.Decoration{
		Style:       testStyle(neumorphic.ShapeFlat),
		BorderColor: rendering.ColorBlack,
		BorderWidth: 0,
	}
	ops := neumtest.CaptureOps(testSize, func(c rendering.Canvas) {
		decoration.Paint(c, rendering.RectFromLTWH(0, 0, 100, 100), nil)
	})
	for _, op := range neumtest.FindOps(ops, "drawRRect") {
		if _, stroked := op.Params["stroke"]; stroked {
			t.Error("zero-width border should not be stroked")
		}
	}
}
