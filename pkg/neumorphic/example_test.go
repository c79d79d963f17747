package neumorphic_test

import (
	"fmt"

	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
)

func ExampleDraw() {
	var recorder rendering.PictureRecorder
	canvas := recorder.BeginRecording(rendering.Size{Width: 200, Height: 200})

	style := neumorphic.Style{
		LightColor:  rendering.ColorWhite,
		DarkColor:   rendering.Color(0xFFA3B1C6),
		Elevation:   6,
		LightSource: neumorphic.LightTopLeft,
		Shape:       neumorphic.ShapeFlat,
		Corner:      neumorphic.RoundedCorner(12),
	}

	bounds := rendering.RectFromLTWH(50, 50, 100, 100)
	neumorphic.Draw(canvas, bounds, style, func(c rendering.Canvas) {
		surface := rendering.DefaultPaint()
		surface.Color = rendering.Color(0xFFE0E5EC)
		c.DrawRRect(rendering.RRectFromRectAndRadius(bounds, rendering.CircularRadius(12)), surface)
	})

	dl := recorder.EndRecording()
	fmt.Println("ops:", dl.OpCount())
	// Output: ops: 7
}
