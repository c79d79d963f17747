// Package neumorphic renders soft dual-shadow ("neumorphic") effects
// around rounded-rectangle and oval shapes.
//
// The effect pairs a light shadow and a dark shadow on opposite sides of
// a shape, simulating material that is either extruded from the surface
// (ShapeFlat) or pressed into it (ShapePressed). Rendering is a pure
// function of bounds, style, and a content callback; nothing is retained
// between draw calls.
//
// # Quick Start
//
// Resolve a style and draw it around your content:
//
//	style := neumorphic.Style{
//	    LightColor:  rendering.RGB(0xFF, 0xFF, 0xFF),
//	    DarkColor:   rendering.RGB(0xA3, 0xB1, 0xC6),
//	    Elevation:   6,
//	    LightSource: neumorphic.LightTopLeft,
//	    Shape:       neumorphic.ShapeFlat,
//	    Corner:      neumorphic.RoundedCorner(12),
//	}
//	neumorphic.Draw(canvas, bounds, style, func(c rendering.Canvas) {
//	    // paint the wrapped content
//	})
//
// Decoration bundles the style with a surface fill, border, and content
// clipping for attaching the effect to an arbitrary visual node. Theme-aware
// defaults live in the theme package.
package neumorphic
