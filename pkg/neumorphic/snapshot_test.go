package neumorphic_test

import (
	"path/filepath"
	"testing"

	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/rendering"
	neumtest "github.com/go-drift/neumorphic/pkg/testing"
)

func TestDrawSnapshots(t *testing.T) {
	tests := []struct {
		name  string
		shape neumorphic.ShapeVariant
	}{
		{"flat", neumorphic.ShapeFlat},
		{"pressed", neumorphic.ShapePressed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := neumtest.CaptureOps(testSize, func(c rendering.Canvas) {
				neumorphic.Draw(c, rendering.RectFromLTWH(0, 0, 100, 100), testStyle(tt.shape), nil)
			})
			snapshot := &neumtest.Snapshot{DisplayOps: ops}
			snapshot.MatchesFile(t, filepath.Join("testdata", tt.name+"_draw.json"))
		})
	}
}
