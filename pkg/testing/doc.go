// Package testing provides draw-command capture helpers for testing
// neumorphic rendering.
//
// The serializing canvas records every canvas operation as a DisplayOp
// with stable, rounded parameters, so tests can assert exact command
// sequences:
//
//	ops := neumtest.CaptureOps(rendering.Size{Width: 100, Height: 100}, func(c rendering.Canvas) {
//	    neumorphic.Draw(c, bounds, style, content)
//	})
//	if len(neumtest.FindOps(ops, "drawRRect")) != 2 {
//	    t.Error("expected two shadow layers")
//	}
//
// Snapshot captures can be compared against golden JSON files with
// MatchesFile. Update snapshots with:
//
//	NEUMORPHIC_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import neumtest "github.com/go-drift/neumorphic/pkg/testing"
package testing
