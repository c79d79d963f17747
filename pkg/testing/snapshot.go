package testing

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Logf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// updateEnv enables snapshot rewriting: NEUMORPHIC_UPDATE_SNAPSHOTS=1 go test ./...
const updateEnv = "NEUMORPHIC_UPDATE_SNAPSHOTS"

// Snapshot captures a sequence of display operations for golden-file
// comparison.
type Snapshot struct {
	DisplayOps []DisplayOp `json:"displayOps"`
}

// MatchesFile compares the snapshot against the golden JSON file at path.
// A missing file is created and the test passes, so first runs bootstrap
// their own goldens; set NEUMORPHIC_UPDATE_SNAPSHOTS=1 to rewrite existing
// files.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	got, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal snapshot: %v", err)
		return
	}
	got = append(got, '\n')

	if os.Getenv(updateEnv) == "1" {
		if err := writeSnapshot(path, got); err != nil {
			t.Fatalf("failed to update snapshot %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := writeSnapshot(path, got); err != nil {
				t.Fatalf("failed to create snapshot %s: %v", path, err)
				return
			}
			t.Logf("created snapshot %s", path)
			return
		}
		t.Fatalf("failed to read snapshot %s: %v", path, err)
		return
	}

	if !bytes.Equal(bytes.TrimSpace(want), bytes.TrimSpace(got)) {
		t.Errorf("snapshot mismatch for %s\nrun with %s=1 to update\ngot:\n%s", path, updateEnv, got)
	}
}

func writeSnapshot(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
