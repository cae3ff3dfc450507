package testutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// AssertGolden compares output with testdata/<goldenName> at the repository
// root. Setting UPDATE_GOLDEN writes the file instead; without it a missing
// golden file fails the test.
func AssertGolden(t *testing.T, goldenName, output string) {
	t.Helper()
	path := filepath.Join(RepoRoot(t), "testdata", goldenName)
	if err := compareGolden(path, output, os.Getenv("UPDATE_GOLDEN") != ""); err != nil {
		t.Fatalf("%s: %v", goldenName, err)
	}
}

func compareGolden(path, output string, update bool) error {
	if update {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create testdata dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			return fmt.Errorf("update golden: %w", err)
		}
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("golden file %s is missing; rerun with UPDATE_GOLDEN=1 to record it", path)
	}
	if err != nil {
		return fmt.Errorf("read golden: %w", err)
	}
	if string(data) != output {
		return fmt.Errorf("output mismatch\nexpected:\n%s\nactual:\n%s", string(data), output)
	}
	return nil
}

// RepoRoot walks up from the working directory to the directory holding
// go.mod.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
