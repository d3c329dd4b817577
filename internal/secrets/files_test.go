package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	secerrors "github.com/AsilbekT/secman/internal/errors"
)

// writeTestFile is a helper to write test files with 0644 permissions.
// #nosec G306 -- Test files are temporary and don't contain sensitive data.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func TestResolveFiles_DefaultFile(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "project_secrets.env")
	writeTestFile(t, target, "FOO = \"bar\"\n")

	files, err := ResolveFiles(nil, target)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(files) != 1 || files[0] != target {
		t.Errorf("Expected [%s], got %v", target, files)
	}
}

func TestResolveFiles_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	_, err := ResolveFiles(nil, filepath.Join(tmpDir, "nope.env"))
	if !errors.Is(err, secerrors.ErrFileNotFound) {
		t.Fatalf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestResolveFiles_Glob(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a_secrets.env")
	b := filepath.Join(tmpDir, "b_secrets.env")
	writeTestFile(t, a, "")
	writeTestFile(t, b, "")
	writeTestFile(t, filepath.Join(tmpDir, "other.txt"), "")

	files, err := ResolveFiles([]string{filepath.Join(tmpDir, "*_secrets.env")}, "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("Expected 2 files, got %v", files)
	}
}

func TestResolveFiles_GlobNoMatches(t *testing.T) {
	tmpDir := t.TempDir()
	_, err := ResolveFiles([]string{filepath.Join(tmpDir, "*.env")}, "")
	if !errors.Is(err, secerrors.ErrNoFilesFound) {
		t.Fatalf("Expected ErrNoFilesFound, got %v", err)
	}
}

func TestResolveFiles_Deduplicates(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "secrets.env")
	writeTestFile(t, target, "")

	files, err := ResolveFiles([]string{target, target}, "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Expected 1 deduplicated file, got %v", files)
	}
}

func TestReadLines(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "secrets.env")
	writeTestFile(t, target, "# header\n\nFOO = \"bar\"\n")

	raws, err := ReadLines(target)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"# header", "", `FOO = "bar"`}
	if len(raws) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %v", len(want), len(raws), raws)
	}
	for i := range want {
		if raws[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], raws[i])
		}
	}
}

func TestWriteLines_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "secrets.env")
	writeTestFile(t, target, "old content\n")

	lines := ClassifyAll([]string{"# header", `FOO = "bar"`}, testKeyDecl)
	if err := WriteLines(target, lines); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read back: %v", err)
	}
	if string(content) != "# header\nFOO = \"bar\"\n" {
		t.Errorf("Unexpected content: %q", string(content))
	}

	// No temp files left behind.
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".secman-") {
			t.Errorf("Leftover temp file: %s", e.Name())
		}
	}
}

func TestWriteLines_PreservesMode(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "secrets.env")
	if err := os.WriteFile(target, []byte("x\n"), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if err := WriteLines(target, ClassifyAll([]string{"# y"}, testKeyDecl)); err != nil {
		t.Fatalf("WriteLines: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected mode 0600 preserved, got %o", info.Mode().Perm())
	}
}

func TestWriteNewFile(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "secrets.env")

	if err := WriteNewFile(target, testKeyDecl, "APP_KEY"); err != nil {
		t.Fatalf("WriteNewFile: %v", err)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read back: %v", err)
	}
	if !strings.HasPrefix(string(content), "#  SECRET KEYS file") {
		t.Errorf("Expected header block, got %q", string(content)[:40])
	}
	if !strings.Contains(string(content), `MASTER_KEY_ENV = "APP_KEY"`+"\n") {
		t.Error("Expected key declaration line")
	}

	// Refuses to overwrite.
	if err := WriteNewFile(target, testKeyDecl, "APP_KEY"); err == nil {
		t.Error("Expected an error overwriting an existing file")
	}
}
