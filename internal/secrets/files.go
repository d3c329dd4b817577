package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	secerrors "github.com/AsilbekT/secman/internal/errors"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveFiles takes user-provided paths/globs and returns matching secrets
// files. If patterns is empty, the configured default file is used. Every
// resolved file must exist; operations never create their target.
func ResolveFiles(patterns []string, defaultFile string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{defaultFile}
	}

	var files []string
	seen := make(map[string]bool) // Deduplicate.

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern)
		if err != nil {
			return nil, err
		}
		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, secerrors.ErrNoFilesFound
	}
	return files, nil
}

func resolvePattern(pattern string) ([]string, error) {
	if strings.ContainsAny(pattern, "*?[") {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
		}
		var files []string
		for _, m := range matches {
			info, err := os.Stat(m)
			if err == nil && !info.IsDir() {
				files = append(files, m)
			}
		}
		return files, nil
	}

	info, err := os.Stat(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", secerrors.ErrFileNotFound, pattern)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", secerrors.ErrFileNotFound, pattern)
	}
	return []string{pattern}, nil
}

// ReadLines reads the whole secrets file into raw lines.
func ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", secerrors.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	raws := strings.Split(string(content), "\n")
	// A trailing newline yields an empty final element; drop it so the
	// write path can re-append a single terminating newline.
	if len(raws) > 0 && raws[len(raws)-1] == "" {
		raws = raws[:len(raws)-1]
	}
	return raws, nil
}

// WriteLines replaces the secrets file with the given lines. The content is
// written to a temp file in the same directory and renamed over the target,
// so a crash mid-write never truncates the original.
func WriteLines(path string, lines []Line) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.Rendered())
		b.WriteByte('\n')
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".secman-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}

	// #nosec G302 -- The secrets file is meant to be edited by the user;
	// encrypted values are protected by the cipher, not file modes.
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set mode on %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// WriteNewFile creates a fresh secrets file with the standard header block
// and a key declaration line. It refuses to overwrite an existing file.
func WriteNewFile(path, keyDecl, envName string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("secrets file already exists: %s", path)
	}

	content := FileHeader + KeyDeclLine(keyDecl, envName).Rendered() + "\n"
	// #nosec G306 -- The secrets file is meant to be edited by the user.
	return os.WriteFile(path, []byte(content), 0644)
}
