package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/AsilbekT/secman/internal/audit"
	secerrors "github.com/AsilbekT/secman/internal/errors"
	"github.com/AsilbekT/secman/internal/secrets"
)

// ConvertOptions configures the convert workflow.
type ConvertOptions struct {
	// OldEnvName names the environment variable holding the key the
	// secrets are currently encrypted under.
	OldEnvName string

	// NewEnvName names the environment variable holding the key to
	// re-encrypt under. The file's key declaration is rewritten to it.
	NewEnvName string

	// FilePatterns specifies target secrets files. Globs are allowed.
	FilePatterns []string

	// Dir is the project directory. Defaults to the current directory.
	Dir string

	// Env resolves key environment variables. Defaults to OSEnv.
	Env Env

	// Now supplies timestamps for re-stamped metadata. Defaults to time.Now.
	Now func() time.Time
}

// FileConvertReport is the per-file outcome of a convert pass.
type FileConvertReport struct {
	File      string
	Converted int
}

// ConvertResult contains the outcome of a convert operation.
type ConvertResult struct {
	Reports []FileConvertReport
	Total   int
}

// Convert re-encrypts every encrypted secret under a new master key. For
// each record it verifies the stored signature, decrypts with the old key,
// encrypts with the new key, and re-stamps the metadata with the new
// key-env-name and the current timestamp. The key declaration line is
// rewritten to the new environment variable name.
//
// The operation is all-or-nothing per file: a single record failing
// verification or decryption under the old key aborts the pass with no
// file write.
func Convert(ctx context.Context, opts ConvertOptions) (*ConvertResult, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Env == nil {
		opts.Env = OSEnv
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if !secrets.IsValidName(opts.OldEnvName) || !secrets.IsValidName(opts.NewEnvName) {
		return nil, fmt.Errorf("%w: convert requires valid environment variable names",
			secerrors.ErrInvalidConfig)
	}

	oldKey := opts.Env(opts.OldEnvName)
	if oldKey == "" {
		return nil, fmt.Errorf("%w: %s", secerrors.ErrKeyUnset, opts.OldEnvName)
	}
	newKey := opts.Env(opts.NewEnvName)
	if newKey == "" {
		return nil, fmt.Errorf("%w: %s", secerrors.ErrKeyUnset, opts.NewEnvName)
	}

	cfg, err := resolveConfig(opts.Dir)
	if err != nil {
		return nil, err
	}

	files, err := resolveTargets(cfg, opts.Dir, opts.FilePatterns)
	if err != nil {
		return nil, err
	}

	result := &ConvertResult{}
	for _, file := range files {
		raws, err := secrets.ReadLines(file)
		if err != nil {
			return nil, err
		}
		lines := secrets.ClassifyAll(raws, cfg.Secrets.KeyDeclaration)

		newLines, count, err := secrets.ConvertKey(lines, oldKey, newKey,
			cfg.Secrets.KeyDeclaration, opts.NewEnvName, opts.Now())
		if err != nil {
			return nil, err
		}

		if err := secrets.WriteLines(file, newLines); err != nil {
			return nil, err
		}

		result.Reports = append(result.Reports, FileConvertReport{File: file, Converted: count})
		result.Total += count

		audit.Log(opts.Dir, audit.Entry{
			Operation: "convert",
			File:      file,
			KeyEnv:    opts.NewEnvName,
			Converted: count,
		})
	}

	return result, nil
}
