package workflows

import (
	"context"
	"time"

	"github.com/AsilbekT/secman/internal/audit"
	"github.com/AsilbekT/secman/internal/secrets"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// FilePatterns specifies target secrets files. Globs are allowed.
	// If empty, the configured default file is used.
	FilePatterns []string

	// Dir is the project directory holding the config and audit trail.
	// Defaults to the current directory.
	Dir string

	// Env resolves the master key environment variable. Defaults to OSEnv.
	Env Env

	// Now supplies timestamps for metadata. Defaults to time.Now.
	Now func() time.Time
}

// FileEncryptReport is the per-file outcome of an encrypt pass.
type FileEncryptReport struct {
	File      string
	Encrypted []string
	Skipped   []string
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	Reports []FileEncryptReport

	// Total is the number of newly encrypted secrets across all files.
	Total int
}

// Encrypt encrypts every eligible plain secret in the target files.
//
// For each file it reads all lines, classifies them, resolves the master
// key named by the file's key declaration through the injected environment
// lookup, runs the encrypt-all transform, and atomically replaces the file.
// A failure in any step aborts before that file is written.
//
// Returns ErrNoKeyDeclaration if a file declares no key variable,
// ErrKeyUnset if the declared variable is empty, and ErrInvalidKey or
// ErrEncryptFailed for cipher failures.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Env == nil {
		opts.Env = OSEnv
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cfg, err := resolveConfig(opts.Dir)
	if err != nil {
		return nil, err
	}

	files, err := resolveTargets(cfg, opts.Dir, opts.FilePatterns)
	if err != nil {
		return nil, err
	}

	result := &EncryptResult{}
	for _, file := range files {
		raws, err := secrets.ReadLines(file)
		if err != nil {
			return nil, err
		}
		lines := secrets.ClassifyAll(raws, cfg.Secrets.KeyDeclaration)

		key, envName, err := resolveMasterKey(lines, opts.Env)
		if err != nil {
			return nil, err
		}

		newLines, report, err := secrets.EncryptAll(lines, key, envName, opts.Now())
		if err != nil {
			return nil, err
		}

		if err := secrets.WriteLines(file, newLines); err != nil {
			return nil, err
		}

		result.Reports = append(result.Reports, FileEncryptReport{
			File:      file,
			Encrypted: report.Encrypted,
			Skipped:   report.Skipped,
		})
		result.Total += len(report.Encrypted)

		audit.Log(opts.Dir, audit.Entry{
			Operation: "encrypt",
			File:      file,
			KeyEnv:    envName,
			Encrypted: len(report.Encrypted),
			Skipped:   len(report.Skipped),
		})
	}

	return result, nil
}
