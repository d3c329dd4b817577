package workflows

import (
	"context"

	"github.com/AsilbekT/secman/internal/audit"
	"github.com/AsilbekT/secman/internal/secrets"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// FilePatterns specifies target secrets files. Globs are allowed.
	FilePatterns []string

	// Dir is the project directory. Defaults to the current directory.
	Dir string

	// Env resolves the master key environment variable. Defaults to OSEnv.
	Env Env
}

// FileDecryptReport is the per-file outcome of a decrypt pass.
type FileDecryptReport struct {
	File      string
	Decrypted int
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	Reports []FileDecryptReport
	Total   int
}

// Decrypt restores every encrypted secret in the target files to its plain
// form, dropping the encrypted companion lines. Signatures are verified
// before any ciphertext is decrypted; a mismatch or cipher failure aborts
// that file's pass before anything is written, so the file on disk stays
// byte-identical on every failure path.
//
// Returns ErrKeyUnset without touching the file when the declared key
// variable is unset, and ErrSignatureMismatch or ErrDecryptFailed naming
// the offending secret on verification or cipher failures.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Env == nil {
		opts.Env = OSEnv
	}

	cfg, err := resolveConfig(opts.Dir)
	if err != nil {
		return nil, err
	}

	files, err := resolveTargets(cfg, opts.Dir, opts.FilePatterns)
	if err != nil {
		return nil, err
	}

	result := &DecryptResult{}
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

		newLines, count, err := secrets.DecryptAll(lines, key)
		if err != nil {
			return nil, err
		}

		if err := secrets.WriteLines(file, newLines); err != nil {
			return nil, err
		}

		result.Reports = append(result.Reports, FileDecryptReport{File: file, Decrypted: count})
		result.Total += count

		audit.Log(opts.Dir, audit.Entry{
			Operation: "decrypt",
			File:      file,
			KeyEnv:    envName,
			Decrypted: count,
		})
	}

	return result, nil
}
