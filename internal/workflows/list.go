package workflows

import (
	"context"

	"github.com/AsilbekT/secman/internal/secrets"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	// FilePatterns specifies target secrets files. Globs are allowed.
	FilePatterns []string

	// Dir is the project directory. Defaults to the current directory.
	Dir string
}

// FileListing holds the declared names found in one secrets file.
type FileListing struct {
	File  string
	Names []string
}

// ListResult contains the outcome of a list operation.
type ListResult struct {
	Listings []FileListing
}

// List returns the declared name of every secret, encrypted companion, and
// key declaration in the target files. List is strictly read-only: it
// never writes the file, not even to add the disclaimer header.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}

	cfg, err := resolveConfig(opts.Dir)
	if err != nil {
		return nil, err
	}

	files, err := resolveTargets(cfg, opts.Dir, opts.FilePatterns)
	if err != nil {
		return nil, err
	}

	result := &ListResult{}
	for _, file := range files {
		raws, err := secrets.ReadLines(file)
		if err != nil {
			return nil, err
		}
		lines := secrets.ClassifyAll(raws, cfg.Secrets.KeyDeclaration)
		result.Listings = append(result.Listings, FileListing{
			File:  file,
			Names: secrets.Names(lines),
		})
	}

	return result, nil
}
