// Package workflows provides high-level orchestration for secman commands.
//
// Workflows coordinate the configs, secrets, and audit packages to
// implement complete user-facing operations, independent of CLI concerns
// like flag parsing, spinners, and output formatting.
//
// # Design
//
// The cmd/ package is a thin layer that parses flags, calls a workflow, and
// formats the result. Each workflow:
//
//   - resolves the project config and target secrets files
//   - resolves master key material through an injected Env lookup
//   - runs one pure transform over the file's classified lines
//   - atomically replaces the file and records an audit entry
//
// Because the transform runs fully in memory before anything is written,
// every failure path leaves the on-disk file byte-identical.
//
// # Error handling
//
// Workflows return typed errors from the internal/errors package; the CLI
// layer matches them with errors.Is to pick user-facing messages:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, secerrors.ErrKeyUnset) {
//	    // tell the user to export the master key variable
//	}
//
// All workflow functions accept a context.Context as their first parameter.
package workflows
