// Package errors defines sentinel errors shared across secman packages.
//
// Workflows wrap these sentinels with context using fmt.Errorf and %w, so
// callers can match them with errors.Is while still seeing the details:
//
//	if errors.Is(err, secerrors.ErrKeyUnset) {
//	    // tell the user which environment variable to export
//	}
//
// Errors are grouped by concern: configuration, key resolution,
// cryptography, and secret lookup.
package errors
