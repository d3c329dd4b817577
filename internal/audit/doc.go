// Package audit records a best-effort trail of mutating secman operations.
//
// Entries are appended as JSON lines to .secman_audit.jsonl in the project
// directory. Audit failures are swallowed: an operation never fails because
// its trail could not be written.
package audit
