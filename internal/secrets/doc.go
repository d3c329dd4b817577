// Package secrets implements the core of the secman store: classifying the
// lines of a secrets file, transforming them, and the cryptography that
// backs encrypted values.
//
// # File format
//
// A secrets file is line-oriented UTF-8 text:
//
//	# comment lines (preserved verbatim)
//	MASTER_KEY_ENV = "APP_KEY"
//	FOO = ""
//	FOO_ENCRYPTED = "<ciphertext>"    #APP_KEY,<sig8>,2024-06-18 10:30:00
//
// The key declaration line names the environment variable holding the
// master key. A secret is one plain line, plus an encrypted companion line
// once it has been encrypted; encrypting erases the plaintext. Lines that
// fail classification, including encrypted lines with malformed metadata
// comments, pass through every operation verbatim so a manual edit is
// never silently destroyed.
//
// # Transforms
//
// All file operations (EncryptAll, DecryptAll, DeleteSecret,
// SetKeyDeclaration, ConvertKey) are pure functions over the ordered line
// sequence. I/O happens only at the boundary: ReadLines, one transform,
// WriteLines. WriteLines goes through a temp file and rename, so failure
// paths never leave a partially rewritten file.
//
// # Cryptography
//
// Values are encrypted with NaCl secretbox under a 256-bit master key,
// supplied url-safe base64 encoded and used as-is (no derivation). A random
// 24-byte nonce is prepended to the box, so re-encrypting the same value
// produces different ciphertext. Each encrypted line carries a provenance
// signature: the last 8 base64 characters of
// SHA-256(ciphertext || timestamp || key-env-name), checked before any
// decryption to catch tampering and hand edits.
//
// # Known limitation
//
// Operations read the whole file and replace it; two processes working on
// the same file concurrently can lose one side's update. There is no
// locking, matching the single-operator design of the tool.
package secrets
