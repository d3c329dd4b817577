package secrets

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// SignatureLength is the number of characters of the base64 digest stored
// in the metadata comment.
const SignatureLength = 8

// Sign computes the provenance signature for an encrypted secret: the
// SHA-256 digest of ciphertext, timestamp, and key-env-name concatenated in
// that order, base64-encoded and truncated to its last SignatureLength
// characters. The truncation keeps the metadata comment short; the full
// digest is never stored.
func Sign(ciphertext, timestamp, keyEnvName string) string {
	digest := sha256.Sum256([]byte(ciphertext + timestamp + keyEnvName))
	encoded := base64.StdEncoding.EncodeToString(digest[:])
	return encoded[len(encoded)-SignatureLength:]
}

// Verify recomputes the signature from an encrypted line's ciphertext and
// stored metadata and compares it to the stored signature. A false result
// means the line was tampered with or hand-edited since encryption, and the
// ciphertext must not be decrypted silently.
func Verify(meta Metadata, ciphertext string) bool {
	if meta.Signature == "" {
		return false
	}
	want := Sign(ciphertext, meta.Timestamp, meta.KeyEnvName)
	return subtle.ConstantTimeCompare([]byte(want), []byte(meta.Signature)) == 1
}
