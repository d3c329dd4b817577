package secrets

import (
	"fmt"
	"time"

	secerrors "github.com/AsilbekT/secman/internal/errors"
)

// HeaderDisclaimer is the single-line header ensured on every write that
// mutates secrets.
const HeaderDisclaimer = "# Generated by secman. Do not edit manually, unless you know what you are doing"

// FileHeader is the comment block written at the top of a freshly
// initialized secrets file.
const FileHeader = `#  SECRET KEYS file
#
#  Generated by secman
#  Do not edit this file manually, unless you know what you are doing
#  Remember to keep copies of your secrets in a safe place
#
#  Note:
#    lines not processed by secman will be those starting with "#"
#    or empty lines
#
`

// The transforms below are pure functions over the ordered line sequence:
// old lines in, new lines out, no I/O. The workflows layer reads the file,
// runs one transform, and writes the result back, so a failed transform
// never leaves a half-rewritten file on disk.

// Names returns the declared name of every secret, encrypted companion, and
// key declaration line, in file order. Comments and blank lines are skipped.
func Names(lines []Line) []string {
	var names []string
	for _, line := range lines {
		switch line.Kind {
		case KindPlain, KindKeyDecl:
			names = append(names, line.Name)
		case KindEncrypted:
			names = append(names, line.Name+EncryptedSuffix)
		}
	}
	return names
}

// KeyEnvName returns the master key environment variable named by the
// file's key declaration line, if any.
func KeyEnvName(lines []Line) (string, bool) {
	for _, line := range lines {
		if line.Kind == KindKeyDecl {
			return line.Value, true
		}
	}
	return "", false
}

// EnsureDisclaimer prepends the disclaimer header unless the first line
// already is it.
func EnsureDisclaimer(lines []Line) []Line {
	if len(lines) > 0 && lines[0].Raw == HeaderDisclaimer {
		return lines
	}
	out := make([]Line, 0, len(lines)+1)
	out = append(out, Line{Kind: KindComment, Raw: HeaderDisclaimer})
	return append(out, lines...)
}

// EncryptReport describes the outcome of an encrypt-all pass.
type EncryptReport struct {
	// Encrypted lists secrets newly encrypted by this pass.
	Encrypted []string

	// Skipped lists secrets that still held a plaintext value but already
	// had an encrypted companion; their plaintext was blanked, not
	// re-encrypted.
	Skipped []string
}

// EncryptAll encrypts every plain secret with a non-empty value that does
// not already have an encrypted companion line. Each encrypted secret is
// rewritten as an empty-valued plain line immediately followed by the new
// encrypted line carrying ciphertext and provenance metadata. Empty-valued
// secrets are unset and left untouched. The pass fails as a whole on the
// first cipher error, so a half-encrypted file is never produced.
func EncryptAll(lines []Line, masterKey, keyEnvName string, now time.Time) ([]Line, *EncryptReport, error) {
	companions := make(map[string]bool)
	for _, line := range lines {
		if line.Kind == KindEncrypted {
			companions[line.Name] = true
		}
	}

	report := &EncryptReport{}
	out := make([]Line, 0, len(lines)+4)

	for _, line := range lines {
		if line.Kind != KindPlain {
			out = append(out, line)
			continue
		}

		switch {
		case companions[line.Name]:
			// Already backed by an encrypted line. Blank the plaintext and
			// report the skip when a value was present.
			if line.Value != "" {
				report.Skipped = append(report.Skipped, line.Name)
			}
			out = append(out, PlainLine(line.Name, ""))

		case line.Value == "":
			out = append(out, line)

		default:
			ciphertext, err := EncryptValue(line.Value, masterKey)
			if err != nil {
				return nil, nil, fmt.Errorf("secret %s: %w", line.Name, err)
			}
			meta := Metadata{
				KeyEnvName: keyEnvName,
				Timestamp:  now.Format(TimeLayout),
			}
			meta.Signature = Sign(ciphertext, meta.Timestamp, meta.KeyEnvName)

			out = append(out, PlainLine(line.Name, ""))
			out = append(out, EncryptedLine(line.Name, ciphertext, meta))
			report.Encrypted = append(report.Encrypted, line.Name)
		}
	}

	return EnsureDisclaimer(out), report, nil
}

// DecryptAll decrypts every encrypted secret back into its plain line and
// drops the encrypted companion from the output. Records carrying metadata
// have their signature verified before decryption; a mismatch aborts the
// whole pass naming the secret, as does any cipher failure, so the file is
// never written half-decrypted. Records without a metadata comment have no
// stored signature to disagree with and are decrypted on the strength of
// the cipher's own authentication. Plain secrets without a companion pass
// through unchanged.
func DecryptAll(lines []Line, masterKey string) ([]Line, int, error) {
	companions := make(map[string]bool)
	for _, line := range lines {
		if line.Kind == KindEncrypted {
			companions[line.Name] = true
		}
	}

	count := 0
	out := make([]Line, 0, len(lines))

	for _, line := range lines {
		switch line.Kind {
		case KindPlain:
			if companions[line.Name] {
				// The decrypted value is emitted where the encrypted
				// companion sits; the placeholder line is dropped.
				continue
			}
			out = append(out, line)

		case KindEncrypted:
			if line.Meta != (Metadata{}) && !Verify(line.Meta, line.Value) {
				return nil, 0, fmt.Errorf("secret %s: %w", line.Name, secerrors.ErrSignatureMismatch)
			}
			value, err := DecryptValue(line.Value, masterKey)
			if err != nil {
				return nil, 0, fmt.Errorf("secret %s: %w", line.Name, err)
			}
			out = append(out, PlainLine(line.Name, value))
			count++

		default:
			out = append(out, line)
		}
	}

	return EnsureDisclaimer(out), count, nil
}

// DeleteSecret removes the named secret's plain line and its encrypted
// companion, if any. All other lines pass through unchanged. The second
// return reports whether anything was removed.
func DeleteSecret(lines []Line, name string) ([]Line, bool) {
	found := false
	out := make([]Line, 0, len(lines))

	for _, line := range lines {
		switch line.Kind {
		case KindPlain:
			if line.Name == name {
				found = true
				continue
			}
		case KindEncrypted:
			if line.Name == name {
				found = true
				continue
			}
		}
		out = append(out, line)
	}

	if !found {
		return out, false
	}
	return EnsureDisclaimer(out), true
}

// SetKeyDeclaration rewrites the key declaration line to name envName.
// When the file has no declaration line this is a no-op and the second
// return is false; callers that require a declaration must check it.
func SetKeyDeclaration(lines []Line, keyDecl, envName string) ([]Line, bool) {
	changed := false
	out := make([]Line, 0, len(lines))

	for _, line := range lines {
		if line.Kind == KindKeyDecl && !changed {
			out = append(out, KeyDeclLine(keyDecl, envName))
			changed = true
			continue
		}
		out = append(out, line)
	}

	if !changed {
		return out, false
	}
	return EnsureDisclaimer(out), true
}

// ConvertKey re-encrypts every encrypted secret under a new master key:
// verify the stored signature if the record carries one, decrypt with the
// old key, encrypt with the new key, and re-stamp the metadata with
// newEnvName and the current time.
// The key declaration line is rewritten to newEnvName as well. Any
// verification or cipher failure aborts the whole operation, so the file is
// either fully converted or untouched.
func ConvertKey(lines []Line, oldKey, newKey, keyDecl, newEnvName string, now time.Time) ([]Line, int, error) {
	count := 0
	out := make([]Line, 0, len(lines))

	for _, line := range lines {
		switch line.Kind {
		case KindEncrypted:
			if line.Meta != (Metadata{}) && !Verify(line.Meta, line.Value) {
				return nil, 0, fmt.Errorf("secret %s: %w", line.Name, secerrors.ErrSignatureMismatch)
			}
			value, err := DecryptValue(line.Value, oldKey)
			if err != nil {
				return nil, 0, fmt.Errorf("secret %s: %w", line.Name, err)
			}
			ciphertext, err := EncryptValue(value, newKey)
			if err != nil {
				return nil, 0, fmt.Errorf("secret %s: %w", line.Name, err)
			}
			meta := Metadata{
				KeyEnvName: newEnvName,
				Timestamp:  now.Format(TimeLayout),
			}
			meta.Signature = Sign(ciphertext, meta.Timestamp, meta.KeyEnvName)
			out = append(out, EncryptedLine(line.Name, ciphertext, meta))
			count++

		case KindKeyDecl:
			out = append(out, KeyDeclLine(keyDecl, newEnvName))

		default:
			out = append(out, line)
		}
	}

	return EnsureDisclaimer(out), count, nil
}
