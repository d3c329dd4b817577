package secrets

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TimeLayout is the timestamp format stored in encrypted line metadata.
const TimeLayout = "2006-01-02 15:04:05"

// EncryptedSuffix marks the companion line carrying a secret's ciphertext.
const EncryptedSuffix = "_ENCRYPTED"

// Kind identifies what a raw line of the secrets file represents.
type Kind int

const (
	// KindBlank is a line that is empty or whitespace only.
	KindBlank Kind = iota

	// KindComment is a line starting with '#', preserved verbatim.
	KindComment

	// KindKeyDecl is the line naming the master key environment variable.
	KindKeyDecl

	// KindPlain is a `NAME = "value"` secret line; the value may be empty.
	KindPlain

	// KindEncrypted is a `NAME_ENCRYPTED = "ciphertext"` line with optional
	// provenance metadata in a trailing comment.
	KindEncrypted

	// KindUnrecognized is anything else; such lines pass through untouched.
	KindUnrecognized
)

// Metadata is the provenance comment attached to an encrypted line:
// the key environment variable name, an 8-character signature suffix, and
// the encryption timestamp, comma-separated in that order.
type Metadata struct {
	KeyEnvName string
	Signature  string
	Timestamp  string
}

// Line is one classified line of the secrets file. Raw always holds the
// original text, so pass-through rewrites are byte-identical.
type Line struct {
	Kind  Kind
	Raw   string
	Name  string   // secret or declaration name; KindEncrypted stores the base name without the suffix
	Value string   // plaintext for KindPlain/KindKeyDecl, ciphertext for KindEncrypted
	Meta  Metadata // only for KindEncrypted
}

var (
	nameRe      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	plainRe     = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*=\s*"([^"]*)"\s*$`)
	encryptedRe = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)_ENCRYPTED\s*=\s*"([^"]*)"\s*(#.*)?$`)
)

// IsValidName reports whether name is a valid secret identifier.
func IsValidName(name string) bool {
	return nameRe.MatchString(name)
}

// Classify maps one raw line to its Line variant. keyDecl is the reserved
// declaration name (normally MASTER_KEY_ENV). Classify is a pure function
// of its inputs and never fails: anything it cannot parse, including an
// encrypted line with a malformed metadata comment, becomes
// KindUnrecognized so the file transformer passes it through verbatim.
func Classify(raw, keyDecl string) Line {
	if strings.TrimSpace(raw) == "" {
		return Line{Kind: KindBlank, Raw: raw}
	}
	if strings.HasPrefix(raw, "#") {
		return Line{Kind: KindComment, Raw: raw}
	}

	if m := encryptedRe.FindStringSubmatch(raw); m != nil {
		line := Line{Kind: KindEncrypted, Raw: raw, Name: m[1], Value: m[2]}
		if m[3] != "" {
			meta, ok := parseMetadata(m[3])
			if !ok {
				return Line{Kind: KindUnrecognized, Raw: raw}
			}
			line.Meta = meta
		}
		return line
	}

	if m := plainRe.FindStringSubmatch(raw); m != nil {
		if m[1] == keyDecl {
			return Line{Kind: KindKeyDecl, Raw: raw, Name: m[1], Value: m[2]}
		}
		return Line{Kind: KindPlain, Raw: raw, Name: m[1], Value: m[2]}
	}

	return Line{Kind: KindUnrecognized, Raw: raw}
}

// ClassifyAll classifies every raw line in order.
func ClassifyAll(raws []string, keyDecl string) []Line {
	lines := make([]Line, 0, len(raws))
	for _, raw := range raws {
		lines = append(lines, Classify(raw, keyDecl))
	}
	return lines
}

// parseMetadata parses a trailing `#env,sig8,YYYY-MM-DD HH:MM:SS` comment.
func parseMetadata(comment string) (Metadata, bool) {
	body := strings.TrimPrefix(comment, "#")
	parts := strings.SplitN(body, ",", 3)
	if len(parts) != 3 {
		return Metadata{}, false
	}

	meta := Metadata{
		KeyEnvName: strings.TrimSpace(parts[0]),
		Signature:  strings.TrimSpace(parts[1]),
		Timestamp:  strings.TrimSpace(parts[2]),
	}
	if !nameRe.MatchString(meta.KeyEnvName) {
		return Metadata{}, false
	}
	if len(meta.Signature) != SignatureLength {
		return Metadata{}, false
	}
	if _, err := time.Parse(TimeLayout, meta.Timestamp); err != nil {
		return Metadata{}, false
	}
	return meta, true
}

// PlainLine builds a canonical plain secret line. The value is written
// between the quotes verbatim, exactly as the classifier reads it back, so
// rewriting a file never alters a value. Values containing a double quote
// cannot be represented by the format.
func PlainLine(name, value string) Line {
	return Line{
		Kind:  KindPlain,
		Raw:   fmt.Sprintf("%s = \"%s\"", name, value),
		Name:  name,
		Value: value,
	}
}

// KeyDeclLine builds a canonical key declaration line.
func KeyDeclLine(keyDecl, envName string) Line {
	return Line{
		Kind:  KindKeyDecl,
		Raw:   fmt.Sprintf("%s = \"%s\"", keyDecl, envName),
		Name:  keyDecl,
		Value: envName,
	}
}

// EncryptedLine builds a canonical encrypted secret line with its
// provenance metadata comment.
func EncryptedLine(name, ciphertext string, meta Metadata) Line {
	raw := fmt.Sprintf("%s%s = \"%s\"    #%s,%s,%s",
		name, EncryptedSuffix, ciphertext, meta.KeyEnvName, meta.Signature, meta.Timestamp)
	return Line{
		Kind:  KindEncrypted,
		Raw:   raw,
		Name:  name,
		Value: ciphertext,
		Meta:  meta,
	}
}

// Rendered returns the file text for a line.
func (l Line) Rendered() string {
	return l.Raw
}
