package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	secerrors "github.com/AsilbekT/secman/internal/errors"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32 // 256-bit symmetric key
	nonceSize = 24
)

// GenerateMasterKey returns a fresh random master key in the encoding the
// cipher expects: url-safe base64 of 32 random bytes.
func GenerateMasterKey() (string, error) {
	raw := make([]byte, keySize)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate key material: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

// decodeMasterKey decodes and validates a master key. The key is used
// as-is; no derivation is performed.
func decodeMasterKey(masterKey string) (*[keySize]byte, error) {
	raw, err := base64.URLEncoding.DecodeString(masterKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", secerrors.ErrInvalidKey, err)
	}
	if len(raw) != keySize {
		return nil, fmt.Errorf("%w: expected %d key bytes, got %d",
			secerrors.ErrInvalidKey, keySize, len(raw))
	}
	var key [keySize]byte
	copy(key[:], raw)
	return &key, nil
}

// EncryptValue encrypts a secret value with the master key using NaCl
// secretbox. The random nonce is prepended to the box and the whole thing
// is base64-encoded for storage in the text file. Callers must not pass an
// empty plaintext; empty values are "unset" and never encrypted.
func EncryptValue(plaintext, masterKey string) (string, error) {
	key, err := decodeMasterKey(masterKey)
	if err != nil {
		return "", err
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("%w: %v", secerrors.ErrEncryptFailed, err)
	}

	box := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, key)
	return base64.StdEncoding.EncodeToString(box), nil
}

// DecryptValue decrypts a ciphertext produced by EncryptValue. It fails
// with ErrDecryptFailed when the ciphertext is malformed or was produced
// under a different key (secretbox authentication failure).
func DecryptValue(ciphertext, masterKey string) (string, error) {
	key, err := decodeMasterKey(masterKey)
	if err != nil {
		return "", err
	}

	box, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: malformed ciphertext encoding", secerrors.ErrDecryptFailed)
	}
	if len(box) < nonceSize+secretbox.Overhead {
		return "", fmt.Errorf("%w: ciphertext too short", secerrors.ErrDecryptFailed)
	}

	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])

	plaintext, ok := secretbox.Open(nil, box[nonceSize:], &nonce, key)
	if !ok {
		return "", fmt.Errorf("%w: wrong key or corrupted ciphertext", secerrors.ErrDecryptFailed)
	}
	return string(plaintext), nil
}
