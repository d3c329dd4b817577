package errors

import "errors"

// Configuration errors indicate problems locating or parsing project configuration.
var (
	// ErrConfigNotFound indicates no .secman.toml exists for this project.
	ErrConfigNotFound = errors.New("project configuration not found")

	// ErrInvalidConfig indicates the project configuration is malformed or incomplete.
	ErrInvalidConfig = errors.New("project configuration is invalid")

	// ErrAlreadyInitialized indicates the project already has a .secman.toml.
	ErrAlreadyInitialized = errors.New("project has already been initialized")

	// ErrFileNotFound indicates the target secrets file could not be located.
	ErrFileNotFound = errors.New("secrets file not found")

	// ErrNoFilesFound indicates no secrets files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching secrets files found")
)

// Key resolution errors indicate the master key could not be obtained.
var (
	// ErrNoKeyDeclaration indicates the secrets file has no key declaration line.
	ErrNoKeyDeclaration = errors.New("secrets file declares no master key environment variable")

	// ErrKeyUnset indicates the declared master key environment variable is unset or empty.
	ErrKeyUnset = errors.New("master key environment variable is not set")

	// ErrInvalidKey indicates the master key is not a valid base64-encoded 256-bit key.
	ErrInvalidKey = errors.New("invalid master key encoding")
)

// Cryptographic errors indicate failures during encryption or decryption.
var (
	// ErrEncryptFailed indicates a secret value could not be encrypted.
	ErrEncryptFailed = errors.New("failed to encrypt secret value")

	// ErrDecryptFailed indicates a ciphertext could not be decrypted with the supplied key.
	ErrDecryptFailed = errors.New("failed to decrypt secret value")

	// ErrSignatureMismatch indicates the stored signature does not match the
	// recomputed one, suggesting the encrypted line was tampered with or edited.
	ErrSignatureMismatch = errors.New("signature mismatch on encrypted secret")
)

// Secret errors indicate issues with individual secret records.
var (
	// ErrSecretNotFound indicates the named secret does not exist in the file.
	ErrSecretNotFound = errors.New("secret not found")
)
