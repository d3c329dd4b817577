package secrets

import "testing"

func TestSign_DeterministicAndFixedLength(t *testing.T) {
	a := Sign("cipher", "2024-06-18 10:30:00", "APP_KEY")
	b := Sign("cipher", "2024-06-18 10:30:00", "APP_KEY")
	if a != b {
		t.Errorf("Sign is not deterministic: %q != %q", a, b)
	}
	if len(a) != SignatureLength {
		t.Errorf("Expected %d-character signature, got %d", SignatureLength, len(a))
	}
}

func TestVerify_MatchesSign(t *testing.T) {
	meta := Metadata{
		KeyEnvName: "APP_KEY",
		Timestamp:  "2024-06-18 10:30:00",
	}
	meta.Signature = Sign("cipher", meta.Timestamp, meta.KeyEnvName)

	if !Verify(meta, "cipher") {
		t.Fatal("Expected verification to succeed for an untouched record")
	}
}

func TestVerify_FlipsOnAnyAlteredInput(t *testing.T) {
	meta := Metadata{
		KeyEnvName: "APP_KEY",
		Timestamp:  "2024-06-18 10:30:00",
	}
	meta.Signature = Sign("cipher", meta.Timestamp, meta.KeyEnvName)

	// Altered ciphertext.
	if Verify(meta, "tampered") {
		t.Error("Expected verification to fail for altered ciphertext")
	}

	// Altered timestamp.
	altered := meta
	altered.Timestamp = "2024-06-18 10:30:01"
	if Verify(altered, "cipher") {
		t.Error("Expected verification to fail for altered timestamp")
	}

	// Altered key env name.
	altered = meta
	altered.KeyEnvName = "OTHER_KEY"
	if Verify(altered, "cipher") {
		t.Error("Expected verification to fail for altered key env name")
	}
}

func TestVerify_EmptySignatureFails(t *testing.T) {
	meta := Metadata{KeyEnvName: "APP_KEY", Timestamp: "2024-06-18 10:30:00"}
	if Verify(meta, "cipher") {
		t.Error("Expected verification to fail when no signature is stored")
	}
}

func TestSign_DistinctSecretsGetDistinctSignatures(t *testing.T) {
	// Two different ciphertexts under the same key must not share a
	// signature, otherwise tampering would be undetectable.
	a := Sign("cipher-one", "2024-06-18 10:30:00", "APP_KEY")
	b := Sign("cipher-two", "2024-06-18 10:30:00", "APP_KEY")
	if a == b {
		t.Error("Expected different signatures for different ciphertexts")
	}
}
