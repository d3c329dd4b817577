package secrets

import (
	"testing"
)

const testKeyDecl = "MASTER_KEY_ENV"

func TestClassify_BlankAndComment(t *testing.T) {
	cases := []struct {
		raw  string
		kind Kind
	}{
		{"", KindBlank},
		{"   ", KindBlank},
		{"\t", KindBlank},
		{"# a comment", KindComment},
		{"#no space", KindComment},
	}
	for _, c := range cases {
		line := Classify(c.raw, testKeyDecl)
		if line.Kind != c.kind {
			t.Errorf("Classify(%q): expected kind %v, got %v", c.raw, c.kind, line.Kind)
		}
		if line.Raw != c.raw {
			t.Errorf("Classify(%q): raw text not preserved, got %q", c.raw, line.Raw)
		}
	}
}

func TestClassify_PlainSecret(t *testing.T) {
	line := Classify(`FOO = "bar"`, testKeyDecl)
	if line.Kind != KindPlain {
		t.Fatalf("Expected KindPlain, got %v", line.Kind)
	}
	if line.Name != "FOO" || line.Value != "bar" {
		t.Errorf("Expected FOO/bar, got %s/%s", line.Name, line.Value)
	}
}

func TestClassify_PlainSecretEmptyValue(t *testing.T) {
	line := Classify(`FOO = ""`, testKeyDecl)
	if line.Kind != KindPlain {
		t.Fatalf("Expected KindPlain, got %v", line.Kind)
	}
	if line.Value != "" {
		t.Errorf("Expected empty value, got %q", line.Value)
	}
}

func TestClassify_KeyDeclaration(t *testing.T) {
	line := Classify(`MASTER_KEY_ENV = "APP_KEY"`, testKeyDecl)
	if line.Kind != KindKeyDecl {
		t.Fatalf("Expected KindKeyDecl, got %v", line.Kind)
	}
	if line.Value != "APP_KEY" {
		t.Errorf("Expected APP_KEY, got %q", line.Value)
	}
}

func TestClassify_EncryptedWithMetadata(t *testing.T) {
	raw := `FOO_ENCRYPTED = "Y2lwaGVy"    #APP_KEY,AbCdEf12,2024-06-18 10:30:00`
	line := Classify(raw, testKeyDecl)
	if line.Kind != KindEncrypted {
		t.Fatalf("Expected KindEncrypted, got %v", line.Kind)
	}
	if line.Name != "FOO" {
		t.Errorf("Expected base name FOO, got %q", line.Name)
	}
	if line.Value != "Y2lwaGVy" {
		t.Errorf("Expected ciphertext Y2lwaGVy, got %q", line.Value)
	}
	if line.Meta.KeyEnvName != "APP_KEY" {
		t.Errorf("Expected key env APP_KEY, got %q", line.Meta.KeyEnvName)
	}
	if line.Meta.Signature != "AbCdEf12" {
		t.Errorf("Expected signature AbCdEf12, got %q", line.Meta.Signature)
	}
	if line.Meta.Timestamp != "2024-06-18 10:30:00" {
		t.Errorf("Expected timestamp, got %q", line.Meta.Timestamp)
	}
}

func TestClassify_EncryptedWithoutMetadata(t *testing.T) {
	line := Classify(`FOO_ENCRYPTED = "Y2lwaGVy"`, testKeyDecl)
	if line.Kind != KindEncrypted {
		t.Fatalf("Expected KindEncrypted, got %v", line.Kind)
	}
	if line.Meta != (Metadata{}) {
		t.Errorf("Expected empty metadata, got %+v", line.Meta)
	}
}

func TestClassify_MalformedMetadataIsUnrecognized(t *testing.T) {
	cases := []string{
		`FOO_ENCRYPTED = "c"    #APP_KEY,AbCdEf12`,                        // missing timestamp
		`FOO_ENCRYPTED = "c"    #APP_KEY,short,2024-06-18 10:30:00`,       // signature not 8 chars
		`FOO_ENCRYPTED = "c"    #not a name,AbCdEf12,2024-06-18 10:30:00`, // invalid env name
		`FOO_ENCRYPTED = "c"    #APP_KEY,AbCdEf12,yesterday`,              // unparseable timestamp
	}
	for _, raw := range cases {
		line := Classify(raw, testKeyDecl)
		if line.Kind != KindUnrecognized {
			t.Errorf("Classify(%q): expected KindUnrecognized, got %v", raw, line.Kind)
		}
		if line.Raw != raw {
			t.Errorf("Classify(%q): raw text not preserved", raw)
		}
	}
}

func TestClassify_Unrecognized(t *testing.T) {
	cases := []string{
		`FOO = bar`,            // unquoted value
		`123 = "x"`,            // invalid name
		`just some text`,       // no assignment
		`FOO = "bar" # tail`,   // plain line with trailing comment
		`FOO = "bar" extra`,    // trailing junk
	}
	for _, raw := range cases {
		line := Classify(raw, testKeyDecl)
		if line.Kind != KindUnrecognized {
			t.Errorf("Classify(%q): expected KindUnrecognized, got %v", raw, line.Kind)
		}
	}
}

func TestClassify_EncryptedSuffixNeverPlain(t *testing.T) {
	// A *_ENCRYPTED line is a companion record, not an encryptable secret.
	line := Classify(`FOO_ENCRYPTED = "value"`, testKeyDecl)
	if line.Kind == KindPlain {
		t.Fatal("*_ENCRYPTED line must not classify as a plain secret")
	}
}

func TestLineBuilders_RoundTripThroughClassify(t *testing.T) {
	plain := PlainLine("FOO", "bar")
	got := Classify(plain.Rendered(), testKeyDecl)
	if got.Kind != KindPlain || got.Name != "FOO" || got.Value != "bar" {
		t.Errorf("PlainLine did not round-trip: %+v", got)
	}

	decl := KeyDeclLine(testKeyDecl, "APP_KEY")
	got = Classify(decl.Rendered(), testKeyDecl)
	if got.Kind != KindKeyDecl || got.Value != "APP_KEY" {
		t.Errorf("KeyDeclLine did not round-trip: %+v", got)
	}

	meta := Metadata{KeyEnvName: "APP_KEY", Signature: "AbCdEf12", Timestamp: "2024-06-18 10:30:00"}
	enc := EncryptedLine("FOO", "Y2lwaGVy", meta)
	got = Classify(enc.Rendered(), testKeyDecl)
	if got.Kind != KindEncrypted || got.Name != "FOO" || got.Value != "Y2lwaGVy" || got.Meta != meta {
		t.Errorf("EncryptedLine did not round-trip: %+v", got)
	}
}

func TestPlainLine_WritesValueVerbatim(t *testing.T) {
	// The value between the quotes is stored literally, never Go-escaped;
	// otherwise every rewrite would drift backslashes and tabs.
	cases := []string{`C:\temp`, `back\\slash`, "tab\there", `ends with \`}
	for _, value := range cases {
		line := PlainLine("FOO", value)
		want := `FOO = "` + value + `"`
		if line.Rendered() != want {
			t.Errorf("PlainLine(%q): rendered %q, want %q", value, line.Rendered(), want)
		}
		got := Classify(line.Rendered(), testKeyDecl)
		if got.Kind != KindPlain || got.Value != value {
			t.Errorf("PlainLine(%q) did not round-trip through Classify: %+v", value, got)
		}
	}
}

func TestIsValidName(t *testing.T) {
	valid := []string{"FOO", "_x", "a1", "SNAKE_CASE_9"}
	invalid := []string{"", "9lives", "dash-ed", "dot.ted", "spa ce"}
	for _, name := range valid {
		if !IsValidName(name) {
			t.Errorf("Expected %q to be valid", name)
		}
	}
	for _, name := range invalid {
		if IsValidName(name) {
			t.Errorf("Expected %q to be invalid", name)
		}
	}
}
