package audit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLogAndRead(t *testing.T) {
	tmpDir := t.TempDir()

	Log(tmpDir, Entry{Operation: "encrypt", File: "project_secrets.env", Encrypted: 2})
	Log(tmpDir, Entry{Operation: "remove", File: "project_secrets.env", Secret: "FOO"})

	entries, err := Read(tmpDir)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].Operation != "encrypt" || entries[0].Encrypted != 2 {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if entries[1].Operation != "remove" || entries[1].Secret != "FOO" {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}

	// IDs and timestamps are filled in automatically.
	for _, e := range entries {
		if e.ID == "" {
			t.Error("Expected an entry ID to be generated")
		}
		if e.Timestamp == "" {
			t.Error("Expected a timestamp to be generated")
		}
	}
}

func TestRead_MissingLog(t *testing.T) {
	entries, err := Read(t.TempDir())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestRead_StopsAtCorruptEntry(t *testing.T) {
	tmpDir := t.TempDir()
	Log(tmpDir, Entry{Operation: "encrypt"})

	logPath := filepath.Join(tmpDir, FileName)
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("Failed to open log: %v", err)
	}
	if _, err := f.WriteString("{not json\n"); err != nil {
		t.Fatalf("Failed to append garbage: %v", err)
	}
	f.Close()

	entries, err := Read(tmpDir)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected the valid entry before the corruption, got %d", len(entries))
	}
}

func TestLog_UnwritableDirIsSilent(t *testing.T) {
	// Logging must never propagate failures to the operation.
	Log(filepath.Join(t.TempDir(), "does", "not", "exist"), Entry{Operation: "encrypt"})
}
