package audit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileName is the audit trail written next to the project config.
const FileName = ".secman_audit.jsonl"

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"`
	File      string `json:"file,omitempty"`

	// Optional fields depending on operation.
	Secret    string `json:"secret,omitempty"`     // For remove.
	KeyEnv    string `json:"key_env,omitempty"`    // For set-master/convert.
	Encrypted int    `json:"encrypted,omitempty"`  // For encrypt.
	Decrypted int    `json:"decrypted,omitempty"`  // For decrypt.
	Converted int    `json:"converted,omitempty"`  // For convert.
	Skipped   int    `json:"skipped,omitempty"`    // For encrypt.
}

// Log appends an entry to the audit log in dir.
// If logging fails it returns silently; operations should not fail just
// because the audit trail could not be written.
func Log(dir string, entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := filepath.Join(dir, FileName)

	// #nosec G306 -- the audit log holds operation metadata, not secrets.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')
	_, _ = f.Write(data)
}

// Read returns all entries in the audit log in dir, oldest first.
// A missing log file yields an empty slice.
func Read(dir string) ([]Entry, error) {
	logPath := filepath.Join(dir, FileName)
	content, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	dec := json.NewDecoder(bytes.NewReader(content))
	for dec.More() {
		var e Entry
		if err := dec.Decode(&e); err != nil {
			// Stop at the first corrupt entry; everything before it is valid.
			break
		}
		entries = append(entries, e)
	}
	return entries, nil
}
