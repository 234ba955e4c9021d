package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the credential record as JSON with owner-only
// permissions.
type FileStore struct {
	Path string
}

// Load reads the stored record. A missing or unreadable file means the user
// is not logged in, so both return (nil, nil) rather than an error.
func (s FileStore) Load() (*Record, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credential file at %s: %w", s.Path, err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		// A corrupt file is treated the same as an absent one: the next
		// successful login overwrites it.
		return nil, nil
	}
	return &record, nil
}

// Save writes the record, overwriting any prior one. The file is created
// with mode 0600 and its parent directory with 0700.
func (s FileStore) Save(record Record) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0700); err != nil {
		return fmt.Errorf("failed to create credential directory: %w", err)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize credential record: %w", err)
	}

	if err := os.WriteFile(s.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credential file at %s: %w", s.Path, err)
	}
	return nil
}

// Clear removes the credential file. Removing an absent file is not an error.
func (s FileStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credential file at %s: %w", s.Path, err)
	}
	return nil
}
