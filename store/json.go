package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// SaveJSON writes v to path as indented JSON, creating parent
// directories as needed.
func SaveJSON(v any, path string) error {
	if err := prepareSavePath(path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json for %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	logSaved("json", path)
	return nil
}

// LoadJSON reads the JSON file at path into v.
func LoadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding json from %s: %w", path, err)
	}

	logLoaded("json", path)
	return nil
}
