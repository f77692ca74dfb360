package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SaveYAML writes v to path as YAML, creating parent directories as
// needed.
func SaveYAML(v any, path string) error {
	if err := prepareSavePath(path); err != nil {
		return err
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding yaml for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	logSaved("yaml", path)
	return nil
}

// LoadYAML reads the YAML file at path into v.
func LoadYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding yaml from %s: %w", path, err)
	}

	logLoaded("yaml", path)
	return nil
}
