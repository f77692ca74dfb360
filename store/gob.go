package store

import (
	"encoding/gob"
	"fmt"
	"os"
)

// SaveGob writes v to path in gob encoding, creating parent
// directories as needed.
func SaveGob(v any, path string) error {
	if err := prepareSavePath(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("encoding gob for %s: %w", path, err)
	}

	logSaved("gob", path)
	return nil
}

// LoadGob reads the gob file at path into v.
func LoadGob(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decoding gob from %s: %w", path, err)
	}

	logLoaded("gob", path)
	return nil
}
