// Package store saves and loads data files in common interchange
// formats. Each format has a typed Save/Load pair; SaveData and
// LoadData dispatch on the file extension.
package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// prepareSavePath ensures the parent directory of path exists.
func prepareSavePath(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// SaveData writes v to path, choosing the encoding from the file
// extension. Supported extensions: .json, .yaml, .yml, .csv and .xlsx
// (both require [][]string), .gob.
func SaveData(v any, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return SaveJSON(v, path)
	case ".yaml", ".yml":
		return SaveYAML(v, path)
	case ".csv":
		rows, ok := v.([][]string)
		if !ok {
			return fmt.Errorf("saving %s: csv requires [][]string, got %T", path, v)
		}
		return SaveCSV(rows, path)
	case ".xlsx":
		rows, ok := v.([][]string)
		if !ok {
			return fmt.Errorf("saving %s: xlsx requires [][]string, got %T", path, v)
		}
		return SaveSpreadsheet(rows, path)
	case ".gob":
		return SaveGob(v, path)
	default:
		slog.Debug("unsupported save format",
			slog.String("operation", "save"),
			slog.String("path", path),
			slog.String("hint", "use .json, .yaml, .yml, .csv, .xlsx or .gob"),
		)
		return fmt.Errorf("saving %s: unsupported extension %q", path, ext)
	}
}

// LoadData reads path into v (a pointer for .json/.yaml/.gob), choosing
// the decoding from the file extension. For .csv and .xlsx (first
// sheet), v must be a *[][]string.
func LoadData(path string, v any) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return LoadJSON(path, v)
	case ".yaml", ".yml":
		return LoadYAML(path, v)
	case ".csv":
		rows, ok := v.(*[][]string)
		if !ok {
			return fmt.Errorf("loading %s: csv requires *[][]string, got %T", path, v)
		}
		loaded, err := LoadCSV(path)
		if err != nil {
			return err
		}
		*rows = loaded
		return nil
	case ".xlsx":
		rows, ok := v.(*[][]string)
		if !ok {
			return fmt.Errorf("loading %s: xlsx requires *[][]string, got %T", path, v)
		}
		loaded, err := LoadSpreadsheet(path, "")
		if err != nil {
			return err
		}
		*rows = loaded
		return nil
	case ".gob":
		return LoadGob(path, v)
	default:
		slog.Debug("unsupported load format",
			slog.String("operation", "load"),
			slog.String("path", path),
			slog.String("hint", "use .json, .yaml, .yml, .csv, .xlsx or .gob"),
		)
		return fmt.Errorf("loading %s: unsupported extension %q", path, ext)
	}
}

func logSaved(format, path string) {
	slog.Debug("data saved",
		slog.String("operation", "save"),
		slog.String("format", format),
		slog.String("path", path),
	)
}

func logLoaded(format, path string) {
	slog.Debug("data loaded",
		slog.String("operation", "load"),
		slog.String("format", format),
		slog.String("path", path),
	)
}
