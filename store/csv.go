package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/jsamuelsen11/datakit/settings"
)

// SaveCSV writes rows to path as CSV, creating parent directories as
// needed.
func SaveCSV(rows [][]string, path string) error {
	if err := prepareSavePath(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing csv to %s: %w", path, err)
	}

	logSaved("csv", path)
	return nil
}

// SaveCSVRecords formats records into strings and writes them as CSV.
// Floating-point cells are rendered with the float precision from the
// current display preferences.
func SaveCSVRecords(records [][]any, path string) error {
	precision := settings.Display().FloatPrecision

	rows := make([][]string, len(records))
	for i, record := range records {
		row := make([]string, len(record))
		for j, cell := range record {
			row[j] = formatCell(cell, precision)
		}
		rows[i] = row
	}
	return SaveCSV(rows, path)
}

func formatCell(v any, precision int) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', precision, 64)
	case float32:
		return strconv.FormatFloat(float64(c), 'f', precision, 32)
	default:
		return fmt.Sprint(c)
	}
}

// LoadCSV reads the CSV file at path and returns its rows.
func LoadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv from %s: %w", path, err)
	}

	logLoaded("csv", path)
	return rows, nil
}
