package store

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Sheet1"

// Sheet pairs a worksheet name with its cell grid.
type Sheet struct {
	Name string
	Rows [][]string
}

// SaveSpreadsheet writes rows to a single-sheet workbook at path,
// creating parent directories as needed.
func SaveSpreadsheet(rows [][]string, path string) error {
	return SaveSpreadsheets([]Sheet{{Name: defaultSheetName, Rows: rows}}, path)
}

// SaveSpreadsheets writes one worksheet per entry, in order, to the
// workbook at path.
func SaveSpreadsheets(sheets []Sheet, path string) error {
	if err := prepareSavePath(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheetName, sheet.Name); err != nil {
				return fmt.Errorf("naming sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("creating sheet %q: %w", sheet.Name, err)
		}

		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return fmt.Errorf("addressing row %d: %w", r+1, err)
			}
			if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
				return fmt.Errorf("writing sheet %q row %d: %w", sheet.Name, r+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	logSaved("xlsx", path)
	return nil
}

// LoadSpreadsheet reads one worksheet from the workbook at path. An
// empty sheet name selects the first sheet.
func LoadSpreadsheet(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q from %s: %w", sheet, path, err)
	}

	logLoaded("xlsx", path)
	return rows, nil
}

// LoadSpreadsheets reads every worksheet of the workbook at path,
// keyed by sheet name.
func LoadSpreadsheets(path string) (map[string][][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheets := make(map[string][][]string)
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q from %s: %w", name, path, err)
		}
		sheets[name] = rows
	}

	logLoaded("xlsx", path)
	return sheets, nil
}
