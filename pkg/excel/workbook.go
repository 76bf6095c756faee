// Package excel adapts xlsx workbooks as named sheets of string cells.
package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheets maps sheet name to ordered rows of string cells. Rows may be
// ragged; no column count is enforced.
type Sheets map[string][][]string

// Read opens the workbook at path and returns every sheet's rows with all
// cells converted to text.
func Read(path string) (Sheets, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el archivo %s: %w", path, err)
	}
	defer f.Close()

	sheets := make(Sheets)
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("no se pudo leer la hoja %q de %s: %w", name, path, err)
		}
		sheets[name] = rows
	}
	return sheets, nil
}

// Create writes a new empty workbook with one default sheet to path,
// overwriting any existing file.
func Create(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("no se pudo guardar %s: %w", path, err)
	}
	return nil
}

// Write creates a new workbook at path from an inline blob, overwriting any
// existing file. The blob is split on ';' into rows and on ',' into cells;
// each cell is trimmed and placed at its row/column position.
func Write(path, raw string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for rowIdx, line := range strings.Split(raw, ";") {
		for colIdx, value := range strings.Split(line, ",") {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("celda (%d, %d): %w", rowIdx, colIdx, err)
			}
			if err := f.SetCellStr(sheet, cell, strings.TrimSpace(value)); err != nil {
				return fmt.Errorf("no se pudo escribir la celda %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("no se pudo guardar %s: %w", path, err)
	}
	return nil
}
