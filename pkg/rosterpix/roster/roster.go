// Package roster reads the personnel listing that drives per-person
// sheet provisioning.
package roster

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Layout of the roster workbook: data on "Sheet1" starting at row 3,
// columns C–E holding name, service number and ID card number.
const (
	sheetName  = "Sheet1"
	firstRow   = 3
	nameCol    = 2 // C, 0-based
	serviceCol = 3 // D
	idCardCol  = 4 // E
)

// Entry is one roster row.
type Entry struct {
	Name      string
	ServiceNo string // digits only, extracted from the raw cell
	IDCard    string
}

// Read loads roster entries from the workbook at path. Rows with an
// empty name are skipped; the service number keeps only its digits.
func Read(path string) ([]Entry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for i := firstRow - 1; i < len(rows); i++ {
		row := rows[i]
		name := strings.TrimSpace(cellAt(row, nameCol))
		if name == "" {
			continue
		}
		entries = append(entries, Entry{
			Name:      name,
			ServiceNo: ExtractDigits(cellAt(row, serviceCol)),
			IDCard:    strings.TrimSpace(cellAt(row, idCardCol)),
		})
	}
	return entries, nil
}

// cellAt returns the cell value at col, tolerating the ragged rows
// GetRows produces for sparse sheets.
func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}

// ExtractDigits strips every non-digit character, reducing a formatted
// identifier such as "士 123-456" to "123456".
func ExtractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
