package rosterpix

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"rosterpix/pkg/rosterpix/roster"
)

// Cells on each person sheet that receive roster data.
const (
	nameCell    = "B3"
	serviceCell = "D3"
	idCardCell  = "B4"
)

// ProvisionSheets reads the roster workbook and, for every listed
// person, clones the template sheet in the target workbook under the
// person's name (or reuses an existing same-named sheet), then writes
// name, service number and ID card number into the fixed cells. Other
// cells and their formatting are left untouched. The target workbook is
// saved in place. Returns the number of people processed.
func ProvisionSheets(rosterPath, targetPath, templateSheet string) (int, error) {
	entries, err := roster.Read(rosterPath)
	if err != nil {
		return 0, err
	}

	f, err := excelize.OpenFile(targetPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	tplIdx, err := f.GetSheetIndex(templateSheet)
	if err != nil {
		return 0, err
	}
	if tplIdx < 0 {
		return 0, fmt.Errorf("template sheet %q not found in %s", templateSheet, targetPath)
	}

	for _, entry := range entries {
		idx, err := f.GetSheetIndex(entry.Name)
		if err != nil {
			return 0, fmt.Errorf("person %q: %w", entry.Name, err)
		}
		if idx < 0 {
			newIdx, err := f.NewSheet(entry.Name)
			if err != nil {
				return 0, fmt.Errorf("person %q: %w", entry.Name, err)
			}
			if err := f.CopySheet(tplIdx, newIdx); err != nil {
				return 0, fmt.Errorf("cloning template for %q: %w", entry.Name, err)
			}
		}

		if err := f.SetCellValue(entry.Name, nameCell, entry.Name); err != nil {
			return 0, err
		}
		if err := f.SetCellValue(entry.Name, serviceCell, entry.ServiceNo); err != nil {
			return 0, err
		}
		if err := f.SetCellValue(entry.Name, idCardCell, entry.IDCard); err != nil {
			return 0, err
		}
	}

	if err := f.Save(); err != nil {
		return 0, err
	}
	return len(entries), nil
}
