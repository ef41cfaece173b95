package rosterpix

import "github.com/xuri/excelize/v2"

// PruneSheets deletes every sheet in the workbook except the first and
// saves it in place.
func PruneSheets(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	for _, name := range sheets[1:] {
		if err := f.DeleteSheet(name); err != nil {
			return err
		}
	}
	return f.Save()
}
