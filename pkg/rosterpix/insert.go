package rosterpix

import (
	"errors"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"rosterpix/pkg/rosterpix/imaging"
	"rosterpix/pkg/rosterpix/layout"
)

// maxPhotosPerSheet caps how many photos tile one merged region. A third
// or further photo for the same person is ignored.
const maxPhotosPerSheet = 2

// InsertImages scans imagesDir for per-person photos and tiles the first
// two across the configured merged region of each same-named sheet in
// the workbook, saving it in place. People without a sheet, or with
// fewer than two photos, are skipped; partial photo sets are not placed.
// Returns the number of sheets that received photos and the names of
// sheets skipped because their region computes to zero drawable area,
// leaving it to the caller to surface those.
func InsertImages(workbookPath, imagesDir string, cfg RegionConfig) (updated int, skipped []string, err error) {
	people, err := imaging.ScanDir(imagesDir)
	if err != nil {
		return 0, nil, err
	}

	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	// Deterministic sheet order; map iteration is not.
	names := make([]string, 0, len(people))
	for name := range people {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		paths := people[name]
		if len(paths) < maxPhotosPerSheet {
			continue
		}
		idx, err := f.GetSheetIndex(name)
		if err != nil || idx < 0 {
			continue
		}
		if err := placePhotos(f, name, paths[:maxPhotosPerSheet], cfg); err != nil {
			if errors.Is(err, ErrEmptyRegion) {
				skipped = append(skipped, name)
				continue
			}
			return updated, skipped, &PlacementError{Sheet: name, Err: err}
		}
		updated++
	}

	if err := f.Save(); err != nil {
		return updated, skipped, err
	}
	return updated, skipped, nil
}

// unsetColWidth is the width excelize reports for a column with no
// stored dimension on a sheet that declares no default of its own.
const unsetColWidth = 9.140625

// regionColumnWidths reads the stored width of each region column.
// GetColWidth never reports absence: a column that was never resized
// comes back as the sheet's default width. Those columns are returned
// as 0 so the conversion layer substitutes its own default, the same
// width a renderer uses when the dimension record is missing. A column
// explicitly resized to exactly the sheet default is indistinguishable
// from an unset one and is treated as unset.
func regionColumnWidths(f *excelize.File, sheet string, columns []string) ([]float64, error) {
	props, err := f.GetSheetProps(sheet)
	if err != nil {
		return nil, err
	}
	sheetDefault := unsetColWidth
	if props.DefaultColWidth != nil {
		sheetDefault = *props.DefaultColWidth
	}

	widths := make([]float64, 0, len(columns))
	for _, letter := range columns {
		w, err := f.GetColWidth(sheet, letter)
		if err != nil {
			return nil, err
		}
		if w == sheetDefault {
			w = 0
		}
		widths = append(widths, w)
	}
	return widths, nil
}

// placePhotos stretches each photo to its allocated slot and registers
// it on the sheet at the resolved anchor.
func placePhotos(f *excelize.File, sheet string, paths []string, cfg RegionConfig) error {
	baseCol, baseRow, err := excelize.CellNameToCoordinates(cfg.AnchorCell)
	if err != nil {
		return err
	}

	// Stored dimensions are converted per column and per row, then
	// summed; NewMetrics substitutes defaults for non-positive values.
	colWidths, err := regionColumnWidths(f, sheet, cfg.Columns)
	if err != nil {
		return err
	}
	rowHeights := make([]float64, 0, len(cfg.Rows))
	for _, row := range cfg.Rows {
		h, err := f.GetRowHeight(sheet, row)
		if err != nil {
			return err
		}
		rowHeights = append(rowHeights, h)
	}

	metrics := layout.NewMetrics(colWidths, rowHeights)
	if metrics.Empty() {
		return ErrEmptyRegion
	}

	allocations := layout.AllocateWidths(metrics.TotalWidth, len(paths))

	offset := 0
	for i, path := range paths {
		data, ext, err := imaging.RenderResized(path, allocations[i], metrics.TotalHeight)
		if err != nil {
			return err
		}

		col, within := layout.ResolveColumn(offset, metrics.ColumnWidths)
		anchor := layout.Anchor{
			Col:       baseCol - 1 + col,
			ColOffset: within,
			Row:       baseRow - 1,
			Width:     allocations[i],
			Height:    metrics.TotalHeight,
		}

		cell, err := excelize.CoordinatesToCellName(anchor.Col+1, anchor.Row+1)
		if err != nil {
			return err
		}
		err = f.AddPictureFromBytes(sheet, cell, &excelize.Picture{
			Extension: ext,
			File:      data,
			Format: &excelize.GraphicOptions{
				OffsetX:     anchor.ColOffset,
				OffsetY:     anchor.RowOffset,
				Positioning: "oneCell",
			},
		})
		if err != nil {
			return fmt.Errorf("adding picture at %s (%s): %w", cell, anchor, err)
		}

		offset += anchor.Width
	}
	return nil
}
