// Package layout computes pixel and EMU geometry for placing images
// inside a merged cell region of a worksheet.
package layout

import "math"

// Fallback dimensions used when a worksheet stores no width/height for a
// column or row, matching the spreadsheet renderer defaults.
const (
	DefaultColumnWidth = 8.38 // character units
	DefaultRowHeight   = 15.0 // points
)

// EMUPerPixel is the number of EMUs (English Metric Units) per pixel at 96 DPI.
// 1 inch = 914400 EMU, 1 inch = 96 pixels at 96 DPI
// Therefore: 914400 / 96 = 9525 EMU per pixel
const EMUPerPixel = 9525

// PixelsToEMU converts pixels to EMU (English Metric Units) at 96 DPI.
// Drawing anchors in the OOXML format carry offsets and extents in EMU.
func PixelsToEMU(px int) int64 {
	return int64(px) * EMUPerPixel
}

// ColumnWidthToPixels converts a stored column width (character units) to
// pixels using the renderer's piecewise approximation. Absent or
// non-positive widths fall back to DefaultColumnWidth.
func ColumnWidthToPixels(width float64) int {
	if width <= 0 {
		width = DefaultColumnWidth
	}
	if width < 1 {
		return int(math.Floor(width*12 + 0.5))
	}
	return int(math.Floor(width*7 + 5))
}

// RowHeightToPixels converts a stored row height (points) to pixels.
// Absent or non-positive heights fall back to DefaultRowHeight.
// The result stays fractional; callers sum per-row values and truncate
// the total once, so multi-row regions do not undercount.
func RowHeightToPixels(height float64) float64 {
	if height <= 0 {
		height = DefaultRowHeight
	}
	return height * 4 / 3
}
