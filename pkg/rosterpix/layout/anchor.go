package layout

import "fmt"

// Anchor locates an image's top-left corner relative to the worksheet
// grid, plus its rendered extent. Col and Row are 0-based worksheet
// indices; ColOffset and RowOffset are pixel offsets within that cell.
type Anchor struct {
	Col       int
	ColOffset int
	Row       int
	RowOffset int
	Width     int
	Height    int
}

// ColOffsetEMU returns the intra-column offset in EMU.
func (a Anchor) ColOffsetEMU() int64 {
	return PixelsToEMU(a.ColOffset)
}

// RowOffsetEMU returns the intra-row offset in EMU.
func (a Anchor) RowOffsetEMU() int64 {
	return PixelsToEMU(a.RowOffset)
}

// ExtentEMU returns the rendered width and height in EMU.
func (a Anchor) ExtentEMU() (int64, int64) {
	return PixelsToEMU(a.Width), PixelsToEMU(a.Height)
}

// String renders the anchor in the drawing format's native units.
func (a Anchor) String() string {
	w, h := a.ExtentEMU()
	return fmt.Sprintf("col=%d colOff=%d row=%d rowOff=%d ext=%dx%d EMU",
		a.Col, a.ColOffsetEMU(), a.Row, a.RowOffsetEMU(), w, h)
}

// ResolveColumn locates the column containing a horizontal pixel offset
// measured from the region's left edge. It walks the per-column widths,
// consuming the offset until the remainder fits inside the current
// column, and returns that column's index within the region plus the
// remainder as the intra-column offset.
//
// An offset at or past the region's right edge (possible only through
// rounding edge cases) clamps to the last column just inside its width,
// so the anchor always lands within the region.
func ResolveColumn(offset int, widths []int) (col, within int) {
	if len(widths) == 0 {
		return 0, 0
	}
	within = offset
	for _, w := range widths {
		if within < w {
			return col, within
		}
		within -= w
		col++
	}
	col = len(widths) - 1
	within = widths[col] - 1
	if within < 0 {
		within = 0
	}
	return col, within
}
