package layout

// Metrics holds the pixel geometry of a merged cell region. Conversions
// are applied per column and per row before summing; the width formula is
// non-linear in its input, so converting a summed width would diverge.
type Metrics struct {
	// ColumnWidths is the pixel width of each column in the region, in order.
	ColumnWidths []int
	// TotalWidth is the sum of ColumnWidths.
	TotalWidth int
	// TotalHeight is the truncated sum of the per-row pixel heights.
	TotalHeight int
}

// NewMetrics computes region geometry from the stored column widths
// (character units) and row heights (points), in region order. Zero or
// negative stored values take the renderer defaults.
func NewMetrics(columnWidths, rowHeights []float64) Metrics {
	m := Metrics{ColumnWidths: make([]int, 0, len(columnWidths))}
	for _, w := range columnWidths {
		px := ColumnWidthToPixels(w)
		m.ColumnWidths = append(m.ColumnWidths, px)
		m.TotalWidth += px
	}
	var height float64
	for _, h := range rowHeights {
		height += RowHeightToPixels(h)
	}
	m.TotalHeight = int(height)
	return m
}

// Empty reports whether the region has no drawable area.
func (m Metrics) Empty() bool {
	return m.TotalWidth <= 0 || m.TotalHeight <= 0
}
