package layout

import "math"

// AllocateWidths partitions totalWidth pixels into n contiguous slots of
// near-equal width. Slot boundaries are computed by rounding cumulative
// right edges and differencing, so the slots sum exactly to totalWidth
// with no gaps or overlaps; rounding each slot independently would let
// the error drift. Every slot is at least 1 pixel wide.
func AllocateWidths(totalWidth, n int) []int {
	if totalWidth <= 0 || n <= 0 {
		return nil
	}
	base := float64(totalWidth) / float64(n)
	widths := make([]int, 0, n)
	var cumulative float64
	previousRight := 0
	for i := 0; i < n; i++ {
		cumulative += base
		right := int(math.Round(cumulative))
		width := right - previousRight
		if width < 1 {
			width = 1
		}
		widths = append(widths, width)
		previousRight = right
	}
	return widths
}
