// Package rosterpix maintains personnel workbooks: provisioning
// per-person sheets from a roster, tiling photos across a merged cell
// region and pruning leftover sheets.
package rosterpix

// RegionConfig describes the merged cell block that receives photos.
// Passing it explicitly keeps the tiler reusable for differently shaped
// regions.
type RegionConfig struct {
	// AnchorCell is the top-left cell of the merged region, e.g. "B19".
	AnchorCell string
	// Columns lists the column letters the region spans, in order.
	Columns []string
	// Rows lists the row numbers the region spans, in order.
	Rows []int
}

// DefaultRegionConfig returns the photo region of the personnel workbook
// template: anchored at B19, spanning columns B–E and rows 19–21.
func DefaultRegionConfig() RegionConfig {
	return RegionConfig{
		AnchorCell: "B19",
		Columns:    []string{"B", "C", "D", "E"},
		Rows:       []int{19, 20, 21},
	}
}
