package layout

import "testing"

func TestResolveColumn(t *testing.T) {
	widths := []int{80, 80, 80, 80}

	tests := []struct {
		name       string
		offset     int
		wantCol    int
		wantWithin int
	}{
		{"zero offset anchors first column", 0, 0, 0},
		{"inside first column", 79, 0, 79},
		{"first boundary", 80, 1, 0},
		{"mid region", 150, 1, 70},
		{"second image after even split", 160, 2, 0},
		{"right edge clamps to last column", 320, 3, 79},
		{"past the edge clamps too", 400, 3, 79},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, within := ResolveColumn(tt.offset, widths)
			if col != tt.wantCol || within != tt.wantWithin {
				t.Errorf("ResolveColumn(%d) = (%d, %d), want (%d, %d)",
					tt.offset, col, within, tt.wantCol, tt.wantWithin)
			}
		})
	}
}

func TestResolveColumnDegenerate(t *testing.T) {
	// A zero-width last column must not produce a negative offset.
	col, within := ResolveColumn(10, []int{0, 0})
	if col != 1 || within != 0 {
		t.Errorf("ResolveColumn(10, [0 0]) = (%d, %d), want (1, 0)", col, within)
	}

	col, within = ResolveColumn(5, nil)
	if col != 0 || within != 0 {
		t.Errorf("ResolveColumn(5, nil) = (%d, %d), want (0, 0)", col, within)
	}
}

func TestAnchorEMU(t *testing.T) {
	a := Anchor{Col: 3, ColOffset: 70, Row: 18, Width: 160, Height: 80}

	if got := a.ColOffsetEMU(); got != 70*9525 {
		t.Errorf("ColOffsetEMU = %d, want %d", got, 70*9525)
	}
	if got := a.RowOffsetEMU(); got != 0 {
		t.Errorf("RowOffsetEMU = %d, want 0", got)
	}
	w, h := a.ExtentEMU()
	if w != 160*9525 || h != 80*9525 {
		t.Errorf("ExtentEMU = (%d, %d), want (%d, %d)", w, h, 160*9525, 80*9525)
	}
}
