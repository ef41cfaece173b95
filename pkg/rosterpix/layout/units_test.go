package layout

import "testing"

func TestColumnWidthToPixels(t *testing.T) {
	// Expected values follow the piecewise formula: floor(w*12+0.5)
	// below one character unit, floor(w*7+5) from one unit up. The
	// default width 8.38 converts to 63px.
	tests := []struct {
		name  string
		width float64
		want  int
	}{
		{"absent width uses default", 0, 63},
		{"negative width uses default", -3.5, 63},
		{"narrow column", 0.5, 6},
		{"just below one", 0.99, 12},
		{"exactly one", 1, 12},
		{"typical column", 10.8, 80},
		{"wide column", 20, 145},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColumnWidthToPixels(tt.width); got != tt.want {
				t.Errorf("ColumnWidthToPixels(%v) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestRowHeightToPixels(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		want   float64
	}{
		{"absent height uses default", 0, 20},
		{"negative height uses default", -1, 20},
		{"default height", 15, 20},
		{"tall row", 30, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RowHeightToPixels(tt.height); got != tt.want {
				t.Errorf("RowHeightToPixels(%v) = %v, want %v", tt.height, got, tt.want)
			}
		})
	}
}

func TestPixelsToEMU(t *testing.T) {
	if got := PixelsToEMU(1); got != 9525 {
		t.Errorf("PixelsToEMU(1) = %d, want 9525", got)
	}
	if got := PixelsToEMU(160); got != 1524000 {
		t.Errorf("PixelsToEMU(160) = %d, want 1524000", got)
	}
	if got := PixelsToEMU(0); got != 0 {
		t.Errorf("PixelsToEMU(0) = %d, want 0", got)
	}
}
