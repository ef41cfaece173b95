package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestImage(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 20), G: uint8(y * 20), A: 255})
		}
	}

	var buf bytes.Buffer
	var err error
	switch filepath.Ext(name) {
	case ".png":
		err = png.Encode(&buf, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, img, nil)
	default:
		t.Fatalf("unexpected test extension in %s", name)
	}
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderResized(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		file       string
		width      int
		height     int
		wantExt    string
		wantFormat string
	}{
		{"png stretch", "photo.png", 160, 60, ".png", "png"},
		{"jpg normalizes to jpeg encoder", "photo.jpg", 10, 40, ".jpg", "jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := writeTestImage(t, dir, tt.file, 8, 8)

			data, ext, err := RenderResized(src, tt.width, tt.height)
			if err != nil {
				t.Fatalf("RenderResized failed: %v", err)
			}
			if ext != tt.wantExt {
				t.Errorf("ext = %q, want %q", ext, tt.wantExt)
			}

			img, format, err := image.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decoding output: %v", err)
			}
			if format != tt.wantFormat {
				t.Errorf("format = %q, want %q", format, tt.wantFormat)
			}
			b := img.Bounds()
			if b.Dx() != tt.width || b.Dy() != tt.height {
				t.Errorf("bounds = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.width, tt.height)
			}
		})
	}
}

func TestRenderResizedErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := RenderResized(filepath.Join(dir, "missing.png"), 10, 10); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := RenderResized(bad, 10, 10); err == nil {
		t.Error("expected error for undecodable file")
	}
}
