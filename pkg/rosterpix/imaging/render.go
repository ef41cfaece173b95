package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
)

// RenderResized decodes the image at path, stretches it to exactly
// width×height pixels and re-encodes it in the format implied by the
// file extension. The stretch deliberately ignores the source aspect
// ratio: the slot's shape is fixed by the merged region. It returns the
// encoded bytes plus the normalized extension for drawing registration.
func RenderResized(path string, width, height int) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", path, err)
	}

	scaled := resize.Resize(uint(width), uint(height), img, resize.Bilinear)

	ext := strings.ToLower(filepath.Ext(path))
	var buf bytes.Buffer
	switch ext {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, scaled, nil)
	case ".png":
		err = png.Encode(&buf, scaled)
	case ".bmp":
		err = bmp.Encode(&buf, scaled)
	default:
		return nil, "", fmt.Errorf("unsupported image extension %q", ext)
	}
	if err != nil {
		return nil, "", fmt.Errorf("encoding %s: %w", path, err)
	}
	return buf.Bytes(), ext, nil
}
