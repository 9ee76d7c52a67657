package certgen

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"
)

// Encode serializes img in the format implied by the destination
// extension: ".png" produces PNG, everything else JPEG at the given
// quality.
func Encode(img image.Image, dest string, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch strings.ToLower(filepath.Ext(dest)) {
	case ".png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncodeImage, err)
		}
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncodeImage, err)
		}
	}

	return buf.Bytes(), nil
}
