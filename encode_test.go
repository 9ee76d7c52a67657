package certgen

import (
	"bytes"
	"image"
	"testing"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		dest       string
		wantFormat string
	}{
		{"jpg extension", "cert.jpg", "jpeg"},
		{"jpeg extension", "cert.jpeg", "jpeg"},
		{"uppercase png", "CERT.PNG", "png"},
		{"png extension", "cert.png", "png"},
		{"no extension defaults to jpeg", "cert", "jpeg"},
		{"unknown extension defaults to jpeg", "cert.webp", "jpeg"},
	}

	src := newWhiteTemplate(40, 30)

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := Encode(src, tt.dest, DefaultJPEGQuality)
			if err != nil {
				t.Fatal(err)
			}

			img, format, err := image.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("output does not decode: %v", err)
			}
			if format != tt.wantFormat {
				t.Errorf("format = %q, want %q", format, tt.wantFormat)
			}
			if img.Bounds() != src.Bounds() {
				t.Errorf("bounds = %v, want %v", img.Bounds(), src.Bounds())
			}
		})
	}
}

func TestEncode_QualityAffectsSize(t *testing.T) {
	t.Parallel()

	// A noisy image compresses differently at different qualities.
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for i := range src.Pix {
		src.Pix[i] = uint8(i*31 + i/7) // #nosec G115 -- deliberate wraparound
	}

	low, err := Encode(src, "a.jpg", 10)
	if err != nil {
		t.Fatal(err)
	}
	high, err := Encode(src, "a.jpg", 95)
	if err != nil {
		t.Fatal(err)
	}

	if len(high) <= len(low) {
		t.Errorf("quality 95 output (%d bytes) not larger than quality 10 (%d bytes)",
			len(high), len(low))
	}
}
