package certgen

import (
	"os"
	"runtime"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontDPI is the rendering resolution; at 72 DPI one point equals one
// pixel, so face sizes are pixel sizes.
const fontDPI = 72

// platformFontCandidates returns the ordered list of default font paths
// tried when the requested font resource cannot be loaded.
func platformFontCandidates() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			"C:/Windows/Fonts/arial.ttf",
			"C:/Windows/Fonts/segoeui.ttf",
			"C:/Windows/Fonts/calibri.ttf",
		}
	case "darwin":
		return []string{
			"/System/Library/Fonts/Supplemental/Arial.ttf",
			"/Library/Fonts/Arial.ttf",
			"/System/Library/Fonts/SFNS.ttf",
		}
	default:
		return []string{
			"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
			"/usr/share/fonts/liberation-sans/LiberationSans-Bold.ttf",
			"/usr/share/fonts/noto/NotoSans-Bold.ttf",
			"/usr/share/fonts/google-noto/NotoSans-Bold.ttf",
		}
	}
}

// FontSource is a parsed font resource from which faces at specific pixel
// sizes are derived. The zero value is not usable; construct with
// LoadFontSource.
type FontSource struct {
	parsed *opentype.Font
	path   string // resolved source path; "" for the embedded fallback
}

// LoadFontSource resolves a font resource through an ordered candidate
// chain: the requested path, then platform default fonts, then the
// embedded Go Regular face. It never fails; the worst case is the
// embedded font.
func LoadFontSource(path string) *FontSource {
	candidates := make([]string, 0, 8)
	if path != "" {
		candidates = append(candidates, path)
	}
	candidates = append(candidates, platformFontCandidates()...)

	for _, candidate := range candidates {
		parsed, ok := tryLoadFont(candidate)
		if ok {
			return &FontSource{parsed: parsed, path: candidate}
		}
	}

	// Embedded Go Regular ships with the binary and always parses.
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		// Leaves parsed nil; Face falls through to the bitmap fallback.
		return &FontSource{}
	}
	return &FontSource{parsed: parsed}
}

// tryLoadFont attempts to read and parse one candidate path.
func tryLoadFont(path string) (*opentype.Font, bool) {
	data, err := os.ReadFile(path) // #nosec G304 -- font path is user-provided
	if err != nil {
		return nil, false
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, false
	}
	return parsed, true
}

// Path returns the resolved font file path, or "" if the source fell back
// to the embedded font.
func (s *FontSource) Path() string {
	return s.path
}

// Embedded reports whether the source resolved to the embedded fallback
// instead of a font file.
func (s *FontSource) Embedded() bool {
	return s.path == ""
}

// Face creates a font.Face at the given pixel size. If face creation
// fails, a minimal fixed-size bitmap face is returned; its size does not
// track the request, but it always renders. Never returns nil.
func (s *FontSource) Face(size int) font.Face {
	if s.parsed == nil || size < 1 {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(s.parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// FontCache memoizes faces per pixel size for one worker's lifetime.
// It is not safe for concurrent use; each worker owns its own cache.
type FontCache struct {
	src   *FontSource
	faces map[int]font.Face
}

// NewFontCache creates a cache over the given source.
func NewFontCache(src *FontSource) *FontCache {
	return &FontCache{
		src:   src,
		faces: make(map[int]font.Face),
	}
}

// Get returns the face for a pixel size, loading it on first use.
// Subsequent calls with the same size return the identical face instance.
// Never fails.
func (c *FontCache) Get(size int) font.Face {
	if face, ok := c.faces[size]; ok {
		return face
	}
	face := c.src.Face(size)
	c.faces[size] = face
	return face
}

// Warm pre-populates the cache for sizes lo..hi inclusive, stepping by
// step, to avoid first-use latency on the hot path.
func (c *FontCache) Warm(lo, hi, step int) {
	if step < 1 {
		step = 1
	}
	for size := lo; size <= hi; size += step {
		c.Get(size)
	}
}

// Len returns the number of distinct sizes loaded so far.
func (c *FontCache) Len() int {
	return len(c.faces)
}
