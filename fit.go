package certgen

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Auto-fit defaults.
const (
	DefaultMinFontSize = 10
	DefaultFitStep     = 2
	DefaultFitPadding  = 10
)

// FitOptions tunes the auto-fit search.
type FitOptions struct {
	MinSize int // floor size; never returns smaller (0 = DefaultMinFontSize)
	Step    int // size decrement per iteration (0 = DefaultFitStep)
	Padding int // pixels reserved inside the box on each axis (0 = DefaultFitPadding)
}

// withDefaults returns a copy of o with zero values filled in.
func (o FitOptions) withDefaults() FitOptions {
	if o.MinSize == 0 {
		o.MinSize = DefaultMinFontSize
	}
	if o.Step == 0 {
		o.Step = DefaultFitStep
	}
	if o.Padding == 0 {
		o.Padding = DefaultFitPadding
	}
	return o
}

// textBounds measures the rendered bounding box of text at the given
// face. The returned min point is the glyph box origin relative to the
// drawing dot; it is non-zero for fonts with leading whitespace or
// overhang, and draw positions must be corrected by it.
func textBounds(face font.Face, text string) (w, h int, min fixed.Point26_6) {
	bounds, _ := font.BoundString(face, text)
	w = (bounds.Max.X - bounds.Min.X).Ceil()
	h = (bounds.Max.Y - bounds.Min.Y).Ceil()
	return w, h, bounds.Min
}

// Fit finds the largest font size in [opts.MinSize, maxSize] whose
// rendered bounding box fits inside box minus padding, on both axes.
// Sizes are probed from maxSize downward in opts.Step decrements. If no
// size fits, the floor size is returned regardless of overflow; Fit never
// fails.
func Fit(cache *FontCache, text string, box Box, maxSize int, opts FitOptions) (font.Face, int) {
	opts = opts.withDefaults()

	for size := maxSize; size >= opts.MinSize; size -= opts.Step {
		face := cache.Get(size)
		w, h, _ := textBounds(face, text)
		if w <= box.W-opts.Padding && h <= box.H-opts.Padding {
			return face, size
		}
	}

	return cache.Get(opts.MinSize), opts.MinSize
}

// fitKey caches fitted sizes by text length rather than content: most
// alphabets have comparable per-character width, so equal-length strings
// fit at (nearly) the same size. This trades a small chance of
// suboptimal sizing for skipping repeated measurement.
type fitKey struct {
	length  int
	maxSize int
}

// Fitter wraps a FontCache with a fitted-size memo for batch workloads.
// Like FontCache, it is single-worker state: not safe for concurrent use.
type Fitter struct {
	cache *FontCache
	box   Box
	opts  FitOptions
	sizes map[fitKey]int
}

// NewFitter creates a Fitter for one placement box.
func NewFitter(cache *FontCache, box Box, opts FitOptions) *Fitter {
	return &Fitter{
		cache: cache,
		box:   box,
		opts:  opts.withDefaults(),
		sizes: make(map[fitKey]int),
	}
}

// Fit returns the face and size for text, consulting the length memo
// before measuring.
func (f *Fitter) Fit(text string, maxSize int) (font.Face, int) {
	key := fitKey{length: len(text), maxSize: maxSize}
	if size, ok := f.sizes[key]; ok {
		return f.cache.Get(size), size
	}

	face, size := Fit(f.cache, text, f.box, maxSize, f.opts)
	f.sizes[key] = size
	return face, size
}
