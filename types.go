package certgen

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Vertical anchor constants.
const (
	AnchorCenter = "center"
	AnchorBottom = "bottom"
)

// Rendering defaults, matching the batch generator's tuning.
const (
	DefaultMaxFontSize = 72
	DefaultJPEGQuality = 92
	DefaultBatchSize   = 200
	DefaultAnchor      = AnchorCenter

	// bottomPadding keeps bottom-anchored text off the box edge.
	bottomPadding = 5
)

// Box is a placement rectangle in template pixel coordinates.
// A box partially or fully outside the template bounds is not an error;
// it produces clipped or invisible text.
type Box struct {
	X int
	Y int
	W int
	H int
}

// Contains reports whether b fully encloses other.
func (b Box) Contains(other Box) bool {
	return b.X <= other.X && b.Y <= other.Y &&
		b.X+b.W >= other.X+other.W && b.Y+b.H >= other.Y+other.H
}

// Job is one immutable unit of work: render Text and deliver the encoded
// image to Dest via the engine's Sink. MaxFontSize of 0 means use the
// engine's configured ceiling.
type Job struct {
	Text        string
	Dest        string
	MaxFontSize int
}

// Result holds the outcome of a single job. Exactly one Result is
// produced per submitted Job. A cancelled job carries ErrCancelled and is
// counted separately from failures.
type Result struct {
	Text string
	Dest string
	Err  error
}

// Cancelled reports whether the job was aborted by context cancellation
// rather than failing.
func (r Result) Cancelled() bool {
	return errors.Is(r.Err, ErrCancelled)
}

// Config holds the values the engine consumes for every render.
type Config struct {
	Template    []byte      // raw template image bytes (required)
	Box         Box         // placement rectangle
	FontPath    string      // font resource ("" = embedded fallback)
	MaxFontSize int         // pixel ceiling (0 = DefaultMaxFontSize)
	Color       color.Color // text color (nil = black)
	Anchor      string      // "center" or "bottom" ("" = center)
	Workers     int         // worker count (0 = auto from GOMAXPROCS)
	BatchSize   int         // jobs per batch (0 = DefaultBatchSize)
	Quality     int         // JPEG quality 1-100 (0 = DefaultJPEGQuality)
}

// withDefaults returns a copy of c with zero values filled in.
func (c Config) withDefaults() Config {
	if c.MaxFontSize == 0 {
		c.MaxFontSize = DefaultMaxFontSize
	}
	if c.Color == nil {
		c.Color = color.Black
	}
	if c.Anchor == "" {
		c.Anchor = DefaultAnchor
	}
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.Quality == 0 {
		c.Quality = DefaultJPEGQuality
	}
	return c
}

// validate checks config values after defaults are applied.
func (c Config) validate() error {
	if len(c.Template) == 0 {
		return ErrEmptyTemplate
	}
	if c.MaxFontSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxFontSize, c.MaxFontSize)
	}
	if !isValidAnchor(c.Anchor) {
		return fmt.Errorf("%w: %q (must be center or bottom)", ErrInvalidAnchor, c.Anchor)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidBatchSize, c.BatchSize)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: %d (must be 1-100)", ErrInvalidQuality, c.Quality)
	}
	return nil
}

// isValidAnchor checks if anchor is a known mode (case-insensitive).
func isValidAnchor(anchor string) bool {
	switch strings.ToLower(anchor) {
	case AnchorCenter, AnchorBottom:
		return true
	}
	return false
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB" into an opaque color.
func ParseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return nil, fmt.Errorf("%w: %q (want #RRGGBB)", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{
		R: uint8(v >> 16), // #nosec G115 -- masked below 256
		G: uint8(v >> 8 & 0xff),
		B: uint8(v & 0xff),
		A: 0xff,
	}, nil
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithSink sets the output destination for encoded images.
func WithSink(s Sink) EngineOption {
	return func(e *Engine) {
		e.sink = s
	}
}

// WithProgress sets a callback invoked as batches complete. The callback
// runs on the aggregation goroutine; it must not block for long.
func WithProgress(fn ProgressFunc) EngineOption {
	return func(e *Engine) {
		e.progress = fn
	}
}

// WithFitOptions overrides the auto-fit tuning (floor size, step, padding).
func WithFitOptions(opts FitOptions) EngineOption {
	return func(e *Engine) {
		e.fit = opts.withDefaults()
	}
}
