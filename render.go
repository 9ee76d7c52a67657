package certgen

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Render composites text onto a copy of template and returns the copy.
// The shared template is never mutated, so the same decoded image can be
// reused across all jobs in a worker.
//
// The text is horizontally centered in box (integer centering, floor
// rounding). Vertical placement depends on anchor: AnchorBottom sits the
// text 5px above the box's bottom edge, AnchorCenter centers it. Both
// positions are corrected by the glyph bounding box's own origin so the
// visually perceived text occupies the intended rectangle regardless of
// font metric quirks.
//
// Any string renders, including the empty string, which yields an
// unmodified copy of the template.
func Render(template image.Image, box Box, text string, face font.Face, col color.Color, anchor string) image.Image {
	dc := gg.NewContextForImage(template)
	if text == "" {
		return dc.Image()
	}

	w, h, origin := textBounds(face, text)

	x := box.X + (box.W-w)/2
	var y int
	switch strings.ToLower(anchor) {
	case AnchorBottom:
		y = box.Y + box.H - h - bottomPadding
	default:
		y = box.Y + (box.H-h)/2
	}

	// The drawing dot is the baseline origin; shift it so the glyph box's
	// top-left lands on (x, y).
	dotX := x - origin.X.Floor()
	dotY := y - origin.Y.Floor()

	dc.SetFontFace(face)
	dc.SetColor(col)
	dc.DrawString(text, float64(dotX), float64(dotY))

	return dc.Image()
}
