package certgen

import (
	"testing"
)

func newTestFitCache(t *testing.T) *FontCache {
	t.Helper()
	return NewFontCache(LoadFontSource(""))
}

func TestFit_SizeWithinRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		box     Box
		maxSize int
	}{
		{"short name wide box", "Al", Box{0, 0, 200, 100}, 60},
		{"long name wide box", "Alexandria Okonkwo-Martinez", Box{0, 0, 840, 199}, 72},
		{"long name tiny box", "Alexandria", Box{0, 0, 50, 50}, 72},
		{"single rune", "X", Box{0, 0, 400, 120}, 72},
		{"max below floor", "Someone", Box{0, 0, 400, 120}, 8},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cache := newTestFitCache(t)
			face, size := Fit(cache, tt.text, tt.box, tt.maxSize, FitOptions{})

			if face == nil {
				t.Fatal("Fit() returned nil face")
			}
			if size < DefaultMinFontSize {
				t.Errorf("size = %d, below floor %d", size, DefaultMinFontSize)
			}
			if tt.maxSize >= DefaultMinFontSize && size > tt.maxSize {
				t.Errorf("size = %d, above maximum %d", size, tt.maxSize)
			}
		})
	}
}

func TestFit_ShortTextFitsWithinPaddedBox(t *testing.T) {
	t.Parallel()

	cache := newTestFitCache(t)
	box := Box{X: 0, Y: 0, W: 200, H: 100}

	face, size := Fit(cache, "Al", box, 60, FitOptions{})

	if size > 60 {
		t.Fatalf("size = %d, want <= 60", size)
	}
	w, h, _ := textBounds(face, "Al")
	if w > box.W-DefaultFitPadding || h > box.H-DefaultFitPadding {
		t.Errorf("bounds %dx%d exceed padded box %dx%d",
			w, h, box.W-DefaultFitPadding, box.H-DefaultFitPadding)
	}
}

func TestFit_OverflowReturnsFloor(t *testing.T) {
	t.Parallel()

	cache := newTestFitCache(t)

	// "Alexandria" cannot fit a 50x50 box at any probed size; the floor
	// size is returned and rendering proceeds regardless.
	_, size := Fit(cache, "Alexandria", Box{0, 0, 50, 50}, 72, FitOptions{})
	if size != DefaultMinFontSize {
		t.Errorf("size = %d, want floor %d", size, DefaultMinFontSize)
	}
}

func TestFit_MonotonicAcrossContainingBoxes(t *testing.T) {
	t.Parallel()

	cache := newTestFitCache(t)
	text := "Margarethe"

	small := Box{X: 0, Y: 0, W: 180, H: 60}
	large := Box{X: 0, Y: 0, W: 600, H: 200}
	if !large.Contains(small) {
		t.Fatal("test boxes misconfigured: large must contain small")
	}

	_, smallSize := Fit(cache, text, small, 72, FitOptions{})
	_, largeSize := Fit(cache, text, large, 72, FitOptions{})

	if largeSize < smallSize {
		t.Errorf("larger box fitted %d, smaller box fitted %d; want >=",
			largeSize, smallSize)
	}
}

func TestFit_BothAxesConstrain(t *testing.T) {
	t.Parallel()

	cache := newTestFitCache(t)
	text := "Wide"

	// A box that is wide but very short: height, not width, must drive
	// the fitted size down.
	shortBox := Box{X: 0, Y: 0, W: 2000, H: 34}
	face, size := Fit(cache, text, shortBox, 72, FitOptions{})

	_, h, _ := textBounds(face, text)
	if h > shortBox.H-DefaultFitPadding && size != DefaultMinFontSize {
		// Overflow is legitimate only at the floor size.
		t.Errorf("height %d overflows %d at non-floor size %d",
			h, shortBox.H-DefaultFitPadding, size)
	}
	if size >= 72 {
		t.Errorf("size = %d; height constraint did not reduce it", size)
	}
}

func TestFit_CustomOptions(t *testing.T) {
	t.Parallel()

	cache := newTestFitCache(t)
	opts := FitOptions{MinSize: 20, Step: 4, Padding: 20}

	_, size := Fit(cache, "Impossibly Long Name For This Box", Box{0, 0, 60, 40}, 72, opts)
	if size != 20 {
		t.Errorf("size = %d, want custom floor 20", size)
	}
}

func TestFitter_MemoizesByLength(t *testing.T) {
	t.Parallel()

	cache := newTestFitCache(t)
	fitter := NewFitter(cache, Box{0, 0, 400, 120}, FitOptions{})

	_, first := fitter.Fit("Johannes", 72)
	if len(fitter.sizes) != 1 {
		t.Fatalf("memo has %d entries after one fit, want 1", len(fitter.sizes))
	}

	// Equal length, different content: memo hit, same size, no new entry.
	_, second := fitter.Fit("Wilhelms", 72)
	if second != first {
		t.Errorf("equal-length fit = %d, want memoized %d", second, first)
	}
	if len(fitter.sizes) != 1 {
		t.Errorf("memo has %d entries, want 1", len(fitter.sizes))
	}

	// Different max size is a distinct key even at equal length.
	fitter.Fit("Johannes", 40)
	if len(fitter.sizes) != 2 {
		t.Errorf("memo has %d entries, want 2", len(fitter.sizes))
	}
}

func TestFitter_ResultMatchesDirectFit(t *testing.T) {
	t.Parallel()

	cache := newTestFitCache(t)
	box := Box{X: 0, Y: 0, W: 300, H: 90}

	fitter := NewFitter(cache, box, FitOptions{})
	_, memoized := fitter.Fit("Beatrice", 72)
	_, direct := Fit(cache, "Beatrice", box, 72, FitOptions{})

	if memoized != direct {
		t.Errorf("Fitter.Fit = %d, Fit = %d; want equal", memoized, direct)
	}
}

func TestTextBounds_Empty(t *testing.T) {
	t.Parallel()

	cache := newTestFitCache(t)
	w, h, _ := textBounds(cache.Get(24), "")
	if w != 0 || h != 0 {
		t.Errorf("bounds of empty string = %dx%d, want 0x0", w, h)
	}
}
