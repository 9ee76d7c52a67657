package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// boxCoordSentinel detects whether a box flag was explicitly set.
// 0 is a valid coordinate, so an out-of-range sentinel is used instead.
const boxCoordSentinel = -1

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// boxFlags holds the placement rectangle flags.
type boxFlags struct {
	x int
	y int
	w int
	h int
}

// fontFlags holds font-related flags.
type fontFlags struct {
	path    string
	maxSize int
	color   string
}

// renderFlags holds output appearance flags.
type renderFlags struct {
	anchor  string
	quality int
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common    commonFlags
	template  string
	data      string
	field     string
	limit     int
	outputDir string
	zipPath   string
	workers   int
	batchSize int
	box       boxFlags
	font      fontFlags
	render    renderFlags
}

// previewFlags holds all flags for the preview command.
type previewFlags struct {
	common   commonFlags
	template string
	name     string
	out      string
	box      boxFlags
	font     fontFlags
	render   renderFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress and timing")
}

// addBoxFlags adds placement box flags to a FlagSet.
func addBoxFlags(fs *flag.FlagSet, f *boxFlags) {
	fs.IntVar(&f.x, "box-x", boxCoordSentinel, "placement box X (template pixels)")
	fs.IntVar(&f.y, "box-y", boxCoordSentinel, "placement box Y (template pixels)")
	fs.IntVar(&f.w, "box-w", boxCoordSentinel, "placement box width")
	fs.IntVar(&f.h, "box-h", boxCoordSentinel, "placement box height")
}

// addFontFlags adds font flags to a FlagSet.
func addFontFlags(fs *flag.FlagSet, f *fontFlags) {
	fs.StringVar(&f.path, "font", "", "font file path (TTF/OTF)")
	fs.IntVar(&f.maxSize, "font-size", 0, "maximum font size in pixels")
	fs.StringVar(&f.color, "font-color", "", "font color as hex (#RRGGBB)")
}

// addRenderFlags adds output appearance flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.anchor, "anchor", "", "vertical anchor: center, bottom")
	fs.IntVar(&f.quality, "quality", 0, "JPEG quality (1-100)")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	fs.StringVarP(&f.template, "template", "t", "", "template image file")
	fs.StringVar(&f.data, "csv", "", "CSV file with one record per row")
	fs.StringVar(&f.field, "field", "", "CSV column holding the text to render")
	fs.IntVar(&f.limit, "limit", 0, "process at most n records (0 = all)")
	fs.StringVarP(&f.outputDir, "output", "o", "", "output directory")
	fs.StringVar(&f.zipPath, "zip", "", "bundle outputs into a ZIP archive")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.IntVarP(&f.batchSize, "batch-size", "b", 0, "jobs per batch (0 = default)")

	addCommonFlags(fs, &f.common)
	addBoxFlags(fs, &f.box)
	addFontFlags(fs, &f.font)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printGenerateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parsePreviewFlags parses preview command flags and returns positional args.
func parsePreviewFlags(args []string) (*previewFlags, []string, error) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	f := &previewFlags{}

	fs.StringVarP(&f.template, "template", "t", "", "template image file")
	fs.StringVarP(&f.name, "name", "n", "", "name to render")
	fs.StringVarP(&f.out, "out", "o", "", "output image path (default: preview.jpg)")

	addCommonFlags(fs, &f.common)
	addBoxFlags(fs, &f.box)
	addFontFlags(fs, &f.font)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printPreviewUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
