package certgen

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyTemplate  = errors.New("template bytes cannot be empty")
	ErrTemplateDecode = errors.New("failed to decode template image")
	ErrNoJobs         = errors.New("no render jobs submitted")
	ErrNoSink         = errors.New("no output sink configured")
	ErrEncodeImage    = errors.New("failed to encode output image")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrCancelled      = errors.New("render cancelled")

	// Configuration validation errors.
	ErrInvalidAnchor      = errors.New("invalid vertical anchor")
	ErrInvalidQuality     = errors.New("invalid JPEG quality")
	ErrInvalidMaxFontSize = errors.New("invalid maximum font size")
	ErrInvalidBatchSize   = errors.New("invalid batch size")
	ErrInvalidColor       = errors.New("invalid font color")

	// Sink errors.
	ErrSinkClosed = errors.New("sink is closed")
)
