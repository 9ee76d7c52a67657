package main

import (
	"errors"
	"os"

	certgen "github.com/alnah/go-certgen"
	"github.com/alnah/go-certgen/internal/config"
	"github.com/alnah/go-certgen/internal/records"
)

// Exit codes for the certgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // All certificates generated
	ExitGeneral = 1 // General/unexpected error, or per-job failures
	ExitUsage   = 2 // Invalid flags, config, or input data shape
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, ErrReadRecords) ||
		errors.Is(err, ErrCreateArchive) ||
		errors.Is(err, certgen.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, records.ErrEmptyInput) ||
		errors.Is(err, records.ErrNoDataRows) ||
		errors.Is(err, records.ErrFieldMissing) ||
		errors.Is(err, records.ErrParse) ||
		errors.Is(err, certgen.ErrEmptyTemplate) ||
		errors.Is(err, certgen.ErrTemplateDecode) ||
		errors.Is(err, certgen.ErrNoJobs) ||
		errors.Is(err, certgen.ErrInvalidAnchor) ||
		errors.Is(err, certgen.ErrInvalidQuality) ||
		errors.Is(err, certgen.ErrInvalidMaxFontSize) ||
		errors.Is(err, certgen.ErrInvalidBatchSize) ||
		errors.Is(err, certgen.ErrInvalidColor) ||
		errors.Is(err, ErrNoRecords) ||
		errors.Is(err, ErrMissingName) {
		return ExitUsage
	}

	return ExitGeneral
}
