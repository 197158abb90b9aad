package main

import (
	"errors"
	"os"

	md2htmldoc "github.com/alnah/go-md2htmldoc"
	"github.com/alnah/go-md2htmldoc/internal/config"
	"github.com/alnah/go-md2htmldoc/internal/textenc"
)

// Exit codes for md2htmldoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
// I/O is checked first: an unreadable asset may also carry ErrStyleNotFound.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case isIOError(err):
		return ExitIO
	case isUsageError(err):
		return ExitUsage
	default:
		return ExitGeneral
	}
}

// isIOError reports whether err comes from reading or writing a file.
func isIOError(err error) bool {
	return errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, md2htmldoc.ErrReadAsset)
}

// isUsageError reports whether err should be answered with the usage text.
func isUsageError(err error) bool {
	return errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrWatchRequiresFiles) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, textenc.ErrUnknownEncoding) ||
		errors.Is(err, md2htmldoc.ErrUnknownTheme) ||
		errors.Is(err, md2htmldoc.ErrStyleNotFound) ||
		errors.Is(err, md2htmldoc.ErrInvalidAssetPath)
}
