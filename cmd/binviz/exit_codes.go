package main

import (
	"errors"
	"os"

	binviz "github.com/alnah/go-binviz"
	"github.com/alnah/go-binviz/internal/config"
)

// Exit codes for binviz CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful command
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, arguments, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// CLI sentinel errors.
var (
	ErrUsage         = errors.New("invalid usage")
	ErrInvalidNumber = errors.New("invalid decimal number")
	ErrInvalidFormat = errors.New("invalid output format")
	ErrInvalidTime   = errors.New("invalid timeout")
	ErrReadNotes     = errors.New("failed to read notes")
	ErrWriteOutput   = errors.New("failed to write output")
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, binviz.ErrBrowserConnect) ||
		errors.Is(err, binviz.ErrPageCreate) ||
		errors.Is(err, binviz.ErrPageLoad) ||
		errors.Is(err, binviz.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadNotes) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidTime) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, binviz.ErrInvalidBinary) ||
		errors.Is(err, binviz.ErrNegativeValue) ||
		errors.Is(err, binviz.ErrInputTooLong) ||
		errors.Is(err, binviz.ErrInvalidSchema) ||
		errors.Is(err, binviz.ErrEmptyWorksheet) ||
		errors.Is(err, binviz.ErrTooManyItems) ||
		errors.Is(err, binviz.ErrInvalidPageSize) ||
		errors.Is(err, binviz.ErrInvalidOrientation) ||
		errors.Is(err, binviz.ErrInvalidMargin) ||
		errors.Is(err, binviz.ErrStyleNotFound) ||
		errors.Is(err, binviz.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
