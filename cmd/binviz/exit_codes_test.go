package main

// Notes:
// - exitCodeFor: we test all sentinel errors from binviz and config packages,
//   plus wrapped errors to verify errors.Is() chain works correctly.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	binviz "github.com/alnah/go-binviz"
	"github.com/alnah/go-binviz/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", binviz.ErrBrowserConnect, ExitBrowser},
		{"page create", binviz.ErrPageCreate, ExitBrowser},
		{"page load", binviz.ErrPageLoad, ExitBrowser},
		{"pdf generation", binviz.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("converting to PDF: %w", binviz.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read notes", ErrReadNotes, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"invalid number", ErrInvalidNumber, ExitUsage},
		{"invalid format", ErrInvalidFormat, ExitUsage},
		{"invalid timeout", ErrInvalidTime, ExitUsage},
		{"unsupported shell", ErrUnsupportedShell, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid field", config.ErrInvalidField, ExitUsage},
		{"invalid binary", binviz.ErrInvalidBinary, ExitUsage},
		{"negative value", binviz.ErrNegativeValue, ExitUsage},
		{"input too long", binviz.ErrInputTooLong, ExitUsage},
		{"invalid schema", binviz.ErrInvalidSchema, ExitUsage},
		{"empty worksheet", binviz.ErrEmptyWorksheet, ExitUsage},
		{"too many items", binviz.ErrTooManyItems, ExitUsage},
		{"invalid page size", binviz.ErrInvalidPageSize, ExitUsage},
		{"invalid orientation", binviz.ErrInvalidOrientation, ExitUsage},
		{"invalid margin", binviz.ErrInvalidMargin, ExitUsage},
		{"style not found", binviz.ErrStyleNotFound, ExitUsage},
		{"invalid asset path", binviz.ErrInvalidAssetPath, ExitUsage},
		{"wrapped config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},
		{"parse binary error", func() error { _, err := binviz.ParseBinary("12"); return err }(), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("something went wrong"), ExitGeneral},
		{"context canceled", context.Canceled, ExitGeneral},
		{"doctor found errors", ErrNotReady, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code >= 126 {
			t.Errorf("custom exit code %d must be below 126", code)
		}
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Hints attached to CLI errors
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantHint bool
	}{
		{"browser connect", binviz.ErrBrowserConnect, true},
		{"invalid binary", binviz.ErrInvalidBinary, true},
		{"style not found", fmt.Errorf("%w: %q", binviz.ErrStyleNotFound, "neon"), true},
		{"config not found", config.ErrConfigNotFound, true},
		{"deadline", context.DeadlineExceeded, true},
		{"write output", ErrWriteOutput, true},
		{"plain error", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := hintFor(tt.err, nil)
			if (got != "") != tt.wantHint {
				t.Errorf("hintFor(%v) = %q, wantHint %v", tt.err, got, tt.wantHint)
			}
		})
	}
}
