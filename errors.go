package binviz

import "errors"

// InvalidBinary is returned by BinaryToDecimal when its input cannot be parsed.
// Use ParseBinary to get a typed error instead.
const InvalidBinary = "Invalid Binary"

// Sentinel errors for library operations.
var (
	// Binary parsing errors. All of them wrap ErrInvalidBinary.
	ErrInvalidBinary  = errors.New("invalid binary")
	ErrEmptyBinary    = errors.New("binary digit string is empty")
	ErrInvalidDigit   = errors.New("binary digit must be 0 or 1")
	ErrBinaryOverflow = errors.New("binary value overflows int32")

	ErrNegativeValue = errors.New("value must not be negative")
	ErrInputTooLong  = errors.New("binary input exceeds maximum length")
	ErrInvalidSchema = errors.New("invalid class schema")

	// Worksheet validation errors.
	ErrEmptyWorksheet     = errors.New("worksheet has no binaries or decimals")
	ErrTooManyItems       = errors.New("worksheet has too many items")
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Worksheet rendering errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrNotesConversion  = errors.New("notes conversion failed")
	ErrBrowserConnect   = errors.New("failed to connect to browser")
	ErrPageCreate       = errors.New("failed to create browser page")
	ErrPageLoad         = errors.New("failed to load page")
	ErrPDFGeneration    = errors.New("PDF generation failed")
)
