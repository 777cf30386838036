package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"simple name", "chalkboard", nil},
		{"hyphen", "high-contrast", nil},
		{"underscore", "print_only", nil},
		{"digits and case", "Style2", nil},
		{"empty", "", ErrInvalidAssetName},
		{"forward slash", "styles/default", ErrInvalidAssetName},
		{"backslash", "styles\\default", ErrInvalidAssetName},
		{"parent traversal", "..", ErrInvalidAssetName},
		{"dot in name", "default.min", ErrInvalidAssetName},
		{"null byte", "default\x00", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
