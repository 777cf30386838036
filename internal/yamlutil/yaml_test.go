package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Value  int32    `yaml:"value"`
	Binary string   `yaml:"binary"`
	Steps  []string `yaml:"steps"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    sample
		wantErr error
		anyErr  bool
	}{
		{"valid", "value: 6\nbinary: \"110\"\nsteps: [a, b]\n", sample{Value: 6, Binary: "110", Steps: []string{"a", "b"}}, nil, false},
		{"empty", "", sample{}, ErrNilData, false},
		{"unknown field", "value: 6\nextra: 1\n", sample{}, nil, true},
		{"type mismatch", "value: six\n", sample{}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got sample
			err := Decode([]byte(tt.data), &got)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
				}
			case tt.anyErr:
				if err == nil {
					t.Error("Decode() expected error")
				}
			default:
				if err != nil {
					t.Fatalf("Decode() error = %v", err)
				}
				if got.Value != tt.want.Value || got.Binary != tt.want.Binary || strings.Join(got.Steps, ",") != strings.Join(tt.want.Steps, ",") {
					t.Errorf("Decode() = %+v, want %+v", got, tt.want)
				}
			}
		})
	}
}

func TestDecode_NilDestination(t *testing.T) {
	t.Parallel()

	if err := Decode([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("Decode() error = %v, want ErrNilDestination", err)
	}
}

func TestDecode_TooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("binary: \"" + strings.Repeat("1", MaxInputSize) + "\"")
	var got sample
	if err := Decode(data, &got); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Decode() error = %v, want ErrInputTooLarge", err)
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	out, err := Encode(sample{Value: 6, Binary: "110", Steps: []string{"6 / 2"}})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got := string(out)
	for _, want := range []string{"value: 6\n", "binary: \"110\"\n", "steps:\n  - 6 / 2\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("Encode() = %q, want it to contain %q", got, want)
		}
	}
}
