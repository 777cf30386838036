package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	t.Run("writes content and cleans up", func(t *testing.T) {
		t.Parallel()

		path, cleanup, err := WriteTempFile("<html></html>", "html")
		if err != nil {
			t.Fatalf("WriteTempFile() error = %v", err)
		}
		if !strings.HasPrefix(filepath.Base(path), tempPrefix) || !strings.HasSuffix(path, ".html") {
			t.Errorf("path = %q, want %s*.html", path, tempPrefix)
		}
		got, err := os.ReadFile(path) // #nosec G304 -- test temp file
		if err != nil || string(got) != "<html></html>" {
			t.Errorf("content = %q, %v", got, err)
		}

		cleanup()
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("cleanup should remove the file")
		}
	})

	t.Run("rejects bad extension", func(t *testing.T) {
		t.Parallel()

		if _, _, err := WriteTempFile("x", "../html"); !errors.Is(err, ErrExtensionPathTraversal) {
			t.Errorf("error = %v, want ErrExtensionPathTraversal", err)
		}
	})
}

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ext     string
		wantErr error
	}{
		{"html", nil},
		{"pdf", nil},
		{"", ErrExtensionEmpty},
		{"a/b", ErrExtensionPathTraversal},
		{"a\\b", ErrExtensionPathTraversal},
		{"a\x00", ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			t.Parallel()

			if err := ValidateExtension(tt.ext); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.ext, err, tt.wantErr)
			}
		})
	}
}

func TestWriteOutput(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "week1", "worksheet.html")
		if err := WriteOutput(path, []byte("ok")); err != nil {
			t.Fatalf("WriteOutput() error = %v", err)
		}
		got, err := os.ReadFile(path) // #nosec G304 -- test temp file
		if err != nil || string(got) != "ok" {
			t.Errorf("content = %q, %v", got, err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		if err := WriteOutput("", nil); !errors.Is(err, ErrEmptyPath) {
			t.Errorf("error = %v, want ErrEmptyPath", err)
		}
	})

	t.Run("parent is a file", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(file, nil, 0o600); err != nil {
			t.Fatal(err)
		}
		if err := WriteOutput(filepath.Join(file, "out.pdf"), []byte("x")); err == nil {
			t.Error("expected error when the parent is a regular file")
		}
	})
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists(file) = false")
	}
	if FileExists(dir) {
		t.Error("FileExists(dir) = true, directories are not files")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true")
	}
}

func TestIsFilePathAndIsCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		wantPath bool
		wantCSS  bool
	}{
		{"chalkboard", false, false},
		{"./custom.css", true, false},
		{`C:\styles\custom.css`, true, false},
		{".card { color: red; }", false, true},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := IsFilePath(tt.input); got != tt.wantPath {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.wantPath)
			}
			if got := IsCSS(tt.input); got != tt.wantCSS {
				t.Errorf("IsCSS(%q) = %v, want %v", tt.input, got, tt.wantCSS)
			}
		})
	}
}
