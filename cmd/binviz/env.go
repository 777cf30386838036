package main

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	"golang.org/x/term"

	binviz "github.com/alnah/go-binviz"
)

// worksheetBuilder is the part of *binviz.Builder the CLI uses.
type worksheetBuilder interface {
	Build(ctx context.Context, ws binviz.Worksheet) (*binviz.WorksheetResult, error)
	Close() error
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer

	// Environ returns variables in os.Environ form.
	Environ func() []string

	// TermWidth returns 0 when stdout is not a terminal.
	TermWidth func() int

	// NewBuilder creates the worksheet builder.
	NewBuilder func(opts ...binviz.BuilderOption) (worksheetBuilder, error)

	// FindBrowser locates Chrome for doctor; BrowserVersion asks it for its version.
	FindBrowser    func() (string, bool)
	BrowserVersion func(path string) (string, error)

	Context func() context.Context
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:       time.Now,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Environ:   os.Environ,
		TermWidth: stdoutWidth,
		NewBuilder: func(opts ...binviz.BuilderOption) (worksheetBuilder, error) {
			return binviz.NewBuilder(opts...)
		},
		FindBrowser:    launcher.LookPath,
		BrowserVersion: browserVersion,
		Context:        context.Background,
	}
}

// envMap converts os.Environ output to a map.
func (e *Environment) envMap() map[string]string {
	vars := make(map[string]string)
	for _, kv := range e.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok {
			vars[name] = value
		}
	}
	return vars
}

// stdoutWidth returns the terminal width of stdout, or 0 if unknown.
func stdoutWidth() int {
	fd := int(os.Stdout.Fd()) // #nosec G115 -- file descriptors fit in int
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// browserVersion runs "chrome --version".
func browserVersion(path string) (string, error) {
	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- path comes from launcher lookup or ROD_BROWSER_BIN
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
