package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestSplitNegativeNumbers - Negative numbers are not shorthand flags
// ---------------------------------------------------------------------------

func TestSplitNegativeNumbers(t *testing.T) {
	t.Parallel()

	flagArgs, numbers := splitNegativeNumbers([]string{"-v", "-12", "--format", "yaml", "-x1"})

	if got := strings.Join(flagArgs, " "); got != "-v --format yaml -x1" {
		t.Errorf("flagArgs = %q", got)
	}
	if got := strings.Join(numbers, " "); got != "-12" {
		t.Errorf("numbers = %q", got)
	}
}

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	f, positional, err := parseConvertFlags("to-binary", []string{"-v", "-7"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.verbose {
		t.Error("verbose should be set")
	}
	if len(positional) != 1 || positional[0] != "-7" {
		t.Errorf("positional = %v, want [-7]", positional)
	}

	if _, _, err := parseConvertFlags("to-binary", []string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("help error = %v, want flag.ErrHelp", err)
	}
}

func TestParseRenderFlags(t *testing.T) {
	t.Parallel()

	f, positional, err := parseRenderFlags("explain", []string{"1010", "-f", "html", "--width", "40", "-c", "class"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.format != formatHTML || f.width != 40 || f.config != "class" {
		t.Errorf("flags = %+v", f)
	}
	if len(positional) != 1 || positional[0] != "1010" {
		t.Errorf("positional = %v", positional)
	}

	f, _, err = parseRenderFlags("divide", []string{"5"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.format != formatText {
		t.Errorf("default format = %q, want %q", f.format, formatText)
	}
}

func TestParseWorksheetFlags(t *testing.T) {
	t.Parallel()

	args := []string{
		"--binary", "101", "--binary", "11",
		"--decimal", "5", "--decimal", "7,9",
		"--html-only", "-o", "out.html", "-p", "a4", "--margin", "1",
		"--title", "Quiz", "--style", "chalkboard", "-t", "10s",
	}
	f, positional, err := parseWorksheetFlags(args, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(positional) != 0 {
		t.Errorf("positional = %v, want none", positional)
	}
	if got := strings.Join(f.binaries, ","); got != "101,11" {
		t.Errorf("binaries = %q", got)
	}
	if len(f.decimals) != 3 || f.decimals[0] != 5 || f.decimals[2] != 9 {
		t.Errorf("decimals = %v, want [5 7 9]", f.decimals)
	}
	if !f.htmlOnly || f.output != "out.html" || f.page.size != "a4" || f.page.margin != 1 {
		t.Errorf("flags = %+v", f)
	}
	if f.title != "Quiz" || f.style != "chalkboard" || f.timeout != "10s" {
		t.Errorf("flags = %+v", f)
	}
}
