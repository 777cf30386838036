package main

import (
	"io"
	"regexp"

	flag "github.com/spf13/pflag"
)

// Output formats for explain and divide.
const (
	formatText = "text"
	formatHTML = "html"
	formatYAML = "yaml"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// renderFlags holds flags for explain and divide.
type renderFlags struct {
	common commonFlags
	format string
	width  int
	config string
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	format string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// worksheetFlags holds all flags for the worksheet command.
type worksheetFlags struct {
	common    commonFlags
	config    string
	output    string
	htmlOnly  bool
	style     string
	assetPath string
	title     string
	notes     string
	timeout   string
	binaries  []string
	decimals  []int32
	page      pageFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show resolved settings and timing")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting and
// prints usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// newConvertFlagSet registers to-binary and to-decimal flags.
func newConvertFlagSet(name string, w io.Writer) (*flag.FlagSet, *commonFlags) {
	fs := newFlagSet(name, w, func(w io.Writer) { printCommandUsage(w, name) })
	f := &commonFlags{}
	addCommonFlags(fs, f)
	return fs, f
}

// newRenderFlagSet registers explain and divide flags.
func newRenderFlagSet(name string, w io.Writer) (*flag.FlagSet, *renderFlags) {
	fs := newFlagSet(name, w, func(w io.Writer) { printCommandUsage(w, name) })
	f := &renderFlags{}
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.format, "format", "f", formatText, "output format: text, html, yaml")
	fs.IntVar(&f.width, "width", 0, "text wrap width (0 = terminal width)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	return fs, f
}

// newWorksheetFlagSet registers worksheet flags.
func newWorksheetFlagSet(w io.Writer) (*flag.FlagSet, *worksheetFlags) {
	fs := newFlagSet("worksheet", w, func(w io.Writer) { printCommandUsage(w, "worksheet") })
	f := &worksheetFlags{}
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: worksheet.pdf or worksheet.html)")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML only, skip PDF")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.title, "title", "", "worksheet title")
	fs.StringVar(&f.notes, "notes", "", "Markdown file shown under the title")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.StringArrayVar(&f.binaries, "binary", nil, "binary number to explain (repeatable)")
	fs.Int32SliceVar(&f.decimals, "decimal", nil, "decimal number to divide (repeatable)")
	return fs, f
}

// newDoctorFlagSet registers doctor flags.
func newDoctorFlagSet(w io.Writer) (*flag.FlagSet, *doctorFlags) {
	fs := newFlagSet("doctor", w, func(w io.Writer) { printCommandUsage(w, "doctor") })
	f := &doctorFlags{}
	fs.StringVarP(&f.format, "format", "f", formatText, "output format: text, yaml")
	return fs, f
}

// parseConvertFlags parses to-binary and to-decimal flags.
func parseConvertFlags(name string, args []string, w io.Writer) (*commonFlags, []string, error) {
	fs, f := newConvertFlagSet(name, w)

	flagArgs, numbers := splitNegativeNumbers(args)
	if err := fs.Parse(flagArgs); err != nil {
		return nil, nil, err
	}
	return f, append(fs.Args(), numbers...), nil
}

// parseRenderFlags parses explain and divide flags.
func parseRenderFlags(name string, args []string, w io.Writer) (*renderFlags, []string, error) {
	fs, f := newRenderFlagSet(name, w)

	flagArgs, numbers := splitNegativeNumbers(args)
	if err := fs.Parse(flagArgs); err != nil {
		return nil, nil, err
	}
	return f, append(fs.Args(), numbers...), nil
}

// parseWorksheetFlags parses worksheet command flags.
func parseWorksheetFlags(args []string, w io.Writer) (*worksheetFlags, []string, error) {
	fs, f := newWorksheetFlagSet(w)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string, w io.Writer) (*doctorFlags, []string, error) {
	fs, f := newDoctorFlagSet(w)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// negativeNumber matches arguments like "-12" that pflag would read as
// shorthand flags.
var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// splitNegativeNumbers moves negative numeric arguments out of the flag list.
func splitNegativeNumbers(args []string) (flagArgs, numbers []string) {
	for _, a := range args {
		if negativeNumber.MatchString(a) {
			numbers = append(numbers, a)
			continue
		}
		flagArgs = append(flagArgs, a)
	}
	return flagArgs, numbers
}
