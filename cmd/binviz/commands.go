package main

import (
	"errors"
	"fmt"
	"strconv"

	flag "github.com/spf13/pflag"

	binviz "github.com/alnah/go-binviz"
	"github.com/alnah/go-binviz/internal/yamlutil"
)

// divisionRecord is the yaml form of a division trace.
type divisionRecord struct {
	Value  int32                 `yaml:"value"`
	Steps  []binviz.DivisionStep `yaml:"steps"`
	Binary string                `yaml:"binary"`
}

// usageError normalizes flag parse errors. A help request returns nil.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// singleArg returns the only positional argument.
func singleArg(cmd, what string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: %s expects exactly one %s, got %d arguments", ErrUsage, cmd, what, len(args))
	}
	return args[0], nil
}

// parseInt32 parses a base-10 32-bit integer.
func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (must be a 32-bit integer)", ErrInvalidNumber, s)
	}
	return int32(n), nil
}

func runToBinary(args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags("to-binary", args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	arg, err := singleArg("to-binary", "number", positional)
	if err != nil {
		return err
	}
	n, err := parseInt32(arg)
	if err != nil {
		return err
	}

	if n < 0 && flags.verbose {
		fmt.Fprintln(env.Stderr, "note: negative values print as 32-bit two's complement")
	}
	fmt.Fprintln(env.Stdout, binviz.DecimalToBinary(n))
	return nil
}

func runToDecimal(args []string, env *Environment) error {
	_, positional, err := parseConvertFlags("to-decimal", args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	arg, err := singleArg("to-decimal", "binary number", positional)
	if err != nil {
		return err
	}

	n, err := binviz.ParseBinary(arg)
	if err != nil {
		fmt.Fprintln(env.Stdout, binviz.InvalidBinary)
		return err
	}
	fmt.Fprintln(env.Stdout, n)
	return nil
}

func runExplain(args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags("explain", args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	bits, err := singleArg("explain", "binary number", positional)
	if err != nil {
		return err
	}
	if err := validateFormat(flags.format); err != nil {
		return err
	}

	exp, err := binviz.Explain(bits)
	if err != nil {
		return err
	}

	if flags.common.verbose {
		if _, err := binviz.ParseBinary(bits); err != nil {
			fmt.Fprintf(env.Stderr, "note: %v; non-1 digits render as inactive\n", err)
		}
	}

	return renderRecord(flags, env, exp,
		func(r *binviz.Renderer) string { return r.ExplanationHTML(exp) },
		func(t *binviz.TextRenderer) string { return t.Explanation(exp) })
}

func runDivide(args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags("divide", args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	arg, err := singleArg("divide", "number", positional)
	if err != nil {
		return err
	}
	if err := validateFormat(flags.format); err != nil {
		return err
	}
	n, err := parseInt32(arg)
	if err != nil {
		return err
	}

	trace, err := binviz.Divide(n)
	if err != nil {
		return err
	}

	record := divisionRecord{Value: trace.Value, Steps: trace.Steps, Binary: trace.Binary()}
	return renderRecord(flags, env, record,
		func(r *binviz.Renderer) string { return r.DivisionHTML(trace) },
		func(t *binviz.TextRenderer) string { return t.Division(trace) })
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatHTML, formatYAML:
		return nil
	}
	return fmt.Errorf("%w: %q (want text, html or yaml)", ErrInvalidFormat, format)
}

// renderRecord writes a structured record in the requested format.
func renderRecord(flags *renderFlags, env *Environment, record any,
	toHTML func(*binviz.Renderer) string, toText func(*binviz.TextRenderer) string,
) error {
	cfg, _, err := loadSettings(flags.config, flags.common.quiet, env)
	if err != nil {
		return err
	}
	r, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	switch flags.format {
	case formatHTML:
		fmt.Fprintln(env.Stdout, toHTML(r))
	case formatYAML:
		out, err := yamlutil.Encode(record)
		if err != nil {
			return err
		}
		_, _ = env.Stdout.Write(out)
	default:
		width := resolveWidth(flags.width, cfg, env)
		if flags.common.verbose {
			fmt.Fprintf(env.Stderr, "Text width: %d\n", r.Text(width).Width())
		}
		fmt.Fprint(env.Stdout, toText(r.Text(width)))
	}
	return nil
}
