package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: binviz <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  to-binary   Convert a decimal number to binary")
	fmt.Fprintln(w, "  to-decimal  Convert a binary number to decimal")
	fmt.Fprintln(w, "  explain     Show the positional breakdown of a binary number")
	fmt.Fprintln(w, "  divide      Show the repeated division of a decimal number by two")
	fmt.Fprintln(w, "  worksheet   Build a printable worksheet (PDF or HTML)")
	fmt.Fprintln(w, "  doctor      Check the environment for PDF rendering")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'binviz help <command>' for details on a specific command.")
}

// printCommandUsage prints usage for a single command.
func printCommandUsage(w io.Writer, name string) {
	switch name {
	case "to-binary":
		fmt.Fprintln(w, "Usage: binviz to-binary <n>")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Print the binary digits of a 32-bit decimal number.")
		fmt.Fprintln(w, "Negative numbers print as 32-bit two's complement.")
	case "to-decimal":
		fmt.Fprintln(w, "Usage: binviz to-decimal <bits>")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Print the decimal value of a binary number (at most 32 digits).")
		fmt.Fprintln(w, "Prints \"Invalid Binary\" and exits 2 when the input is not binary.")
	case "explain":
		fmt.Fprintln(w, "Usage: binviz explain <bits> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show each digit with its power of two and the resulting sum.")
		printRenderFlags(w)
	case "divide":
		fmt.Fprintln(w, "Usage: binviz divide <n> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show the repeated division of n by two and the remainders.")
		printRenderFlags(w)
	case "worksheet":
		printWorksheetUsage(w)
	case "doctor":
		fmt.Fprintln(w, "Usage: binviz doctor [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Check Chrome, container and CI settings, the temp directory and")
		fmt.Fprintln(w, "BINVIZ_* variables. Exits 1 when worksheets cannot be built.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")
		fmt.Fprintln(w, "  -f, --format <s>          Output format: text, yaml (default: text)")
	case "completion":
		printCompletionUsage(w)
	case "version":
		fmt.Fprintln(w, "Usage: binviz version")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show version information.")
	case "help":
		fmt.Fprintln(w, "Usage: binviz help [command]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show help for a command.")
	}
}

func printRenderFlags(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: text, html, yaml (default: text)")
	fmt.Fprintln(w, "      --width <n>           Text wrap width (0 = terminal width)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show resolved settings")
}

func printWorksheetUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: binviz worksheet [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a worksheet of explanations and divisions.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "      --binary <bits>       Binary number to explain (repeatable)")
	fmt.Fprintln(w, "      --decimal <n>         Decimal number to divide (repeatable)")
	fmt.Fprintln(w, "      --title <s>           Worksheet title")
	fmt.Fprintln(w, "      --notes <path>        Markdown file shown under the title")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: worksheet.pdf)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --html-only           Write HTML only, skip PDF")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <s>           Style name (default, chalkboard) or CSS file")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles and templates directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show resolved settings and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  BINVIZ_CONFIG, BINVIZ_STYLE, BINVIZ_TIMEOUT, BINVIZ_OUTPUT_DIR,")
	fmt.Fprintln(w, "  BINVIZ_WIDTH, BINVIZ_ASSET_PATH")
}

func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: binviz completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a completion script for bash, zsh or fish.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w, "  Bash:  eval \"$(binviz completion bash)\"          # in ~/.bashrc")
	fmt.Fprintln(w, "  Zsh:   eval \"$(binviz completion zsh)\"           # in ~/.zshrc, after compinit")
	fmt.Fprintln(w, "  Fish:  binviz completion fish > ~/.config/fish/completions/binviz.fish")
}

// knownCommands lists commands that have help topics.
var knownCommands = map[string]bool{
	"to-binary":  true,
	"to-decimal": true,
	"explain":    true,
	"divide":     true,
	"worksheet":  true,
	"doctor":     true,
	"completion": true,
	"version":    true,
	"help":       true,
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	if !knownCommands[args[0]] {
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return
	}
	printCommandUsage(env.Stdout, args[0])
}
