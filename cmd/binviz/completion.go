package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota
	flagBool
	flagNumber
	flagEnum // predefined values
	flagFile // file matching a glob
	flagDir
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string
	Type     flagType
	Desc     string
	Values   []string // flagEnum
	FileGlob string   // flagFile, comma separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
}

// completionMeta holds completion hints the FlagSet cannot express.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
// Names, shorthands and descriptions come from the FlagSets.
var flagCompletionMeta = map[string]completionMeta{
	"format":      {Values: []string{formatText, formatHTML, formatYAML}},
	"page-size":   {Values: []string{"letter", "a4", "legal"}},
	"orientation": {Values: []string{"portrait", "landscape"}},
	"config":      {FileGlob: "*.yaml,*.yml"},
	"style":       {FileGlob: "*.css"},
	"notes":       {FileGlob: "*.md,*.markdown"},
	"output":      {FileGlob: "*.pdf,*.html"},
	"asset-path":  {IsDir: true},
}

// extractFlags turns a FlagSet into completion definitions.
func extractFlags(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int32", "int64", "float64", "int32Slice":
			fd.Type = flagNumber
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
func getCommands() []commandDef {
	toBinary, _ := newConvertFlagSet("to-binary", io.Discard)
	toDecimal, _ := newConvertFlagSet("to-decimal", io.Discard)
	explain, _ := newRenderFlagSet("explain", io.Discard)
	divide, _ := newRenderFlagSet("divide", io.Discard)
	worksheet, _ := newWorksheetFlagSet(io.Discard)
	doctor, _ := newDoctorFlagSet(io.Discard)

	return []commandDef{
		{Name: "to-binary", Desc: "Convert a decimal number to binary", Flags: extractFlags(toBinary)},
		{Name: "to-decimal", Desc: "Convert a binary number to decimal", Flags: extractFlags(toDecimal)},
		{Name: "explain", Desc: "Show the positional breakdown of a binary number", Flags: extractFlags(explain)},
		{Name: "divide", Desc: "Show the repeated division of a decimal number by two", Flags: extractFlags(divide)},
		{Name: "worksheet", Desc: "Build a printable worksheet", Flags: extractFlags(worksheet)},
		{Name: "doctor", Desc: "Check the environment for PDF rendering", Flags: extractFlags(doctor)},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes a completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	commands := getCommands()
	switch shell {
	case ShellBash:
		return generateBash(w, commands)
	case ShellZsh:
		return generateZsh(w, commands)
	case ShellFish:
		return generateFish(w, commands)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCommandUsage(env.Stdout, "completion")
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

func commandNames(commands []commandDef) string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

func generateBash(w io.Writer, commands []commandDef) error {
	var b strings.Builder

	b.WriteString("# bash completion for binviz\n")
	b.WriteString("_binviz_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", commandNames(commands))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"${prev}\" in\n")
	seen := map[string]bool{}
	for _, c := range commands {
		for _, f := range c.Flags {
			if seen[f.Long] || (f.Type != flagEnum && f.Type != flagFile && f.Type != flagDir) {
				continue
			}
			seen[f.Long] = true
			pattern := "--" + f.Long
			if f.Short != "" {
				pattern += "|-" + f.Short
			}
			fmt.Fprintf(&b, "        %s)\n", pattern)
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n", strings.Join(f.Values, " "))
			case flagFile:
				fmt.Fprintf(&b, "            COMPREPLY=($(compgen -f -X '!@(%s)' -- \"${cur}\"))\n", strings.ReplaceAll(f.FileGlob, ",", "|"))
			case flagDir:
				b.WriteString("            COMPREPLY=($(compgen -d -- \"${cur}\"))\n")
			}
			b.WriteString("            return\n")
			b.WriteString("            ;;\n")
		}
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range commands {
		if c.Name == "completion" {
			fmt.Fprintf(&b, "        completion)\n            COMPREPLY=($(compgen -W \"bash zsh fish\" -- \"${cur}\"))\n            ;;\n")
			continue
		}
		if c.Name == "help" {
			fmt.Fprintf(&b, "        help)\n            COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n            ;;\n", commandNames(commands))
			continue
		}
		if len(c.Flags) == 0 {
			continue
		}
		var opts []string
		for _, f := range c.Flags {
			opts = append(opts, "--"+f.Long)
			if f.Short != "" {
				opts = append(opts, "-"+f.Short)
			}
		}
		fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -W \"%s\" -- \"${cur}\"))\n            ;;\n", c.Name, strings.Join(opts, " "))
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("shopt -s extglob\n")
	b.WriteString("complete -F _binviz_completions binviz\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func generateZsh(w io.Writer, commands []commandDef) error {
	var b strings.Builder

	b.WriteString("#compdef binviz\n\n")
	b.WriteString("_binviz() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range commands {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		b.WriteString("            _arguments \\\n")
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "                %s \\\n", zshSpec(f))
		}
		b.WriteString("                '*::arg:_default'\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("        completion)\n")
	b.WriteString("            _values 'shell' bash zsh fish\n")
	b.WriteString("            ;;\n")
	b.WriteString("        help)\n")
	b.WriteString("            _describe 'command' commands\n")
	b.WriteString("            ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _binviz binviz\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshSpec renders one _arguments spec for f.
func zshSpec(f flagDef) string {
	names := "--" + f.Long
	if f.Short != "" {
		names = "{-" + f.Short + ",--" + f.Long + "}"
	}
	desc := "[" + zshEscape(f.Desc) + "]"

	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		globs := strings.Split(f.FileGlob, ",")
		action = ":" + f.Long + ":_files -g \"" + strings.Join(globs, " ") + "\""
	case flagDir:
		action = ":" + f.Long + ":_directories"
	default:
		action = ":" + f.Long + ":"
	}

	if f.Short != "" {
		return names + "'" + desc + action + "'"
	}
	return "'" + names + desc + action + "'"
}

func zshEscape(s string) string {
	r := strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:")
	return r.Replace(s)
}

func generateFish(w io.Writer, commands []commandDef) error {
	var b strings.Builder

	b.WriteString("# fish completion for binviz\n\n")
	b.WriteString("function __fish_binviz_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_binviz_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c binviz -f\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c binviz -n __fish_binviz_needs_command -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	b.WriteString("\n")
	b.WriteString("complete -c binviz -n '__fish_binviz_using_command completion' -a 'bash zsh fish'\n")
	fmt.Fprintf(&b, "complete -c binviz -n '__fish_binviz_using_command help' -a '%s'\n", commandNames(commands))

	for _, c := range commands {
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c binviz -n '__fish_binviz_using_command %s' -l %s", c.Name, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagEnum:
				line += " -x -a '" + strings.Join(f.Values, " ") + "'"
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagString, flagNumber:
				line += " -x"
			}
			line += " -d '" + fishEscape(f.Desc) + "'"
			b.WriteString(line + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func fishEscape(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
