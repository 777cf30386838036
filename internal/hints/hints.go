// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-binviz/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// CIVars are the variables whose presence marks a CI runner.
var CIVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// InCI reports whether any of CIVars is set in vars.
func InCI(vars map[string]string) bool {
	for _, v := range CIVars {
		if vars[v] != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect returns hints for browser connection errors, given the
// process environment as a map.
func ForBrowserConnect(vars map[string]string) string {
	var hints []string

	if (InCI(vars) || IsInContainer()) && vars["ROD_NO_SANDBOX"] != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if vars["ROD_BROWSER_BIN"] == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	hints = append(hints, "use --html-only to skip PDF rendering")

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing timeout for slow renders.
func ForTimeout() string {
	return format("for large worksheets, use --timeout flag or BINVIZ_TIMEOUT")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-binviz/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-binviz") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInvalidBinary returns a hint describing accepted binary input.
func ForInvalidBinary() string {
	return format("use only the digits 0 and 1, at most 32 of them, with no sign or prefix")
}

// ForUnknownEnvVars returns a hint listing the variables binviz reads.
func ForUnknownEnvVars(known []string) string {
	if len(known) == 0 {
		return ""
	}
	return format("known variables: " + strings.Join(known, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
