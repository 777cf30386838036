package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alnah/go-binviz/internal/config"
	"github.com/alnah/go-binviz/internal/hints"
	"github.com/alnah/go-binviz/internal/yamlutil"
)

// ErrNotReady is returned by doctor when a blocking problem was found.
var ErrNotReady = errors.New("environment not ready")

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `yaml:"status"`
	Chrome   chromeInfo `yaml:"chrome"`
	Env      envInfo    `yaml:"environment"`
	System   systemInfo `yaml:"system"`
	Config   configInfo `yaml:"config"`
	Warnings []string   `yaml:"warnings,omitempty"`
	Errors   []string   `yaml:"errors,omitempty"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Found   bool   `yaml:"found"`
	Path    string `yaml:"path,omitempty"`
	Version string `yaml:"version,omitempty"`
	Sandbox bool   `yaml:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `yaml:"os"`
	Arch          string `yaml:"arch"`
	Container     bool   `yaml:"container"`
	ContainerHint string `yaml:"containerHint,omitempty"`
	CI            bool   `yaml:"ci"`
	NoSandbox     string `yaml:"rodNoSandbox,omitempty"`
	BrowserBin    string `yaml:"rodBrowserBin,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `yaml:"tempWritable"`
}

// configInfo holds BINVIZ_* and config file results.
type configInfo struct {
	File       string   `yaml:"file,omitempty"`
	UnknownEnv []string `yaml:"unknownEnv,omitempty"`
}

// runDoctor checks what worksheet PDF rendering needs.
// Conversions work without Chrome, so a missing browser is a warning.
func runDoctor(args []string, env *Environment) error {
	f, positional, err := parseDoctorFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: doctor takes no arguments", ErrUsage)
	}
	if f.format != formatText && f.format != formatYAML {
		return fmt.Errorf("%w: %q (want text or yaml)", ErrInvalidFormat, f.format)
	}

	result := diagnose(env)

	if f.format == formatYAML {
		out, err := yamlutil.Encode(result)
		if err != nil {
			return err
		}
		_, _ = env.Stdout.Write(out)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ErrNotReady
	}
	return nil
}

// diagnose performs all checks.
func diagnose(env *Environment) *doctorResult {
	vars := env.envMap()
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  vars["ROD_NO_SANDBOX"],
			BrowserBin: vars["ROD_BROWSER_BIN"],
		},
	}

	checkChrome(result, env)
	checkEnvironment(result, vars)
	checkSystem(result)
	checkConfig(result, env)

	switch {
	case len(result.Errors) > 0:
		result.Status = statusErrors
	case len(result.Warnings) > 0:
		result.Status = statusWarnings
	}
	return result
}

// checkChrome detects Chrome/Chromium.
func checkChrome(result *doctorResult, env *Environment) {
	chromePath := result.Env.BrowserBin
	if chromePath == "" {
		var found bool
		if chromePath, found = env.FindBrowser(); !found {
			result.Warnings = append(result.Warnings,
				"Chrome/Chromium not found: PDF worksheets need Chrome or ROD_BROWSER_BIN (use --html-only otherwise)")
			return
		}
	}

	if _, err := os.Stat(chromePath); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Chrome not found at %s", chromePath))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = chromePath
	result.Chrome.Sandbox = result.Env.NoSandbox != "1"

	version, err := env.BrowserVersion(chromePath)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not get Chrome version: %v", err))
		return
	}
	result.Chrome.Version = version
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult, vars map[string]string) {
	result.Env.Container, result.Env.ContainerHint = detectContainer(vars)

	result.Env.CI = hints.InCI(vars)

	if (result.Env.Container || result.Env.CI) && result.Env.NoSandbox != "1" {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// detectContainer returns whether a container was detected and which signal matched.
func detectContainer(vars map[string]string) (bool, string) {
	switch {
	case vars["BINVIZ_CONTAINER"] == "1":
		return true, "BINVIZ_CONTAINER=1"
	case hints.IsInContainer():
		return true, "/.dockerenv"
	case vars["container"] != "":
		return true, "container=" + vars["container"]
	case vars["KUBERNETES_SERVICE_HOST"] != "":
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory used for PDF rendering is writable.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	probe := filepath.Join(tmpDir, "binviz-doctor-probe")
	if err := os.WriteFile(probe, []byte("probe"), 0o600); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Temp directory not writable: %s", tmpDir))
		return
	}
	_ = os.Remove(probe)
	result.System.TempWritable = true
}

// checkConfig validates BINVIZ_* variables and the config file they point to.
// BINVIZ_* with a name the CLI does not read is a warning, not an error.
func checkConfig(result *doctorResult, env *Environment) {
	result.Config.UnknownEnv = config.UnknownEnvVars(env.Environ())
	for _, name := range result.Config.UnknownEnv {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Unknown environment variable %s", name))
	}

	e, err := config.LoadEnvFrom(env.envMap())
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return
	}
	if e.ConfigPath == "" {
		return
	}

	result.Config.File = e.ConfigPath
	if _, err := config.LoadConfig(e.ConfigPath); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("BINVIZ_CONFIG: %v", err))
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "binviz doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	} else {
		fmt.Fprintln(w, "  [WARN] Not found (HTML worksheets still work)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	if r.Config.File != "" {
		fmt.Fprintf(w, "  [OK] Config: %s\n", r.Config.File)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	printDoctorList(w, "Warnings:", "[WARN]", r.Warnings)
	printDoctorList(w, "Errors:", "[ERROR]", r.Errors)

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

func printDoctorList(w io.Writer, title, tag string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	for _, item := range items {
		fmt.Fprintf(w, "  %s %s\n", tag, strings.TrimSpace(item))
	}
	fmt.Fprintln(w)
}
