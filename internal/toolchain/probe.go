package toolchain

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"
)

// versionArgs maps each tool to the invocation that reports its version.
// isort prints usage noise with plain --version, so --version-number is used.
var versionArgs = map[Tool][]string{
	ToolIsort:  {"--version-number"},
	ToolFlake8: {"--version"},
	ToolBlack:  {"--version"},
	ToolPython: {"--version"},
}

// Version probes the installed version of the given tool. Multi-line output
// (flake8 lists its plugins on following lines) is trimmed to the first line.
func Version(ctx context.Context, runner Runner, tool Tool) (string, error) {
	args, ok := versionArgs[tool]
	if !ok {
		return "", &UnknownToolError{Tool: tool}
	}

	out, err := runner.Output(ctx, tool, args, "")
	if err != nil {
		return "", err
	}

	version := string(out)
	if i := strings.IndexByte(version, '\n'); i >= 0 {
		version = version[:i]
	}
	return strings.TrimSpace(version), nil
}

// PipPackage is one installed package reported by pip.
type PipPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// PipPackages lists the packages installed in the active Python environment
// via 'python -m pip list --format=json'.
func PipPackages(ctx context.Context, runner Runner) ([]PipPackage, error) {
	out, err := runner.Output(ctx, ToolPython, []string{"-m", "pip", "list", "--format=json"}, "")
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(out) {
		return nil, &PipListError{Detail: "pip did not produce valid JSON"}
	}
	parsed := gjson.ParseBytes(out)
	if !parsed.IsArray() {
		return nil, &PipListError{Detail: "expected a JSON array of packages"}
	}

	var packages []PipPackage
	parsed.ForEach(func(_, value gjson.Result) bool {
		packages = append(packages, PipPackage{
			Name:    value.Get("name").String(),
			Version: value.Get("version").String(),
		})
		return true
	})
	return packages, nil
}
