package lint

import (
	"fmt"
	"strings"
)

type ProjectInitError struct {
	Path string
	Err  error
}

func (e *ProjectInitError) Error() string {
	return fmt.Sprintf("could not resolve project root %s: %v", e.Path, e.Err)
}

type ProjectRootNotFolderError struct {
	Path string
}

func (e *ProjectRootNotFolderError) Error() string {
	return fmt.Sprintf("project root %s is not a directory", e.Path)
}

type SettingsFileNotFoundError struct {
	Path string
}

func (e *SettingsFileNotFoundError) Error() string {
	return fmt.Sprintf("settings file %s does not exist", e.Path)
}

type TargetNotFoundError struct {
	Target string
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("target %s does not exist", e.Target)
}

type InvalidTargetPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidTargetPatternError) Error() string {
	return fmt.Sprintf("target pattern %s is invalid: %v", e.Pattern, e.Err)
}

type UnknownCheckError struct {
	Name string
}

func (e *UnknownCheckError) Error() string {
	return fmt.Sprintf("unknown check %q - valid checks are: %s", e.Name, strings.Join(checkNameStrings(), ", "))
}

// ChecksFailedError is returned by Pipeline.Run when one or more checks found
// non-compliant code. The full detail lives in the accompanying Report.
type ChecksFailedError struct {
	Failed []CheckName
}

func (e *ChecksFailedError) Error() string {
	names := make([]string, len(e.Failed))
	for i, n := range e.Failed {
		names[i] = string(n)
	}
	return fmt.Sprintf("checks failed: %s", strings.Join(names, ", "))
}
