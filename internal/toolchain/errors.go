package toolchain

import (
	"fmt"
)

// ToolNotFoundError indicates a required external tool is not on PATH.
type ToolNotFoundError struct {
	Tool Tool
}

func (e *ToolNotFoundError) Error() string {
	if e.Tool == ToolPython {
		return "python is not installed or not on PATH"
	}
	return fmt.Sprintf("%s is not installed or not on PATH (try 'pip install %s')", e.Tool, e.Tool)
}

// UnknownToolError indicates a Tool value the toolchain does not know how to
// probe.
type UnknownToolError struct {
	Tool Tool
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Tool)
}

// PipListError indicates that pip's package listing could not be parsed.
type PipListError struct {
	Detail string
}

func (e *PipListError) Error() string {
	return fmt.Sprintf("could not parse pip package listing: %s", e.Detail)
}
