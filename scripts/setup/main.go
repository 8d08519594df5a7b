// Package main provides a script to set up the development environment.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

var workflowFlag = flag.String("workflow", "local", "Workflow: local, ci, or coverage")

// toolModules maps each development tool to the module path go install needs.
var toolModules = map[string]string{
	"lefthook":      "github.com/evilmartians/lefthook@v1.7.1",
	"golangci-lint": "github.com/golangci/golangci-lint/v2/cmd/golangci-lint@v2.9.0",
	"goreleaser":    "github.com/goreleaser/goreleaser/v2@v2.3.0",
	"staticcheck":   "honnef.co/go/tools/cmd/staticcheck@2023.1.7",
	"gotestsum":     "gotest.tools/gotestsum@v1.12.0",
	"gofumpt":       "mvdan.cc/gofumpt@v0.7.0",
}

// workflowTools names the tools each workflow needs. The local workflow gets
// everything.
var workflowTools = map[string][]string{
	"ci":       {"golangci-lint", "staticcheck", "gotestsum", "gofumpt"},
	"coverage": {"gotestsum"},
}

func main() {
	flag.Parse()
	workflow := *workflowFlag

	for _, tool := range toolsForWorkflow(workflow) {
		if isToolInstalled(tool) {
			_, _ = fmt.Printf("✅ %s is already installed\n", tool)
			continue
		}
		_, _ = fmt.Printf("📦 Installing %s...\n", tool)
		if err := runCommand("go", "install", toolModules[tool]); err != nil {
			_, _ = fmt.Printf("❌ Failed to install %s: %v\n", tool, err)
		} else {
			_, _ = fmt.Printf("✅ Installed %s\n", tool)
		}
	}

	if workflow == "local" {
		_, _ = fmt.Println("🚀 Installing lefthook hooks...")
		if err := runCommand("lefthook", "install"); err != nil {
			_, _ = fmt.Printf("❌ Failed to install lefthook hooks: %v\n", err)
		} else {
			_, _ = fmt.Println("✅ Lefthook hooks installed!")
		}
	}
}

func toolsForWorkflow(workflow string) []string {
	if names, ok := workflowTools[workflow]; ok {
		return names
	}
	names := make([]string, 0, len(toolModules))
	for name := range toolModules {
		names = append(names, name)
	}
	return names
}

func isToolInstalled(name string) bool {
	if _, err := exec.LookPath(name); err == nil {
		return true
	}
	_, err := os.Stat(goBinPath(name))
	return err == nil
}

// goBinPath is where go install puts binaries when they are not on PATH.
func goBinPath(name string) string {
	goPath := os.Getenv("GOPATH")
	if goPath == "" {
		home, _ := os.UserHomeDir()
		goPath = filepath.Join(home, "go")
	}
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(goPath, "bin", name)
}

func runCommand(name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		fullPath := goBinPath(name)
		if _, statErr := os.Stat(fullPath); statErr != nil {
			return fmt.Errorf("%s not found in PATH or %s", name, fullPath)
		}
		path = fullPath
	}

	cmd := exec.CommandContext(context.Background(), path, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
