// Package main provides a script to build the pyqa binary into bin/.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

func main() {
	binaryName := "pyqa"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}

	version := describeVersion()
	ldflags := fmt.Sprintf("-X github.com/aflah02/pyqa/internal/app.Version=%s", version)

	if err := os.MkdirAll("bin", 0o755); err != nil {
		fmt.Printf("❌ Failed to create bin directory: %v\n", err)
		os.Exit(1)
	}

	outputPath := filepath.Join("bin", binaryName)
	fmt.Printf("Building %s...\n", version)

	cmd := exec.CommandContext(context.Background(),
		"go", "build", "-ldflags", ldflags, "-o", outputPath, "./cmd/pyqa")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Printf("❌ Build failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Build complete: %s\n", outputPath)
}

func describeVersion() string {
	out, err := exec.CommandContext(context.Background(),
		"go", "run", "scripts/version/main.go").Output()
	if err != nil {
		return "dev"
	}
	return string(out)
}
