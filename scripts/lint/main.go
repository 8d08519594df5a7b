// Package main provides a script to lint the Go sources.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

func main() {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println("golangci-lint not found. Install it with 'make setup' (macOS/Linux)" +
			" or '.\\win-make.ps1 setup' (Windows)")
		os.Exit(1)
	}

	fmt.Println("Linting with golangci-lint...")
	cmd := exec.CommandContext(context.Background(), "golangci-lint", "run")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("❌ Linting failed: %v\n", err)
		os.Exit(1)
	}
}
