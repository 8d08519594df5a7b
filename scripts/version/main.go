// Package main prints the version string for the current checkout.
package main

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

func main() {
	out, err := exec.CommandContext(context.Background(),
		"git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		fmt.Print("dev")
		return
	}
	fmt.Print(strings.TrimSpace(string(out)))
}
