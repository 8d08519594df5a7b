package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aflah02/pyqa/internal/fsh"
	"github.com/aflah02/pyqa/internal/lint"
	"github.com/aflah02/pyqa/internal/toolchain"
	"github.com/aflah02/pyqa/internal/validator"
)

// Version is the current version of pyqa, set at build time.
var Version = "dev"

const InitCmdName = "init"

// Banner with colour codes.
var Banner = "\033[32m" + `
    ____ __  __    ____     ___
   / __ \\ \/ /   / __ \   /   |
  / /_/ / \  /   / / / /  / /| |
 / ____/  / /   / /_/ /  / ___ |
/_/      /_/    \___\_\ /_/  |_|
` + "\033[0m"

var LongDescription = `
pyqa is a CLI tool for keeping Python codebases release-ready. It runs the
project's import-order, style, format and copyright checks as one gate, tells
you exactly how to fix what failed, and can rewrite the code for the checks
the formatters own.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyGate, ll *slog.LevelVar, stdout, stderr io.Writer,
	envProvider fsh.EnvProvider,
) *cobra.Command {
	var debug bool
	var noColour bool
	projectPath := pathValue("")

	rootCmd := &cobra.Command{
		Use:           "pyqa",
		Short:         "A quality gate for Python codebases",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          Banner + "\n" + LongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for help, completion and init commands
			if cmd.Name() == "help" || isCompletionCommand(cmd) || cmd.Name() == InitCmdName {
				return nil
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				if debug {
					ll.Set(slog.LevelDebug)
				}
				return nil
			}

			// 1. Setup Logging
			if debug {
				ll.Set(slog.LevelDebug)
			}

			// 2. Build Dependencies
			compiler := validator.NewSanthoshCompiler()

			project, err := lint.NewProject(string(projectPath), compiler, fsh.NewPathResolver(), envProvider)
			if err != nil {
				return fmt.Errorf("project initialisation failed: %w", err)
			}

			logger, _, err := setupLogger(stderr, ll, project.RootDirectory())
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}

			runner := toolchain.NewCLIRunner(stdout, stderr)
			pipeline := lint.NewPipeline(project, runner, logger)

			// 3. Hydrate the Lazy Wrapper
			realGate := NewCLIGate(logger, project, pipeline, runner, stdout)
			lazy.SetInner(realGate)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().VarP(&projectPath, "project", "p", "path to the project root (overrides env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.PersistentFlags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColour", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColour")

	// Subcommands
	rootCmd.AddCommand(NewInitCmd(fsh.NewPathResolver()))
	rootCmd.AddCommand(NewCheckCmd(lazy))
	rootCmd.AddCommand(NewFmtCmd(lazy))
	rootCmd.AddCommand(NewDoctorCmd(lazy))

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
