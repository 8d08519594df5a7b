package app

import (
	"github.com/spf13/cobra"
)

func NewDoctorCmd(gate Gate) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the Python tool environment",
		Long: `Probe the external tools the checks depend on (python, isort, flake8 and
black), the settings file and the configured targets, and report anything
that would stop a check run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return gate.Doctor(cmd.Context())
		},
	}
}
