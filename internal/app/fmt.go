package app

import (
	"github.com/spf13/cobra"
)

func NewFmtCmd(gate Gate) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite the code so the imports and format checks pass",
		Long: `Run isort and black in write mode over the configured targets. The style
and copyright checks report problems the formatters cannot fix; those still
need fixing by hand.`,
		Args: cobra.NoArgs,
		Example: `
pyqa fmt
pyqa fmt -p ./my-project`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return gate.Format(cmd.Context())
		},
	}
}
