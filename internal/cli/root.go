package cli

import (
	"github.com/spf13/cobra"
)

// NewEstimatorCommand returns the root command of the estimator CLI.
func NewEstimatorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimator [command] [flags]",
		Short: "estimator computes construction material quantities from building dimensions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(NewCmdEstimate())
	cmd.AddCommand(NewCmdUpload())
	cmd.AddCommand(NewCmdReport())
	cmd.AddCommand(NewCmdHistory())
	cmd.AddCommand(NewCmdFormula())
	return cmd
}
