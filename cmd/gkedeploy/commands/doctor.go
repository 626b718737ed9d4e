package commands

import (
	"github.com/spf13/cobra"

	"github.com/gke-tools/gkedeploy/cmd/gkedeploy/handlers"
)

// Doctor returns the command checking that the external tools a deploy
// run shells out to are installed.
func Doctor() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that gcloud and kubectl are installed",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Doctor(jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
