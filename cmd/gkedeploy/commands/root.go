// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the gkedeploy CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gkedeploy",
		Short: "Deploy templated Kubernetes manifests to GKE clusters from a Deployment Manager record",

		// main prints the error itself, highlighted.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Core commands
	cmd.AddCommand(Deploy())
	cmd.AddCommand(Clusters())
	cmd.AddCommand(Render())

	// Utility commands
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
