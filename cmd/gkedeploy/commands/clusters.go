package commands

import (
	"github.com/spf13/cobra"

	"github.com/gke-tools/gkedeploy/cmd/gkedeploy/handlers"
	"github.com/gke-tools/gkedeploy/internal/config"
)

// Clusters returns the command for listing a deployment's cluster
// targets without applying anything.
func Clusters() *cobra.Command {
	var opts handlers.ClustersOptions

	cmd := &cobra.Command{
		Use:   "clusters DEPLOYMENT PROJECT",
		Short: "List the clusters a deploy run would target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Deployment = args[0]
			opts.Project = args[1]
			return handlers.Clusters(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.KeyFile, "key-file", "k", "", "Service-account key file (default: "+config.EnvKeyFile+", ambient gcloud auth when unset)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}
