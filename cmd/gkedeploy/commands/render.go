package commands

import (
	"github.com/spf13/cobra"

	"github.com/gke-tools/gkedeploy/cmd/gkedeploy/handlers"
	"github.com/gke-tools/gkedeploy/internal/config"
)

// Render returns the command for expanding the template folder to
// stdout without touching any cluster.
func Render() *cobra.Command {
	var opts handlers.RenderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the template folder to stdout",
		Long: `Render every manifest in the template folder to stdout as a single
YAML stream, expanding *.yaml.tmpl files exactly as a deploy run would.

Pass --run-id to pin the run identity for reproducible output.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Render(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Revision, "revision", "r", "", "Revision identifier exposed to templates (default: "+config.EnvRevision+")")
	cmd.Flags().StringVarP(&opts.Environment, "environment", "e", "", "Deployment environment name (default: "+config.EnvEnvironment+")")
	cmd.Flags().StringVarP(&opts.TemplateFolder, "template-folder", "t", "", "Template folder override (default: "+config.EnvTemplateFolder+")")
	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "Fixed run identity (default: generated from the revision)")

	return cmd
}
