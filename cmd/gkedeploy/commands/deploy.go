package commands

import (
	"github.com/spf13/cobra"

	"github.com/gke-tools/gkedeploy/cmd/gkedeploy/handlers"
	"github.com/gke-tools/gkedeploy/internal/config"
)

// Deploy returns the command for applying manifests to every cluster
// of a Deployment Manager deployment.
//
// Required positional arguments:
//
//	NAMESPACE   Kubernetes namespace the manifests are applied in
//	DEPLOYMENT  Deployment Manager deployment holding the clusters
//	PROJECT     Cloud project id
//
// Environment variables (flags take precedence):
//
//	GKEDEPLOY_REVISION         revision identifier for templating
//	GKEDEPLOY_KEY_FILE         service-account key file path
//	GKEDEPLOY_ENVIRONMENT      environment name; templates default to manifests/<env>
//	GKEDEPLOY_TEMPLATE_FOLDER  explicit template folder override
func Deploy() *cobra.Command {
	var opts handlers.DeployOptions

	cmd := &cobra.Command{
		Use:   "deploy NAMESPACE DEPLOYMENT PROJECT",
		Short: "Apply manifests to every cluster of a deployment",
		Long: `Deploy templated Kubernetes manifests to GKE clusters.

The target clusters are discovered from the Deployment Manager record:
every cluster-typed resource of DEPLOYMENT becomes a target. For each
target the cluster credentials are fetched and all *.yaml and
*.yaml.tmpl files in the template folder are applied in order.

Examples:
  # Deploy to staging using environment variables for the rest
  gkedeploy deploy staging acme-staging acme-project

  # Explicit revision and template folder
  gkedeploy deploy prod acme-prod acme-project \
    --revision 4f1c99a2e8 --template-folder manifests/prod`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Namespace = args[0]
			opts.Deployment = args[1]
			opts.Project = args[2]
			return handlers.Deploy(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Revision, "revision", "r", "", "Revision identifier exposed to templates (default: "+config.EnvRevision+")")
	cmd.Flags().StringVarP(&opts.KeyFile, "key-file", "k", "", "Service-account key file (default: "+config.EnvKeyFile+")")
	cmd.Flags().StringVarP(&opts.Environment, "environment", "e", "", "Deployment environment name (default: "+config.EnvEnvironment+")")
	cmd.Flags().StringVarP(&opts.TemplateFolder, "template-folder", "t", "", "Template folder override (default: "+config.EnvTemplateFolder+")")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "Env file to load before reading the environment")

	return cmd
}
