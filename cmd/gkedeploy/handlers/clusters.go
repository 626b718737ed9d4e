package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gke-tools/gkedeploy/internal/config"
	"github.com/gke-tools/gkedeploy/internal/gcloud"
)

// ClustersOptions are the clusters command's inputs.
type ClustersOptions struct {
	Deployment string
	Project    string

	// KeyFile authenticates a service account first. When empty the
	// ambient gcloud credentials are used.
	KeyFile string

	// JSON switches the output to a machine-readable listing.
	JSON bool
}

// Clusters lists the cluster targets a deploy run would address,
// without applying anything.
func Clusters(ctx context.Context, opts ClustersOptions) error {
	if opts.Deployment == "" || opts.Project == "" {
		return fmt.Errorf("missing required deployment name or project id")
	}
	if opts.KeyFile == "" {
		opts.KeyFile = os.Getenv(config.EnvKeyFile)
	}

	cloud := newCloudClient(newRunner())

	if opts.KeyFile != "" {
		if err := cloud.ActivateServiceAccount(ctx, opts.KeyFile); err != nil {
			return err
		}
	}
	if err := cloud.SetProject(ctx, opts.Project); err != nil {
		return err
	}

	dep, err := cloud.DescribeDeployment(ctx, opts.Deployment)
	if err != nil {
		return err
	}
	targets, err := dep.ClusterTargets()
	if err != nil {
		return err
	}

	if opts.JSON {
		return printClustersJSON(targets)
	}

	if len(targets) == 0 {
		fmt.Printf("Deployment %s has no cluster resources.\n", opts.Deployment)
		return nil
	}
	fmt.Printf("Clusters in deployment %s:\n", opts.Deployment)
	for _, target := range targets {
		fmt.Printf("  %-30s %s\n", target.Name, target.Zone)
	}
	return nil
}

func printClustersJSON(targets []gcloud.ClusterTarget) error {
	if targets == nil {
		targets = []gcloud.ClusterTarget{}
	}
	data, err := json.MarshalIndent(targets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode clusters: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
