// Package gcloud wraps the gcloud CLI for authentication, deployment
// discovery, and cluster credential retrieval.
package gcloud

import (
	"context"
	"fmt"

	"github.com/gke-tools/gkedeploy/internal/execx"
)

// API is the surface of the gcloud CLI the deployer depends on.
type API interface {
	ActivateServiceAccount(ctx context.Context, keyFile string) error
	SetProject(ctx context.Context, project string) error
	DescribeDeployment(ctx context.Context, name string) (*Deployment, error)
	GetClusterCredentials(ctx context.Context, target ClusterTarget) error
}

// Client invokes the gcloud binary through an execx.Runner.
type Client struct {
	runner execx.Runner
}

// NewClient returns a Client backed by the given runner.
func NewClient(runner execx.Runner) *Client {
	return &Client{runner: runner}
}

// ActivateServiceAccount authenticates gcloud with a service-account
// key file. Subsequent gcloud calls run as that account.
func (c *Client) ActivateServiceAccount(ctx context.Context, keyFile string) error {
	if _, err := c.runner.Run(ctx, "gcloud", "auth", "activate-service-account", "--key-file", keyFile); err != nil {
		return fmt.Errorf("failed to activate service account: %w", err)
	}
	return nil
}

// SetProject selects the active cloud project.
func (c *Client) SetProject(ctx context.Context, project string) error {
	if _, err := c.runner.Run(ctx, "gcloud", "config", "set", "project", project); err != nil {
		return fmt.Errorf("failed to set project %s: %w", project, err)
	}
	return nil
}

// DescribeDeployment fetches the Deployment Manager record for name in
// JSON form and decodes it.
func (c *Client) DescribeDeployment(ctx context.Context, name string) (*Deployment, error) {
	out, err := c.runner.Run(ctx, "gcloud", "deployment-manager", "deployments", "describe", name, "--format", "json")
	if err != nil {
		return nil, fmt.Errorf("failed to describe deployment %s: %w", name, err)
	}

	dep, err := ParseDeployment(out)
	if err != nil {
		return nil, fmt.Errorf("failed to parse deployment %s: %w", name, err)
	}
	return dep, nil
}

// GetClusterCredentials binds subsequent kubectl invocations to the
// target cluster by fetching its credentials into the kubeconfig.
func (c *Client) GetClusterCredentials(ctx context.Context, target ClusterTarget) error {
	if _, err := c.runner.Run(ctx, "gcloud", "container", "clusters", "get-credentials", target.Name, "--zone", target.Zone); err != nil {
		return fmt.Errorf("failed to get credentials for cluster %s in %s: %w", target.Name, target.Zone, err)
	}
	return nil
}
