// Package kubectl wraps the kubectl CLI for namespaced manifest
// application.
package kubectl

import (
	"context"
	"fmt"

	"github.com/gke-tools/gkedeploy/internal/execx"
)

// Client invokes the kubectl binary through an execx.Runner. kubectl
// acts on whichever cluster context gcloud last bound credentials for.
type Client struct {
	runner execx.Runner
}

// NewClient returns a Client backed by the given runner.
func NewClient(runner execx.Runner) *Client {
	return &Client{runner: runner}
}

// Apply applies the manifest at path to namespace. Success is the
// child process exiting zero; there is no dry-run or diff pass.
func (c *Client) Apply(ctx context.Context, path, namespace string) error {
	if _, err := c.runner.Run(ctx, "kubectl", "apply", "-f", path, "-n", namespace); err != nil {
		return fmt.Errorf("kubectl apply failed for %s: %w", path, err)
	}
	return nil
}
