// Package deploy orchestrates a deployment run: authenticate, discover
// the target clusters from the Deployment Manager record, then apply
// the template directory to each cluster in turn.
//
// The flow is strictly sequential and fail-fast. The first failing
// step aborts the whole run, including any clusters not yet processed;
// clusters already applied stay applied. There are no retries and no
// rollback.
package deploy

import (
	"context"
	"fmt"
	"log"

	"github.com/gke-tools/gkedeploy/internal/config"
	"github.com/gke-tools/gkedeploy/internal/gcloud"
	"github.com/gke-tools/gkedeploy/internal/manifest"
)

// Deployer runs the deployment workflow for one validated
// configuration.
type Deployer struct {
	cfg     *config.Config
	cloud   gcloud.API
	applier manifest.Applier
	vars    manifest.Vars
}

// New returns a Deployer. runID is this run's identity, exposed to
// templates alongside the revision.
func New(cfg *config.Config, cloud gcloud.API, applier manifest.Applier, runID string) *Deployer {
	return &Deployer{
		cfg:     cfg,
		cloud:   cloud,
		applier: applier,
		vars: manifest.Vars{
			Revision:     cfg.Revision,
			DeploymentID: runID,
		},
	}
}

// Run executes the workflow. A deployment record with no cluster
// resources is a successful no-op.
func (d *Deployer) Run(ctx context.Context) error {
	if err := d.authenticate(ctx); err != nil {
		return err
	}

	targets, err := d.discover(ctx)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		log.Printf("Deployment %s has no cluster resources; nothing to apply", d.cfg.Deployment)
		return nil
	}

	for _, target := range targets {
		if err := d.applyCluster(ctx, target); err != nil {
			return err
		}
	}
	return nil
}

// authenticate activates the service account and selects the project.
// Project selection is never attempted once activation fails.
func (d *Deployer) authenticate(ctx context.Context) error {
	if err := d.cloud.ActivateServiceAccount(ctx, d.cfg.KeyFile); err != nil {
		return err
	}
	return d.cloud.SetProject(ctx, d.cfg.Project)
}

// discover fetches the deployment record and extracts its cluster
// targets.
func (d *Deployer) discover(ctx context.Context) ([]gcloud.ClusterTarget, error) {
	dep, err := d.cloud.DescribeDeployment(ctx, d.cfg.Deployment)
	if err != nil {
		return nil, err
	}

	targets, err := dep.ClusterTargets()
	if err != nil {
		return nil, err
	}

	log.Printf("Discovered %d cluster(s) in deployment %s", len(targets), d.cfg.Deployment)
	return targets, nil
}

// applyCluster binds kubectl to the target and applies the template
// directory to it.
func (d *Deployer) applyCluster(ctx context.Context, target gcloud.ClusterTarget) error {
	log.Printf("Deploying to cluster %s (%s)", target.Name, target.Zone)

	if err := d.cloud.GetClusterCredentials(ctx, target); err != nil {
		return err
	}

	found, err := manifest.ApplyDir(ctx, d.applier, d.cfg.TemplateDir, d.cfg.Namespace, d.vars)
	if err != nil {
		return err
	}

	log.Printf("Applied %d manifest(s) to cluster %s", found, target.Name)
	return nil
}

// Vars returns the template variables for this run.
func (d *Deployer) Vars() manifest.Vars {
	return d.vars
}

// Summary describes a completed run for the success message.
func (d *Deployer) Summary() string {
	return fmt.Sprintf("deployment %s (project %s, namespace %s)",
		d.cfg.Deployment, d.cfg.Project, d.cfg.Namespace)
}
