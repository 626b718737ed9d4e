// Package handlers implements the business logic for CLI commands.
//
// Handlers are framework-agnostic and can be tested independently of
// the CLI framework; external collaborators are created through
// package-level factory variables that tests replace.
package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/gke-tools/gkedeploy/internal/config"
	"github.com/gke-tools/gkedeploy/internal/deploy"
	"github.com/gke-tools/gkedeploy/internal/execx"
	"github.com/gke-tools/gkedeploy/internal/gcloud"
	"github.com/gke-tools/gkedeploy/internal/kubectl"
	"github.com/gke-tools/gkedeploy/internal/manifest"
	"github.com/gke-tools/gkedeploy/internal/prerequisites"
	"github.com/gke-tools/gkedeploy/internal/runid"
	"github.com/gke-tools/gkedeploy/internal/ui"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newRunner creates the command runner shared by gcloud and kubectl.
	newRunner = func() execx.Runner {
		return &execx.ShellRunner{}
	}

	// newCloudClient creates the gcloud client.
	newCloudClient = func(r execx.Runner) gcloud.API {
		return gcloud.NewClient(r)
	}

	// newApplier creates the kubectl client.
	newApplier = func(r execx.Runner) manifest.Applier {
		return kubectl.NewClient(r)
	}

	// newRunID derives the run identity.
	newRunID = runid.Default

	// checkDefaultPrereqs runs prerequisite checks.
	checkDefaultPrereqs = prerequisites.CheckDefault

	// loadDotenv loads environment variables from an env file.
	loadDotenv = config.LoadDotenv
)

// DeployOptions are the deploy command's inputs.
type DeployOptions struct {
	config.Options

	// EnvFile is an optional env file loaded before reading the
	// environment.
	EnvFile string
}

// Deploy runs the full deployment workflow:
//  1. Loads and validates the run configuration (args, flags, env)
//  2. Verifies gcloud and kubectl are installed
//  3. Authenticates the service account and selects the project
//  4. Discovers target clusters from the Deployment Manager record
//  5. Applies the template directory to each cluster in order
//
// Any step's failure aborts the run; clusters already applied stay
// applied.
func Deploy(ctx context.Context, opts DeployOptions) error {
	if err := loadDotenv(opts.EnvFile); err != nil {
		return err
	}

	cfg, err := config.New(config.FromEnv(opts.Options))
	if err != nil {
		return err
	}

	if err := checkPrerequisites(); err != nil {
		return err
	}

	id, err := newRunID(cfg.Revision)
	if err != nil {
		return err
	}
	log.Printf("Deploying %s revision %s (run %s)", cfg.Deployment, cfg.Revision, id)

	runner := newRunner()
	deployer := deploy.New(cfg, newCloudClient(runner), newApplier(runner), id)
	if err := deployer.Run(ctx); err != nil {
		return err
	}

	fmt.Println(ui.Success("Deploy complete: " + deployer.Summary()))
	return nil
}

// checkPrerequisites verifies the required client tools are available
// before any external command is attempted.
func checkPrerequisites() error {
	results := checkDefaultPrereqs()

	for _, r := range results.Results {
		if r.Found {
			version := r.Version
			if version == "" {
				version = "unknown version"
			}
			log.Printf("  Found %s (%s)", r.Tool.Name, version)
		}
	}

	if err := results.Error(); err != nil {
		return fmt.Errorf("prerequisites check failed: %w", err)
	}
	return nil
}
