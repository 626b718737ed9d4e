// Package main is the entry point for the gkedeploy CLI.
//
// gkedeploy deploys templated Kubernetes manifests to GKE clusters
// discovered from a Google Deployment Manager deployment. It
// authenticates a service account, reads the deployment's resource
// list to find its clusters, and applies a folder of manifests to each
// one through the gcloud and kubectl command-line tools.
//
// Commands: deploy, clusters, render, doctor, version, completion.
//
// For detailed usage information, run:
//
//	gkedeploy --help
package main

import (
	"fmt"
	"os"

	"github.com/gke-tools/gkedeploy/cmd/gkedeploy/commands"
	"github.com/gke-tools/gkedeploy/internal/ui"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Println(ui.Error("Error: " + err.Error()))
		os.Exit(1)
	}
}
