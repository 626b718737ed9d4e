package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gke-tools/gkedeploy/internal/config"
	"github.com/gke-tools/gkedeploy/internal/execx"
	"github.com/gke-tools/gkedeploy/internal/gcloud"
	"github.com/gke-tools/gkedeploy/internal/manifest"
	"github.com/gke-tools/gkedeploy/internal/prerequisites"
	testutil "github.com/gke-tools/gkedeploy/internal/testing"
)

// saveAndRestoreFactories snapshots the injectable factory variables
// and restores them when the test finishes.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()

	origRunner := newRunner
	origCloud := newCloudClient
	origApplier := newApplier
	origRunID := newRunID
	origPrereqs := checkDefaultPrereqs
	origDotenv := loadDotenv

	t.Cleanup(func() {
		newRunner = origRunner
		newCloudClient = origCloud
		newApplier = origApplier
		newRunID = origRunID
		checkDefaultPrereqs = origPrereqs
		loadDotenv = origDotenv
	})
}

// installFakeRunner routes gcloud and kubectl through a scripted
// runner and disables the real prerequisite lookups.
func installFakeRunner(t *testing.T, runner *testutil.FakeRunner) {
	t.Helper()

	newRunner = func() execx.Runner { return runner }
	newCloudClient = func(r execx.Runner) gcloud.API { return gcloud.NewClient(r) }
	newApplier = func(r execx.Runner) manifest.Applier { return kubectlApplier{r} }
	newRunID = func(revision string) (string, error) { return revision + "-deadbeef", nil }
	checkDefaultPrereqs = func() *prerequisites.CheckResults {
		return &prerequisites.CheckResults{
			Results: []prerequisites.CheckResult{
				{Tool: prerequisites.Tool{Name: "gcloud", Required: true}, Found: true, Version: "testing"},
				{Tool: prerequisites.Tool{Name: "kubectl", Required: true}, Found: true, Version: "testing"},
			},
		}
	}
	loadDotenv = func(string) error { return nil }
}

// kubectlApplier mirrors kubectl.Client's argv so tests can assert on
// recorded command lines without resolving a real binary.
type kubectlApplier struct{ runner execx.Runner }

func (k kubectlApplier) Apply(ctx context.Context, path, namespace string) error {
	_, err := k.runner.Run(ctx, "kubectl", "apply", "-f", path, "-n", namespace)
	return err
}

// missingToolResults reports kubectl as absent.
func missingToolResults() *prerequisites.CheckResults {
	missing := prerequisites.Tool{Name: "kubectl", Required: true, InstallURL: "https://kubernetes.io/docs/tasks/tools/"}
	return &prerequisites.CheckResults{
		Results: []prerequisites.CheckResult{{Tool: missing}},
		Missing: []prerequisites.Tool{missing},
	}
}

// deployFixture builds a valid key file and template directory with
// one raw manifest and one template.
func deployFixture(t *testing.T) config.Options {
	t.Helper()
	root := t.TempDir()

	keyFile := filepath.Join(root, "key.json")
	require.NoError(t, os.WriteFile(keyFile, []byte("{}"), 0o600))

	dir := filepath.Join(root, "templates")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a-service.yaml"),
		[]byte("kind: Service\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b-deployment.yaml.tmpl"),
		[]byte("image: registry/app:{{ .Revision }}\n"), 0o644))

	return config.Options{
		Namespace:      "staging",
		Deployment:     "acme-staging",
		Project:        "acme-project",
		Revision:       "4f1c99a2e8",
		KeyFile:        keyFile,
		TemplateFolder: dir,
	}
}

// describeResponse is a deployment record with the given cluster
// resources.
func describeResponse(clusters ...string) []byte {
	record := `{"resources": [`
	for i, name := range clusters {
		if i > 0 {
			record += ","
		}
		record += `{"name": "` + name + `", "type": "container.v1.cluster", "properties": "zone: europe-west1-b\n"}`
	}
	record += `]}`
	return []byte(record)
}
