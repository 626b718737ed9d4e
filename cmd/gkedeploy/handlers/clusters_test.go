package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/gke-tools/gkedeploy/internal/testing"
)

func TestClusters_ListsTargets(t *testing.T) {
	saveAndRestoreFactories(t)

	runner := &testutil.FakeRunner{
		Script: map[string]testutil.Response{
			"gcloud deployment-manager": {Output: describeResponse("alpha", "beta")},
		},
	}
	installFakeRunner(t, runner)

	err := Clusters(context.Background(), ClustersOptions{
		Deployment: "acme-staging",
		Project:    "acme-project",
		KeyFile:    "/secrets/key.json",
	})
	require.NoError(t, err)

	lines := runner.CommandLines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "gcloud auth activate-service-account")
	assert.Contains(t, lines[1], "gcloud config set project acme-project")
	assert.Contains(t, lines[2], "deployments describe acme-staging")
}

func TestClusters_NoKeyFileSkipsActivation(t *testing.T) {
	saveAndRestoreFactories(t)

	runner := &testutil.FakeRunner{
		Script: map[string]testutil.Response{
			"gcloud deployment-manager": {Output: describeResponse()},
		},
	}
	installFakeRunner(t, runner)
	t.Setenv("GKEDEPLOY_KEY_FILE", "")

	err := Clusters(context.Background(), ClustersOptions{
		Deployment: "acme-staging",
		Project:    "acme-project",
	})
	require.NoError(t, err)
	assert.Empty(t, runner.CallsMatching("gcloud auth"))
}

func TestClusters_JSONOutput(t *testing.T) {
	saveAndRestoreFactories(t)

	runner := &testutil.FakeRunner{
		Script: map[string]testutil.Response{
			"gcloud deployment-manager": {Output: describeResponse("alpha")},
		},
	}
	installFakeRunner(t, runner)

	err := Clusters(context.Background(), ClustersOptions{
		Deployment: "acme-staging",
		Project:    "acme-project",
		KeyFile:    "/secrets/key.json",
		JSON:       true,
	})
	require.NoError(t, err)
}

func TestClusters_MissingArgs(t *testing.T) {
	saveAndRestoreFactories(t)
	runner := &testutil.FakeRunner{}
	installFakeRunner(t, runner)

	err := Clusters(context.Background(), ClustersOptions{Project: "acme-project"})
	require.Error(t, err)
	assert.Empty(t, runner.Calls)
}

func TestClusters_DescribeFailure(t *testing.T) {
	saveAndRestoreFactories(t)

	runner := &testutil.FakeRunner{
		Script: map[string]testutil.Response{
			"gcloud deployment-manager": {Err: errors.New("exit status 1")},
		},
	}
	installFakeRunner(t, runner)

	err := Clusters(context.Background(), ClustersOptions{
		Deployment: "acme-staging",
		Project:    "acme-project",
		KeyFile:    "/secrets/key.json",
	})
	require.Error(t, err)
}
