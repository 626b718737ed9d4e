package kubectl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/gke-tools/gkedeploy/internal/testing"
)

func TestApply(t *testing.T) {
	runner := &testutil.FakeRunner{}
	client := NewClient(runner)

	err := client.Apply(context.Background(), "manifests/staging/app.yaml", "staging")
	require.NoError(t, err)

	require.Len(t, runner.Calls, 1)
	assert.Equal(t,
		"kubectl apply -f manifests/staging/app.yaml -n staging",
		runner.Calls[0].Line())
}

func TestApply_Failure(t *testing.T) {
	runner := &testutil.FakeRunner{
		Script: map[string]testutil.Response{
			"kubectl apply": {Err: errors.New("exit status 1")},
		},
	}
	client := NewClient(runner)

	err := client.Apply(context.Background(), "manifests/staging/app.yaml", "staging")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifests/staging/app.yaml")
}
