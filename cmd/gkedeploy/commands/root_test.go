package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "gkedeploy", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "deploy")
	assert.Contains(t, names, "clusters")
	assert.Contains(t, names, "render")
	assert.Contains(t, names, "doctor")
	assert.Contains(t, names, "version")
	assert.Contains(t, names, "completion")
}
