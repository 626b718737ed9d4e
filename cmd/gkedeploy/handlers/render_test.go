package handlers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/gke-tools/gkedeploy/internal/testing"
)

func TestRender_FixedRunID(t *testing.T) {
	saveAndRestoreFactories(t)
	installFakeRunner(t, &testutil.FakeRunner{})

	opts := deployFixture(t)

	var out bytes.Buffer
	err := Render(RenderOptions{
		Revision:       opts.Revision,
		TemplateFolder: opts.TemplateFolder,
		RunID:          "4f1c99a2-cafef00d",
		Out:            &out,
	})
	require.NoError(t, err)

	rendered := out.String()
	assert.Contains(t, rendered, "kind: Service")
	assert.Contains(t, rendered, "image: registry/app:4f1c99a2e8")
	assert.Contains(t, rendered, "# Source: ")

	// Raw manifest and rendered template form one YAML stream.
	assert.Equal(t, 1, strings.Count(rendered, "\n---\n"))
}

func TestRender_GeneratesRunIDWhenUnset(t *testing.T) {
	saveAndRestoreFactories(t)
	installFakeRunner(t, &testutil.FakeRunner{})

	opts := deployFixture(t)

	var out bytes.Buffer
	err := Render(RenderOptions{
		Revision:       opts.Revision,
		TemplateFolder: opts.TemplateFolder,
		Out:            &out,
	})
	require.NoError(t, err)
	// installFakeRunner pins newRunID to revision + "-deadbeef".
	assert.NotEmpty(t, out.String())
}

func TestRender_MissingRevision(t *testing.T) {
	saveAndRestoreFactories(t)
	installFakeRunner(t, &testutil.FakeRunner{})
	t.Setenv("GKEDEPLOY_REVISION", "")

	err := Render(RenderOptions{TemplateFolder: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revision")
}

func TestRender_MissingTemplateDir(t *testing.T) {
	saveAndRestoreFactories(t)
	installFakeRunner(t, &testutil.FakeRunner{})
	t.Setenv("GKEDEPLOY_ENVIRONMENT", "")
	t.Setenv("GKEDEPLOY_TEMPLATE_FOLDER", "")

	err := Render(RenderOptions{Revision: "abc"})
	require.Error(t, err)
}
