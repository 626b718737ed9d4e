package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// tempPattern names rendered temp files so a crashed run's leftovers
// are recognisable.
const tempPattern = "gkedeploy-*.yaml"

// RenderBytes expands the template at path against vars. Templates
// reference {{ .Revision }} and {{ .DeploymentID }}; anything else is
// left to text/template's own error behavior.
func RenderBytes(path string, vars Vars) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

// Render expands the template at path into a process-local temp file
// with a manifest extension and returns the temp file's path. The
// caller owns removal of the returned file.
func Render(path string, vars Vars) (string, error) {
	rendered, err := RenderBytes(path, vars)
	if err != nil {
		return "", err
	}

	tmpfile, err := os.CreateTemp("", tempPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp manifest file: %w", err)
	}

	if _, err := tmpfile.Write(rendered); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return "", fmt.Errorf("failed to write rendered manifest: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		_ = os.Remove(tmpfile.Name())
		return "", fmt.Errorf("failed to close rendered manifest: %w", err)
	}

	return tmpfile.Name(), nil
}
