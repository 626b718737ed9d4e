// Package manifest enumerates, renders, and applies Kubernetes
// manifest files from a template directory.
//
// Two kinds of files are deployable: raw manifests (*.yaml) applied
// as-is, and templated manifests (*.yaml.tmpl) expanded against the
// run's template variables before applying.
package manifest

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const (
	// Suffix marks a raw manifest file.
	Suffix = ".yaml"

	// TemplateSuffix marks a templated manifest file.
	TemplateSuffix = ".yaml.tmpl"
)

// Vars are the variables exposed to manifest templates. Immutable for
// the duration of a run.
type Vars struct {
	// Revision is the revision identifier the run was invoked with.
	Revision string

	// DeploymentID is the run identity, unique per invocation.
	DeploymentID string
}

// Applier applies a single manifest file to the currently targeted
// cluster. Implemented by kubectl.Client.
type Applier interface {
	Apply(ctx context.Context, path, namespace string) error
}

// IsRaw reports whether name is a raw manifest file.
func IsRaw(name string) bool {
	return strings.HasSuffix(name, Suffix) && !strings.HasSuffix(name, TemplateSuffix)
}

// IsTemplate reports whether name is a templated manifest file.
func IsTemplate(name string) bool {
	return strings.HasSuffix(name, TemplateSuffix)
}

// HasDeployable reports whether dir contains at least one raw or
// templated manifest file.
func HasDeployable(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("failed to read template directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsRaw(entry.Name()) || IsTemplate(entry.Name()) {
			return true, nil
		}
	}
	return false, nil
}

// ApplyDir applies every deployable file in dir to namespace, in
// directory enumeration order. Raw manifests are applied directly;
// templates are rendered first and the rendered temp file is removed
// after the apply attempt regardless of outcome.
//
// Returns the number of deployable files found. Finding none is an
// error: the directory was validated up front, so an empty result here
// means its contents changed underneath the run.
func ApplyDir(ctx context.Context, applier Applier, dir, namespace string, vars Vars) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read template directory %s: %w", dir, err)
	}

	found := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		switch {
		case IsTemplate(entry.Name()):
			found++
			if err := applyTemplate(ctx, applier, path, namespace, vars); err != nil {
				return found, err
			}
		case IsRaw(entry.Name()):
			found++
			log.Printf("Applying manifest %s", path)
			if err := applier.Apply(ctx, path, namespace); err != nil {
				return found, fmt.Errorf("apply failed for %s: %w", path, err)
			}
		}
	}

	if found == 0 {
		return 0, fmt.Errorf("no deployable manifests found in %s", dir)
	}
	return found, nil
}

// applyTemplate renders path and applies the rendered output. The temp
// file is removed whether or not the apply succeeds; errors name the
// source template, not the temp file.
func applyTemplate(ctx context.Context, applier Applier, path, namespace string, vars Vars) error {
	rendered, err := Render(path, vars)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(rendered) }()

	log.Printf("Applying template %s", path)
	if err := applier.Apply(ctx, rendered, namespace); err != nil {
		return fmt.Errorf("apply failed for %s: %w", path, err)
	}
	return nil
}
