package handlers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gke-tools/gkedeploy/internal/config"
	"github.com/gke-tools/gkedeploy/internal/manifest"
)

// RenderOptions are the render command's inputs.
type RenderOptions struct {
	Revision       string
	Environment    string
	TemplateFolder string

	// RunID substitutes a fixed run identity; one is generated from
	// Revision when empty.
	RunID string

	// Out receives the rendered documents. Defaults to os.Stdout.
	Out io.Writer
}

// Render expands every deployable file in the template directory to
// Out, separated as a multi-document YAML stream, without touching any
// cluster. Useful for reviewing what a deploy would apply.
func Render(opts RenderOptions) error {
	if opts.Revision == "" {
		opts.Revision = os.Getenv(config.EnvRevision)
	}
	if opts.Environment == "" {
		opts.Environment = os.Getenv(config.EnvEnvironment)
	}
	if opts.TemplateFolder == "" {
		opts.TemplateFolder = os.Getenv(config.EnvTemplateFolder)
	}
	if opts.Revision == "" {
		return fmt.Errorf("missing required revision (%s)", config.EnvRevision)
	}

	dir, err := config.ResolveTemplateDir(opts.Environment, opts.TemplateFolder)
	if err != nil {
		return err
	}

	id := opts.RunID
	if id == "" {
		if id, err = newRunID(opts.Revision); err != nil {
			return err
		}
	}
	vars := manifest.Vars{Revision: opts.Revision, DeploymentID: id}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read template directory %s: %w", dir, err)
	}

	first := true
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		var content []byte
		switch {
		case manifest.IsTemplate(entry.Name()):
			if content, err = manifest.RenderBytes(path, vars); err != nil {
				return err
			}
		case manifest.IsRaw(entry.Name()):
			if content, err = os.ReadFile(path); err != nil {
				return fmt.Errorf("failed to read manifest %s: %w", path, err)
			}
		default:
			continue
		}

		if !first {
			fmt.Fprintln(out, "---")
		}
		first = false

		fmt.Fprintf(out, "# Source: %s\n", path)
		if _, err := out.Write(content); err != nil {
			return err
		}
		if len(content) > 0 && content[len(content)-1] != '\n' {
			fmt.Fprintln(out)
		}
	}

	return nil
}
