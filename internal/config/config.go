// Package config builds and validates the deployment configuration
// from positional arguments, flags, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/gke-tools/gkedeploy/internal/manifest"
)

// Environment variable names. Flags override these.
const (
	EnvRevision       = "GKEDEPLOY_REVISION"
	EnvKeyFile        = "GKEDEPLOY_KEY_FILE"
	EnvEnvironment    = "GKEDEPLOY_ENVIRONMENT"
	EnvTemplateFolder = "GKEDEPLOY_TEMPLATE_FOLDER"
)

// templateRoot is the directory holding per-environment manifest
// folders when no explicit template folder is given.
const templateRoot = "manifests"

// Options are the raw inputs to a run before validation.
type Options struct {
	// Positional arguments.
	Namespace  string
	Deployment string
	Project    string

	// From flags or environment.
	Revision       string
	KeyFile        string
	Environment    string
	TemplateFolder string
}

// Config is the validated, read-only configuration for one run.
type Config struct {
	Namespace   string
	Deployment  string
	Project     string
	Revision    string
	KeyFile     string
	TemplateDir string
}

// LoadDotenv loads environment variables from an env file. When path
// is empty a missing ./.env is not an error; an explicitly named file
// must exist.
func LoadDotenv(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// FromEnv fills the environment-sourced fields of opts that are still
// empty.
func FromEnv(opts Options) Options {
	if opts.Revision == "" {
		opts.Revision = os.Getenv(EnvRevision)
	}
	if opts.KeyFile == "" {
		opts.KeyFile = os.Getenv(EnvKeyFile)
	}
	if opts.Environment == "" {
		opts.Environment = os.Getenv(EnvEnvironment)
	}
	if opts.TemplateFolder == "" {
		opts.TemplateFolder = os.Getenv(EnvTemplateFolder)
	}
	return opts
}

// New validates opts and returns the run configuration. All failures
// here are usage errors raised before any external command runs.
func New(opts Options) (*Config, error) {
	required := []struct {
		name, value string
	}{
		{"namespace", opts.Namespace},
		{"deployment name", opts.Deployment},
		{"project id", opts.Project},
		{"revision (" + EnvRevision + ")", opts.Revision},
		{"key file (" + EnvKeyFile + ")", opts.KeyFile},
	}
	for _, field := range required {
		if field.value == "" {
			return nil, fmt.Errorf("missing required %s", field.name)
		}
	}
	if opts.Environment == "" && opts.TemplateFolder == "" {
		return nil, fmt.Errorf("missing required environment (%s) or template folder (%s)", EnvEnvironment, EnvTemplateFolder)
	}

	if err := requireFile(opts.KeyFile, "key file"); err != nil {
		return nil, err
	}

	templateDir, err := ResolveTemplateDir(opts.Environment, opts.TemplateFolder)
	if err != nil {
		return nil, err
	}

	return &Config{
		Namespace:   opts.Namespace,
		Deployment:  opts.Deployment,
		Project:     opts.Project,
		Revision:    opts.Revision,
		KeyFile:     opts.KeyFile,
		TemplateDir: templateDir,
	}, nil
}

// ResolveTemplateDir resolves and validates the template directory: an
// explicit override wins, otherwise the default manifests/<environment>
// folder. The directory must exist and contain at least one deployable
// file.
func ResolveTemplateDir(environment, override string) (string, error) {
	templateDir := override
	if templateDir == "" {
		if environment == "" {
			return "", fmt.Errorf("missing required environment (%s) or template folder (%s)", EnvEnvironment, EnvTemplateFolder)
		}
		templateDir = filepath.Join(templateRoot, environment)
	}
	if err := requireDir(templateDir); err != nil {
		return "", err
	}

	deployable, err := manifest.HasDeployable(templateDir)
	if err != nil {
		return "", err
	}
	if !deployable {
		return "", fmt.Errorf("template directory %s contains no %s or %s files",
			templateDir, manifest.Suffix, manifest.TemplateSuffix)
	}
	return templateDir, nil
}

func requireFile(path, what string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s %s does not exist", what, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%s %s is a directory", what, path)
	}
	return nil
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("template directory %s does not exist", path)
	}
	if !info.IsDir() {
		return fmt.Errorf("template directory %s is not a directory", path)
	}
	return nil
}
