package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gke-tools/gkedeploy/internal/prerequisites"
	"github.com/gke-tools/gkedeploy/internal/ui"
)

// toolStatus is the JSON shape of one prerequisite check.
type toolStatus struct {
	Name       string `json:"name"`
	Found      bool   `json:"found"`
	Path       string `json:"path,omitempty"`
	Version    string `json:"version,omitempty"`
	InstallURL string `json:"installUrl,omitempty"`
}

// Doctor reports whether the external tools a deploy run shells out to
// are installed. Returns an error when a required tool is missing so
// the exit code is usable in CI.
func Doctor(jsonOutput bool) error {
	results := checkDefaultPrereqs()

	if jsonOutput {
		return printDoctorJSON(results)
	}

	fmt.Println()
	for _, r := range results.Results {
		if r.Found {
			version := r.Version
			if version == "" {
				version = r.Path
			}
			fmt.Printf("  %s %-10s %s\n", ui.Success("[OK]"), r.Tool.Name, version)
		} else {
			fmt.Printf("  %s %-10s install: %s\n", ui.Error("[!!]"), r.Tool.Name, r.Tool.InstallURL)
		}
	}
	fmt.Println()

	return results.Error()
}

func printDoctorJSON(results *prerequisites.CheckResults) error {
	statuses := make([]toolStatus, 0, len(results.Results))
	for _, r := range results.Results {
		statuses = append(statuses, toolStatus{
			Name:       r.Tool.Name,
			Found:      r.Found,
			Path:       r.Path,
			Version:    r.Version,
			InstallURL: r.Tool.InstallURL,
		})
	}

	data, err := json.MarshalIndent(statuses, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode doctor report: %w", err)
	}
	fmt.Println(string(data))

	return results.Error()
}
