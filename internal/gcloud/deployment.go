package gcloud

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// clusterType is the Deployment Manager resource type for a GKE
// cluster in its legacy form; newer deployments use the gcp-types
// container provider instead.
const clusterType = "container.v1.cluster"

const clusterTypePrefix = "gcp-types/container-"

// Deployment is the decoded Deployment Manager record.
type Deployment struct {
	Resources []Resource `json:"resources"`
}

// Resource is a single managed resource within a deployment. The
// resource's configuration arrives as a serialized YAML blob in
// Properties (FinalProperties once the deployment has converged).
type Resource struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	Properties      string `json:"properties"`
	FinalProperties string `json:"finalProperties"`
}

// ClusterTarget identifies one cluster to receive manifests.
// Recomputed from the deployment record on every run; never cached.
type ClusterTarget struct {
	Name string `json:"name"`
	Zone string `json:"zone"`
}

// ParseDeployment decodes the JSON output of a deployment describe.
func ParseDeployment(data []byte) (*Deployment, error) {
	var dep Deployment
	if err := json.Unmarshal(data, &dep); err != nil {
		return nil, fmt.Errorf("invalid deployment record: %w", err)
	}
	return &dep, nil
}

// isCluster reports whether a resource type marks a managed GKE
// cluster.
func isCluster(resourceType string) bool {
	return resourceType == clusterType || strings.HasPrefix(resourceType, clusterTypePrefix)
}

// ClusterTargets extracts the (name, zone) pairs for every cluster
// resource in the deployment, in resource-list order. The list is not
// deduplicated or sorted; an empty result is valid and means the run
// has nothing to apply.
func (d *Deployment) ClusterTargets() ([]ClusterTarget, error) {
	var targets []ClusterTarget
	for _, res := range d.Resources {
		if !isCluster(res.Type) {
			continue
		}

		zone, err := res.zone()
		if err != nil {
			return nil, err
		}
		targets = append(targets, ClusterTarget{Name: res.Name, Zone: zone})
	}
	return targets, nil
}

// zone decodes the resource's serialized properties blob and returns
// the cluster zone. FinalProperties wins over Properties when present.
func (r *Resource) zone() (string, error) {
	blob := r.FinalProperties
	if blob == "" {
		blob = r.Properties
	}

	var props struct {
		Zone string `yaml:"zone"`
	}
	if err := yaml.Unmarshal([]byte(blob), &props); err != nil {
		return "", fmt.Errorf("invalid properties for cluster resource %s: %w", r.Name, err)
	}
	if props.Zone == "" {
		return "", fmt.Errorf("cluster resource %s has no zone", r.Name)
	}
	return props.Zone, nil
}
