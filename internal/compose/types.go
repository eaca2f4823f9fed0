package compose

import (
	"github.com/docker/inspect2compose/internal/yaml"
)

// Service is a Compose service definition. Fields are declared in the order
// they are serialized, and every field is omitted when unset.
type Service struct {
	Image         string            `yaml:"image,omitempty"`
	ContainerName string            `yaml:"container_name,omitempty"`
	Hostname      string            `yaml:"hostname,omitempty"`
	User          string            `yaml:"user,omitempty"`
	WorkingDir    string            `yaml:"working_dir,omitempty"`
	Entrypoint    []string          `yaml:"entrypoint,omitempty"`
	Command       []string          `yaml:"command,omitempty"`
	Environment   yaml.MapSlice     `yaml:"environment,omitempty"`
	Ports         []string          `yaml:"ports,omitempty"`
	Volumes       []string          `yaml:"volumes,omitempty"`
	NetworkMode   string            `yaml:"network_mode,omitempty"`
	Networks      []string          `yaml:"networks,omitempty"`
	Deploy        *Deploy           `yaml:"deploy,omitempty"`
	Logging       *Logging          `yaml:"logging,omitempty"`
	Labels        map[string]string `yaml:"labels,omitempty"`
}

// Deploy holds the restart policy and resource constraints of a service.
type Deploy struct {
	RestartPolicy *RestartPolicy `yaml:"restart_policy,omitempty"`
	Resources     *Resources     `yaml:"resources,omitempty"`
}

// RestartPolicy tells when a service container gets restarted.
type RestartPolicy struct {
	Condition   string  `yaml:"condition"`
	MaxAttempts *uint64 `yaml:"max_attempts,omitempty"`
}

// Resources are the limits and reservations of a service.
type Resources struct {
	Limits       *Resource `yaml:"limits,omitempty"`
	Reservations *Resource `yaml:"reservations,omitempty"`
}

// Resource is a set of resource amounts. CPUs and Memory are kept as
// strings, the way Compose files usually spell them.
type Resource struct {
	CPUs   string `yaml:"cpus,omitempty"`
	Memory string `yaml:"memory,omitempty"`
	Pids   *int64 `yaml:"pids,omitempty"`
}

// Logging configures the logging driver of a service.
type Logging struct {
	Driver  string            `yaml:"driver"`
	Options map[string]string `yaml:"options,omitempty"`
}

// External declares a network or volume created outside of the Compose file.
type External struct {
	External bool `yaml:"external"`
}

// Definition is a service together with the top-level resources it refers
// to.
type Definition struct {
	Name     string
	Service  Service
	Networks []string
	Volumes  []string
}
