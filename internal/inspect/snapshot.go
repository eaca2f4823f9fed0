package inspect

import (
	"sort"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/go-connections/nat"
)

// Snapshot is the configuration of one container, as reported by the engine
// at inspection time.
type Snapshot struct {
	ID      string
	Name    string
	Created time.Time

	// Image is the reference the container was created from, ImageID the
	// resolved image.
	Image   string
	ImageID string

	Hostname   string
	User       string
	WorkingDir string
	Entrypoint []string
	Command    []string
	Env        []string
	Labels     map[string]string

	// PortBindings is keyed by "port/proto", as the engine reports it.
	PortBindings map[string][]PortBinding
	// PublishAllPorts is set for containers run with -P: every exposed port
	// is published on an ephemeral host port.
	PublishAllPorts bool
	// ExposedPorts lists the "port/proto" keys the container exposes.
	ExposedPorts []string
	// PublishedPorts holds the bindings the engine actually made, they
	// include the ephemeral ones missing from PortBindings.
	PublishedPorts map[string][]PortBinding
	Mounts       []Mount
	NetworkMode  string
	Networks     []string

	RestartPolicy RestartPolicy
	Resources     Resources
	LogConfig     LogConfig

	// ImageConfig is nil when the image could not be inspected.
	ImageConfig *ImageConfig
	// DefaultLoggingDriver is the logging driver of the engine.
	DefaultLoggingDriver string
}

// PortBinding is a host side binding of a container port.
type PortBinding struct {
	HostIP   string
	HostPort string
}

// Mount is a bind mount, volume or other filesystem attached to a container.
type Mount struct {
	Type        string
	Name        string
	Source      string
	Destination string
	Mode        string
	RW          bool
}

// RestartPolicy of a container.
type RestartPolicy struct {
	Name              string
	MaximumRetryCount int
}

// Resources holds the limits set on a container. Zero means unset.
type Resources struct {
	NanoCPUs          int64
	CPUQuota          int64
	CPUPeriod         int64
	Memory            int64
	MemoryReservation int64
	PidsLimit         *int64
}

// LogConfig is the logging driver of a container and its options.
type LogConfig struct {
	Type   string
	Config map[string]string
}

// ImageConfig holds the defaults a container inherits from its image.
type ImageConfig struct {
	Entrypoint []string
	Command    []string
	Env        []string
	User       string
	WorkingDir string
	Labels     map[string]string
}

func newSnapshot(resp container.InspectResponse) Snapshot {
	var s Snapshot
	if base := resp.ContainerJSONBase; base != nil {
		s.ID = base.ID
		s.Name = base.Name
		s.ImageID = base.Image
		if created, err := time.Parse(time.RFC3339Nano, base.Created); err == nil {
			s.Created = created
		}
		if hc := base.HostConfig; hc != nil {
			s.NetworkMode = string(hc.NetworkMode)
			s.PortBindings = portBindings(hc.PortBindings)
			s.PublishAllPorts = hc.PublishAllPorts
			s.RestartPolicy = RestartPolicy{
				Name:              string(hc.RestartPolicy.Name),
				MaximumRetryCount: hc.RestartPolicy.MaximumRetryCount,
			}
			s.Resources = Resources{
				NanoCPUs:          hc.NanoCPUs,
				CPUQuota:          hc.CPUQuota,
				CPUPeriod:         hc.CPUPeriod,
				Memory:            hc.Memory,
				MemoryReservation: hc.MemoryReservation,
				PidsLimit:         hc.PidsLimit,
			}
			s.LogConfig = LogConfig{
				Type:   hc.LogConfig.Type,
				Config: hc.LogConfig.Config,
			}
		}
	}
	if cfg := resp.Config; cfg != nil {
		s.Image = cfg.Image
		s.Hostname = cfg.Hostname
		s.User = cfg.User
		s.WorkingDir = cfg.WorkingDir
		s.Entrypoint = cfg.Entrypoint
		s.Command = cfg.Cmd
		s.Env = cfg.Env
		s.Labels = cfg.Labels
		for port := range cfg.ExposedPorts {
			s.ExposedPorts = append(s.ExposedPorts, string(port))
		}
		sort.Strings(s.ExposedPorts)
	}
	for _, m := range resp.Mounts {
		s.Mounts = append(s.Mounts, Mount{
			Type:        string(m.Type),
			Name:        m.Name,
			Source:      m.Source,
			Destination: m.Destination,
			Mode:        m.Mode,
			RW:          m.RW,
		})
	}
	if ns := resp.NetworkSettings; ns != nil {
		for name := range ns.Networks {
			s.Networks = append(s.Networks, name)
		}
		sort.Strings(s.Networks)
		s.PublishedPorts = portBindings(ns.Ports)
	}
	return s
}

func portBindings(ports nat.PortMap) map[string][]PortBinding {
	if len(ports) == 0 {
		return nil
	}
	bindings := make(map[string][]PortBinding, len(ports))
	for port, hostBindings := range ports {
		var list []PortBinding
		for _, b := range hostBindings {
			list = append(list, PortBinding{HostIP: b.HostIP, HostPort: b.HostPort})
		}
		bindings[string(port)] = list
	}
	return bindings
}

func newImageConfig(img image.InspectResponse) *ImageConfig {
	if img.Config == nil {
		return &ImageConfig{}
	}
	return &ImageConfig{
		Entrypoint: img.Config.Entrypoint,
		Command:    img.Config.Cmd,
		Env:        img.Config.Env,
		User:       img.Config.User,
		WorkingDir: img.Config.WorkingDir,
		Labels:     img.Config.Labels,
	}
}
