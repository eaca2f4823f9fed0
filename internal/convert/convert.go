// Package convert maps the configuration of a container to a Compose service.
package convert

import (
	"strings"

	"github.com/distribution/reference"
	"github.com/docker/inspect2compose/internal"
	"github.com/docker/inspect2compose/internal/compose"
	"github.com/docker/inspect2compose/internal/inspect"
	"github.com/docker/inspect2compose/internal/slices"
	"github.com/docker/inspect2compose/internal/yaml"
	log "github.com/sirupsen/logrus"
)

// Converter turns container snapshots into service definitions. Anomalies in
// a snapshot are logged as warnings and the field is left out, a definition is
// always produced.
type Converter struct {
	// IncludePathEnv keeps the PATH environment variable.
	IncludePathEnv bool
	// Logger receives the warnings, the standard logger is used when nil.
	Logger log.FieldLogger
}

// Convert returns the service definition equivalent to the snapshot. It only
// depends on the snapshot, converting the same snapshot twice gives the same
// definition.
func (c *Converter) Convert(s inspect.Snapshot) compose.Definition {
	m := mapping{
		snapshot:       s,
		name:           internal.ServiceNameFromContainer(s.Name),
		includePathEnv: c.IncludePathEnv,
		logger:         c.Logger,
	}
	if m.logger == nil {
		m.logger = log.StandardLogger()
	}
	return m.definition()
}

type mapping struct {
	snapshot       inspect.Snapshot
	name           string
	includePathEnv bool
	logger         log.FieldLogger
}

func (m *mapping) warnf(field, format string, args ...interface{}) {
	m.logger.WithFields(log.Fields{
		"container": m.name,
		"field":     field,
	}).Warnf(format, args...)
}

func (m *mapping) definition() compose.Definition {
	if err := internal.ValidateServiceName(m.name); err != nil {
		m.warnf("name", "%s", err)
	}
	volumes, volumeNames := m.volumes()
	networkMode, networks := m.networks()
	entrypoint, command := m.entrypointAndCommand()
	return compose.Definition{
		Name: m.name,
		Service: compose.Service{
			Image:         m.image(),
			ContainerName: m.name,
			Hostname:      m.hostname(),
			User:          m.imageOverride(m.snapshot.User, func(img *inspect.ImageConfig) string { return img.User }),
			WorkingDir:    m.imageOverride(m.snapshot.WorkingDir, func(img *inspect.ImageConfig) string { return img.WorkingDir }),
			Entrypoint:    entrypoint,
			Command:       command,
			Environment:   m.environment(),
			Ports:         m.ports(),
			Volumes:       volumes,
			NetworkMode:   networkMode,
			Networks:      networks,
			Deploy:        m.deploy(),
			Logging:       m.logging(),
			Labels:        m.labels(),
		},
		Networks: networks,
		Volumes:  volumeNames,
	}
}

func (m *mapping) image() string {
	image := m.snapshot.Image
	if image == "" {
		m.warnf("image", "container has no image reference")
		return ""
	}
	if _, err := reference.ParseAnyReference(image); err != nil {
		m.warnf("image", "image reference %q is not valid: %s", image, err)
	}
	return image
}

// hostname is left out when it is the one the engine derived from the
// container id, or the one of the host or container whose network stack the
// container shares.
func (m *mapping) hostname() string {
	hostname := m.snapshot.Hostname
	if mode := m.snapshot.NetworkMode; mode == "host" || strings.HasPrefix(mode, "container:") {
		return ""
	}
	if id := m.snapshot.ID; len(id) >= 12 && hostname == id[:12] {
		return ""
	}
	return hostname
}

// imageOverride returns value unless the image already sets it.
func (m *mapping) imageOverride(value string, fromImage func(*inspect.ImageConfig) string) string {
	if img := m.snapshot.ImageConfig; img != nil && fromImage(img) == value {
		return ""
	}
	return value
}

// entrypointAndCommand leaves out what the container inherits from its
// image. Overriding the entrypoint resets the image command, so the command
// is kept whenever the entrypoint is.
func (m *mapping) entrypointAndCommand() ([]string, []string) {
	img := m.snapshot.ImageConfig
	if img == nil {
		return nonEmpty(m.snapshot.Entrypoint), nonEmpty(m.snapshot.Command)
	}
	var entrypoint, command []string
	entrypointChanged := !slices.EqualStrings(m.snapshot.Entrypoint, img.Entrypoint)
	if entrypointChanged {
		if len(m.snapshot.Entrypoint) == 0 {
			m.warnf("entrypoint", "the image entrypoint was reset, which cannot be expressed")
		}
		entrypoint = nonEmpty(m.snapshot.Entrypoint)
	}
	if entrypointChanged || !slices.EqualStrings(m.snapshot.Command, img.Command) {
		command = nonEmpty(m.snapshot.Command)
	}
	return entrypoint, command
}

// environment keeps the order of the variables. A variable set twice keeps
// its first position and its last value.
func (m *mapping) environment() yaml.MapSlice {
	var env yaml.MapSlice
	for _, entry := range m.snapshot.Env {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			m.warnf("environment", "skipping malformed variable %q", entry)
			continue
		}
		if key == internal.PathEnvName && !m.includePathEnv {
			continue
		}
		env = yaml.Set(env, key, value)
	}
	return env
}

func (m *mapping) logging() *compose.Logging {
	cfg := m.snapshot.LogConfig
	if cfg.Type == "" || cfg.Type == m.snapshot.DefaultLoggingDriver {
		return nil
	}
	logging := &compose.Logging{Driver: cfg.Type}
	if len(cfg.Config) > 0 {
		logging.Options = cfg.Config
	}
	return logging
}

// labels drops the labels inherited from the image and the ones Compose sets
// on the containers it manages.
func (m *mapping) labels() map[string]string {
	var labels map[string]string
	for key, value := range m.snapshot.Labels {
		if strings.HasPrefix(key, internal.ComposeLabelNamespace) {
			continue
		}
		if img := m.snapshot.ImageConfig; img != nil {
			if inherited, ok := img.Labels[key]; ok && inherited == value {
				continue
			}
		}
		if labels == nil {
			labels = map[string]string{}
		}
		labels[key] = value
	}
	return labels
}

func nonEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
