package convert

import (
	"strconv"

	units "github.com/docker/go-units"
	"github.com/docker/inspect2compose/internal/compose"
)

const defaultCPUPeriod = 100000

func (m *mapping) deploy() *compose.Deploy {
	deploy := &compose.Deploy{
		RestartPolicy: m.restartPolicy(),
		Resources:     m.resources(),
	}
	if deploy.RestartPolicy == nil && deploy.Resources == nil {
		return nil
	}
	return deploy
}

func (m *mapping) restartPolicy() *compose.RestartPolicy {
	policy := m.snapshot.RestartPolicy
	switch policy.Name {
	case "", "no":
		return nil
	case "always", "unless-stopped":
		return &compose.RestartPolicy{Condition: "any"}
	case "on-failure":
		p := &compose.RestartPolicy{Condition: "on-failure"}
		if policy.MaximumRetryCount > 0 {
			attempts := uint64(policy.MaximumRetryCount)
			p.MaxAttempts = &attempts
		}
		return p
	default:
		m.warnf("restart_policy", "unknown restart policy %q", policy.Name)
		return nil
	}
}

// resources only keeps the values set on the container, the block is nil
// when there is none.
func (m *mapping) resources() *compose.Resources {
	r := m.snapshot.Resources
	limits := &compose.Resource{
		CPUs:   m.cpus(),
		Memory: m.memory("memory", r.Memory),
	}
	if r.PidsLimit != nil {
		switch pids := *r.PidsLimit; {
		case pids > 0:
			limits.Pids = &pids
		case pids < -1:
			m.warnf("pids", "skipping invalid pids limit %d", pids)
		}
	}
	reservations := &compose.Resource{
		Memory: m.memory("memory_reservation", r.MemoryReservation),
	}

	resources := &compose.Resources{}
	if *limits != (compose.Resource{}) {
		resources.Limits = limits
	}
	if *reservations != (compose.Resource{}) {
		resources.Reservations = reservations
	}
	if resources.Limits == nil && resources.Reservations == nil {
		return nil
	}
	return resources
}

func (m *mapping) cpus() string {
	r := m.snapshot.Resources
	switch {
	case r.NanoCPUs < 0, r.CPUQuota < 0, r.CPUPeriod < 0:
		m.warnf("cpus", "skipping negative CPU limit")
		return ""
	case r.NanoCPUs > 0:
		return formatCPUs(float64(r.NanoCPUs) / 1e9)
	case r.CPUQuota > 0:
		period := r.CPUPeriod
		if period == 0 {
			period = defaultCPUPeriod
		}
		return formatCPUs(float64(r.CPUQuota) / float64(period))
	}
	return ""
}

func formatCPUs(cpus float64) string {
	return strconv.FormatFloat(cpus, 'f', -1, 64)
}

// memory renders a byte count with a binary unit when that is exact.
func (m *mapping) memory(field string, bytes int64) string {
	switch {
	case bytes < 0:
		m.warnf(field, "skipping negative memory value %d", bytes)
		return ""
	case bytes == 0:
		return ""
	}
	human := units.BytesSize(float64(bytes))
	if parsed, err := units.RAMInBytes(human); err == nil && parsed == bytes {
		return human
	}
	return strconv.FormatInt(bytes, 10)
}
