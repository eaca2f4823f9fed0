package convert

import (
	"sort"
	"strings"

	"github.com/docker/docker/api/types/mount"
	"github.com/docker/inspect2compose/internal"
	"github.com/docker/inspect2compose/internal/inspect"
	"github.com/docker/inspect2compose/internal/slices"
)

// volumes returns the source:target[:mode] entries sorted by target, and the
// named volumes they use.
func (m *mapping) volumes() ([]string, []string) {
	mounts := make([]inspect.Mount, len(m.snapshot.Mounts))
	copy(mounts, m.snapshot.Mounts)
	sort.SliceStable(mounts, func(i, j int) bool {
		return mounts[i].Destination < mounts[j].Destination
	})

	var volumes, names []string
	for _, mnt := range mounts {
		var source string
		switch mount.Type(mnt.Type) {
		case mount.TypeBind:
			source = mnt.Source
		case mount.TypeVolume:
			if mnt.Name == "" || internal.IsAnonymousVolume(mnt.Name) {
				continue
			}
			source = mnt.Name
			if !slices.ContainsString(names, source) {
				names = append(names, source)
			}
		default:
			m.warnf("volumes", "skipping %s mount on %s", mnt.Type, mnt.Destination)
			continue
		}
		if source == "" || mnt.Destination == "" {
			m.warnf("volumes", "skipping incomplete %s mount", mnt.Type)
			continue
		}
		entry := source + ":" + mnt.Destination
		if options := mountOptions(mnt); len(options) > 0 {
			entry += ":" + strings.Join(options, ",")
		}
		volumes = append(volumes, entry)
	}
	sort.Strings(names)
	return volumes, names
}

func mountOptions(mnt inspect.Mount) []string {
	var options []string
	if !mnt.RW {
		options = append(options, "ro")
	}
	if mount.Type(mnt.Type) != mount.TypeBind {
		return options
	}
	for _, opt := range strings.Split(mnt.Mode, ",") {
		if opt == "z" || opt == "Z" {
			options = append(options, opt)
		}
	}
	return options
}

// networks returns either a network mode that replaces the network list, or
// the networks the container is attached to.
func (m *mapping) networks() (string, []string) {
	mode := m.snapshot.NetworkMode
	switch {
	case mode == "host", mode == "none",
		strings.HasPrefix(mode, "container:"), strings.HasPrefix(mode, "service:"):
		return mode, nil
	}
	var networks []string
	for _, name := range m.snapshot.Networks {
		if name != internal.DefaultNetwork {
			networks = append(networks, name)
		}
	}
	if len(networks) == 0 && slices.ContainsString(m.snapshot.Networks, internal.DefaultNetwork) {
		networks = []string{internal.DefaultNetwork}
	}
	sort.Strings(networks)
	return "", networks
}
