package convert

import (
	"net"
	"sort"
	"strings"

	"github.com/docker/go-connections/nat"
)

const defaultProto = "tcp"

type portEntry struct {
	port  uint64
	proto string
	spec  string
}

// ports lists the published bindings as [ip:]host:container[/proto], sorted
// by container port then protocol. Ports published on an ephemeral host
// port, as with -P, are listed as container[/proto].
func (m *mapping) ports() []string {
	var entries []portEntry
	for key, bindings := range m.snapshot.PortBindings {
		start, proto, target, ok := m.containerPort(key)
		if !ok {
			continue
		}
		for _, b := range bindings {
			entries = append(entries, portEntry{
				port:  start,
				proto: proto,
				spec:  publishedPort(b.HostIP, b.HostPort, target),
			})
		}
	}
	for _, key := range m.ephemeralPorts() {
		start, proto, target, ok := m.containerPort(key)
		if !ok {
			continue
		}
		entries = append(entries, portEntry{port: start, proto: proto, spec: target})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].port != entries[j].port {
			return entries[i].port < entries[j].port
		}
		if entries[i].proto != entries[j].proto {
			return entries[i].proto < entries[j].proto
		}
		return entries[i].spec < entries[j].spec
	})
	var ports []string
	for i, e := range entries {
		if i > 0 && e.spec == entries[i-1].spec {
			continue
		}
		ports = append(ports, e.spec)
	}
	return ports
}

// containerPort parses a "port/proto" key into the container side of a port
// entry, the protocol being left out for tcp.
func (m *mapping) containerPort(key string) (uint64, string, string, bool) {
	proto, port := nat.SplitProtoPort(key)
	start, _, err := nat.ParsePortRange(port)
	if err != nil || proto == "" {
		m.warnf("ports", "skipping malformed port %q", key)
		return 0, "", "", false
	}
	target := port
	if proto != defaultProto {
		target += "/" + proto
	}
	return start, proto, target, true
}

// ephemeralPorts returns the ports published without an explicit binding:
// all the exposed ports of a container run with -P, and the ports the engine
// bound although the container configuration does not ask for them.
func (m *mapping) ephemeralPorts() []string {
	s := m.snapshot
	var keys []string
	seen := map[string]bool{}
	add := func(key string) {
		if _, bound := s.PortBindings[key]; bound || seen[key] {
			return
		}
		seen[key] = true
		keys = append(keys, key)
	}
	if s.PublishAllPorts {
		for _, key := range s.ExposedPorts {
			add(key)
		}
	}
	for key, bindings := range s.PublishedPorts {
		if s.PublishAllPorts || len(bindings) > 0 {
			add(key)
		}
	}
	sort.Strings(keys)
	return keys
}

func publishedPort(hostIP, hostPort, target string) string {
	if isWildcard(hostIP) {
		if hostPort == "" {
			return target
		}
		return hostPort + ":" + target
	}
	if strings.Contains(hostIP, ":") {
		hostIP = "[" + hostIP + "]"
	}
	return hostIP + ":" + hostPort + ":" + target
}

func isWildcard(ip string) bool {
	if ip == "" {
		return true
	}
	parsed := net.ParseIP(ip)
	return parsed != nil && parsed.IsUnspecified()
}
