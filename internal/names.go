package internal

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// StdoutTarget is the output target writing to the standard output
	StdoutTarget = "-"
	// StdinSource is the input file name reading from the standard input
	StdinSource = "-"

	// DefaultNetwork is the network containers join when none is given
	DefaultNetwork = "bridge"
	// DefaultLoggingDriver is assumed when the engine does not report its own
	DefaultLoggingDriver = "json-file"

	// ComposeLabelNamespace prefixes the labels Compose puts on the containers it manages
	ComposeLabelNamespace = "com.docker.compose."

	// PathEnvName is the environment variable left out unless explicitly requested
	PathEnvName = "PATH"
)

var (
	serviceNameRe     = regexp.MustCompile("^[a-zA-Z0-9._-]+$")
	anonymousVolumeRe = regexp.MustCompile("^[a-f0-9]{64}$")
)

// ServiceNameFromContainer takes a container name as reported by the engine
// and returns the matching service name
func ServiceNameFromContainer(containerName string) string {
	return strings.TrimPrefix(containerName, "/")
}

// ValidateServiceName takes a service name and returns an error if Compose
// would not accept it
func ValidateServiceName(name string) error {
	if serviceNameRe.MatchString(name) {
		return nil
	}
	return fmt.Errorf(
		"invalid service name: %q ; service names must contain only letters, numbers, '.', '-' and '_' (regexp: %q)",
		name,
		serviceNameRe.String(),
	)
}

// IsAnonymousVolume returns true if the volume name was generated by the engine
func IsAnonymousVolume(name string) bool {
	return anonymousVolumeRe.MatchString(name)
}
