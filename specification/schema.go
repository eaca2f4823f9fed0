// Package specification validates Compose files against the Compose file
// schemas shipped with the docker CLI.
package specification

import (
	"github.com/docker/cli/cli/compose/loader"
	"github.com/docker/cli/cli/compose/schema"
	"github.com/pkg/errors"
)

const versionField = "version"

// Parse decodes a Compose file into the string-keyed tree the schema is
// checked against.
func Parse(data []byte) (map[string]interface{}, error) {
	config, err := loader.ParseYAML(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse Compose file")
	}
	return config, nil
}

// Version returns the Compose file format the file declares, or the latest
// one the schemas know when the file has no version.
func Version(config map[string]interface{}) string {
	return schema.Version(config)
}

// Validate uses the jsonschema of the file format to validate a Compose file,
// given as the string-keyed tree decoded from its YAML. A file without version
// is checked against the latest format.
func Validate(config map[string]interface{}) error {
	version := Version(config)
	if _, ok := config[versionField]; !ok {
		versioned := make(map[string]interface{}, len(config)+1)
		for k, v := range config {
			versioned[k] = v
		}
		versioned[versionField] = version
		config = versioned
	}
	return schema.Validate(config, version)
}

// ValidateVersion returns an error when no schema exists for version.
func ValidateVersion(version string) error {
	return Validate(map[string]interface{}{
		versionField: version,
		"services":   map[string]interface{}{},
	})
}
