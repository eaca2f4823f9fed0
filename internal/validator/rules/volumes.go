package rules

import (
	"fmt"
	"path/filepath"
	"strings"
)

type undeclaredVolumeRule struct {
	volumes map[string]interface{}
	service string
}

// NewUndeclaredVolumeRule reports services mounting named volumes missing
// from the top-level volumes section.
func NewUndeclaredVolumeRule() Rule {
	return &undeclaredVolumeRule{
		volumes: map[string]interface{}{},
	}
}

func (s *undeclaredVolumeRule) Collect(parent string, key string, value interface{}) {
	if parent == "volumes" {
		s.volumes[key] = value
	}
}

func (s *undeclaredVolumeRule) Accept(parent string, key string) bool {
	service, ok := serviceName(parent)
	if !ok || key != "volumes" {
		return false
	}
	s.service = service
	return true
}

func (s *undeclaredVolumeRule) Validate(value interface{}) []error {
	list, ok := value.([]interface{})
	if !ok {
		return nil
	}
	var errs []error
	for _, v := range list {
		var source string
		switch v := v.(type) {
		case string:
			parts := strings.Split(v, ":")
			if len(parts) <= 1 {
				// anonymous volume
				continue
			}
			source = parts[0]
		case map[string]interface{}:
			if t, _ := v["type"].(string); t != "volume" {
				continue
			}
			source, _ = v["source"].(string)
		}
		if source == "" || isPath(source) {
			continue
		}
		if _, declared := s.volumes[source]; !declared {
			errs = append(errs, fmt.Errorf("service %q refers to undefined volume %q", s.service, source))
		}
	}
	return errs
}

func isPath(source string) bool {
	return filepath.IsAbs(source) ||
		strings.HasPrefix(source, "/") ||
		strings.HasPrefix(source, ".") ||
		strings.HasPrefix(source, "~") ||
		strings.Contains(source, "$")
}
