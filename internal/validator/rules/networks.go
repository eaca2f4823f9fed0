package rules

import (
	"fmt"
	"sort"
)

// the network Compose creates for a project without declaration
const defaultNetwork = "default"

type undeclaredNetworkRule struct {
	networks map[string]interface{}
	service  string
}

// NewUndeclaredNetworkRule reports services attached to networks missing
// from the top-level networks section.
func NewUndeclaredNetworkRule() Rule {
	return &undeclaredNetworkRule{
		networks: map[string]interface{}{},
	}
}

func (s *undeclaredNetworkRule) Collect(parent string, key string, value interface{}) {
	if parent == "networks" {
		s.networks[key] = value
	}
}

func (s *undeclaredNetworkRule) Accept(parent string, key string) bool {
	service, ok := serviceName(parent)
	if !ok || key != "networks" {
		return false
	}
	s.service = service
	return true
}

func (s *undeclaredNetworkRule) Validate(value interface{}) []error {
	var names []string
	switch value := value.(type) {
	case []interface{}:
		for _, v := range value {
			if name, ok := v.(string); ok {
				names = append(names, name)
			}
		}
	case map[string]interface{}:
		for name := range value {
			names = append(names, name)
		}
		sort.Strings(names)
	}
	var errs []error
	for _, name := range names {
		if name == defaultNetwork {
			continue
		}
		if _, declared := s.networks[name]; !declared {
			errs = append(errs, fmt.Errorf("service %q refers to undefined network %q", s.service, name))
		}
	}
	return errs
}
