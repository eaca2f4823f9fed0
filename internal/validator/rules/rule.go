package rules

import (
	"strings"
)

// Rule is a check run on every non-string entry of a Compose file. Collect
// sees all the entries before Validate is called on the accepted ones.
type Rule interface {
	Collect(path string, key string, value interface{})
	Accept(parent string, key string) bool
	Validate(value interface{}) []error
}

// serviceName returns the service an entry under "services.<name>" belongs to.
func serviceName(parent string) (string, bool) {
	if !strings.HasPrefix(parent, "services.") {
		return "", false
	}
	name := strings.TrimPrefix(parent, "services.")
	return name, name != "" && !strings.Contains(name, ".")
}
