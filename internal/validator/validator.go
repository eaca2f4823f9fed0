// Package validator checks the consistency of a Compose file beyond what its
// schema can express.
package validator

import (
	"sort"
	"strings"

	"github.com/docker/inspect2compose/internal/validator/rules"
)

type Validator struct {
	Rules  []rules.Rule
	errors []error
}

type ValidationError struct {
	Errors []error
}

type ValidationCallback func(string, string, interface{})

func (v ValidationError) Error() string {
	parts := []string{}
	for _, err := range v.Errors {
		parts = append(parts, "* "+err.Error())
	}

	sort.Strings(parts)
	parts = append([]string{"Compose file validation failed:"}, parts...)

	return strings.Join(parts, "\n")
}

type Config func(*Validator)

func NewValidator(opts ...Config) Validator {
	validator := Validator{}
	for _, opt := range opts {
		opt(&validator)
	}
	return validator
}

func WithUndeclaredVolumeRule() Config {
	return func(v *Validator) {
		v.Rules = append(v.Rules, rules.NewUndeclaredVolumeRule())
	}
}

func WithUndeclaredNetworkRule() Config {
	return func(v *Validator) {
		v.Rules = append(v.Rules, rules.NewUndeclaredNetworkRule())
	}
}

func NewValidatorWithDefaults() Validator {
	return NewValidator(
		WithUndeclaredVolumeRule(),
		WithUndeclaredNetworkRule(),
	)
}

// Validate validates the Compose file, given as the string-keyed tree decoded
// from its YAML. It returns a ValidationError that contains all the
// validation errors (if any), nil otherwise
func (v *Validator) Validate(config map[string]interface{}) error {
	// First phase, the rules collect all the dependent values they need
	v.visitAll("", config, v.collect)
	// Second phase, validate the compose file
	v.visitAll("", config, v.validate)

	if len(v.errors) > 0 {
		return ValidationError{
			Errors: v.errors,
		}
	}
	return nil
}

func (v *Validator) collect(parent string, key string, value interface{}) {
	for _, rule := range v.Rules {
		rule.Collect(parent, key, value)
	}
}

func (v *Validator) validate(parent string, key string, value interface{}) {
	for _, rule := range v.Rules {
		if rule.Accept(parent, key) {
			verrs := rule.Validate(value)
			if len(verrs) > 0 {
				v.errors = append(v.errors, verrs...)
			}
		}
	}
}

func (v *Validator) visitAll(parent string, cfgMap interface{}, cb ValidationCallback) {
	m, ok := cfgMap.(map[string]interface{})
	if !ok {
		return
	}

	for key, value := range m {
		switch value := value.(type) {
		case string:
			continue
		default:
			cb(parent, key, value)

			path := parent + "." + key
			if parent == "" {
				path = key
			}

			sub, ok := m[key].(map[string]interface{})
			if ok {
				v.visitAll(path, sub, cb)
			}
		}
	}
}
