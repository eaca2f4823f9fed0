package specification

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func parse(t *testing.T, data string) map[string]interface{} {
	t.Helper()
	config, err := Parse([]byte(data))
	assert.NilError(t, err)
	return config
}

func TestValidateCompose(t *testing.T) {
	config := parse(t, `version: "3.8"
services:
  web:
    image: nginx
    ports:
    - "8080:80"
    - 443
    environment:
      DEBUG: "1"
      WORKERS: 4
    networks:
    - front
    healthcheck:
      test: ["CMD", "curl", "-f", "http://localhost"]
      interval: 30s
    deploy:
      replicas: 2
      resources:
        limits:
          cpus: "0.5"
          memory: 512M
networks:
  front:
    external: true
volumes:
  pgdata:
x-common:
  anything: goes
`)
	assert.NilError(t, Validate(config))
}

func TestValidateWithoutVersion(t *testing.T) {
	config := parse(t, "services:\n  web:\n    image: nginx\n")
	assert.NilError(t, Validate(config))
	_, hasVersion := config["version"]
	assert.Check(t, !hasVersion)
}

func TestValidateErrors(t *testing.T) {
	for _, testcase := range []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "services-as-list",
			content:  "version: \"3.8\"\nservices:\n- web\n",
			expected: "services must be a mapping",
		},
		{
			name:     "unknown-top-level-key",
			content:  "version: \"3.8\"\nservices: {}\nservces: {}\n",
			expected: "servces",
		},
		{
			name:     "image-not-a-string",
			content:  "version: \"3.8\"\nservices:\n  web:\n    image: 42\n",
			expected: "services.web.image",
		},
		{
			name:     "healthcheck-not-a-mapping",
			content:  "version: \"3.8\"\nservices:\n  web:\n    image: nginx\n    healthcheck: 42\n",
			expected: "services.web.healthcheck",
		},
		{
			name:     "replicas-not-a-number",
			content:  "version: \"3.8\"\nservices:\n  web:\n    image: nginx\n    deploy:\n      replicas: many\n",
			expected: "services.web.deploy.replicas",
		},
		{
			name:     "resources-not-a-mapping",
			content:  "version: \"3.8\"\nservices:\n  web:\n    image: nginx\n    deploy:\n      resources: 5\n",
			expected: "services.web.deploy.resources",
		},
		{
			name:     "unknown-service-key",
			content:  "version: \"3.8\"\nservices:\n  web:\n    image: nginx\n    restart_polcy: always\n",
			expected: "restart_polcy",
		},
		{
			name:     "unsupported-version",
			content:  "version: \"2.4\"\nservices: {}\n",
			expected: "unsupported Compose file version: 2.4",
		},
	} {
		t.Run(testcase.name, func(t *testing.T) {
			assert.ErrorContains(t, Validate(parse(t, testcase.content)), testcase.expected)
		})
	}
}

func TestParseNotAMapping(t *testing.T) {
	_, err := Parse([]byte("- web\n- db\n"))
	assert.ErrorContains(t, err, "failed to parse Compose file")
}

func TestValidateVersion(t *testing.T) {
	assert.NilError(t, ValidateVersion("3.8"))
	assert.Check(t, is.ErrorContains(ValidateVersion("3.99"), "unsupported Compose file version: 3.99"))
}
