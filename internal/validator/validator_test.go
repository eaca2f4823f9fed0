package validator

import (
	"testing"

	"github.com/docker/inspect2compose/internal/yaml"
	"gotest.tools/v3/assert"
)

type mockRule struct {
	acceptCalled   bool
	validateCalled bool
}

func (m *mockRule) Collect(path string, key string, value interface{}) {

}

func (m *mockRule) Accept(path string, key string) bool {
	m.acceptCalled = true
	return true
}

func (m *mockRule) Validate(value interface{}) []error {
	m.validateCalled = true
	return nil
}

func parse(t *testing.T, data string) map[string]interface{} {
	t.Helper()
	var raw yaml.MapSlice
	assert.NilError(t, yaml.Unmarshal([]byte(data), &raw))
	config, err := yaml.ConvertToStringKeys(raw)
	assert.NilError(t, err)
	return config.(map[string]interface{})
}

func TestValidate(t *testing.T) {
	config := parse(t, `
version: '3.7'
services:
  nginx:
    image: nginx
    volumes:
      - ./foo:/data
`)
	r := &mockRule{}
	v := NewValidator(func(v *Validator) {
		v.Rules = append(v.Rules, r)
	})

	err := v.Validate(config)
	assert.NilError(t, err)
	assert.Equal(t, r.acceptCalled, true)
	assert.Equal(t, r.validateCalled, true)
}

func TestValidateWithDefaults(t *testing.T) {
	config := parse(t, `
services:
  web:
    image: nginx
    volumes:
      - ./html:/usr/share/nginx/html
      - webdata:/data
      - /cache
    networks:
      - front
      - default
  db:
    image: postgres
    volumes:
      - pgdata:/var/lib/postgresql/data
    networks:
      back:
        aliases: [database]
volumes:
  webdata:
networks:
  front:
    external: true
`)
	v := NewValidatorWithDefaults()
	err := v.Validate(config)
	assert.Error(t, err, `Compose file validation failed:
* service "db" refers to undefined network "back"
* service "db" refers to undefined volume "pgdata"`)
}

func TestValidateValidFile(t *testing.T) {
	config := parse(t, `
services:
  web:
    image: nginx
    volumes:
      - type: volume
        source: webdata
        target: /data
      - type: bind
        source: ./html
        target: /usr/share/nginx/html
volumes:
  webdata: {}
`)
	v := NewValidatorWithDefaults()
	assert.NilError(t, v.Validate(config))
}
