package json

import (
	"testing"

	"github.com/docker/inspect2compose/internal/compose"
	"gotest.tools/v3/assert"
)

func TestFormat(t *testing.T) {
	doc := compose.NewDocument("3.8")
	doc.Add(compose.Definition{
		Name: "web",
		Service: compose.Service{
			Image: "nginx:1.25",
			Ports: []string{"8080:80"},
		},
		Volumes: []string{"webdata"},
	})
	out, err := (&Driver{}).Format(doc)
	assert.NilError(t, err)
	assert.Equal(t, string(out), `{
  "services": {
    "web": {
      "image": "nginx:1.25",
      "ports": [
        "8080:80"
      ]
    }
  },
  "version": "3.8",
  "volumes": {
    "webdata": {
      "external": true
    }
  }
}
`)
}
