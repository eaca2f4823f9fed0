package yaml

import (
	"github.com/docker/inspect2compose/internal/compose"
	"github.com/docker/inspect2compose/internal/formatter"
)

func init() {
	formatter.Register("yaml", &Driver{})
}

// Driver is the yaml implementation of formatter drivers.
type Driver struct{}

// Format creates a YAML document, keeping the order of the document keys.
func (d *Driver) Format(doc *compose.Document) ([]byte, error) {
	return doc.Marshal()
}
