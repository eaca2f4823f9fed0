package json

import (
	"encoding/json"

	"github.com/docker/inspect2compose/internal/compose"
	"github.com/docker/inspect2compose/internal/formatter"
	"github.com/pkg/errors"
)

func init() {
	formatter.Register("json", &Driver{})
}

// Driver is the json implementation of formatter drivers.
type Driver struct{}

// Format creates a JSON document. Keys are sorted.
func (d *Driver) Format(doc *compose.Document) ([]byte, error) {
	tree, err := doc.Tree()
	if err != nil {
		return nil, err
	}
	result, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to produce json structure")
	}
	return append(result, '\n'), nil
}
