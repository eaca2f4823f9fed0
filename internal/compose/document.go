package compose

import (
	"fmt"
	"io"
	"os"

	"github.com/docker/inspect2compose/internal"
	"github.com/docker/inspect2compose/internal/errdefs"
	"github.com/docker/inspect2compose/internal/validator"
	"github.com/docker/inspect2compose/internal/yaml"
	"github.com/docker/inspect2compose/specification"
	"github.com/docker/inspect2compose/utils"
	"github.com/pkg/errors"
)

const (
	keyVersion  = "version"
	keyServices = "services"
	keyNetworks = "networks"
	keyVolumes  = "volumes"
)

// Document is a Compose file. It keeps the order of the top-level keys and
// of the services, so that merging into an existing file only changes the
// entries being added.
type Document struct {
	root yaml.MapSlice
}

// NewDocument returns an empty Compose file. The top-level version is only
// written when version is not empty.
func NewDocument(version string) *Document {
	d := &Document{}
	if version != "" {
		d.root = yaml.Set(d.root, keyVersion, version)
	}
	d.root = yaml.Set(d.root, keyServices, yaml.MapSlice{})
	return d
}

// LoadDocument reads and validates the Compose file at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errdefs.IOError{Path: path, Err: unwrapPathError(err)}
	}
	return ParseDocument(path, data)
}

// ParseDocument decodes and validates a Compose file, path is only used to
// report errors. The file must be valid under the Compose schema of its
// version, and services must only refer to declared volumes and networks.
func ParseDocument(path string, data []byte) (*Document, error) {
	var root yaml.MapSlice
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &errdefs.ParseError{Path: path, Err: err}
	}
	if len(root) == 0 {
		return nil, &errdefs.ParseError{Path: path, Err: errors.New("file is empty")}
	}
	config, err := specification.Parse(data)
	if err != nil {
		return nil, &errdefs.ParseError{Path: path, Err: err}
	}
	if err := specification.Validate(config); err != nil {
		return nil, &errdefs.ParseError{Path: path, Err: errors.Wrap(err, "Compose file validation failed")}
	}
	v := validator.NewValidatorWithDefaults()
	if err := v.Validate(config); err != nil {
		return nil, &errdefs.ParseError{Path: path, Err: err}
	}
	d := &Document{root: root}
	d.root = yaml.Set(d.root, keyServices, d.section(keyServices))
	return d, nil
}

// Add inserts the service of def, replacing any service with the same name
// entirely, and declares the networks and volumes it uses as external when
// the document does not declare them yet.
func (d *Document) Add(def Definition) {
	services := d.section(keyServices)
	d.root = yaml.Set(d.root, keyServices, yaml.Set(services, def.Name, def.Service))
	for _, name := range def.Networks {
		d.declare(keyNetworks, name)
	}
	for _, name := range def.Volumes {
		d.declare(keyVolumes, name)
	}
}

// Version returns the top-level version of the document, empty when unset.
func (d *Document) Version() string {
	i := yaml.Index(d.root, keyVersion)
	if i < 0 || d.root[i].Value == nil {
		return ""
	}
	return fmt.Sprint(d.root[i].Value)
}

// ServiceNames returns the names of the services, in document order.
func (d *Document) ServiceNames() []string {
	var names []string
	for _, item := range d.section(keyServices) {
		if name, ok := item.Key.(string); ok {
			names = append(names, name)
		}
	}
	return names
}

// Marshal serializes the document to YAML.
func (d *Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d.root)
	if err != nil {
		return nil, errors.Wrap(err, "failed to produce yaml structure")
	}
	return data, nil
}

// Tree returns the document as nested string-keyed maps and lists, the way
// it reads back from its YAML.
func (d *Document) Tree() (map[string]interface{}, error) {
	data, err := d.Marshal()
	if err != nil {
		return nil, err
	}
	var root yaml.MapSlice
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, "failed to read back yaml structure")
	}
	tree, err := yaml.ConvertToStringKeys(root)
	if err != nil {
		return nil, err
	}
	return tree.(map[string]interface{}), nil
}

func (d *Document) declare(key, name string) {
	section := d.section(key)
	if yaml.Index(section, name) >= 0 {
		return
	}
	section = append(section, yaml.MapItem{Key: name, Value: External{External: true}})
	d.root = yaml.Set(d.root, key, section)
}

// section returns the top-level mapping stored under key; a missing or null
// section is empty.
func (d *Document) section(key string) yaml.MapSlice {
	i := yaml.Index(d.root, key)
	if i < 0 {
		return yaml.MapSlice{}
	}
	if section, ok := d.root[i].Value.(yaml.MapSlice); ok {
		return section
	}
	return yaml.MapSlice{}
}

// Write writes data to stdout when target is empty or "-", and to the file
// named target otherwise.
func Write(target string, stdout io.Writer, data []byte) error {
	if target == "" || target == internal.StdoutTarget {
		_, err := stdout.Write(data)
		return errors.Wrap(err, "failed to write to standard output")
	}
	if err := utils.CreateFileWithData(target, data); err != nil {
		return &errdefs.IOError{Path: target, Err: unwrapPathError(err)}
	}
	return nil
}

func unwrapPathError(err error) error {
	if pathErr, ok := err.(*os.PathError); ok {
		return pathErr.Err
	}
	return err
}
