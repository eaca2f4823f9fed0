package yaml

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// MapSlice is an ordered mapping, see gopkg.in/yaml.v2 documentation
type MapSlice = yaml.MapSlice

// MapItem is a single entry of a MapSlice
type MapItem = yaml.MapItem

// Unmarshal decodes the first document found within the in byte slice
// and assigns decoded values into the out value.
//
// See gopkg.in/yaml.v2 documentation
func Unmarshal(in []byte, out interface{}) error {
	d := yaml.NewDecoder(bytes.NewBuffer(in))
	err := d.Decode(out)
	if err == io.EOF {
		return nil
	}
	return err
}

// Marshal serializes the value provided into a YAML document. The structure
// of the generated document will reflect the structure of the value itself.
// Maps and pointers (to struct, string, int, etc) are accepted as the in value.
//
// See gopkg.in/yaml.v2 documentation
func Marshal(in interface{}) ([]byte, error) {
	return yaml.Marshal(in)
}

// NewDecoder returns a new decoder that reads from r.
//
// See gopkg.in/yaml.v2 documentation
func NewDecoder(r io.Reader) *yaml.Decoder {
	return yaml.NewDecoder(r)
}

// Index returns the position of key in the mapping, or -1.
func Index(m MapSlice, key string) int {
	for i, item := range m {
		if k, ok := item.Key.(string); ok && k == key {
			return i
		}
	}
	return -1
}

// Set replaces the value of key, keeping its position, or appends it.
func Set(m MapSlice, key string, value interface{}) MapSlice {
	if i := Index(m, key); i >= 0 {
		m[i].Value = value
		return m
	}
	return append(m, MapItem{Key: key, Value: value})
}

// ConvertToStringKeys turns decoded YAML (MapSlice and map[interface{}]interface{}
// values) into a tree of map[string]interface{} and []interface{}, suitable for
// JSON-based processing such as schema validation.
func ConvertToStringKeys(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case MapSlice:
		dict := make(map[string]interface{}, len(value))
		for _, item := range value {
			key, err := keyString(item.Key)
			if err != nil {
				return nil, err
			}
			converted, err := ConvertToStringKeys(item.Value)
			if err != nil {
				return nil, err
			}
			dict[key] = converted
		}
		return dict, nil
	case map[interface{}]interface{}:
		dict := make(map[string]interface{}, len(value))
		for k, v := range value {
			key, err := keyString(k)
			if err != nil {
				return nil, err
			}
			converted, err := ConvertToStringKeys(v)
			if err != nil {
				return nil, err
			}
			dict[key] = converted
		}
		return dict, nil
	case []interface{}:
		list := make([]interface{}, len(value))
		for i, v := range value {
			converted, err := ConvertToStringKeys(v)
			if err != nil {
				return nil, err
			}
			list[i] = converted
		}
		return list, nil
	default:
		return value, nil
	}
}

func keyString(key interface{}) (string, error) {
	switch key := key.(type) {
	case string:
		return key, nil
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(key), nil
	default:
		return "", fmt.Errorf("non-scalar mapping key %v", key)
	}
}
