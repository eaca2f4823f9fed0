package yaml

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"
)

func TestDecoderYamlBomb(t *testing.T) {
	var v map[interface{}]interface{}
	data := []byte(`version: "3"
services: &services ["lol","lol","lol","lol","lol","lol","lol","lol","lol"]
b: &b [*services,*services,*services,*services,*services,*services,*services,*services,*services]
c: &c [*b,*b,*b,*b,*b,*b,*b,*b,*b]
d: &d [*c,*c,*c,*c,*c,*c,*c,*c,*c]
e: &e [*d,*d,*d,*d,*d,*d,*d,*d,*d]
f: &f [*e,*e,*e,*e,*e,*e,*e,*e,*e]
g: &g [*f,*f,*f,*f,*f,*f,*f,*f,*f]
h: &h [*g,*g,*g,*g,*g,*g,*g,*g,*g]
i: &i [*h,*h,*h,*h,*h,*h,*h,*h,*h]`)
	d := NewDecoder(bytes.NewBuffer(data))
	err := d.Decode(&v)
	assert.ErrorContains(t, err, "yaml: document contains excessive aliasing")
}

func TestUnmarshalYamlBomb(t *testing.T) {
	var v MapSlice
	data := []byte(`version: "3"
services: &services ["lol","lol","lol","lol","lol","lol","lol","lol","lol"]
b: &b [*services,*services,*services,*services,*services,*services,*services,*services,*services]
c: &c [*b,*b,*b,*b,*b,*b,*b,*b,*b]
d: &d [*c,*c,*c,*c,*c,*c,*c,*c,*c]
e: &e [*d,*d,*d,*d,*d,*d,*d,*d,*d]
f: &f [*e,*e,*e,*e,*e,*e,*e,*e,*e]
g: &g [*f,*f,*f,*f,*f,*f,*f,*f,*f]
h: &h [*g,*g,*g,*g,*g,*g,*g,*g,*g]
i: &i [*h,*h,*h,*h,*h,*h,*h,*h,*h]`)
	err := Unmarshal(data, &v)
	assert.ErrorContains(t, err, "yaml: document contains excessive aliasing")
}

func TestUnmarshalEmptyDocument(t *testing.T) {
	var v MapSlice
	assert.NilError(t, Unmarshal([]byte(""), &v))
	assert.Equal(t, len(v), 0)
}

func TestSetKeepsPosition(t *testing.T) {
	m := MapSlice{{Key: "a", Value: 1}, {Key: "b", Value: 2}}
	m = Set(m, "a", 3)
	m = Set(m, "c", 4)
	assert.DeepEqual(t, m, MapSlice{{Key: "a", Value: 3}, {Key: "b", Value: 2}, {Key: "c", Value: 4}})
	assert.Equal(t, Index(m, "b"), 1)
	assert.Equal(t, Index(m, "missing"), -1)
}

func TestConvertToStringKeys(t *testing.T) {
	var v MapSlice
	assert.NilError(t, Unmarshal([]byte(`
services:
  web:
    image: nginx
    ports: [80, "443:443"]
1: one
`), &v))
	converted, err := ConvertToStringKeys(v)
	assert.NilError(t, err)
	assert.DeepEqual(t, converted, map[string]interface{}{
		"services": map[string]interface{}{
			"web": map[string]interface{}{
				"image": "nginx",
				"ports": []interface{}{80, "443:443"},
			},
		},
		"1": "one",
	})
}

func TestConvertToStringKeysRejectsComplexKeys(t *testing.T) {
	_, err := ConvertToStringKeys(map[interface{}]interface{}{
		struct{ A int }{A: 1}: "value",
	})
	assert.ErrorContains(t, err, "non-scalar mapping key")
}
