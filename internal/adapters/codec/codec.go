// Package codec provides the serialization adapters a tracked file persists
// its data through. Gob is the default binary format; JSON and YAML exist for
// files that should stay readable by other tools.
package codec

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"filebase/internal/core/ports"
)

type Gob struct{}

func (Gob) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer

	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (Gob) Decode(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

type JSON struct{}

func (JSON) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

type YAML struct{}

func (YAML) Encode(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAML) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// ForName resolves a codec by its config name. An empty name means gob.
func ForName(name string) (ports.Codec, error) {
	switch strings.ToLower(name) {
	case "", "gob":
		return Gob{}, nil
	case "json":
		return JSON{}, nil
	case "yaml":
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}
