// Package codec selects the JSON implementation used to decode close-approach
// data and to encode exported results.
package codec

import (
	"encoding/json"
	"io"
	"slices"

	gojson "github.com/goccy/go-json"
)

// Codec marshals and decodes JSON. Implementations are safe for
// concurrent use.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	NewDecoder(r io.Reader) Decoder
}

// Decoder reads successive values from a stream.
type Decoder interface {
	Decode(v any) error
}

// Names of the built-in codecs.
const (
	NameJSON   = "json"
	NameGoJSON = "go-json"
)

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}

var builtin = map[string]Codec{
	NameJSON:   JSON{},
	NameGoJSON: GoJSON{},
}

// ByName looks up a built-in codec. The empty name selects Default.
func ByName(name string) (Codec, bool) {
	if name == "" {
		return Default, true
	}
	c, ok := builtin[name]
	return c, ok
}

// Names lists the built-in codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// JSON wraps encoding/json.
type JSON struct{}

func (JSON) Name() string                       { return NameJSON }
func (JSON) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (JSON) NewDecoder(r io.Reader) Decoder     { return json.NewDecoder(r) }

// GoJSON wraps github.com/goccy/go-json, a drop-in faster decoder.
type GoJSON struct{}

func (GoJSON) Name() string                       { return NameGoJSON }
func (GoJSON) Marshal(v any) ([]byte, error)      { return gojson.Marshal(v) }
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }
func (GoJSON) NewDecoder(r io.Reader) Decoder     { return gojson.NewDecoder(r) }
