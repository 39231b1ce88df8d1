package schema

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/swagval/value"
)

// DefinitionsPrefix is the only $ref form resolvable against Definitions.
const DefinitionsPrefix = "#/definitions/"

// ParseRef converts a "$ref" string into a Reference.
func ParseRef(ref string) (Reference, error) {
	if !strings.HasPrefix(ref, DefinitionsPrefix) {
		return Reference{}, fmt.Errorf("schema: $ref %q not supported (local #/definitions/ only)", ref)
	}
	name := strings.TrimPrefix(ref, DefinitionsPrefix)
	if name == "" || strings.Contains(name, "/") {
		return Reference{}, fmt.Errorf("schema: malformed $ref %q", ref)
	}
	// RFC 6901 unescaping
	name = strings.ReplaceAll(strings.ReplaceAll(name, "~1", "/"), "~0", "~")
	return Reference{Name: name}, nil
}

// rawSchema mirrors the wire form of a schema object.
type rawSchema struct {
	Ref  string `json:"$ref"`
	Type Type   `json:"type"`

	Maximum          *float64 `json:"maximum"`
	ExclusiveMaximum bool     `json:"exclusiveMaximum"`
	Minimum          *float64 `json:"minimum"`
	ExclusiveMinimum bool     `json:"exclusiveMinimum"`
	MultipleOf       *float64 `json:"multipleOf"`

	MaxLength *int   `json:"maxLength"`
	MinLength *int   `json:"minLength"`
	Pattern   string `json:"pattern"`

	MaxItems    *int            `json:"maxItems"`
	MinItems    *int            `json:"minItems"`
	Items       json.RawMessage `json:"items"`
	UniqueItems bool            `json:"uniqueItems"`

	MaxProperties        *int                       `json:"maxProperties"`
	MinProperties        *int                       `json:"minProperties"`
	Properties           map[string]json.RawMessage `json:"properties"`
	AdditionalProperties json.RawMessage            `json:"additionalProperties"`
	Required             []string                   `json:"required"`
	Discriminator        string                     `json:"discriminator"`

	Enum []json.RawMessage `json:"enum"`
}

// UnmarshalJSON decodes a schema object. A bare "$ref" is rejected here
// because a Schema cannot stand for a Reference; use ParseReferenced.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var raw rawSchema
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	if raw.Ref != "" {
		return fmt.Errorf("schema: unexpected $ref %q where an inline schema is required", raw.Ref)
	}
	return s.fromRaw(&raw)
}

// ParseReferenced decodes either a {"$ref": ...} object or an inline schema.
func ParseReferenced(data []byte) (Referenced, error) {
	var raw rawSchema
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	if raw.Ref != "" {
		return ParseRef(raw.Ref)
	}
	s := &Schema{}
	if err := s.fromRaw(&raw); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Schema) fromRaw(raw *rawSchema) error {
	*s = Schema{
		Type:             raw.Type,
		Maximum:          raw.Maximum,
		ExclusiveMaximum: raw.ExclusiveMaximum,
		Minimum:          raw.Minimum,
		ExclusiveMinimum: raw.ExclusiveMinimum,
		MultipleOf:       raw.MultipleOf,
		MaxLength:        raw.MaxLength,
		MinLength:        raw.MinLength,
		Pattern:          raw.Pattern,
		MaxItems:         raw.MaxItems,
		MinItems:         raw.MinItems,
		UniqueItems:      raw.UniqueItems,
		MaxProperties:    raw.MaxProperties,
		MinProperties:    raw.MinProperties,
		Required:         raw.Required,
		Discriminator:    raw.Discriminator,
	}

	items, err := parseItems(raw.Items)
	if err != nil {
		return err
	}
	s.Items = items

	if len(raw.Properties) > 0 {
		s.Properties = make(map[string]Referenced, len(raw.Properties))
		for name, p := range raw.Properties {
			r, err := ParseReferenced(p)
			if err != nil {
				return fmt.Errorf("schema: property %q: %w", name, err)
			}
			s.Properties[name] = r
		}
	}

	ap, err := parseAdditional(raw.AdditionalProperties)
	if err != nil {
		return err
	}
	s.AdditionalProperties = ap

	if raw.Enum != nil {
		s.Enum = make([]value.Value, 0, len(raw.Enum))
		for i, e := range raw.Enum {
			v, err := value.Parse(e)
			if err != nil {
				return fmt.Errorf("schema: enum[%d]: %w", i, err)
			}
			s.Enum = append(s.Enum, v)
		}
	}
	return nil
}

func parseItems(data json.RawMessage) (Items, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	if data[0] == '[' {
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("schema: items: %w", err)
		}
		tuple := make(ItemsTuple, 0, len(raws))
		for i, r := range raws {
			ref, err := ParseReferenced(r)
			if err != nil {
				return nil, fmt.Errorf("schema: items[%d]: %w", i, err)
			}
			tuple = append(tuple, ref)
		}
		return tuple, nil
	}
	ref, err := ParseReferenced(data)
	if err != nil {
		return nil, fmt.Errorf("schema: items: %w", err)
	}
	return ItemsList{Schema: ref}, nil
}

// parseAdditional maps additionalProperties: a schema is kept, true becomes an
// unconstrained schema and false is treated as not declared.
func parseAdditional(data json.RawMessage) (Referenced, error) {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		return nil, nil
	case bytes.Equal(data, []byte("true")):
		return &Schema{}, nil
	}
	ref, err := ParseReferenced(data)
	if err != nil {
		return nil, fmt.Errorf("schema: additionalProperties: %w", err)
	}
	return ref, nil
}
