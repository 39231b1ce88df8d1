// Package schema models the Swagger 2.0 (OpenAPI 2.0) schema object subset the
// validator understands.
package schema

import "github.com/reoring/swagval/value"

// Type is the declared JSON type of a schema.
type Type string

const (
	TypeNull    Type = "null"
	TypeBoolean Type = "boolean"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeString  Type = "string"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Referenced is either an inline *Schema or a Reference into Definitions.
type Referenced interface {
	referenced()
}

// Reference names an entry of a Definitions table.
type Reference struct {
	Name string
}

// Ref is shorthand for Reference{Name: name}.
func Ref(name string) Reference { return Reference{Name: name} }

func (Reference) referenced() {}
func (*Schema) referenced()   {}

// Items is the item constraint of an array schema: ItemsList applies one
// schema to every element, ItemsTuple applies one schema per position.
type Items interface {
	items()
}

// ItemsList validates every element against Schema.
type ItemsList struct {
	Schema Referenced
}

// ItemsTuple validates element i against the i-th schema; the array length
// must match exactly.
type ItemsTuple []Referenced

func (ItemsList) items()  {}
func (ItemsTuple) items() {}

// Schema is a Swagger 2.0 schema object. Nil pointers mean "not declared".
type Schema struct {
	Type Type

	// Numbers
	Maximum          *float64
	ExclusiveMaximum bool
	Minimum          *float64
	ExclusiveMinimum bool
	MultipleOf       *float64

	// Strings
	MaxLength *int
	MinLength *int
	Pattern   string

	// Arrays
	MaxItems    *int
	MinItems    *int
	Items       Items
	UniqueItems bool

	// Objects
	MaxProperties        *int
	MinProperties        *int
	Properties           map[string]Referenced
	AdditionalProperties Referenced
	Required             []string
	Discriminator        string

	// Enum is nil when no enum is declared; an empty non-nil list admits nothing.
	Enum []value.Value
}

// Definitions maps reference names to schemas.
type Definitions map[string]*Schema

// Float returns a pointer to f, for building numeric bounds.
func Float(f float64) *float64 { return &f }

// Int returns a pointer to i, for building size bounds.
func Int(i int) *int { return &i }
