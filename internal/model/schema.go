package model

// Schema is a raw schema fragment as found in definitions, parameters and
// response bodies. References are kept unresolved in Ref.
type Schema struct {
	Name        string
	Description string
	Type        SchemaType
	Format      string

	// Object properties, in declaration order
	Properties []Property
	Required   []string

	// Array items
	Items *Schema

	// Enum values. A nil slice means no enum was declared.
	Enum []any

	// Composition
	AllOf []*Schema

	// Reference, e.g. "#/definitions/Pet"
	Ref string

	// Free-form members of an object. An empty schema stands for
	// additionalProperties: true.
	AdditionalProperties *Schema

	// Scalar vendor extensions (x-*) keyed by extension name
	Extensions map[string]string
}

type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeFile    SchemaType = "file"
)

type Property struct {
	Name   string
	Schema *Schema
}

// IsRequired reports whether name is listed in the schema's required set.
func (s *Schema) IsRequired(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Extension returns the value of a vendor extension and whether it was set.
func (s *Schema) Extension(key string) (string, bool) {
	if s == nil || s.Extensions == nil {
		return "", false
	}
	v, ok := s.Extensions[key]
	return v, ok
}
