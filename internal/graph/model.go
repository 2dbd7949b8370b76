package graph

import "github.com/kolah/swagclient/internal/typeexpr"

type Kind string

const (
	KindObject Kind = "object"
	KindEnum   Kind = "enum"
)

// Model is one named schema type.
type Model struct {
	Name        string
	Description string
	Kind        Kind

	// Parent and Subclasses are lookups into the same Graph; a model never
	// owns the models it points to.
	Parent     *Model
	Subclasses []*Model

	// Properties is set for KindObject, sorted by name.
	Properties []Property
	// EnumValues is set for KindEnum, in declaration order.
	EnumValues []EnumValue

	// DirectDependencies lists the models named by the parent link, subclass
	// links and property types. It is not transitive and never contains the
	// model itself.
	DirectDependencies []string

	parentName string
}

func (m *Model) IsObject() bool { return m.Kind == KindObject }
func (m *Model) IsEnum() bool   { return m.Kind == KindEnum }

type Property struct {
	Name        string
	Required    bool
	Type        typeexpr.Type
	Description string
	// Last marks the final property in sorted order.
	Last bool
}

type EnumValue struct {
	Name  string
	Value string
	Last  bool
}
