package typeexpr

import (
	"strings"

	"github.com/kolah/swagclient/internal/model"
)

// DefaultOverrideExtension is the vendor extension that replaces the
// inferred type of a fragment.
const DefaultOverrideExtension = "x-type"

// Resolver maps schema fragments to canonical type expressions.
type Resolver struct {
	overrideKey string
}

// NewResolver creates a Resolver honoring the given type override extension.
// An empty key selects DefaultOverrideExtension.
func NewResolver(overrideKey string) *Resolver {
	if overrideKey == "" {
		overrideKey = DefaultOverrideExtension
	}
	return &Resolver{overrideKey: overrideKey}
}

// Resolve returns the type expression of a fragment. It never fails; shapes
// it cannot classify resolve to the unknown type.
func (r *Resolver) Resolve(s *model.Schema) Type {
	if s == nil {
		return VoidType()
	}

	// References short-circuit without descending into the referenced body.
	if s.Ref != "" {
		return RefType(RefName(s.Ref))
	}

	if override, ok := s.Extension(r.overrideKey); ok {
		return ParseOverride(override)
	}

	switch s.Type {
	case model.TypeString:
		return ScalarType(String)
	case model.TypeArray:
		if s.Items == nil {
			return ArrayOf(UnknownType())
		}
		return ArrayOf(r.Resolve(s.Items))
	case model.TypeInteger, model.TypeNumber:
		return ScalarType(Number)
	case model.TypeBoolean:
		return ScalarType(Boolean)
	case model.TypeObject:
		return r.resolveObject(s)
	default:
		return UnknownType()
	}
}

func (r *Resolver) resolveObject(s *model.Schema) Type {
	members := make([]Member, 0, len(s.Properties))
	for _, prop := range s.Properties {
		members = append(members, Member{
			Name:     prop.Name,
			Required: s.IsRequired(prop.Name),
			Type:     r.Resolve(prop.Schema),
		})
	}

	var index *Type
	if s.AdditionalProperties != nil {
		t := r.Resolve(s.AdditionalProperties)
		index = &t
	}

	return InlineType(members, index)
}

// RefName returns the last path segment of a reference.
func RefName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// ParseOverride turns a vendor type override into a type expression.
// List<T> notation is normalized to T[]; an empty override means void.
func ParseOverride(s string) Type {
	return parseTypeName(normalizeList(strings.TrimSpace(s)))
}

func normalizeList(s string) string {
	depth := 0
	for strings.HasPrefix(s, "List<") && strings.HasSuffix(s, ">") {
		s = strings.TrimSpace(s[len("List<") : len(s)-1])
		depth++
	}
	return s + strings.Repeat("[]", depth)
}

func parseTypeName(s string) Type {
	if strings.HasSuffix(s, "[]") {
		return ArrayOf(parseTypeName(strings.TrimSpace(strings.TrimSuffix(s, "[]"))))
	}
	switch s {
	case "", Void:
		return VoidType()
	case Unknown:
		return UnknownType()
	case String:
		return ScalarType(String)
	case Number, "integer":
		return ScalarType(Number)
	case Boolean:
		return ScalarType(Boolean)
	default:
		return RefType(s)
	}
}
