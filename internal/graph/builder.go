package graph

import (
	"fmt"
	"sort"

	"github.com/kolah/swagclient/internal/diag"
	"github.com/kolah/swagclient/internal/model"
	"github.com/kolah/swagclient/internal/naming"
	"github.com/kolah/swagclient/internal/typeexpr"
)

// Build constructs the model graph from the document's definitions. It fails
// on the first definition that is not a composition, an object or a
// non-empty string enum.
func Build(defs []model.Definition, resolver *typeexpr.Resolver, diags *diag.Diagnostics) (*Graph, error) {
	g := newGraph()

	for _, def := range defs {
		m, err := buildModel(def, resolver, diags)
		if err != nil {
			return nil, err
		}
		g.add(m)
	}

	g.linkParents(diags)

	for _, m := range g.models {
		if m.IsObject() {
			m.DirectDependencies = directDependencies(m)
		}
	}

	return g, nil
}

func buildModel(def model.Definition, resolver *typeexpr.Resolver, diags *diag.Diagnostics) (*Model, error) {
	pointer := "#/definitions/" + def.Name
	s := def.Schema
	if s == nil {
		return nil, diag.NewError(diag.CodeInvalidDefinition, pointer, "empty definition")
	}

	m := &Model{Name: def.Name, Description: s.Description}

	switch {
	case len(s.AllOf) > 0:
		if len(s.AllOf) != 2 || s.AllOf[0] == nil || s.AllOf[0].Ref == "" {
			return nil, diag.NewError(diag.CodeInvalidDefinition, pointer,
				"allOf must have exactly two elements, the first a reference to the parent")
		}
		m.Kind = KindObject
		m.parentName = typeexpr.RefName(s.AllOf[0].Ref)
		own := s.AllOf[1]
		if own != nil && m.Description == "" {
			m.Description = own.Description
		}
		m.Properties = buildProperties(pointer, own, resolver, diags)

	case s.Type == model.TypeObject || (s.Type == "" && len(s.Properties) > 0):
		m.Kind = KindObject
		m.Properties = buildProperties(pointer, s, resolver, diags)

	case s.Type == model.TypeString && s.Enum != nil:
		values, err := buildEnumValues(pointer, s.Enum)
		if err != nil {
			return nil, err
		}
		m.Kind = KindEnum
		m.EnumValues = values

	default:
		return nil, diag.NewError(diag.CodeInvalidDefinition, pointer,
			fmt.Sprintf("unsupported definition shape (type %q): expected allOf composition, object or string enum", s.Type))
	}

	return m, nil
}

func buildProperties(pointer string, s *model.Schema, resolver *typeexpr.Resolver, diags *diag.Diagnostics) []Property {
	if s == nil {
		return nil
	}

	props := make([]Property, 0, len(s.Properties))
	for _, p := range s.Properties {
		t := resolver.Resolve(p.Schema)
		if t.IsUnknown() {
			diags.Warnf(pointer+"/properties/"+p.Name, "could not resolve property type, using %s", typeexpr.Unknown)
		}
		prop := Property{
			Name:     p.Name,
			Required: s.IsRequired(p.Name),
			Type:     t,
		}
		if p.Schema != nil {
			prop.Description = p.Schema.Description
		}
		props = append(props, prop)
	}

	sort.SliceStable(props, func(i, j int) bool {
		return props[i].Name < props[j].Name
	})
	if len(props) > 0 {
		props[len(props)-1].Last = true
	}

	return props
}

func buildEnumValues(pointer string, enum []any) ([]EnumValue, error) {
	if len(enum) == 0 {
		return nil, diag.NewError(diag.CodeEmptyEnum, pointer, "enum must declare at least one value")
	}

	literals := make([]string, 0, len(enum))
	for _, v := range enum {
		literals = append(literals, fmt.Sprint(v))
	}

	names := naming.ConstantNames(literals)
	values := make([]EnumValue, len(literals))
	for i, lit := range literals {
		values[i] = EnumValue{Name: names[i], Value: lit}
	}
	values[len(values)-1].Last = true

	return values, nil
}

// linkParents replaces recorded parent names with the models themselves, now
// that every definition exists.
func (g *Graph) linkParents(diags *diag.Diagnostics) {
	for _, m := range g.models {
		if m.parentName == "" {
			continue
		}
		parent, ok := g.byName[m.parentName]
		if !ok {
			diags.Warnf("#/definitions/"+m.Name, "parent %s is not defined", m.parentName)
			continue
		}
		m.Parent = parent
		parent.Subclasses = append(parent.Subclasses, m)
	}
}

func directDependencies(m *Model) []string {
	var deps []string
	seen := map[string]bool{m.Name: true}
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		deps = append(deps, name)
	}

	if m.Parent != nil {
		add(m.Parent.Name)
	} else {
		add(m.parentName)
	}
	for _, sub := range m.Subclasses {
		add(sub.Name)
	}
	for _, p := range m.Properties {
		for _, dep := range p.Type.Dependencies() {
			add(dep)
		}
	}

	return deps
}
