package models

import (
	"strconv"

	"github.com/kolah/swagclient/internal/graph"
	"github.com/kolah/swagclient/internal/naming"
	"github.com/kolah/swagclient/internal/templates"
)

type Target struct{}

func New() *Target {
	return &Target{}
}

func (t *Target) Name() string {
	return "models"
}

type modelData struct {
	Name        string
	Description string
	Parent      string
	Imports     []string
	Properties  []propertyData
	EnumValues  []enumValueData
}

type propertyData struct {
	Name        string
	Key         string
	Type        string
	Required    bool
	Description string
	Last        bool
}

type enumValueData struct {
	Name    string
	Literal string
	Last    bool
}

// Generate renders one model. models is consulted to drop imports of models
// that are not emitted.
func (t *Target) Generate(engine templates.Engine, m *graph.Model, models *graph.Graph) (string, error) {
	data := modelData{
		Name:        m.Name,
		Description: m.Description,
	}

	if m.IsEnum() {
		for _, v := range m.EnumValues {
			data.EnumValues = append(data.EnumValues, enumValueData{
				Name:    v.Name,
				Literal: strconv.Quote(v.Value),
				Last:    v.Last,
			})
		}
		return engine.Execute("enum.tmpl", data)
	}

	if m.Parent != nil {
		data.Parent = m.Parent.Name
	}

	for _, p := range m.Properties {
		data.Properties = append(data.Properties, propertyData{
			Name:        p.Name,
			Key:         naming.QuoteKey(p.Name),
			Type:        p.Type.String(),
			Required:    p.Required,
			Description: p.Description,
			Last:        p.Last,
		})
	}

	data.Imports = imports(m, models)

	return engine.Execute("model.tmpl", data)
}

// imports lists the models a rendered interface refers to: its parent and
// property types. Subclass links are dependencies but never appear in the
// rendered source.
func imports(m *graph.Model, models *graph.Graph) []string {
	var out []string
	seen := map[string]bool{m.Name: true}
	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		if _, ok := models.Get(name); ok {
			out = append(out, name)
		}
	}

	if m.Parent != nil {
		add(m.Parent.Name)
	}
	for _, p := range m.Properties {
		for _, dep := range p.Type.Dependencies() {
			add(dep)
		}
	}
	return out
}

func Filename(m *graph.Model, ext string) string {
	return "models/" + m.Name + "." + ext
}
