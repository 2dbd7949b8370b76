package models

import (
	"testing"
	"testing/fstest"

	"github.com/kolah/swagclient/internal/diag"
	"github.com/kolah/swagclient/internal/graph"
	"github.com/kolah/swagclient/internal/model"
	"github.com/kolah/swagclient/internal/naming"
	"github.com/kolah/swagclient/internal/templates"
	"github.com/kolah/swagclient/internal/typeexpr"
	"github.com/stretchr/testify/require"
)

func ref(name string) *model.Schema {
	return &model.Schema{Ref: "#/definitions/" + name}
}

func buildGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Build([]model.Definition{
		{Name: "Base", Schema: &model.Schema{Type: model.TypeObject}},
		{Name: "Pet", Schema: &model.Schema{AllOf: []*model.Schema{ref("Base"), {
			Type: model.TypeObject,
			Properties: []model.Property{
				{Name: "tags", Schema: &model.Schema{Type: model.TypeArray, Items: ref("Tag")}},
				{Name: "owner", Schema: &model.Schema{Type: model.TypeObject, Properties: []model.Property{
					{Name: "contact", Schema: ref("Contact")},
				}}},
				{Name: "self", Schema: ref("Pet")},
				{Name: "missing", Schema: ref("Ghost")},
			},
		}}}},
		{Name: "Tag", Schema: &model.Schema{Type: model.TypeObject}},
		{Name: "Contact", Schema: &model.Schema{Type: model.TypeObject}},
		{Name: "Kind", Schema: &model.Schema{Type: model.TypeString, Enum: []any{"cat", "dog"}}},
	}, typeexpr.NewResolver(""), diag.New())
	require.NoError(t, err)
	return g
}

func TestImports(t *testing.T) {
	g := buildGraph(t)

	pet, _ := g.Get("Pet")
	require.Equal(t, []string{"Base", "Contact", "Tag"}, imports(pet, g))

	// Subclass links are not imported.
	base, _ := g.Get("Base")
	require.Contains(t, base.DirectDependencies, "Pet")
	require.Empty(t, imports(base, g))
}

func TestGenerate(t *testing.T) {
	g := buildGraph(t)
	engine, err := templates.NewEngine(fstest.MapFS{
		"model.tmpl": {Data: []byte(`{{ .Name }}<{{ .Parent }}>[{{ join .Imports "," }}]{{ range .Properties }} {{ .Key }}:{{ .Type }}{{ end }}`)},
		"enum.tmpl":  {Data: []byte(`{{ .Name }}{{ range .EnumValues }} {{ .Name }}={{ .Literal }}{{ end }}`)},
	}, "", naming.TemplateFuncs())
	require.NoError(t, err)

	pet, _ := g.Get("Pet")
	out, err := New().Generate(engine, pet, g)
	require.NoError(t, err)
	require.Equal(t, `Pet<Base>[Base,Contact,Tag] missing:Ghost owner:{ contact?: Contact; } self:Pet tags:Tag[]`, out)

	kind, _ := g.Get("Kind")
	out, err = New().Generate(engine, kind, g)
	require.NoError(t, err)
	require.Equal(t, `Kind CAT="cat" DOG="dog"`, out)

	require.Equal(t, "models/Pet.ts", Filename(pet, "ts"))
}
