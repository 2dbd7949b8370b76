package typeexpr

import (
	"testing"

	"github.com/kolah/swagclient/internal/model"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		schema   *model.Schema
		expected string
		kind     Kind
	}{
		{"nil schema", nil, "void", KindVoid},
		{"ref", &model.Schema{Ref: "#/definitions/Foo"}, "Foo", KindReference},
		{"string", &model.Schema{Type: model.TypeString}, "string", KindScalar},
		{"string enum", &model.Schema{Type: model.TypeString, Enum: []any{"a"}}, "string", KindScalar},
		{"integer", &model.Schema{Type: model.TypeInteger, Format: "int64"}, "number", KindScalar},
		{"number", &model.Schema{Type: model.TypeNumber}, "number", KindScalar},
		{"boolean", &model.Schema{Type: model.TypeBoolean}, "boolean", KindScalar},
		{"array of strings", &model.Schema{Type: model.TypeArray, Items: &model.Schema{Type: model.TypeString}}, "string[]", KindArray},
		{"array of refs", &model.Schema{Type: model.TypeArray, Items: &model.Schema{Ref: "#/definitions/Pet"}}, "Pet[]", KindArray},
		{"array without items", &model.Schema{Type: model.TypeArray}, "any[]", KindArray},
		{"empty object", &model.Schema{Type: model.TypeObject}, "{}", KindInline},
		{"file", &model.Schema{Type: model.TypeFile}, "any", KindUnknown},
		{"no type", &model.Schema{}, "any", KindUnknown},
		{"override", &model.Schema{Type: model.TypeString, Extensions: map[string]string{"x-type": "Date"}}, "Date", KindReference},
		{"override list", &model.Schema{Type: model.TypeArray, Extensions: map[string]string{"x-type": "List<Pet>"}}, "Pet[]", KindArray},
		{"override empty", &model.Schema{Type: model.TypeString, Extensions: map[string]string{"x-type": ""}}, "void", KindVoid},
		{"ref wins over override", &model.Schema{Ref: "#/definitions/Foo", Extensions: map[string]string{"x-type": "Bar"}}, "Foo", KindReference},
	}

	r := NewResolver("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.schema)
			require.Equal(t, tt.expected, got.String())
			require.Equal(t, tt.kind, got.Kind)
		})
	}
}

func TestResolveInlineObject(t *testing.T) {
	r := NewResolver("")
	schema := &model.Schema{
		Type:     model.TypeObject,
		Required: []string{"id"},
		Properties: []model.Property{
			{Name: "id", Schema: &model.Schema{Type: model.TypeInteger}},
			{Name: "owner", Schema: &model.Schema{Ref: "#/definitions/User"}},
			{Name: "tags", Schema: &model.Schema{Type: model.TypeArray, Items: &model.Schema{Ref: "#/definitions/Tag"}}},
			{Name: "backup", Schema: &model.Schema{Ref: "#/definitions/User"}},
		},
		AdditionalProperties: &model.Schema{Ref: "#/definitions/Extra"},
	}

	got := r.Resolve(schema)
	require.Equal(t, KindInline, got.Kind)
	require.Equal(t, "{ id: number; owner?: User; tags?: Tag[]; backup?: User; [key: string]: Extra; }", got.String())
	require.Equal(t, []string{"User", "Tag", "Extra"}, got.Nested)
	require.Equal(t, []string{"User", "Tag", "Extra"}, got.Dependencies())
	require.Equal(t, "", got.ModelName())
}

func TestResolveNestedInlineObject(t *testing.T) {
	r := NewResolver("")
	schema := &model.Schema{
		Type: model.TypeObject,
		Properties: []model.Property{
			{Name: "inner", Schema: &model.Schema{
				Type: model.TypeObject,
				Properties: []model.Property{
					{Name: "pet", Schema: &model.Schema{Ref: "#/definitions/Pet"}},
				},
			}},
		},
	}

	got := r.Resolve(schema)
	require.Equal(t, "{ inner?: { pet?: Pet; }; }", got.String())
	require.Equal(t, []string{"Pet"}, got.Dependencies())
}

func TestResolveFreeFormObject(t *testing.T) {
	r := NewResolver("")
	got := r.Resolve(&model.Schema{Type: model.TypeObject, AdditionalProperties: &model.Schema{}})
	require.Equal(t, "{ [key: string]: any; }", got.String())
	require.Empty(t, got.Dependencies())
}

func TestResolveCustomOverrideKey(t *testing.T) {
	r := NewResolver("x-ts-type")
	schema := &model.Schema{Type: model.TypeString, Extensions: map[string]string{
		"x-type":    "Ignored",
		"x-ts-type": "Moment",
	}}
	require.Equal(t, "Moment", r.Resolve(schema).String())
}

func TestModelName(t *testing.T) {
	require.Equal(t, "Pet", RefType("Pet").ModelName())
	require.Equal(t, "Pet", ArrayOf(ArrayOf(RefType("Pet"))).ModelName())
	require.Equal(t, "", ScalarType(String).ModelName())
	require.Equal(t, "", VoidType().ModelName())
}

func TestParseOverride(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"List<string>", "string[]"},
		{"List<List<Pet>>", "Pet[][]"},
		{"Pet[]", "Pet[]"},
		{"  ", "void"},
		{"integer", "number"},
		{"any", "any"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseOverride(tt.in).String())
		})
	}
}

func TestRefName(t *testing.T) {
	require.Equal(t, "Pet", RefName("#/definitions/Pet"))
	require.Equal(t, "Pet", RefName("Pet"))
}
