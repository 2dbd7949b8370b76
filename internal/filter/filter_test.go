package filter

import (
	"testing"

	"github.com/kolah/swagclient/internal/diag"
	"github.com/kolah/swagclient/internal/graph"
	"github.com/kolah/swagclient/internal/model"
	"github.com/kolah/swagclient/internal/service"
	"github.com/kolah/swagclient/internal/typeexpr"
	"github.com/stretchr/testify/require"
)

func ref(name string) *model.Schema {
	return &model.Schema{Ref: "#/definitions/" + name}
}

func object(props ...model.Property) *model.Schema {
	return &model.Schema{Type: model.TypeObject, Properties: props}
}

// fixture builds Pets -> Pet -> Owner -> Address and Users -> User.
func fixture(t *testing.T) (*graph.Graph, *service.Graph) {
	t.Helper()
	resolver := typeexpr.NewResolver("")
	models, err := graph.Build([]model.Definition{
		{Name: "Address", Schema: object(model.Property{Name: "street", Schema: &model.Schema{Type: model.TypeString}})},
		{Name: "Owner", Schema: object(model.Property{Name: "address", Schema: ref("Address")})},
		{Name: "Pet", Schema: object(model.Property{Name: "owner", Schema: ref("Owner")})},
		{Name: "User", Schema: object()},
		{Name: "Orphan", Schema: object()},
	}, resolver, diag.New())
	require.NoError(t, err)

	services := service.Build([]model.Path{
		{Path: "/pets", Operations: []model.Operation{{
			ID: "listPets", Method: model.MethodGet, Path: "/pets", Tags: []string{"Pets"},
			Responses: []model.Response{{StatusCode: "200", Schema: &model.Schema{Type: model.TypeArray, Items: ref("Pet")}}},
		}}},
		{Path: "/users", Operations: []model.Operation{{
			ID: "listUsers", Method: model.MethodGet, Path: "/users", Tags: []string{"Users"},
			Responses: []model.Response{{StatusCode: "200", Schema: ref("User")}},
		}}},
	}, models, resolver, diag.New())

	return models, services
}

func names(models *graph.Graph) []string {
	var out []string
	for _, m := range models.Models() {
		out = append(out, m.Name)
	}
	return out
}

func TestApplyIncludeTagsAndPrune(t *testing.T) {
	models, services := fixture(t)
	diags := diag.New()

	Apply(models, services, Options{IncludeTags: []string{"Pets"}, PruneUnusedModels: true}, diags)

	require.Equal(t, 1, services.Len())
	_, ok := services.Get("Pets")
	require.True(t, ok)
	require.Equal(t, []string{"Address", "Owner", "Pet"}, names(models))
	require.Len(t, diags.All(), 3)
	require.Empty(t, diags.Warnings())
}

func TestApplyPruneWithoutTagFilter(t *testing.T) {
	models, services := fixture(t)

	Apply(models, services, Options{PruneUnusedModels: true}, diag.New())

	require.Equal(t, 2, services.Len())
	require.Equal(t, []string{"Address", "Owner", "Pet", "User"}, names(models))
}

func TestApplyWithoutPrune(t *testing.T) {
	models, services := fixture(t)

	Apply(models, services, Options{IncludeTags: []string{"Users"}}, diag.New())

	require.Equal(t, 1, services.Len())
	require.Equal(t, 5, models.Len())
}

func TestApplyCommaSeparatedTags(t *testing.T) {
	models, services := fixture(t)

	Apply(models, services, Options{IncludeTags: []string{" Users , Pets", ""}, PruneUnusedModels: true}, diag.New())

	require.Equal(t, 2, services.Len())
	require.Equal(t, 4, models.Len())
}

func TestApplyUnknownTag(t *testing.T) {
	models, services := fixture(t)

	Apply(models, services, Options{IncludeTags: []string{"Stores"}, PruneUnusedModels: true}, diag.New())

	require.Zero(t, services.Len())
	require.Zero(t, models.Len())
}
