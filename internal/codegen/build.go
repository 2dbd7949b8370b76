package codegen

import (
	"fmt"

	"github.com/kolah/swagclient/internal/diag"
	"github.com/kolah/swagclient/internal/filter"
	"github.com/kolah/swagclient/internal/graph"
	"github.com/kolah/swagclient/internal/model"
	"github.com/kolah/swagclient/internal/service"
	"github.com/kolah/swagclient/internal/typeexpr"
)

type BuildOptions struct {
	IncludeTags           []string
	PruneUnusedModels     bool
	TypeOverrideExtension string
}

// Result is the resolved model handed to the renderer.
type Result struct {
	Models      *graph.Graph
	Services    *service.Graph
	BaseURL     string
	Diagnostics *diag.Diagnostics
}

// Build resolves a parsed document into filtered model and service graphs.
// Fatal input problems are returned as *diag.Error; everything recoverable is
// recorded in Result.Diagnostics.
func Build(spec *model.Spec, opts BuildOptions) (*Result, error) {
	diags := diag.New()
	resolver := typeexpr.NewResolver(opts.TypeOverrideExtension)

	models, err := graph.Build(spec.Definitions, resolver, diags)
	if err != nil {
		return nil, fmt.Errorf("building models: %w", err)
	}

	services := service.Build(spec.Paths, models, resolver, diags)

	filter.Apply(models, services, filter.Options{
		IncludeTags:       opts.IncludeTags,
		PruneUnusedModels: opts.PruneUnusedModels,
	}, diags)

	return &Result{
		Models:      models,
		Services:    services,
		BaseURL:     spec.RootURL(),
		Diagnostics: diags,
	}, nil
}
