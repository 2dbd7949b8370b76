// Package filter narrows the model and service graphs to what the generated
// client needs.
package filter

import (
	"strings"

	"github.com/kolah/swagclient/internal/diag"
	"github.com/kolah/swagclient/internal/graph"
	"github.com/kolah/swagclient/internal/service"
)

type Options struct {
	// IncludeTags restricts generation to these services. Empty keeps all.
	// Entries may hold comma separated lists.
	IncludeTags []string
	// PruneUnusedModels drops models not reachable from a retained service.
	PruneUnusedModels bool
}

// Apply removes excluded services and, when pruning, every model outside the
// dependency closure of the remaining services. Both graphs are modified in
// place.
func Apply(models *graph.Graph, services *service.Graph, opts Options, diags *diag.Diagnostics) {
	if include := tagSet(opts.IncludeTags); len(include) > 0 {
		var excluded []string
		for _, svc := range services.Services() {
			if !include[svc.Name] {
				excluded = append(excluded, svc.Name)
			}
		}
		for _, name := range excluded {
			services.Remove(name)
			diags.Infof("", "service %s excluded by tag filter", name)
		}
	}

	if !opts.PruneUnusedModels {
		return
	}

	var seeds []string
	for _, svc := range services.Services() {
		seeds = append(seeds, svc.DirectDependencies...)
	}
	used := models.Closure(seeds...)

	var unused []string
	for _, m := range models.Models() {
		if !used[m.Name] {
			unused = append(unused, m.Name)
		}
	}
	for _, name := range unused {
		models.Remove(name)
		diags.Infof("#/definitions/"+name, "model %s is not used by any service, skipping", name)
	}
}

func tagSet(tags []string) map[string]bool {
	set := make(map[string]bool)
	for _, entry := range tags {
		for _, tag := range strings.Split(entry, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				set[tag] = true
			}
		}
	}
	return set
}
