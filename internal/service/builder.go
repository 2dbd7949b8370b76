package service

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kolah/swagclient/internal/diag"
	"github.com/kolah/swagclient/internal/graph"
	"github.com/kolah/swagclient/internal/model"
	"github.com/kolah/swagclient/internal/naming"
	"github.com/kolah/swagclient/internal/typeexpr"
)

var (
	successCode = regexp.MustCompile(`^2\d\d$`)
	pathParam   = regexp.MustCompile(`\{([^{}]+)\}`)
)

// Build groups the document's operations into services, one per tag.
// Operations without exactly one tag or without an operation id are skipped
// and reported to diags.
func Build(paths []model.Path, models *graph.Graph, resolver *typeexpr.Resolver, diags *diag.Diagnostics) *Graph {
	g := newGraph()
	seenIDs := make(map[string]string)

	for _, path := range paths {
		for _, op := range path.Operations {
			pointer := operationPointer(op)

			if len(op.Tags) != 1 {
				diags.Warnf(pointer, "skipping operation with %d tags, exactly one is required", len(op.Tags))
				continue
			}
			if op.ID == "" {
				diags.Warnf(pointer, "skipping operation without operationId")
				continue
			}
			if prev, dup := seenIDs[op.ID]; dup {
				diags.Warnf(pointer, "skipping operation: operationId %s already used by %s", op.ID, prev)
				continue
			}
			seenIDs[op.ID] = pointer

			operation := buildOperation(pointer, op, models, resolver, diags)

			svc, ok := g.byName[operation.Tag]
			if !ok {
				svc = &Service{Name: operation.Tag}
				g.byName[svc.Name] = svc
				g.services = append(g.services, svc)
			}
			svc.Operations = append(svc.Operations, operation)
		}
	}

	sort.SliceStable(g.services, func(i, j int) bool {
		return g.services[i].Name < g.services[j].Name
	})
	for _, svc := range g.services {
		svc.DirectDependencies = directDependencies(svc)
	}

	return g
}

func buildOperation(pointer string, op model.Operation, models *graph.Graph, resolver *typeexpr.Resolver, diags *diag.Diagnostics) *Operation {
	operation := &Operation{
		ID:             op.ID,
		Tag:            op.Tags[0],
		Method:         op.Method,
		Path:           op.Path,
		PathExpression: PathExpression(op.Path),
		Summary:        op.Summary,
		Description:    op.Description,
		Parameters:     buildParameters(pointer, op.Parameters, resolver, diags),
		ResultType:     typeexpr.VoidType(),
	}

	if len(operation.Parameters) > 0 {
		operation.ParamsName = naming.Capitalize(op.ID) + "Params"
	}

	resultSet := false
	for _, r := range op.Responses {
		if r.Schema == nil {
			continue
		}
		t := resolver.Resolve(r.Schema)
		if t.IsUnknown() {
			diags.Warnf(pointer+"/responses/"+r.StatusCode, "could not resolve response type, using %s", typeexpr.Unknown)
		}
		operation.Responses = append(operation.Responses, Response{StatusCode: r.StatusCode, Type: t})
		if !resultSet && successCode.MatchString(r.StatusCode) {
			operation.ResultType = t
			resultSet = true
		}
	}

	operation.ResultKind = Classify(operation.ResultType, models)

	return operation
}

func buildParameters(pointer string, params []model.Parameter, resolver *typeexpr.Resolver, diags *diag.Diagnostics) []Parameter {
	out := make([]Parameter, 0, len(params))
	for _, p := range params {
		t := resolver.Resolve(p.Schema)
		if t.IsUnknown() {
			diags.Warnf(pointer+"/parameters/"+p.Name, "could not resolve parameter type, using %s", typeexpr.Unknown)
		}

		param := Parameter{
			Name:        p.Name,
			In:          p.In,
			Description: p.Description,
			Required:    p.Required || p.In == model.LocationPath,
			Type:        t,
		}
		if t.Kind == typeexpr.KindArray && (p.In == model.LocationQuery || p.In == model.LocationHeader) {
			param.CollectionFormat = p.CollectionFormat
			if param.CollectionFormat == "" {
				param.CollectionFormat = "csv"
			}
		}
		out = append(out, param)
	}

	// Required first, then optional; names descending within each group.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name > out[j].Name
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Required && !out[j].Required
	})
	if len(out) > 0 {
		out[len(out)-1].Last = true
	}

	return out
}

// Classify determines the result kind of a type: void, one of the scalars,
// enum or object when it names a known model, unknown otherwise.
func Classify(t typeexpr.Type, models *graph.Graph) ResultKind {
	switch t.Kind {
	case typeexpr.KindVoid:
		return ResultVoid
	case typeexpr.KindScalar:
		switch t.Name {
		case typeexpr.String:
			return ResultString
		case typeexpr.Number:
			return ResultNumber
		case typeexpr.Boolean:
			return ResultBoolean
		}
	case typeexpr.KindReference:
		if models == nil {
			return ResultUnknown
		}
		if m, ok := models.Get(t.Name); ok {
			if m.IsEnum() {
				return ResultEnum
			}
			return ResultObject
		}
	}
	return ResultUnknown
}

// PathExpression rewrites a path template into a template-literal
// expression: /pets/{id} -> /pets/${params.id}.
func PathExpression(path string) string {
	return pathParam.ReplaceAllString(path, "$${params.$1}")
}

func directDependencies(svc *Service) []string {
	var deps []string
	seen := make(map[string]bool)
	add := func(t typeexpr.Type) {
		for _, dep := range t.Dependencies() {
			if !seen[dep] {
				seen[dep] = true
				deps = append(deps, dep)
			}
		}
	}

	for _, op := range svc.Operations {
		for _, p := range op.Parameters {
			add(p.Type)
		}
		for _, r := range op.Responses {
			add(r.Type)
		}
	}

	return deps
}

func operationPointer(op model.Operation) string {
	escaped := strings.ReplaceAll(strings.ReplaceAll(op.Path, "~", "~0"), "/", "~1")
	return "#/paths/" + escaped + "/" + strings.ToLower(string(op.Method))
}
