package loader

import (
	"github.com/kolah/swagclient/internal/model"
	"github.com/pb33f/libopenapi/datamodel/high/base"
	v2 "github.com/pb33f/libopenapi/datamodel/high/v2"
	"github.com/pb33f/libopenapi/orderedmap"
	"go.yaml.in/yaml/v4"
)

// Transform converts the libopenapi Swagger model into model.Spec.
func Transform(result *Result) (*model.Spec, error) {
	doc := result.Document.Model

	spec := &model.Spec{
		Info:     transformInfo(doc.Info),
		Host:     doc.Host,
		BasePath: doc.BasePath,
		Schemes:  doc.Schemes,
	}

	if doc.Definitions != nil && doc.Definitions.Definitions != nil {
		for name, proxy := range doc.Definitions.Definitions.FromOldest() {
			spec.Definitions = append(spec.Definitions, model.Definition{
				Name:   name,
				Schema: transformSchema(name, proxy.Schema()),
			})
		}
	}

	if doc.Paths != nil && doc.Paths.PathItems != nil {
		for pathStr, pathItem := range doc.Paths.PathItems.FromOldest() {
			spec.Paths = append(spec.Paths, transformPath(pathStr, pathItem))
		}
	}

	return spec, nil
}

func transformInfo(info *base.Info) model.Info {
	if info == nil {
		return model.Info{}
	}
	return model.Info{
		Title:       info.Title,
		Description: info.Description,
		Version:     info.Version,
	}
}

func transformPath(pathStr string, pathItem *v2.PathItem) model.Path {
	path := model.Path{Path: pathStr}

	// Fixed order keeps generated output stable.
	methods := []struct {
		method model.Method
		op     *v2.Operation
	}{
		{model.MethodGet, pathItem.Get},
		{model.MethodPut, pathItem.Put},
		{model.MethodPost, pathItem.Post},
		{model.MethodDelete, pathItem.Delete},
		{model.MethodOptions, pathItem.Options},
		{model.MethodHead, pathItem.Head},
		{model.MethodPatch, pathItem.Patch},
	}

	shared := transformParameters(pathItem.Parameters)
	for _, m := range methods {
		if m.op == nil {
			continue
		}
		path.Operations = append(path.Operations, transformOperation(m.method, pathStr, m.op, shared))
	}

	return path
}

func transformOperation(method model.Method, path string, op *v2.Operation, shared []model.Parameter) model.Operation {
	operation := model.Operation{
		ID:          op.OperationId,
		Method:      method,
		Path:        path,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
		Parameters:  mergeParameters(shared, transformParameters(op.Parameters)),
	}

	if op.Responses != nil {
		if op.Responses.Codes != nil {
			for code, resp := range op.Responses.Codes.FromOldest() {
				operation.Responses = append(operation.Responses, transformResponse(code, resp))
			}
		}
		if op.Responses.Default != nil {
			operation.Responses = append(operation.Responses, transformResponse("default", op.Responses.Default))
		}
	}

	return operation
}

// mergeParameters applies operation parameters over path-level ones; a
// parameter is identified by name and location.
func mergeParameters(shared, own []model.Parameter) []model.Parameter {
	if len(shared) == 0 {
		return own
	}

	type key struct {
		name string
		in   model.ParameterLocation
	}
	overridden := make(map[key]bool, len(own))
	for _, p := range own {
		overridden[key{p.Name, p.In}] = true
	}

	var merged []model.Parameter
	for _, p := range shared {
		if !overridden[key{p.Name, p.In}] {
			merged = append(merged, p)
		}
	}
	return append(merged, own...)
}

func transformParameters(params []*v2.Parameter) []model.Parameter {
	var out []model.Parameter
	for _, p := range params {
		if p == nil {
			continue
		}
		out = append(out, transformParameter(p))
	}
	return out
}

func transformParameter(p *v2.Parameter) model.Parameter {
	param := model.Parameter{
		Name:             p.Name,
		In:               model.ParameterLocation(p.In),
		Description:      p.Description,
		Required:         p.Required != nil && *p.Required,
		CollectionFormat: p.CollectionFormat,
	}

	if p.Schema != nil {
		param.Schema = transformSchemaProxy(p.Schema)
		return param
	}

	// Non-body parameters carry their type inline.
	param.Schema = &model.Schema{
		Name:        p.Name,
		Description: p.Description,
		Type:        model.SchemaType(p.Type),
		Format:      p.Format,
		Items:       transformItems(p.Items),
		Extensions:  extensionValues(p.Extensions),
	}
	if param.Schema.Type == "" && len(param.Schema.Extensions) == 0 {
		param.Schema = nil
	}
	return param
}

func transformItems(items *v2.Items) *model.Schema {
	if items == nil {
		return nil
	}
	return &model.Schema{
		Type:   model.SchemaType(items.Type),
		Format: items.Format,
		Items:  transformItems(items.Items),
	}
}

func transformResponse(code string, resp *v2.Response) model.Response {
	response := model.Response{StatusCode: code}
	if resp == nil {
		return response
	}
	response.Description = resp.Description
	if resp.Schema != nil {
		response.Schema = transformSchemaProxy(resp.Schema)
	}
	return response
}

// transformSchemaProxy keeps references unresolved so recursive definitions
// terminate.
func transformSchemaProxy(proxy *base.SchemaProxy) *model.Schema {
	if proxy == nil {
		return nil
	}
	if proxy.IsReference() {
		return &model.Schema{Ref: proxy.GetReference()}
	}
	return transformSchema("", proxy.Schema())
}

func transformSchema(name string, s *base.Schema) *model.Schema {
	if s == nil {
		return nil
	}

	schema := &model.Schema{
		Name:        name,
		Description: s.Description,
		Format:      s.Format,
		Required:    s.Required,
		Extensions:  extensionValues(s.Extensions),
	}

	if len(s.Type) > 0 {
		schema.Type = model.SchemaType(s.Type[0])
	}

	if s.Enum != nil {
		schema.Enum = make([]any, 0, len(s.Enum))
		for _, e := range s.Enum {
			if e != nil {
				schema.Enum = append(schema.Enum, e.Value)
			}
		}
	}

	if s.Properties != nil {
		for propName, propProxy := range s.Properties.FromOldest() {
			schema.Properties = append(schema.Properties, model.Property{
				Name:   propName,
				Schema: transformSchemaProxy(propProxy),
			})
		}
	}

	if s.Items != nil && s.Items.IsA() {
		schema.Items = transformSchemaProxy(s.Items.A)
	}

	if s.AdditionalProperties != nil {
		switch {
		case s.AdditionalProperties.IsA():
			schema.AdditionalProperties = transformSchemaProxy(s.AdditionalProperties.A)
		case s.AdditionalProperties.B:
			schema.AdditionalProperties = &model.Schema{}
		}
	}

	for _, proxy := range s.AllOf {
		schema.AllOf = append(schema.AllOf, transformSchemaProxy(proxy))
	}

	return schema
}

// extensionValues collects scalar vendor extensions. Structured values are
// ignored since only type override strings are consumed.
func extensionValues(extensions *orderedmap.Map[string, *yaml.Node]) map[string]string {
	if extensions == nil {
		return nil
	}

	var out map[string]string
	for pair := extensions.First(); pair != nil; pair = pair.Next() {
		node := pair.Value()
		if node == nil || node.Kind != yaml.ScalarNode {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[pair.Key()] = node.Value
	}
	return out
}
